package itsol

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"

	"github.com/gofvm/gofv/sles"
)

// preconditioner applies z = M^{-1} r for a fixed operator M.
type preconditioner interface {
	Apply(z, r []float64)
}

func newPreconditioner(sp *sles.Param, A *sparse.CSR) (preconditioner, error) {
	switch sp.Precond {
	case sles.PrecondNone:
		return identityPC{}, nil
	case sles.PrecondDiag:
		return &diagPC{d: diagonal(A)}, nil
	case sles.PrecondPoly1:
		return newPolyPC(A, 1), nil
	case sles.PrecondPoly2:
		return newPolyPC(A, 2), nil
	default:
		return nil, fmt.Errorf("system %q: preconditioner %s: %w",
			sp.Name(), sp.Precond.Print(), ErrUnsupported)
	}
}

type identityPC struct{}

func (identityPC) Apply(z, r []float64) { copy(z, r) }

// diagPC is the Jacobi preconditioner.
type diagPC struct {
	d []float64
}

func (pc *diagPC) Apply(z, r []float64) {
	for i, di := range pc.d {
		z[i] = r[i] / di
	}
}

// polyPC is a truncated Neumann series around the Jacobi splitting,
// z = sum_{k=0..deg} (I - D^{-1}A)^k D^{-1} r.
type polyPC struct {
	A   *sparse.CSR
	d   []float64
	deg int
	w   []float64 // scratch
}

func newPolyPC(A *sparse.CSR, deg int) *polyPC {
	n, _ := A.Dims()
	return &polyPC{A: A, d: diagonal(A), deg: deg, w: make([]float64, n)}
}

func (pc *polyPC) Apply(z, r []float64) {
	for i, di := range pc.d {
		z[i] = r[i] / di
	}
	for k := 0; k < pc.deg; k++ {
		spmv(pc.A, z, pc.w)
		floats.Scale(-1, pc.w)
		floats.Add(pc.w, r)
		for i, di := range pc.d {
			z[i] += pc.w[i] / di
		}
	}
}
