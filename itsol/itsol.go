// Package itsol hosts the in-house iterative solvers. It consumes a
// resolved linear-solver parameter set and runs the matching Krylov or
// relaxation method on a sparse system.
package itsol

import (
	"errors"
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"

	"github.com/gofvm/gofv/sles"
)

var (
	// ErrNotLinked is returned when the parameter set routes to an
	// external family (PETSc, HYPRE, MUMPS) that this binary does not
	// carry.
	ErrNotLinked = errors.New("solver family is not linked into this binary")
	// ErrUnsupported is returned for solver or preconditioner choices
	// the in-house backend does not implement.
	ErrUnsupported = errors.New("not implemented by the in-house backend")
	// ErrDiverged is returned when the residual grows past the
	// divergence tolerance.
	ErrDiverged = errors.New("solver diverged")
)

// Stats reports the outcome of a linear solve.
type Stats struct {
	Iterations int
	Residual   float64 // normalized residual at exit
	Converged  bool
}

// Solve runs the solver selected by sp on A x = b, using x as the
// initial guess and overwriting it with the solution. Only the native
// family is handled here.
func Solve(sp *sles.Param, A *sparse.CSR, b, x []float64) (Stats, error) {
	if sp.SolverClass != sles.ClassNative {
		return Stats{}, fmt.Errorf("system %q targets %s: %w",
			sp.Name(), sp.SolverClass.Print(), ErrNotLinked)
	}
	n, nc := A.Dims()
	if n != nc {
		return Stats{}, fmt.Errorf("system %q: matrix is %dx%d, want square", sp.Name(), n, nc)
	}
	if len(b) != n || len(x) != n {
		return Stats{}, fmt.Errorf("system %q: vector length %d/%d does not match matrix order %d",
			sp.Name(), len(b), len(x), n)
	}

	pc, err := newPreconditioner(sp, A)
	if err != nil {
		return Stats{}, err
	}
	mon := newMonitor(sp, b)

	switch sp.Solver {
	case sles.SolverJacobi:
		return jacobi(A, b, x, mon)
	case sles.SolverGaussSeidel:
		return gaussSeidel(A, b, x, mon, false)
	case sles.SolverSymGaussSeidel:
		return gaussSeidel(A, b, x, mon, true)
	case sles.SolverCG:
		return cg(A, b, x, pc, mon)
	case sles.SolverFCG:
		return fcg(A, b, x, pc, mon)
	case sles.SolverGCR:
		restart := sp.Restart
		if restart < 1 {
			restart = 30
		}
		return gcr(A, b, x, pc, mon, restart)
	default:
		return Stats{}, fmt.Errorf("system %q: solver %s: %w",
			sp.Name(), sp.Solver.Print(), ErrUnsupported)
	}
}

// monitor tracks the residual against the convergence settings of a
// parameter set. The normalization factor is fixed at construction from
// the right-hand side.
type monitor struct {
	cvg    sles.Convergence
	factor float64
}

func newMonitor(sp *sles.Param, b []float64) monitor {
	var factor float64
	switch sp.ResNorm {
	case sles.ResNormRHS:
		factor = floats.Norm(b, 2)
	case sles.ResNormWeightedRHS:
		factor = floats.Norm(b, 2) / math.Sqrt(float64(len(b)))
	case sles.ResNormFilteredRHS:
		// Remove the mean before taking the norm so that systems with
		// a constant null space still get a meaningful scale.
		mean := floats.Sum(b) / float64(len(b))
		var ss float64
		for _, bi := range b {
			d := bi - mean
			ss += d * d
		}
		factor = math.Sqrt(ss)
	default:
		factor = 1
	}
	if factor <= 0 {
		factor = 1
	}
	return monitor{cvg: sp.Cvg, factor: factor}
}

// check classifies the residual at iteration k. done reports that the
// iteration should stop; err is non-nil only on divergence.
func (m monitor) check(k int, resid float64) (st Stats, done bool, err error) {
	st = Stats{Iterations: k, Residual: resid / m.factor}
	if resid <= m.cvg.Atol || st.Residual <= m.cvg.Rtol {
		st.Converged = true
		return st, true, nil
	}
	if m.cvg.Dtol > 0 && st.Residual >= m.cvg.Dtol {
		return st, true, fmt.Errorf("residual %e after %d iterations: %w", st.Residual, k, ErrDiverged)
	}
	if k >= m.cvg.MaxIter {
		return st, true, nil
	}
	return st, false, nil
}

// spmv computes y = A x on the raw CSR storage.
func spmv(A *sparse.CSR, x, y []float64) {
	raw := A.RawMatrix()
	for i := 0; i < raw.I; i++ {
		var sum float64
		for idx := raw.Indptr[i]; idx < raw.Indptr[i+1]; idx++ {
			sum += raw.Data[idx] * x[raw.Ind[idx]]
		}
		y[i] = sum
	}
}

// residual computes r = b - A x and returns its 2-norm.
func residual(A *sparse.CSR, b, x, r []float64) float64 {
	spmv(A, x, r)
	floats.Scale(-1, r)
	floats.Add(r, b)
	return floats.Norm(r, 2)
}

// diagonal extracts the main diagonal of A. Zero entries are mapped to
// one so that Jacobi-type sweeps stay well defined.
func diagonal(A *sparse.CSR) []float64 {
	raw := A.RawMatrix()
	d := make([]float64, raw.I)
	for i := 0; i < raw.I; i++ {
		d[i] = 1
		for idx := raw.Indptr[i]; idx < raw.Indptr[i+1]; idx++ {
			if raw.Ind[idx] == i && raw.Data[idx] != 0 {
				d[i] = raw.Data[idx]
				break
			}
		}
	}
	return d
}
