package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofvm/gofv/itsol"
	"github.com/gofvm/gofv/sles"
)

func TestAssembleStructure(t *testing.T) {
	c := NewPoisson1D(0, 1, 1, 4)
	A, b := c.Assemble(func(x float64) float64 { return 0 })
	nr, nc := A.Dims()
	require.Equal(t, 4, nr)
	require.Equal(t, 4, nc)
	// dx = 0.25, flux = 4: interior stencil [-4, 8, -4], boundary rows
	// pick up the half-cell Dirichlet closure.
	assert.InDelta(t, 12.0, A.At(0, 0), 1.e-12)
	assert.InDelta(t, -4.0, A.At(0, 1), 1.e-12)
	assert.InDelta(t, 8.0, A.At(1, 1), 1.e-12)
	assert.InDelta(t, -4.0, A.At(1, 0), 1.e-12)
	assert.InDelta(t, 12.0, A.At(3, 3), 1.e-12)
	for i := range b {
		assert.InDelta(t, 0.0, b[i], 1.e-12)
	}
}

func TestPoissonManufacturedSolution(t *testing.T) {
	var (
		c        = NewPoisson1D(0, 1, 1, 64)
		f, exact = c.ManufacturedSine()
		A, b     = c.Assemble(f)
		cap      = &sles.Capabilities{}
	)
	sp := sles.New(0, "poisson")
	require.NoError(t, sp.SetSolver("cg", cap))
	sp.SetCvgParam(1.e-12, 1.e-14, 1.e4, 1000)

	x := make([]float64, c.K)
	st, err := itsol.Solve(sp, A, b, x)
	require.NoError(t, err)
	require.True(t, st.Converged)

	// Second-order scheme: discretization error well under 1.e-3 at K=64.
	for i, xc := range c.Centers() {
		assert.InDelta(t, exact(xc), x[i], 1.e-3)
	}
}

func TestPoissonDirichletValues(t *testing.T) {
	var (
		c   = NewPoisson1D(0, 1, 2, 32)
		cap = &sles.Capabilities{}
	)
	c.ULeft, c.URight = 1, 3
	A, b := c.Assemble(func(x float64) float64 { return 0 })

	sp := sles.New(0, "laplace")
	require.NoError(t, sp.SetSolver("fcg", cap))
	sp.SetCvgParam(1.e-12, 1.e-14, 1.e4, 1000)

	x := make([]float64, c.K)
	st, err := itsol.Solve(sp, A, b, x)
	require.NoError(t, err)
	require.True(t, st.Converged)

	// Pure Laplace with Dirichlet ends is linear in x.
	for i, xc := range c.Centers() {
		assert.InDelta(t, 1+2*xc, x[i], 1.e-8)
	}
}
