package itsol

import (
	"testing"

	"github.com/james-bowman/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofvm/gofv/sles"
)

// laplace1D builds the standard tridiagonal [-1, 2, -1] operator, the
// discrete 1-D Laplacian with Dirichlet ends. It is SPD, which every
// method here can handle.
func laplace1D(n int) *sparse.CSR {
	dok := sparse.NewDOK(n, n)
	for i := 0; i < n; i++ {
		dok.Set(i, i, 2)
		if i > 0 {
			dok.Set(i, i-1, -1)
		}
		if i < n-1 {
			dok.Set(i, i+1, -1)
		}
	}
	return dok.ToCSR()
}

// dominant builds a strongly diagonally dominant SPD operator, which
// the stationary methods contract quickly on.
func dominant(n int) *sparse.CSR {
	dok := sparse.NewDOK(n, n)
	for i := 0; i < n; i++ {
		dok.Set(i, i, 4)
		if i > 0 {
			dok.Set(i, i-1, -1)
		}
		if i < n-1 {
			dok.Set(i, i+1, -1)
		}
	}
	return dok.ToCSR()
}

// nonSymmetric builds a diagonally dominant convection-diffusion style
// operator with an upwind bias.
func nonSymmetric(n int) *sparse.CSR {
	dok := sparse.NewDOK(n, n)
	for i := 0; i < n; i++ {
		dok.Set(i, i, 4)
		if i > 0 {
			dok.Set(i, i-1, -2.5)
		}
		if i < n-1 {
			dok.Set(i, i+1, -0.5)
		}
	}
	return dok.ToCSR()
}

// manufactured returns b = A ones(n), so the exact solution is all ones.
func manufactured(A *sparse.CSR) (b []float64) {
	n, _ := A.Dims()
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	b = make([]float64, n)
	spmv(A, ones, b)
	return b
}

func nativeParam(t *testing.T, solver string) *sles.Param {
	t.Helper()
	sp := sles.New(0, "test")
	cap := &sles.Capabilities{}
	require.NoError(t, sp.SetSolver(solver, cap))
	sp.SetCvgParam(1.e-10, 1.e-14, 1.e4, 500)
	return sp
}

func TestSolveKrylov(t *testing.T) {
	var (
		n = 32
		A = laplace1D(n)
		b = manufactured(A)
	)
	for _, solver := range []string{"cg", "fcg", "gcr"} {
		sp := nativeParam(t, solver)
		x := make([]float64, n)
		st, err := Solve(sp, A, b, x)
		require.NoError(t, err, solver)
		assert.True(t, st.Converged, solver)
		for i := range x {
			assert.InDelta(t, 1.0, x[i], 1.e-6, solver)
		}
	}
}

func TestSolveRelaxation(t *testing.T) {
	var (
		n = 32
		A = dominant(n)
		b = manufactured(A)
	)
	for _, solver := range []string{"jacobi", "gauss_seidel", "sym_gauss_seidel"} {
		sp := nativeParam(t, solver)
		x := make([]float64, n)
		st, err := Solve(sp, A, b, x)
		require.NoError(t, err, solver)
		assert.True(t, st.Converged, solver)
		for i := range x {
			assert.InDelta(t, 1.0, x[i], 1.e-6, solver)
		}
	}
}

func TestSolvePreconditioned(t *testing.T) {
	var (
		n   = 32
		A   = laplace1D(n)
		b   = manufactured(A)
		cap = &sles.Capabilities{}
	)
	for _, precond := range []string{"jacobi", "poly1", "poly2"} {
		sp := nativeParam(t, "cg")
		require.NoError(t, sp.SetPrecond(precond, cap))
		x := make([]float64, n)
		st, err := Solve(sp, A, b, x)
		require.NoError(t, err, precond)
		assert.True(t, st.Converged, precond)
		for i := range x {
			assert.InDelta(t, 1.0, x[i], 1.e-6, precond)
		}
	}
}

func TestSolveNonSymmetric(t *testing.T) {
	var (
		n = 24
		A = nonSymmetric(n)
		b = manufactured(A)
	)
	sp := nativeParam(t, "gcr")
	x := make([]float64, n)
	st, err := Solve(sp, A, b, x)
	require.NoError(t, err)
	assert.True(t, st.Converged)
	for i := range x {
		assert.InDelta(t, 1.0, x[i], 1.e-6)
	}
}

func TestSolveResNormPolicies(t *testing.T) {
	var (
		n = 16
		A = laplace1D(n)
		b = manufactured(A)
	)
	for _, norm := range []sles.ResNormType{
		sles.ResNormNone, sles.ResNormRHS, sles.ResNormWeightedRHS, sles.ResNormFilteredRHS,
	} {
		sp := nativeParam(t, "cg")
		sp.ResNorm = norm
		x := make([]float64, n)
		st, err := Solve(sp, A, b, x)
		require.NoError(t, err)
		assert.True(t, st.Converged)
	}
	{ // a zero right-hand side must not blow up the normalization
		sp := nativeParam(t, "cg")
		sp.ResNorm = sles.ResNormRHS
		x := make([]float64, n)
		st, err := Solve(sp, A, make([]float64, n), x)
		require.NoError(t, err)
		assert.True(t, st.Converged)
		assert.Equal(t, 0, st.Iterations)
	}
}

func TestSolveErrors(t *testing.T) {
	var (
		n = 8
		A = laplace1D(n)
		b = manufactured(A)
	)
	{ // external family without the library
		sp := nativeParam(t, "cg")
		sp.SolverClass = sles.ClassPETSc
		_, err := Solve(sp, A, b, make([]float64, n))
		assert.ErrorIs(t, err, ErrNotLinked)
	}
	{ // solver the in-house backend does not carry
		sp := nativeParam(t, "bicgstab2")
		_, err := Solve(sp, A, b, make([]float64, n))
		assert.ErrorIs(t, err, ErrUnsupported)
	}
	{ // mismatched vector lengths
		sp := nativeParam(t, "cg")
		_, err := Solve(sp, A, b, make([]float64, n-1))
		assert.Error(t, err)
	}
}

func TestSolveMaxIterations(t *testing.T) {
	var (
		n = 64
		A = laplace1D(n)
		b = manufactured(A)
	)
	sp := nativeParam(t, "jacobi")
	sp.SetCvgParam(1.e-12, 1.e-16, 1.e4, 3)
	x := make([]float64, n)
	st, err := Solve(sp, A, b, x)
	require.NoError(t, err)
	assert.False(t, st.Converged)
	assert.Equal(t, 3, st.Iterations)
}
