package itsol

import (
	"github.com/james-bowman/sparse"
)

// jacobi runs the pointwise Jacobi iteration x += D^{-1}(b - Ax).
func jacobi(A *sparse.CSR, b, x []float64, mon monitor) (Stats, error) {
	var (
		n, _ = A.Dims()
		d    = diagonal(A)
		r    = make([]float64, n)
	)
	res := residual(A, b, x, r)
	st, done, err := mon.check(0, res)
	if done {
		return st, err
	}
	for k := 1; ; k++ {
		for i := 0; i < n; i++ {
			x[i] += r[i] / d[i]
		}
		res = residual(A, b, x, r)
		st, done, err = mon.check(k, res)
		if done {
			return st, err
		}
	}
}

// gaussSeidel runs forward Gauss-Seidel sweeps, or forward plus
// backward sweeps when symmetric is set.
func gaussSeidel(A *sparse.CSR, b, x []float64, mon monitor, symmetric bool) (Stats, error) {
	var (
		raw  = A.RawMatrix()
		n    = raw.I
		d    = diagonal(A)
		r    = make([]float64, n)
		rows = func(i int) (cols []int, vals []float64) {
			lo, hi := raw.Indptr[i], raw.Indptr[i+1]
			return raw.Ind[lo:hi], raw.Data[lo:hi]
		}
		sweep = func(i int) {
			cols, vals := rows(i)
			sigma := b[i]
			for idx, j := range cols {
				if j != i {
					sigma -= vals[idx] * x[j]
				}
			}
			x[i] = sigma / d[i]
		}
	)
	res := residual(A, b, x, r)
	st, done, err := mon.check(0, res)
	if done {
		return st, err
	}
	for k := 1; ; k++ {
		for i := 0; i < n; i++ {
			sweep(i)
		}
		if symmetric {
			for i := n - 1; i >= 0; i-- {
				sweep(i)
			}
		}
		res = residual(A, b, x, r)
		st, done, err = mon.check(k, res)
		if done {
			return st, err
		}
	}
}
