package itsol

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"
)

// cg is the preconditioned conjugate gradient method for SPD systems.
func cg(A *sparse.CSR, b, x []float64, pc preconditioner, mon monitor) (Stats, error) {
	var (
		n, _ = A.Dims()
		r    = make([]float64, n)
		z    = make([]float64, n)
		p    = make([]float64, n)
		Ap   = make([]float64, n)
	)
	res := residual(A, b, x, r)
	st, done, err := mon.check(0, res)
	if done {
		return st, err
	}
	pc.Apply(z, r)
	copy(p, z)
	rho := floats.Dot(r, z)
	for k := 1; ; k++ {
		spmv(A, p, Ap)
		alpha := rho / floats.Dot(p, Ap)
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, Ap)
		st, done, err = mon.check(k, floats.Norm(r, 2))
		if done {
			return st, err
		}
		pc.Apply(z, r)
		rhoNext := floats.Dot(r, z)
		beta := rhoNext / rho
		rho = rhoNext
		for i := range p {
			p[i] = z[i] + beta*p[i]
		}
	}
}

// fcg is the flexible conjugate gradient method. The Polak-Ribiere
// update keeps the search directions conjugate when the preconditioner
// varies between applications, at the cost of one extra stored vector.
func fcg(A *sparse.CSR, b, x []float64, pc preconditioner, mon monitor) (Stats, error) {
	var (
		n, _  = A.Dims()
		r     = make([]float64, n)
		rPrev = make([]float64, n)
		z     = make([]float64, n)
		p     = make([]float64, n)
		Ap    = make([]float64, n)
	)
	res := residual(A, b, x, r)
	st, done, err := mon.check(0, res)
	if done {
		return st, err
	}
	pc.Apply(z, r)
	copy(p, z)
	rho := floats.Dot(r, z)
	for k := 1; ; k++ {
		spmv(A, p, Ap)
		alpha := rho / floats.Dot(p, Ap)
		copy(rPrev, r)
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, Ap)
		st, done, err = mon.check(k, floats.Norm(r, 2))
		if done {
			return st, err
		}
		pc.Apply(z, r)
		// Polak-Ribiere: beta = z . (r - r_prev) / rho
		var num float64
		for i := range z {
			num += z[i] * (r[i] - rPrev[i])
		}
		beta := num / rho
		rho = floats.Dot(r, z)
		for i := range p {
			p[i] = z[i] + beta*p[i]
		}
	}
}

// gcr is the restarted generalized conjugate residual method. It
// handles non-symmetric systems and tolerates variable preconditioning,
// which is why flexible configurations route here.
func gcr(A *sparse.CSR, b, x []float64, pc preconditioner, mon monitor, restart int) (Stats, error) {
	var (
		n, _ = A.Dims()
		r    = make([]float64, n)
		z    = make([]float64, n)
		p    = make([][]float64, restart)
		Ap   = make([][]float64, restart)
		dots = make([]float64, restart) // Ap_j . Ap_j
	)
	for j := range p {
		p[j] = make([]float64, n)
		Ap[j] = make([]float64, n)
	}
	res := residual(A, b, x, r)
	st, done, err := mon.check(0, res)
	if done {
		return st, err
	}
	for k := 1; ; {
		for j := 0; j < restart; j++ {
			pc.Apply(z, r)
			copy(p[j], z)
			spmv(A, p[j], Ap[j])
			// Orthogonalize Ap_j against the previous directions.
			for i := 0; i < j; i++ {
				beta := floats.Dot(Ap[j], Ap[i]) / dots[i]
				floats.AddScaled(p[j], -beta, p[i])
				floats.AddScaled(Ap[j], -beta, Ap[i])
			}
			dots[j] = floats.Dot(Ap[j], Ap[j])
			alpha := floats.Dot(r, Ap[j]) / dots[j]
			floats.AddScaled(x, alpha, p[j])
			floats.AddScaled(r, -alpha, Ap[j])
			st, done, err = mon.check(k, floats.Norm(r, 2))
			if done {
				return st, err
			}
			k++
		}
		// Restart from the current iterate.
		res = residual(A, b, x, r)
		st, done, err = mon.check(k, res)
		if done {
			return st, err
		}
	}
}
