// Package model carries the built-in verification problems used to
// exercise the linear-solver stack on real discretizations.
package model

import (
	"math"

	"github.com/james-bowman/sparse"
)

// Poisson1D is a cell-centered finite-volume discretization of
// -gamma u'' = f on [XMin, XMax] with Dirichlet values at both ends.
type Poisson1D struct {
	// Input parameters
	XMin, XMax float64
	Gamma      float64
	K          int // number of cells
	ULeft      float64
	URight     float64

	dx      float64
	centers []float64
}

func NewPoisson1D(xmin, xmax, gamma float64, K int) *Poisson1D {
	c := &Poisson1D{
		XMin:  xmin,
		XMax:  xmax,
		Gamma: gamma,
		K:     K,
		dx:    (xmax - xmin) / float64(K),
	}
	c.centers = make([]float64, K)
	for i := range c.centers {
		c.centers[i] = xmin + (float64(i)+0.5)*c.dx
	}
	return c
}

// Centers returns the cell-center coordinates.
func (c *Poisson1D) Centers() []float64 {
	return c.centers
}

// Assemble builds the linear system for the source term f evaluated at
// the cell centers. Interior faces contribute the usual two-point flux;
// boundary faces fold the Dirichlet value into the diagonal and the
// right-hand side over the half-cell distance.
func (c *Poisson1D) Assemble(f func(x float64) float64) (A *sparse.CSR, b []float64) {
	var (
		dok  = sparse.NewDOK(c.K, c.K)
		flux = c.Gamma / c.dx // interior face area is unity in 1-D
	)
	b = make([]float64, c.K)
	for i := 0; i < c.K; i++ {
		var diag float64
		if i > 0 {
			dok.Set(i, i-1, -flux)
			diag += flux
		} else {
			diag += 2 * flux
			b[i] += 2 * flux * c.ULeft
		}
		if i < c.K-1 {
			dok.Set(i, i+1, -flux)
			diag += flux
		} else {
			diag += 2 * flux
			b[i] += 2 * flux * c.URight
		}
		dok.Set(i, i, diag)
		b[i] += f(c.centers[i]) * c.dx
	}
	return dok.ToCSR(), b
}

// ManufacturedSine returns the source term and exact solution for
// u(x) = sin(pi x) on the unit interval with homogeneous boundaries.
func (c *Poisson1D) ManufacturedSine() (f, exact func(x float64) float64) {
	f = func(x float64) float64 {
		return c.Gamma * math.Pi * math.Pi * math.Sin(math.Pi*x)
	}
	exact = func(x float64) float64 {
		return math.Sin(math.Pi * x)
	}
	return f, exact
}
