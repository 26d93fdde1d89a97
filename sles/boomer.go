package sles

import (
	"fmt"
	"strings"
)

// BoomerSmoother is the smoother/solver applied inside BoomerAMG cycles
type BoomerSmoother uint

const (
	BoomerJacobi BoomerSmoother = iota
	BoomerForwardGS
	BoomerBackwardGS
	BoomerHybridSSOR
	BoomerL1SGS
	BoomerGaussElim
	BoomerBackwardL1GS
	BoomerForwardL1GS
	BoomerCG
	BoomerChebyshev
	BoomerFCFJacobi
	BoomerL1Jacobi
)

var BoomerSmootherPrintNames = []string{
	"Jacobi", "Forward Gauss-Seidel", "Backward Gauss-Seidel", "Hybrid SSOR",
	"l1 scaled SGS", "Gaussian elimination", "Backward l1 Gauss-Seidel",
	"Forward l1 Gauss-Seidel", "CG", "Chebyshev", "FCF Jacobi",
	"l1 scaled Jacobi",
}

func (bs BoomerSmoother) Print() (txt string) {
	txt = BoomerSmootherPrintNames[bs]
	return
}

// BoomerCoarsenAlgo is the coarsening algorithm building the grid hierarchy
type BoomerCoarsenAlgo uint

const (
	BoomerCoarsenFalgout BoomerCoarsenAlgo = iota
	BoomerCoarsenPMIS
	BoomerCoarsenHMIS
	BoomerCoarsenCGC
	BoomerCoarsenCGCE
)

var BoomerCoarsenPrintNames = []string{"Falgout", "PMIS", "HMIS", "CGC", "CGC-E"}

func (bc BoomerCoarsenAlgo) Print() (txt string) {
	txt = BoomerCoarsenPrintNames[bc]
	return
}

// BoomerInterpAlgo is the coarse-to-fine interpolation algorithm
type BoomerInterpAlgo uint

const (
	BoomerInterpHyperbolic BoomerInterpAlgo = iota
	BoomerInterpClassicalMod
	BoomerInterpExtPlusICC
	BoomerInterpExtPlusI
	BoomerInterpFF1
	BoomerInterpExtended
)

var BoomerInterpPrintNames = []string{
	"Hyperbolic", "Modified classical", "Extended+i (common C)", "Extended+i",
	"FF1", "Extended",
}

func (bi BoomerInterpAlgo) Print() (txt string) {
	txt = BoomerInterpPrintNames[bi]
	return
}

// BoomerParam gathers the multigrid tuning knobs for the BoomerAMG family.
// It lives as the context of at most one Param at a time.
type BoomerParam struct {
	NDownIter    int
	DownSmoother BoomerSmoother
	NUpIter      int
	UpSmoother   BoomerSmoother
	CoarseSolver BoomerSmoother

	CoarsenAlgo     BoomerCoarsenAlgo
	StrongThreshold float64
	InterpAlgo      BoomerInterpAlgo
	PMax            int // max elements per row kept by the interpolation
	NAggLevels      int // aggressive coarsening, number of levels
	NAggPaths       int // aggressive coarsening, number of paths
}

// NewBoomerParam returns the default multigrid tuning
func NewBoomerParam() *BoomerParam {
	return &BoomerParam{
		NDownIter:       2,
		DownSmoother:    BoomerForwardL1GS,
		NUpIter:         2,
		UpSmoother:      BoomerBackwardL1GS,
		CoarseSolver:    BoomerGaussElim,
		CoarsenAlgo:     BoomerCoarsenHMIS,
		StrongThreshold: 0.5,
		InterpAlgo:      BoomerInterpExtPlusICC,
		PMax:            8,
		NAggLevels:      2,
		NAggPaths:       1,
	}
}

// Copy returns a deep copy of the tuning record
func (b *BoomerParam) Copy() Context {
	b2 := *b
	return &b2
}

// Report renders the tuning for the setup log
func (b *BoomerParam) Report(name string) string {
	var sb strings.Builder
	w := func(format string, args ...interface{}) {
		fmt.Fprintf(&sb, format, args...)
	}
	w("  * %s | BoomerAMG down smoother:  %s (%d sweeps)\n",
		name, b.DownSmoother.Print(), b.NDownIter)
	w("  * %s | BoomerAMG up smoother:    %s (%d sweeps)\n",
		name, b.UpSmoother.Print(), b.NUpIter)
	w("  * %s | BoomerAMG coarse solver:  %s\n", name, b.CoarseSolver.Print())
	w("  * %s | BoomerAMG coarsening:     %s\n", name, b.CoarsenAlgo.Print())
	w("  * %s | BoomerAMG strong thresh.: %g\n", name, b.StrongThreshold)
	w("  * %s | BoomerAMG interpolation:  %s (p_max %d)\n",
		name, b.InterpAlgo.Print(), b.PMax)
	w("  * %s | BoomerAMG agg. coarsen.:  %d levels, %d paths\n",
		name, b.NAggLevels, b.NAggPaths)
	return sb.String()
}
