package sles

import (
	"fmt"
	"strings"
)

// MumpsFactoType is the factorization computed by the direct solver
type MumpsFactoType uint

const (
	MumpsFactoLU MumpsFactoType = iota
	MumpsFactoLDLTSym
	MumpsFactoLDLTSPD
)

var MumpsFactoPrintNames = []string{"LU", "LDLt (symmetric)", "LDLt (SPD)"}

func (ft MumpsFactoType) Print() (txt string) {
	txt = MumpsFactoPrintNames[ft]
	return
}

// MumpsAnalysisAlgo is the fill-reducing ordering used in the analysis step
type MumpsAnalysisAlgo uint

const (
	MumpsAnalysisAuto MumpsAnalysisAlgo = iota
	MumpsAnalysisAMD
	MumpsAnalysisQAMD
	MumpsAnalysisPORD
	MumpsAnalysisScotch
	MumpsAnalysisPTScotch
	MumpsAnalysisMetis
	MumpsAnalysisParmetis
)

var MumpsAnalysisPrintNames = []string{
	"Automatic", "AMD", "QAMD", "PORD", "SCOTCH", "PT-SCOTCH", "METIS",
	"ParMETIS",
}

func (aa MumpsAnalysisAlgo) Print() (txt string) {
	txt = MumpsAnalysisPrintNames[aa]
	return
}

// MumpsMemoryUsage selects the memory strategy of the factorization
type MumpsMemoryUsage uint

const (
	MumpsMemoryAuto MumpsMemoryUsage = iota
	MumpsMemoryConstrained
	MumpsMemoryCPUDriven
)

var MumpsMemoryPrintNames = []string{"Automatic", "Constrained", "CPU-driven"}

func (mu MumpsMemoryUsage) Print() (txt string) {
	txt = MumpsMemoryPrintNames[mu]
	return
}

// MumpsParam gathers the settings forwarded to the direct-factorization
// library. It lives as the context of at most one Param at a time.
type MumpsParam struct {
	Single    bool // single-precision factorization
	FactoType MumpsFactoType

	AnalysisAlgo  MumpsAnalysisAlgo
	BlockAnalysis int     // > 1: fixed block size for the analysis
	MemCoef       float64 // % increase of the memory workspace; < 0 unset
	BLRThreshold  float64 // block low-rank compression accuracy; 0 disabled
	IRSteps       int     // iterative refinement steps
	MemUsage      MumpsMemoryUsage
	AdvancedOptim bool // MPI/OpenMP advanced optimizations
}

// NewMumpsParam returns the default direct-factorization settings:
// double precision, LU factorization
func NewMumpsParam() *MumpsParam {
	return &MumpsParam{
		Single:        false,
		FactoType:     MumpsFactoLU,
		AnalysisAlgo:  MumpsAnalysisAuto,
		BlockAnalysis: 0,
		MemCoef:       -1,
		BLRThreshold:  0,
		IRSteps:       0,
		MemUsage:      MumpsMemoryAuto,
		AdvancedOptim: false,
	}
}

// Copy returns a deep copy of the settings record
func (m *MumpsParam) Copy() Context {
	m2 := *m
	return &m2
}

// Report renders the settings for the setup log
func (m *MumpsParam) Report(name string) string {
	var sb strings.Builder
	w := func(format string, args ...interface{}) {
		fmt.Fprintf(&sb, format, args...)
	}
	precision := "double"
	if m.Single {
		precision = "single"
	}
	w("  * %s | MUMPS precision:          %s\n", name, precision)
	w("  * %s | MUMPS factorization:      %s\n", name, m.FactoType.Print())
	w("  * %s | MUMPS analysis:           %s\n", name, m.AnalysisAlgo.Print())
	if m.BlockAnalysis > 1 {
		w("  * %s | MUMPS block analysis:     %d\n", name, m.BlockAnalysis)
	}
	if m.MemCoef >= 0 {
		w("  * %s | MUMPS memory coef.:       %g\n", name, m.MemCoef)
	}
	if m.BLRThreshold != 0 {
		w("  * %s | MUMPS BLR threshold:      %g\n", name, m.BLRThreshold)
	}
	if m.IRSteps > 0 {
		w("  * %s | MUMPS iter. refinement:   %d\n", name, m.IRSteps)
	}
	w("  * %s | MUMPS memory usage:       %s\n", name, m.MemUsage.Print())
	w("  * %s | MUMPS advanced optim.:    %v\n", name, m.AdvancedOptim)
	return sb.String()
}
