package sles

import (
	"fmt"
)

// SolverClass identifies which solver library family executes the system
type SolverClass uint

const (
	ClassNative SolverClass = iota // built-in solvers, always available
	ClassPETSc
	ClassHYPRE
	ClassMUMPS
	ClassNone // sentinel: no class available
)

var (
	ClassNames = map[string]SolverClass{
		"native":  ClassNative,
		"cs":      ClassNative,
		"saturne": ClassNative,
		"petsc":   ClassPETSc,
		"hypre":   ClassHYPRE,
		"mumps":   ClassMUMPS,
	}
	ClassPrintNames = []string{"in-house", "PETSc", "HYPRE", "MUMPS", "none"}
)

func (sc SolverClass) Print() (txt string) {
	txt = ClassPrintNames[sc]
	return
}

// SolverType is the iterative/direct algorithm used to solve the system
type SolverType uint

const (
	SolverNone SolverType = iota
	SolverAMG             // algebraic multigrid used as a solver
	SolverBiCG
	SolverBiCGStab2
	SolverCG
	SolverCR3
	SolverFCG // flexible CG
	SolverFGMRES
	SolverGaussSeidel
	SolverGCR
	SolverGMRES
	SolverJacobi
	SolverMINRES
	SolverMUMPS // direct factorization
	SolverSymGaussSeidel
	SolverUser
)

var (
	SolverNames = map[string]SolverType{
		"none":             SolverNone,
		"amg":              SolverAMG,
		"bicg":             SolverBiCG,
		"bicgstab2":        SolverBiCGStab2,
		"cg":               SolverCG,
		"cr3":              SolverCR3,
		"fcg":              SolverFCG,
		"fgmres":           SolverFGMRES,
		"gauss_seidel":     SolverGaussSeidel,
		"gs":               SolverGaussSeidel,
		"gcr":              SolverGCR,
		"gmres":            SolverGMRES,
		"jacobi":           SolverJacobi,
		"diag":             SolverJacobi,
		"diagonal":         SolverJacobi,
		"minres":           SolverMINRES,
		"mumps":            SolverMUMPS,
		"sym_gauss_seidel": SolverSymGaussSeidel,
		"sgs":              SolverSymGaussSeidel,
		"user":             SolverUser,
	}
	SolverPrintNames = []string{
		"None", "AMG", "BiCG", "BiCGStab2", "CG", "CR3", "Flexible CG",
		"Flexible GMRES", "Gauss-Seidel", "GCR", "GMRES", "Jacobi", "MINRES",
		"MUMPS", "Sym. Gauss-Seidel", "User-defined",
	}
)

func (st SolverType) Print() (txt string) {
	txt = SolverPrintNames[st]
	return
}

// restartable identifies the Krylov methods carrying a restart length
func (st SolverType) restartable() bool {
	switch st {
	case SolverGMRES, SolverFGMRES, SolverGCR:
		return true
	}
	return false
}

// needsFlexible identifies solvers that tolerate a variable preconditioner
// and are therefore flagged flexible regardless of the preconditioner choice
func (st SolverType) needsFlexible() bool {
	switch st {
	case SolverFCG, SolverFGMRES, SolverGCR, SolverSymGaussSeidel:
		return true
	}
	return false
}

// PrecondType is the preconditioner applied to the iterative solver
type PrecondType uint

const (
	PrecondNone PrecondType = iota
	PrecondDiag
	PrecondBJacobiILU0 // block Jacobi with ILU0 in each block
	PrecondBJacobiSGS  // block Jacobi with SGS in each block
	PrecondLU
	PrecondILU0
	PrecondICC0
	PrecondAMG
	PrecondMUMPS
	PrecondPoly1 // 1st order Neumann polynomial
	PrecondPoly2 // 2nd order Neumann polynomial
	PrecondSSOR
)

var PrecondPrintNames = []string{
	"None", "Diagonal", "Block-Jacobi (ILU0)", "Block-Jacobi (SGS)", "LU",
	"ILU0", "ICC0", "AMG", "MUMPS", "Poly1", "Poly2", "SSOR",
}

func (pt PrecondType) Print() (txt string) {
	txt = PrecondPrintNames[pt]
	return
}

// PrecondKey is the user-facing preconditioner keyword, resolved once at the
// configuration boundary. Several keys map to the same PrecondType with
// different routing (e.g. "amg" vs "amg_block").
type PrecondKey uint

const (
	KeyPrecondNone PrecondKey = iota
	KeyPrecondJacobi
	KeyPrecondBlockJacobi
	KeyPrecondBJacobiSGS
	KeyPrecondLU
	KeyPrecondILU0
	KeyPrecondICC0
	KeyPrecondAMG
	KeyPrecondAMGBlock
	KeyPrecondMUMPS
	KeyPrecondPoly1
	KeyPrecondPoly2
	KeyPrecondSSOR
)

var PrecondKeyNames = map[string]PrecondKey{
	"none":         KeyPrecondNone,
	"jacobi":       KeyPrecondJacobi,
	"diag":         KeyPrecondJacobi,
	"block_jacobi": KeyPrecondBlockJacobi,
	"bjacobi":      KeyPrecondBlockJacobi,
	"bjacobi_sgs":  KeyPrecondBJacobiSGS,
	"bjacobi_ssor": KeyPrecondBJacobiSGS,
	"lu":           KeyPrecondLU,
	"ilu0":         KeyPrecondILU0,
	"icc0":         KeyPrecondICC0,
	"amg":          KeyPrecondAMG,
	"amg_block":    KeyPrecondAMGBlock,
	"block_amg":    KeyPrecondAMGBlock,
	"mumps":        KeyPrecondMUMPS,
	"poly1":        KeyPrecondPoly1,
	"poly2":        KeyPrecondPoly2,
	"ssor":         KeyPrecondSSOR,
}

// BlockPrecondType describes how a block-structured system is preconditioned
type BlockPrecondType uint

const (
	BlockNone BlockPrecondType = iota
	BlockDiag
)

var BlockPrecondPrintNames = []string{"None", "Diagonal blocks"}

func (bt BlockPrecondType) Print() (txt string) {
	txt = BlockPrecondPrintNames[bt]
	return
}

// AMGType is the algebraic multigrid flavor, tied to a solver class
type AMGType uint

const (
	AMGNone AMGType = iota
	AMGInHouseV
	AMGInHouseK
	AMGPetscPCMG
	AMGPetscGAMGV
	AMGPetscGAMGW
	AMGBoomerV
	AMGBoomerW
)

var (
	AMGNames = map[string]AMGType{
		"v_cycle":  AMGInHouseV,
		"k_cycle":  AMGInHouseK,
		"kamg":     AMGInHouseK,
		"boomer":   AMGBoomerV,
		"bamg":     AMGBoomerV,
		"boomer_v": AMGBoomerV,
		"boomer_w": AMGBoomerW,
		"bamg_w":   AMGBoomerW,
		"gamg":     AMGPetscGAMGV,
		"gamg_v":   AMGPetscGAMGV,
		"gamg_w":   AMGPetscGAMGW,
		"pcmg":     AMGPetscPCMG,
	}
	AMGPrintNames = []string{
		"None", "In-house (V-cycle)", "In-house (K-cycle)", "PETSc PCMG",
		"PETSc GAMG (V-cycle)", "PETSc GAMG (W-cycle)",
		"BoomerAMG (V-cycle)", "BoomerAMG (W-cycle)",
	}
)

func (at AMGType) Print() (txt string) {
	txt = AMGPrintNames[at]
	return
}

// boomerIsNeeded reports whether the AMG flavor calls for a BoomerAMG
// tuning context
func boomerIsNeeded(amg AMGType) bool {
	return amg == AMGBoomerV || amg == AMGBoomerW
}

// ResNormType is the residual normalization policy used for convergence tests
type ResNormType uint

const (
	ResNormNone ResNormType = iota
	ResNormRHS
	ResNormWeightedRHS
	ResNormFilteredRHS
)

var (
	ResNormNames = map[string]ResNormType{
		"none":         ResNormNone,
		"rhs":          ResNormRHS,
		"weighted_rhs": ResNormWeightedRHS,
		"filtered_rhs": ResNormFilteredRHS,
	}
	ResNormPrintNames = []string{
		"None",
		"Euclidean norm of the RHS",
		"Weighted Euclidean norm of the RHS",
		"Filtered Euclidean norm of the RHS",
	}
)

func (rt ResNormType) Print() (txt string) {
	txt = ResNormPrintNames[rt]
	return
}

// NewSolverClass resolves a family label, panicking on unknown labels the way
// other label parsers do at the configuration boundary
func NewSolverClass(label string) (sc SolverClass) {
	var ok bool
	if sc, ok = ClassNames[label]; !ok {
		panic(fmt.Errorf("unable to use solver class named %s", label))
	}
	return
}
