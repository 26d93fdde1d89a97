package sles

import "fmt"

// The resolution engine maps user-facing keywords onto a consistent
// combination of solver, preconditioner, hosting class and AMG type,
// consulting the capability registry whenever a third-party family is
// touched. Combinations that cannot be honored either substitute the nearest
// valid setting (with a warning) or return a ConfigError; the record is left
// unchanged when an error is returned.

// getPetscOrHypre checks whether PETSc or HYPRE can host a preconditioner.
// With petscMandatory, only PETSc (possibly hosting HYPRE features) will do.
func (sp *Param) getPetscOrHypre(cap *Capabilities, key string,
	petscMandatory bool) (SolverClass, error) {

	ret := cap.CheckClass(ClassPETSc)

	if ret != ClassPETSc && petscMandatory {
		return ClassNone, unavailable(sp.name, key,
			"PETSc is needed but not available with your installation")
	}

	if sp.SolverClass == ClassHYPRE {
		ret = cap.CheckClass(ClassHYPRE)
	}

	if ret != ClassHYPRE && ret != ClassPETSc {
		return ClassNone, unavailable(sp.name, key,
			"neither PETSc nor HYPRE is available with your installation")
	}

	return ret, nil
}

// SetSolver sets the solver algorithm from its keyword. The solver class is
// forced to the in-house family unless the keyword names a family-specific
// solver; in that case the capability registry decides the hosting class or
// the call fails.
func (sp *Param) SetSolver(keyval string, cap *Capabilities) error {
	solver, ok := SolverNames[keyval]
	if !ok {
		return fmt.Errorf("%w: solver %q", ErrUnknownKey, keyval)
	}

	switch solver {

	case SolverAMG:
		sp.Solver = SolverAMG
		sp.AMGType = AMGInHouseK
		sp.SolverClass = ClassNative
		sp.Precond = PrecondNone
		sp.PrecondBlock = BlockNone

	case SolverBiCG, SolverBiCGStab2, SolverCG, SolverCR3, SolverGMRES:
		sp.Solver = solver
		sp.SolverClass = ClassNative
		sp.Flexible = sp.Precond == PrecondAMG

	case SolverFCG, SolverFGMRES, SolverGCR:
		sp.Solver = solver
		sp.SolverClass = ClassNative
		sp.Flexible = true

	case SolverGaussSeidel:
		sp.Solver = SolverGaussSeidel
		sp.SolverClass = ClassNative
		sp.Precond = PrecondNone
		sp.PrecondBlock = BlockNone

	case SolverJacobi:
		sp.Solver = SolverJacobi
		sp.SolverClass = ClassNative
		sp.Precond = PrecondNone
		sp.PrecondBlock = BlockNone
		sp.Flexible = false

	case SolverMINRES:
		// only hosted by PETSc
		if cap.CheckClass(ClassPETSc) != ClassPETSc {
			return unavailable(sp.name, "solver",
				"MINRES requires PETSc which is not available with your"+
					" installation")
		}
		sp.Solver = SolverMINRES
		sp.SolverClass = ClassPETSc
		sp.Flexible = sp.Precond == PrecondAMG

	case SolverMUMPS:
		// stand-alone MUMPS or MUMPS hosted by PETSc
		ret := cap.CheckClass(ClassMUMPS)
		if ret == ClassNone {
			return unavailable(sp.name, "solver",
				"MUMPS is not available with your installation")
		}
		sp.Solver = SolverMUMPS
		sp.SolverClass = ret
		sp.Precond = PrecondNone
		sp.PrecondBlock = BlockNone
		sp.AMGType = AMGNone
		sp.Flexible = false
		sp.ResetMumps()

	case SolverSymGaussSeidel:
		sp.Solver = SolverSymGaussSeidel
		sp.SolverClass = ClassNative
		sp.Precond = PrecondNone
		sp.PrecondBlock = BlockNone
		sp.Flexible = true

	case SolverUser:
		sp.Solver = SolverUser
		sp.SolverClass = ClassNative

	case SolverNone:
		sp.Solver = SolverNone
		sp.Precond = PrecondNone
		sp.PrecondBlock = BlockNone
		sp.SolverClass = ClassNative
	}

	sp.syncContext()
	return nil
}

// SetPrecond sets the preconditioner from its keyword, adjusting the solver
// class, the AMG type and possibly the solver itself so that the resulting
// combination is valid
func (sp *Param) SetPrecond(keyval string, cap *Capabilities) error {
	key, ok := PrecondKeyNames[keyval]
	if !ok {
		return fmt.Errorf("%w: preconditioner %q", ErrUnknownKey, keyval)
	}

	switch key {

	case KeyPrecondNone:
		sp.Precond = PrecondNone
		sp.PrecondBlock = BlockNone
		sp.AMGType = AMGNone
		sp.Flexible = sp.Solver.needsFlexible()

	case KeyPrecondJacobi:
		sp.Precond = PrecondDiag
		sp.PrecondBlock = BlockNone
		sp.AMGType = AMGNone
		sp.Flexible = sp.Solver.needsFlexible()

	case KeyPrecondBlockJacobi:
		// with PETSc, or with HYPRE's Euclid through PETSc: PETSc mandatory
		ret, err := sp.getPetscOrHypre(cap, "precond", true)
		if err != nil {
			return err
		}
		sp.SolverClass = ret
		sp.Precond = PrecondBJacobiILU0
		sp.PrecondBlock = BlockDiag
		sp.AMGType = AMGNone
		sp.Flexible = sp.Solver.needsFlexible()

	case KeyPrecondBJacobiSGS:
		// only available through PETSc
		if cap.CheckClass(ClassPETSc) != ClassPETSc {
			return unavailable(sp.name, "precond",
				"PETSc is not available with your installation")
		}
		sp.SolverClass = ClassPETSc
		sp.Precond = PrecondBJacobiSGS
		sp.PrecondBlock = BlockDiag
		sp.AMGType = AMGNone
		sp.Flexible = sp.Solver.needsFlexible()

	case KeyPrecondLU:
		if cap.CheckClass(ClassPETSc) != ClassPETSc {
			return unavailable(sp.name, "precond",
				"PETSc is not available with your installation")
		}
		sp.SolverClass = ClassPETSc
		sp.Precond = PrecondLU
		sp.AMGType = AMGNone
		sp.Flexible = sp.Solver.needsFlexible()

	case KeyPrecondILU0, KeyPrecondICC0:
		// PETSc, HYPRE, or HYPRE's Euclid through PETSc
		ret, err := sp.getPetscOrHypre(cap, "precond", false)
		if err != nil {
			return err
		}
		sp.SolverClass = ret
		if key == KeyPrecondILU0 {
			sp.Precond = PrecondILU0
		} else {
			sp.Precond = PrecondICC0
		}
		sp.PrecondBlock = BlockNone
		sp.AMGType = AMGNone
		sp.Flexible = sp.Solver.needsFlexible()

	case KeyPrecondAMG:
		if err := sp.setPrecondAMG(cap, false); err != nil {
			return err
		}

	case KeyPrecondAMGBlock:
		if err := sp.setPrecondAMG(cap, true); err != nil {
			return err
		}

	case KeyPrecondMUMPS:
		// only the stand-alone MUMPS library can serve as a preconditioner
		if cap.CheckClass(ClassMUMPS) != ClassMUMPS {
			return unavailable(sp.name, "precond",
				"MUMPS is not available with your installation")
		}
		sp.Precond = PrecondMUMPS
		sp.PrecondBlock = BlockNone
		sp.AMGType = AMGNone
		sp.Flexible = sp.Solver.needsFlexible()
		sp.ResetMumps()

	case KeyPrecondPoly1, KeyPrecondPoly2:
		if key == KeyPrecondPoly1 {
			sp.Precond = PrecondPoly1
		} else {
			sp.Precond = PrecondPoly2
		}
		sp.PrecondBlock = BlockNone
		sp.AMGType = AMGNone
		sp.SolverClass = ClassNative
		sp.Flexible = sp.Solver.needsFlexible()

	case KeyPrecondSSOR:
		if cap.CheckClass(ClassPETSc) != ClassPETSc {
			return unavailable(sp.name, "precond",
				"PETSc is not available with your installation")
		}
		sp.SolverClass = ClassPETSc
		sp.Precond = PrecondSSOR
		sp.PrecondBlock = BlockNone
		sp.AMGType = AMGNone
		sp.Flexible = sp.Solver.needsFlexible()
	}

	// PETSc convention for residual scaling
	if sp.SolverClass == ClassPETSc {
		sp.ResNorm = ResNormRHS
	}

	sp.syncContext()
	return nil
}

// setPrecondAMG handles the "amg" and "amg_block" preconditioner keywords.
// The default AMG flavor follows the hosting class answered by the registry
// for the current solver class. AMG preconditioning varies between
// applications, so a non-flexible outer Krylov solver is switched to its
// flexible counterpart.
func (sp *Param) setPrecondAMG(cap *Capabilities, block bool) error {
	if !block {

		ret := cap.CheckClass(sp.SolverClass)

		var amg AMGType
		switch ret {
		case ClassNative:
			amg = AMGInHouseK
		case ClassPETSc:
			amg = AMGPetscGAMGV
		case ClassHYPRE:
			amg = AMGBoomerV
		default:
			return incompatible(sp.name, "precond",
				"no solver class can host an AMG preconditioner")
		}

		sp.Precond = PrecondAMG
		sp.PrecondBlock = BlockNone
		sp.Flexible = true
		sp.switchToFlexibleSolver(cap)
		sp.AMGType = amg
		sp.SolverClass = ret
		if ret == ClassHYPRE {
			sp.ResetBoomer()
		}
		return nil
	}

	// block variant: routing depends on how HYPRE is reachable since the
	// native HYPRE interface has no block preconditioning
	switch sp.SolverClass {

	case ClassNative:
		sp.Precond = PrecondAMG
		sp.PrecondBlock = BlockDiag
		sp.Flexible = true
		sp.switchToFlexibleSolver(cap)
		sp.AMGType = AMGInHouseK

	case ClassPETSc:
		if cap.CheckClass(ClassPETSc) != ClassPETSc {
			return unavailable(sp.name, "precond",
				"PETSc is not available with your installation")
		}
		sp.Precond = PrecondAMG
		sp.PrecondBlock = BlockDiag
		sp.Flexible = true
		sp.switchToFlexibleSolver(cap)
		sp.AMGType = AMGPetscGAMGV

	case ClassHYPRE:
		switch {
		case cap.HYPRE:
			sp.Precond = PrecondAMG
			sp.PrecondBlock = BlockNone
			sp.Flexible = true
			sp.switchToFlexibleSolver(cap)
			sp.AMGType = AMGBoomerV
			sp.SolverClass = ClassHYPRE
			sp.ResetBoomer()
			cap.warnf("system %q: switch to HYPRE."+
				" No block preconditioner will be used", sp.name)

		case cap.HypreViaPetsc():
			sp.Precond = PrecondAMG
			sp.PrecondBlock = BlockDiag
			sp.Flexible = true
			sp.switchToFlexibleSolver(cap)
			sp.AMGType = AMGBoomerV
			sp.SolverClass = ClassPETSc
			sp.ResetBoomer()

		default:
			return unavailable(sp.name, "precond",
				"neither PETSc nor HYPRE is available with your installation")
		}

	default:
		return incompatible(sp.name, "precond",
			"no solver class can host a block AMG preconditioner")
	}

	return nil
}

// switchToFlexibleSolver replaces a non-flexible Krylov solver with its
// flexible counterpart when an AMG preconditioner is requested
func (sp *Param) switchToFlexibleSolver(cap *Capabilities) {
	switch sp.Solver {
	case SolverCG:
		cap.warnf("system %q: switch to a flexible variant for CG", sp.name)
		sp.Solver = SolverFCG

	case SolverGMRES, SolverCR3, SolverBiCG, SolverBiCGStab2:
		cap.warnf("system %q: switch to a flexible variant: GCR solver",
			sp.name)
		sp.Solver = SolverGCR
	}
}

// SetSolverClass sets the hosting library family from its keyword. Unlike
// the implicit routing performed by SetPrecond, an explicit family request
// must be honored exactly or fail: asking for HYPRE never silently reroutes
// through PETSc.
func (sp *Param) SetSolverClass(keyval string, cap *Capabilities) error {
	class, ok := ClassNames[keyval]
	if !ok {
		return fmt.Errorf("%w: solver class %q", ErrUnknownKey, keyval)
	}

	switch class {

	case ClassNative:
		sp.SolverClass = ClassNative
		if sp.Precond == PrecondAMG {
			if err := sp.ReconcileAMGType(cap); err != nil {
				return err
			}
		}

	case ClassHYPRE:
		// probe the flags directly so that a rejected reroute leaves no
		// substitution warning in the audit trail
		switch {
		case cap.HYPRE:
		case cap.HypreViaPetsc():
			return unavailable(sp.name, "solver_family",
				"HYPRE is only reachable through PETSc; an explicit HYPRE"+
					" request cannot be honored")
		default:
			return unavailable(sp.name, "solver_family",
				"neither PETSc nor HYPRE is available with your installation")
		}

		sp.SolverClass = ClassHYPRE
		if sp.Precond == PrecondAMG {
			if err := sp.ReconcileAMGType(cap); err != nil {
				return err
			}
			sp.ResetBoomer()
		}

	case ClassMUMPS:
		ret := cap.CheckClass(ClassMUMPS)
		if ret == ClassNone {
			return unavailable(sp.name, "solver_family",
				"MUMPS is not available with your installation")
		}
		sp.SolverClass = ret // MUMPS, or PETSc hosting MUMPS

	case ClassPETSc:
		if cap.CheckClass(ClassPETSc) != ClassPETSc {
			return unavailable(sp.name, "solver_family",
				"PETSc is not available with your installation")
		}
		sp.SolverClass = ClassPETSc
		if sp.Precond == PrecondAMG {
			if err := sp.ReconcileAMGType(cap); err != nil {
				return err
			}
		}
	}

	// a flexible solver stays flexible whatever family hosts it
	sp.Flexible = sp.Flexible || sp.Solver.needsFlexible()

	sp.syncContext()
	return nil
}

// SetAMGType sets the algebraic multigrid flavor from its keyword; an
// unrecognized keyword resolves to no AMG. Each flavor drags in the class
// able to execute it, so the registry is consulted for the third-party ones.
func (sp *Param) SetAMGType(keyval string, cap *Capabilities) error {
	amg, ok := AMGNames[keyval]
	if !ok {
		sp.AMGType = AMGNone
		sp.syncContext()
		return nil
	}

	switch amg {

	case AMGInHouseV, AMGInHouseK:
		sp.AMGType = amg
		sp.SolverClass = ClassNative
		sp.Flexible = true

	case AMGBoomerV, AMGBoomerW:
		// block preconditioning requires the PETSc interface to BoomerAMG
		wanted := ClassHYPRE
		if sp.PrecondBlock != BlockNone {
			wanted = ClassPETSc
		}
		ret := cap.CheckClass(wanted)
		if ret == ClassNone {
			return unavailable(sp.name, "amg_type",
				"no library able to run BoomerAMG is available with your"+
					" installation")
		}

		sp.AMGType = amg
		sp.SolverClass = ret
		sp.Flexible = true
		sp.ResetBoomer()

	case AMGPetscGAMGV, AMGPetscGAMGW, AMGPetscPCMG:
		if cap.CheckClass(ClassPETSc) != ClassPETSc {
			return unavailable(sp.name, "amg_type",
				"invalid choice of AMG type: PETSc is not available with"+
					" your installation")
		}
		sp.AMGType = amg
		sp.SolverClass = ClassPETSc
		sp.Flexible = true
	}

	sp.syncContext()
	return nil
}

// ReconcileAMGType remaps the AMG flavor to one valid for the current solver
// class. It is a no-op unless an AMG preconditioner is selected, and it is
// idempotent: every remap target is itself valid for the class.
func (sp *Param) ReconcileAMGType(cap *Capabilities) error {
	if sp.Precond != PrecondAMG {
		return nil
	}

	switch sp.SolverClass {

	case ClassPETSc:
		if !cap.PETSc {
			return unavailable(sp.name, "amg_type",
				"PETSc is not available with your installation")
		}
		if sp.AMGType == AMGInHouseV || sp.AMGType == AMGInHouseK {
			sp.AMGType = AMGPetscGAMGV
		}
		if !cap.HypreViaPetsc() {
			// BoomerAMG cannot be hosted: fall back on GAMG
			if sp.AMGType == AMGBoomerV {
				sp.AMGType = AMGPetscGAMGV
			} else if sp.AMGType == AMGBoomerW {
				sp.AMGType = AMGPetscGAMGW
			}
		}

	case ClassHYPRE:
		if !cap.HYPRE && !cap.HypreViaPetsc() {
			return unavailable(sp.name, "amg_type",
				"HYPRE is not available with your installation")
		}
		switch sp.AMGType {
		case AMGInHouseV, AMGInHouseK, AMGPetscPCMG, AMGPetscGAMGV:
			sp.AMGType = AMGBoomerV
		case AMGPetscGAMGW:
			sp.AMGType = AMGBoomerW
		}

	case ClassNative:
		switch sp.AMGType {
		case AMGPetscPCMG, AMGPetscGAMGV, AMGPetscGAMGW,
			AMGBoomerV, AMGBoomerW:
			sp.AMGType = AMGInHouseK
		}

	default:
		return incompatible(sp.name, "amg_type",
			"incompatible solver class for an AMG preconditioner")
	}

	return nil
}
