package sles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	sp := New(-1, "eq1")
	assert.Equal(t, "eq1", sp.Name())
	assert.Equal(t, -1, sp.FieldID)
	assert.Equal(t, 0, sp.Verbosity)
	assert.Equal(t, SolverGCR, sp.Solver)
	assert.Equal(t, ClassNative, sp.SolverClass)
	assert.Equal(t, PrecondDiag, sp.Precond)
	assert.Equal(t, BlockNone, sp.PrecondBlock)
	assert.Equal(t, AMGNone, sp.AMGType)
	assert.False(t, sp.Flexible)
	assert.Equal(t, 15, sp.Restart)
	assert.Equal(t, ResNormFilteredRHS, sp.ResNorm)
	assert.Equal(t, Convergence{MaxIter: 10000, Atol: 1e-15, Rtol: 1e-6,
		Dtol: 1e3}, sp.Cvg)
	assert.Nil(t, sp.Context)
}

func TestSetCvgParam(t *testing.T) {
	{ // only the members not flagged KeepDefault change
		sp := New(-1, "eq1")
		sp.SetCvgParam(KeepDefault, 1e-12, KeepDefault, KeepDefaultIter)
		assert.Equal(t, 1e-12, sp.Cvg.Atol)
		assert.Equal(t, 1e-6, sp.Cvg.Rtol)
		assert.Equal(t, 1e3, sp.Cvg.Dtol)
		assert.Equal(t, 10000, sp.Cvg.MaxIter)
	}
	{
		sp := New(-1, "eq1")
		sp.SetCvgParam(1e-8, KeepDefault, 1e4, 250)
		assert.Equal(t, 1e-8, sp.Cvg.Rtol)
		assert.Equal(t, 1e-15, sp.Cvg.Atol)
		assert.Equal(t, 1e4, sp.Cvg.Dtol)
		assert.Equal(t, 250, sp.Cvg.MaxIter)
	}
}

func TestCopyFrom(t *testing.T) {
	{ // scalars are copied, the name is not
		cp := allCaps()
		src := New(4, "velocity")
		src.Verbosity = 2
		require.NoError(t, src.SetSolver("fgmres", cp))
		require.NoError(t, src.SetPrecond("ilu0", cp))
		src.SetCvgParam(1e-9, 1e-14, KeepDefault, 500)
		src.Restart = 30

		dst := New(-1, "pressure")
		dst.CopyFrom(src)
		assert.Equal(t, "pressure", dst.Name())
		assert.Equal(t, 4, dst.FieldID)
		assert.Equal(t, 2, dst.Verbosity)
		assert.Equal(t, src.Solver, dst.Solver)
		assert.Equal(t, src.SolverClass, dst.SolverClass)
		assert.Equal(t, src.Precond, dst.Precond)
		assert.Equal(t, src.Cvg, dst.Cvg)
		assert.Equal(t, 30, dst.Restart)
		assert.Nil(t, dst.Context)
	}
	{ // multigrid context is deep-copied, never aliased
		cp := &Capabilities{HYPRE: true}
		src := New(0, "eq1")
		require.NoError(t, src.SetSolverClass("hypre", cp))
		require.NoError(t, src.SetPrecond("amg", cp))
		b := src.Context.(*BoomerParam)
		b.NDownIter = 5
		b.StrongThreshold = 0.7

		dst := New(1, "eq2")
		dst.CopyFrom(src)
		bc, ok := dst.Context.(*BoomerParam)
		require.True(t, ok)
		assert.Equal(t, *b, *bc)
		assert.NotSame(t, b, bc)

		bc.NDownIter = 1 // must not write through to src
		assert.Equal(t, 5, src.Context.(*BoomerParam).NDownIter)
	}
	{ // direct-factorization context follows the same rule
		cp := &Capabilities{MUMPS: true}
		src := New(0, "eq1")
		require.NoError(t, src.SetSolver("mumps", cp))
		src.SetMumpsAdvanced(MumpsAnalysisScotch, 3, 25, 1e-8, 2,
			MumpsMemoryConstrained, true)

		dst := New(1, "eq2")
		dst.CopyFrom(src)
		mc, ok := dst.Context.(*MumpsParam)
		require.True(t, ok)
		assert.Equal(t, *src.Context.(*MumpsParam), *mc)
		assert.NotSame(t, src.Context, dst.Context)
	}
	{ // tag mismatch in src: the destination gets a fresh record of the
		// tag its own post-copy state calls for
		src := New(0, "eq1")
		src.Precond = PrecondAMG
		src.AMGType = AMGBoomerV
		src.SolverClass = ClassHYPRE
		src.Flexible = true
		src.Context = NewMumpsParam() // wrong tag on purpose

		dst := New(1, "eq2")
		dst.CopyFrom(src)
		assert.IsType(t, &BoomerParam{}, dst.Context)
	}
	{
		sp := New(0, "eq1")
		sp.CopyFrom(nil) // no-op
		assert.Equal(t, SolverGCR, sp.Solver)
	}
}

func TestContextResets(t *testing.T) {
	{ // a reset fully replaces the previous context, whatever its tag
		sp := New(-1, "eq1")
		sp.ResetBoomer()
		first := sp.Context
		sp.ResetBoomer()
		assert.NotSame(t, first, sp.Context)

		sp.ResetMumps()
		assert.IsType(t, &MumpsParam{}, sp.Context)
		sp.ResetBoomer()
		assert.IsType(t, &BoomerParam{}, sp.Context)
	}
}

func TestBoomerSetters(t *testing.T) {
	sp := New(-1, "eq1")
	sp.SetBoomerAMG(3, BoomerHybridSSOR, 4, BoomerL1SGS, BoomerCG,
		BoomerCoarsenPMIS)
	b := sp.Context.(*BoomerParam)
	assert.Equal(t, 3, b.NDownIter)
	assert.Equal(t, BoomerHybridSSOR, b.DownSmoother)
	assert.Equal(t, 4, b.NUpIter)
	assert.Equal(t, BoomerL1SGS, b.UpSmoother)
	assert.Equal(t, BoomerCG, b.CoarseSolver)
	assert.Equal(t, BoomerCoarsenPMIS, b.CoarsenAlgo)
	// untouched advanced members keep their defaults
	assert.Equal(t, 0.5, b.StrongThreshold)
	assert.Equal(t, 8, b.PMax)

	// the advanced setter keeps the main members
	sp.SetBoomerAMGAdvanced(0.25, BoomerInterpExtPlusI, 4, 1, 2)
	b = sp.Context.(*BoomerParam)
	assert.Equal(t, 3, b.NDownIter)
	assert.Equal(t, 0.25, b.StrongThreshold)
	assert.Equal(t, BoomerInterpExtPlusI, b.InterpAlgo)
	assert.Equal(t, 4, b.PMax)
	assert.Equal(t, 1, b.NAggLevels)
	assert.Equal(t, 2, b.NAggPaths)

	// the advanced setter allocates when the context is absent
	sp2 := New(-1, "eq2")
	sp2.SetBoomerAMGAdvanced(0.6, BoomerInterpFF1, 6, 0, 1)
	assert.Equal(t, 0.6, sp2.Context.(*BoomerParam).StrongThreshold)
}

func TestMumpsSetters(t *testing.T) {
	sp := New(-1, "eq1")
	sp.SetMumps(true, MumpsFactoLDLTSym)
	m := sp.Context.(*MumpsParam)
	assert.True(t, m.Single)
	assert.Equal(t, MumpsFactoLDLTSym, m.FactoType)
	assert.Equal(t, MumpsAnalysisAuto, m.AnalysisAlgo)

	sp.SetMumpsAdvanced(MumpsAnalysisMetis, 4, 30, 1e-10, -3,
		MumpsMemoryCPUDriven, true)
	m = sp.Context.(*MumpsParam)
	assert.True(t, m.Single) // main members kept
	assert.Equal(t, MumpsAnalysisMetis, m.AnalysisAlgo)
	assert.Equal(t, 4, m.BlockAnalysis)
	assert.Equal(t, 30.0, m.MemCoef)
	assert.Equal(t, 1e-10, m.BLRThreshold)
	assert.Equal(t, 3, m.IRSteps) // sign is dropped
	assert.Equal(t, MumpsMemoryCPUDriven, m.MemUsage)
	assert.True(t, m.AdvancedOptim)
}
