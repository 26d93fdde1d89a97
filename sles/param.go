package sles

// KeepDefault is the sentinel passed to SetCvgParam to leave a convergence
// member unchanged
const (
	KeepDefault     = -999999.0
	KeepDefaultIter = -999999
)

// Context is the solver-dependent parameter sub-record attached to a Param:
// either BoomerAMG multigrid tuning or MUMPS factorization settings. The
// concrete type is the stored tag; a nil Context means no extra settings.
// A context belongs to exactly one Param and is never shared: replacing it
// always installs a fresh or deep-copied record.
type Context interface {
	Copy() Context
	Report(name string) string
}

// Convergence gathers the stopping criteria of an iterative solve
type Convergence struct {
	MaxIter int
	Atol    float64 // absolute tolerance
	Rtol    float64 // relative tolerance
	Dtol    float64 // divergence tolerance
}

// Param describes how one linear system is solved: algorithm, hosting
// library family, preconditioning, multigrid choice, convergence criteria
// and the solver-dependent context. One Param is owned and mutated by
// exactly one equation-setup sequence.
type Param struct {
	name      string // immutable after creation
	FieldID   int    // associated variable field, or -1
	Verbosity int

	SolverClass  SolverClass
	Solver       SolverType
	Precond      PrecondType
	PrecondBlock BlockPrecondType
	AMGType      AMGType

	Flexible bool // solver tolerates a preconditioner varying per iteration
	Restart  int  // restart length for restarted Krylov methods
	ResNorm  ResNormType

	Cvg     Convergence
	Context Context
}

// New creates a solver parameter record with the default settings: GCR
// hosted by the in-house family with a diagonal preconditioner
func New(fieldID int, name string) *Param {
	return &Param{
		name:         name,
		FieldID:      fieldID,
		Verbosity:    0,
		SolverClass:  ClassNative,
		Solver:       SolverGCR,
		Precond:      PrecondDiag,
		PrecondBlock: BlockNone,
		AMGType:      AMGNone,
		Flexible:     false,
		Restart:      15,
		ResNorm:      ResNormFilteredRHS,
		Cvg: Convergence{
			MaxIter: 10000,
			Atol:    1e-15,
			Rtol:    1e-6,
			Dtol:    1e3,
		},
		Context: nil,
	}
}

// Name returns the identifier of the system, set once at creation
func (sp *Param) Name() string {
	return sp.name
}

// CopyFrom copies every scalar setting of src into sp, leaving the name
// untouched. The context record is deep-copied when sp's post-copy state
// calls for one of the same tag; when src carries a context of another tag
// (or none), a fresh default record of the needed tag is installed instead,
// so the tag always matches the copied solver/precond fields.
func (sp *Param) CopyFrom(src *Param) {
	if src == nil {
		return
	}

	sp.Verbosity = src.Verbosity
	sp.FieldID = src.FieldID

	sp.SolverClass = src.SolverClass
	sp.Solver = src.Solver
	sp.Precond = src.Precond
	sp.PrecondBlock = src.PrecondBlock
	sp.AMGType = src.AMGType
	sp.Flexible = src.Flexible
	sp.Restart = src.Restart
	sp.ResNorm = src.ResNorm

	sp.Cvg = src.Cvg

	switch {
	case sp.Precond == PrecondMUMPS || sp.Solver == SolverMUMPS:
		if m, ok := src.Context.(*MumpsParam); ok {
			sp.Context = m.Copy()
		} else {
			sp.Context = NewMumpsParam()
		}

	case boomerIsNeeded(sp.AMGType):
		if b, ok := src.Context.(*BoomerParam); ok {
			sp.Context = b.Copy()
		} else {
			sp.Context = NewBoomerParam()
		}

	default:
		sp.Context = nil
	}
}

// SetCvgParam updates the convergence criteria. Pass KeepDefault (or
// KeepDefaultIter for the iteration count) to leave a member unchanged.
func (sp *Param) SetCvgParam(rtol, atol, dtol float64, maxIter int) {
	if atol != KeepDefault {
		sp.Cvg.Atol = atol
	}
	if rtol != KeepDefault {
		sp.Cvg.Rtol = rtol
	}
	if dtol != KeepDefault {
		sp.Cvg.Dtol = dtol
	}
	if maxIter != KeepDefaultIter {
		sp.Cvg.MaxIter = maxIter
	}
}

// syncContext realigns the context tag with the current solver settings:
// MUMPS settings whenever the direct solver is in play, multigrid tuning
// whenever a BoomerAMG flavor is selected, nothing otherwise. An existing
// context of the right tag is kept as-is.
func (sp *Param) syncContext() {
	switch {
	case sp.Solver == SolverMUMPS || sp.Precond == PrecondMUMPS:
		if _, ok := sp.Context.(*MumpsParam); !ok {
			sp.Context = NewMumpsParam()
		}
	case boomerIsNeeded(sp.AMGType):
		if _, ok := sp.Context.(*BoomerParam); !ok {
			sp.Context = NewBoomerParam()
		}
	default:
		sp.Context = nil
	}
}

// ResetBoomer replaces the context, whatever its current tag, with a fresh
// default BoomerAMG tuning record
func (sp *Param) ResetBoomer() {
	sp.Context = NewBoomerParam()
}

// ResetMumps replaces the context, whatever its current tag, with a fresh
// default MUMPS settings record
func (sp *Param) ResetMumps() {
	sp.Context = NewMumpsParam()
}

// boomerContext returns the current BoomerAMG context, installing a fresh
// one when the context is absent or of another tag
func (sp *Param) boomerContext() *BoomerParam {
	if b, ok := sp.Context.(*BoomerParam); ok {
		return b
	}
	b := NewBoomerParam()
	sp.Context = b
	return b
}

// mumpsContext returns the current MUMPS context, installing a fresh one
// when the context is absent or of another tag
func (sp *Param) mumpsContext() *MumpsParam {
	if m, ok := sp.Context.(*MumpsParam); ok {
		return m
	}
	m := NewMumpsParam()
	sp.Context = m
	return m
}

// SetBoomerAMG resets the multigrid context and sets its main members
func (sp *Param) SetBoomerAMG(nDownIter int, downSmoother BoomerSmoother,
	nUpIter int, upSmoother BoomerSmoother, coarseSolver BoomerSmoother,
	coarsenAlgo BoomerCoarsenAlgo) {
	sp.ResetBoomer()

	b := sp.Context.(*BoomerParam)
	b.NDownIter = nDownIter
	b.DownSmoother = downSmoother
	b.NUpIter = nUpIter
	b.UpSmoother = upSmoother
	b.CoarseSolver = coarseSolver
	b.CoarsenAlgo = coarsenAlgo
}

// SetBoomerAMGAdvanced sets the advanced multigrid members, keeping the main
// members to their current values
func (sp *Param) SetBoomerAMGAdvanced(strongThreshold float64,
	interpAlgo BoomerInterpAlgo, pMax, nAggLevels, nAggPaths int) {
	b := sp.boomerContext()
	b.StrongThreshold = strongThreshold
	b.InterpAlgo = interpAlgo
	b.PMax = pMax
	b.NAggLevels = nAggLevels
	b.NAggPaths = nAggPaths
}

// SetMumps resets the direct-factorization context and sets its main members
func (sp *Param) SetMumps(single bool, factoType MumpsFactoType) {
	sp.ResetMumps()

	m := sp.Context.(*MumpsParam)
	m.Single = single
	m.FactoType = factoType
}

// SetMumpsAdvanced sets the advanced factorization members, keeping the main
// members to their current values
func (sp *Param) SetMumpsAdvanced(analysisAlgo MumpsAnalysisAlgo,
	blockAnalysis int, memCoef, blrThreshold float64, irSteps int,
	memUsage MumpsMemoryUsage, advancedOptim bool) {
	m := sp.mumpsContext()
	m.AnalysisAlgo = analysisAlgo
	m.BlockAnalysis = blockAnalysis
	m.MemCoef = memCoef
	m.BLRThreshold = blrThreshold
	if irSteps < 0 {
		irSteps = -irSteps
	}
	m.IRSteps = irSteps
	m.MemUsage = memUsage
	m.AdvancedOptim = advancedOptim
}
