package sles

import (
	"fmt"
	"strings"
)

// Report renders the fully resolved settings as the block written to the
// setup log. It is a pure function of the record, used to audit and
// reproduce a configuration, never for control flow.
func (sp *Param) Report() string {
	var sb strings.Builder
	w := func(format string, args ...interface{}) {
		fmt.Fprintf(&sb, format, args...)
	}
	name := sp.name

	w("\n### %s | Linear algebra settings\n", name)
	w("  * %s | Family:                   %s\n", name, sp.SolverClass.Print())
	w("  * %s | Verbosity:                %d\n", name, sp.Verbosity)
	w("  * %s | Field id:                 %d\n", name, sp.FieldID)
	w("  * %s | Solver.Name:              %s\n", name, sp.Solver.Print())

	if sp.Solver == SolverMUMPS {
		if sp.Context != nil {
			sb.WriteString(sp.Context.Report(name))
		}
		return sb.String()
	}

	// iterative solvers

	if sp.Solver == SolverAMG {
		w("  * %s | AMG.Type:                 %s\n", name, sp.AMGType.Print())
		sp.reportBoomer(&sb)
	}

	w("  * %s | Solver.Precond:           %s\n", name, sp.Precond.Print())

	if sp.Precond == PrecondAMG {
		w("  * %s | AMG.Type:                 %s\n", name, sp.AMGType.Print())
		sp.reportBoomer(&sb)
	} else if sp.Precond == PrecondMUMPS && sp.Context != nil {
		sb.WriteString(sp.Context.Report(name))
	}

	w("  * %s | Block.Precond:            %s\n", name, sp.PrecondBlock.Print())

	w("  * %s | Solver.MaxIter:           %d\n", name, sp.Cvg.MaxIter)
	w("  * %s | Solver.rtol:             % -10.6e\n", name, sp.Cvg.Rtol)
	w("  * %s | Solver.atol:             % -10.6e\n", name, sp.Cvg.Atol)

	if sp.Solver.restartable() {
		w("  * %s | Solver.Restart:           %d\n", name, sp.Restart)
	}

	w("  * %s | Normalization:            %s\n", name, sp.ResNorm.Print())

	return sb.String()
}

func (sp *Param) reportBoomer(sb *strings.Builder) {
	if sp.AMGType != AMGBoomerV && sp.AMGType != AMGBoomerW {
		return
	}
	if b, ok := sp.Context.(*BoomerParam); ok {
		sb.WriteString(b.Report(sp.name))
	}
}
