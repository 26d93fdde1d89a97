package sles

import "fmt"

// Capabilities records which solver library families the current build/run
// can reach, either directly or as a sub-feature of PETSc. It is passed
// explicitly into every resolution call so that availability is never read
// from process-wide state. Fallback substitutions are recorded as warnings on
// the struct; the registry itself never fails.
type Capabilities struct {
	PETSc bool
	HYPRE bool
	MUMPS bool

	// sub-features exposed through a PETSc build
	HypreInPETSc bool
	MumpsInPETSc bool

	Verbose  bool
	Warnings []string
}

// Detect returns the capabilities of this build. None of the third-party
// solver libraries are linked into the pure Go binary, so only the in-house
// family is reported; runs that audit third-party configurations override
// the flags explicitly.
func Detect() *Capabilities {
	return &Capabilities{}
}

func (cp *Capabilities) warnf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	cp.Warnings = append(cp.Warnings, msg)
	if cp.Verbose {
		fmt.Printf("warning: %s\n", msg)
	}
}

// HypreViaPetsc reports whether HYPRE solvers are reachable through PETSc
func (cp *Capabilities) HypreViaPetsc() bool {
	return cp.PETSc && cp.HypreInPETSc
}

// MumpsViaPetsc reports whether MUMPS is reachable through PETSc
func (cp *Capabilities) MumpsViaPetsc() bool {
	return cp.PETSc && cp.MumpsInPETSc
}

// CheckClass checks the availability of a solver class and returns the
// requested one if possible, an alternative hosting class with a warning, or
// ClassNone when nothing can serve the request
func (cp *Capabilities) CheckClass(wanted SolverClass) SolverClass {
	switch wanted {

	case ClassNative: // no issue
		return ClassNative

	case ClassPETSc:
		if cp.PETSc {
			return ClassPETSc
		}
		return ClassNone

	case ClassHYPRE:
		if cp.HYPRE {
			return ClassHYPRE
		}
		if cp.HypreViaPetsc() {
			cp.warnf("switch to the PETSc library since HYPRE is not" +
				" available as a stand-alone library")
			return ClassPETSc
		}
		return ClassNone

	case ClassMUMPS:
		if cp.MUMPS {
			return ClassMUMPS
		}
		if cp.MumpsViaPetsc() {
			cp.warnf("switch to the PETSc library since MUMPS is not" +
				" available as a stand-alone library")
			return ClassPETSc
		}
		return ClassNone

	default:
		return ClassNone
	}
}

// Available reports whether a class can execute at all, directly or hosted
func (cp *Capabilities) Available(class SolverClass) bool {
	switch class {
	case ClassNative:
		return true
	case ClassPETSc:
		return cp.PETSc
	case ClassHYPRE:
		return cp.HYPRE || cp.HypreViaPetsc()
	case ClassMUMPS:
		return cp.MUMPS || cp.MumpsViaPetsc()
	}
	return false
}
