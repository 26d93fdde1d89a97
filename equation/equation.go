// Package equation holds the per-equation setup parameters and the
// string-keyed API through which a case deck or user code configures them.
// Keywords are resolved here, at the configuration boundary; the linear
// solver settings themselves live in a sles.Param owned by the equation.
package equation

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofvm/gofv/sles"
)

// ErrLocked reports a mutation attempted after the setup phase closed
var ErrLocked = errors.New("equation setup is locked")

// ErrUnknownKey reports a setting key outside the recognized vocabulary
var ErrUnknownKey = errors.New("unknown setting key")

// Key is a recognized equation setting
type Key uint

const (
	KeySolver Key = iota
	KeyPrecond
	KeySolverFamily
	KeyAMGType
	KeyMaxIter
	KeyRtol
	KeyAtol
	KeyDtol
	KeyRestart
	KeyVerbosity
	KeyResNorm
)

var KeyNames = map[string]Key{
	"solver":        KeySolver,
	"precond":       KeyPrecond,
	"solver_family": KeySolverFamily,
	"amg_type":      KeyAMGType,
	"max_iter":      KeyMaxIter,
	"rtol":          KeyRtol,
	"atol":          KeyAtol,
	"dtol":          KeyDtol,
	"restart":       KeyRestart,
	"verbosity":     KeyVerbosity,
	"resnorm":       KeyResNorm,
}

// Param gathers the settings of one equation. Each equation owns its linear
// solver record; mutation goes through Set during the setup phase and is
// refused once the setup is locked.
type Param struct {
	Name string
	SLES *sles.Param

	locked bool
}

// New creates the setup parameters for an equation solving the variable
// field fieldID (or -1 when no field is associated)
func New(name string, fieldID int) *Param {
	return &Param{
		Name: name,
		SLES: sles.New(fieldID, name),
	}
}

// Clone creates a new equation parameter set replicating every solver
// setting of eq, with its own name and field association. The solver
// context is deep-copied, never shared.
func (eq *Param) Clone(name string, fieldID int) *Param {
	dup := New(name, fieldID)
	dup.SLES.CopyFrom(eq.SLES)
	dup.SLES.FieldID = fieldID
	return dup
}

// Lock closes the setup phase; any further Set returns ErrLocked
func (eq *Param) Lock() {
	eq.locked = true
}

// Locked reports whether the setup phase is closed
func (eq *Param) Locked() bool {
	return eq.locked
}

// Set applies one keyword setting to the equation, consulting the
// capability registry whenever the setting touches a third-party family
func (eq *Param) Set(key, value string, cap *sles.Capabilities) error {
	if eq.locked {
		return fmt.Errorf("%w: equation %q, key %q", ErrLocked, eq.Name, key)
	}

	k, ok := KeyNames[key]
	if !ok {
		return fmt.Errorf("%w: equation %q, key %q", ErrUnknownKey,
			eq.Name, key)
	}

	switch k {

	case KeySolver:
		return eq.SLES.SetSolver(value, cap)

	case KeyPrecond:
		return eq.SLES.SetPrecond(value, cap)

	case KeySolverFamily:
		return eq.SLES.SetSolverClass(value, cap)

	case KeyAMGType:
		return eq.SLES.SetAMGType(value, cap)

	case KeyMaxIter:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("equation %q: invalid max_iter %q: %w",
				eq.Name, value, err)
		}
		eq.SLES.SetCvgParam(sles.KeepDefault, sles.KeepDefault,
			sles.KeepDefault, n)

	case KeyRtol, KeyAtol, KeyDtol:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("equation %q: invalid %s %q: %w",
				eq.Name, key, value, err)
		}
		rtol, atol, dtol := sles.KeepDefault, sles.KeepDefault,
			sles.KeepDefault
		switch k {
		case KeyRtol:
			rtol = v
		case KeyAtol:
			atol = v
		case KeyDtol:
			dtol = v
		}
		eq.SLES.SetCvgParam(rtol, atol, dtol, sles.KeepDefaultIter)

	case KeyRestart:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("equation %q: invalid restart %q: %w",
				eq.Name, value, err)
		}
		eq.SLES.Restart = n

	case KeyVerbosity:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("equation %q: invalid verbosity %q: %w",
				eq.Name, value, err)
		}
		eq.SLES.Verbosity = n

	case KeyResNorm:
		rn, ok := sles.ResNormNames[value]
		if !ok {
			return fmt.Errorf("%w: resnorm %q", sles.ErrUnknownKey, value)
		}
		eq.SLES.ResNorm = rn
	}

	return nil
}

// Report renders the resolved linear algebra settings of the equation
func (eq *Param) Report() string {
	return eq.SLES.Report()
}
