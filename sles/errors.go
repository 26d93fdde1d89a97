package sles

import (
	"errors"
	"fmt"
)

// ErrUnknownKey reports a keyword outside the recognized vocabulary. The
// record is left unchanged; the caller decides whether this is fatal.
var ErrUnknownKey = errors.New("unknown keyword")

// ErrorKind classifies configuration faults
type ErrorKind uint

const (
	// KindUnavailable: a requested library family/feature is not linked in
	// and no valid substitution exists
	KindUnavailable ErrorKind = iota
	// KindIncompatible: a family/setting pairing has no valid remap target
	KindIncompatible
)

// ConfigError is returned when a linear-solver setting cannot be honored.
// It names the system, the logical key being set and the reason, so a run
// log pinpoints the misconfiguration.
type ConfigError struct {
	System string
	Key    string
	Kind   ErrorKind
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("system %q: error detected while setting %q key: %s."+
		" Please check your installation settings", e.System, e.Key, e.Reason)
}

func unavailable(system, key, reason string) *ConfigError {
	return &ConfigError{System: system, Key: key, Kind: KindUnavailable,
		Reason: reason}
}

func incompatible(system, key, reason string) *ConfigError {
	return &ConfigError{System: system, Key: key, Kind: KindIncompatible,
		Reason: reason}
}
