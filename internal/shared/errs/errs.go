// Package errs defines the error taxonomy shared by the blueprint engine.
//
// Every failure surfaced by the engine carries one of five kinds:
//   - Configuration: missing or inconsistent process configuration
//   - InputValidation: unusable birth data, raised before any network call
//   - Upstream: the ephemeris service failed or timed out
//   - DataMapping: a provider payload or canonical table mismatch
//   - ComputationInvariant: an internal invariant was violated
//
// Kinds are checked with errors.Is against the exported sentinels, so
// wrapped errors keep their classification through fmt.Errorf("%w").
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an engine error.
type Kind int

const (
	KindUnknown Kind = iota
	KindConfiguration
	KindInputValidation
	KindUpstream
	KindDataMapping
	KindComputationInvariant
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindInputValidation:
		return "input_validation"
	case KindUpstream:
		return "upstream"
	case KindDataMapping:
		return "data_mapping"
	case KindComputationInvariant:
		return "computation_invariant"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is checks.
var (
	ErrConfiguration        = errors.New("configuration error")
	ErrInputValidation      = errors.New("input validation error")
	ErrUpstream             = errors.New("upstream error")
	ErrDataMapping          = errors.New("data mapping error")
	ErrComputationInvariant = errors.New("computation invariant error")
)

// Error is a kinded engine error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // optional cause
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the cause chain.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinel in addition to the cause chain.
func (e *Error) Is(target error) bool {
	return target == sentinel(e.Kind)
}

func sentinel(k Kind) error {
	switch k {
	case KindConfiguration:
		return ErrConfiguration
	case KindInputValidation:
		return ErrInputValidation
	case KindUpstream:
		return ErrUpstream
	case KindDataMapping:
		return ErrDataMapping
	case KindComputationInvariant:
		return ErrComputationInvariant
	default:
		return nil
	}
}

// Configuration creates a configuration error.
func Configuration(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConfiguration, Msg: fmt.Sprintf(format, args...)}
}

// Validation creates an input validation error.
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInputValidation, Msg: fmt.Sprintf(format, args...)}
}

// Upstream creates an upstream error with an optional cause.
func Upstream(cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindUpstream, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// Mapping creates a data mapping error.
func Mapping(format string, args ...interface{}) *Error {
	return &Error{Kind: KindDataMapping, Msg: fmt.Sprintf(format, args...)}
}

// Invariant creates a computation invariant error.
func Invariant(format string, args ...interface{}) *Error {
	return &Error{Kind: KindComputationInvariant, Msg: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
