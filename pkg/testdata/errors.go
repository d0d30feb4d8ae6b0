package testdata

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNoConstructors is wrapped by an UnavailableError when a type offers
	// no constructors at all.
	ErrNoConstructors = errors.New("type has no constructors")

	// ErrCyclic is wrapped by an UnavailableError when a type is needed
	// while it is already being synthesized further up the same path.
	ErrCyclic = errors.New("cyclic type dependency")
)

// UnavailableError reports that no value could be synthesized for Type.
type UnavailableError struct {
	Type   reflect.Type
	Reason string
	Err    error
}

func (e *UnavailableError) Error() string {
	msg := fmt.Sprintf("could not synthesize %s", typeName(e.Type))
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// IsUnavailable reports whether err (or anything it wraps) is an UnavailableError.
func IsUnavailable(err error) bool {
	var target *UnavailableError
	return errors.As(err, &target)
}

func unavailable(t reflect.Type, reason string, err error) *UnavailableError {
	return &UnavailableError{Type: t, Reason: reason, Err: err}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
