// Package serrors provides semantic errors: a Kind sentinel that names the
// failure category, optionally wrapping a cause and carrying a human-readable
// message. Layers return *Error values and the HTTP boundary maps kinds to
// status codes.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name. Kinds are comparable and work with errors.Is/As through Error.
func NewKind(name string) Kind { return kind{s: name} }

// Generic kinds shared by every package. Domain packages declare their own
// kinds next to their entities.
var (
	// ErrBadRequest indicates the client sent a malformed or schema-invalid payload.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrInternal is the generic application error for unexpected failures.
	ErrInternal = NewKind("INTERNAL")
)

// Error represents a semantic error carrying a kind, an optional wrapped cause
// and an optional message.
//
// errors.Is(err, target) matches either the kind or the wrapped cause.
// Error() renders "<msg>: <cause>", "<msg>", "<cause>" or the kind name,
// depending on which parts are set.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a new semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the kind or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As allows type assertions against either the kind or the wrapped cause.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the kind associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf returns the kind of the outermost semantic error in err's chain.
// A bare Kind sentinel is its own kind. Nil is returned for plain errors.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) && se.kind != nil {
		return se.kind
	}

	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

// IsAny reports whether err matches any of the given kinds.
func IsAny(err error, kinds ...Kind) bool {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return true
		}
	}

	return false
}
