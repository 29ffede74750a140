// Package serrors attaches semantic kinds to errors so transport layers can
// map failures to status codes without knowing where they came from.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a sentinel describing the category of a failure.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic kind. Kinds are comparable values and match
// through errors.Is and errors.As on an *Error.
func NewKind(name string) Kind { return kind{s: name} }

var (
	ErrNotFound     = NewKind("NOT_FOUND")
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	ErrForbidden    = NewKind("FORBIDDEN")
	ErrBadRequest   = NewKind("BAD_REQUEST")
	ErrConflict     = NewKind("CONFLICT")
	ErrInternal     = NewKind("INTERNAL")
	ErrTimeout      = NewKind("TIMEOUT")
	ErrUnavailable  = NewKind("UNAVAILABLE")
	ErrRateLimited  = NewKind("RATE_LIMITED")
)

// Error carries a kind, an optional cause and an optional message.
//
// Error() renders "<msg>: <cause>", "<msg>", "<cause>" or the kind name,
// depending on which parts are set. errors.Is and errors.As match either the
// kind or anything in the cause chain.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With creates an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap creates an error of kind k around err with a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates an error that carries nothing but its kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

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
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the error's kind, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to the error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped error, or nil.
func (e *Error) Cause() error { return e.err }

// KindOf returns the first kind found in err's chain. Errors without a kind
// are reported as ErrInternal; a nil error has no kind.
func KindOf(err error) Kind {
	if err == nil {
		return nil
	}

	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// MessageOf returns the message of the outermost *Error in err's chain that
// has one, falling back to the kind name.
func MessageOf(err error) string {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if se, ok := e.(*Error); ok && se.msg != "" { //nolint: errorlint
			return se.msg
		}
	}
	if k := KindOf(err); k != nil {
		return k.Error()
	}

	return ""
}

// HTTPStatus maps a kind to its HTTP status code. Unknown kinds map to 500.
func HTTPStatus(k Kind) int {
	switch k {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrUnauthorized:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	case ErrBadRequest:
		return http.StatusBadRequest
	case ErrConflict:
		return http.StatusConflict
	case ErrTimeout:
		return http.StatusGatewayTimeout
	case ErrUnavailable:
		return http.StatusServiceUnavailable
	case ErrRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
