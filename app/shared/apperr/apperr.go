package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a service error for transport mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalid
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// Error is a domain failure carrying the detail shown to API clients.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error with the same kind and detail, so sentinel
// values declared with these constructors work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Detail == t.Detail
}

func Invalid(detail string) *Error      { return &Error{Kind: KindInvalid, Detail: detail} }
func Unauthorized(detail string) *Error { return &Error{Kind: KindUnauthorized, Detail: detail} }
func Forbidden(detail string) *Error    { return &Error{Kind: KindForbidden, Detail: detail} }
func NotFound(detail string) *Error     { return &Error{Kind: KindNotFound, Detail: detail} }
func Conflict(detail string) *Error     { return &Error{Kind: KindConflict, Detail: detail} }
func Unavailable(detail string) *Error  { return &Error{Kind: KindUnavailable, Detail: detail} }

// Wrap attaches a cause to a domain error without changing what clients see.
func Wrap(e *Error, cause error) *Error {
	return &Error{Kind: e.Kind, Detail: e.Detail, Err: cause}
}

// KindOf reports the kind of err, or KindInternal when err is not a domain error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// DetailOf returns the client-facing detail of err, if it has one.
func DetailOf(err error) (string, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Detail, true
	}
	return "", false
}
