// Package apperror defines the error kinds the application layer reports and
// the HTTP status each kind maps to.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindMissingField
	KindInvalidArgument
	KindConflict
	KindNotFound
	KindUnauthorized
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindMissingField:
		return "missing_field"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

// Status returns the HTTP status code carried by the kind.
func (k Kind) Status() int {
	switch k {
	case KindMissingField, KindInvalidArgument:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified application error. Field is set for MissingField and
// InvalidArgument errors.
type Error struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same kind, so the sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrMissingField    = &Error{Kind: KindMissingField, Message: "missing field"}
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument, Message: "invalid argument"}
	ErrConflict        = &Error{Kind: KindConflict, Message: "conflict"}
	ErrNotFound        = &Error{Kind: KindNotFound, Message: "not found"}
	ErrUnauthorized    = &Error{Kind: KindUnauthorized, Message: "unauthorized"}
	ErrForbidden       = &Error{Kind: KindForbidden, Message: "forbidden"}
)

func MissingField(field string) *Error {
	return &Error{Kind: KindMissingField, Field: field, Message: fmt.Sprintf("the field %q is required", field)}
}

func InvalidArgument(field, msg string) *Error {
	return &Error{Kind: KindInvalidArgument, Field: field, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// KindOf returns the kind of the first *Error in err's chain, KindInternal otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Status is shorthand for KindOf(err).Status().
func Status(err error) int {
	return KindOf(err).Status()
}
