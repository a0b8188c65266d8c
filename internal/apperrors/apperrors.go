// Package apperrors defines the error taxonomy shared by all services.
// Services return *Error values; the HTTP layer maps Kind to a status code
// and only ever exposes Message to clients.
package apperrors

import (
	"errors"
)

type Kind string

const (
	KindValidation   Kind = "validation"   // malformed or missing input
	KindConflict     Kind = "conflict"     // duplicate unique field
	KindUnauthorized Kind = "unauthorized" // bad credentials or missing token
	KindForbidden    Kind = "forbidden"    // invalid, malformed or expired token
	KindNotFound     Kind = "not_found"    // resource absent or not owned
	KindInternal     Kind = "internal"     // storage or unexpected failure
)

// Error carries a machine-readable kind, a user-facing message and an
// optional wrapped cause. The cause is for server-side logs only.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// New creates an error with a kind and a user-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an error that records an underlying cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf extracts the kind from an error chain. Unrecognized errors are
// treated as internal failures.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
