// Package apperr defines the error taxonomy shared by services and handlers.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindForbidden
	KindNotFound
)

// Error carries a kind, a client-safe message and an optional field name
// for field-specific validation failures.
type Error struct {
	Kind    Kind
	Message string
	Field   string
	err     error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.err }

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }

// ValidationField is like Validation but names the offending field in the
// response body (e.g. duplicate email on register).
func ValidationField(field, msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg, Field: field}
}

func Auth(msg string) *Error      { return &Error{Kind: KindAuth, Message: msg} }
func Forbidden(msg string) *Error { return &Error{Kind: KindForbidden, Message: msg} }
func NotFound(msg string) *Error  { return &Error{Kind: KindNotFound, Message: msg} }

// Internal wraps an unexpected error; the wrapped cause is logged, never
// serialized to the client.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Server error", err: err}
}

// ErrInvalidCredentials is the merged outcome for unknown email and wrong
// password. Callers must not distinguish the two.
var ErrInvalidCredentials = Auth("Invalid credentials")

// Status maps an error to its HTTP status code. Anything outside the
// taxonomy is a 500.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Client extracts the client-facing message and field for an error,
// collapsing non-taxonomy errors to a generic message.
func Client(err error) (msg, field string) {
	var e *Error
	if !errors.As(err, &e) || e.Kind == KindInternal {
		return "Server error", ""
	}
	return e.Message, e.Field
}
