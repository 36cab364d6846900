// Package apperr defines the operational failures the API knows how to report.
// Anything returned by a handler that is not an *Error is treated as unexpected
// and surfaced to clients only as a generic 500.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind discriminates the failure categories handled by errhttp.
type Kind int

const (
	// KindInternal is the base failure with a caller-chosen status code.
	KindInternal Kind = iota
	// KindValidation marks malformed or out-of-constraint input.
	KindValidation
	// KindNotFound marks an unknown identifier or an unmatched route.
	KindNotFound
	// KindUnauthorized is reserved for authentication; no handler raises it yet.
	KindUnauthorized
)

const (
	defaultNotFoundMessage     = "Resource not found"
	defaultUnauthorizedMessage = "Unauthorized"
)

// Error is an operational failure carrying the HTTP status it maps to.
type Error struct {
	Kind        Kind
	Message     string
	StatusCode  int
	Operational bool
	Err         error // optional cause, never shown to clients
}

// New returns a base failure. A zero statusCode defaults to 500.
func New(message string, statusCode int) *Error {
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}
	return &Error{
		Kind:        KindInternal,
		Message:     message,
		StatusCode:  statusCode,
		Operational: true,
	}
}

// Validation returns a 400 failure.
func Validation(message string) *Error {
	return &Error{
		Kind:        KindValidation,
		Message:     message,
		StatusCode:  http.StatusBadRequest,
		Operational: true,
	}
}

// NotFound returns a 404 failure. An empty message defaults to "Resource not found".
func NotFound(message string) *Error {
	if message == "" {
		message = defaultNotFoundMessage
	}
	return &Error{
		Kind:        KindNotFound,
		Message:     message,
		StatusCode:  http.StatusNotFound,
		Operational: true,
	}
}

// NotFoundf is NotFound with fmt.Sprintf formatting.
func NotFoundf(format string, args ...any) *Error {
	return NotFound(fmt.Sprintf(format, args...))
}

// Unauthorized returns a 401 failure. An empty message defaults to "Unauthorized".
func Unauthorized(message string) *Error {
	if message == "" {
		message = defaultUnauthorizedMessage
	}
	return &Error{
		Kind:        KindUnauthorized,
		Message:     message,
		StatusCode:  http.StatusUnauthorized,
		Operational: true,
	}
}

// Error implements error.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the optional cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap attaches cause to e and returns e.
func (e *Error) Wrap(cause error) *Error {
	e.Err = cause
	return e
}

// As reports whether err (or anything it wraps) is an *Error.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
