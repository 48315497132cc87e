// Package apperror defines the error shape returned to API clients:
// a human-readable message paired with an HTTP status code.
package apperror

import "errors"

// Error is the single error shape exposed at the HTTP boundary.
type Error struct {
	Message string
	Status  int
}

// New creates an Error with the given message and HTTP status.
func New(message string, status int) *Error {
	return &Error{Message: message, Status: status}
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound creates a 404 error.
func NotFound(message string) *Error {
	return New(message, 404)
}

// Unauthorized creates a 401 error.
func Unauthorized(message string) *Error {
	return New(message, 401)
}

// Forbidden creates a 403 error.
func Forbidden(message string) *Error {
	return New(message, 403)
}

// Invalid creates a 422 error for validation and uniqueness violations.
func Invalid(message string) *Error {
	return New(message, 422)
}

// Internal creates a 500 error with a client-safe message; the underlying
// cause stays in the logs.
func Internal(message string) *Error {
	return New(message, 500)
}

// From extracts an *Error from err's chain, or nil if there is none.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
