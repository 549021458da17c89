package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Token errors
var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenConfig  = errors.New("token secret is not configured")
)

// Error is a domain error carrying an HTTP-style status. Handlers surface
// the status and message verbatim in the response envelope.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// NewError creates a domain error with an explicit status
func NewError(status int, format string, args ...any) *Error {
	return &Error{Status: status, Message: fmt.Sprintf(format, args...)}
}

// BadRequest signals malformed input or identifiers
func BadRequest(format string, args ...any) *Error {
	return NewError(http.StatusBadRequest, format, args...)
}

// Unauthenticated signals a missing or invalid session
func Unauthenticated(format string, args ...any) *Error {
	return NewError(http.StatusUnauthorized, format, args...)
}

// Forbidden signals an authenticated but disallowed request
func Forbidden(format string, args ...any) *Error {
	return NewError(http.StatusForbidden, format, args...)
}

// NotFound signals a missing record
func NotFound(format string, args ...any) *Error {
	return NewError(http.StatusNotFound, format, args...)
}

// Conflict signals a uniqueness violation
func Conflict(format string, args ...any) *Error {
	return NewError(http.StatusConflict, format, args...)
}

// Internal signals a store or mailer failure. The message is fixed; the
// underlying cause is logged, never surfaced.
func Internal() *Error {
	return NewError(http.StatusInternalServerError, "Unknown Server Error")
}

// StatusOf extracts the HTTP status for an error. Token errors collapse to
// unauthenticated at the boundary; anything unrecognized is internal.
func StatusOf(err error) int {
	var de *Error
	if errors.As(err, &de) {
		return de.Status
	}
	if errors.Is(err, ErrTokenExpired) || errors.Is(err, ErrTokenInvalid) {
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
