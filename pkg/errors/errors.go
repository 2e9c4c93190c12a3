package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed gateway error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors matching the gateway failure taxonomy: local auth,
// local validation, upstream relay, and network/unexpected.
var (
	ErrUnauthorized        = New("UNAUTHORIZED", http.StatusUnauthorized, "Not authorized - No token provided.")
	ErrForbidden           = New("AUTHORIZATION_DENIED", http.StatusForbidden, "admin access required")
	ErrValidation          = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrNotFound            = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrExportTooLarge      = New("EXPORT_TOO_LARGE", http.StatusUnprocessableEntity, "export exceeds the configured row ceiling")
	ErrUpstreamUnreachable = New("UPSTREAM_UNREACHABLE", http.StatusInternalServerError, "upstream API is unreachable")
	ErrInternal            = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
)

// Upstream builds a relay error carrying the upstream status and message
// verbatim so handlers can pass non-2xx responses through unchanged.
func Upstream(status int, message string) *Error {
	if message == "" {
		message = http.StatusText(status)
	}
	return &Error{Code: "UPSTREAM_ERROR", Status: status, Message: message}
}

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
