package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an error into the service's taxonomy.
type Code string

const (
	CodeNotFound      Code = "not_found"      // session/role absent or logically expired
	CodeConflict      Code = "conflict"       // duplicate email/mobile on registration
	CodeInvalidCode   Code = "invalid_code"   // OTP mismatch
	CodeNotReady      Code = "not_ready"      // consume before full verification
	CodeCycleDetected Code = "cycle_detected" // re-parent would create a cycle
	CodeHasChildren   Code = "has_children"   // delete blocked by policy
	CodeCrossTenant   Code = "cross_tenant"   // parent/child institute mismatch
	CodeNotifier      Code = "notifier_error" // delivery failure
	CodeStorage       Code = "storage_error"  // persistence failure
)

// httpStatusMap maps taxonomy codes to HTTP status codes.
var httpStatusMap = map[Code]int{
	CodeNotFound:      http.StatusNotFound,
	CodeConflict:      http.StatusConflict,
	CodeInvalidCode:   http.StatusUnprocessableEntity,
	CodeNotReady:      http.StatusPreconditionFailed,
	CodeCycleDetected: http.StatusUnprocessableEntity,
	CodeHasChildren:   http.StatusConflict,
	CodeCrossTenant:   http.StatusForbidden,
	CodeNotifier:      http.StatusBadGateway,
	CodeStorage:       http.StatusInternalServerError,
}

// Error is a classified error. Message is safe for callers: OTP and
// expiry failures share generic text so a probe cannot tell which
// channel failed or whether a session ever existed.
type Error struct {
	Code    Code
	Message string
	err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.err
}

// HTTPStatus returns the HTTP status for this error's code.
func (e *Error) HTTPStatus() int {
	if status, ok := httpStatusMap[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// New creates a classified error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a classified error around an underlying cause.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, err: err}
}

// CodeOf extracts the taxonomy code from err, or empty if unclassified.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether err carries the given taxonomy code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}

// StatusOf returns the HTTP status for err, defaulting to 500 for
// unclassified errors.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// MessageOf returns the caller-safe message for err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}
