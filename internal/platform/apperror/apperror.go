// Package apperror defines the application error taxonomy and its HTTP mapping.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an application error for transport mapping and retry policy.
type Code string

const (
	// CodeNotFound means the referenced case, user, department, or anomaly has no underlying record. Never retried.
	CodeNotFound Code = "not_found"
	// CodeStoreUnavailable means a transient failure reaching the store. Reads may be retried with backoff.
	CodeStoreUnavailable Code = "store_unavailable"
	// CodeInvalidInput means the caller passed invalid data (negative counts, unknown enum values). Rejected synchronously.
	CodeInvalidInput Code = "invalid_input"
	// CodeInternal is the fallback for unclassified failures.
	CodeInternal Code = "internal"
)

// Error carries a code, a caller-facing message, and an optional wrapped cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound returns a CodeNotFound error for the given resource description.
func NotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// InvalidInput returns a CodeInvalidInput error.
func InvalidInput(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// StoreUnavailable wraps a transient store failure.
func StoreUnavailable(msg string, err error) *Error {
	return &Error{Code: CodeStoreUnavailable, Message: msg, Err: err}
}

// Internal wraps an unclassified failure.
func Internal(msg string, err error) *Error {
	return &Error{Code: CodeInternal, Message: msg, Err: err}
}

// CodeOf extracts the Code from err, or CodeInternal if err is not an *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// MessageOf extracts the caller-facing message from err, or a generic one.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}

// IsRetryable reports whether err is a transient store failure worth retrying.
func IsRetryable(err error) bool {
	return CodeOf(err) == CodeStoreUnavailable
}

// ToHTTPStatus maps an error code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
