package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a namespaced error code for platform errors.
type ErrorCode string

// Configuration error codes
const (
	CONFIG_LOAD_FAILED       ErrorCode = "CONFIG_LOAD_FAILED"
	CONFIG_PARSE_FAILED      ErrorCode = "CONFIG_PARSE_FAILED"
	CONFIG_VALIDATION_FAILED ErrorCode = "CONFIG_VALIDATION_FAILED"
)

// Store error codes
const (
	STORE_OPEN_FAILED  ErrorCode = "STORE_OPEN_FAILED"
	STORE_SEED_FAILED  ErrorCode = "STORE_SEED_FAILED"
	STORE_QUERY_FAILED ErrorCode = "STORE_QUERY_FAILED"
)

// Synthesis error codes
const (
	SYNTHESIS_UNAVAILABLE ErrorCode = "SYNTHESIS_UNAVAILABLE"
	SYNTHESIS_CALL_FAILED ErrorCode = "SYNTHESIS_CALL_FAILED"
	CACHE_READ_FAILED     ErrorCode = "CACHE_READ_FAILED"
	CACHE_WRITE_FAILED    ErrorCode = "CACHE_WRITE_FAILED"
)

// PlatformError represents a structured error with error code, message, and
// optional cause. It supports error wrapping and retryability hints for
// error handling logic.
type PlatformError struct {
	Code      ErrorCode
	Message   string
	Retryable bool
	Cause     error
}

// Error implements the error interface, returning a formatted error message.
// Format: "[CODE] message" or "[CODE] message: cause" if cause exists.
func (e *PlatformError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for error unwrapping chains.
// This enables using errors.Is() and errors.As() with wrapped errors.
func (e *PlatformError) Unwrap() error {
	return e.Cause
}

// Is checks if the target error matches this error by error code.
// Returns true if target is a PlatformError with the same Code.
func (e *PlatformError) Is(target error) bool {
	var platformErr *PlatformError
	if errors.As(target, &platformErr) {
		return e.Code == platformErr.Code
	}
	return false
}

// NewError creates a new non-retryable PlatformError with the given code and message.
func NewError(code ErrorCode, message string) *PlatformError {
	return &PlatformError{
		Code:    code,
		Message: message,
	}
}

// NewRetryableError creates a new retryable PlatformError with the given code
// and message. Use this for transient errors that may succeed on retry.
func NewRetryableError(code ErrorCode, message string) *PlatformError {
	return &PlatformError{
		Code:      code,
		Message:   message,
		Retryable: true,
	}
}

// WrapError creates a new non-retryable PlatformError that wraps an existing error.
// The wrapped error is accessible via Unwrap() for error chain inspection.
func WrapError(code ErrorCode, message string, cause error) *PlatformError {
	return &PlatformError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
