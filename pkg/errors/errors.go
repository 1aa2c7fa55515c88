// Package errors provides the structured error type used across lppm.
//
// Every fallible operation returns an *LppmError carrying a stable ErrorCode,
// so callers and tests can branch on the failure kind without matching on
// message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Template engine errors
	ErrFormat             ErrorCode = "FORMAT"
	ErrNotFound           ErrorCode = "NOT_FOUND"
	ErrAlreadyExists      ErrorCode = "ALREADY_EXISTS"
	ErrIO                 ErrorCode = "IO"
	ErrIndexOutOfRange    ErrorCode = "INDEX_OUT_OF_RANGE"
	ErrNonZeroExit        ErrorCode = "NON_ZERO_EXIT"
	ErrConfirmationDenied ErrorCode = "CONFIRMATION_DENIED"
)

// LppmError represents a structured error with code and details
type LppmError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LppmError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LppmError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an *LppmError with the same code
func (e *LppmError) Is(target error) bool {
	var targetErr *LppmError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LppmError with the given code and message
func New(code ErrorCode, message string) *LppmError {
	return &LppmError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LppmError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LppmError {
	return &LppmError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an LppmError
func Wrap(err error, code ErrorCode, message string) *LppmError {
	if err == nil {
		return nil
	}
	return &LppmError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LppmError {
	if err == nil {
		return nil
	}
	return &LppmError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LppmError) WithDetail(key string, value interface{}) *LppmError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *LppmError) WithDetails(details map[string]interface{}) *LppmError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var lppmErr *LppmError
	if errors.As(err, &lppmErr) {
		return lppmErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an LppmError
func GetErrorCode(err error) ErrorCode {
	var lppmErr *LppmError
	if errors.As(err, &lppmErr) {
		return lppmErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an LppmError
func GetErrorDetails(err error) map[string]interface{} {
	var lppmErr *LppmError
	if errors.As(err, &lppmErr) {
		return lppmErr.Details
	}
	return nil
}
