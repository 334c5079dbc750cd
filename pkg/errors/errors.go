// Package errors provides structured error types for lovewall.
//
// The taxonomy is small and validation-oriented. Every error is locally
// recoverable: callers either reject the offending input or surface the error
// as a non-blocking advisory and keep the view running.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (fail fast)
//   - INSUFFICIENT_* / CAPACITY_* / FUTURE_*: Advisories shown to the user
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidCount, "count must be non-negative, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidCount) {
//	    // Handle validation error
//	}
//
//	if errors.IsAdvisory(err) {
//	    // Show a warning and carry on
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidCount  Code = "INVALID_COUNT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPreset Code = "INVALID_PRESET"
	ErrCodeInvalidDate   Code = "INVALID_DATE"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Advisories
	ErrCodeMissingName        Code = "MISSING_NAME"
	ErrCodeInsufficientImages Code = "INSUFFICIENT_IMAGES"
	ErrCodeCapacityExceeded   Code = "CAPACITY_EXCEEDED"
	ErrCodeFutureDate         Code = "FUTURE_DATE"
	ErrCodeUnsupportedImage   Code = "UNSUPPORTED_IMAGE"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// advisories are the codes the user sees as a warning rather than a failure.
var advisories = map[Code]bool{
	ErrCodeMissingName:        true,
	ErrCodeInsufficientImages: true,
	ErrCodeCapacityExceeded:   true,
	ErrCodeFutureDate:         true,
	ErrCodeUnsupportedImage:   true,
}

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsAdvisory reports whether err should be shown as a non-fatal warning.
func IsAdvisory(err error) bool {
	return advisories[GetCode(err)]
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
