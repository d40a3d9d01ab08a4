// Package errors provides coded domain errors for the emoji catalog pipeline.
//
// Usage:
//
//	// Boundary code returns typed errors
//	if err := os.Rename(tmp, path); err != nil {
//	    return errors.Wrapf(err, errors.CodeWriteFailed, "write catalog to %s", path)
//	}
//
//	// Callers check with errors.Is
//	if errors.Is(err, errors.ErrWriteFailed) {
//	    os.Exit(errors.CodeWriteFailed.ExitCode())
//	}
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the pipeline.
const (
	CodeUnusableName  Code = "UNUSABLE_NAME"
	CodeFetchFailed   Code = "FETCH_FAILED"
	CodeMalformedLine Code = "MALFORMED_LINE"
	CodeWriteFailed   Code = "WRITE_FAILED"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeValidation    Code = "VALIDATION"
	CodeInternal      Code = "INTERNAL"
)

// Recoverable reports whether the pipeline handles the error locally
// (skip the record, fall back to an empty lookup) instead of aborting.
func (c Code) Recoverable() bool {
	switch c {
	case CodeUnusableName, CodeFetchFailed, CodeMalformedLine:
		return true
	default:
		return false
	}
}

// ExitCode returns the process exit code for an unrecovered error.
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidConfig:
		return 2
	default:
		return 1
	}
}

// Error is a domain error with a code, message, and optional details.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithDetails returns a new error with additional details.
func (e *Error) WithDetails(details any) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		cause:   e.cause,
	}
}

// Sentinel errors for use with errors.Is().
var (
	ErrUnusableName  = &Error{Code: CodeUnusableName, Message: "unusable emoji name"}
	ErrFetchFailed   = &Error{Code: CodeFetchFailed, Message: "fetch failed"}
	ErrMalformedLine = &Error{Code: CodeMalformedLine, Message: "malformed line"}
	ErrWriteFailed   = &Error{Code: CodeWriteFailed, Message: "write failed"}
	ErrInvalidConfig = &Error{Code: CodeInvalidConfig, Message: "invalid configuration"}
	ErrValidation    = &Error{Code: CodeValidation, Message: "validation error"}
	ErrInternal      = &Error{Code: CodeInternal, Message: "internal error"}
)

// UnusableNamef creates an unusable name error with formatted message.
func UnusableNamef(format string, args ...any) *Error {
	return &Error{Code: CodeUnusableName, Message: fmt.Sprintf(format, args...)}
}

// MalformedLinef creates a malformed line error with formatted message.
func MalformedLinef(format string, args ...any) *Error {
	return &Error{Code: CodeMalformedLine, Message: fmt.Sprintf(format, args...)}
}

// InvalidConfig creates an invalid configuration error.
func InvalidConfig(msg string) *Error {
	return &Error{Code: CodeInvalidConfig, Message: msg}
}

// InvalidConfigf creates an invalid configuration error with formatted message.
func InvalidConfigf(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidConfig, Message: fmt.Sprintf(format, args...)}
}

// Validation creates a validation error.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// ValidationWithDetails creates a validation error with details.
func ValidationWithDetails(msg string, details any) *Error {
	return &Error{Code: CodeValidation, Message: msg, Details: details}
}

// Internalf creates an internal error with formatted message.
func Internalf(format string, args ...any) *Error {
	return &Error{Code: CodeInternal, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with a code and message.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, cause: err}
}

// Wrapf wraps an error with a code and formatted message.
func Wrapf(err error, code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), cause: err}
}

// CodeOf returns the code of the first *Error in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
