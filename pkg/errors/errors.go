// Package errors provides structured error types for the roadforge application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI commands and the pipeline
//   - Machine-readable error codes for programmatic handling
//   - Telling "bad input to the core" apart from "the external compiler
//     rejected valid input"
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: configuration and geometry validation failures
//   - EXTRACT_*: parameter extraction failures
//   - COMPILE_*: external compiler (netconvert/netgenerate) failures
//   - NETWORK_*: network-related errors
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidTopology, "unsupported topology kind %q", kind)
//	if errors.Is(err, errors.ErrCodeInvalidTopology) {
//	    // Handle configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeCompileFailed, origErr, "netconvert failed for %s", output)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration and input validation errors
	ErrCodeInvalidTopology Code = "INVALID_TOPOLOGY"
	ErrCodeInvalidGeometry Code = "INVALID_GEOMETRY"
	ErrCodeInvalidParams   Code = "INVALID_PARAMS"
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"

	// Parameter extraction errors
	ErrCodeExtractFailed Code = "EXTRACT_FAILED"
	ErrCodeNoAPIKey      Code = "NO_API_KEY"

	// External compiler errors
	ErrCodeCompileFailed Code = "COMPILE_FAILED"
	ErrCodeToolNotFound  Code = "TOOL_NOT_FOUND"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Network errors
	ErrCodeNetwork     Code = "NETWORK_ERROR"
	ErrCodeTimeout     Code = "TIMEOUT"
	ErrCodeRateLimited Code = "RATE_LIMITED"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

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

// IsConfig reports whether err is a configuration error: bad input to the
// core, as opposed to the external compiler rejecting valid input.
func IsConfig(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidTopology, ErrCodeInvalidGeometry, ErrCodeInvalidParams, ErrCodeInvalidInput:
		return true
	}
	return false
}

// CompileError carries the external compiler's diagnostic output alongside
// the failed command, so callers can tell the collaborator's rejection apart
// from bad input to the core.
type CompileError struct {
	Tool   string // binary name, e.g. "netconvert"
	Output string // collaborator's stderr
	Err    error  // process error (exit status, not found, ...)
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("%s: %v: %s", e.Tool, e.Err, e.Output)
	}
	return fmt.Sprintf("%s: %v", e.Tool, e.Err)
}

// Unwrap returns the underlying process error.
func (e *CompileError) Unwrap() error { return e.Err }

// Code returns the error code for this error type.
func (e *CompileError) Code() Code { return ErrCodeCompileFailed }
