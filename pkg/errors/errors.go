// Package errors provides structured error types for arcgrid.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the core primitives, CLI and API
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Core grid operations only fail on caller contract violations:
//   - OUT_OF_BOUNDS: a coordinate outside the grid was read or written
//   - NO_OBJECTS_FOUND: an object was required but the grid has none
//   - AMBIGUOUS_CLASS: strict periodic inference saw conflicting colours
//
// The remaining codes belong to the task loading and evaluation layers.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeOutOfBounds, "(%d,%d) outside %dx%d", r, c, h, w)
//	if errors.Is(err, errors.ErrCodeOutOfBounds) {
//	    // Handle contract violation
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidTask, origErr, "decode %s", path)
//
// # Exit Codes
//
// [ExitCode] maps an error to the process exit status used by the CLI, so
// scripts can tell a bad argument from a missing task or an unsolved one.
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Grid contract violations
	ErrCodeOutOfBounds    Code = "OUT_OF_BOUNDS"
	ErrCodeNoObjectsFound Code = "NO_OBJECTS_FOUND"
	ErrCodeAmbiguousClass Code = "AMBIGUOUS_CLASS"

	// Input validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidGrid  Code = "INVALID_GRID"
	ErrCodeInvalidTask  Code = "INVALID_TASK"
	ErrCodeInvalidPath  Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeTaskNotFound    Code = "TASK_NOT_FOUND"
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"
	ErrCodeSolutionMissing Code = "SOLUTION_MISSING"

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
// Only the outermost *Error is consulted.
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

// Process exit statuses returned by [ExitCode].
const (
	ExitOK          = 0
	ExitFailure     = 1 // wrong predictions, internal errors, plain errors
	ExitUsage       = 2 // invalid input, grid, task or path
	ExitNotFound    = 3 // task or file not found
	ExitNoSolution  = 4 // no registered solution
	ExitInterrupted = 130
)

// ExitCode returns the process exit status for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidGrid, ErrCodeInvalidTask, ErrCodeInvalidPath:
		return ExitUsage
	case ErrCodeTaskNotFound, ErrCodeFileNotFound:
		return ExitNotFound
	case ErrCodeSolutionMissing:
		return ExitNoSolution
	}
	return ExitFailure
}
