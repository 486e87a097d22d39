// Package errors provides structured error types for the viewport toolkit.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - UNKNOWN_*: Lookups against names absent from a table
//   - FILE_*: Definition-file problems
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidTable, "min widths must ascend at %q", name)
//	if errors.Is(err, errors.ErrCodeInvalidTable) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidDefinition, origErr, "decoding %s", path)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidTable      Code = "INVALID_TABLE"
	ErrCodeInvalidName       Code = "INVALID_NAME"
	ErrCodeInvalidWidth      Code = "INVALID_WIDTH"
	ErrCodeInvalidDefinition Code = "INVALID_DEFINITION"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"

	// Lookup errors
	ErrCodeUnknownBreakpoint Code = "UNKNOWN_BREAKPOINT"

	// Definition file errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

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

// coded is implemented by error types that carry their own code.
type coded interface {
	Code() Code
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error, or any error type
// carrying its own code, with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	var c coded
	if errors.As(err, &c) {
		return c.Code() == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error carries no code.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var c coded
	if errors.As(err, &c) {
		return c.Code()
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

// UnknownBreakpointError reports a lookup against a name that is absent
// from a breakpoint table. Known lists the valid names in table order so
// callers can surface them in diagnostics.
type UnknownBreakpointError struct {
	Name  string   // Name that failed to resolve
	Known []string // Valid names, smallest tier first
}

// Error implements the error interface.
func (e *UnknownBreakpointError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown breakpoint %q", e.Name)
	}
	return fmt.Sprintf("unknown breakpoint %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

// Code returns the error code for this error type.
func (e *UnknownBreakpointError) Code() Code {
	return ErrCodeUnknownBreakpoint
}

// IsUnknownBreakpoint reports whether err is an UnknownBreakpointError.
func IsUnknownBreakpoint(err error) bool {
	var e *UnknownBreakpointError
	return errors.As(err, &e)
}
