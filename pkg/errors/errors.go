// Package errors provides structured error types for the grove library.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library, CLI and HTTP API
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Each failure mode of the forest container maps to exactly one code:
//   - INVALID_ARGUMENT: a required argument is missing or malformed
//   - NOT_FOUND: a node is absent from its claimed owner
//   - CIRCULAR_REFERENCE: a move would make a node its own ancestor
//   - VERSION_MISMATCH: serialized payload version differs from the runtime's
//   - MALFORMED_DATA: a payload is missing required structure
//
// # Usage
//
//	err := errors.New(errors.CodeNotFound, "node %q not in parent's children", id)
//	if errors.Is(err, errors.CodeNotFound) {
//	    // handle missing node
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.CodeMalformedData, decodeErr, "decode flat records")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the forest container's failure modes.
const (
	CodeInvalidArgument   Code = "INVALID_ARGUMENT"
	CodeNotFound          Code = "NOT_FOUND"
	CodeCircularReference Code = "CIRCULAR_REFERENCE"
	CodeVersionMismatch   Code = "VERSION_MISMATCH"
	CodeMalformedData     Code = "MALFORMED_DATA"
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

// VersionError reports a serialized-format version that differs from the
// version the runtime expects. It carries both values so callers can report
// or branch on them.
type VersionError struct {
	Found    int // Version read from the payload
	Expected int // Version the deserializing forest requires
}

// Error implements the error interface.
func (e *VersionError) Error() string {
	return fmt.Sprintf("version mismatch: found %d, expected %d", e.Found, e.Expected)
}

// Code returns the error code for this error type.
func (e *VersionError) Code() Code {
	return CodeVersionMismatch
}

// NewVersionError creates a CodeVersionMismatch Error whose cause is a
// VersionError carrying the two versions. Use errors.As to recover them.
func NewVersionError(found, expected int) *Error {
	return &Error{
		Code:    CodeVersionMismatch,
		Message: fmt.Sprintf("serialized version %d does not match format version %d", found, expected),
		Cause:   &VersionError{Found: found, Expected: expected},
	}
}
