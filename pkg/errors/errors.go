// Package errors provides structured error types for rnaviz.
//
// Every fatal condition of the rendering pipeline is reported as an *Error
// carrying a machine-readable Code, so hosts embedding the pipeline (the CLI,
// the HTTP service, tests) can branch on the kind of failure without string
// matching:
//   - PARSE_ERROR: the input record layout or highlight spec is unrecognized
//   - STRUCTURE_ERROR: unbalanced brackets or structure/sequence length mismatch
//   - MISSING_STRUCTURE: neither a structure nor a sequence was supplied
//   - UNSUPPORTED: sequence-only input, which would require structure prediction
//   - RENDER_IO_ERROR: the optional output write failed
//
// # Usage
//
//	err := errors.New(errors.ErrCodeStructure, "unmatched ')' at position %d", i)
//	if errors.Is(err, errors.ErrCodeStructure) {
//	    // Handle malformed dot-bracket input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRenderIO, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the rendering pipeline.
const (
	// Input errors
	ErrCodeParse            Code = "PARSE_ERROR"
	ErrCodeStructure        Code = "STRUCTURE_ERROR"
	ErrCodeMissingStructure Code = "MISSING_STRUCTURE"
	ErrCodeInvalidInput     Code = "INVALID_INPUT"

	// Feature errors
	ErrCodeUnsupported Code = "UNSUPPORTED"

	// Output errors
	ErrCodeRenderIO Code = "RENDER_IO_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// IsInputError reports whether err was caused by the caller's input rather
// than by the environment or an internal fault.
func IsInputError(err error) bool {
	switch GetCode(err) {
	case ErrCodeParse, ErrCodeStructure, ErrCodeMissingStructure, ErrCodeInvalidInput:
		return true
	}
	return false
}
