// Package errors provides structured error types for gitsnitch.
//
// This package defines error codes and types that enable:
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_FETCH, *_DECODE: GitHub API failures
//   - NETWORK_*: Transport errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "max_repos must be positive, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // Handle validation error
//	}
//
// The two fatal pipeline failures have dedicated types,
// [InvalidProfileURLError] and [RepositoryFetchError], so callers can
// inspect them with errors.As.
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
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidProfileURL Code = "INVALID_PROFILE_URL"
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"

	// GitHub API errors
	ErrCodeRepositoryFetch Code = "REPOSITORY_FETCH"
	ErrCodeCommitDecode    Code = "COMMIT_DECODE"
	ErrCodeRateLimited     Code = "RATE_LIMITED"

	// Network errors
	ErrCodeNetwork Code = "NETWORK_ERROR"

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

// coded is implemented by the typed errors below.
type coded interface {
	error
	Code() Code
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error or a typed error with a
// matching code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if no error in the chain carries a code.
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
// For *Error types, returns the message and cause without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + e.Cause.Error()
		}
		return e.Message
	}
	return err.Error()
}

// InvalidProfileURLError is returned when the input looks like a URL but
// does not point at a github.com profile.
type InvalidProfileURLError struct {
	Input  string
	Reason string
}

// Error implements the error interface.
func (e *InvalidProfileURLError) Error() string {
	return fmt.Sprintf("invalid profile URL %q: %s (e.g. https://github.com/gruns)", e.Input, e.Reason)
}

// Code returns the error code for this error type.
func (e *InvalidProfileURLError) Code() Code {
	return ErrCodeInvalidProfileURL
}

// RepositoryFetchError is returned when listing a user's repositories
// fails with a non-200 response. Body holds the raw response body.
type RepositoryFetchError struct {
	Username    string
	StatusCode  int
	Body        string
	RateLimited bool // X-RateLimit-Remaining was 0
}

// Error implements the error interface.
func (e *RepositoryFetchError) Error() string {
	return fmt.Sprintf("error fetching repositories for %q: status %d: %s", e.Username, e.StatusCode, e.Body)
}

// Code returns the error code for this error type.
func (e *RepositoryFetchError) Code() Code {
	if e.RateLimited {
		return ErrCodeRateLimited
	}
	return ErrCodeRepositoryFetch
}
