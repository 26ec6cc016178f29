// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (parse failures,
// arithmetic domain violations, configuration, etc.) and for carrying the
// underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Error types that wrap a cause implement the Unwrap() method to support
// errors.Is() and errors.As().
package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess      = 0   // Indicates successful execution.
	ExitErrorGeneric = 1   // Indicates a generic error.
	ExitErrorInput   = 2   // Indicates an invalid operand or expression.
	ExitErrorConfig  = 4   // Indicates a configuration error.
	ExitErrorCancel  = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// FormatError reports that a piece of text could not be parsed as a decimal
// integer. The offending input is retained so callers can report it verbatim.
type FormatError struct {
	// Input is the text that failed to parse.
	Input string
}

// Error returns the error message for a FormatError.
func (e FormatError) Error() string {
	return fmt.Sprintf("invalid decimal integer %q", e.Input)
}

// DivisionByZeroError reports a division or remainder operation whose divisor
// was zero. It carries no further state; the condition is unambiguous.
type DivisionByZeroError struct{}

// Error returns the error message for a DivisionByZeroError.
func (e DivisionByZeroError) Error() string { return "division by zero" }

// NegativeSqrtError reports that the integer square root was requested for a
// negative value, which lies outside the function's domain.
type NegativeSqrtError struct {
	// Value is the canonical rendering of the offending operand.
	Value string
}

// Error returns the error message for a NegativeSqrtError.
func (e NegativeSqrtError) Error() string {
	return fmt.Sprintf("square root of negative number %s", e.Value)
}

// OverflowError reports that a value does not fit in the requested
// fixed-width integer type.
type OverflowError struct {
	// Value is the canonical rendering of the value that overflowed.
	Value string
	// Target names the fixed-width type that could not hold the value.
	Target string
}

// Error returns the error message for an OverflowError.
func (e OverflowError) Error() string {
	return fmt.Sprintf("value %s overflows %s", e.Value, e.Target)
}

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect
// user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ServerError represents errors that occur in the HTTP server component.
// It wraps an underlying error with additional context specific to the
// server operation.
type ServerError struct {
	// Message is a descriptive message about the server error.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns the error message for a ServerError.
// It combines the descriptive message and the underlying cause if present.
func (e ServerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e ServerError) Unwrap() error { return e.Cause }

// NewServerError creates a new ServerError with a message and optional cause.
//
// Parameters:
//   - message: A description of the error context.
//   - cause: The underlying error that occurred (can be nil).
//
// Returns:
//   - error: A new ServerError instance.
func NewServerError(message string, cause error) error {
	return ServerError{Message: message, Cause: cause}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the process exit code that should be reported
// for it. Nil maps to ExitSuccess.
func ExitCodeFor(err error) int {
	var (
		formatErr   FormatError
		divZeroErr  DivisionByZeroError
		sqrtErr     NegativeSqrtError
		overflowErr OverflowError
		configErr   ConfigError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case IsContextError(err):
		return ExitErrorCancel
	case errors.As(err, &configErr):
		return ExitErrorConfig
	case errors.As(err, &formatErr),
		errors.As(err, &divZeroErr),
		errors.As(err, &sqrtErr),
		errors.As(err, &overflowErr):
		return ExitErrorInput
	default:
		return ExitErrorGeneric
	}
}
