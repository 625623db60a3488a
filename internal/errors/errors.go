package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between pipeline modes.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ErrPoolClosed is returned by pool submissions that arrive after Close has
// begun. It is a sentinel so callers can test for it with errors.Is.
var ErrPoolClosed = errors.New("worker pool is closed")

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
// It allows for the creation of configuration-specific errors with dynamic
// content.
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

// PoolInitError reports an attempt to open a worker pool with an invalid
// size. The pool cannot be constructed and no workers are started.
type PoolInitError struct {
	// Workers is the rejected worker count.
	Workers int
}

// Error returns a formatted message describing the invalid pool size.
//
// Returns:
//   - string: The error message string.
func (e PoolInitError) Error() string {
	return fmt.Sprintf("worker pool requires at least 1 worker, got %d", e.Workers)
}

// WorkerExecutionError encapsulates a failure inside a pooled task while
// preserving the original cause. A panicking task surfaces here as well,
// with the recovered value as the cause.
type WorkerExecutionError struct {
	// Cause is the underlying error that the worker observed.
	Cause error
}

// Error returns the error message from the underlying cause.
//
// Returns:
//   - string: The error message string from the wrapped error.
func (e WorkerExecutionError) Error() string {
	return fmt.Sprintf("worker execution failed: %s", e.Cause.Error())
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the WorkerExecutionError.
func (e WorkerExecutionError) Unwrap() error { return e.Cause }

// FetchError reports a failed article fetch. It identifies which URL failed
// and preserves the underlying cause for inspection.
type FetchError struct {
	// URL is the article location whose fetch failed.
	URL string
	// Cause is the underlying error.
	Cause error
}

// Error returns a formatted message describing the fetch failure.
//
// Returns:
//   - string: The error message string.
func (e FetchError) Error() string {
	return fmt.Sprintf("fetch failed for %q: %s", e.URL, e.Cause.Error())
}

// Unwrap returns the underlying cause of the fetch failure.
//
// Returns:
//   - error: The wrapped error.
func (e FetchError) Unwrap() error { return e.Cause }

// ProcessingError reports a failed article analysis. It identifies which URL
// was being processed and preserves the underlying cause.
type ProcessingError struct {
	// URL is the article whose analysis failed.
	URL string
	// Cause is the underlying error.
	Cause error
}

// Error returns a formatted message describing the processing failure.
//
// Returns:
//   - string: The error message string.
func (e ProcessingError) Error() string {
	return fmt.Sprintf("processing failed for %q: %s", e.URL, e.Cause.Error())
}

// Unwrap returns the underlying cause of the processing failure.
//
// Returns:
//   - error: The wrapped error.
func (e ProcessingError) Unwrap() error { return e.Cause }

// TimeoutError represents a pipeline timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
//
// Returns:
//   - string: The error message string.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
//
// Returns:
//   - string: The error message string.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MismatchError reports that the hybrid pipeline and the sequential baseline
// disagreed on the analysis of an article. With deterministic collaborators
// the two modes must agree, so a mismatch indicates a pipeline bug.
type MismatchError struct {
	// URL is the article the two modes disagreed on.
	URL string
}

// Error returns a formatted message describing the mismatch.
//
// Returns:
//   - string: The error message string.
func (e MismatchError) Error() string {
	return fmt.Sprintf("result mismatch between hybrid and sequential runs for %q", e.URL)
}

// ExitCode maps an error to the process exit code it should terminate with.
// Context cancellation and deadline errors are recognized anywhere in the
// chain, so a FetchError wrapping context.Canceled still exits with the
// cancellation code.
//
// Parameters:
//   - err: The error to map; nil maps to ExitSuccess.
//
// Returns:
//   - int: One of the Exit* codes.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	}

	var timeoutErr TimeoutError
	if errors.As(err, &timeoutErr) {
		return ExitErrorTimeout
	}
	var mismatchErr MismatchError
	if errors.As(err, &mismatchErr) {
		return ExitErrorMismatch
	}
	var configErr ConfigError
	if errors.As(err, &configErr) {
		return ExitErrorConfig
	}
	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return ExitErrorConfig
	}
	return ExitErrorGeneric
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

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
