// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// fetching, processing, pool lifecycle) and for carrying the underlying
// cause, plus the mapping from errors to process exit codes.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Error types that carry a cause implement the Unwrap() method to support
// errors.Is() and errors.As().
package apperrors
