// Package errors provides error handling for logbox.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints surfaced on the error stream
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "pass --recurse to search subdirectories")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var AssertionFailedf = crdb.AssertionFailedf

// Common sentinel errors for use across logbox.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrInvalidExpression indicates a malformed user-supplied expression:
	// a filter string, a field path, a timestamp, or a timeframe whose
	// start lies after its end. Always fatal before any record is read.
	ErrInvalidExpression = New("invalid expression")

	// ErrNotFound indicates the requested resource does not exist
	ErrNotFound = New("not found")
)

// IsInvalidExpressionError checks if an error is or wraps ErrInvalidExpression
func IsInvalidExpressionError(err error) bool {
	return err != nil && Is(err, ErrInvalidExpression)
}

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// NewInvalidExpressionError creates an invalid-expression error with a formatted message
func NewInvalidExpressionError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidExpression, Newf(format, args...).Error())
}

// WrapInvalidExpression wraps an error as an invalid-expression error with context
func WrapInvalidExpression(err error, context string) error {
	return Wrap(Wrap(ErrInvalidExpression, err.Error()), context)
}
