// Package errors provides error handling for starhash.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Sentinel errors for the encode/decode failure taxonomy
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
//	// Check errors
//	if errors.Is(err, errors.ErrUnknownWord) {
//	    // handle unknown vocabulary word
//	}
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
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the starhash encode/decode pipeline.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrapf() to add the offending value while
// preserving the kind.
var (
	// ErrInvalidCoordinate indicates a latitude outside [-90, 90] or a
	// non-finite input angle
	ErrInvalidCoordinate = New("invalid coordinate")

	// ErrPixelOutOfRange indicates a pixel index outside [0, npix)
	ErrPixelOutOfRange = New("pixel index out of range")

	// ErrPermuterDomain indicates an index handed to the permuter that is
	// outside its domain [0, n)
	ErrPermuterDomain = New("index outside permuter domain")

	// ErrMalformedName indicates a name that does not split into exactly
	// three non-empty words
	ErrMalformedName = New("malformed name")

	// ErrUnknownWord indicates a word that is not in the vocabulary
	ErrUnknownWord = New("unknown word")

	// ErrPermutedIDOutOfRange indicates a decoded name that reconstructs an
	// index in the unused tail of the word space (>= npix). Usually means the
	// name was issued under a different vocabulary or grid resolution.
	ErrPermutedIDOutOfRange = New("permuted index out of range")

	// ErrVocabularyTooSmall indicates a vocabulary whose word count cubed
	// cannot cover the pixel grid. Fatal at construction, never per-request.
	ErrVocabularyTooSmall = New("vocabulary too small for grid")
)

// IsDecodeError reports whether err is one of the per-name decode failures
// (malformed input, unknown word, or an index from a mismatched epoch).
func IsDecodeError(err error) bool {
	return err != nil && IsAny(err, ErrMalformedName, ErrUnknownWord, ErrPermutedIDOutOfRange)
}

// IsInvalidCoordinateError checks if an error is or wraps ErrInvalidCoordinate
func IsInvalidCoordinateError(err error) bool {
	return err != nil && Is(err, ErrInvalidCoordinate)
}

// NewInvalidCoordinateError creates an invalid-coordinate error with a
// formatted message
func NewInvalidCoordinateError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidCoordinate, Newf(format, args...).Error())
}

// NewUnknownWordError creates an unknown-word error naming the offending token
func NewUnknownWordError(word string) error {
	return Wrapf(ErrUnknownWord, "%q", word)
}
