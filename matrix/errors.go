// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in private helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with matrixErrorf at the outer
// boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape -> data length -> index bounds for the container;
// empty input -> missing dimension -> bad dimension -> row count ->
// row length -> bad element for the codec.

var (
	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid: r<=0, c<=0,
	// or a rows*cols product that overflows int. Construction validates shape
	// before any allocation; the zero-row and zero-column degenerates are
	// rejected so every later dot product has at least one term, and the
	// overflow guard keeps a wrapped product from admitting a short buffer.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDataLength indicates that the flat buffer handed to New does not hold
	// exactly rows*cols elements. Violations are construction errors, never
	// runtime panics later.
	ErrDataLength = errors.New("matrix: data length does not match shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrEmptyInput signals a document with no rows line at all.
	ErrEmptyInput = errors.New("matrix: empty input")

	// ErrMissingDimension signals a document that ends after the rows line,
	// before the cols line.
	ErrMissingDimension = errors.New("matrix: missing columns line")

	// ErrBadDimension signals a rows or cols line whose single token is not a
	// positive integer, or a header whose rows×cols product overflows int.
	ErrBadDimension = errors.New("matrix: dimension is not a positive integer")

	// ErrRowCount signals a document with fewer data lines than the declared
	// number of rows.
	ErrRowCount = errors.New("matrix: not enough rows")

	// ErrRowLength signals a data line whose token count differs from the
	// declared number of columns.
	ErrRowLength = errors.New("matrix: wrong number of elements in row")

	// ErrBadElement signals a token that does not parse as the element type.
	// For integer element types this includes float syntax ("1.2") and values
	// outside the type's range.
	ErrBadElement = errors.New("matrix: element does not parse")
)
