// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep constructors and the codec minimal by delegating shape/nil checks here.
//  - Return sentinels wrapped with the validator tag so call sites can wrap
//    once more with their operation tag and errors.Is still matches.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator documents what it assumes (e.g. no nil check).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: *Matrix[T] value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Element](m *Matrix[T]) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	// Otherwise accept.
	return nil
}

// ValidateShape – Ensures a requested shape has at least one row and one
// column, and that the flat cell count rows*cols is representable in int.
// Construction rejects degenerates up front so every downstream dot product
// has at least one term to seed its accumulator with; the product guard keeps
// a wrapped rows*cols from ever admitting a buffer shorter than the shape
// claims.
//
// Inputs: rows, cols.
// Returns: nil or wrapped ErrBadShape.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 1 {
		return validatorErrorf("ValidateShape: Rows", ErrBadShape)
	}
	if cols < 1 {
		return validatorErrorf("ValidateShape: Columns", ErrBadShape)
	}
	// cols >= 1 here, so the division is safe.
	if rows > math.MaxInt/cols {
		return validatorErrorf("ValidateShape: Cells", ErrBadShape)
	}

	return nil
}
