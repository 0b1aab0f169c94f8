// SPDX-License-Identifier: MIT
// Package: multiply
//
// Purpose:
//  - Provide a single, canonical source of truth for the dispatcher's
//    fail-fast checks.
//  - Keep Multiply minimal by delegating operand/worker validation here.
//  - Return sentinels wrapped with the validator tag so call sites can wrap
//    once more with their operation tag and errors.Is still matches.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.
//
// Note:
//  - ValidateOperands follows a fixed sequence: NotNil(A) → NotNil(B) →
//    dimension compatibility. Error priority is documented in errors.go.

package multiply

import (
	"fmt"

	"github.com/katalvlaran/matmul/matrix"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateOperands – Ensures both operands are non-nil and multiplication
// compatible (A.Cols == B.Rows).
//
// Inputs: a, b — the operands of A·B.
// Returns: nil, or wrapped matrix.ErrNilMatrix / ErrDimensionMismatch; the
// mismatch message carries both offending numbers.
// Complexity: O(1).
func ValidateOperands[T matrix.Element](a, b *matrix.Matrix[T]) error {
	// Nil checks first; shape accessors require a live container.
	if err := matrix.ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateOperands: A", err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateOperands: B", err)
	}
	// Inner dimensions must agree for the dot products to be defined.
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateOperands",
			fmt.Errorf("A columns %d, B rows %d: %w", a.Cols(), b.Rows(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateWorkers – Ensures the requested worker count lies in [1, rows].
// One band per worker requires at least one row each; zero workers would
// compute nothing.
//
// Inputs: workers — requested count; rows — output row count.
// Returns: nil or wrapped ErrWorkerCount carrying both numbers.
// Complexity: O(1).
func ValidateWorkers(workers, rows int) error {
	if workers < 1 || workers > rows {
		return validatorErrorf("ValidateWorkers",
			fmt.Errorf("requested %d for %d rows: %w", workers, rows, ErrWorkerCount))
	}

	return nil
}
