// SPDX-License-Identifier: MIT
// Package multiply: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// multiply package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. Worker panics are converted to errors; the
// package itself never panics on user input.

package multiply

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "multiply: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with multiplyErrorf at
// the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> dimension mismatch -> worker count -> worker failure ->
// incomplete result. The first three are rejected before any goroutine
// starts; the last two can only surface after dispatch.

var (
	// ErrDimensionMismatch indicates incompatible operand shapes:
	// A.Cols() != B.Rows(). The wrapped message carries both numbers.
	// Detected before any partitioning or spawning.
	ErrDimensionMismatch = errors.New("multiply: dimension mismatch")

	// ErrWorkerCount indicates a worker count outside [1, rows of A]: zero,
	// negative, or more workers than output rows. Detected before spawning.
	ErrWorkerCount = errors.New("multiply: worker count out of range")

	// ErrWorkerPanic marks a worker goroutine that panicked instead of
	// completing its band. The wrapped message carries the band index and the
	// recovered value. The whole call fails; no partial matrix is returned.
	ErrWorkerPanic = errors.New("multiply: worker panicked")

	// ErrResultIncomplete is the internal fatal kind: after every worker
	// reported success, the collected bands do not cover each band index
	// exactly once. It signals a programming bug in the dispatch machinery,
	// not a user-recoverable condition, and is never retried or healed.
	ErrResultIncomplete = errors.New("multiply: result bands incomplete after join")
)
