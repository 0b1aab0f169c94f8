// SPDX-License-Identifier: MIT

// Package multiply: functional configuration for the dispatcher. This file
// defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package multiply

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultWorkers is the worker count used when no WithWorkers option is
	// given: one worker, the sequential fast path.
	DefaultWorkers = 1
)

// Option mutates internal options. Safe to apply repeatedly (idempotent);
// last-writer-wins when repeated.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported-field-only to prevent external mutation;
// public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	workers int // requested worker count; range-checked against rows in Multiply
}

// WithWorkers sets the number of worker goroutines for one Multiply call.
//
// The value is NOT validated here: a worker count is only judgeable against
// the row count of a concrete operand, so Multiply performs the range check
// in its fail-fast stage and returns ErrWorkerCount for n < 1 or n > rows.
// This keeps bad counts a recoverable error, never a panic.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry; public APIs never read raw Options
// from callers.
// Determinism: stable for a given sequence of setters (last-writer-wins).
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
