// SPDX-License-Identifier: MIT
// Package multiply: the dispatcher and aggregator. Multiply is the single
// public entry point; everything else in the package serves it.

package multiply

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/matmul/matrix"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMultiply = "Multiply"
)

// multiplyErrorf wraps err with an operation tag, preserving the original
// error via %w. The wrapper keeps a stable "Op: underlying" shape for
// uniform reporting. Use only when err != nil.
// Complexity: O(1).
func multiplyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// bandResult carries one worker's finished output band back to the
// orchestrator: the band index and the row-major cells of the band's rows.
// Exactly one bandResult per worker crosses the channel, after which the
// buffers belong to the aggregator alone.
type bandResult[T matrix.Element] struct {
	index int // band index == worker index, assigned before dispatch
	cells []T // (end-start)*colsB cells, row-major
}

// runBand is the worker body: compute one band into a private buffer and
// send it home. A panic inside the band (a programming bug in the kernel or
// corrupted bounds) is recovered HERE, inside the goroutine that owns it,
// and converted into the worker's error tagged with the band index — the
// call fails as a whole instead of crashing the process.
//
// The send never blocks: the results channel is buffered to the worker
// count, so a worker that finishes last still parks its band without waiting
// on the orchestrator.
//
// Errors: ErrWorkerPanic (wrapped with band index and the recovered value).
// Complexity: the kernel's O((r1-r0)·colsA·colsB) plus one allocation.
func runBand[T matrix.Element](a, b []T, colsA, colsB, r0, r1, index int, results chan<- bandResult[T]) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%s: band %d: %w: %v", opMultiply, index, ErrWorkerPanic, rec)
		}
	}()

	cells := make([]T, (r1-r0)*colsB) // private output buffer, no sharing until the send
	bandProduct(a, b, colsA, colsB, r0, r1, cells)
	results <- bandResult[T]{index: index, cells: cells}

	return nil
}

// assemble drains the closed results channel and places every band at its
// row offset in out, verifying that each band index arrives exactly once.
// Placement by band index, never by arrival order, is what keeps the output
// independent of goroutine scheduling.
//
// The caller must have joined all workers and closed the channel first; from
// that point the orchestrator holds sole access to the band buffers.
//
// Errors: ErrResultIncomplete (unknown band, duplicate band, or missing
// bands after the drain) — the internal fatal kind.
// Complexity: O(rows·colsB) copy total.
func assemble[T matrix.Element](results <-chan bandResult[T], bounds []int, colsB, workers int, out []T) error {
	seen := make([]bool, workers)
	var got int
	for res := range results {
		if res.index < 0 || res.index >= workers {
			return fmt.Errorf("unknown band %d of %d: %w", res.index, workers, ErrResultIncomplete)
		}
		if seen[res.index] {
			return fmt.Errorf("band %d delivered twice: %w", res.index, ErrResultIncomplete)
		}
		seen[res.index] = true
		got++
		// Band w covers rows [bounds[w], bounds[w+1]); its cells land at the
		// band's row offset, which concatenates bands in ascending row order.
		copy(out[bounds[res.index]*colsB:], res.cells)
	}
	if got != workers {
		return fmt.Errorf("collected %d of %d bands: %w", got, workers, ErrResultIncomplete)
	}

	return nil
}

// Multiply computes C = A·B, optionally splitting the output rows across a
// fixed team of worker goroutines created for this call only.
//
// Implementation:
//   - Stage 1: resolve options; fail-fast validation (nil operands, inner
//     dimensions, worker count) before any goroutine or allocation commits.
//   - Stage 2: partition A's rows into one contiguous band per worker.
//   - Stage 3: one worker ⇒ run the kernel synchronously over the whole
//     range — the sequential fast path, not a degenerate parallel case.
//   - Stage 4: otherwise dispatch one goroutine per band; workers share
//     read-only borrows of the operand buffers and own a private output
//     buffer each.
//   - Stage 5: join every worker; the first error fails the whole call.
//   - Stage 6: with sole access after the join, place bands by index and
//     wrap the assembled buffer into the result matrix.
//
// Behavior highlights:
//   - Deterministic: the same operands and worker count — indeed ANY valid
//     worker count — always yield bit-identical results, because every band
//     runs the same kernel with the same per-cell accumulation order.
//   - No cancellation: once dispatched, every worker runs to completion even
//     if a sibling fails; the call returns after the full join either way.
//   - No partial output: callers see the finished matrix or an error, never
//     intermediate state.
//
// Inputs:
//   - a: left operand (rowsA×n).
//   - b: right operand (n×colsB).
//   - opts: WithWorkers(t); t must lie in [1, rowsA]. Default is 1.
//
// Returns:
//   - *matrix.Matrix[T]: freshly built rowsA×colsB product.
//
// Errors:
//   - matrix.ErrNilMatrix (nil operand).
//   - ErrDimensionMismatch (a.Cols() != b.Rows(); message carries both).
//   - ErrWorkerCount (t < 1 or t > rowsA; message carries both).
//   - ErrWorkerPanic (a worker did not complete; message carries the band).
//   - ErrResultIncomplete (band accounting broke after a clean join; a
//     programming-bug signal, not a user-recoverable condition).
//
// Determinism:
//   - Bands are assigned by row index before dispatch and concatenated by
//     band index after the join; completion order is irrelevant.
//
// Complexity:
//   - Time O(rowsA·n·colsB) split across workers; Space O(rowsA·colsB) for
//     the result plus one band buffer per worker.
//
// Notes:
//   - The worker team lives and dies inside this call; there is no pool to
//     warm up or drain between calls.
//
// AI-Hints:
//   - Worker counts beyond the row count are an error, not a clamp; size t
//     from rowsA, typically min(rowsA, GOMAXPROCS).
//   - For repeated products of the same shapes, reuse operands as-is; the
//     call never mutates them, so no defensive copies are needed.
func Multiply[T matrix.Element](a, b *matrix.Matrix[T], opts ...Option) (*matrix.Matrix[T], error) {
	// Resolve options, then fail fast before any work.
	cfg := gatherOptions(opts...)
	if err := ValidateOperands(a, b); err != nil {
		return nil, multiplyErrorf(opMultiply, err)
	}

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	bounds, err := partitionRows(cfg.workers, rows)
	if err != nil {
		return nil, multiplyErrorf(opMultiply, err)
	}

	// Read-only borrows of the operand buffers, shared by every worker.
	da, db := a.Data(), b.Data()
	out := make([]T, rows*cols)

	// Sequential fast path: same kernel, no goroutines.
	if cfg.workers == 1 {
		bandProduct(da, db, inner, cols, 0, rows, out)

		return matrix.New(rows, cols, out)
	}

	// One goroutine per band. The zero-value group performs no cancellation:
	// every worker runs to completion, and Wait reports the first error.
	results := make(chan bandResult[T], cfg.workers) // buffered: sends never block
	var grp errgroup.Group
	var w int // loop iterator
	for w = 0; w < cfg.workers; w++ {
		r0, r1, index := bounds[w], bounds[w+1], w // fresh bindings captured by the closure
		grp.Go(func() error {
			return runBand(da, db, inner, cols, r0, r1, index, results)
		})
	}

	// Join. A single failed band fails the whole call; no partial matrix
	// ever escapes.
	if err = grp.Wait(); err != nil {
		return nil, err
	}

	// Sole access from here on: close the channel and drain it into out.
	close(results)
	if err = assemble(results, bounds, cols, cfg.workers, out); err != nil {
		return nil, multiplyErrorf(opMultiply, err)
	}

	return matrix.New(rows, cols, out)
}
