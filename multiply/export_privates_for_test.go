// SPDX-License-Identifier: MIT

package multiply

import "github.com/katalvlaran/matmul/matrix"

// Test-Bridge (White-Box) for Private Kernels
//
// Purpose:
//   - Expose UNEXPORTED partition/kernel/worker/aggregator internals to
//     multiply_test ONLY, without widening the prod API.
//   - Enable direct verification of panic recovery and band accounting,
//     which the public surface cannot reach on valid inputs.
//
// Provided Surface:
//   - ExportedPartitionRows: thin pass-through to partitionRows.
//   - BandProduct_TestOnly: direct kernel invocation on flat buffers.
//   - RunBandCollect_TestOnly: runs the worker body with a fresh one-slot
//     channel and hands back whatever crossed it.
//   - AssembleBands_TestOnly: feeds handcrafted (index, cells) pairs into
//     assemble, bypassing the dispatcher.
//
// Behavior & Determinism:
//   - No allocations beyond what the wrapped functions do.
//   - Deterministic wrappers; no side effects.

// ExportedPartitionRows exposes partitionRows for white-box tests.
var ExportedPartitionRows = partitionRows

// BandProduct_TestOnly forwards to the private bandProduct kernel.
func BandProduct_TestOnly[T matrix.Element](a, b []T, colsA, colsB, r0, r1 int, out []T) {
	bandProduct(a, b, colsA, colsB, r0, r1, out)
}

// RunBandCollect_TestOnly runs the worker body against a fresh buffered
// channel and returns the delivered cells and band index, or nil/-1 when the
// worker failed before sending. The channel type itself stays private.
func RunBandCollect_TestOnly[T matrix.Element](a, b []T, colsA, colsB, r0, r1, index int) ([]T, int, error) {
	results := make(chan bandResult[T], 1)
	err := runBand(a, b, colsA, colsB, r0, r1, index, results)
	close(results)
	for res := range results {
		return res.cells, res.index, err
	}

	return nil, -1, err
}

// AssembleBands_TestOnly drives assemble with handcrafted bands. indices[i]
// tags bands[i]; bounds/colsB/workers/out mirror assemble's real inputs.
func AssembleBands_TestOnly[T matrix.Element](indices []int, bands [][]T, bounds []int, colsB, workers int, out []T) error {
	results := make(chan bandResult[T], len(bands))
	for i := range bands {
		results <- bandResult[T]{index: indices[i], cells: bands[i]}
	}
	close(results)

	return assemble(results, bounds, colsB, workers, out)
}
