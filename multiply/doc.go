// Package multiply computes dense matrix products in parallel by splitting
// output rows into contiguous bands, one worker goroutine per band, with a
// deterministic, worker-count-independent result.
//
// 🚀 How does it work?
//
//	Multiply(A, B) walks four fixed stages:
//	  • Partition: rows of A are cut into t contiguous, near-equal bands
//	    (the first rows mod t bands get one extra row)
//	  • Dispatch: one goroutine per band, created for this call only —
//	    no persistent pool, no cancellation once launched
//	  • Kernel: every band runs the same sequential dot-product routine,
//	    accumulating each cell strictly in ascending k order
//	  • Aggregate: band buffers arrive through a channel tagged with their
//	    band index and are concatenated in row order, never completion order
//
// ✨ Key guarantees:
//   - identical results for every worker count, bit for bit — the
//     accumulation order never changes, so even float rounding is stable
//   - fail-fast validation: incompatible shapes or a bad worker count are
//     rejected before any goroutine starts
//   - no partial output: one failed worker fails the whole call
//   - operands are read-only for the duration of the call
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/matmul/multiply"
//
//	c, err := multiply.Multiply(a, b, multiply.WithWorkers(4))
//	if err != nil {
//	  // multiply.ErrDimensionMismatch, multiply.ErrWorkerCount, ...
//	}
//
// Performance:
//
//   - Time:   O(rowsA · colsA · colsB), split across workers
//   - Memory: O(rowsA · colsB) for the result plus one band buffer per worker
//
// See example_test.go for runnable scenarios and errors.go for the full
// error taxonomy.
package multiply
