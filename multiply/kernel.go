// SPDX-License-Identifier: MIT
// Package multiply: the sequential kernel. Every worker and the unthreaded
// fast path run this exact routine, which is what makes the result
// independent of the worker count.

package multiply

import "github.com/katalvlaran/matmul/matrix"

// bandProduct computes output rows [r0, r1) of C = A·B into out.
//
// a and b are the flat row-major buffers of A (rowsA×colsA) and B
// (colsA×colsB); out holds (r1-r0)*colsB cells, out[0] being C[r0,0].
// Preconditions (validated by the dispatcher, never re-checked here):
// compatible shapes, 0 ≤ r0 < r1 ≤ rowsA, len(out) == (r1-r0)*colsB.
//
// Implementation:
//   - Stage 1: for each row i, the k=0 pass SEEDS every cell of the row with
//     its first product — no zero initialization, so a leading -0.0 or NaN
//     term lands in the sum exactly as arithmetic dictates.
//   - Stage 2: the remaining k ascend 1..colsA-1 in i→k→j order with
//     row-major strides; each cell's own accumulation chain is therefore
//     strictly ascending in k.
//
// Behavior highlights:
//   - Accumulation order is part of the public contract: for float elements
//     the rounding sequence per cell is fixed, so any band split produces
//     bit-identical cells. No term is ever skipped, reordered or fused.
//   - Reads only a and b, writes only out; no allocation, no shared state.
//
// Inputs:
//   - a, b: operand buffers (read-only borrows via Matrix.Data).
//   - colsA, colsB: inner dimension and output width.
//   - r0, r1: the band's half-open row range.
//   - out: the band's private output buffer.
//
// Returns:
//   - None (fills out).
//
// Determinism:
//   - Fixed i→k→j loop order; per-cell sums fold left over ascending k.
//
// Complexity:
//   - Time O((r1-r0)·colsA·colsB), Space O(1) extra.
//
// Notes:
//   - Zero-valued A[i,k] terms are NOT skipped: 0·x participates in the sum
//     so that NaN and signed-zero propagation stay exact.
func bandProduct[T matrix.Element](a, b []T, colsA, colsB, r0, r1 int, out []T) {
	var (
		i, j, k          int // loop iterators (deterministic order)
		aOff, bOff, oOff int // row-major offsets
		av               T   // current A[i,k], reused across the j loop
	)
	for i = r0; i < r1; i++ {
		aOff = i * colsA        // A row i starts here
		oOff = (i - r0) * colsB // C row i is band-relative in out

		// k = 0: seed every cell of the row with its first product.
		av = a[aOff]
		for j = 0; j < colsB; j++ {
			out[oOff+j] = av * b[j]
		}

		// k = 1..colsA-1: accumulate in strictly ascending k.
		for k = 1; k < colsA; k++ {
			av = a[aOff+k]
			bOff = k * colsB
			for j = 0; j < colsB; j++ {
				out[oOff+j] += av * b[bOff+j]
			}
		}
	}
}
