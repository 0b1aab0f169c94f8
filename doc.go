// Package matmul is a small, deterministic toolkit for multiplying dense
// numeric matrices in parallel — read two matrices from plain text, split
// the output rows across a fixed team of workers, get one exact result.
//
// 🚀 What is matmul?
//
//	A generic, dependency-light library that brings together:
//		• Matrix container: immutable row-major buffers over any signed
//		  integer or float element type
//		• Text codec: count-prefixed whitespace format, strict decode errors
//		• Partitioner: contiguous, near-equal row bands for N workers
//		• Kernel: the sequential dot-product routine with a fixed
//		  accumulation order
//		• Dispatcher: one goroutine per band, joined before assembly
//		• Aggregator: band buffers concatenated in row order, never by
//		  completion order
//
// ✨ Why choose matmul?
//
//   - Deterministic – identical inputs and worker counts always produce
//     byte-identical output; accumulation order never varies
//   - Rock-solid guarantees – fail-fast validation, sentinel errors,
//     no partial results
//   - Pure Go – no cgo, generics instead of reflection in the hot path
//   - Honest concurrency – a per-call worker team, no hidden pools,
//     no cancellation surprises
//
// Under the hood, everything is organized under two packages and one command:
//
//	matrix/     — Matrix[T] container + text encode/decode + file helpers
//	multiply/   — partitioner, kernel, dispatcher, aggregator
//	cmd/matmul/ — CLI: matmul [-workers N] A.txt B.txt C.txt
//
// Quick ASCII example:
//
//	    A (3×2)   ×   B (2×4)   =   C (3×4)
//	    [1 2]         [7  8  9 10]  [ 29  32  35  38]
//	    [3 4]         [11 12 13 14] [ 65  72  79  86]
//	    [5 6]                       [101 112 123 134]
//
//	three workers ⇒ one output row each; same C for any worker count.
//
// Dive into the package docs for the full contracts: partition shape,
// accumulation order, and the error taxonomy.
//
//	go get github.com/katalvlaran/matmul
package matmul
