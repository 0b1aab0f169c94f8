// Package matrix offers a generic dense matrix container and its text codec.
//
// The matrix package provides:
//
//   - Matrix[T]: an immutable-after-construction, row-major buffer over any
//     signed integer or float element type, safely shared by concurrent
//     readers.
//   - A strict plain-text codec (Decode, Encode, ReadFile, WriteFile) for the
//     count-prefixed whitespace format: rows line, cols line, then one line
//     per row.
//   - Sentinel errors for every construction and decoding failure, matched
//     with errors.Is.
//
// Matrices are best for dense numeric data where O(rows*cols) memory is
// acceptable and element access must stay allocation-free.
//
// See the examples in this package and multiply for usage patterns.
package matrix
