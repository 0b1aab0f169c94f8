// SPDX-License-Identifier: MIT
// Package matrix_test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the unit tests and
//     benchmarks in this package.
//   - Keep all data finite and well-formed so codec behavior, not numeric
//     policy, is what each test exercises.

package matrix_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/matmul/matrix"
)

// MustFromRows builds a matrix from row literals or aborts the test.
// Concise boilerplate reduction for fixtures whose construction is not the
// behavior under test.
func MustFromRows[T matrix.Element](t *testing.T, rows [][]T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// ---------- bench helpers ----------

// randFilledDense returns an r×c float64 matrix with deterministic U(-1,1)
// values for the given seed.
func randFilledDense(b *testing.B, r, c int, seed int64) *matrix.Matrix[float64] {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	var i int
	for i = 0; i < len(data); i++ {
		data[i] = rng.Float64()*2 - 1 // 0*2-1=-1 || 1*2-1=1
	}
	m, err := matrix.New(r, c, data)
	if err != nil {
		b.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// benchDoc renders an n×n random matrix as a text document for decode
// benchmarks. Deterministic per seed.
func benchDoc(b *testing.B, n int, seed int64) string {
	b.Helper()
	var sb strings.Builder
	if err := matrix.Encode(&sb, randFilledDense(b, n, n, seed)); err != nil {
		b.Fatalf("Encode: %v", err)
	}

	return sb.String()
}
