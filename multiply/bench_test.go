// Package multiply_test provides benchmarks for the dispatcher and the raw
// kernel, using deterministic random operands.
package multiply_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/katalvlaran/matmul/multiply"
)

// benchSizes are the square operand sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// benchWorkers are the team sizes exercised per operand size.
var benchWorkers = []int{1, 2, 4, 8}

// sinkM keeps results alive to defeat dead-code elimination.
var sinkM *matrix.Matrix[float64]

// benchMatrix builds an n×n float64 matrix with deterministic U(-1,1) values.
func benchMatrix(b *testing.B, n int, seed int64) *matrix.Matrix[float64] {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*n)
	var i int
	for i = 0; i < len(data); i++ {
		data[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.New(n, n, data)
	if err != nil {
		b.Fatalf("New(%d,%d): %v", n, n, err)
	}

	return m
}

func BenchmarkMultiply(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		A := benchMatrix(b, n, 101)
		B := benchMatrix(b, n, 202)
		for _, w := range benchWorkers {
			if w > n {
				continue // team may not exceed the row count
			}
			b.Run(fmt.Sprintf("n=%d/workers=%d", n, w), func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					C, err := multiply.Multiply(A, B, multiply.WithWorkers(w))
					if err != nil {
						b.Fatal(err)
					}
					sinkM = C
				}
			})
		}
	}
}

func BenchmarkBandProduct(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		A := benchMatrix(b, n, 303)
		B := benchMatrix(b, n, 404)
		da, db := A.Data(), B.Data()
		out := make([]float64, n*n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				multiply.BandProduct_TestOnly(da, db, n, n, 0, n, out)
			}
		})
	}
}

func BenchmarkPartitionRows(b *testing.B) {
	b.ReportAllocs()
	for _, w := range []int{2, 16, 128} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := multiply.ExportedPartitionRows(w, 1<<20); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
