// SPDX-License-Identifier: MIT
package multiply_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/matmul/multiply"
	"github.com/stretchr/testify/require"
)

// TestPartitionRowsExactBoundaries pins the boundary layout for hand-checked
// cases, including the remainder-first rule.
func TestPartitionRowsExactBoundaries(t *testing.T) {
	cases := []struct {
		name    string
		workers int
		rows    int
		want    []int
	}{
		{"one worker takes all", 1, 5, []int{0, 5}},
		{"even split", 3, 6, []int{0, 2, 4, 6}},
		{"remainder leads", 2, 5, []int{0, 3, 5}},
		{"two larger bands first", 3, 8, []int{0, 3, 6, 8}},
		{"one row per band", 4, 4, []int{0, 1, 2, 3, 4}},
		{"single row", 1, 1, []int{0, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := multiply.ExportedPartitionRows(tc.workers, tc.rows)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestPartitionRowsProperties sweeps every valid worker count for a range of
// row counts and checks the band invariants: workers+1 ascending boundaries
// from 0 to rows, sizes differing by at most one, larger bands first.
func TestPartitionRowsProperties(t *testing.T) {
	for _, rows := range []int{1, 2, 3, 5, 8, 13, 97} {
		for workers := 1; workers <= rows; workers++ {
			t.Run(fmt.Sprintf("rows=%d/workers=%d", rows, workers), func(t *testing.T) {
				bounds, err := multiply.ExportedPartitionRows(workers, rows)
				require.NoError(t, err)
				require.Len(t, bounds, workers+1)
				require.Equal(t, 0, bounds[0])          // starts at the first row
				require.Equal(t, rows, bounds[workers]) // ends exactly at rows

				base, rem := rows/workers, rows%workers
				var w, size int // loop iterator and band size
				for w = 0; w < workers; w++ {
					size = bounds[w+1] - bounds[w]
					require.Positive(t, size) // boundaries strictly ascend
					if w < rem {
						require.Equal(t, base+1, size) // first rem bands carry the extra row
					} else {
						require.Equal(t, base, size)
					}
				}
			})
		}
	}
}

// TestPartitionRowsInvalidCounts ensures out-of-range worker counts fail with
// ErrWorkerCount before any banding happens.
func TestPartitionRowsInvalidCounts(t *testing.T) {
	_, err := multiply.ExportedPartitionRows(0, 4)
	require.ErrorIs(t, err, multiply.ErrWorkerCount) // zero workers

	_, err = multiply.ExportedPartitionRows(-2, 4)
	require.ErrorIs(t, err, multiply.ErrWorkerCount) // negative workers

	_, err = multiply.ExportedPartitionRows(5, 4)
	require.ErrorIs(t, err, multiply.ErrWorkerCount) // more workers than rows
	require.ErrorContains(t, err, "requested 5 for 4 rows")
}

// TestValidateWorkersBounds walks the exact edges of the accepted range.
func TestValidateWorkersBounds(t *testing.T) {
	require.NoError(t, multiply.ValidateWorkers(1, 1))  // lower edge
	require.NoError(t, multiply.ValidateWorkers(7, 7))  // upper edge
	require.NoError(t, multiply.ValidateWorkers(3, 10)) // interior

	require.ErrorIs(t, multiply.ValidateWorkers(0, 10), multiply.ErrWorkerCount)
	require.ErrorIs(t, multiply.ValidateWorkers(11, 10), multiply.ErrWorkerCount)
}
