// Package multiply: the partitioner. Pure row-band arithmetic, no
// concurrency; the dispatcher turns each band into one worker.

package multiply

// partitionRows cuts rows output rows into workers contiguous bands and
// returns the band boundaries: a slice of workers+1 ascending offsets
// starting at 0 and ending at rows. Band w spans [bounds[w], bounds[w+1]).
//
// Stage 1 (Validate): workers must lie in [1, rows].
// Stage 2 (Execute): base = rows/workers rows per band; the first
// rows%workers bands get one extra row, so band sizes differ by at most one
// and larger bands come first.
//
// Behavior highlights:
//   - Pure function, no hidden state: identical inputs always produce
//     identical boundaries.
//   - Bands are contiguous, non-overlapping, and cover [0, rows) exactly
//     once, in ascending row order matching ascending band index.
//
// Errors:
//   - ErrWorkerCount (via ValidateWorkers).
//
// Complexity: O(workers) time, O(workers) memory.
func partitionRows(workers, rows int) ([]int, error) {
	if err := ValidateWorkers(workers, rows); err != nil {
		return nil, err
	}

	base, rem := rows/workers, rows%workers
	bounds := make([]int, workers+1)
	var w, size int // loop iterator and current band size
	for w = 0; w < workers; w++ {
		size = base
		if w < rem {
			size++ // the first rem bands absorb the remainder, one row each
		}
		bounds[w+1] = bounds[w] + size // cumulative sum keeps bands contiguous
	}

	return bounds, nil
}
