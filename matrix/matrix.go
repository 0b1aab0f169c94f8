// Package matrix: the dense container. Matrix is a concrete, row-major,
// generic implementation storing elements in a flat slice for performance and
// cache friendliness. Once constructed, a Matrix is treated as immutable and
// is safe to share by reference across concurrent readers; nothing in this
// package mutates a matrix after its constructor returns.

package matrix

import (
	"fmt"
	"strings"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew       = "New"
	opFromRows  = "NewFromRows"
	opAt        = "At"
	opSet       = "Set"
	opRow       = "Row"
	opDecode    = "Decode"
	opEncode    = "Encode"
	opReadFile  = "ReadFile"
	opWriteFile = "WriteFile"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting across the package. Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf wraps a bounds error with method context and the offending
// coordinates, mirroring the "Op(i,j): underlying" shape used by indexers.
func indexErrorf(tag string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", tag, row, col, err)
}

// Matrix is a row-major rows×cols buffer of Element values.
// rows and cols are both at least 1, and data holds exactly rows*cols
// elements in row-major order: (i,j) lives at flat index i*cols+j.
type Matrix[T Element] struct {
	rows, cols int // shape, validated at construction
	data       []T // flat backing storage, length == rows*cols
}

// New builds a rows×cols Matrix over data, adopting the slice as backing
// storage without copying. The caller hands over ownership and must not
// retain or mutate data afterwards; Clone exists for deep copies.
// Stage 1 (Validate): shape positive, len(data) == rows*cols.
// Stage 2 (Finalize): wrap the adopted slice.
// Errors: ErrBadShape, ErrDataLength.
// Complexity: O(1) time, O(1) extra memory.
func New[T Element](rows, cols int, data []T) (*Matrix[T], error) {
	// Validate shape before touching the buffer.
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	// The length invariant is enforced here once, never re-checked later.
	if len(data) != rows*cols {
		return nil, matrixErrorf(opNew,
			fmt.Errorf("%d×%d needs %d elements, got %d: %w", rows, cols, rows*cols, len(data), ErrDataLength))
	}

	// Return initialized Matrix
	return &Matrix[T]{rows: rows, cols: cols, data: data}, nil
}

// NewZeros builds a rows×cols Matrix initialized to the zero value of T.
// Errors: ErrBadShape.
// Complexity: O(rows*cols) time and memory.
func NewZeros[T Element](rows, cols int) (*Matrix[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// NewFromRows builds a Matrix by flattening a slice of rows, copying every
// element. The column count is taken from the first row and every later row
// must match it.
// Stage 1 (Validate): at least one row, at least one column, no ragged rows.
// Stage 2 (Prepare): allocate the flat buffer.
// Stage 3 (Execute): copy row by row in ascending order.
// Errors: ErrBadShape, ErrRowLength.
// Complexity: O(rows*cols) time and memory.
func NewFromRows[T Element](rows [][]T) (*Matrix[T], error) {
	// Validate outer shape.
	if len(rows) == 0 {
		return nil, matrixErrorf(opFromRows, ErrBadShape)
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, matrixErrorf(opFromRows, ErrBadShape)
	}
	// Allocate once; filled below.
	data := make([]T, 0, len(rows)*cols)
	var i int // loop iterator (deterministic order)
	for i = 0; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, matrixErrorf(opFromRows,
				fmt.Errorf("row %d has %d elements, want %d: %w", i, len(rows[i]), cols, ErrRowLength))
		}
		data = append(data, rows[i]...)
	}

	return &Matrix[T]{rows: len(rows), cols: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	return m.rows // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	return m.cols // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < rows and 0 ≤ col < cols.
// Stage 2 (Execute): compute and return the linear index.
// Complexity: O(1).
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.rows {
		return 0, ErrOutOfRange
	}
	// Validate column index
	if col < 0 || col >= m.cols {
		return 0, ErrOutOfRange
	}

	// Compute flat offset
	return row*m.cols + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from the data slice.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, indexErrorf(opAt, row, col, err)
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col). Set exists for construction-time
// population only; a matrix that has been handed to concurrent readers must
// never be written again.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return indexErrorf(opSet, row, col, err)
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Row returns the row-major view of one row: a slice into the backing
// storage, NOT a copy. Callers must treat it as read-only.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Row(row int) ([]T, error) {
	if row < 0 || row >= m.rows {
		return nil, fmt.Errorf("%s(%d): %w", opRow, row, ErrOutOfRange)
	}

	return m.data[row*m.cols : (row+1)*m.cols], nil
}

// Data returns the whole flat backing slice, NOT a copy. Callers must treat
// it as read-only; the multiply kernels rely on this borrow to walk operands
// without allocation.
// Complexity: O(1).
func (m *Matrix[T]) Data() []T {
	return m.data
}

// Clone returns a deep copy of the matrix, independent of the original.
// Complexity: O(rows*cols) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	// Allocate new slice for data copy
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: copyData}
}

// Equal reports whether m and other have the same shape and exactly equal
// elements. Exact comparison is intentional: the multiply contract promises
// byte-identical results, so tests compare with == rather than a tolerance.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	var idx int // loop iterator (deterministic order)
	for idx = 0; idx < len(m.data); idx++ {
		if m.data[idx] != other.data[idx] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer: one line per row, elements separated by a
// single space, trailing newline. Matches the body section of the text
// format, without the dimension header.
// Complexity: O(rows*cols) for string construction.
func (m *Matrix[T]) String() string {
	format := elementFormatter[T]()
	var sb strings.Builder
	var i, j int // loop iterators (deterministic order)
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ') // separate values with one space
			}
			sb.WriteString(format(m.data[i*m.cols+j]))
		}
		sb.WriteByte('\n') // close row
	}

	return sb.String()
}
