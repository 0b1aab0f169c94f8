// Package matrix: plain-text codec for the count-prefixed whitespace format.
//
// Document layout:
//
//	<rows>\n
//	<cols>\n
//	<rows lines of cols whitespace-separated numeric tokens>\n
//
// Decoding is strict: each malformed document maps to exactly one sentinel
// (see errors.go). Any amount of inter-token whitespace is tolerated inside a
// row; lines after the last declared row are ignored. Dimension lines must
// hold a single positive integer after trimming.
//
// Element parsing is per-type: integer element types reject float syntax and
// out-of-range values, float element types accept anything strconv.ParseFloat
// does at the type's bit width. Encoding uses the shortest round-trip form,
// so an integer-valued float matrix prints exactly like its integer twin.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// Scanner sizing for Decode: wide rows must not trip the default 64KiB token
// limit. maxRowBytes bounds a single line; documents beyond it fail with the
// scanner's ErrTooLong. maxPreallocCells caps how much capacity the header
// alone may claim before any body line has been seen — a tiny document
// declaring billions of cells must fail on its missing rows, not commit the
// memory up front. Larger genuine documents simply grow past the cap.
const (
	initialRowBytes  = 64 * 1024
	maxRowBytes      = 1 << 24
	maxPreallocCells = 1 << 16
)

// elementParser resolves T's token parser exactly once: strconv.ParseInt at
// the exact bit width for integer kinds (so "1.2" and overflowing values
// fail), strconv.ParseFloat for float kinds. Decode calls the returned func
// per token, keeping reflection off the per-token hot path.
// Complexity: O(1) to build, O(len(tok)) per call.
func elementParser[T Element]() func(tok string) (T, error) {
	t := reflect.TypeOf((*T)(nil)).Elem() // reflect.TypeFor[T]() needs go1.22+
	bits := t.Bits()
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return func(tok string) (T, error) {
			f, err := strconv.ParseFloat(tok, bits)
			if err != nil {
				var zero T
				return zero, err
			}

			return T(f), nil
		}
	default:
		// Remaining kinds in the Element type set are the signed integers.
		return func(tok string) (T, error) {
			n, err := strconv.ParseInt(tok, 10, bits)
			if err != nil {
				var zero T
				return zero, err
			}

			return T(n), nil
		}
	}
}

// elementFormatter resolves T's renderer exactly once: FormatFloat('g', -1,
// bits) for float kinds — the shortest form that decodes back to the
// identical value — FormatInt for integer kinds. Encode and String call the
// returned func per element.
// Complexity: O(1) to build, O(digits) per call.
func elementFormatter[T Element]() func(v T) string {
	t := reflect.TypeOf((*T)(nil)).Elem() // reflect.TypeFor[T]() needs go1.22+
	bits := t.Bits()
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return func(v T) string {
			return strconv.FormatFloat(float64(v), 'g', -1, bits)
		}
	default:
		return func(v T) string {
			return strconv.FormatInt(int64(v), 10)
		}
	}
}

// readDimension consumes one line and parses it as a positive integer.
// missing is the sentinel to report when the document ends before the line
// (ErrEmptyInput for the rows line, ErrMissingDimension for the cols line).
// Errors: missing, ErrBadDimension, or the scanner's I/O error.
func readDimension(sc *bufio.Scanner, missing error) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}

		return 0, missing
	}
	tok := strings.TrimSpace(sc.Text())
	n, err := strconv.Atoi(tok)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%q: %w", tok, ErrBadDimension)
	}

	return n, nil
}

// Decode reads one matrix document from r.
// Stage 1 (Header): rows line, then cols line, each a positive integer.
// Stage 2 (Body): exactly rows lines, each split on whitespace into exactly
// cols tokens, parsed in row-major order.
// Stage 3 (Finalize): hand the filled buffer to New (which re-checks nothing
// but the construction invariants).
//
// Behavior highlights:
//   - Deterministic single pass; rows are consumed strictly top to bottom.
//   - Lines after the last declared row are ignored.
//   - Header dimensions are never trusted with memory: a rows×cols product
//     that overflows int fails with ErrBadDimension, and preallocation is
//     capped at maxPreallocCells until body lines actually arrive.
//
// Errors:
//   - ErrEmptyInput, ErrMissingDimension, ErrBadDimension (header).
//   - ErrRowCount, ErrRowLength, ErrBadElement (body).
//   - Underlying reader errors, wrapped.
//
// Complexity: O(rows*cols) time, O(rows*cols) memory for the result.
func Decode[T Element](r io.Reader) (*Matrix[T], error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialRowBytes), maxRowBytes)

	// Header: rows then cols.
	rows, err := readDimension(sc, ErrEmptyInput)
	if err != nil {
		return nil, matrixErrorf(opDecode, err)
	}
	cols, err := readDimension(sc, ErrMissingDimension)
	if err != nil {
		return nil, matrixErrorf(opDecode, err)
	}
	// Both dimensions are >= 1 here; reject a flat length that int cannot hold.
	if rows > math.MaxInt/cols {
		return nil, matrixErrorf(opDecode,
			fmt.Errorf("%d×%d cells overflow int: %w", rows, cols, ErrBadDimension))
	}

	// Body: exactly rows lines of exactly cols tokens. Capacity beyond the
	// cap is earned row by row, so an oversized claim dies on ErrRowCount.
	cells := rows * cols
	if cells > maxPreallocCells {
		cells = maxPreallocCells
	}
	data := make([]T, 0, cells)
	parse := elementParser[T]()
	var (
		i, j   int      // loop iterators (deterministic order)
		fields []string // tokens of the current row
		v      T        // parsed element
	)
	for i = 0; i < rows; i++ {
		if !sc.Scan() {
			if err = sc.Err(); err != nil {
				return nil, matrixErrorf(opDecode, err)
			}

			return nil, matrixErrorf(opDecode,
				fmt.Errorf("have %d of %d rows: %w", i, rows, ErrRowCount))
		}
		fields = strings.Fields(sc.Text())
		if len(fields) != cols {
			return nil, matrixErrorf(opDecode,
				fmt.Errorf("row %d has %d elements, want %d: %w", i, len(fields), cols, ErrRowLength))
		}
		for j = 0; j < cols; j++ {
			if v, err = parse(fields[j]); err != nil {
				return nil, matrixErrorf(opDecode,
					fmt.Errorf("row %d, col %d: %q: %w", i, j, fields[j], ErrBadElement))
			}
			data = append(data, v)
		}
	}

	return New(rows, cols, data)
}

// DecodeString decodes a document held in a string. Convenience for tests
// and examples; semantics are exactly Decode's.
func DecodeString[T Element](s string) (*Matrix[T], error) {
	return Decode[T](strings.NewReader(s))
}

// Encode writes m to w in the text format: rows line, cols line, then one
// space-separated line per row with a trailing newline.
// Stage 1 (Validate): non-nil matrix.
// Stage 2 (Execute): buffered writes, one line at a time.
// Errors: ErrNilMatrix, underlying writer errors wrapped.
// Complexity: O(rows*cols) time, O(cols) extra memory.
func Encode[T Element](w io.Writer, m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opEncode, err)
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n%d\n", m.rows, m.cols); err != nil {
		return matrixErrorf(opEncode, err)
	}
	format := elementFormatter[T]()
	var (
		i, j int             // loop iterators (deterministic order)
		line strings.Builder // reused row buffer
	)
	for i = 0; i < m.rows; i++ {
		line.Reset()
		for j = 0; j < m.cols; j++ {
			if j > 0 {
				line.WriteByte(' ') // separate values with one space
			}
			line.WriteString(format(m.data[i*m.cols+j]))
		}
		line.WriteByte('\n') // close row
		if _, err := bw.WriteString(line.String()); err != nil {
			return matrixErrorf(opEncode, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return matrixErrorf(opEncode, err)
	}

	return nil
}

// ReadFile opens path and decodes one matrix document from it.
// Errors: the open error, or any Decode error, each carrying the path.
func ReadFile[T Element](path string) (*Matrix[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, matrixErrorf(opReadFile, err)
	}
	defer f.Close()

	m, err := Decode[T](f)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", opReadFile, path, err)
	}

	return m, nil
}

// WriteFile creates (or truncates) path and encodes m into it. The close
// error is checked: a short write on a full disk must not report success.
// Errors: ErrNilMatrix, the create error, any Encode error, the close error.
func WriteFile[T Element](path string, m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opWriteFile, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return matrixErrorf(opWriteFile, err)
	}
	if err = Encode(f, m); err != nil {
		f.Close() // best effort; the encode error is the one to report

		return fmt.Errorf("%s %s: %w", opWriteFile, path, err)
	}
	if err = f.Close(); err != nil {
		return matrixErrorf(opWriteFile, err)
	}

	return nil
}
