// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Build from explicit dimensions (zero-filled) or from [][]float64 (copied, never aliased).
//   - Reject NaN/Inf in Set and NewDenseFrom.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewDenseFrom: O(r*c) copy; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxFrom     = "NewDenseFrom"
	ctxFormat   = "Format"
	ctxToRows   = "ToRows"
	ctxIdentity = "Identity"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Set and NewDenseFrom reject NaN and ±Inf.
type Dense struct {
	r, c int
	data []float64
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:    rows,
		c:    cols,
		data: buf,
	}, nil
}

// NewDenseFrom builds a Dense from a rectangular [][]float64.
// The values are copied; later mutation of src does not affect the matrix.
//
// Implementation:
//   - Stage 1: reject empty input and ragged rows.
//   - Stage 2: allocate and copy row by row, rejecting NaN/Inf.
//
// Errors:
//   - ErrInvalidDimensions if src has no rows or the first row is empty.
//   - ErrDimensionMismatch if rows have different lengths.
//   - ErrNaNInf if a value is not finite.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(src [][]float64) (*Dense, error) {
	if len(src) == 0 || len(src[0]) == 0 {
		return nil, matrixErrorf(ctxFrom, ErrInvalidDimensions)
	}
	rows, cols := len(src), len(src[0])
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(ctxFrom, err)
	}

	var i, j int
	for i = 0; i < rows; i++ {
		if len(src[i]) != cols {
			return nil, matrixErrorf(ctxFrom, fmt.Errorf("row %d has %d values, want %d: %w", i, len(src[i]), cols, ErrDimensionMismatch))
		}
		for j = 0; j < cols; j++ {
			if !isFinite(src[i][j]) {
				return nil, matrixErrorf(ctxFrom, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
		}
		copy(m.data[i*cols:(i+1)*cols], src[i])
	}

	return m, nil
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(ctxIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
// Errors: ErrOutOfRange wrapped with the coordinates.
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange, or ErrNaNInf when v is not finite.
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy; the clone never shares the backing buffer.
func (m *Dense) Clone() Matrix {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// ToRows copies the matrix out into a fresh [][]float64.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders the matrix one row per line using the shortest float form.
func (m *Dense) String() string {
	return m.render(-1)
}

// Format renders the matrix with prec fixed decimal places per cell.
// A negative prec selects the shortest representation (same as String).
func (m *Dense) Format(prec int) string {
	return m.render(prec)
}

func (m *Dense) render(prec int) string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'f', prec, 64))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// ToRows copies any Matrix into a [][]float64, using the flat fast path for *Dense.
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxToRows, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.ToRows(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([][]float64, rows)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(ctxToRows, err)
			}
			out[i][j] = v
		}
	}

	return out, nil
}

// Format renders any Matrix with prec decimals; *Dense renders directly.
func Format(m Matrix, prec int) (string, error) {
	if err := ValidateNotNil(m); err != nil {
		return "", matrixErrorf(ctxFormat, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.Format(prec), nil
	}
	rows, err := ToRows(m)
	if err != nil {
		return "", matrixErrorf(ctxFormat, err)
	}
	d, err := NewDenseFrom(rows)
	if err != nil {
		return "", matrixErrorf(ctxFormat, err)
	}

	return d.Format(prec), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
