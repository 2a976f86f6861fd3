// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of
//     panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).

package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Dense from a non-empty, non-ragged [][]float64.
// Stage 1 (Validate): rows ≥ 1, cols ≥ 1, every row the same length.
// Stage 2 (Copy): copy row by row into the flat buffer; src stays untouched.
// Complexity: O(r*c).
func FromRows(src [][]float64) (*Dense, error) {
	if len(src) == 0 || len(src[0]) == 0 {
		return nil, ErrBadShape
	}
	rows, cols := len(src), len(src[0])

	m := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	var i int
	for i = 0; i < rows; i++ {
		if len(src[i]) != cols {
			return nil, ErrBadShape // ragged input
		}
		copy(m.data[i*cols:(i+1)*cols], src[i])
	}

	return m, nil
}

// FromRow builds a 1×n Dense from a non-empty vector. Convenience for
// callers that treat 1-D data as a single-row matrix.
// Complexity: O(n).
func FromRow(v []float64) (*Dense, error) {
	if len(v) == 0 {
		return nil, ErrBadShape
	}
	m := &Dense{r: 1, c: len(v), data: make([]float64, len(v))}
	copy(m.data, v)

	return m, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// RawData exposes the flat row-major backing slice for read-only fast paths.
// Mutating the returned slice mutates the matrix; hot-loop kernels inside this
// module read it, external callers should treat it as immutable.
func (m *Dense) RawData() []float64 { return m.data }

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
