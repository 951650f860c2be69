// SPDX-License-Identifier: MIT
// Package: chromatic/conjecture
//
// dense.go — dense int64 matrices with checked indexing.

package conjecture

import (
	"fmt"
	"strconv"
	"strings"
)

// Dense is a row-major matrix of int64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int     // number of rows and columns
	data []int64 // flat backing storage, length == r*c
}

// denseErrorf wraps err with the method tag and the offending index.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates an r×c zero matrix.
// Stage 1 (Validate): rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf(opNewDense, rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// FromRows copies a rectangular [][]int64 into a new Dense.
// Stage 1 (Validate): at least one non-empty row; equal lengths.
// Stage 2 (Execute): copy row by row.
// Complexity: O(r*c).
func FromRows(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", opFromRows, ErrBadShape)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", opFromRows, i, len(row), m.c, ErrRaggedRows)
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf(opAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// ToRows returns a deep copy as a slice of rows.
func (m *Dense) ToRows() [][]int64 {
	out := make([][]int64, m.r)
	for i := range out {
		out[i] = append([]int64(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	return &Dense{r: m.r, c: m.c, data: append([]int64(nil), m.data...)}
}

// Equal reports identical shape and entries.
func (m *Dense) Equal(o *Dense) bool {
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line: "[0, 1]\n[1, 1]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatInt(m.data[i*m.c+j], 10))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// LaTeX renders the matrix as a bmatrix environment, one row per line.
func (m *Dense) LaTeX() string {
	var sb strings.Builder
	sb.WriteString("\\begin{bmatrix}\n")
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(" & ")
			}
			sb.WriteString(strconv.FormatInt(m.data[i*m.c+j], 10))
		}
		sb.WriteString(" \\\\\n")
	}
	sb.WriteString("\\end{bmatrix}")

	return sb.String()
}
