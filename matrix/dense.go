// SPDX-License-Identifier: MIT
// Package matrix provides core linear algebra primitives for array-based
// computations. Dense is the concrete, row-major implementation of the
// Matrix interface, storing elements in a flat slice for performance and
// cache friendliness. The row-major layout is fixed at construction and
// never changes; the accelerated backend depends on it.

package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The backing buffer is exclusively owned by the Dense instance: Clone and
// every kernel in this package copy, never alias.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Implementation:
//   - Stage 1: validate rows and cols > 0.
//   - Stage 2: allocate the flat backing slice and return.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity: O(r*c) time and memory (runtime zeroing).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseData creates an r×c Dense from a flat row-major slice.
// The slice is copied; the caller keeps ownership of vals.
// Implementation:
//   - Stage 1: validate rows, cols > 0 and len(vals) == rows*cols.
//   - Stage 2: copy vals into a fresh backing slice.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//   - ErrShapeMismatch when len(vals) != rows*cols (never padded/truncated).
//
// Complexity: O(r*c).
//
// AI-Hints:
//   - Preferred fixture constructor: NewDenseData(2, 2, []float64{4, 3, 6, 3}).
func NewDenseData(rows, cols int, vals []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(vals) != rows*cols {
		return nil, fmt.Errorf("NewDenseData(%d,%d): have %d values: %w",
			rows, cols, len(vals), ErrShapeMismatch)
	}

	data := make([]float64, rows*cols)
	copy(data, vals)

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix. O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix. O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange on invalid indices. O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange on invalid indices. O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// RawData returns the backing row-major slice of the matrix.
//
// The slice is a borrowed view, not a copy: writing through it mutates the
// matrix, and it must never be resized or retained past the matrix's
// lifetime. It exists so the backend and decomp kernels can run flat-slice
// loops without per-element At/Set dispatch; ordinary callers should use
// At/Set/Clone.
func (m *Dense) RawData() []float64 { return m.data }

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
