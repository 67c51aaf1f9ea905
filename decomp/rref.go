// SPDX-License-Identifier: MIT

package decomp

import (
	"math"

	"github.com/gfaster/Peroxide/matrix"
)

// RREF reduces m to reduced row-echelon form via Gauss-Jordan elimination
// with partial pivoting and returns the reduced matrix plus the pivot
// column indices (ascending). Rank(m) == len(pivots).
//
// Implementation:
//   - Stage 1: validate (non-nil); snapshot; resolve the numeric policy.
//   - Stage 2: walk columns left to right; for each, pick the largest
//     |value| at or below the current pivot row. Below eps the column is
//     rank-deficient and skipped; otherwise swap the pivot row up, scale it
//     so the pivot is exactly 1, and eliminate the column from every other
//     row (Jordan step). Stop once every row holds a pivot.
//
// Behavior highlights:
//   - Any shape is accepted: RREF is the fallback for non-square or
//     singular systems where LU-based solving does not apply.
//   - Pivot positions are written as exact 1 and cleared columns as exact
//     0, so downstream rank/consistency checks need no re-tolerancing.
//
// Errors:
//   - matrix.ErrNilMatrix.
//
// Complexity:
//   - Time O(rows·cols·min(rows,cols)), Space O(rows·cols).
func RREF(m matrix.Matrix, opts ...matrix.Option) (*matrix.Dense, []int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, nil, decompErrorf(opRREF, err)
	}
	eps := matrix.NewOptions(opts...).Epsilon()

	work, err := denseCopy(m)
	if err != nil {
		return nil, nil, decompErrorf(opRREF, err)
	}

	rows, cols := work.Rows(), work.Cols()
	data := work.RawData()
	pivots := make([]int, 0, minDim(rows, cols))

	var col, r, i, j, p int
	var maxAbs, v, pivot, factor float64
	for col = 0; col < cols && r < rows; col++ {
		// Partial pivoting within the remaining rows of this column.
		p = r
		maxAbs = math.Abs(data[r*cols+col])
		for i = r + 1; i < rows; i++ {
			if v = math.Abs(data[i*cols+col]); v > maxAbs {
				maxAbs, p = v, i
			}
		}
		if maxAbs < eps {
			continue // no usable pivot in this column
		}

		if p != r {
			swapRows(data, cols, p, r)
		}

		// Normalize the pivot row so the pivot entry becomes exactly 1.
		pivot = data[r*cols+col]
		for j = col; j < cols; j++ {
			data[r*cols+j] /= pivot
		}
		data[r*cols+col] = 1

		// Jordan step: clear the pivot column in every other row.
		for i = 0; i < rows; i++ {
			if i == r {
				continue
			}
			factor = data[i*cols+col]
			if factor == 0 {
				continue
			}
			for j = col; j < cols; j++ {
				data[i*cols+j] -= factor * data[r*cols+j]
			}
			data[i*cols+col] = 0
		}

		pivots = append(pivots, col)
		r++
	}

	return work, pivots, nil
}

// minDim returns the smaller of a and b.
func minDim(a, b int) int {
	if a < b {
		return a
	}

	return b
}
