// SPDX-License-Identifier: MIT

package decomp

import (
	"math"

	"github.com/gfaster/Peroxide/matrix"
)

// LU computes the partially-pivoted factorization P·A = L·U for square A.
// Implementation:
//   - Stage 1: validate (non-nil, square); snapshot A into a working Dense;
//     resolve the numeric policy (matrix.WithEpsilon).
//   - Stage 2: for each column k, pick the row with the largest |value| at
//     or below the diagonal, swap it up (recording the permutation and
//     flipping Sign), then eliminate below the pivot in place. The working
//     matrix carries L's multipliers below the diagonal and U on/above it;
//     Stage 3 splits them into separate factors.
//
// Behavior highlights:
//   - A pivot column whose maximum magnitude is below eps is skipped: the
//     zero pivot stays on diag(U) and the factors come back degenerate
//     instead of failing. Consumers that need invertibility (Solve,
//     Inverse) check diag(U) against the same eps and return ErrSingular;
//     Determinant simply evaluates to ≈0.
//   - Deterministic pivot scan (first maximal row wins) and fixed loop
//     orders give identical factors for identical inputs.
//
// Inputs:
//   - m: square Matrix (n×n), read-only (snapshotted).
//   - opts: numeric policy; matrix.WithEpsilon overrides DefaultEpsilon.
//
// Returns:
//   - *LUFactors with unit-lower L, upper U, row permutation and Sign.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Factor once and reuse: solver.SolveLU and solver.Inverse run many
//     right-hand sides against a single *LUFactors.
func LU(m matrix.Matrix, opts ...matrix.Option) (*LUFactors, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, decompErrorf(opLU, err)
	}
	eps := matrix.NewOptions(opts...).Epsilon()

	work, err := denseCopy(m)
	if err != nil {
		return nil, decompErrorf(opLU, err)
	}

	n := work.Rows()
	data := work.RawData()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1.0

	var k, i, j, p int
	var maxAbs, v, mult, pivot float64
	for k = 0; k < n; k++ {
		// Partial pivoting: largest |value| in column k at rows k..n-1.
		p = k
		maxAbs = math.Abs(data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(data[i*n+k]); v > maxAbs {
				maxAbs, p = v, i
			}
		}

		// Numerically zero column: keep the degenerate pivot and move on.
		if maxAbs < eps {
			continue
		}

		if p != k {
			// Swap full rows: both the L-multiplier prefix and the U suffix
			// move with the row, which is exactly what P·A = L·U requires.
			swapRows(data, n, p, k)
			perm[p], perm[k] = perm[k], perm[p]
			sign = -sign
		}

		pivot = data[k*n+k]
		for i = k + 1; i < n; i++ {
			data[i*n+k] /= pivot
			mult = data[i*n+k]
			if mult == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				data[i*n+j] -= mult * data[k*n+j]
			}
		}
	}

	// Split the combined working matrix into unit-lower L and upper U.
	l, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, decompErrorf(opLU, err)
	}
	u, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, decompErrorf(opLU, err)
	}
	ld, ud := l.RawData(), u.RawData()
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			ld[i*n+j] = data[i*n+j]
		}
		for j = i; j < n; j++ {
			ud[i*n+j] = data[i*n+j]
		}
	}

	return &LUFactors{L: l, U: u, Perm: perm, Sign: sign}, nil
}

// swapRows exchanges rows a and b of an n-column row-major buffer.
func swapRows(data []float64, n, a, b int) {
	ra, rb := a*n, b*n
	for j := 0; j < n; j++ {
		data[ra+j], data[rb+j] = data[rb+j], data[ra+j]
	}
}
