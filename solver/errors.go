// SPDX-License-Identifier: MIT
// Package solver: error wrapping helpers. All sentinels come from matrix
// and decomp; solver adds only the operation tag.

package solver

import "fmt"

// Operation name constants for unified error wrapping (no magic strings).
const (
	opSolve        = "Solve"
	opSolveLU      = "SolveLU"
	opInverse      = "Inverse"
	opDeterminant  = "Determinant"
	opRank         = "Rank"
	opLeastSquares = "LeastSquares"
)

// solverErrorf wraps err with an operation tag, preserving the original
// error via %w. Call only with err != nil.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
