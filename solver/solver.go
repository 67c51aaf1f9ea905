// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/gfaster/Peroxide/decomp"
	"github.com/gfaster/Peroxide/matrix"
)

// Solve computes x such that A·x = b for square non-singular A.
// Implementation:
//   - Stage 1: validate (non-nil, square, len(b) == n); factor P·A = L·U.
//   - Stage 2: reject singularity (any |diag(U)| < eps), then run permuted
//     forward substitution L·y = P·b followed by back substitution U·x = y.
//
// Inputs:
//   - a: square Matrix (n×n), read-only.
//   - b: right-hand side of length n, read-only.
//   - opts: numeric policy; matrix.WithEpsilon overrides DefaultEpsilon.
//
// Returns:
//   - x: solution vector of length n (fresh slice).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
//   - matrix.ErrSingular when A is singular within eps.
//
// Complexity:
//   - Time O(n³) dominated by the factorization; substitution is O(n²).
//
// AI-Hints:
//   - Solving the same A against many b vectors? Factor once with decomp.LU
//     and call SolveLU per right-hand side.
func Solve(a matrix.Matrix, b []float64, opts ...matrix.Option) ([]float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, solverErrorf(opSolve, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, solverErrorf(opSolve, err)
	}

	f, err := decomp.LU(a, opts...)
	if err != nil {
		return nil, solverErrorf(opSolve, err)
	}
	if err = checkNonSingular(f, matrix.NewOptions(opts...).Epsilon()); err != nil {
		return nil, solverErrorf(opSolve, err)
	}

	return solveFactored(f, b), nil
}

// SolveLU solves A·x = b against an existing factorization, skipping the
// O(n³) elimination. The factors are read-only; concurrent SolveLU calls on
// one *decomp.LUFactors are safe.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//   - matrix.ErrSingular when diag(U) carries an entry below eps.
func SolveLU(f *decomp.LUFactors, b []float64, opts ...matrix.Option) ([]float64, error) {
	if f == nil || f.L == nil || f.U == nil {
		return nil, solverErrorf(opSolveLU, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateVecLen(b, f.U.Rows()); err != nil {
		return nil, solverErrorf(opSolveLU, err)
	}
	if err := checkNonSingular(f, matrix.NewOptions(opts...).Epsilon()); err != nil {
		return nil, solverErrorf(opSolveLU, err)
	}

	return solveFactored(f, b), nil
}

// Inverse computes A⁻¹ for square non-singular A by solving the n identity
// columns against a single LU factorization.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//   - matrix.ErrSingular when A is singular within eps.
//
// Complexity:
//   - Time O(n³): one factorization plus n substitutions of O(n²) each.
func Inverse(a matrix.Matrix, opts ...matrix.Option) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, solverErrorf(opInverse, err)
	}

	f, err := decomp.LU(a, opts...)
	if err != nil {
		return nil, solverErrorf(opInverse, err)
	}
	eps := matrix.NewOptions(opts...).Epsilon()
	if err = checkNonSingular(f, eps); err != nil {
		return nil, solverErrorf(opInverse, err)
	}

	n := f.U.Rows()
	inv, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, solverErrorf(opInverse, err)
	}
	out := inv.RawData()

	// Column j of A⁻¹ solves A·x = e_j. The unit vector is rebuilt in place
	// per column to avoid n allocations; singularity was verdicted once
	// above, so the per-column substitutions run unchecked.
	e := make([]float64, n)
	var j, i int
	var x []float64
	for j = 0; j < n; j++ {
		e[j] = 1
		x = solveFactored(f, e)
		for i = 0; i < n; i++ {
			out[i*n+j] = x[i]
		}
		e[j] = 0
	}

	return inv, nil
}

// Determinant computes det(A) as Sign·∏ diag(U). A singular matrix is not
// an error here: the product simply evaluates to (approximately) zero.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
func Determinant(a matrix.Matrix, opts ...matrix.Option) (float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return 0, solverErrorf(opDeterminant, err)
	}

	f, err := decomp.LU(a, opts...)
	if err != nil {
		return 0, solverErrorf(opDeterminant, err)
	}

	n := f.U.Rows()
	ud := f.U.RawData()
	det := f.Sign
	for i := 0; i < n; i++ {
		det *= ud[i*n+i]
	}

	return det, nil
}

// Rank counts the pivot columns of the reduced row-echelon form. Works on
// any shape, including singular and rectangular input.
//
// Errors:
//   - matrix.ErrNilMatrix.
//
// Complexity:
//   - Time O(rows·cols·min(rows,cols)).
func Rank(a matrix.Matrix, opts ...matrix.Option) (int, error) {
	_, pivots, err := decomp.RREF(a, opts...)
	if err != nil {
		return 0, solverErrorf(opRank, err)
	}

	return len(pivots), nil
}

// LeastSquares computes the minimum-residual x for the overdetermined system
// A·x ≈ b (rows ≥ cols) via the thin QR factorization: R·x = Qᵀ·b.
// Accelerated builds only; native builds return decomp.ErrUnavailable.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//   - matrix.ErrSingular when A is rank-deficient within eps.
//   - decomp.ErrUnavailable in native builds.
func LeastSquares(a matrix.Matrix, b []float64, opts ...matrix.Option) ([]float64, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, solverErrorf(opLeastSquares, err)
	}
	// Overdetermined or square only: with fewer rows than unknowns the
	// square-R back substitution below has no meaning.
	if a.Rows() < a.Cols() {
		return nil, solverErrorf(opLeastSquares, matrix.ErrDimensionMismatch)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, solverErrorf(opLeastSquares, err)
	}

	f, err := decomp.QR(a)
	if err != nil {
		return nil, solverErrorf(opLeastSquares, err)
	}

	// Qᵀ·b: Q is m×n thin, so the projection has length n.
	m, n := f.Q.Rows(), f.Q.Cols()
	qd := f.Q.RawData()
	y := make([]float64, n)
	var i, j int
	for j = 0; j < n; j++ {
		s := 0.0
		for i = 0; i < m; i++ {
			s += qd[i*n+j] * b[i]
		}
		y[j] = s
	}

	eps := matrix.NewOptions(opts...).Epsilon()
	rd := f.R.RawData()
	rc := f.R.Cols()
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		if math.Abs(rd[i*rc+i]) < eps {
			return nil, solverErrorf(opLeastSquares, matrix.ErrSingular)
		}
		s := y[i]
		for j = i + 1; j < n; j++ {
			s -= rd[i*rc+j] * x[j]
		}
		x[i] = s / rd[i*rc+i]
	}

	return x, nil
}

// checkNonSingular rejects factorizations whose U diagonal carries an entry
// below eps in magnitude.
func checkNonSingular(f *decomp.LUFactors, eps float64) error {
	n := f.U.Rows()
	ud := f.U.RawData()
	for i := 0; i < n; i++ {
		if math.Abs(ud[i*n+i]) < eps {
			return matrix.ErrSingular
		}
	}

	return nil
}

// solveFactored runs the two-stage substitution against finished LU factors:
// forward L·y = P·b, then backward U·x = y. The caller has already verdicted
// diag(U) via checkNonSingular, so no division here can hit a zero pivot.
func solveFactored(f *decomp.LUFactors, b []float64) []float64 {
	n := f.U.Rows()
	ld, ud := f.L.RawData(), f.U.RawData()

	// Forward substitution on the permuted right-hand side. L is unit lower
	// triangular, so no division is needed.
	y := make([]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		s := b[f.Perm[i]]
		for j = 0; j < i; j++ {
			s -= ld[i*n+j] * y[j]
		}
		y[i] = s
	}

	// Back substitution against upper triangular U.
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		s := y[i]
		for j = i + 1; j < n; j++ {
			s -= ud[i*n+j] * x[j]
		}
		x[i] = s / ud[i*n+i]
	}

	return x
}
