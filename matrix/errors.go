// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and its consumers (decomp, solver). All operations MUST return these
// sentinels and tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions; panics are reserved for programmer errors
// in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrShapeMismatch indicates that a flat data slice does not match the
	// requested rows*cols shape during construction.
	ErrShapeMismatch = errors.New("matrix: data length does not match shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (LU, Solve, Inverse, Determinant, Cholesky).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured numeric policy (epsilon).
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrSingular is returned when a pivot below the configured epsilon is
	// encountered by a consumer that requires an invertible matrix
	// (Solve/Inverse). Raw LU factors remain obtainable on singular input.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrDivisionByZero is returned by scalar division with a zero divisor.
	ErrDivisionByZero = errors.New("matrix: division by zero scalar")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where a finite value is required
	// by the numeric policy (e.g. a non-finite tolerance).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
