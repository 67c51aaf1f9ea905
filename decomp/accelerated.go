// SPDX-License-Identifier: MIT
// Package decomp: QR / SVD / Cholesky — thin precondition-checked wrappers
// over the backend dispatcher. The wrappers own the structural and symmetry
// checks so the backend implementations stay pure delegation; in native
// builds the dispatcher answers with backend.ErrUnavailable naming the
// capability, which propagates unchanged through the op-tag wrapping.

package decomp

import (
	"github.com/gfaster/Peroxide/backend"
	"github.com/gfaster/Peroxide/matrix"
)

// QR factors A ≈ Q·R: orthonormal columns in Q (m×k, k = min(m,n)) and
// upper trapezoidal R (k×n, square triangular for m ≥ n). Any shape;
// accelerated builds only.
//
// Errors:
//   - matrix.ErrNilMatrix.
//   - ErrUnavailable in native builds.
//
// Complexity: O(m·n·min(m,n)) in the accelerated backend.
func QR(m matrix.Matrix) (*QRFactors, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, decompErrorf(opQR, err)
	}

	src, err := denseCopy(m)
	if err != nil {
		return nil, decompErrorf(opQR, err)
	}
	q, r, err := backend.QR(src)
	if err != nil {
		return nil, decompErrorf(opQR, err)
	}

	return &QRFactors{Q: q, R: r}, nil
}

// SVD computes the thin singular value decomposition A ≈ U·diag(s)·Vᵀ with
// s non-negative and descending. Any shape; accelerated builds only.
//
// Errors:
//   - matrix.ErrNilMatrix.
//   - ErrUnavailable in native builds.
func SVD(m matrix.Matrix) (*SVDFactors, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, decompErrorf(opSVD, err)
	}

	src, err := denseCopy(m)
	if err != nil {
		return nil, decompErrorf(opSVD, err)
	}
	u, s, v, err := backend.SVD(src)
	if err != nil {
		return nil, decompErrorf(opSVD, err)
	}

	return &SVDFactors{U: u, Values: s, V: v}, nil
}

// Cholesky factors symmetric positive-definite A ≈ L·Lᵀ.
// Implementation:
//   - Stage 1: validate non-nil, square, and symmetric within eps
//     (matrix.WithEpsilon) — asymmetric input fails with
//     matrix.ErrAsymmetry before any backend work.
//   - Stage 2: delegate to the backend; a non-positive pivot surfaces as
//     ErrNotPositiveDefinite, never as a garbage factor.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrAsymmetry.
//   - ErrNotPositiveDefinite (indefinite input).
//   - ErrUnavailable in native builds.
func Cholesky(m matrix.Matrix, opts ...matrix.Option) (*CholeskyFactors, error) {
	eps := matrix.NewOptions(opts...).Epsilon()
	if err := matrix.ValidateSymmetric(m, eps); err != nil {
		return nil, decompErrorf(opCholesky, err)
	}

	src, err := denseCopy(m)
	if err != nil {
		return nil, decompErrorf(opCholesky, err)
	}
	l, err := backend.Cholesky(src)
	if err != nil {
		return nil, decompErrorf(opCholesky, err)
	}

	return &CholeskyFactors{L: l}, nil
}
