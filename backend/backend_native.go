//go:build !accel

// SPDX-License-Identifier: MIT
// Native backend: dependency-free. Multiplication is served by the blocked
// kernel in package matrix; every other capability fails fast with the
// capability name and the build tag that provides it. The heavy
// factorizations exist only in the accelerated build.

package backend

import "github.com/gfaster/Peroxide/matrix"

const backendName = "native"

// capabilities served by this build.
var capabilities = map[Capability]bool{
	CapMultiply: true,
}

// MatMul multiplies a×b with the blocked native kernel.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(r*n*c).
func MatMul(a, b *matrix.Dense) (*matrix.Dense, error) {
	return matrix.MulDense(a, b)
}

// QR is unavailable in the native build.
// Always returns ErrUnavailable naming CapQR.
func QR(a *matrix.Dense) (q, r *matrix.Dense, err error) {
	return nil, nil, unavailable(CapQR)
}

// SVD is unavailable in the native build.
// Always returns ErrUnavailable naming CapSVD.
func SVD(a *matrix.Dense) (u *matrix.Dense, s []float64, v *matrix.Dense, err error) {
	return nil, nil, nil, unavailable(CapSVD)
}

// Cholesky is unavailable in the native build.
// Always returns ErrUnavailable naming CapCholesky.
func Cholesky(a *matrix.Dense) (*matrix.Dense, error) {
	return nil, unavailable(CapCholesky)
}
