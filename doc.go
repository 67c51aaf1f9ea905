// Package peroxide provides dense-matrix linear algebra for numerical code:
// storage, elementwise and matrix algebra, numerically-stable factorizations
// (LU with partial pivoting, RREF, QR, SVD, Cholesky) and a linear solver
// built on top of them (solve, inverse, determinant, rank).
//
// The module is organized bottom-up:
//
//	matrix/  — row-major dense storage and elementary algebra
//	backend/ — build-time compute backend selection (native | accel)
//	decomp/  — factorizations returning immutable factor values
//	solver/  — solve / inverse / determinant / rank over decomp
//
// The default (native) build is dependency-free and covers LU, RREF and the
// solver; building with -tags accel delegates multiplication, QR, SVD and
// Cholesky to gonum. Both backends honor the same functional contracts;
// capabilities missing from the native build fail fast with
// backend.ErrUnavailable naming the capability and the build tag that
// provides it.
//
//	go get github.com/gfaster/Peroxide
package peroxide
