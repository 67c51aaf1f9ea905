// Package backend selects the compute backend for the heavy linear-algebra
// kernels at build time.
//
// Two implementations exist behind one stable surface:
//
//   - native (default build): dependency-free. Only the multiply capability
//     is available, served by the blocked kernel in package matrix. QR, SVD
//     and Cholesky fail fast with ErrUnavailable naming the missing
//     capability and the build tag that provides it.
//   - accel (go build -tags accel): multiply delegates to gonum's BLAS
//     dgemm above a size threshold, and QR/SVD/Cholesky delegate to
//     gonum's LAPACK-backed factorizations.
//
// The dispatcher is a pure strategy selection: it holds no mutable state
// and never branches on matrix content, only on the build configuration.
// Selecting the accelerated backend without gonum present is a build-time
// failure, not a runtime one.
//
// Buffer translation between the engine's row-major Dense and gonum's
// row-major types is confined to copy-in/copy-out helpers in the accel
// build: LAPACK drivers overwrite their inputs, so the caller's matrix is
// snapshotted on the way in and fresh factors are materialized on the way
// out. If the two sides ever disagreed on layout, this boundary is the
// single place the conversion would live.
package backend
