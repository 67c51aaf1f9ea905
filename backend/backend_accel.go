//go:build accel

// SPDX-License-Identifier: MIT
// Accelerated backend: delegates multiplication to gonum's BLAS dgemm and
// the heavy factorizations to gonum's LAPACK-backed drivers. All buffer
// translation between the engine's Dense and gonum's types happens in the
// helpers at the bottom of this file — the rest of the engine stays
// layout-agnostic.

package backend

import (
	"github.com/gfaster/Peroxide/matrix"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

const backendName = "accel"

// capabilities served by this build.
var capabilities = map[Capability]bool{
	CapMultiply: true,
	CapQR:       true,
	CapSVD:      true,
	CapCholesky: true,
}

// MatMul multiplies a×b. Shapes with min(m,k,n) ≥ MulDelegateMin go to
// blas64 dgemm; smaller products use the blocked native kernel, where the
// BLAS call overhead would dominate.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(r*n*c).
func MatMul(a, b *matrix.Dense) (*matrix.Dense, error) {
	if a == nil || b == nil {
		return nil, matrix.ErrNilMatrix
	}
	if a.Cols() != b.Rows() {
		return nil, matrix.ErrDimensionMismatch
	}

	m, k, n := a.Rows(), a.Cols(), b.Cols()
	if m < MulDelegateMin || k < MulDelegateMin || n < MulDelegateMin {
		return matrix.MulDense(a, b)
	}

	out, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, err
	}
	// Gemm reads a and b and writes only c, so read-only views are safe here.
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, asGeneral(a), asGeneral(b), 0, asGeneral(out))

	return out, nil
}

// QR factors a into Q with orthonormal columns (m×k, k = min(m,n)) and
// upper trapezoidal R (k×n) via the LAPACK Householder pair dgeqrf/dorgqr.
// Any shape is accepted; for m ≥ n this is the usual thin Q with square
// upper triangular R. The driver pair is called directly because the
// high-level mat.QR wrapper refuses wide input that dgeqrf itself serves.
//
// Errors: matrix.ErrNilMatrix.
func QR(a *matrix.Dense) (q, r *matrix.Dense, err error) {
	if a == nil {
		return nil, nil, matrix.ErrNilMatrix
	}
	m, n := a.Rows(), a.Cols()
	k := m
	if n < k {
		k = n
	}

	// Geqrf overwrites its argument with R on and above the diagonal and
	// the Householder reflectors below it, so it runs on a private copy.
	buf := make([]float64, m*n)
	copy(buf, a.RawData())
	ag := blas64.General{Rows: m, Cols: n, Stride: n, Data: buf}

	tau := make([]float64, k)
	var query [1]float64
	lapack64.Geqrf(ag, tau, query[:], -1)
	work := make([]float64, int(query[0]))
	lapack64.Geqrf(ag, tau, work, len(work))

	r, err = matrix.NewDense(k, n)
	if err != nil {
		return nil, nil, err
	}
	rd := r.RawData()
	var i int
	for i = 0; i < k; i++ {
		copy(rd[i*n+i:(i+1)*n], buf[i*n+i:(i+1)*n])
	}

	// Q: generate the first k columns of the reflector product in place,
	// starting from the reflectors stored in the leading k columns.
	q, err = matrix.NewDense(m, k)
	if err != nil {
		return nil, nil, err
	}
	qd := q.RawData()
	for i = 0; i < m; i++ {
		copy(qd[i*k:(i+1)*k], buf[i*n:i*n+k])
	}
	qg := blas64.General{Rows: m, Cols: k, Stride: k, Data: qd}
	lapack64.Orgqr(qg, tau, query[:], -1)
	work = make([]float64, int(query[0]))
	lapack64.Orgqr(qg, tau, work, len(work))

	return q, r, nil
}

// SVD computes the thin singular value decomposition A = U·diag(s)·Vᵀ.
// Singular values come back non-negative in descending order (LAPACK
// contract); U is m×min(m,n), V is n×min(m,n).
//
// Errors: matrix.ErrNilMatrix, ErrFactorizationFailed (no convergence).
func SVD(a *matrix.Dense) (u *matrix.Dense, s []float64, v *matrix.Dense, err error) {
	if a == nil {
		return nil, nil, nil, matrix.ErrNilMatrix
	}

	var svd mat.SVD
	if ok := svd.Factorize(snapshot(a), mat.SVDThin); !ok {
		return nil, nil, nil, ErrFactorizationFailed
	}

	var um, vm mat.Dense
	svd.UTo(&um)
	svd.VTo(&vm)

	return fromMat(&um), svd.Values(nil), fromMat(&vm), nil
}

// Cholesky factors a symmetric positive-definite a into L with L·Lᵀ = a.
// Symmetry is the caller's precondition (decomp validates it to tolerance);
// this routine symmetrizes residual asymmetry and reports the positive-
// definiteness verdict.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrNotPositiveDefinite.
func Cholesky(a *matrix.Dense) (*matrix.Dense, error) {
	if a == nil {
		return nil, matrix.ErrNilMatrix
	}
	n := a.Rows()
	if n != a.Cols() {
		return nil, matrix.ErrNonSquare
	}

	// Build the symmetric view from the averaged triangles so an input that
	// is symmetric only to tolerance still factors deterministically.
	src := a.RawData()
	sym := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sym[i*n+j] = (src[i*n+j] + src[j*n+i]) / 2
		}
	}

	var ch mat.Cholesky
	if ok := ch.Factorize(mat.NewSymDense(n, sym)); !ok {
		return nil, ErrNotPositiveDefinite
	}

	var tri mat.TriDense
	ch.LTo(&tri)

	l, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	dst := l.RawData()
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			dst[i*n+j] = tri.At(i, j)
		}
	}

	return l, nil
}

// ---------- translation boundary (the only layout-aware code) ----------

// asGeneral wraps a Dense buffer as a blas64.General without copying.
// Both sides are row-major, so this is a reinterpretation, not a
// conversion. Use only for routines that do not mutate the argument.
func asGeneral(d *matrix.Dense) blas64.General {
	return blas64.General{
		Rows:   d.Rows(),
		Cols:   d.Cols(),
		Stride: d.Cols(),
		Data:   d.RawData(),
	}
}

// snapshot copies a Dense into a fresh mat.Dense. LAPACK drivers overwrite
// their inputs, so factorizations always work on a private copy — the
// caller's matrix is never mutated.
func snapshot(d *matrix.Dense) *mat.Dense {
	r, c := d.Rows(), d.Cols()
	data := make([]float64, r*c)
	copy(data, d.RawData())

	return mat.NewDense(r, c, data)
}

// fromMat materializes a gonum result into a fresh Dense, honoring the
// source stride (gonum may hand back views with Stride > Cols).
func fromMat(m *mat.Dense) *matrix.Dense {
	raw := m.RawMatrix()
	out, _ := matrix.NewDense(raw.Rows, raw.Cols) // shapes come from a valid factorization
	dst := out.RawData()
	for i := 0; i < raw.Rows; i++ {
		copy(dst[i*raw.Cols:(i+1)*raw.Cols], raw.Data[i*raw.Stride:i*raw.Stride+raw.Cols])
	}

	return out
}
