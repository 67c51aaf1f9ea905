// SPDX-License-Identifier: MIT
// Package decomp: factorization result types. Each factorization returns a
// dedicated factor struct tagged with its Kind; operations that work across
// kinds (the solver's substitution procedures, the Reconstruct consistency
// checks) branch explicitly over the tag instead of relying on dynamic
// dispatch.

package decomp

import (
	"fmt"

	"github.com/gfaster/Peroxide/matrix"
)

// Kind tags the factorization variant carried by a Decomposition value.
type Kind int

const (
	KindLU Kind = iota
	KindQR
	KindSVD
	KindCholesky
)

// String returns the canonical lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindLU:
		return "lu"
	case KindQR:
		return "qr"
	case KindSVD:
		return "svd"
	case KindCholesky:
		return "cholesky"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Decomposition is the common surface of all factor values: a tag and the
// ability to re-multiply the factors back into (an approximation of) the
// source matrix. Factor values are immutable once produced; sharing them
// across goroutines for read-only queries needs no synchronization.
type Decomposition interface {
	// Kind reports the factorization variant.
	Kind() Kind

	// Reconstruct multiplies the factors back together, undoing any row
	// permutation, and returns the result as a fresh Dense. Used by the
	// cross-backend consistency tests; O(n³).
	Reconstruct() (*matrix.Dense, error)
}

// LUFactors holds A = P⁻¹·L·U from Gaussian elimination with partial
// pivoting. L is unit lower triangular, U upper triangular. Perm maps
// permuted row index i to the source row Perm[i] (i.e. (P·A)[i] ==
// A[Perm[i]]), and Sign is (-1)^swaps — the permutation's contribution to
// the determinant.
//
// A singular source still factors: U then carries a (near-)zero diagonal
// entry, which solve-style consumers must reject against their tolerance.
type LUFactors struct {
	L    *matrix.Dense
	U    *matrix.Dense
	Perm []int
	Sign float64
}

// Kind reports KindLU.
func (f *LUFactors) Kind() Kind { return KindLU }

// Reconstruct returns A = P⁻¹·(L·U): the product rows are scattered back
// through the permutation so the result compares against the original
// source, not the pivoted one.
func (f *LUFactors) Reconstruct() (*matrix.Dense, error) {
	lu, err := matrix.MulDense(f.L, f.U)
	if err != nil {
		return nil, decompErrorf(opLU, err)
	}

	n := lu.Rows()
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, decompErrorf(opLU, err)
	}
	src, dst := lu.RawData(), out.RawData()
	for i := 0; i < n; i++ {
		copy(dst[f.Perm[i]*n:(f.Perm[i]+1)*n], src[i*n:(i+1)*n])
	}

	return out, nil
}

// QRFactors holds A ≈ Q·R with k = min(m,n): Q is m×k with orthonormal
// columns and R is k×n upper trapezoidal (square triangular when m ≥ n).
type QRFactors struct {
	Q *matrix.Dense
	R *matrix.Dense
}

// Kind reports KindQR.
func (f *QRFactors) Kind() Kind { return KindQR }

// Reconstruct returns Q·R.
func (f *QRFactors) Reconstruct() (*matrix.Dense, error) {
	out, err := matrix.MulDense(f.Q, f.R)
	if err != nil {
		return nil, decompErrorf(opQR, err)
	}

	return out, nil
}

// SVDFactors holds the thin A ≈ U·diag(Values)·Vᵀ. Values are non-negative
// and sorted descending; U has orthonormal columns, V likewise (note V, not
// Vᵀ, is stored).
type SVDFactors struct {
	U      *matrix.Dense
	Values []float64
	V      *matrix.Dense
}

// Kind reports KindSVD.
func (f *SVDFactors) Kind() Kind { return KindSVD }

// Reconstruct returns U·diag(Values)·Vᵀ.
func (f *SVDFactors) Reconstruct() (*matrix.Dense, error) {
	// Scale the columns of U by the singular values, then multiply by Vᵀ.
	us := f.U.Clone().(*matrix.Dense)
	rows, cols := us.Rows(), us.Cols()
	if cols != len(f.Values) {
		return nil, decompErrorf(opSVD, matrix.ErrDimensionMismatch)
	}
	data := us.RawData()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			data[i*cols+j] *= f.Values[j]
		}
	}

	vt, err := matrix.Transpose(f.V)
	if err != nil {
		return nil, decompErrorf(opSVD, err)
	}
	out, err := matrix.MulDense(us, vt.(*matrix.Dense))
	if err != nil {
		return nil, decompErrorf(opSVD, err)
	}

	return out, nil
}

// CholeskyFactors holds A ≈ L·Lᵀ for symmetric positive-definite A.
type CholeskyFactors struct {
	L *matrix.Dense
}

// Kind reports KindCholesky.
func (f *CholeskyFactors) Kind() Kind { return KindCholesky }

// Reconstruct returns L·Lᵀ.
func (f *CholeskyFactors) Reconstruct() (*matrix.Dense, error) {
	lt, err := matrix.Transpose(f.L)
	if err != nil {
		return nil, decompErrorf(opCholesky, err)
	}
	out, err := matrix.MulDense(f.L, lt.(*matrix.Dense))
	if err != nil {
		return nil, decompErrorf(opCholesky, err)
	}

	return out, nil
}

// denseCopy snapshots any Matrix into a fresh *Dense. Factorizations work
// on the snapshot, never on the caller's storage.
func denseCopy(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense), nil
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	data := out.RawData()
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			data[i*cols+j] = v
		}
	}

	return out, nil
}
