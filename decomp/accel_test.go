// SPDX-License-Identifier: MIT

//go:build accel

package decomp_test

import (
	"errors"
	"math"
	"testing"

	"github.com/gfaster/Peroxide/decomp"
	"github.com/gfaster/Peroxide/matrix"
	"github.com/gfaster/Peroxide/solver"
)

func TestQR_Reconstruct(t *testing.T) {
	a := mustDense(t, 3, 2, []float64{1, 2, 3, 4, 5, 6})

	f, err := decomp.QR(a)
	if err != nil {
		t.Fatalf("QR: %v", err)
	}
	if f.Q.Rows() != 3 || f.Q.Cols() != 2 || f.R.Rows() != 2 || f.R.Cols() != 2 {
		t.Fatalf("thin shapes: Q %dx%d, R %dx%d", f.Q.Rows(), f.Q.Cols(), f.R.Rows(), f.R.Cols())
	}

	back, err := f.Reconstruct()
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	assertClose(t, back, a, 1e-9)
}

func TestQR_WideInput(t *testing.T) {
	// More columns than rows: Q collapses to square orthogonal and R stays
	// upper trapezoidal.
	a := mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	f, err := decomp.QR(a)
	if err != nil {
		t.Fatalf("QR(2x3): %v", err)
	}
	if f.Q.Rows() != 2 || f.Q.Cols() != 2 || f.R.Rows() != 2 || f.R.Cols() != 3 {
		t.Fatalf("wide shapes: Q %dx%d, R %dx%d; want Q 2x2, R 2x3",
			f.Q.Rows(), f.Q.Cols(), f.R.Rows(), f.R.Cols())
	}

	// R carries no fill below the diagonal.
	if got, _ := f.R.At(1, 0); got != 0 {
		t.Fatalf("R[1,0] = %v; want 0", got)
	}

	qt, err := matrix.Transpose(f.Q)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	gram, err := matrix.Mul(qt, f.Q)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	eye, err := matrix.NewIdentity(2)
	if err != nil {
		t.Fatalf("NewIdentity: %v", err)
	}
	assertClose(t, gram, eye, 1e-9)

	back, err := f.Reconstruct()
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	assertClose(t, back, a, 1e-9)
}

func TestQR_OrthonormalColumns(t *testing.T) {
	a := mustDense(t, 4, 3, []float64{
		2, -1, 0,
		-1, 2, -1,
		0, -1, 2,
		1, 1, 1,
	})

	f, err := decomp.QR(a)
	if err != nil {
		t.Fatalf("QR: %v", err)
	}

	qt, err := matrix.Transpose(f.Q)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	gram, err := matrix.Mul(qt, f.Q)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	eye, err := matrix.NewIdentity(3)
	if err != nil {
		t.Fatalf("NewIdentity: %v", err)
	}
	assertClose(t, gram, eye, 1e-9)
}

func TestSVD_ValuesDescendingAndReconstruct(t *testing.T) {
	a := mustDense(t, 3, 2, []float64{3, 0, 0, -2, 0, 0})

	f, err := decomp.SVD(a)
	if err != nil {
		t.Fatalf("SVD: %v", err)
	}
	if len(f.Values) != 2 {
		t.Fatalf("len(Values) = %d; want 2", len(f.Values))
	}
	for i := 0; i < len(f.Values)-1; i++ {
		if f.Values[i] < f.Values[i+1] {
			t.Fatalf("Values not descending: %v", f.Values)
		}
	}
	for i, s := range f.Values {
		if s < 0 {
			t.Fatalf("Values[%d] = %v; want non-negative", i, s)
		}
	}
	// Known spectrum for this fixture.
	if math.Abs(f.Values[0]-3) > 1e-9 || math.Abs(f.Values[1]-2) > 1e-9 {
		t.Fatalf("Values = %v; want [3 2]", f.Values)
	}

	back, err := f.Reconstruct()
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	assertClose(t, back, a, 1e-9)
}

func TestSVD_RankAgreesWithRREF(t *testing.T) {
	// Rank 2: third row is the sum of the first two.
	a := mustDense(t, 3, 3, []float64{1, 0, 1, 0, 1, 1, 1, 1, 2})

	rank, err := solver.Rank(a)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}

	f, err := decomp.SVD(a)
	if err != nil {
		t.Fatalf("SVD: %v", err)
	}
	svdRank := 0
	for _, s := range f.Values {
		if s > matrix.DefaultEpsilon {
			svdRank++
		}
	}
	if rank != svdRank {
		t.Fatalf("RREF rank %d != SVD rank %d (values %v)", rank, svdRank, f.Values)
	}
}

func TestCholesky_ReconstructSPD(t *testing.T) {
	a := mustDense(t, 3, 3, []float64{
		4, 12, -16,
		12, 37, -43,
		-16, -43, 98,
	})

	f, err := decomp.Cholesky(a)
	if err != nil {
		t.Fatalf("Cholesky: %v", err)
	}

	// L lower triangular with positive diagonal.
	n := a.Rows()
	ld := f.L.RawData()
	for i := 0; i < n; i++ {
		if ld[i*n+i] <= 0 {
			t.Fatalf("L[%d,%d] = %v; want > 0", i, i, ld[i*n+i])
		}
		for j := i + 1; j < n; j++ {
			if ld[i*n+j] != 0 {
				t.Fatalf("L[%d,%d] = %v; want 0", i, j, ld[i*n+j])
			}
		}
	}

	back, err := f.Reconstruct()
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	assertClose(t, back, a, 1e-6)
}

func TestCholesky_RejectsIndefinite(t *testing.T) {
	// Symmetric but indefinite (eigenvalues of opposite sign).
	a := mustDense(t, 2, 2, []float64{0, 1, 1, 0})

	_, err := decomp.Cholesky(a)
	if !errors.Is(err, decomp.ErrNotPositiveDefinite) {
		t.Fatalf("Cholesky(indefinite) = %v; want ErrNotPositiveDefinite", err)
	}
}
