// SPDX-License-Identifier: MIT

package solver_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfaster/Peroxide/decomp"
	"github.com/gfaster/Peroxide/matrix"
	"github.com/gfaster/Peroxide/solver"
)

const tol = 1e-9

func newDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseData(r, c, vals)
	require.NoError(t, err)

	return m
}

func randSquare(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	data := m.RawData()
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	// Diagonal dominance keeps the fixture comfortably non-singular.
	for i := 0; i < n; i++ {
		data[i*n+i] += float64(n)
	}

	return m
}

func TestSolve_KnownSystem(t *testing.T) {
	a := newDense(t, 2, 2, []float64{4, 3, 6, 3})

	x, err := solver.Solve(a, []float64{1, 1})
	require.NoError(t, err)
	require.Len(t, x, 2)
	assert.InDelta(t, 0, x[0], tol)
	assert.InDelta(t, 1.0/3.0, x[1], tol)
}

func TestSolve_ResidualIsZero(t *testing.T) {
	a := randSquare(t, 6, 42)
	b := []float64{1, -2, 3, -4, 5, -6}

	x, err := solver.Solve(a, b)
	require.NoError(t, err)

	ax, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	for i := range b {
		assert.InDelta(t, b[i], ax[i], 1e-8, "residual at %d", i)
	}
}

func TestSolve_Errors(t *testing.T) {
	square := newDense(t, 2, 2, []float64{4, 3, 6, 3})
	rect := newDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	singular := newDense(t, 2, 2, []float64{1, 2, 2, 4})

	_, err := solver.Solve(nil, []float64{1, 1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = solver.Solve(rect, []float64{1, 1})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = solver.Solve(square, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = solver.Solve(singular, []float64{1, 1})
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSolveLU_ReusesFactorization(t *testing.T) {
	a := newDense(t, 3, 3, []float64{2, 1, 1, 4, -6, 0, -2, 7, 2})

	f, err := decomp.LU(a)
	require.NoError(t, err)

	rhs := [][]float64{
		{5, -2, 9},
		{1, 0, 0},
		{0, 0, 1},
	}
	for _, b := range rhs {
		x, err := solver.SolveLU(f, b)
		require.NoError(t, err)

		ax, err := matrix.MatVec(a, x)
		require.NoError(t, err)
		for i := range b {
			assert.InDelta(t, b[i], ax[i], 1e-8)
		}
	}
}

func TestSolveLU_Errors(t *testing.T) {
	a := newDense(t, 2, 2, []float64{4, 3, 6, 3})
	f, err := decomp.LU(a)
	require.NoError(t, err)

	_, err = solver.SolveLU(nil, []float64{1, 1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = solver.SolveLU(f, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	sf, err := decomp.LU(newDense(t, 2, 2, []float64{1, 2, 2, 4}))
	require.NoError(t, err)
	_, err = solver.SolveLU(sf, []float64{1, 1})
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse_Diagonal(t *testing.T) {
	a := newDense(t, 2, 2, []float64{2, 0, 0, 2})

	inv, err := solver.Inverse(a)
	require.NoError(t, err)

	want := newDense(t, 2, 2, []float64{0.5, 0, 0, 0.5})
	ok, err := matrix.AllClose(inv, want, 0, tol)
	require.NoError(t, err)
	assert.True(t, ok, "inverse = %v", inv)

	det, err := solver.Determinant(a)
	require.NoError(t, err)
	assert.InDelta(t, 4, det, tol)
}

func TestInverse_ProductIsIdentity(t *testing.T) {
	a := randSquare(t, 5, 7)

	inv, err := solver.Inverse(a)
	require.NoError(t, err)

	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	eye, err := matrix.NewIdentity(5)
	require.NoError(t, err)

	ok, err := matrix.AllClose(prod, eye, 0, 1e-8)
	require.NoError(t, err)
	assert.True(t, ok, "A·A⁻¹ = %v", prod)
}

func TestInverse_Involution(t *testing.T) {
	a := randSquare(t, 4, 19)

	inv, err := solver.Inverse(a)
	require.NoError(t, err)
	back, err := solver.Inverse(inv)
	require.NoError(t, err)

	ok, err := matrix.AllClose(back, a, 1e-8, 1e-8)
	require.NoError(t, err)
	assert.True(t, ok, "inverse(inverse(A)) != A")
}

func TestInverse_Errors(t *testing.T) {
	_, err := solver.Inverse(newDense(t, 2, 2, []float64{1, 2, 2, 4}))
	assert.ErrorIs(t, err, matrix.ErrSingular)

	_, err = solver.Inverse(newDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestDeterminant(t *testing.T) {
	cases := []struct {
		name string
		m    *matrix.Dense
		want float64
	}{
		{"pivoted 2x2", newDense(t, 2, 2, []float64{4, 3, 6, 3}), -6},
		{"diagonal", newDense(t, 2, 2, []float64{2, 0, 0, 2}), 4},
		{"identity", newDense(t, 3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}), 1},
		{"singular", newDense(t, 2, 2, []float64{1, 2, 2, 4}), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			det, err := solver.Determinant(tc.m)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, det, tol)
		})
	}
}

func TestDeterminant_InverseReciprocal(t *testing.T) {
	a := randSquare(t, 4, 23)

	det, err := solver.Determinant(a)
	require.NoError(t, err)
	require.Greater(t, math.Abs(det), tol)

	inv, err := solver.Inverse(a)
	require.NoError(t, err)
	detInv, err := solver.Determinant(inv)
	require.NoError(t, err)

	assert.InDelta(t, 1, det*detInv, 1e-8)
}

func TestRank(t *testing.T) {
	cases := []struct {
		name string
		m    *matrix.Dense
		want int
	}{
		{"full rank", newDense(t, 2, 2, []float64{4, 3, 6, 3}), 2},
		{"rank one", newDense(t, 2, 2, []float64{1, 2, 2, 4}), 1},
		{"wide", newDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6}), 2},
		{"zero", newDense(t, 3, 3, make([]float64, 9)), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := solver.Rank(tc.m)
			require.NoError(t, err)
			assert.Equal(t, tc.want, r)
		})
	}
}

func TestRank_NilInput(t *testing.T) {
	_, err := solver.Rank(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestLeastSquares_UnderdeterminedRejected(t *testing.T) {
	// Fewer rows than unknowns: rejected on shape before any factorization,
	// so the verdict is the same under both backends.
	a := newDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	_, err := solver.LeastSquares(a, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
