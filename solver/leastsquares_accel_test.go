// SPDX-License-Identifier: MIT

//go:build accel

package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfaster/Peroxide/matrix"
	"github.com/gfaster/Peroxide/solver"
)

func TestLeastSquares_ExactSystem(t *testing.T) {
	// Square non-singular input: least squares coincides with Solve.
	a := newDense(t, 2, 2, []float64{4, 3, 6, 3})
	b := []float64{1, 1}

	x, err := solver.LeastSquares(a, b)
	require.NoError(t, err)

	want, err := solver.Solve(a, b)
	require.NoError(t, err)
	for i := range want {
		assert.InDelta(t, want[i], x[i], 1e-9)
	}
}

func TestLeastSquares_LineFit(t *testing.T) {
	// Fit y = c0 + c1·t to points on the exact line y = 1 + 2t.
	ts := []float64{0, 1, 2, 3, 4}
	vals := make([]float64, 0, 2*len(ts))
	b := make([]float64, len(ts))
	for i, tv := range ts {
		vals = append(vals, 1, tv)
		b[i] = 1 + 2*tv
	}
	a := newDense(t, len(ts), 2, vals)

	x, err := solver.LeastSquares(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 1, x[0], 1e-9)
	assert.InDelta(t, 2, x[1], 1e-9)
}

func TestLeastSquares_OverdeterminedResidual(t *testing.T) {
	// Noisy points around y = 2t: the normal equations residual Aᵀ(Ax-b)
	// must vanish at the minimizer.
	a := newDense(t, 4, 2, []float64{1, 0, 1, 1, 1, 2, 1, 3})
	b := []float64{0.1, 1.9, 4.2, 5.8}

	x, err := solver.LeastSquares(a, b)
	require.NoError(t, err)

	ax, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	res := make([]float64, len(b))
	for i := range b {
		res[i] = ax[i] - b[i]
	}
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	grad, err := matrix.MatVec(at, res)
	require.NoError(t, err)
	for i := range grad {
		assert.InDelta(t, 0, grad[i], 1e-8)
	}
}

func TestLeastSquares_RankDeficient(t *testing.T) {
	// Duplicate columns make R's diagonal collapse.
	a := newDense(t, 3, 2, []float64{1, 1, 2, 2, 3, 3})

	_, err := solver.LeastSquares(a, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrSingular)
}
