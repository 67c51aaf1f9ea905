// SPDX-License-Identifier: MIT

//go:build !accel

package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gfaster/Peroxide/decomp"
	"github.com/gfaster/Peroxide/solver"
)

func TestLeastSquares_NativeUnavailable(t *testing.T) {
	a := newDense(t, 3, 2, []float64{1, 1, 1, 2, 1, 3})

	_, err := solver.LeastSquares(a, []float64{1, 2, 3})
	assert.ErrorIs(t, err, decomp.ErrUnavailable)
}
