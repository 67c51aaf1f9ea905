// SPDX-License-Identifier: MIT
// Package decomp: error wrapping helpers and re-exported sentinels.
// Shape/precondition sentinels come from package matrix; capability and
// positive-definiteness sentinels originate in package backend and are
// aliased here so callers can match them without importing backend.

package decomp

import (
	"fmt"

	"github.com/gfaster/Peroxide/backend"
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opLU       = "LU"
	opRREF     = "RREF"
	opQR       = "QR"
	opSVD      = "SVD"
	opCholesky = "Cholesky"
)

// ErrNotPositiveDefinite aliases backend.ErrNotPositiveDefinite: Cholesky
// hit a non-positive pivot. errors.Is matches either name.
var ErrNotPositiveDefinite = backend.ErrNotPositiveDefinite

// ErrUnavailable aliases backend.ErrUnavailable: the requested
// factorization needs the accelerated build. errors.Is matches either name.
var ErrUnavailable = backend.ErrUnavailable

// decompErrorf wraps err with an operation tag, preserving the original
// error via %w. Call only with err != nil.
func decompErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
