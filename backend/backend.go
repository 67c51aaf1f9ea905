// SPDX-License-Identifier: MIT
// Package backend: capability surface shared by both builds. The concrete
// MatMul/QR/SVD/Cholesky entry points live in backend_native.go and
// backend_accel.go, exactly one of which is compiled in.

package backend

import (
	"errors"
	"fmt"
)

// Capability names one operation the compute backend may provide.
// The string value is stable: it appears in ErrUnavailable messages and in
// user-facing diagnostics.
type Capability string

// The full capability set. Native builds serve only CapMultiply.
const (
	CapMultiply Capability = "multiply"
	CapQR       Capability = "qr"
	CapSVD      Capability = "svd"
	CapCholesky Capability = "cholesky"
)

// MulDelegateMin is the dimension threshold above which the accelerated
// build hands multiplication to the optimized BLAS kernel. Below it the
// blocked native kernel wins on call overhead.
const MulDelegateMin = 16

var (
	// ErrUnavailable is returned when a capability is requested from a build
	// that does not provide it. The wrapping error names the capability and
	// the build tag required to obtain it; match with errors.Is.
	ErrUnavailable = errors.New("backend: capability unavailable")

	// ErrNotPositiveDefinite is returned by Cholesky when the factorization
	// hits a non-positive pivot. The symmetry precondition is checked by the
	// caller (decomp); this sentinel covers the numeric verdict only.
	ErrNotPositiveDefinite = errors.New("backend: matrix is not positive definite")

	// ErrFactorizationFailed is returned when an accelerated factorization
	// does not converge (SVD iteration limit). Extremely rare for finite
	// float64 inputs.
	ErrFactorizationFailed = errors.New("backend: factorization failed to converge")
)

// Name reports which backend this binary was built with ("native" or "accel").
func Name() string { return backendName }

// Available reports whether the current build serves the given capability.
// O(1); purely build-time information, never content-dependent.
func Available(c Capability) bool { return capabilities[c] }

// unavailable builds the fail-fast error for a missing capability, naming
// both the capability and the remedy so callers can surface an actionable
// message.
func unavailable(c Capability) error {
	return fmt.Errorf("backend: capability %q requires the accelerated build (go build -tags accel): %w",
		string(c), ErrUnavailable)
}
