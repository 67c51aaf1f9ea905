// SPDX-License-Identifier: MIT

// Package matrix: numeric policy configuration. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - NewOptions resolver that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, every tolerance check in the
//     engine reads the same resolved epsilon.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs in decomp and
//     solver consume ...Option and resolve them via NewOptions.

package matrix

import "math"

// DefaultEpsilon defines the non-negative tolerance used for every
// singularity, symmetry and pivot-magnitude check across the engine.
// One constant, threaded explicitly, so decomp and solver agree on what
// "numerically zero" means.
const DefaultEpsilon = 1e-9

// panicEpsilonInvalid is the stable panic message for a nonsensical epsilon.
const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective numeric policy after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via NewOptions.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// Epsilon returns the resolved tolerance. Consumers (decomp, solver) read
// the policy through this accessor only.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the numeric tolerance eps used by singularity, symmetry
// and pivot checks.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0 (panic on violation).
//   - Stage 2: return a setter that writes eps into Options.
//
// Complexity: O(1).
//
// AI-Hints:
//   - Prefer small positive eps (1e-9..1e-12) for float64 data; widen only
//     for noisy inputs, and keep the same eps across LU/Solve/Rank so their
//     singularity verdicts agree.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// NewOptions resolves option setters against documented defaults.
// Implementation:
//   - Stage 1: start from the Default* constants (single source of truth).
//   - Stage 2: apply setters in order; last-writer-wins semantics.
//
// Determinism: stable for a given sequence of opts. Complexity: O(k).
func NewOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range opts {
		set(&o)
	}

	return o
}
