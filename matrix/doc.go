// Package matrix offers dense row-major matrix storage and elementary
// linear algebra.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix backed by a single flat slice,
//     with bounds-checked At/Set and deep Clone (no shared mutable state).
//   - Shape-validated constructors (NewDense, NewDenseData, NewIdentity).
//   - Elementwise kernels (Add, Sub, Hadamard, Scale, DivScalar) and
//     matrix kernels (Mul, Transpose, MatVec) with a *Dense fast-path and
//     an interface fallback.
//   - A numeric policy (Options/WithEpsilon) threaded through the decomp
//     and solver packages so every tolerance check uses one constant.
//
// All operations validate their preconditions before touching data and
// return package sentinel errors matched with errors.Is; shapes are never
// silently coerced. Results are always freshly allocated: operands are
// immutable and the memory layout (row-major) never changes after
// construction, which is what the accelerated backend relies on.
package matrix
