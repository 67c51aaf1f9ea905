// Package decomp provides matrix factorizations over the dense Matrix type:
//
//   - LU with partial pivoting (native, always available) — returns unit
//     lower / upper factors, the row permutation and the determinant sign.
//     Singular input still yields factors (with a zero on diag(U)); only
//     solve-style consumers enforce the pivot tolerance.
//   - RREF (native, always available) — Gauss-Jordan with partial pivoting
//     to reduced row-echelon form, plus the pivot column list used for rank.
//   - QR, SVD, Cholesky — thin precondition-checked wrappers over the
//     backend package; available only in accelerated builds (-tags accel)
//     and failing fast with backend.ErrUnavailable otherwise.
//
// Every factorization works on a snapshot of its input: later mutation of
// the source matrix is never observed, and factor values are immutable once
// produced, so read-only concurrent use of a factorization is safe without
// synchronization.
//
// The numeric tolerance is threaded explicitly via matrix.WithEpsilon; the
// default is matrix.DefaultEpsilon everywhere.
package decomp
