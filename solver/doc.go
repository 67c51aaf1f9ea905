// SPDX-License-Identifier: MIT

// Package solver answers the questions people actually ask of a square
// system: Solve A·x = b, Inverse, Determinant and Rank, plus an
// accelerated-build LeastSquares for tall systems.
//
// Everything square rides on a single LU factorization from package decomp.
// Solve factors once and substitutes; SolveLU lets callers reuse one
// *decomp.LUFactors across many right-hand sides; Inverse runs n
// substitutions against the identity columns of one factorization;
// Determinant is Sign times the product of diag(U). Rank counts RREF pivot
// columns and therefore works on any shape and on singular input.
//
// Singularity policy: LU itself never fails on singular input, so the
// failure surfaces here. Solve, SolveLU and Inverse compare every diag(U)
// entry against the numeric policy (matrix.WithEpsilon, default
// matrix.DefaultEpsilon) and return matrix.ErrSingular before touching the
// right-hand side. Determinant skips the check and evaluates to ≈0 instead.
//
// LeastSquares needs QR and is therefore available only under the accel
// build tag; native builds get decomp.ErrUnavailable.
package solver
