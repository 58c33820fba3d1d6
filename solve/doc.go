// SPDX-License-Identifier: MIT

// Package solve provides linear-system solvers built on the decomp
// factorizations:
//
//   - LeastSquares — minimizes ‖A·x − b‖₂ for an overdetermined m×n system
//     (m ≥ n) via QR: x is recovered from R·x = Qᵀ·b by back substitution.
//   - SolveSPD — solves A·x = b for symmetric positive-definite A via
//     Cholesky: forward substitution on L·y = b, then back substitution on
//     Lᵀ·x = y.
//
// Solvers never mutate their inputs and return freshly allocated solution
// vectors. Precondition failures from the factorizations (e.g. a
// non-positive-definite A) propagate unchanged, so callers can match
// decomp sentinels through errors.Is.
package solve
