// SPDX-License-Identifier: MIT

// Package dense provides the dense-matrix foundation of the library.
//
// The package offers:
//
//   - The Matrix interface (Rows, Cols, At, Set, Clone) and its canonical
//     row-major implementation Dense, backed by a flat []float64.
//   - Constructors: NewDense, NewZeros, NewIdentity, FromRows.
//   - Element-wise and algebraic kernels: Add, Sub, Mul, Transpose, Scale,
//     MatVec — each with a *Dense fast-path over the flat buffer and a
//     generic At/Set fallback with full error propagation.
//   - Structural kernels used by the factorization packages: Submatrix
//     (contiguous block extraction) and Insert (non-mutating embed of a
//     smaller matrix at an offset).
//   - Validators (ValidateNotNil, ValidateSquare, ValidateSymmetric, ...)
//     returning plain sentinel errors, and the IsPositiveDefinite predicate.
//
// All kernels are deterministic (fixed loop orders), never mutate their
// operands, and return sentinel errors from errors.go — match them with
// errors.Is. Matrices are best for moderate-size dense data where O(r*c)
// memory is acceptable; sparse storage is out of scope.
package dense
