// SPDX-License-Identifier: MIT

// Package decomp implements direct dense-matrix factorizations:
//
//   - QR — reduction of an arbitrary m×n matrix to A = Q·R with Q orthogonal
//     and R upper-triangular, by iterated Householder reflections. The
//     reflector for each step is built for the trailing submatrix, embedded
//     into a full-size identity and accumulated into Q.
//   - Cholesky — factorization of a symmetric positive-definite matrix into
//     A = L·Lᵀ with L lower-triangular and a strictly positive diagonal,
//     via the forward square-root recurrence.
//   - Householder — the shared reflector primitive: for a column vector v,
//     the orthogonal H with H·v zero everywhere past the first entry.
//
// Results are immutable: QRDecomposition and CholeskyDecomposition can only
// be produced by a successful decomposition (their fields are unexported and
// no public constructor exists), and components are handed out as read-only
// Factor views with no mutating operations. Clone yields an independent
// mutable copy, so the stored factors can never be altered after
// construction. Components are also reachable by name through Component,
// which fails with ErrUnknownComponent for unrecognized keys.
//
// Both algorithms are synchronous, deterministic and run to completion in
// bounded time — O(m²n) for QR, O(m³) for Cholesky. Inputs are never
// mutated. Failures are sentinel errors from errors.go; no partial results
// are ever returned.
package decomp
