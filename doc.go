// Package linalg is a small, deterministic dense linear-algebra toolkit —
// direct matrix factorizations and the statistical routines built on them.
//
// 🚀 What is linalg?
//
//	A pure-Go library organized into focused sub-packages:
//		• dense/    — Matrix interface, row-major Dense storage, element-wise
//		  and structural kernels (Add, Mul, Transpose, Submatrix, Insert),
//		  validators and numeric predicates
//		• decomp/   — direct factorizations: QR via Householder reflections,
//		  Cholesky via the forward recurrence; immutable results with
//		  named-component access
//		• solve/    — consumers of the factorizations: least-squares via QR,
//		  SPD systems via Cholesky
//		• stats/    — column centering, covariance, correlation, entropy
//		• rootfind/ — scalar root finding (secant method)
//
// ✨ Design guarantees
//
//   - Deterministic – fixed loop orders; identical inputs always produce
//     identical outputs
//   - Value semantics – inputs are never mutated; results are freshly
//     allocated and independently owned
//   - Explicit errors – package-level sentinels matched via errors.Is;
//     no panics on user-triggered conditions
//   - Pure Go – no cgo, no hidden deps
//
//	go get github.com/katalvlaran/linalg
package linalg
