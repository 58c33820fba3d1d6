// SPDX-License-Identifier: MIT
// Package dense: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the dense
// package. All kernels return these sentinels (possibly wrapped with an
// operation tag via fmt.Errorf("...: %w", err)) and tests check them via
// errors.Is. No kernel panics on user-triggered error conditions.

package dense

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0, c<=0)
	// or when nested construction data is ragged or empty.
	ErrBadShape = errors.New("dense: invalid shape")

	// ErrOutOfRange indicates that a row or column index (or a submatrix
	// bound) lies outside the valid range. Public indexers return this
	// sentinel, they never panic.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add with different shapes or Mul with a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// was rectangular.
	ErrNonSquare = errors.New("dense: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry beyond the configured tolerance.
	ErrAsymmetry = errors.New("dense: matrix is not symmetric within tol")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was
	// passed where a value is required.
	ErrNilMatrix = errors.New("dense: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where a finite one is required
	// (e.g. a tolerance argument).
	ErrNaNInf = errors.New("dense: NaN or Inf encountered")
)
