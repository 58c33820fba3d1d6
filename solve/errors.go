// SPDX-License-Identifier: MIT
// Package solve: sentinel error set.

package solve

import "errors"

var (
	// ErrNilInput indicates that a nil matrix or nil right-hand side was
	// passed to a solver.
	ErrNilInput = errors.New("solve: nil input")

	// ErrDimensionMismatch indicates that the right-hand side length does
	// not match the coefficient matrix row count.
	ErrDimensionMismatch = errors.New("solve: dimension mismatch")

	// ErrUnderdetermined signals a least-squares call with fewer rows than
	// columns (m < n); the normal QR route requires m ≥ n.
	ErrUnderdetermined = errors.New("solve: system is underdetermined")

	// ErrSingular is returned when a zero pivot appears during triangular
	// substitution (rank-deficient coefficient matrix).
	ErrSingular = errors.New("solve: singular matrix")
)
