// SPDX-License-Identifier: MIT
// Package decomp: sentinel error set. All operations return these sentinels
// (wrapped with an operation tag) and tests match them via errors.Is. No
// operation panics on user-triggered conditions; decomposition either fully
// succeeds or fails atomically with one of the errors below.

package decomp

import (
	"errors"
	"fmt"
)

// decompErrorf wraps err with an operation tag, preserving the underlying
// sentinel for errors.Is. Call only with err != nil.
func decompErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

var (
	// ErrNilMatrix indicates that a nil matrix was passed to a decomposer.
	ErrNilMatrix = errors.New("decomp: nil matrix")

	// ErrNonSquare signals that Cholesky received a rectangular matrix.
	ErrNonSquare = errors.New("decomp: matrix is not square")

	// ErrNotPositiveDefinite is the Cholesky precondition failure: the input
	// is not symmetric positive-definite. Fatal to the call, never retried.
	ErrNotPositiveDefinite = errors.New("decomp: matrix is not positive definite")

	// ErrEmptyVector indicates that a zero-length vector was passed to the
	// Householder reflector constructor.
	ErrEmptyVector = errors.New("decomp: empty vector")

	// ErrUnknownComponent is returned by Component for a name that is not a
	// component of the decomposition (the "no such property" contract).
	ErrUnknownComponent = errors.New("decomp: no such component")
)
