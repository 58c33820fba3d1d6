// SPDX-License-Identifier: MIT
// Package rootfind: sentinel error set.

package rootfind

import (
	"errors"
	"fmt"
)

// rootfindErrorf wraps err with an operation tag, preserving the underlying
// sentinel for errors.Is. Call only with err != nil.
func rootfindErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

var (
	// ErrNilFunction indicates that a nil objective was passed.
	ErrNilFunction = errors.New("rootfind: nil function")

	// ErrBadGuess signals unusable initial guesses: NaN/Inf values or two
	// identical points, which leave the secant line undefined.
	ErrBadGuess = errors.New("rootfind: bad initial guesses")

	// ErrNoConvergence is returned when the iteration budget runs out before
	// |f(x)| falls under the tolerance, or the secant denominator vanishes.
	ErrNoConvergence = errors.New("rootfind: no convergence")
)
