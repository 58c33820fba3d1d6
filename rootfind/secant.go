// SPDX-License-Identifier: MIT

// Package rootfind: the secant method.

package rootfind

import "math"

const opSecant = "Secant"

// Secant finds a root of f near the initial guesses x0, x1.
//
// Stage 1 (Validate): f non-nil; x0, x1 finite and distinct.
// Stage 2 (Execute): iterate the secant update until |f(x)| < tol or the
// budget runs out. A vanishing denominator f(x1) − f(x0) with |f(x1)| still
// above tolerance means the method stalled; reported as ErrNoConvergence.
//
// Errors: ErrNilFunction, ErrBadGuess, ErrNoConvergence.
// Complexity: Time O(maxIter) evaluations of f, Space O(1).
func Secant(f func(float64) float64, x0, x1 float64, opts ...Option) (float64, error) {
	if f == nil {
		return 0, rootfindErrorf(opSecant, ErrNilFunction)
	}
	if math.IsNaN(x0) || math.IsInf(x0, 0) || math.IsNaN(x1) || math.IsInf(x1, 0) || x0 == x1 {
		return 0, rootfindErrorf(opSecant, ErrBadGuess)
	}
	o := gatherOptions(opts...)

	f0, f1 := f(x0), f(x1)
	if math.Abs(f0) < o.tol {
		return x0, nil
	}

	var (
		iter int
		x2   float64
	)
	for iter = 0; iter < o.maxIter; iter++ {
		if math.Abs(f1) < o.tol {
			return x1, nil
		}
		den := f1 - f0
		if den == 0 || math.IsNaN(den) {
			return 0, rootfindErrorf(opSecant, ErrNoConvergence)
		}
		x2 = x1 - f1*(x1-x0)/den
		x0, f0 = x1, f1
		x1, f1 = x2, f(x2)
	}
	if math.Abs(f1) < o.tol {
		return x1, nil
	}

	return 0, rootfindErrorf(opSecant, ErrNoConvergence)
}
