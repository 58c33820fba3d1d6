// SPDX-License-Identifier: MIT

// Package rootfind: functional configuration for the iterative solvers.

package rootfind

import "math"

// Defaults applied when no option overrides them.
const (
	// DefaultTolerance is the |f(x)| threshold treated as "root found".
	DefaultTolerance = 1e-12

	// DefaultMaxIterations bounds the iteration count; secant convergence is
	// superlinear, so well-posed problems finish far earlier.
	DefaultMaxIterations = 100
)

const (
	panicToleranceInvalid = "rootfind: WithTolerance: tol must be finite, positive"
	panicMaxIterInvalid   = "rootfind: WithMaxIterations: n must be positive"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol     float64 // > 0; DefaultTolerance
	maxIter int     // > 0; DefaultMaxIterations
}

// WithTolerance sets the |f(x)| convergence threshold. Panics with a stable
// message when tol is NaN, infinite, or non-positive.
// Complexity: O(1).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations sets the iteration budget. Panics with a stable message
// when n is non-positive.
// Complexity: O(1).
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// gatherOptions applies user setters on top of the documented defaults,
// last-writer-wins. Complexity: O(k) for k options.
func gatherOptions(user ...Option) Options {
	o := Options{tol: DefaultTolerance, maxIter: DefaultMaxIterations}
	for _, set := range user {
		set(&o)
	}

	return o
}
