// SPDX-License-Identifier: MIT

// Package decomp: functional configuration for the decomposers.
// Only the numeric tolerance is configurable; it governs the symmetry and
// positive-definiteness checks performed by Cholesky. Constructors panic
// only on nonsensical parameters (programmer error); everything else is an
// ordinary sentinel error at decomposition time.

package decomp

import "math"

// DefaultEpsilon is the non-negative tolerance used by structural checks
// (symmetry within eps) when no option overrides it.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "decomp: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	eps float64 // ≥ 0; DefaultEpsilon
}

// WithEpsilon sets the tolerance used by Cholesky's symmetry and
// positive-definiteness validation. Panics with a stable message when eps
// is NaN, infinite or negative.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies user setters on top of the documented defaults,
// last-writer-wins. Complexity: O(k) for k options.
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		set(&o)
	}

	return o
}
