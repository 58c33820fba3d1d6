// SPDX-License-Identifier: MIT

// Package rootfind provides scalar root-finding routines.
//
// Secant locates a root of a continuous f: ℝ → ℝ from two initial guesses
// without requiring a derivative, using the secant-line update
//
//	x₂ = x₁ − f(x₁)·(x₁ − x₀)/(f(x₁) − f(x₀))
//
// Iteration stops when |f(x)| drops under the configured tolerance
// (WithTolerance) or the iteration budget is exhausted (WithMaxIterations),
// in which case ErrNoConvergence reports the failure.
package rootfind
