// SPDX-License-Identifier: MIT
// Package stats: sentinel error set.

package stats

import (
	"errors"
	"fmt"
)

// statsErrorf wraps err with an operation tag, preserving the underlying
// sentinel for errors.Is. Call only with err != nil.
func statsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

var (
	// ErrNilMatrix indicates that a nil matrix was passed to a transform.
	ErrNilMatrix = errors.New("stats: nil matrix")

	// ErrTooFewSamples signals a sample statistic over fewer than two rows;
	// the (r−1) denominator needs at least two observations.
	ErrTooFewSamples = errors.New("stats: need at least two samples")

	// ErrEmptyVector indicates a zero-length probability vector.
	ErrEmptyVector = errors.New("stats: empty vector")

	// ErrNotDistribution signals a probability vector with a negative entry
	// or a mass that does not sum to one within tolerance.
	ErrNotDistribution = errors.New("stats: not a probability distribution")

	// ErrDomain is returned by CrossEntropy when q has a zero where p has
	// mass, making the logarithm divergent.
	ErrDomain = errors.New("stats: cross entropy diverges (q is zero where p is not)")
)
