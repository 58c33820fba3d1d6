// SPDX-License-Identifier: MIT

// Package stats: Shannon and cross entropy over probability vectors.

package stats

import "math"

const (
	opEntropy      = "Entropy"
	opCrossEntropy = "CrossEntropy"
)

// distributionTol bounds the allowed deviation of a probability mass from 1.
const distributionTol = 1e-9

// validateDistribution checks that p is a probability distribution: non-empty,
// no negative entries, and Σp within distributionTol of 1.
func validateDistribution(p []float64) error {
	if len(p) == 0 {
		return ErrEmptyVector
	}
	var sum float64
	for _, v := range p {
		if v < 0 || math.IsNaN(v) {
			return ErrNotDistribution
		}
		sum += v
	}
	if math.Abs(sum-1.0) > distributionTol {
		return ErrNotDistribution
	}

	return nil
}

// Entropy returns the Shannon entropy H(p) = −Σ p_i·log₂(p_i) in bits.
// Zero-probability entries contribute nothing (0·log 0 = 0 by convention).
//
// Errors: ErrEmptyVector, ErrNotDistribution.
// Complexity: Time O(n), Space O(1).
func Entropy(p []float64) (float64, error) {
	if err := validateDistribution(p); err != nil {
		return 0, statsErrorf(opEntropy, err)
	}

	var h float64
	for _, v := range p {
		if v > 0 {
			h -= v * math.Log2(v)
		}
	}

	return h, nil
}

// CrossEntropy returns H(p, q) = −Σ p_i·log₂(q_i) in bits: the expected
// code length when encoding p with a code optimal for q. H(p, q) ≥ H(p),
// with equality iff p == q.
//
// Errors: ErrEmptyVector, ErrNotDistribution (including mismatched vector
// lengths), ErrDomain when q has a zero entry carrying p-mass.
// Complexity: Time O(n), Space O(1).
func CrossEntropy(p, q []float64) (float64, error) {
	if err := validateDistribution(p); err != nil {
		return 0, statsErrorf(opCrossEntropy, err)
	}
	if err := validateDistribution(q); err != nil {
		return 0, statsErrorf(opCrossEntropy, err)
	}
	if len(p) != len(q) {
		return 0, statsErrorf(opCrossEntropy, ErrNotDistribution)
	}

	var h float64
	for i, pv := range p {
		if pv == 0 {
			continue
		}
		if q[i] == 0 {
			return 0, statsErrorf(opCrossEntropy, ErrDomain)
		}
		h -= pv * math.Log2(q[i])
	}

	return h, nil
}
