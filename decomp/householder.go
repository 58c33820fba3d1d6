// SPDX-License-Identifier: MIT

// Package decomp: the Householder reflector primitive shared by QR.

package decomp

import (
	"math"

	"github.com/katalvlaran/linalg/dense"
)

const opHouseholder = "Householder"

// Householder builds the p×p orthogonal reflection H for a column vector v
// of length p, such that H·v has zeros in every position after the first.
// H is symmetric and orthogonal: Hᵀ = H = H⁻¹.
//
// Stage 1 (Validate): v must be non-empty.
// Stage 2 (Execute): α = -sign(v₀)·‖v‖ (sign(0) taken as +1 to avoid
// cancellation when forming v₀-α); u = v - α·e₁. A vanishing ‖u‖ means the
// column is already reduced and the reflector degenerates to the identity.
// Otherwise H = I - (2/‖u‖²)·u·uᵀ, written directly in a fixed i→j order.
//
// Edge case: for p = 1 with v₀ ≠ 0 the reflector reduces to [[-1]].
// Errors: ErrEmptyVector.
// Complexity: Time O(p²), Space O(p²).
func Householder(v []float64) (*dense.Dense, error) {
	p := len(v)
	if p == 0 {
		return nil, decompErrorf(opHouseholder, ErrEmptyVector)
	}

	// ‖v‖ via a plain sum of squares; inputs here are columns of working
	// matrices, already validated finite upstream.
	var norm float64
	var i, j int
	for i = 0; i < p; i++ {
		norm += v[i] * v[i]
	}
	norm = math.Sqrt(norm)

	// α keeps v₀-α additive: subtracting a value of the opposite sign.
	alpha := -norm
	if v[0] < 0 {
		alpha = norm
	}

	// u = v - α·e₁, with its squared norm accumulated in the same pass.
	u := make([]float64, p)
	copy(u, v)
	u[0] -= alpha
	var uNormSq float64
	for i = 0; i < p; i++ {
		uNormSq += u[i] * u[i]
	}

	// Degenerate reflector: ‖u‖ vanishes only for the all-zero column, where
	// reflection is a no-op.
	if uNormSq == 0 {
		return dense.NewIdentity(p)
	}

	// H = I - (2/‖u‖²)·u·uᵀ.
	h, err := dense.NewIdentity(p)
	if err != nil {
		return nil, decompErrorf(opHouseholder, err)
	}
	tau := 2.0 / uNormSq
	var hv, cur float64
	for i = 0; i < p; i++ {
		for j = 0; j < p; j++ {
			cur, _ = h.At(i, j) // bounds are correct by construction
			hv = cur - tau*u[i]*u[j]
			_ = h.Set(i, j, hv)
		}
	}

	return h, nil
}
