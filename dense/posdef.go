// SPDX-License-Identifier: MIT
// Package dense: positive-definiteness predicate.
//
// Sylvester's criterion: a symmetric matrix is positive-definite iff all of
// its leading principal minors are strictly positive. For a symmetric matrix
// those minors are the running products of the pivots produced by Gaussian
// elimination without pivoting, so a single O(n^3) elimination pass over an
// owned copy answers the question — the first non-positive pivot disproves
// definiteness and short-circuits the scan.

package dense

import "errors"

const opIsPositiveDefinite = "IsPositiveDefinite"

// isNumericPolicyErr distinguishes a bad tolerance argument from an
// asymmetry/shape verdict when unpacking ValidateSymmetric failures.
func isNumericPolicyErr(err error) bool {
	return errors.Is(err, ErrNaNInf)
}

// IsPositiveDefinite reports whether m is a symmetric positive-definite
// matrix, with symmetry judged within tol (|A[i,j]-A[j,i]| ≤ tol).
// Stage 1 (Validate): m non-nil and tol finite; a rectangular or asymmetric
// matrix is simply not positive-definite (false, nil), not an error.
// Stage 2 (Execute): eliminate on a flat copy in fixed k→i→j order and
// require every pivot > 0.
// Errors: ErrNilMatrix, ErrNaNInf (bad tol); structural At failures are
// propagated wrapped.
// Complexity: Time O(n^3), Space O(n^2) for the working copy.
func IsPositiveDefinite(m Matrix, tol float64) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, opErrorf(opIsPositiveDefinite, err)
	}
	if err := ValidateSymmetric(m, tol); err != nil {
		// Shape or symmetry violations mean "not PD", they are not failures
		// of the predicate itself. Bad tolerance is still surfaced.
		if isNumericPolicyErr(err) {
			return false, opErrorf(opIsPositiveDefinite, err)
		}

		return false, nil
	}

	// Copy m into an owned flat buffer for destructive elimination.
	n := m.Rows()
	work := make([]float64, n*n)
	var i, j, k int
	if dm, ok := m.(*Dense); ok {
		copy(work, dm.data)
	} else {
		var v float64
		var err error
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				v, err = m.At(i, j)
				if err != nil {
					return false, opErrorf(opIsPositiveDefinite, err)
				}
				work[i*n+j] = v
			}
		}
	}

	// Gaussian elimination without pivoting; each pivot is the ratio of two
	// consecutive leading principal minors, so all pivots > 0 ⇔ PD.
	var pivot, factor float64
	for k = 0; k < n; k++ {
		pivot = work[k*n+k]
		if pivot <= 0 {
			return false, nil
		}
		for i = k + 1; i < n; i++ {
			factor = work[i*n+k] / pivot
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				work[i*n+j] -= factor * work[k*n+j]
			}
		}
	}

	return true, nil
}
