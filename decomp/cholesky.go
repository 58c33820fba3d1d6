// SPDX-License-Identifier: MIT

// Package decomp: Cholesky factorization via the forward recurrence.

package decomp

import (
	"math"

	"github.com/katalvlaran/linalg/dense"
)

const opCholesky = "Cholesky"

// Cholesky factors a symmetric positive-definite m×m matrix A into
// A = L·Lᵀ with L lower-triangular and a strictly positive diagonal.
//
// Stage 1 (Validate): A non-nil, square, and positive-definite per
// dense.IsPositiveDefinite under the configured epsilon (WithEpsilon). A
// failed precondition is fatal to the call and is never retried.
// Stage 2 (Execute): fill an owned two-dimensional buffer in dependency
// order — row j uses only rows < j and columns ≤ j:
//
//	s       = Σ_{x<i} L[j][x]·L[i][x]
//	L[j][j] = √(A[j][j] − s)          (diagonal)
//	L[j][i] = (A[j][i] − s) / L[i][i] (below diagonal, i < j)
//
// Stage 3 (Finalize): wrap the buffer into an immutable result together
// with the transpose, computed once and cached.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotPositiveDefinite. A negative
// radicand on the diagonal would contradict the verified precondition and
// is reported as the same sentinel. Structural At failures propagate
// wrapped.
// Complexity: Time O(m³), Space O(m²).
func Cholesky(a dense.Matrix, opts ...Option) (*CholeskyDecomposition, error) {
	if a == nil {
		return nil, decompErrorf(opCholesky, ErrNilMatrix)
	}
	if a.Rows() != a.Cols() {
		return nil, decompErrorf(opCholesky, ErrNonSquare)
	}
	o := gatherOptions(opts...)

	pd, err := dense.IsPositiveDefinite(a, o.eps)
	if err != nil {
		return nil, decompErrorf(opCholesky, err)
	}
	if !pd {
		return nil, decompErrorf(opCholesky, ErrNotPositiveDefinite)
	}

	// Owned working buffer, sized once; never escapes this function.
	n := a.Rows()
	low := make([][]float64, n)
	for j := range low {
		low[j] = make([]float64, n)
	}

	var (
		i, j, x int
		s, av   float64
		rad     float64
	)
	for j = 0; j < n; j++ {
		for i = 0; i <= j; i++ {
			s = 0
			for x = 0; x < i; x++ {
				s += low[j][x] * low[i][x]
			}
			av, err = a.At(j, i)
			if err != nil {
				return nil, decompErrorf(opCholesky, err)
			}
			if i == j {
				rad = av - s
				if rad < 0 {
					// Unreachable for a verified PD input; kept as a hard
					// guard against numeric contradiction.
					return nil, decompErrorf(opCholesky, ErrNotPositiveDefinite)
				}
				low[j][j] = math.Sqrt(rad)
			} else {
				low[j][i] = (av - s) / low[i][i]
			}
		}
	}

	l, err := dense.FromRows(low)
	if err != nil {
		return nil, decompErrorf(opCholesky, err)
	}
	lt, err := dense.Transpose(l)
	if err != nil {
		return nil, decompErrorf(opCholesky, err)
	}

	return &CholeskyDecomposition{l: l, lt: lt}, nil
}
