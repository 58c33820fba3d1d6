// SPDX-License-Identifier: MIT

// Package solve: triangular-substitution solvers layered on decomp.

package solve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/decomp"
	"github.com/katalvlaran/linalg/dense"
)

// Operation tags for error wrapping.
const (
	opLeastSquares = "LeastSquares"
	opSolveSPD     = "SolveSPD"
)

// solveErrorf wraps err with an operation tag, preserving the underlying
// sentinel for errors.Is. Call only with err != nil.
func solveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LeastSquares returns the x minimizing ‖A·x − b‖₂ for an m×n matrix A with
// m ≥ n and a right-hand side of length m.
//
// Stage 1 (Validate): A non-nil, b non-nil, len(b) == m, m ≥ n.
// Stage 2 (Execute): factor A = Q·R, form Qᵀ·b, then solve R·x = Qᵀ·b by
// back substitution over the n×n upper-triangular R.
//
// Errors: ErrNilInput, ErrDimensionMismatch, ErrUnderdetermined, ErrSingular
// on a zero pivot in R (rank-deficient A); factorization failures propagate
// wrapped so decomp sentinels stay matchable.
// Complexity: Time O(m²n), Space O(m²).
func LeastSquares(a dense.Matrix, b []float64, opts ...decomp.Option) ([]float64, error) {
	if a == nil || b == nil {
		return nil, solveErrorf(opLeastSquares, ErrNilInput)
	}
	m, n := a.Rows(), a.Cols()
	if len(b) != m {
		return nil, solveErrorf(opLeastSquares, ErrDimensionMismatch)
	}
	if m < n {
		return nil, solveErrorf(opLeastSquares, ErrUnderdetermined)
	}

	qr, err := decomp.QR(a, opts...)
	if err != nil {
		return nil, solveErrorf(opLeastSquares, err)
	}
	// With m ≥ n the factors are Q (m×n) and R (n×n).
	q, r := qr.Q(), qr.R()

	// Projected right-hand side: qtb[j] = Σ_i Q[i][j]·b[i].
	var (
		i, j   int
		qv, rv float64
	)
	qtb := make([]float64, n)
	for j = 0; j < n; j++ {
		for i = 0; i < m; i++ {
			qv, err = q.At(i, j)
			if err != nil {
				return nil, solveErrorf(opLeastSquares, err)
			}
			qtb[j] += qv * b[i]
		}
	}

	// Back substitution on R·x = qtb, bottom row first.
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		s := qtb[i]
		for j = i + 1; j < n; j++ {
			rv, err = r.At(i, j)
			if err != nil {
				return nil, solveErrorf(opLeastSquares, err)
			}
			s -= rv * x[j]
		}
		rv, err = r.At(i, i)
		if err != nil {
			return nil, solveErrorf(opLeastSquares, err)
		}
		if rv == 0 || math.IsNaN(rv) {
			return nil, solveErrorf(opLeastSquares, ErrSingular)
		}
		x[i] = s / rv
	}

	return x, nil
}

// SolveSPD solves A·x = b for a symmetric positive-definite n×n matrix A.
//
// Stage 1 (Validate): A non-nil, b non-nil, len(b) == n. Squareness and
// positive definiteness are verified by the Cholesky factorization itself.
// Stage 2 (Execute): factor A = L·Lᵀ, forward-substitute L·y = b, then
// back-substitute Lᵀ·x = y. The Cholesky diagonal is strictly positive, so
// no pivot check is needed here.
//
// Errors: ErrNilInput, ErrDimensionMismatch; decomp.ErrNonSquare and
// decomp.ErrNotPositiveDefinite propagate wrapped.
// Complexity: Time O(n³) dominated by the factorization, Space O(n²).
func SolveSPD(a dense.Matrix, b []float64, opts ...decomp.Option) ([]float64, error) {
	if a == nil || b == nil {
		return nil, solveErrorf(opSolveSPD, ErrNilInput)
	}
	n := a.Rows()
	if len(b) != n {
		return nil, solveErrorf(opSolveSPD, ErrDimensionMismatch)
	}

	ch, err := decomp.Cholesky(a, opts...)
	if err != nil {
		return nil, solveErrorf(opSolveSPD, err)
	}
	l, lt := ch.L(), ch.LT()

	var (
		i, j int
		lv   float64
	)

	// Forward substitution: L·y = b, top row first.
	y := make([]float64, n)
	for i = 0; i < n; i++ {
		s := b[i]
		for j = 0; j < i; j++ {
			lv, err = l.At(i, j)
			if err != nil {
				return nil, solveErrorf(opSolveSPD, err)
			}
			s -= lv * y[j]
		}
		lv, err = l.At(i, i)
		if err != nil {
			return nil, solveErrorf(opSolveSPD, err)
		}
		y[i] = s / lv
	}

	// Back substitution: Lᵀ·x = y, bottom row first.
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		s := y[i]
		for j = i + 1; j < n; j++ {
			lv, err = lt.At(i, j)
			if err != nil {
				return nil, solveErrorf(opSolveSPD, err)
			}
			s -= lv * x[j]
		}
		lv, err = lt.At(i, i)
		if err != nil {
			return nil, solveErrorf(opSolveSPD, err)
		}
		x[i] = s / lv
	}

	return x, nil
}
