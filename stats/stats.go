// SPDX-License-Identifier: MIT

// Package stats: column centering, covariance, correlation.

package stats

import (
	"math"

	"github.com/katalvlaran/linalg/dense"
)

// Operation name constants for unified error wrapping.
const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opCorrelation   = "Correlation"
)

// CenterColumns subtracts the per-column mean from every element.
//
// Stage 1 (Validate): x non-nil.
// Stage 2 (Execute): accumulate column sums in a deterministic i→j pass,
// convert to means, then write the centered copy.
//
// Returns the centered r×c copy and the column means (len == c).
// Errors: ErrNilMatrix; wrapped At/Set errors from interface fallbacks.
// Complexity: Time O(r*c), Space O(r*c).
func CenterColumns(x dense.Matrix) (dense.Matrix, []float64, error) {
	if x == nil {
		return nil, nil, statsErrorf(opCenterColumns, ErrNilMatrix)
	}
	r, c := x.Rows(), x.Cols()

	means := make([]float64, c)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err = x.At(i, j)
			if err != nil {
				return nil, nil, statsErrorf(opCenterColumns, err)
			}
			means[j] += v
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	xc, err := dense.NewZeros(r, c)
	if err != nil {
		return nil, nil, statsErrorf(opCenterColumns, err)
	}
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err = x.At(i, j)
			if err != nil {
				return nil, nil, statsErrorf(opCenterColumns, err)
			}
			if err = xc.Set(i, j, v-means[j]); err != nil {
				return nil, nil, statsErrorf(opCenterColumns, err)
			}
		}
	}

	return xc, means, nil
}

// Covariance computes the sample covariance of columns:
// Cov = (Xcᵀ·Xc)/(r−1), where Xc is the column-centered copy of x.
//
// The result is symmetric c×c; its diagonal holds per-column sample
// variances. Requires at least two rows for the sample denominator.
//
// Returns the covariance matrix and the column means used for centering.
// Errors: ErrNilMatrix, ErrTooFewSamples; wrapped kernel errors.
// Complexity: Time O(r*c²), Space O(c²).
func Covariance(x dense.Matrix) (dense.Matrix, []float64, error) {
	if x == nil {
		return nil, nil, statsErrorf(opCovariance, ErrNilMatrix)
	}
	if x.Rows() < 2 {
		return nil, nil, statsErrorf(opCovariance, ErrTooFewSamples)
	}

	xc, means, err := CenterColumns(x)
	if err != nil {
		return nil, nil, statsErrorf(opCovariance, err)
	}

	// Cov = (Xcᵀ Xc)/(r−1) via the canonical kernels.
	xct, err := dense.Transpose(xc)
	if err != nil {
		return nil, nil, statsErrorf(opCovariance, err)
	}
	g, err := dense.Mul(xct, xc)
	if err != nil {
		return nil, nil, statsErrorf(opCovariance, err)
	}
	cov, err := dense.Scale(g, 1.0/float64(x.Rows()-1))
	if err != nil {
		return nil, nil, statsErrorf(opCovariance, err)
	}

	return cov, means, nil
}

// Correlation computes the Pearson correlation of columns via z-scoring:
// Corr = (Zᵀ·Z)/(r−1) with Z = Xc·diag(1/std). A degenerate column
// (std == 0) is zeroed rather than divided, so its row and column in the
// result are all zeros.
//
// Returns the c×c correlation matrix, the column means, and the sample
// standard deviations.
// Errors: ErrNilMatrix, ErrTooFewSamples; wrapped kernel errors.
// Complexity: Time O(r*c²), Space O(c²).
func Correlation(x dense.Matrix) (dense.Matrix, []float64, []float64, error) {
	if x == nil {
		return nil, nil, nil, statsErrorf(opCorrelation, ErrNilMatrix)
	}
	r := x.Rows()
	if r < 2 {
		return nil, nil, nil, statsErrorf(opCorrelation, ErrTooFewSamples)
	}

	xc, means, err := CenterColumns(x)
	if err != nil {
		return nil, nil, nil, statsErrorf(opCorrelation, err)
	}
	c := xc.Cols()

	// Sample std per column: sqrt(Σ_i Xc[i,j]² / (r−1)).
	var (
		i, j int
		v    float64
	)
	sumsq := make([]float64, c)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err = xc.At(i, j)
			if err != nil {
				return nil, nil, nil, statsErrorf(opCorrelation, err)
			}
			sumsq[j] += v * v
		}
	}
	inv := 1.0 / float64(r-1)
	stds := make([]float64, c)
	invStd := make([]float64, c)
	for j = 0; j < c; j++ {
		stds[j] = math.Sqrt(sumsq[j] * inv)
		if stds[j] > 0 {
			invStd[j] = 1.0 / stds[j]
		}
	}

	// Z = Xc · diag(invStd); degenerate columns collapse to zero.
	z, err := dense.NewZeros(r, c)
	if err != nil {
		return nil, nil, nil, statsErrorf(opCorrelation, err)
	}
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err = xc.At(i, j)
			if err != nil {
				return nil, nil, nil, statsErrorf(opCorrelation, err)
			}
			if err = z.Set(i, j, v*invStd[j]); err != nil {
				return nil, nil, nil, statsErrorf(opCorrelation, err)
			}
		}
	}

	zt, err := dense.Transpose(z)
	if err != nil {
		return nil, nil, nil, statsErrorf(opCorrelation, err)
	}
	g, err := dense.Mul(zt, z)
	if err != nil {
		return nil, nil, nil, statsErrorf(opCorrelation, err)
	}
	corr, err := dense.Scale(g, inv)
	if err != nil {
		return nil, nil, nil, statsErrorf(opCorrelation, err)
	}

	return corr, means, stds, nil
}
