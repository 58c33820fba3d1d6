// SPDX-License-Identifier: MIT

package decomp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/decomp"
	"github.com/katalvlaran/linalg/dense"
)

// spdFixture has the exact integer factor L = [[2,0,0],[6,1,0],[-8,5,3]].
func spdFixture(t *testing.T) *dense.Dense {
	t.Helper()

	return mustFromRows(t, [][]float64{
		{4, 12, -16},
		{12, 37, -43},
		{-16, -43, 98},
	})
}

func TestCholesky_ExactFixture(t *testing.T) {
	a := spdFixture(t)
	d, err := decomp.Cholesky(a)
	require.NoError(t, err)

	want := [][]float64{
		{2, 0, 0},
		{6, 1, 0},
		{-8, 5, 3},
	}
	l := d.L()
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			assert.InDeltaf(t, want[i][j], factorAt(t, l, i, j), numTol, "L[%d,%d]", i, j)
		}
	}
}

func TestCholesky_Reconstruction(t *testing.T) {
	a := spdFixture(t)
	d, err := decomp.Cholesky(a)
	require.NoError(t, err)

	// L·Lᵀ must restore A; LT is the cached transpose of L.
	requireReconstructs(t, a, d.L(), d.LT())

	lt, err := dense.Transpose(d.L().Clone())
	require.NoError(t, err)
	requireClose(t, d.LT().Clone(), lt)
}

func TestCholesky_StructuralShape(t *testing.T) {
	a := spdFixture(t)
	d, err := decomp.Cholesky(a)
	require.NoError(t, err)

	// Strictly upper entries of L are zero and the diagonal is positive.
	l := d.L()
	var i, j int
	for i = 0; i < l.Rows(); i++ {
		for j = i + 1; j < l.Cols(); j++ {
			assert.InDeltaf(t, 0, factorAt(t, l, i, j), numTol, "L[%d,%d]", i, j)
		}
		assert.Greaterf(t, factorAt(t, l, i, i), 0.0, "L[%d,%d]", i, i)
	}
}

func TestCholesky_Identity(t *testing.T) {
	id, err := dense.NewIdentity(4)
	require.NoError(t, err)
	d, err := decomp.Cholesky(id)
	require.NoError(t, err)
	requireClose(t, d.L().Clone(), id)
}

func TestCholesky_SingleElement(t *testing.T) {
	a := mustFromRows(t, [][]float64{{9}})
	d, err := decomp.Cholesky(a)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, factorAt(t, d.L(), 0, 0), numTol)
}

func TestCholesky_NotPositiveDefinite(t *testing.T) {
	// Symmetric but indefinite: eigenvalues 3 and -1.
	a := mustFromRows(t, [][]float64{
		{1, 2},
		{2, 1},
	})
	_, err := decomp.Cholesky(a)
	assert.ErrorIs(t, err, decomp.ErrNotPositiveDefinite)
}

func TestCholesky_Asymmetric(t *testing.T) {
	a := mustFromRows(t, [][]float64{
		{4, 1},
		{2, 5},
	})
	_, err := decomp.Cholesky(a)
	assert.ErrorIs(t, err, decomp.ErrNotPositiveDefinite)
}

func TestCholesky_NonSquare(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err := decomp.Cholesky(a)
	assert.ErrorIs(t, err, decomp.ErrNonSquare)
}

func TestCholesky_NilMatrix(t *testing.T) {
	_, err := decomp.Cholesky(nil)
	assert.ErrorIs(t, err, decomp.ErrNilMatrix)
}

func TestCholesky_InputNotMutated(t *testing.T) {
	a := spdFixture(t)
	orig := a.Clone()
	_, err := decomp.Cholesky(a)
	require.NoError(t, err)
	requireClose(t, a, orig)
}

func TestCholesky_WithEpsilon(t *testing.T) {
	// A slightly asymmetric matrix passes under a loose tolerance and is
	// rejected under a tight one.
	a := mustFromRows(t, [][]float64{
		{4, 1 + 1e-7},
		{1, 5},
	})
	_, err := decomp.Cholesky(a, decomp.WithEpsilon(1e-6))
	require.NoError(t, err)
	_, err = decomp.Cholesky(a, decomp.WithEpsilon(1e-9))
	assert.ErrorIs(t, err, decomp.ErrNotPositiveDefinite)
}

func TestWithEpsilon_PanicsOnBadValue(t *testing.T) {
	assert.Panics(t, func() { decomp.WithEpsilon(-1) })
	assert.Panics(t, func() { decomp.WithEpsilon(math.NaN()) })
	assert.Panics(t, func() { decomp.WithEpsilon(math.Inf(1)) })
}
