// SPDX-License-Identifier: MIT
// Package decomp_test: shared fixtures and assertion helpers. All fixtures
// are small and exact so tolerance choices stay uncontroversial.

package decomp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/decomp"
	"github.com/katalvlaran/linalg/dense"
)

// numTol is the absolute tolerance for floating-point assertions on
// factor entries and reconstructions.
const numTol = 1e-10

// mustFromRows builds a *Dense fixture or fails the test.
func mustFromRows(t *testing.T, rows [][]float64) *dense.Dense {
	t.Helper()
	m, err := dense.FromRows(rows)
	require.NoError(t, err, "FromRows")

	return m
}

// factorAt reads one element of a read-only factor or fails the test.
func factorAt(t *testing.T, f decomp.Factor, i, j int) float64 {
	t.Helper()
	v, err := f.At(i, j)
	require.NoErrorf(t, err, "Factor.At(%d,%d)", i, j)

	return v
}

// requireClose asserts element-wise |a-b| ≤ numTol for two matrices.
func requireClose(t *testing.T, a, b dense.Matrix) {
	t.Helper()
	ok, err := dense.AllClose(a, b, 0, numTol)
	require.NoError(t, err, "AllClose")
	require.Truef(t, ok, "matrices differ beyond %g:\n%v\nvs\n%v", numTol, a, b)
}

// requireOrthonormalColumns asserts QᵀQ = I for the given factor.
func requireOrthonormalColumns(t *testing.T, q decomp.Factor) {
	t.Helper()
	qm := q.Clone()
	qt, err := dense.Transpose(qm)
	require.NoError(t, err, "Transpose")
	gram, err := dense.Mul(qt, qm)
	require.NoError(t, err, "Mul")
	id, err := dense.NewIdentity(q.Cols())
	require.NoError(t, err, "NewIdentity")
	requireClose(t, gram, id)
}

// requireUpperTriangular asserts every below-diagonal entry of r is ~0.
func requireUpperTriangular(t *testing.T, r decomp.Factor) {
	t.Helper()
	var i, j int
	for i = 1; i < r.Rows(); i++ {
		for j = 0; j < i && j < r.Cols(); j++ {
			require.InDeltaf(t, 0, factorAt(t, r, i, j), numTol, "R[%d,%d]", i, j)
		}
	}
}

// requireReconstructs asserts product(factors...) ≈ a.
func requireReconstructs(t *testing.T, a dense.Matrix, left, right decomp.Factor) {
	t.Helper()
	prod, err := dense.Mul(left.Clone(), right.Clone())
	require.NoError(t, err, "Mul")
	requireClose(t, prod, a)
}
