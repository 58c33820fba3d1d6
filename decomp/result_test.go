// SPDX-License-Identifier: MIT

package decomp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/decomp"
)

func TestQRDecomposition_Component(t *testing.T) {
	d, err := decomp.QR(qrFixture(t))
	require.NoError(t, err)

	q, err := d.Component(decomp.ComponentQ)
	require.NoError(t, err)
	assert.Equal(t, d.Q().Rows(), q.Rows())

	r, err := d.Component(decomp.ComponentR)
	require.NoError(t, err)
	assert.Equal(t, d.R().Cols(), r.Cols())
}

func TestQRDecomposition_UnknownComponent(t *testing.T) {
	d, err := decomp.QR(qrFixture(t))
	require.NoError(t, err)

	for _, name := range []string{"Z", "L", "q", ""} {
		_, err = d.Component(name)
		assert.ErrorIsf(t, err, decomp.ErrUnknownComponent, "Component(%q)", name)
	}
}

func TestCholeskyDecomposition_Component(t *testing.T) {
	d, err := decomp.Cholesky(spdFixture(t))
	require.NoError(t, err)

	l, err := d.Component(decomp.ComponentL)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, factorAt(t, l, 0, 0), numTol)

	// Lᵀ is reachable under both the canonical and the ASCII name.
	lt, err := d.Component(decomp.ComponentLT)
	require.NoError(t, err)
	ltAscii, err := d.Component(decomp.ComponentLTAscii)
	require.NoError(t, err)
	requireClose(t, lt.Clone(), ltAscii.Clone())

	_, err = d.Component("Q")
	assert.ErrorIs(t, err, decomp.ErrUnknownComponent)
}

func TestFactor_CloneIsIndependent(t *testing.T) {
	d, err := decomp.Cholesky(spdFixture(t))
	require.NoError(t, err)

	// Writing through a clone must not leak back into the decomposition.
	cp := d.L().Clone()
	require.NoError(t, cp.Set(0, 0, 1234))
	assert.InDelta(t, 2.0, factorAt(t, d.L(), 0, 0), numTol)

	// A second clone starts from the untouched factor.
	again := d.L().Clone()
	v, err := again.At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, numTol)
}

func TestFactor_OutOfRange(t *testing.T) {
	d, err := decomp.Cholesky(spdFixture(t))
	require.NoError(t, err)
	_, err = d.L().At(5, 0)
	assert.Error(t, err)
}
