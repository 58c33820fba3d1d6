// SPDX-License-Identifier: MIT

// Package decomp: QR factorization via Householder reflections.

package decomp

import (
	"github.com/katalvlaran/linalg/dense"
)

const opQR = "QR"

// QR factors an m×n matrix A (m, n ≥ 1) into A = Q·R, where Q has
// orthonormal columns (m×min(m,n)) and R is upper-triangular
// (min(m,n)×n). Any valid matrix is decomposable; there is no
// shape precondition beyond non-nil.
//
// Stage 1 (Prepare): HA = copy of A, Q = I_m.
// Stage 2 (Execute): k = min(m-1, n) reflection steps. Step i extracts the
// trailing submatrix of HA at (i, i), builds the Householder reflector for
// its first column, embeds it into I_m at offset (i, i) to form H, and
// updates Q ← Q·H, HA ← H·HA. The step count deliberately stops at m-1:
// when m ≤ n+1 the would-be final reflection is a 1×1 sign flip that leaves
// Q·R valid, so it is skipped.
// Stage 3 (Finalize): R = top min(m,n) rows of HA; Q = first min(m,n)
// columns of the accumulator.
//
// Errors: ErrNilMatrix for a nil input. Dimension errors surfaced by the
// underlying submatrix/embed/multiply kernels indicate an internal invariant
// violation and are propagated wrapped, never swallowed.
// Complexity: Time O(m²n) per the accumulated multiplies, Space O(m²).
func QR(a dense.Matrix, opts ...Option) (*QRDecomposition, error) {
	if a == nil {
		return nil, decompErrorf(opQR, ErrNilMatrix)
	}
	_ = gatherOptions(opts...) // reserved: QR needs no numeric policy today

	m, n := a.Rows(), a.Cols()

	// Working copy and orthogonal accumulator.
	ha := a.Clone()
	q, err := dense.NewIdentity(m)
	if err != nil {
		return nil, decompErrorf(opQR, err)
	}
	var qAcc dense.Matrix = q

	steps := m - 1
	if n < steps {
		steps = n
	}

	var (
		i     int
		sub   dense.Matrix
		col   []float64
		hCore *dense.Dense
		ident *dense.Dense
		hFull dense.Matrix
	)
	for i = 0; i < steps; i++ {
		// Trailing submatrix: rows i..m-1, cols i..n-1 of the working copy.
		sub, err = dense.Submatrix(ha, i, i, m-i, n-i)
		if err != nil {
			return nil, decompErrorf(opQR, err)
		}
		// Reflector for the leading column of the submatrix.
		col, err = dense.Column(sub, 0)
		if err != nil {
			return nil, decompErrorf(opQR, err)
		}
		hCore, err = Householder(col)
		if err != nil {
			return nil, decompErrorf(opQR, err)
		}
		// Embed into a full-size identity so leading rows/cols pass through.
		ident, err = dense.NewIdentity(m)
		if err != nil {
			return nil, decompErrorf(opQR, err)
		}
		hFull, err = dense.Insert(ident, hCore, i, i)
		if err != nil {
			return nil, decompErrorf(opQR, err)
		}
		// Accumulate: Q ← Q·H, HA ← H·HA. H is symmetric orthogonal, so the
		// product of all H's applied on the left reduces HA to triangular
		// form while Q collects their inverses.
		qAcc, err = dense.Mul(qAcc, hFull)
		if err != nil {
			return nil, decompErrorf(opQR, err)
		}
		ha, err = dense.Mul(hFull, ha)
		if err != nil {
			return nil, decompErrorf(opQR, err)
		}
	}

	// Truncate: R keeps the top min(m,n) rows, Q the first min(m,n) columns.
	k := m
	if n < k {
		k = n
	}
	r, err := dense.Submatrix(ha, 0, 0, k, n)
	if err != nil {
		return nil, decompErrorf(opQR, err)
	}
	qTrunc, err := dense.Submatrix(qAcc, 0, 0, m, k)
	if err != nil {
		return nil, decompErrorf(opQR, err)
	}

	return &QRDecomposition{q: qTrunc, r: r}, nil
}
