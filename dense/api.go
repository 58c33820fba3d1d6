// SPDX-License-Identifier: MIT
// Package dense — public constructors and comparison facade.
//
// Purpose:
//   - Provide intention-revealing entry points for building matrices with
//     explicit shape and neutral elements (zeros, identity).
//   - Offer ingestion from nested numeric data (FromRows) with strict shape
//     validation, and the AllClose tolerance comparison used by consumers
//     and tests.

package dense

import "math"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zeroing by the runtime.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	ident, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		ident.data[i*n+i] = 1.0
	}

	return ident, nil
}

// FromRows builds a *Dense from nested row-major data.
// Stage 1 (Validate): rows must be non-empty and rectangular.
// Stage 2 (Execute): copy values row by row into the flat buffer.
// Returns ErrBadShape on empty or ragged input.
// Complexity: O(r*c) time and memory.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ErrBadShape // ragged row
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(r*c).
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2).
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}

	return NewIdentity(m.Rows())
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true, nil) if all elements satisfy the relation; (false, nil)
// otherwise. Negative tolerances are normalized to their absolute values.
// NaN compares unequal to everything, so any NaN yields false.
// Complexity: Time O(r*c), Space O(1). Deterministic i→j scan.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, err
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	rows, cols := a.Rows(), a.Cols()
	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return false, err
			}
			bv, err = b.At(i, j)
			if err != nil {
				return false, err
			}
			if math.IsNaN(av) || math.IsNaN(bv) {
				return false, nil
			}
			if av == bv {
				continue // covers matching infinities as well
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
