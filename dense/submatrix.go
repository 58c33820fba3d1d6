// SPDX-License-Identifier: MIT
// Package dense: structural kernels — contiguous block extraction and
// non-mutating embedding of a smaller matrix into a larger one. These are
// the primitives the factorization package leans on when it slices a
// trailing submatrix and embeds a reflector into a full-size identity.

package dense

const (
	opSubmatrix = "Submatrix"
	opInsert    = "Insert"
)

// Submatrix extracts the rows×cols block of m whose top-left corner is at
// (r0, c0), into a fresh Dense.
// Stage 1 (Validate): m non-nil; rows, cols ≥ 1; the block must lie fully
// inside m.
// Stage 2 (Execute): row-by-row copy in fixed order (flat copy on *Dense).
// Errors: ErrNilMatrix, ErrBadShape (non-positive block size),
// ErrOutOfRange (block exceeds the source bounds).
// Complexity: Time O(rows*cols), Space O(rows*cols).
func Submatrix(m Matrix, r0, c0, rows, cols int) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opSubmatrix, err)
	}
	if rows <= 0 || cols <= 0 {
		return nil, opErrorf(opSubmatrix, ErrBadShape)
	}
	if r0 < 0 || c0 < 0 || r0+rows > m.Rows() || c0+cols > m.Cols() {
		return nil, opErrorf(opSubmatrix, ErrOutOfRange)
	}

	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, opErrorf(opSubmatrix, err)
	}

	// Fast path: contiguous per-row copies on the flat buffers.
	if dm, ok := m.(*Dense); ok {
		var i, src int
		for i = 0; i < rows; i++ {
			src = (r0+i)*dm.c + c0
			copy(res.data[i*cols:(i+1)*cols], dm.data[src:src+cols])
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(r0+i, c0+j)
			if err != nil {
				return nil, opErrorf(opSubmatrix, err)
			}
			if err = res.Set(i, j, v); err != nil {
				return nil, opErrorf(opSubmatrix, err)
			}
		}
	}

	return res, nil
}

// Insert returns a copy of dst with src embedded at offset (r0, c0).
// Neither operand is mutated; the result is a fresh Dense with dst's shape.
// Stage 1 (Validate): both operands non-nil; src must fit inside dst at the
// given offset.
// Stage 2 (Execute): clone dst, then overwrite the target block row by row.
// Errors: ErrNilMatrix, ErrOutOfRange (src exceeds dst bounds at offset).
// Complexity: Time O(R*C) for the clone plus O(r*c) for the block,
// Space O(R*C).
func Insert(dst, src Matrix, r0, c0 int) (Matrix, error) {
	if err := ValidateNotNil(dst); err != nil {
		return nil, opErrorf(opInsert, err)
	}
	if err := ValidateNotNil(src); err != nil {
		return nil, opErrorf(opInsert, err)
	}
	rows, cols := src.Rows(), src.Cols()
	if r0 < 0 || c0 < 0 || r0+rows > dst.Rows() || c0+cols > dst.Cols() {
		return nil, opErrorf(opInsert, ErrOutOfRange)
	}

	// Materialize the result as a Dense copy of dst regardless of its
	// concrete type; the generic path below only needs Set on the copy.
	res, err := NewDense(dst.Rows(), dst.Cols())
	if err != nil {
		return nil, opErrorf(opInsert, err)
	}
	if dd, ok := dst.(*Dense); ok {
		copy(res.data, dd.data)
	} else {
		var i, j int
		var v float64
		for i = 0; i < dst.Rows(); i++ {
			for j = 0; j < dst.Cols(); j++ {
				v, err = dst.At(i, j)
				if err != nil {
					return nil, opErrorf(opInsert, err)
				}
				res.data[i*res.c+j] = v
			}
		}
	}

	// Overwrite the target block.
	if ds, ok := src.(*Dense); ok {
		var i, at int
		for i = 0; i < rows; i++ {
			at = (r0+i)*res.c + c0
			copy(res.data[at:at+cols], ds.data[i*cols:(i+1)*cols])
		}

		return res, nil
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = src.At(i, j)
			if err != nil {
				return nil, opErrorf(opInsert, err)
			}
			res.data[(r0+i)*res.c+c0+j] = v
		}
	}

	return res, nil
}

// Column extracts column j of m as a fresh slice of length m.Rows().
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: Time O(r), Space O(r).
func Column(m Matrix, j int) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf("Column", err)
	}
	if j < 0 || j >= m.Cols() {
		return nil, opErrorf("Column", ErrOutOfRange)
	}

	rows := m.Rows()
	out := make([]float64, rows)
	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			out[i] = dm.data[i*dm.c+j]
		}

		return out, nil
	}

	var (
		i   int
		v   float64
		err error
	)
	for i = 0; i < rows; i++ {
		v, err = m.At(i, j)
		if err != nil {
			return nil, opErrorf("Column", err)
		}
		out[i] = v
	}

	return out, nil
}
