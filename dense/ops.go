// SPDX-License-Identifier: MIT
// Package dense: algebraic kernels over any Matrix implementation —
// element-wise addition and subtraction, matrix multiplication, transpose,
// scalar scaling and matrix-vector products. All kernels perform strict
// fail-fast validation, never mutate their operands, and allocate exactly
// one fresh Dense for the result.
//
// Every kernel has two paths:
//   - fast-path: both operands are *Dense → single flat loops over the
//     row-major backing slices;
//   - fallback: generic At/Set traversal in fixed i→j(→k) order with full
//     error propagation.

package dense

import "fmt"

// Operation name constants for unified error wrapping (no magic strings).
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
)

// opErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is. Call only with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes element-wise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper shared by Add and Sub; callers enforce the sign.
func addSub(a, b Matrix, sign float64, tag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, opErrorf(tag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, opErrorf(tag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols
			for idx := 0; idx < n; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, opErrorf(tag, err)
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, opErrorf(tag, err)
			}
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, opErrorf(tag, err)
			}
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A − B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Stage 1 (Validate): non-nil operands, A.Cols == B.Rows.
// Stage 2 (Execute): fast path i→k→j with row-major strides and zero-skip
// on A[i,k]; fallback i→j→k via At/Set.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}

	var (
		i, j, k int
		av, bv  float64
		acc     float64
	)
	// Fast path for two Dense operands.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var baseA, baseB, baseR int
			for i = 0; i < aRows; i++ {
				baseA = i * aCols
				baseR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[baseA+k]
					if av == 0 {
						continue // skip zero multiplications
					}
					baseB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[baseR+j] += av * db.data[baseB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i→j→k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = 0
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, opErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, opErrorf(opMul, err)
				}
				acc += av * bv
			}
			if err = res.Set(i, j, acc); err != nil {
				return nil, opErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	var i, j int
	// Fast path: data[i*cols+j] → res.data[j*rows+i].
	if dm, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[base+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, opErrorf(opTranspose, err)
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, opErrorf(opTranspose, err)
			}
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, opErrorf(opScale, err)
	}

	// Fast path: flat multiply over the backing slice.
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
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
			v, err = m.At(i, j)
			if err != nil {
				return nil, opErrorf(opScale, err)
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, opErrorf(opScale, err)
			}
		}
	}

	return res, nil
}

// MatVec computes y = m · x for a column vector x with len(x) == m.Cols().
// Errors: ErrNilMatrix (nil m or nil x), ErrDimensionMismatch (bad length).
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opMatVec, err)
	}
	if x == nil {
		return nil, opErrorf(opMatVec, ErrNilMatrix)
	}
	rows, cols := m.Rows(), m.Cols()
	if len(x) != cols {
		return nil, opErrorf(opMatVec, ErrDimensionMismatch)
	}

	y := make([]float64, rows)

	// Fast path: one flat pass per row.
	if d, ok := m.(*Dense); ok {
		var (
			i, j, base int
			acc        float64
		)
		for i = 0; i < rows; i++ {
			acc = 0
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot products.
	var (
		i, j int
		mv   float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, opErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}
