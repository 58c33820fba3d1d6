// SPDX-License-Identifier: MIT

// Package dense: the public Matrix abstraction.
// Only the interface lives here; the concrete row-major implementation is in
// dense.go and the kernels operating on any implementation are in ops.go and
// submatrix.go.

package dense

// Matrix represents a two-dimensional mutable array of float64 values.
// Implementations must keep all methods O(1) except Clone, which is O(r*c).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix, independent of the original.
	Clone() Matrix
}
