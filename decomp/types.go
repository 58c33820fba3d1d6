// SPDX-License-Identifier: MIT

// Package decomp: result types and the read-only component view.
// The decomposition results are factory-only values: the sole way to obtain
// one is a successful QR or Cholesky call. Immutability is enforced by
// construction — unexported fields plus a component view that carries no
// mutating operations — rather than by intercepting writes at runtime.

package decomp

import (
	"fmt"

	"github.com/katalvlaran/linalg/dense"
)

// Component names accepted by the Component accessors. LT is additionally
// reachable under an ASCII alias for callers that avoid non-ASCII keys.
const (
	ComponentQ       = "Q"
	ComponentR       = "R"
	ComponentL       = "L"
	ComponentLT      = "Lᵀ"
	ComponentLTAscii = "Lt"
)

const opComponent = "Component"

// Factor is a read-only view of one named decomposition component. It
// intentionally has no Set: the underlying factor cannot be written through
// it. Clone returns an independent mutable copy for callers that need one.
type Factor interface {
	// Rows returns the number of rows of the component.
	Rows() int

	// Cols returns the number of columns of the component.
	Cols() int

	// At retrieves the element at (i, j); dense.ErrOutOfRange on bad indices.
	At(i, j int) (float64, error)

	// Clone returns a deep, independently owned copy of the component.
	// Mutating the copy never affects the decomposition.
	Clone() dense.Matrix
}

// factor adapts an internally owned matrix to the read-only Factor view.
type factor struct{ m dense.Matrix }

func (f factor) Rows() int                    { return f.m.Rows() }
func (f factor) Cols() int                    { return f.m.Cols() }
func (f factor) At(i, j int) (float64, error) { return f.m.At(i, j) }
func (f factor) Clone() dense.Matrix          { return f.m.Clone() }

// QRDecomposition holds the factors of A = Q·R: Q is m×min(m,n) with
// orthonormal columns and R is min(m,n)×n upper-triangular. Instances are
// produced only by QR and are immutable afterwards.
type QRDecomposition struct {
	q dense.Matrix
	r dense.Matrix
}

// Q returns the orthogonal factor as a read-only view.
func (d *QRDecomposition) Q() Factor { return factor{d.q} }

// R returns the upper-triangular factor as a read-only view.
func (d *QRDecomposition) R() Factor { return factor{d.r} }

// Component resolves a factor by name ("Q" or "R").
// Returns ErrUnknownComponent (wrapped with the offending name) otherwise.
func (d *QRDecomposition) Component(name string) (Factor, error) {
	switch name {
	case ComponentQ:
		return factor{d.q}, nil
	case ComponentR:
		return factor{d.r}, nil
	default:
		return nil, fmt.Errorf("%s(%q): %w", opComponent, name, ErrUnknownComponent)
	}
}

// CholeskyDecomposition holds the factors of A = L·Lᵀ: L is m×m
// lower-triangular with a strictly positive diagonal, and Lᵀ is its
// transpose, computed once at construction. Instances are produced only by
// Cholesky and are immutable afterwards.
type CholeskyDecomposition struct {
	l  dense.Matrix
	lt dense.Matrix
}

// L returns the lower-triangular factor as a read-only view.
func (d *CholeskyDecomposition) L() Factor { return factor{d.l} }

// LT returns the cached transpose Lᵀ as a read-only view.
func (d *CholeskyDecomposition) LT() Factor { return factor{d.lt} }

// Component resolves a factor by name ("L", "Lᵀ", or the ASCII alias "Lt").
// Returns ErrUnknownComponent (wrapped with the offending name) otherwise.
func (d *CholeskyDecomposition) Component(name string) (Factor, error) {
	switch name {
	case ComponentL:
		return factor{d.l}, nil
	case ComponentLT, ComponentLTAscii:
		return factor{d.lt}, nil
	default:
		return nil, fmt.Errorf("%s(%q): %w", opComponent, name, ErrUnknownComponent)
	}
}
