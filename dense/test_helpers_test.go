// SPDX-License-Identifier: MIT
// Package dense_test: small deterministic fixtures and assertion helpers.
// All data stays finite so numeric policy never interferes with the
// structural assertions.

package dense_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/dense"
)

// hide wraps any Matrix to mask its concrete type from type assertions,
// forcing the code under test onto the generic At/Set fallback path.
// Wrap only the operand you want to de-opt; keep the other one *Dense to
// isolate path differences.
type hide struct{ dense.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *dense.Dense {
	t.Helper()
	m, err := dense.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense builds an r×c *Dense from a row-major flat slice.
// Prefer it for small exact-equality fixtures.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *dense.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// RandFilledDense returns an r×c Dense filled with deterministic U(-1,1)
// values for the given seed.
func RandFilledDense(t *testing.T, r, c int, seed int64) *dense.Dense {
	t.Helper()
	d := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, rng.Float64()*2-1)
		}
	}

	return d
}

// MustSet writes v to m[i,j] or fails the test.
func MustSet(t *testing.T, m dense.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m dense.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact asserts strict equality between a 2D literal and a matrix.
// Use only for integer-like or carefully crafted values.
func CompareExact(t *testing.T, want [][]float64, m dense.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose asserts AllClose(a, b) under (rtol, atol).
func CompareClose(t *testing.T, a, b dense.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := dense.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose err: %v", err)
	}
	if !ok {
		t.Fatalf("AllClose=false (rtol=%g, atol=%g)", rtol, atol)
	}
}

// AssertErrorIs wraps errors.Is with consistent failure text.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic asserts that fn panics with any value.
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}
