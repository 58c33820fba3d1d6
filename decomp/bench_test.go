// SPDX-License-Identifier: MIT

package decomp_test

import (
	"testing"

	"github.com/katalvlaran/linalg/decomp"
	"github.com/katalvlaran/linalg/dense"
)

// benchSPD builds an n×n strictly diagonally dominant SPD matrix.
func benchSPD(b *testing.B, n int) *dense.Dense {
	b.Helper()
	m, err := dense.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense: %v", err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v := 1.0 / float64(i+j+1) // Hilbert-like off-diagonal mass
			if i == j {
				v += float64(n)
			}
			if err = m.Set(i, j, v); err != nil {
				b.Fatalf("Set: %v", err)
			}
		}
	}

	return m
}

// benchGeneral builds an n×n matrix with a fixed non-symmetric pattern.
func benchGeneral(b *testing.B, n int) *dense.Dense {
	b.Helper()
	m, err := dense.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense: %v", err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err = m.Set(i, j, float64((i*7+j*3)%13)-6); err != nil {
				b.Fatalf("Set: %v", err)
			}
		}
	}

	return m
}

func BenchmarkQR_16(b *testing.B)  { benchmarkQR(b, 16) }
func BenchmarkQR_64(b *testing.B)  { benchmarkQR(b, 64) }
func BenchmarkQR_128(b *testing.B) { benchmarkQR(b, 128) }

func benchmarkQR(b *testing.B, n int) {
	a := benchGeneral(b, n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := decomp.QR(a); err != nil {
			b.Fatalf("QR: %v", err)
		}
	}
}

func BenchmarkCholesky_16(b *testing.B)  { benchmarkCholesky(b, 16) }
func BenchmarkCholesky_64(b *testing.B)  { benchmarkCholesky(b, 64) }
func BenchmarkCholesky_128(b *testing.B) { benchmarkCholesky(b, 128) }

func benchmarkCholesky(b *testing.B, n int) {
	a := benchSPD(b, n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := decomp.Cholesky(a); err != nil {
			b.Fatalf("Cholesky: %v", err)
		}
	}
}
