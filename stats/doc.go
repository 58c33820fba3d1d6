// SPDX-License-Identifier: MIT

// Package stats provides deterministic statistical transforms over dense
// matrices and probability vectors:
//
//   - CenterColumns — subtract the per-column mean from every element.
//   - Covariance    — sample covariance of columns: (Xcᵀ·Xc)/(r−1).
//   - Correlation   — Pearson correlation via z-scoring; a degenerate
//     column (std == 0) becomes an all-zero row/column.
//   - Entropy       — Shannon entropy of a probability distribution (bits).
//   - CrossEntropy  — cross entropy H(p, q) between two distributions.
//
// All matrix transforms return fresh copies and never mutate their input.
// Loop orders are fixed, so results are bit-for-bit reproducible.
package stats
