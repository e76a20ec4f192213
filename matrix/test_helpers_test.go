// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels and factorizations.
//   - Keep all randomness seeded so every run sees the same matrices.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/padreati/rapaio-go/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Notes:
//   - Useful to assert fast-path == fallback (via DeepEquals).
type hide struct{ matrix.Matrix }

// newSource returns a deterministic PCG source for seed.
func newSource(seed uint64) rand.Source { return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15) }

// MustDense ALLOCATES an r×c zero *Dense or fails the test.
func MustDense(t testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	require.NoError(t, err)

	return m
}

// MustFromRows BUILDS a *Dense from literal rows or fails the test.
func MustFromRows(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// MustSequential BUILDS the r×c matrix holding 0..r*c-1 in reading order.
func MustSequential(t testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewSequential(r, c, opts...)
	require.NoError(t, err)

	return m
}

// MustIdentity BUILDS I_n.
func MustIdentity(t testing.TB, n int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n, opts...)
	require.NoError(t, err)

	return m
}

// MustFill BUILDS an r×c matrix with every cell equal to v.
func MustFill(t testing.TB, r, c int, v float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFill(r, c, v, opts...)
	require.NoError(t, err)

	return m
}

// MustRandom BUILDS an r×c Uniform[0,1) matrix from a seeded source.
func MustRandom(t testing.TB, r, c int, seed uint64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewRandom(r, c, newSource(seed), opts...)
	require.NoError(t, err)

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustSet WRITES m[i,j] = v or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v))
}

// MustVecAt READS v[i] or fails the test.
func MustVecAt(t testing.TB, v *matrix.Vector, i int) float64 {
	t.Helper()
	x, err := v.At(i)
	require.NoError(t, err)

	return x
}

// CompareExact ASSERTS m equals the literal rows cell by cell (exact).
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols of row %d", i)
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "cell (%d,%d)", i, j)
		}
	}
}

// CompareClose ASSERTS equal shapes and |a-b| ≤ tol per cell.
func CompareClose(t testing.TB, a, b matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows(), "rows")
	require.Equal(t, a.Cols(), b.Cols(), "cols")
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			require.InDelta(t, MustAt(t, a, i, j), MustAt(t, b, i, j), tol, "cell (%d,%d)", i, j)
		}
	}
}

// naiveMatMul is an independent O(n³) product through the Matrix interface.
func naiveMatMul(t testing.TB, a, b matrix.Matrix) *matrix.Dense {
	t.Helper()
	out := MustDense(t, a.Rows(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			var s float64
			for k := 0; k < a.Cols(); k++ {
				s += MustAt(t, a, i, k) * MustAt(t, b, k, j)
			}
			MustSet(t, out, i, j, s)
		}
	}

	return out
}

// bothOrders lists the storage orders every layout-sensitive test runs under.
var bothOrders = []matrix.Order{matrix.RowMajor, matrix.ColMajor}
