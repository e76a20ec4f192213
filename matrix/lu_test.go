// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the partial-pivot LU factorization.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/padreati/rapaio-go/matrix"
)

// checkPLU asserts P·A == L·U within tol.
func checkPLU(t *testing.T, a *matrix.Dense, f *matrix.LU, tol float64) {
	t.Helper()
	pa, err := f.P().MatMul(a)
	require.NoError(t, err)
	lu, err := f.L().MatMul(f.U())
	require.NoError(t, err)
	require.True(t, pa.DeepEqualsTol(lu, tol), "P·A != L·U")
}

func TestLUReconstructs(t *testing.T) {
	for _, order := range bothOrders {
		for seed := uint64(0); seed < 20; seed++ {
			n := 1 + int(seed%7)
			a := MustRandom(t, n, n, seed, matrix.WithOrder(order))
			f, err := matrix.NewLU(a)
			require.NoError(t, err)
			require.False(t, f.IsSingular())
			checkPLU(t, a, f, 1e-12)

			got, err := f.Det()
			require.NoError(t, err)
			require.InDelta(t, mat.Det(mat.NewDense(n, n, a.RawRowMajor())), got, 1e-12)
		}
	}
}

func TestLURectangularShapes(t *testing.T) {
	for _, shape := range [][2]int{{5, 3}, {3, 5}, {1, 4}, {4, 1}} {
		m, n := shape[0], shape[1]
		a := MustRandom(t, m, n, uint64(m*10+n))
		f, err := matrix.NewLU(a)
		require.NoError(t, err)
		k := min(m, n)
		require.Equal(t, [2]int{m, k}, shapeOf(f.L()))
		require.Equal(t, [2]int{k, n}, shapeOf(f.U()))
		require.Equal(t, [2]int{m, m}, shapeOf(f.P()))
		checkPLU(t, a, f, 1e-12)

		_, err = f.Det()
		if m != n {
			require.ErrorIs(t, err, matrix.ErrNonSquare)
		}
	}
}

func TestLUPivotTiesFirstWins(t *testing.T) {
	f, err := matrix.NewLU(MustFromRows(t, [][]float64{{1, 2}, {-1, 3}}))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, f.Pivot())

	f, err = matrix.NewLU(MustFromRows(t, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, f.Pivot())
	det, err := f.Det()
	require.NoError(t, err)
	require.InDelta(t, -2.0, det, 1e-15)

	// Pivot returns a copy
	p := f.Pivot()
	p[0] = 7
	require.Equal(t, []int{1, 0}, f.Pivot())
}

func TestLUSolve(t *testing.T) {
	a := MustFromRows(t, [][]float64{{0, 2, 1}, {1, 1, 1}, {2, 1, 0}})
	want := MustFromRows(t, [][]float64{{1, -1}, {2, 0}, {3, 1}})
	b, err := a.MatMul(want)
	require.NoError(t, err)

	f, err := matrix.NewLU(a)
	require.NoError(t, err)
	x, err := f.Solve(hide{b})
	require.NoError(t, err)
	CompareClose(t, want, x, 1e-13)
}

func TestLUSingular(t *testing.T) {
	f, err := matrix.NewLU(MustFill(t, 10, 10, 2))
	require.NoError(t, err)
	require.True(t, f.IsSingular())
	checkPLU(t, MustFill(t, 10, 10, 2), f, 0)
	_, err = f.Solve(MustFill(t, 10, 1, 1))
	require.ErrorIs(t, err, matrix.ErrSingular)

	det, err := f.Det()
	require.NoError(t, err)
	require.Equal(t, 0.0, det)
}

// TestLUSolveErrorOrder checks dimensions before squareness before singularity.
func TestLUSolveErrorOrder(t *testing.T) {
	rect, err := matrix.NewLU(MustFill(t, 3, 2, 1))
	require.NoError(t, err)
	_, err = rect.Solve(MustDense(t, 2, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = rect.Solve(MustDense(t, 3, 1))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	sing, err := matrix.NewLU(MustFill(t, 3, 3, 1))
	require.NoError(t, err)
	_, err = sing.Solve(MustDense(t, 2, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = sing.Solve(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.NewLU(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestLUSingularTol(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 1}, {1, 1 + 1e-9}})
	f, err := matrix.NewLU(a)
	require.NoError(t, err)
	require.False(t, f.IsSingular())

	f, err = matrix.NewLU(a, matrix.WithSingularTol(1e-6))
	require.NoError(t, err)
	require.True(t, f.IsSingular())
}
