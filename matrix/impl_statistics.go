// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide common statistical transforms (centering, scatter, covariance, correlation)
//     as deterministic compositions over canonical kernels (SumAxis, SubVec, Scatter).
//   - Keep every transform pure: inputs are never mutated.
//
// Exposed API:
//   - CenterColumns(X) -> (Xc, means)         // subtract per-column mean
//   - CenterRows(X)    -> (Xc, means)         // subtract per-row mean
//   - Scatter(X)       -> S                   // Xᵗ·(I − J/n)·X
//   - Covariance(X)    -> (Cov, means)        // S/(r−1)
//   - Correlation(X)   -> (Corr, means, stds) // Pearson; zero-variance columns give zero rows/cols
//
// Determinism & Performance:
//   - Fixed i→j traversal in every kernel used here.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCenterColumns = "CenterColumns"
	opCenterRows    = "CenterRows"
	opScatter       = "Scatter"
	opCovariance    = "Covariance"
	opCorrelation   = "Correlation"
)

// CenterColumns returns a centered copy Xc = X − mean(X, by columns) and the column means.
//
// Implementation:
//   - Stage 1: owned copy of X (At fallback for foreign implementations).
//   - Stage 2: column sums via SumAxis(AxisRows), divided by r.
//   - Stage 3: SubVec(means, AxisRows) on the copy.
//
// Behavior highlights:
//   - r == 0: means are zeros and Xc is an empty copy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(c) means).
func CenterColumns(X Matrix) (*Dense, *Vector, error) {
	xc, err := ownedCopy(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	means, _ := xc.SumAxis(AxisRows)
	if xc.Rows() > 0 {
		means.DivScalar(float64(xc.Rows()))
	}
	if _, err = xc.SubVec(means, AxisRows); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return xc, means, nil
}

// CenterRows returns Xc[i,*] = X[i,*] − mean(X[i,*]) and the row means.
func CenterRows(X Matrix) (*Dense, *Vector, error) {
	xc, err := ownedCopy(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}
	means, _ := xc.SumAxis(AxisCols)
	if xc.Cols() > 0 {
		means.DivScalar(float64(xc.Cols()))
	}
	if _, err = xc.SubVec(means, AxisCols); err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}

	return xc, means, nil
}

// Scatter returns Xᵗ·(I − J/n)·X (c×c) for the n×c matrix X.
func Scatter(X Matrix) (*Dense, error) {
	xd, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opScatter, err)
	}

	return xd.Scatter(), nil
}

// Covariance computes the sample covariance of columns: Cov = Scatter(X)/(r−1).
// Returns Cov and column means.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when X has fewer than 2 rows.
func Covariance(X Matrix) (*Dense, *Vector, error) {
	xd, err := asDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r := xd.Rows()
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}
	means, _ := xd.SumAxis(AxisRows)
	means.DivScalar(float64(r))

	return xd.Scatter().DivScalar(float64(r - 1)), means, nil
}

// Correlation computes the Pearson correlation of columns:
// Corr[a,b] = Cov[a,b] / (std_a · std_b). A column with zero variance gets a
// zero row and column (including its diagonal entry).
// Returns Corr, column means and column sample standard deviations.
func Correlation(X Matrix) (*Dense, *Vector, *Vector, error) {
	cov, means, err := Covariance(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	c := cov.Cols()
	stds := cov.Diag().Copy()
	for j := 0; j < c; j++ {
		stds.data[j] = math.Sqrt(stds.data[j])
	}
	cov.ApplyIndexed(func(a, b int, v float64) float64 {
		den := stds.data[a] * stds.data[b]
		if den == 0 {
			return 0
		}
		return v / den
	})

	return cov, means, stds, nil
}
