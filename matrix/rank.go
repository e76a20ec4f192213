// SPDX-License-Identifier: MIT
// Package: matrix
//
// Numeric rank through Householder QR with column interchanges.
//
// At step k the remaining column with the greatest squared length over rows
// k..m-1 is swapped into position k before it is reflected, so |R[k,k]| is
// non-increasing and rank deficiency shows up as a tail of tiny diagonals.
// Trailing lengths are recomputed from scratch at every step, never downdated.
//
// Complexity: O(m*n*min(m,n)) time, O(m*n) space for the column-major workspace.

package matrix

import "math"

// rankEps is the unit roundoff of float64 used by the rank threshold.
const rankEps = 0x1p-52

// numericRank returns the number of |R[k,k]| above max(m,n)·rankEps·max|R[k,k]|.
func numericRank(m *Dense) int {
	rows, cols := m.rows.n, m.cols.n
	steps := min(rows, cols)
	if steps == 0 {
		return 0
	}

	// Column-major workspace: column j occupies a[j*rows : (j+1)*rows].
	a := make([]float64, rows*cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			a[j*rows+i] = m.get(i, j)
		}
	}

	diag := make([]float64, steps)
	for k := 0; k < steps; k++ {
		// Pick the longest remaining column; the first one wins on ties.
		best, bestLen := k, -1.0
		for j := k; j < cols; j++ {
			var s float64
			for _, t := range a[j*rows+k : (j+1)*rows] {
				s += t * t
			}
			if s > bestLen {
				best, bestLen = j, s
			}
		}
		if best != k {
			ck, cb := a[k*rows:(k+1)*rows], a[best*rows:(best+1)*rows]
			for i := range ck {
				ck[i], cb[i] = cb[i], ck[i]
			}
		}

		col := a[k*rows : (k+1)*rows]
		nrm := 0.0
		for i := k; i < rows; i++ {
			nrm = math.Hypot(nrm, col[i])
		}
		if nrm == 0 {
			// Every remaining column is zero.
			break
		}
		if col[k] < 0 {
			nrm = -nrm
		}
		for i := k; i < rows; i++ {
			col[i] /= nrm
		}
		col[k]++
		for j := k + 1; j < cols; j++ {
			cj := a[j*rows : (j+1)*rows]
			var s float64
			for i := k; i < rows; i++ {
				s += col[i] * cj[i]
			}
			s = -s / col[k]
			for i := k; i < rows; i++ {
				cj[i] += s * col[i]
			}
		}
		diag[k] = math.Abs(nrm)
	}

	maxDiag := 0.0
	for _, d := range diag {
		maxDiag = math.Max(maxDiag, d)
	}
	if maxDiag == 0 {
		return 0
	}
	tol := float64(max(rows, cols)) * rankEps * maxDiag
	rank := 0
	for _, d := range diag {
		if d > tol {
			rank++
		}
	}

	return rank
}
