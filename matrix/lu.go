// SPDX-License-Identifier: MIT
// Package: matrix
//
// LU factorization with partial (row) pivoting: P·A = L·U.
//
// Purpose:
//   - Factor any m×n matrix once; solve square systems, compute the determinant.
//   - Detect near-singular pivots at factorization time and remember the verdict.
//
// Pivoting:
//   - At step k the row with the largest |A[i,k]| among rows k..m-1 becomes the
//     pivot; the first such row wins on ties.
//   - A pivot with |p| ≤ tol·max|A[i,j]| marks the factorization singular
//     (tol = DefaultSingularTol, see WithSingularTol). An exactly zero pivot
//     column needs no elimination and is skipped, so P·A = L·U still holds.
//
// Immutability:
//   - NewLU snapshots the source. Getters return fresh owned values.

package matrix

import (
	"fmt"
	"math"
)

const (
	opNewLU   = "NewLU"
	opLUSolve = "LU.Solve"
	opLUDet   = "LU.Det"
)

// LU holds a partial-pivot LU factorization.
type LU struct {
	lu       []float64 // row-major m×n: strict lower L (unit diagonal implied) + upper U
	piv      []int     // row i of P·A is row piv[i] of A
	pivSign  float64   // +1 / -1 parity of piv
	singular bool
	m, n     int
	opts     Options
}

// NewLU factors a (any m×n shape).
//
// Implementation:
//   - Stage 1: snapshot a row-major; scale = max|A[i,j]|.
//   - Stage 2: right-looking elimination: for k = 0..min(m,n)-1 select the
//     pivot, swap full rows, store multipliers in column k below the diagonal
//     and update the trailing block.
//
// Complexity:
//   - Time O(m*n*min(m,n)), Space O(m*n).
func NewLU(a Matrix, opts ...Option) (*LU, error) {
	src, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opNewLU, err)
	}
	m, n := src.Rows(), src.Cols()
	f := &LU{lu: src.RawRowMajor(), piv: make([]int, m), pivSign: 1, m: m, n: n, opts: gatherOptions(opts...)}
	for i := range f.piv {
		f.piv[i] = i
	}
	lu := f.lu

	scale := 0.0
	for _, v := range lu {
		scale = math.Max(scale, math.Abs(v))
	}
	limit := f.opts.singularTol * scale

	var (
		i, j, k, p int
		best, pv   float64
	)
	for k = 0; k < min(m, n); k++ {
		p, best = k, math.Abs(lu[k*n+k])
		for i = k + 1; i < m; i++ {
			if v := math.Abs(lu[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if p != k {
			rk, rp := lu[k*n:(k+1)*n], lu[p*n:(p+1)*n]
			for j = 0; j < n; j++ {
				rk[j], rp[j] = rp[j], rk[j]
			}
			f.piv[k], f.piv[p] = f.piv[p], f.piv[k]
			f.pivSign = -f.pivSign
		}

		pv = lu[k*n+k]
		if !(math.Abs(pv) > limit) {
			f.singular = true
		}
		if pv == 0 {
			continue
		}
		for i = k + 1; i < m; i++ {
			lu[i*n+k] /= pv
			lik := lu[i*n+k]
			for j = k + 1; j < n; j++ {
				lu[i*n+j] -= lik * lu[k*n+j]
			}
		}
	}

	return f, nil
}

// Dims returns the shape of the factored matrix.
func (f *LU) Dims() (rows, cols int) { return f.m, f.n }

// IsSingular reports whether a pivot at or below the threshold was met.
func (f *LU) IsSingular() bool { return f.singular }

// Pivot returns a copy of the row permutation: row i of P·A is row Pivot()[i] of A.
func (f *LU) Pivot() []int {
	out := make([]int, len(f.piv))
	copy(out, f.piv)

	return out
}

// P returns the m×m permutation matrix with P·A = L·U.
func (f *LU) P() *Dense {
	out := newDenseZeroOK(f.m, f.m, f.opts)
	for i, p := range f.piv {
		out.st.data[out.st.offset(i, p)] = 1
	}

	return out
}

// L returns the m×min(m,n) unit lower triangular factor.
func (f *LU) L() *Dense {
	k := min(f.m, f.n)
	out := newDenseZeroOK(f.m, k, f.opts)
	for i := 0; i < f.m; i++ {
		for j := 0; j < k; j++ {
			switch {
			case i > j:
				out.st.data[out.st.offset(i, j)] = f.lu[i*f.n+j]
			case i == j:
				out.st.data[out.st.offset(i, j)] = 1
			}
		}
	}

	return out
}

// U returns the min(m,n)×n upper triangular factor.
func (f *LU) U() *Dense {
	k := min(f.m, f.n)
	out := newDenseZeroOK(k, f.n, f.opts)
	for i := 0; i < k; i++ {
		for j := i; j < f.n; j++ {
			out.st.data[out.st.offset(i, j)] = f.lu[i*f.n+j]
		}
	}

	return out
}

// Det returns det(A) = pivSign · Π U[k,k].
// Errors: ErrNonSquare for a rectangular factorization.
func (f *LU) Det() (float64, error) {
	if f.m != f.n {
		return 0, fmt.Errorf("%s: %dx%d: %w", opLUDet, f.m, f.n, ErrNonSquare)
	}
	d := f.pivSign
	for k := 0; k < f.n; k++ {
		d *= f.lu[k*f.n+k]
	}

	return d, nil
}

// Solve returns X with A·X = B.
//
// Errors (checked in this order):
//   - ErrDimensionMismatch when B.Rows() != Rows(A).
//   - ErrNonSquare when A is rectangular.
//   - ErrSingular when the factorization met a near-zero pivot.
//
// Complexity:
//   - Time O(n²*p), Space O(n*p).
func (f *LU) Solve(b Matrix) (*Dense, error) {
	if err := ValidateRHS(b, f.m); err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	if f.m != f.n {
		return nil, fmt.Errorf("%s: %dx%d: %w", opLUSolve, f.m, f.n, ErrNonSquare)
	}
	if f.singular {
		return nil, matrixErrorf(opLUSolve, ErrSingular)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	n, p := f.n, bd.Cols()

	// X = P·B
	x := make([]float64, n*p)
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j < p; j++ {
			x[i*p+j] = bd.get(f.piv[i], j)
		}
	}
	// L·Y = P·B
	for k = 0; k < n; k++ {
		for i = k + 1; i < n; i++ {
			lik := f.lu[i*n+k]
			for j = 0; j < p; j++ {
				x[i*p+j] -= x[k*p+j] * lik
			}
		}
	}
	// U·X = Y
	for k = n - 1; k >= 0; k-- {
		ukk := f.lu[k*n+k]
		for j = 0; j < p; j++ {
			x[k*p+j] /= ukk
		}
		for i = 0; i < k; i++ {
			uik := f.lu[i*n+k]
			for j = 0; j < p; j++ {
				x[i*p+j] -= x[k*p+j] * uik
			}
		}
	}

	out := newDenseZeroOK(n, p, f.opts)
	for i = 0; i < n; i++ {
		for j = 0; j < p; j++ {
			out.st.data[out.st.offset(i, j)] = x[i*p+j]
		}
	}

	return out, nil
}
