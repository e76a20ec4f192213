// SPDX-License-Identifier: MIT
// Package: matrix
//
// QR factorization by Householder reflections for m×n matrices with m ≥ n.
//
// Purpose:
//   - Factor A = Q·R with Q (m×n) having orthonormal columns and R (n×n) upper triangular.
//   - Solve min‖A·X − B‖ in the least-squares sense for the full-rank case.
//
// Storage:
//   - One row-major m×n work buffer holds the Householder vectors in its lower
//     trapezoid (column k, rows k..m-1) and the strict upper part of R above the
//     diagonal; the diagonal of R lives in rdiag.
//
// Sign convention:
//   - Column k is scaled by ±1/‖x‖ with the sign of x[k], so the leading entry of
//     the Householder vector is 1 + |x[k]|/‖x‖ ≥ 1 and never cancels. R[k,k] is
//     then −sign(x[k])·‖x‖.
//
// Immutability:
//   - NewQR snapshots the source; later writes to it do not affect the factorization.
//   - Every getter returns a freshly allocated owned matrix; a *QR is safe for
//     concurrent readers.

package matrix

import (
	"fmt"
	"math"
)

const (
	opNewQR   = "NewQR"
	opQRSolve = "QR.Solve"
)

// QR holds a Householder QR factorization.
type QR struct {
	qr    []float64 // row-major m×n: Householder vectors + strict upper R
	rdiag []float64 // diagonal of R
	m, n  int
	opts  Options
}

// NewQR factors a (m×n, m ≥ n).
//
// Implementation:
//   - Stage 1: validate a non-nil and m ≥ n (ErrDimensionMismatch otherwise).
//   - Stage 2: snapshot a into the work buffer in row-major order.
//   - Stage 3: for k = 0..n-1 build the reflection zeroing column k below row k
//     and apply it to the trailing columns k+1..n-1.
//
// Options:
//   - WithSingularTol(tol) sets the near-zero threshold used by IsFullRank/Solve.
//
// Complexity:
//   - Time O(m*n²), Space O(m*n).
func NewQR(a Matrix, opts ...Option) (*QR, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opNewQR, err)
	}
	m, n := a.Rows(), a.Cols()
	if m < n {
		return nil, fmt.Errorf("%s: %dx%d has fewer rows than columns: %w", opNewQR, m, n, ErrDimensionMismatch)
	}
	src, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opNewQR, err)
	}
	f := &QR{qr: src.RawRowMajor(), rdiag: make([]float64, n), m: m, n: n, opts: gatherOptions(opts...)}

	qr := f.qr
	var (
		i, j, k int
		nrm, s  float64
	)
	for k = 0; k < n; k++ {
		// 2-norm of column k below the diagonal, without under/overflow.
		nrm = 0
		for i = k; i < m; i++ {
			nrm = math.Hypot(nrm, qr[i*n+k])
		}
		if nrm != 0 {
			if qr[k*n+k] < 0 {
				nrm = -nrm
			}
			for i = k; i < m; i++ {
				qr[i*n+k] /= nrm
			}
			qr[k*n+k]++

			for j = k + 1; j < n; j++ {
				s = 0
				for i = k; i < m; i++ {
					s += qr[i*n+k] * qr[i*n+j]
				}
				s = -s / qr[k*n+k]
				for i = k; i < m; i++ {
					qr[i*n+j] += s * qr[i*n+k]
				}
			}
		}
		f.rdiag[k] = -nrm
	}

	return f, nil
}

// Dims returns the shape of the factored matrix.
func (f *QR) Dims() (rows, cols int) { return f.m, f.n }

// IsFullRank reports whether every |R[k,k]| exceeds tol·max(1, max|R[i,i]|).
func (f *QR) IsFullRank() bool {
	scale := 1.0
	for _, d := range f.rdiag {
		scale = math.Max(scale, math.Abs(d))
	}
	limit := f.opts.singularTol * scale
	for _, d := range f.rdiag {
		if math.Abs(d) <= limit {
			return false
		}
	}

	return true
}

// H returns the m×n matrix of Householder vectors (lower trapezoidal).
func (f *QR) H() *Dense {
	out := newDenseZeroOK(f.m, f.n, f.opts)
	for i := 0; i < f.m; i++ {
		for j := 0; j <= i && j < f.n; j++ {
			out.st.data[out.st.offset(i, j)] = f.qr[i*f.n+j]
		}
	}

	return out
}

// R returns the n×n upper triangular factor. Entries below the diagonal are exactly 0.
func (f *QR) R() *Dense {
	out := newDenseZeroOK(f.n, f.n, f.opts)
	for i := 0; i < f.n; i++ {
		out.st.data[out.st.offset(i, i)] = f.rdiag[i]
		for j := i + 1; j < f.n; j++ {
			out.st.data[out.st.offset(i, j)] = f.qr[i*f.n+j]
		}
	}

	return out
}

// Q returns the thin m×n orthogonal factor, QᵗQ = I, built by backward
// accumulation of the reflections.
func (f *QR) Q() *Dense {
	m, n := f.m, f.n
	q := make([]float64, m*n) // row-major work buffer
	var (
		i, j, k int
		s       float64
	)
	for k = n - 1; k >= 0; k-- {
		q[k*n+k] = 1
		hkk := f.qr[k*n+k]
		if hkk == 0 {
			continue
		}
		for j = k; j < n; j++ {
			s = 0
			for i = k; i < m; i++ {
				s += f.qr[i*n+k] * q[i*n+j]
			}
			s = -s / hkk
			for i = k; i < m; i++ {
				q[i*n+j] += s * f.qr[i*n+k]
			}
		}
	}

	out := newDenseZeroOK(m, n, f.opts)
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			out.st.data[out.st.offset(i, j)] = q[i*n+j]
		}
	}

	return out
}

// Solve returns the n×p least-squares solution X of A·X ≈ B.
//
// Implementation:
//   - Stage 1: B must have m rows (ErrDimensionMismatch); A must be full rank (ErrSingular).
//   - Stage 2: Y = Qᵗ·B by applying the reflections to a copy of B.
//   - Stage 3: back substitution R·X = Y[0:n].
//
// Complexity:
//   - Time O(m*n*p), Space O(m*p).
func (f *QR) Solve(b Matrix) (*Dense, error) {
	if err := ValidateRHS(b, f.m); err != nil {
		return nil, matrixErrorf(opQRSolve, err)
	}
	if !f.IsFullRank() {
		return nil, matrixErrorf(opQRSolve, ErrSingular)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opQRSolve, err)
	}
	m, n, p := f.m, f.n, bd.Cols()
	x := bd.RawRowMajor() // m×p row-major

	var (
		i, j, k int
		s       float64
	)
	for k = 0; k < n; k++ {
		hkk := f.qr[k*n+k]
		for j = 0; j < p; j++ {
			s = 0
			for i = k; i < m; i++ {
				s += f.qr[i*n+k] * x[i*p+j]
			}
			s = -s / hkk
			for i = k; i < m; i++ {
				x[i*p+j] += s * f.qr[i*n+k]
			}
		}
	}
	for k = n - 1; k >= 0; k-- {
		for j = 0; j < p; j++ {
			x[k*p+j] /= f.rdiag[k]
		}
		for i = 0; i < k; i++ {
			for j = 0; j < p; j++ {
				x[i*p+j] -= x[k*p+j] * f.qr[i*n+k]
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
