// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Pure (non-mutating) counterparts of the in-place *Dense methods, composed as
//     "copy the left operand, then run the in-place method". No kernel is duplicated.
//   - Accept any Matrix implementation: a *Dense takes the fast path, anything else
//     is read once through At.
//   - One-call solvers over the factorizations: Solve, LeastSquares, Inverse, Det.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Operands are never mutated; results are always freshly owned.

package matrix

// ---------- pure arithmetic ----------

// Add returns a + b as a new matrix.
func Add(a, b Matrix) (*Dense, error) {
	out, err := ownedCopy(a)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return out.Add(b)
}

// Sub returns a − b as a new matrix.
func Sub(a, b Matrix) (*Dense, error) {
	out, err := ownedCopy(a)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return out.Sub(b)
}

// Hadamard returns the elementwise product a ⊙ b as a new matrix.
func Hadamard(a, b Matrix) (*Dense, error) {
	out, err := ownedCopy(a)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	return out.Hadamard(b)
}

// Div returns the elementwise quotient a ⊘ b as a new matrix.
func Div(a, b Matrix) (*Dense, error) {
	out, err := ownedCopy(a)
	if err != nil {
		return nil, matrixErrorf(opDiv, err)
	}

	return out.Div(b)
}

// Scale returns alpha·m as a new matrix.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	out, err := ownedCopy(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return out.Scale(alpha), nil
}

// MatMul returns the matrix product a × b.
func MatMul(a, b Matrix) (*Dense, error) {
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}

	return ad.MatMul(b)
}

// MatVec returns y = m·x.
func MatVec(m Matrix, x *Vector) (*Vector, error) {
	md, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	return md.MatVec(x)
}

// Transpose returns mᵀ as a new matrix.
func Transpose(m Matrix) (*Dense, error) {
	md, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return md.T(), nil
}

// ---------- solvers ----------

// Solve returns X with A·X = B: LU for square A, least squares through QR for
// tall A. A wide A is rejected with ErrDimensionMismatch.
func Solve(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if a.Rows() == a.Cols() {
		f, err := NewLU(a, opts...)
		if err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
		x, err := f.Solve(b)
		if err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
		return x, nil
	}
	x, err := LeastSquares(a, b, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// LeastSquares returns argmin ‖A·X − B‖ through Householder QR (A is m×n, m ≥ n).
func LeastSquares(a, b Matrix, opts ...Option) (*Dense, error) {
	f, err := NewQR(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opLeastSq, err)
	}
	x, err := f.Solve(b)
	if err != nil {
		return nil, matrixErrorf(opLeastSq, err)
	}

	return x, nil
}

// Inverse returns A⁻¹ by solving A·X = I with partial-pivot LU.
// Errors: ErrNonSquare, ErrSingular.
func Inverse(a Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	f, err := NewLU(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	id := newDenseZeroOK(a.Rows(), a.Rows(), defaultOptions())
	for i := 0; i < a.Rows(); i++ {
		id.st.data[i*a.Rows()+i] = 1
	}
	x, err := f.Solve(id)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return x, nil
}

// Det returns the determinant of a square matrix. A singular matrix yields 0
// (or a tiny value left by rounding) without error.
func Det(a Matrix) (float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	f, err := NewLU(a)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return f.Det()
}
