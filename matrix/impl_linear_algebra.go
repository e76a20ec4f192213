// SPDX-License-Identifier: MIT
// Package matrix provides the product kernels of the dense engine: matrix
// product, matrix-vector product, right multiplication by an implicit
// diagonal, and the materialized transpose.
//
// Purpose:
//   - Define operation tags and the shared error wrapper for determinism and error reporting.
//   - Keep the products on *Dense; the Matrix-interface facades live in api.go.
//
// Notes:
//   - Products allocate a fresh owned result; MatMulDiag is the only in-place product.
//   - Kernels validate before touching memory and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opHadamard    = "Hadamard"
	opDiv         = "Div"
	opScale       = "Scale"
	opMatMul      = "MatMul"
	opMatVec      = "MatVec"
	opMatMulDiag  = "MatMulDiag"
	opTranspose   = "Transpose"
	opTrace       = "Trace"
	opSumAxis     = "SumAxis"
	opAMax        = "AMax"
	opAMin        = "AMin"
	opArgMax      = "ArgMax"
	opArgMin      = "ArgMin"
	opSolve       = "Solve"
	opLeastSq     = "LeastSquares"
	opInverse     = "Inverse"
	opDeterminant = "Det"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Behavior highlights:
//   - Preserves the underlying sentinel/type for errors.Is/errors.As.
//   - Keeps human-readable operation prefixes (e.g., "MatMul", "QR.Solve").
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatMul returns the matrix product m × b as a new owned matrix.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (m.Cols == b.Rows).
//   - Stage 2: materialize b when it is not a *Dense, then i→k→j accumulation:
//     row i of the result gathers m[i,k] * row k of b.
//   - Stage 3: when b is an owned row-major buffer, each row update is one
//     floats.AddScaled over contiguous memory.
//
// Behavior highlights:
//   - Zero entries of m are not skipped, so NaN/Inf in b propagate per IEEE-754.
//   - The result is row-major and inherits m's numeric and display options.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) for the result.
func (m *Dense) MatMul(b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}
	r, n, c := m.rows.n, m.cols.n, bd.cols.n

	o := m.st.opts
	o.order = RowMajor
	out := newDenseZeroOK(r, c, o)
	flatB := bd.packed() && bd.st.opts.order == RowMajor

	var i, k, j int
	var aik float64
	for i = 0; i < r; i++ {
		row := out.st.data[i*c : (i+1)*c]
		for k = 0; k < n; k++ {
			aik = m.get(i, k)
			if flatB {
				floats.AddScaled(row, aik, bd.st.data[k*c:(k+1)*c])
				continue
			}
			for j = 0; j < c; j++ {
				row[j] += aik * bd.get(k, j)
			}
		}
	}

	return out, nil
}

// MatVec returns y = m·v with len(y) == Rows().
// Errors: ErrNilMatrix, ErrDimensionMismatch when v.Len() != Cols().
func (m *Dense) MatVec(v *Vector) (*Vector, error) {
	if err := ValidateVecLen(v, m.cols.n); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := &Vector{data: make([]float64, m.rows.n), n: m.rows.n, stride: 1}
	for i := 0; i < m.rows.n; i++ {
		// Lengths already match; Dot cannot fail here.
		y.data[i], _ = m.lineView(m.rows.resolve(i), m.cols, false).Dot(v)
	}

	return y, nil
}

// MatMulDiag right-multiplies m in place by diag(v): column j is scaled by v[j].
// It equals MatMul(diag(v)) without materializing the diagonal matrix.
func (m *Dense) MatMulDiag(v *Vector) (*Dense, error) {
	if err := ValidateVecLen(v, m.cols.n); err != nil {
		return nil, matrixErrorf(opMatMulDiag, err)
	}

	return m.ewBroadcast(opMatMulDiag, v, AxisRows, ewMul)
}

// T returns the transpose as a new owned matrix.
// It never aliases m: writes to the result do not reach m and vice versa.
// Views of any depth transpose correctly since cells are read through the
// composed addressing.
func (m *Dense) T() *Dense {
	r, c := m.rows.n, m.cols.n
	out := newDenseZeroOK(c, r, m.st.opts)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.st.data[out.st.offset(j, i)] = m.get(i, j)
		}
	}

	return out
}

// asDense returns m itself when it is a *Dense, otherwise an owned copy read through At.
func asDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out := newDenseZeroOK(r, c, defaultOptions())
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.st.data[i*c+j] = v
		}
	}

	return out, nil
}

// ownedCopy returns an independent *Dense with the values of m.
func ownedCopy(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, err
	}
	if _, ok := m.(*Dense); ok {
		return d.Copy(), nil
	}

	return d, nil
}
