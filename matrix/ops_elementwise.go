// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - In-place elementwise arithmetic on *Dense: scalar, matrix-matrix and
//     vector broadcast flavors. Every method returns its receiver for chaining.
//   - One private kernel per flavor (ewScalar, ewMatrix, ewBroadcast) so the
//     loop orders and aliasing rules live in a single place.
//
// Design:
//   - Validation happens before the first write: a failing call leaves the
//     receiver untouched.
//   - A shape mismatch returns the bare ErrDimensionMismatch (fixed message).
//   - Operands sharing storage with the receiver are snapshotted first, so
//     m.Add(m.RangeRows(...)) reads the values as they were before the call.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - Owned operands of equal storage order run on the flat buffers through
//     gonum/floats.
//   - Arithmetic follows IEEE-754: 0/0 is NaN, x/0 is ±Inf.

package matrix

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// ewOp is the binary operator of an elementwise kernel.
type ewOp uint8

const (
	ewAdd ewOp = iota
	ewSub
	ewMul
	ewDiv
)

// apply returns a op b.
func (op ewOp) apply(a, b float64) float64 {
	switch op {
	case ewAdd:
		return a + b
	case ewSub:
		return a - b
	case ewMul:
		return a * b
	default:
		return a / b
	}
}

const (
	opAddVec      = "AddVec"
	opSubVec      = "SubVec"
	opHadamardVec = "HadamardVec"
	opDivVec      = "DivVec"
)

// ---------- scalar ----------

// ewScalar applies m[i,j] = m[i,j] op x over every cell.
func (m *Dense) ewScalar(x float64, op ewOp) *Dense {
	if m.packed() {
		switch op {
		case ewAdd:
			floats.AddConst(x, m.st.data)
		case ewSub:
			floats.AddConst(-x, m.st.data)
		case ewMul:
			floats.Scale(x, m.st.data)
		default:
			for k := range m.st.data {
				m.st.data[k] /= x
			}
		}
		return m
	}
	var i, j, k int
	for i = 0; i < m.rows.n; i++ {
		for j = 0; j < m.cols.n; j++ {
			k = m.off(i, j)
			m.st.data[k] = op.apply(m.st.data[k], x)
		}
	}

	return m
}

// AddScalar adds x to every cell and returns m.
func (m *Dense) AddScalar(x float64) *Dense { return m.ewScalar(x, ewAdd) }

// SubScalar subtracts x from every cell and returns m.
func (m *Dense) SubScalar(x float64) *Dense { return m.ewScalar(x, ewSub) }

// Scale multiplies every cell by x and returns m.
func (m *Dense) Scale(x float64) *Dense { return m.ewScalar(x, ewMul) }

// DivScalar divides every cell by x and returns m.
func (m *Dense) DivScalar(x float64) *Dense { return m.ewScalar(x, ewDiv) }

// ---------- matrix-matrix ----------

// ewMatrix applies m[i,j] = m[i,j] op b[i,j].
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape; ErrNilMatrix stays wrapped, a shape
//     mismatch is reported as the bare ErrDimensionMismatch.
//   - Stage 2: *Dense operand: snapshot when it shares storage with m (and is
//     not m itself), then a flat floats kernel when both buffers line up.
//   - Stage 3: generic fallback reads b through At into a buffer first; a
//     failing At aborts before m is written.
//
// Complexity:
//   - Time O(r*c); Space O(1), or O(r*c) for the snapshot paths.
func (m *Dense) ewMatrix(b Matrix, op ewOp) (*Dense, error) {
	if err := ValidateBinarySameShape(m, b); err != nil {
		if errors.Is(err, ErrDimensionMismatch) {
			return nil, ErrDimensionMismatch
		}
		return nil, err
	}
	r, c := m.rows.n, m.cols.n

	bd, fast := b.(*Dense)
	if !fast {
		vals := make([]float64, r*c)
		var err error
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if vals[i*c+j], err = b.At(i, j); err != nil {
					return nil, err
				}
			}
		}
		bd = &Dense{
			st:   &storage{data: vals, rows: r, cols: c, opts: defaultOptions()},
			rows: identityAxis(r),
			cols: identityAxis(c),
		}
	} else if bd != m && bd.st == m.st {
		bd = bd.Copy()
	}

	if m.packed() && bd.packed() && m.st.opts.order == bd.st.opts.order {
		dst, src := m.st.data, bd.st.data
		switch op {
		case ewAdd:
			floats.Add(dst, src)
		case ewSub:
			floats.Sub(dst, src)
		case ewMul:
			floats.Mul(dst, src)
		default:
			floats.Div(dst, src)
		}
		return m, nil
	}

	var i, j, k int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			k = m.off(i, j)
			m.st.data[k] = op.apply(m.st.data[k], bd.get(i, j))
		}
	}

	return m, nil
}

// Add performs m += b elementwise and returns m.
func (m *Dense) Add(b Matrix) (*Dense, error) { return m.ewMatrix(b, ewAdd) }

// Sub performs m -= b elementwise and returns m.
func (m *Dense) Sub(b Matrix) (*Dense, error) { return m.ewMatrix(b, ewSub) }

// Hadamard performs m *= b elementwise and returns m.
func (m *Dense) Hadamard(b Matrix) (*Dense, error) { return m.ewMatrix(b, ewMul) }

// Div performs m /= b elementwise and returns m.
func (m *Dense) Div(b Matrix) (*Dense, error) { return m.ewMatrix(b, ewDiv) }

// ---------- broadcast ----------

// ewBroadcast applies v across m along axis:
//   - AxisRows: v has Cols() elements, m[i,j] = m[i,j] op v[j] for every row i,
//   - AxisCols: v has Rows() elements, m[i,j] = m[i,j] op v[i] for every column j.
func (m *Dense) ewBroadcast(tag string, v *Vector, axis int, op ewOp) (*Dense, error) {
	if err := ValidateAxis(axis); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if v == nil {
		return nil, matrixErrorf(tag, ErrNilMatrix)
	}
	want := m.cols.n
	if axis == AxisCols {
		want = m.rows.n
	}
	if v.Len() != want {
		return nil, ErrDimensionMismatch
	}
	// v may be a row or column view of m itself.
	vals := v.Values()

	var i, j, k int
	for i = 0; i < m.rows.n; i++ {
		for j = 0; j < m.cols.n; j++ {
			k = m.off(i, j)
			if axis == AxisRows {
				m.st.data[k] = op.apply(m.st.data[k], vals[j])
			} else {
				m.st.data[k] = op.apply(m.st.data[k], vals[i])
			}
		}
	}

	return m, nil
}

// AddVec adds v to every row (AxisRows) or every column (AxisCols) and returns m.
func (m *Dense) AddVec(v *Vector, axis int) (*Dense, error) {
	return m.ewBroadcast(opAddVec, v, axis, ewAdd)
}

// SubVec subtracts v from every row (AxisRows) or every column (AxisCols).
func (m *Dense) SubVec(v *Vector, axis int) (*Dense, error) {
	return m.ewBroadcast(opSubVec, v, axis, ewSub)
}

// HadamardVec multiplies every row (AxisRows) or every column (AxisCols) by v.
func (m *Dense) HadamardVec(v *Vector, axis int) (*Dense, error) {
	return m.ewBroadcast(opHadamardVec, v, axis, ewMul)
}

// DivVec divides every row (AxisRows) or every column (AxisCols) by v.
func (m *Dense) DivVec(v *Vector, axis int) (*Dense, error) {
	return m.ewBroadcast(opDivVec, v, axis, ewDiv)
}
