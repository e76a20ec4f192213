// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/padreati/rapaio-go/matrix"
)

func TestVectorConstructors(t *testing.T) {
	v, err := matrix.NewVector(3)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, v.Values())

	f, err := matrix.FillVector(2, 1.5)
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, 1.5}, f.Values())

	o, err := matrix.OnesVector(4)
	require.NoError(t, err)
	require.Equal(t, 4.0, o.Sum())

	_, err = matrix.NewVector(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	empty, err := matrix.NewVector(0)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Len())
	require.Equal(t, 0.0, empty.Sum())
}

func TestVectorBounds(t *testing.T) {
	v := matrix.WrapVector(1, 2, 3)
	_, err := v.At(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Set(-1, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Inc(10, 0), matrix.ErrOutOfRange)

	require.NoError(t, v.Inc(0, 9))
	require.Equal(t, 10.0, MustVecAt(t, v, 0))
}

func TestVectorWrapAdopts(t *testing.T) {
	raw := []float64{1, 2, 3}
	v := matrix.WrapVector(raw...)
	raw[1] = 20
	require.Equal(t, 20.0, MustVecAt(t, v, 1))

	cp := v.Copy()
	require.NoError(t, cp.Set(0, -1))
	require.Equal(t, 1.0, raw[0])
}

// TestVectorViewFlag checks that IsView follows provenance, not layout: a row of
// a 1xn matrix has unit stride and no offset yet still borrows the buffer.
func TestVectorViewFlag(t *testing.T) {
	m := MustSequential(t, 1, 4)

	row, err := m.Row(0)
	require.NoError(t, err)
	require.True(t, row.IsView())
	require.False(t, row.Copy().IsView())

	col, err := m.Col(0)
	require.NoError(t, err)
	require.True(t, col.IsView())
	require.True(t, m.Diag().IsView())

	require.NoError(t, row.Set(3, 30))
	require.Equal(t, 30.0, MustAt(t, m, 0, 3))

	require.False(t, matrix.WrapVector(1, 2).IsView())
	owned, err := matrix.NewVector(2)
	require.NoError(t, err)
	require.False(t, owned.IsView())
}

func TestVectorDot(t *testing.T) {
	a := matrix.WrapVector(1, 2, 3)
	b := matrix.WrapVector(4, 5, 6)
	d, err := a.Dot(b)
	require.NoError(t, err)
	require.Equal(t, 32.0, d)

	_, err = a.Dot(matrix.WrapVector(1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// strided column view against an owned vector
	m := MustSequential(t, 3, 3)
	col, err := m.Col(1)
	require.NoError(t, err)
	d, err = col.Dot(a)
	require.NoError(t, err)
	require.Equal(t, 1*1.0+4*2+7*3, d)
}

func TestVectorArithmeticInPlace(t *testing.T) {
	v := matrix.WrapVector(2, 4, 6)
	require.Same(t, v, v.AddScalar(1))
	require.Equal(t, []float64{3, 5, 7}, v.Values())
	v.SubScalar(1).Scale(0.5).DivScalar(0.5)
	require.Equal(t, []float64{2, 4, 6}, v.Values())

	got, err := v.Add(matrix.WrapVector(1, 1, 1))
	require.NoError(t, err)
	require.Same(t, v, got)
	_, err = v.Sub(matrix.WrapVector(3, 5, 7))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, v.Values())

	w := matrix.WrapVector(1, 2, 3)
	_, err = w.Hadamard(matrix.WrapVector(2, 2, 2))
	require.NoError(t, err)
	_, err = w.Div(matrix.WrapVector(2, 4, 0))
	require.NoError(t, err)
	require.Equal(t, 1.0, MustVecAt(t, w, 0))
	require.Equal(t, 1.0, MustVecAt(t, w, 1))
	require.True(t, math.IsInf(MustVecAt(t, w, 2), 1))

	before := w.Values()
	_, err = w.Add(matrix.WrapVector(1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.EqualError(t, err, "Matrices are not conform with this operation.")
	require.Equal(t, before, w.Values())
}

// TestVectorAliasedOperands adds overlapping views of one matrix row by row.
func TestVectorAliasedOperands(t *testing.T) {
	m := MustSequential(t, 1, 4)
	left, err := m.RangeCols(0, 3)
	require.NoError(t, err)
	right, err := m.RangeCols(1, 4)
	require.NoError(t, err)
	lrow, err := left.Row(0)
	require.NoError(t, err)
	rrow, err := right.Row(0)
	require.NoError(t, err)

	// [0 1 2] += [1 2 3], reading the operand before any write
	_, err = lrow.Add(rrow)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 3, 5, 3}}, m)

	self, err := m.Row(0)
	require.NoError(t, err)
	_, err = self.Add(self)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, 6, 10, 6}}, m)
}

func TestVectorReductionsAndEquality(t *testing.T) {
	v := matrix.WrapVector(3, 4)
	require.Equal(t, 7.0, v.Sum())
	require.InDelta(t, 5.0, v.Norm(), 1e-15)

	m := MustFromRows(t, [][]float64{{3, 0}, {4, 0}})
	col, err := m.Col(0)
	require.NoError(t, err)
	require.InDelta(t, 5.0, col.Norm(), 1e-15)
	require.True(t, col.DeepEquals(v))
	require.True(t, v.DeepEqualsTol(matrix.WrapVector(3, 4+1e-9), 1e-8))
	require.False(t, v.DeepEqualsTol(matrix.WrapVector(3, 4+1e-9), 0))
	require.False(t, v.DeepEquals(matrix.WrapVector(3)))
	require.Equal(t, "[3, 4]", v.String())
	require.Equal(t, "[0.5, -2]", matrix.WrapVector(0.5, -2).String())
}
