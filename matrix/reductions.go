// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Structural reductions of a *Dense: grand total, per-axis sums, trace,
//     per-axis extrema and their indices, the centered scatter matrix.
//
// Axis convention (shared with the broadcasts in ops_elementwise.go):
//   - AxisRows (0) reduces over rows: one result per column.
//   - AxisCols (1) reduces over columns: one result per row.
//
// Determinism:
//   - Accumulation runs in increasing index order; ties of ArgMax/ArgMin resolve
//     to the first index met in that order.

package matrix

import "math"

// Sum returns the sum of every cell. A matrix with no cells sums to 0.
func (m *Dense) Sum() float64 {
	var s float64
	if m.packed() {
		for _, v := range m.st.data {
			s += v
		}
		return s
	}
	var i, j int
	for i = 0; i < m.rows.n; i++ {
		for j = 0; j < m.cols.n; j++ {
			s += m.get(i, j)
		}
	}

	return s
}

// SumAxis returns per-column sums (AxisRows) or per-row sums (AxisCols).
func (m *Dense) SumAxis(axis int) (*Vector, error) {
	return m.reduce(opSumAxis, axis, 0, func(acc, v float64) float64 { return acc + v })
}

// AMax returns the per-column (AxisRows) or per-row (AxisCols) maxima.
// Lines with no cells report -Inf.
func (m *Dense) AMax(axis int) (*Vector, error) {
	return m.reduce(opAMax, axis, math.Inf(-1), math.Max)
}

// AMin returns the per-column (AxisRows) or per-row (AxisCols) minima.
// Lines with no cells report +Inf.
func (m *Dense) AMin(axis int) (*Vector, error) {
	return m.reduce(opAMin, axis, math.Inf(1), math.Min)
}

// reduce folds every line of m along axis with f, starting from seed.
func (m *Dense) reduce(tag string, axis int, seed float64, f func(acc, v float64) float64) (*Vector, error) {
	if err := ValidateAxis(axis); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	outer, inner := m.cols.n, m.rows.n
	if axis == AxisCols {
		outer, inner = m.rows.n, m.cols.n
	}
	out := &Vector{data: make([]float64, outer), n: outer, stride: 1}
	var o, k int
	var acc float64
	for o = 0; o < outer; o++ {
		acc = seed
		for k = 0; k < inner; k++ {
			if axis == AxisRows {
				acc = f(acc, m.get(k, o))
			} else {
				acc = f(acc, m.get(o, k))
			}
		}
		out.data[o] = acc
	}

	return out, nil
}

// ArgMax returns, per column (AxisRows) or per row (AxisCols), the index of the
// largest value. Ties resolve to the first index; lines with no cells report -1.
// NaN cells never win against a number.
func (m *Dense) ArgMax(axis int) ([]int, error) {
	return m.argReduce(opArgMax, axis, func(v, best float64) bool { return v > best })
}

// ArgMin is ArgMax for the smallest value.
func (m *Dense) ArgMin(axis int) ([]int, error) {
	return m.argReduce(opArgMin, axis, func(v, best float64) bool { return v < best })
}

func (m *Dense) argReduce(tag string, axis int, better func(v, best float64) bool) ([]int, error) {
	if err := ValidateAxis(axis); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	outer, inner := m.cols.n, m.rows.n
	if axis == AxisCols {
		outer, inner = m.rows.n, m.cols.n
	}
	out := make([]int, outer)
	var (
		o, k    int
		v, best float64
	)
	for o = 0; o < outer; o++ {
		out[o] = -1
		for k = 0; k < inner; k++ {
			if axis == AxisRows {
				v = m.get(k, o)
			} else {
				v = m.get(o, k)
			}
			if out[o] < 0 && math.IsNaN(v) {
				continue
			}
			if out[o] < 0 || better(v, best) {
				out[o], best = k, v
			}
		}
		if out[o] < 0 && inner > 0 {
			// All NaN: report the first cell.
			out[o] = 0
		}
	}

	return out, nil
}

// Trace returns the sum of the main diagonal.
// Errors: ErrNonSquare when Rows() != Cols().
func (m *Dense) Trace() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	return m.Diag().Sum(), nil
}

// Scatter returns Xᵗ·(I − J/n)·X for the n×c receiver X, i.e. the c×c matrix of
// centered cross products Σ_i (x_ia − μ_a)(x_ib − μ_b). With no rows the result
// is the zero matrix.
//
// Complexity:
//   - Time O(n*c²), Space O(n*c) for the centered snapshot.
func (m *Dense) Scatter() *Dense {
	n, c := m.rows.n, m.cols.n
	o := m.st.opts
	o.order = RowMajor
	out := newDenseZeroOK(c, c, o)
	if n == 0 {
		return out
	}
	xc := m.centered()
	var i, a, b int
	var s float64
	for a = 0; a < c; a++ {
		for b = a; b < c; b++ {
			s = 0
			for i = 0; i < n; i++ {
				s += xc[i*c+a] * xc[i*c+b]
			}
			out.st.data[a*c+b] = s
			out.st.data[b*c+a] = s
		}
	}

	return out
}

// centered returns the cells in row-major order with each column mean removed.
func (m *Dense) centered() []float64 {
	n, c := m.rows.n, m.cols.n
	xc := m.RawRowMajor()
	for j := 0; j < c; j++ {
		var mean float64
		for i := 0; i < n; i++ {
			mean += xc[i*c+j]
		}
		mean /= float64(n)
		for i := 0; i < n; i++ {
			xc[i*c+j] -= mean
		}
	}

	return xc
}

// Rank returns the numeric rank: the number of diagonal entries of a
// column-pivoted Householder R whose magnitude exceeds
// max(Rows, Cols) · 2⁻⁵² · max|R[k,k]|. A zero matrix has rank 0.
func (m *Dense) Rank() int { return numericRank(m) }
