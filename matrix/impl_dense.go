// SPDX-License-Identifier: MIT

// Package matrix - Dense storage & safe accessors.
//
// Purpose:
//   - Provide one shared storage buffer (row-major or column-major) plus per-dimension
//     addressing (axis.go), so owned matrices and every kind of view are the same type.
//   - Guarantee safety at the public surface: At/Set/Inc return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce the optional finite-value policy from a single source of truth.
//
// Ownership:
//   - An owned Dense has identity axes over a storage nobody else addresses.
//   - A view shares the storage pointer; mutation through any alias is visible to all.
//   - Copy() walks the addressing once and materializes a fresh owned storage.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Copy: O(r*c); views: O(r) or O(c).
package matrix

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"  // method tag used in error wrappers
	ctxSet  = "Set" // method tag used in error wrappers
	ctxInc  = "Inc" // method tag used in error wrappers
	ctxNew  = "NewDense"
	ctxFrom = "NewFromRows"
	ctxWrap = "WrapData"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <sentinel>"; the sentinel survives via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// storage is the shared backing buffer of an owned matrix and all its views.
type storage struct {
	data       []float64
	rows, cols int
	opts       Options
}

// offset maps storage coordinates to the flat index.
func (s *storage) offset(i, j int) int {
	if s.opts.order == ColMajor {
		return j*s.rows + i
	}

	return i*s.cols + j
}

// rowStride is the flat distance between (i,j) and (i+1,j).
func (s *storage) rowStride() int {
	if s.opts.order == ColMajor {
		return 1
	}

	return s.cols
}

// colStride is the flat distance between (i,j) and (i,j+1).
func (s *storage) colStride() int {
	if s.opts.order == ColMajor {
		return s.rows
	}

	return 1
}

// Dense is a rectangular float64 matrix: a storage pointer plus row and column addressing.
type Dense struct {
	st   *storage
	rows axis
	cols axis
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options and allocate a zero-filled buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrInvalidDimensions)
	}

	return newDenseZeroOK(rows, cols, gatherOptions(opts...)), nil
}

// newDenseZeroOK is the internal constructor; it allows rows==0 or cols==0
// (e.g. a removeRows view copy that dropped every row). Callers validate r,c >= 0.
func newDenseZeroOK(rows, cols int, o Options) *Dense {
	return &Dense{
		st:   &storage{data: make([]float64, rows*cols), rows: rows, cols: cols, opts: o},
		rows: identityAxis(rows),
		cols: identityAxis(cols),
	}
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.st.data[m.st.offset(i, i)] = 1.0
	}

	return m, nil
}

// NewFill returns a rows×cols matrix with every cell equal to value.
func NewFill(rows, cols int, value float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	for k := range m.st.data {
		m.st.data[k] = value
	}

	return m, nil
}

// NewSequential returns a rows×cols matrix holding 0, 1, ..., rows*cols-1 in
// row-major reading order, whatever the storage order.
func NewSequential(rows, cols int, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.st.data[m.st.offset(i, j)] = float64(i*cols + j)
		}
	}

	return m, nil
}

// NewRandom returns a rows×cols matrix of independent Uniform[0,1) samples drawn
// from src. The caller owns the source: equal seeds give equal matrices.
func NewRandom(rows, cols int, src rand.Source, opts ...Option) (*Dense, error) {
	return newSampled(rows, cols, distuv.Uniform{Min: 0, Max: 1, Src: src}, opts...)
}

// NewRandomNormal returns a rows×cols matrix of standard normal samples drawn from src.
func NewRandomNormal(rows, cols int, src rand.Source, opts ...Option) (*Dense, error) {
	return newSampled(rows, cols, distuv.Normal{Mu: 0, Sigma: 1, Src: src}, opts...)
}

// sampler is the part of distuv distributions used by the random factories.
type sampler interface{ Rand() float64 }

func newSampled(rows, cols int, d sampler, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	// Fill in reading order so the matrix does not depend on the storage order.
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.st.data[m.st.offset(i, j)] = d.Rand()
		}
	}

	return m, nil
}

// NewFromRows copies a rectangular [][]float64 (rows of equal, positive length).
// Ragged input is rejected with ErrBadShape; under WithValidateNaNInf, non-finite
// cells are rejected with ErrNaNInf.
func NewFromRows(values [][]float64, opts ...Option) (*Dense, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFrom, ErrInvalidDimensions)
	}
	rows, cols := len(values), len(values[0])
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFrom, i, len(row), cols, ErrBadShape)
		}
		for j, v := range row {
			if m.st.opts.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(ctxFrom, i, j, ErrNaNInf)
			}
			m.st.data[m.st.offset(i, j)] = v
		}
	}

	return m, nil
}

// WrapData adopts data (row-major, len == rows*cols) without copying.
// Any WithOrder option is ignored: the buffer layout is row-major by contract.
func WrapData(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxWrap, rows, cols, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d): len %d: %w", ctxWrap, rows, cols, len(data), ErrBadShape)
	}
	o := gatherOptions(opts...)
	o.order = RowMajor
	if o.validateNaNInf {
		for k, v := range data {
			if isNonFinite(v) {
				return nil, denseErrorf(ctxWrap, k/cols, k%cols, ErrNaNInf)
			}
		}
	}

	return &Dense{
		st:   &storage{data: data, rows: rows, cols: cols, opts: o},
		rows: identityAxis(rows),
		cols: identityAxis(cols),
	}, nil
}

// ---------- shape & addressing ----------

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.rows.n }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.cols.n }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.rows.n, m.cols.n }

// Order returns the storage order of the backing buffer.
func (m *Dense) Order() Order { return m.st.opts.order }

// IsView reports whether m addresses a subset or reordering of its storage.
// A plain owned matrix (or WrapData) reports false.
func (m *Dense) IsView() bool {
	return m.rows.kind != axisIdentity || m.cols.kind != axisIdentity
}

// off computes the flat offset of view cell (i,j). Callers bounds-check.
func (m *Dense) off(i, j int) int { return m.st.offset(m.rows.resolve(i), m.cols.resolve(j)) }

// get/set are unchecked accessors used by kernels after validation.
func (m *Dense) get(i, j int) float64    { return m.st.data[m.off(i, j)] }
func (m *Dense) set(i, j int, v float64) { m.st.data[m.off(i, j)] = v }

// packed reports whether the view cells are exactly the storage buffer in
// storage order, so kernels may walk data[] flat.
func (m *Dense) packed() bool {
	return m.rows.kind == axisIdentity && m.cols.kind == axisIdentity
}

// indexOf bounds-checks (row,col) and returns the flat offset.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows.n || col < 0 || col >= m.cols.n {
		return 0, ErrOutOfRange
	}

	return m.off(row, col), nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	k, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.st.data[k], nil
}

// Set assigns v at (row, col), honoring the storage numeric policy.
//
// Errors:
//   - ErrOutOfRange on invalid indices.
//   - ErrNaNInf when the storage validates finite values and v is NaN/±Inf.
func (m *Dense) Set(row, col int, v float64) error {
	k, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.st.opts.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.st.data[k] = v

	return nil
}

// Inc adds delta to (row, col).
func (m *Dense) Inc(row, col int, delta float64) error {
	k, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxInc, row, col, err)
	}
	nv := m.st.data[k] + delta
	if m.st.opts.validateNaNInf && isNonFinite(nv) {
		return denseErrorf(ctxInc, row, col, ErrNaNInf)
	}
	m.st.data[k] = nv

	return nil
}

// ---------- copies ----------

// Copy materializes an owned matrix with the same values, storage order and policy.
func (m *Dense) Copy() *Dense {
	r, c := m.rows.n, m.cols.n
	out := newDenseZeroOK(r, c, m.st.opts)
	if m.packed() {
		copy(out.st.data, m.st.data)
		return out
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.st.data[out.st.offset(i, j)] = m.get(i, j)
		}
	}

	return out
}

// Clone implements Matrix; it is Copy behind the interface.
func (m *Dense) Clone() Matrix { return m.Copy() }

// RawRowMajor returns the cell values in row-major reading order as a fresh slice.
func (m *Dense) RawRowMajor() []float64 {
	r, c := m.rows.n, m.cols.n
	out := make([]float64, r*c)
	if m.packed() && m.st.opts.order == RowMajor {
		copy(out, m.st.data)
		return out
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out[i*c+j] = m.get(i, j)
		}
	}

	return out
}

// ---------- visitors ----------

// Do visits each element (i,j) in row-major order and calls f(i,j,v);
// it stops early when f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j int
	for i = 0; i < m.rows.n; i++ {
		for j = 0; j < m.cols.n; j++ {
			if !f(i, j, m.get(i, j)) {
				return
			}
		}
	}
}

// Apply replaces every cell v with f(v), in place, and returns m.
// Cells are updated progressively in row-major order.
func (m *Dense) Apply(f func(v float64) float64) *Dense {
	if m.packed() {
		for k, v := range m.st.data {
			m.st.data[k] = f(v)
		}
		return m
	}

	return m.ApplyIndexed(func(_, _ int, v float64) float64 { return f(v) })
}

// ApplyIndexed replaces every cell with f(i,j,v), in place, and returns m.
func (m *Dense) ApplyIndexed(f func(i, j int, v float64) float64) *Dense {
	var i, j, k int
	for i = 0; i < m.rows.n; i++ {
		for j = 0; j < m.cols.n; j++ {
			k = m.off(i, j)
			m.st.data[k] = f(i, j, m.st.data[k])
		}
	}

	return m
}

// ---------- vector views ----------

// Row returns row i as a Vector view sharing storage with m.
func (m *Dense) Row(i int) (*Vector, error) {
	if err := m.rows.checkIndex(i); err != nil {
		return nil, fmt.Errorf("Dense.Row: %w", err)
	}

	return m.lineView(m.rows.resolve(i), m.cols, false), nil
}

// RowCopy returns an owned copy of row i.
func (m *Dense) RowCopy(i int) (*Vector, error) {
	v, err := m.Row(i)
	if err != nil {
		return nil, err
	}

	return v.Copy(), nil
}

// Col returns column j as a Vector view sharing storage with m.
func (m *Dense) Col(j int) (*Vector, error) {
	if err := m.cols.checkIndex(j); err != nil {
		return nil, fmt.Errorf("Dense.Col: %w", err)
	}

	return m.lineView(m.cols.resolve(j), m.rows, true), nil
}

// ColCopy returns an owned copy of column j.
func (m *Dense) ColCopy(j int) (*Vector, error) {
	v, err := m.Col(j)
	if err != nil {
		return nil, err
	}

	return v.Copy(), nil
}

// lineView builds a vector over one storage row (fixed = storage row index,
// walking `along` as columns) or one storage column (column == true).
func (m *Dense) lineView(fixed int, along axis, column bool) *Vector {
	v := &Vector{data: m.st.data, n: along.n, stride: 1, view: true}
	if along.n == 0 {
		return v
	}
	if along.strided() {
		if column {
			v.off = m.st.offset(along.resolve(0), fixed)
			v.stride = m.st.rowStride()
		} else {
			v.off = m.st.offset(fixed, along.resolve(0))
			v.stride = m.st.colStride()
		}
		return v
	}
	v.pos = make([]int, along.n)
	for k := 0; k < along.n; k++ {
		if column {
			v.pos[k] = m.st.offset(along.resolve(k), fixed)
		} else {
			v.pos[k] = m.st.offset(fixed, along.resolve(k))
		}
	}

	return v
}

// Diag returns the main diagonal (length min(rows, cols)) as a view.
func (m *Dense) Diag() *Vector {
	n := m.rows.n
	if m.cols.n < n {
		n = m.cols.n
	}
	v := &Vector{data: m.st.data, n: n, stride: 1, view: true}
	if n == 0 {
		return v
	}
	if m.rows.strided() && m.cols.strided() {
		v.off = m.off(0, 0)
		v.stride = m.st.rowStride() + m.st.colStride()
		return v
	}
	v.pos = make([]int, n)
	for k := 0; k < n; k++ {
		v.pos[k] = m.off(k, k)
	}

	return v
}

// ---------- equality ----------

// DeepEquals reports equal shapes and every cell within m's tolerance
// (DefaultEqualTol unless built with WithEpsilon).
func (m *Dense) DeepEquals(o Matrix) bool { return m.DeepEqualsTol(o, m.st.opts.eps) }

// DeepEqualsTol reports equal shapes and |m[i,j]-o[i,j]| <= tol for all cells.
// tol == 0 compares exactly; NaN equals NaN in the same cell.
func (m *Dense) DeepEqualsTol(o Matrix, tol float64) bool {
	if o == nil || m.Rows() != o.Rows() || m.Cols() != o.Cols() {
		return false
	}
	tol = math.Abs(tol)
	od, fast := o.(*Dense)
	var i, j int
	var b float64
	var err error
	for i = 0; i < m.rows.n; i++ {
		for j = 0; j < m.cols.n; j++ {
			if fast {
				b = od.get(i, j)
			} else if b, err = o.At(i, j); err != nil {
				return false
			}
			if !closeEnough(m.get(i, j), b, tol) {
				return false
			}
		}
	}

	return true
}
