// SPDX-License-Identifier: MIT

// Package matrix - Vector: owned or borrowed sequence of float64 values.
//
// Purpose:
//   - A fixed-length vector that either owns its buffer or addresses a row, a column
//     or the diagonal of a Dense storage (strided or through explicit offsets).
//   - In-place arithmetic returns the receiver; writes through a view land in the
//     backing matrix and are visible through every other alias.
//   - Contiguous buffers go through gonum/floats kernels; other layouts walk offsets.
//
// Complexity quicksheet:
//   - At/Set/Inc: O(1); Dot/Add/.../Copy: O(n).
package matrix

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

const (
	opVecDot = "Vector.Dot"
	ctxVecAt = "At"
	ctxVecSt = "Set"
	ctxVecIn = "Inc"
)

// Vector is a dense float64 vector.
// Element i lives at data[off+i*stride], or at data[pos[i]] when pos != nil.
type Vector struct {
	data   []float64
	n      int
	off    int
	stride int
	pos    []int // explicit offsets for views over mapped matrices
	view   bool  // borrows a matrix buffer
}

// NewVector returns a zero vector of length n (n == 0 is legal).
func NewVector(n int) (*Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewVector(%d): %w", n, ErrInvalidDimensions)
	}

	return &Vector{data: make([]float64, n), n: n, stride: 1}, nil
}

// FillVector returns a vector of length n with every element equal to value.
func FillVector(n int, value float64) (*Vector, error) {
	v, err := NewVector(n)
	if err != nil {
		return nil, err
	}
	for i := range v.data {
		v.data[i] = value
	}

	return v, nil
}

// OnesVector is FillVector(n, 1).
func OnesVector(n int) (*Vector, error) { return FillVector(n, 1) }

// WrapVector adopts values as the backing buffer without copying.
// Later writes to values are visible through the vector and vice versa.
func WrapVector(values ...float64) *Vector {
	if values == nil {
		values = []float64{}
	}

	return &Vector{data: values, n: len(values), stride: 1}
}

// Len returns the number of elements.
func (v *Vector) Len() int { return v.n }

// offset maps element index i to its position in data.
func (v *Vector) offset(i int) int {
	if v.pos != nil {
		return v.pos[i]
	}

	return v.off + i*v.stride
}

// contiguous returns the backing window when elements are adjacent in memory.
func (v *Vector) contiguous() ([]float64, bool) {
	if v.pos == nil && (v.stride == 1 || v.n <= 1) {
		return v.data[v.off : v.off+v.n], true
	}

	return nil, false
}

// IsView reports whether the vector borrows storage from a matrix.
func (v *Vector) IsView() bool {
	return v.view
}

func (v *Vector) check(ctx string, i int) error {
	if i < 0 || i >= v.n {
		return fmt.Errorf("Vector.%s(%d): %w", ctx, i, ErrOutOfRange)
	}

	return nil
}

// At returns element i or ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if err := v.check(ctxVecAt, i); err != nil {
		return 0, err
	}

	return v.data[v.offset(i)], nil
}

// Set writes element i or returns ErrOutOfRange.
func (v *Vector) Set(i int, value float64) error {
	if err := v.check(ctxVecSt, i); err != nil {
		return err
	}
	v.data[v.offset(i)] = value

	return nil
}

// Inc adds delta to element i.
func (v *Vector) Inc(i int, delta float64) error {
	if err := v.check(ctxVecIn, i); err != nil {
		return err
	}
	v.data[v.offset(i)] += delta

	return nil
}

// get is the unchecked reader used by kernels after validation.
func (v *Vector) get(i int) float64 { return v.data[v.offset(i)] }

// Dot returns Σ v[i]*o[i].
func (v *Vector) Dot(o *Vector) (float64, error) {
	if o == nil {
		return 0, matrixErrorf(opVecDot, ErrNilMatrix)
	}
	if v.n != o.n {
		return 0, matrixErrorf(opVecDot, ErrDimensionMismatch)
	}
	a, okA := v.contiguous()
	b, okB := o.contiguous()
	if okA && okB {
		return floats.Dot(a, b), nil
	}
	var s float64
	for i := 0; i < v.n; i++ {
		s += v.get(i) * o.get(i)
	}

	return s, nil
}

// ---------- scalar ops (in place, fluent) ----------

// AddScalar adds x to every element and returns v.
func (v *Vector) AddScalar(x float64) *Vector {
	if a, ok := v.contiguous(); ok {
		floats.AddConst(x, a)
		return v
	}
	for i := 0; i < v.n; i++ {
		v.data[v.offset(i)] += x
	}

	return v
}

// SubScalar subtracts x from every element and returns v.
func (v *Vector) SubScalar(x float64) *Vector { return v.AddScalar(-x) }

// Scale multiplies every element by x and returns v.
func (v *Vector) Scale(x float64) *Vector {
	if a, ok := v.contiguous(); ok {
		floats.Scale(x, a)
		return v
	}
	for i := 0; i < v.n; i++ {
		v.data[v.offset(i)] *= x
	}

	return v
}

// DivScalar divides every element by x and returns v.
func (v *Vector) DivScalar(x float64) *Vector {
	for i := 0; i < v.n; i++ {
		v.data[v.offset(i)] /= x
	}

	return v
}

// ---------- elementwise vector ops (in place, fluent) ----------

type vecOp uint8

const (
	vecAdd vecOp = iota
	vecSub
	vecMul
	vecDiv
)

// elementwise applies v[i] = v[i] op o[i] after validating the length.
// Nothing is written when validation fails.
func (v *Vector) elementwise(o *Vector, op vecOp) (*Vector, error) {
	if o == nil {
		return nil, ErrNilMatrix
	}
	if v.n != o.n {
		return nil, ErrDimensionMismatch
	}
	a, okA := v.contiguous()
	b, okB := o.contiguous()
	if okA && okB && !(sameBuffer(v.data, o.data) && v.off != o.off) {
		switch op {
		case vecAdd:
			floats.Add(a, b)
		case vecSub:
			floats.Sub(a, b)
		case vecMul:
			floats.Mul(a, b)
		case vecDiv:
			floats.Div(a, b)
		}
		return v, nil
	}
	// Read the operand first: o may alias v.
	src := o.Values()
	var k int
	for i := 0; i < v.n; i++ {
		k = v.offset(i)
		switch op {
		case vecAdd:
			v.data[k] += src[i]
		case vecSub:
			v.data[k] -= src[i]
		case vecMul:
			v.data[k] *= src[i]
		case vecDiv:
			v.data[k] /= src[i]
		}
	}

	return v, nil
}

// Add performs v += o elementwise.
func (v *Vector) Add(o *Vector) (*Vector, error) { return v.elementwise(o, vecAdd) }

// Sub performs v -= o elementwise.
func (v *Vector) Sub(o *Vector) (*Vector, error) { return v.elementwise(o, vecSub) }

// Hadamard performs v *= o elementwise.
func (v *Vector) Hadamard(o *Vector) (*Vector, error) { return v.elementwise(o, vecMul) }

// Div performs v /= o elementwise.
func (v *Vector) Div(o *Vector) (*Vector, error) { return v.elementwise(o, vecDiv) }

// ---------- copies & reductions ----------

// Copy returns an owned contiguous vector with the same values.
func (v *Vector) Copy() *Vector { return &Vector{data: v.Values(), n: v.n, stride: 1} }

// Values returns the elements as a fresh slice.
func (v *Vector) Values() []float64 {
	out := make([]float64, v.n)
	if a, ok := v.contiguous(); ok {
		copy(out, a)
		return out
	}
	for i := range out {
		out[i] = v.get(i)
	}

	return out
}

// Sum returns Σ v[i]. An empty vector sums to 0.
func (v *Vector) Sum() float64 {
	if a, ok := v.contiguous(); ok {
		return floats.Sum(a)
	}
	var s float64
	for i := 0; i < v.n; i++ {
		s += v.get(i)
	}

	return s
}

// Norm returns the euclidean norm.
func (v *Vector) Norm() float64 {
	if a, ok := v.contiguous(); ok {
		return floats.Norm(a, 2)
	}
	var s float64
	for i := 0; i < v.n; i++ {
		s = math.Hypot(s, v.get(i))
	}

	return s
}

// DeepEquals compares length and values within DefaultEqualTol.
func (v *Vector) DeepEquals(o *Vector) bool { return v.DeepEqualsTol(o, DefaultEqualTol) }

// DeepEqualsTol compares length and values within tol (tol == 0 is exact).
// Two NaN in the same position are considered equal.
func (v *Vector) DeepEqualsTol(o *Vector, tol float64) bool {
	if o == nil || v.n != o.n {
		return false
	}
	for i := 0; i < v.n; i++ {
		if !closeEnough(v.get(i), o.get(i), tol) {
			return false
		}
	}

	return true
}

// String renders the values as "[a, b, c]".
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < v.n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatValue(v.get(i)))
	}
	sb.WriteString("]")

	return sb.String()
}

// closeEnough is the per-cell equality used by DeepEquals.
func closeEnough(a, b, tol float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}

	return math.Abs(a-b) <= tol
}

// sameBuffer reports whether two vectors address the same backing array.
// Views handed out by a Dense always carry the full storage slice.
func sameBuffer(a, b []float64) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}
