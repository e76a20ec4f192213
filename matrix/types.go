// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage, kernels and decompositions.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Order is the physical layout of a matrix storage buffer. It is fixed at
// construction and never influences the result of an operation.
type Order uint8

const (
	// RowMajor stores rows contiguously ("stripe"): offset = i*cols + j.
	RowMajor Order = iota
	// ColMajor stores columns contiguously: offset = j*rows + i.
	ColMajor
)

// String returns a stable name for the order.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "RowMajor"
	case ColMajor:
		return "ColMajor"
	default:
		return "Order(?)"
	}
}

// Axis selectors for reductions and broadcasts.
const (
	// AxisRows reduces over rows (one result per column) or broadcasts a
	// length-Cols vector across every row.
	AxisRows = 0
	// AxisCols reduces over columns (one result per row) or broadcasts a
	// length-Rows vector across every column.
	AxisCols = 1
)

// Matrix is the minimal read/write surface every kernel accepts.
// *Dense is the canonical implementation; kernels take a fast path for it and
// fall back to At/Set for any other implementation.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
