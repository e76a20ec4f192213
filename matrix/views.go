// SPDX-License-Identifier: MIT

// Package matrix - row/column selection views and their owned copies.
//
// Every selector comes in two flavors:
//   - the view (MapRows, RangeCols, ...) shares storage with the receiver;
//     writes through it are visible in the receiver and in every other alias,
//   - the ...Copy variant materializes the same cells into a new owned matrix.
//
// Views of views compose their addressing at creation time (axis.go), so reading
// a cell costs the same whatever the depth of the view chain.
package matrix

import "fmt"

const (
	ctxMapRows   = "MapRows"
	ctxMapCols   = "MapCols"
	ctxRangeRows = "RangeRows"
	ctxRangeCols = "RangeCols"
)

// viewErrorf tags a selector failure with the selector name.
func viewErrorf(ctx string, err error) error {
	return fmt.Errorf("Dense.%s: %w", ctx, err)
}

// withRows returns a view sharing m's storage with row addressing a.
func (m *Dense) withRows(a axis) *Dense { return &Dense{st: m.st, rows: a, cols: m.cols} }

// withCols returns a view sharing m's storage with column addressing a.
func (m *Dense) withCols(a axis) *Dense { return &Dense{st: m.st, rows: m.rows, cols: a} }

// MapRows returns a view whose row k is row idx[k] of m.
// Order is preserved and indices may repeat. Errors: ErrOutOfRange.
func (m *Dense) MapRows(idx ...int) (*Dense, error) {
	a, err := m.rows.mapIndex(idx)
	if err != nil {
		return nil, viewErrorf(ctxMapRows, err)
	}

	return m.withRows(a), nil
}

// MapRowsCopy is MapRows materialized into an owned matrix.
func (m *Dense) MapRowsCopy(idx ...int) (*Dense, error) {
	v, err := m.MapRows(idx...)
	if err != nil {
		return nil, err
	}

	return v.Copy(), nil
}

// MapCols returns a view whose column k is column idx[k] of m.
func (m *Dense) MapCols(idx ...int) (*Dense, error) {
	a, err := m.cols.mapIndex(idx)
	if err != nil {
		return nil, viewErrorf(ctxMapCols, err)
	}

	return m.withCols(a), nil
}

// MapColsCopy is MapCols materialized into an owned matrix.
func (m *Dense) MapColsCopy(idx ...int) (*Dense, error) {
	v, err := m.MapCols(idx...)
	if err != nil {
		return nil, err
	}

	return v.Copy(), nil
}

// RangeRows returns a view of rows [lo, hi).
//
// Errors:
//   - ErrOutOfRange when lo < 0 or hi > Rows().
//   - ErrBadShape when lo > hi.
//
// lo == hi yields a view with zero rows.
func (m *Dense) RangeRows(lo, hi int) (*Dense, error) {
	a, err := m.rows.window(lo, hi)
	if err != nil {
		return nil, viewErrorf(ctxRangeRows, err)
	}

	return m.withRows(a), nil
}

// RangeRowsCopy is RangeRows materialized into an owned matrix.
func (m *Dense) RangeRowsCopy(lo, hi int) (*Dense, error) {
	v, err := m.RangeRows(lo, hi)
	if err != nil {
		return nil, err
	}

	return v.Copy(), nil
}

// RangeCols returns a view of columns [lo, hi).
func (m *Dense) RangeCols(lo, hi int) (*Dense, error) {
	a, err := m.cols.window(lo, hi)
	if err != nil {
		return nil, viewErrorf(ctxRangeCols, err)
	}

	return m.withCols(a), nil
}

// RangeColsCopy is RangeCols materialized into an owned matrix.
func (m *Dense) RangeColsCopy(lo, hi int) (*Dense, error) {
	v, err := m.RangeCols(lo, hi)
	if err != nil {
		return nil, err
	}

	return v.Copy(), nil
}

// RemoveRows returns a view of every row not listed in idx, in original order.
// idx is a set: repeated indices and indices outside [0, Rows()) are ignored,
// so the error is always nil.
func (m *Dense) RemoveRows(idx ...int) (*Dense, error) {
	return m.withRows(m.rows.remove(idx)), nil
}

// RemoveRowsCopy is RemoveRows materialized into an owned matrix.
func (m *Dense) RemoveRowsCopy(idx ...int) (*Dense, error) {
	v, err := m.RemoveRows(idx...)
	if err != nil {
		return nil, err
	}

	return v.Copy(), nil
}

// RemoveCols returns a view of every column not listed in idx, in original order.
// Like RemoveRows, entries outside [0, Cols()) and repeats are ignored.
func (m *Dense) RemoveCols(idx ...int) (*Dense, error) {
	return m.withCols(m.cols.remove(idx)), nil
}

// RemoveColsCopy is RemoveCols materialized into an owned matrix.
func (m *Dense) RemoveColsCopy(idx ...int) (*Dense, error) {
	v, err := m.RemoveCols(idx...)
	if err != nil {
		return nil, err
	}

	return v.Copy(), nil
}
