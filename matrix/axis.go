// SPDX-License-Identifier: MIT

// Package matrix - row/column addressing strategies for views.
//
// Purpose:
//   - Represent every view kind (identity, explicit index list, contiguous range,
//     complement of an index set) as one tagged value with a single resolve(i).
//   - Compose a new selection with an existing one at creation time, so a view of a
//     view still resolves in one step against the ultimate storage buffer.
//
// Complexity quicksheet:
//   - resolve: O(1); mapIndex/remove: O(n); window: O(1) for identity/range, O(k) otherwise.
package matrix

import "fmt"

// axisKind tags the addressing strategy of one dimension.
type axisKind uint8

const (
	axisIdentity axisKind = iota // i -> i
	axisIndex                    // i -> idx[i]
	axisRange                    // i -> start + i
	axisRemove                   // i -> idx[i], idx = kept storage indices in increasing order
)

// axis maps view indices [0, n) of one dimension to storage indices.
type axis struct {
	kind  axisKind
	n     int   // view length
	start int   // axisRange: first storage index
	idx   []int // axisIndex/axisRemove: storage index per view index (owned, never aliased)
}

// identityAxis addresses a full storage dimension of length n.
func identityAxis(n int) axis { return axis{kind: axisIdentity, n: n} }

// resolve maps view index i to a storage index. Callers bounds-check i.
func (a axis) resolve(i int) int {
	switch a.kind {
	case axisIdentity:
		return i
	case axisRange:
		return a.start + i
	default:
		return a.idx[i]
	}
}

// strided reports whether consecutive view indices map to consecutive storage
// indices, i.e. the axis is an identity or a range.
func (a axis) strided() bool { return a.kind == axisIdentity || a.kind == axisRange }

// checkIndex validates 0 <= i < n.
func (a axis) checkIndex(i int) error {
	if i < 0 || i >= a.n {
		return fmt.Errorf("index %d of %d: %w", i, a.n, ErrOutOfRange)
	}

	return nil
}

// mapIndex selects view indices sel (any order, repeats allowed).
func (a axis) mapIndex(sel []int) (axis, error) {
	out := make([]int, len(sel))
	for k, i := range sel {
		if err := a.checkIndex(i); err != nil {
			return axis{}, err
		}
		out[k] = a.resolve(i)
	}

	return axis{kind: axisIndex, n: len(out), idx: out}, nil
}

// window selects the contiguous view indices [lo, hi).
func (a axis) window(lo, hi int) (axis, error) {
	if lo < 0 || hi > a.n {
		return axis{}, fmt.Errorf("range [%d,%d) of %d: %w", lo, hi, a.n, ErrOutOfRange)
	}
	if lo > hi {
		return axis{}, fmt.Errorf("range [%d,%d): %w", lo, hi, ErrBadShape)
	}
	if a.strided() {
		return axis{kind: axisRange, n: hi - lo, start: a.resolve(0) + lo}, nil
	}
	out := make([]int, hi-lo)
	copy(out, a.idx[lo:hi])

	return axis{kind: axisIndex, n: len(out), idx: out}, nil
}

// remove keeps every view index not listed in drop, preserving order.
// drop is a set: duplicates and entries outside [0, n) name nothing and are ignored.
func (a axis) remove(drop []int) axis {
	skip := make([]bool, a.n)
	for _, i := range drop {
		if i >= 0 && i < a.n {
			skip[i] = true
		}
	}
	out := make([]int, 0, a.n)
	for i := 0; i < a.n; i++ {
		if !skip[i] {
			out = append(out, a.resolve(i))
		}
	}

	return axis{kind: axisRemove, n: len(out), idx: out}
}
