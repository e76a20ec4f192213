// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.
// Panics are reserved for programmer errors (nonsensical Option values).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. The one exception is ErrDimensionMismatch, whose
// text is a fixed, user-facing message that callers match verbatim.
//
// Elementwise binary operations return ErrDimensionMismatch bare. Everything
// else wraps with fmt.Errorf("<Op>: %w", ErrX) through matrixErrorf, so the
// offending operation is named and errors.Is still matches.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> squareness -> singularity.

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive
	// (or negative for constructors that accept empty shapes).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when a requested shape or window is invalid,
	// e.g. a ragged [][]float64, a data slice of the wrong length, or lo > hi.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row, column or vector index is outside
	// valid bounds. Public indexers (At/Set/Inc) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates non-conformant operand shapes for
	// arithmetic, products or solves.
	ErrDimensionMismatch = errors.New("Matrices are not conform with this operation.")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by QR/LU solves whose triangular factor has a
	// pivot or diagonal at or below the near-zero threshold.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidAxis is returned when an axis argument is neither 0 nor 1.
	ErrInvalidAxis = errors.New("matrix: axis must be 0 or 1")

	// ErrNaNInf signals a NaN or ±Inf value was written while the storage
	// enforces the finite-value policy (see WithValidateNaNInf).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix or Vector (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
