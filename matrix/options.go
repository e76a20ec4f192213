// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for storage layout, numeric policy
// and diagnostic rendering. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Storage order never changes the result of an operation, only its memory walk.
//   - The numeric policy travels with the storage: views and copies inherit it.
//   - Decompositions read only the singular tolerance; the rest is ignored there.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEqualTol is the absolute per-cell tolerance used by DeepEquals.
	// Small enough to absorb rounding of a few flops, not to merge distinct values.
	DefaultEqualTol = 1e-14

	// DefaultSingularTol is the relative near-zero threshold for QR diagonals and
	// LU pivots. A value v is "zero" when |v| <= DefaultSingularTol * scale, where
	// scale is max|R[i,i]| for QR and max|A[i,j]| for LU (never below 1 for QR).
	DefaultSingularTol = 1e-12

	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Inc and
	// ingestion constructors. Off by default: arithmetic follows IEEE-754, so
	// 0/0 legitimately yields NaN inside an elementwise Div.
	DefaultValidateNaNInf = false
)

// Storage layout.
const (
	// DefaultOrder is the storage order of freshly allocated matrices.
	DefaultOrder = RowMajor
)

// Rendering budgets (see printer.go).
const (
	// DefaultToStringRows is the number of rows String() shows before "..".
	DefaultToStringRows = 24

	// DefaultToStringCols is the number of columns String() shows before "..".
	DefaultToStringCols = 10

	// DefaultSummaryRows is the row budget of Summary()/Content().
	DefaultSummaryRows = 22

	// DefaultSummaryCols is the column budget of Summary()/Content().
	DefaultSummaryCols = 22
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid     = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicSingularTolInvalid = "matrix: WithSingularTol: tol must be finite, non-negative"
	panicOrderInvalid       = "matrix: WithOrder: unknown storage order"
	panicDisplayInvalid     = "matrix: WithDisplay: budgets must be >= 3"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	// storage
	order Order // DefaultOrder

	// numeric policy
	eps            float64 // >= 0; DefaultEqualTol
	singularTol    float64 // >= 0; DefaultSingularTol
	validateNaNInf bool    // DefaultValidateNaNInf

	// rendering
	summaryRows, summaryCols int // DefaultSummaryRows, DefaultSummaryCols
}

// ---------- Constructors (WithX) ----------

// WithOrder selects the storage order of a newly allocated matrix.
// Panics on an unknown Order value.
func WithOrder(order Order) Option {
	if order != RowMajor && order != ColMajor {
		panic(panicOrderInvalid)
	}

	return func(o *Options) { o.order = order }
}

// WithEpsilon sets the absolute tolerance used by DeepEquals on matrices built
// with this option.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on NaN, ±Inf or negative eps.
//   - eps == 0 turns DeepEquals into an exact comparison.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSingularTol sets the relative near-zero threshold used by NewQR/NewLU.
// Larger values declare more systems singular; zero only flags exact zeros.
func WithSingularTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicSingularTolInvalid)
	}

	return func(o *Options) { o.singularTol = tol }
}

// WithValidateNaNInf enables strict finite-value validation on Set/Inc and on
// ingestion constructors (NewFromRows, WrapData). Arithmetic kernels are not
// affected: they follow IEEE-754 semantics.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithDisplay overrides the Summary()/Content() budgets. When a dimension
// exceeds its budget, the head (budget-2 indices) and the last two indices are
// shown around a "..." marker.
func WithDisplay(rows, cols int) Option {
	if rows < 3 || cols < 3 {
		panic(panicDisplayInvalid)
	}

	return func(o *Options) {
		o.summaryRows = rows
		o.summaryCols = cols
	}
}

// ---------- Resolution ----------

// defaultOptions returns the documented defaults. Keep in sync with the constants.
func defaultOptions() Options {
	return Options{
		order:          DefaultOrder,
		eps:            DefaultEqualTol,
		singularTol:    DefaultSingularTol,
		validateNaNInf: DefaultValidateNaNInf,
		summaryRows:    DefaultSummaryRows,
		summaryCols:    DefaultSummaryCols,
	}
}

// gatherOptions applies user options over defaults in order; last one wins.
// Nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
