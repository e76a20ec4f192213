// Package rapaio is a dense linear-algebra engine for the statistical and
// machine-learning layers built on top of it.
//
// What is inside:
//
//   - Vectors and matrices sharing one storage model: owned buffers and
//     aliasing views (row/column maps, ranges, removals) with explicit ...Copy
//     variants
//   - In-place elementwise, scalar and broadcast arithmetic with fluent chaining
//   - Reductions: sums, trace, diagonal, extrema and their indices, scatter, rank
//   - Householder QR (full-rank test, least squares) and partial-pivot LU
//     (solve, determinant, singularity detection)
//
// Everything lives in the matrix/ subpackage:
//
//	matrix/    Dense, Vector, arithmetic, reductions, QR, LU, rendering
//	examples/  runnable programs (least squares through QR, views and broadcasts)
//
// Execution is single-threaded and deterministic. Decompositions are immutable
// once built and may be shared between goroutines for reading.
package rapaio
