// Package matrix implements dense float64 vectors and matrices with explicit
// view/copy semantics, in-place arithmetic, reductions and two factorizations.
//
// Storage and views:
//
//   - A Dense is a shared storage buffer (row-major or column-major, fixed at
//     construction) plus one addressing value per dimension. MapRows, RangeCols,
//     RemoveRows and friends return views over the same buffer; their ...Copy
//     twins return owned matrices.
//   - Row, Col and Diag return *Vector views; writing through them writes the matrix.
//
// Arithmetic:
//
//   - Scalar, matrix and broadcast operations mutate the receiver and return it.
//     The package-level Add, Sub, Hadamard, Scale, MatMul and Transpose never
//     mutate their operands.
//   - Shape mismatches fail with ErrDimensionMismatch before anything is written.
//
// Factorizations:
//
//   - NewQR: Householder QR for m ≥ n; Solve gives least squares, IsFullRank
//     tests the diagonal of R against WithSingularTol.
//   - NewLU: partial pivoting; Solve, Det, IsSingular.
//
// See the examples in this package and examples/least_squares for usage patterns.
package matrix
