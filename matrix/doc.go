// Package matrix offers the dense linear algebra behind polynomial interpolation.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional NaN/Inf rejection policy.
//   - Vandermonde and NewLinearSystem, which turn sample points into the
//     square system A·c = b with A[i][j] = x_i^j and b[i] = y_i.
//   - Solve, Gaussian elimination with partial pivoting and back
//     substitution. A zero pivot is reported as ErrSingular instead of
//     leaking NaN/Inf into the solution.
//   - MatVec for residual checks.
//
// Systems are small (user-entered points) and dense, so O(n²) memory and
// O(n³) elimination are acceptable.
//
// See example_test.go for usage patterns.
package matrix
