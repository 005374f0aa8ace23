// Package interp fits the unique polynomial of degree n-1 that passes through
// n points with pairwise-distinct x values.
//
// Pipeline:
//
//	PointSet → matrix.NewLinearSystem (Vandermonde) → matrix.Solve → poly.Coefficients
//
// The coefficient vector is in ascending power order and always has length n.
// A repeated x value (or any other zero pivot) is reported as
// ErrSingularSystem; the pipeline never returns NaN or Inf coefficients.
//
// Performance:
//
//   - Time:   O(n³) elimination
//   - Memory: O(n²) for the transient system
package interp
