// Package poly implements the algebra of a real polynomial stored as its
// coefficient vector in ascending power order: c[0] + c[1]·x + … + c[n-1]·x^(n-1).
//
// ✨ Key features:
//   - Evaluate: left-to-right accumulation with a running power of x
//   - Differentiate / DifferentiateN: coefficient-vector derivatives
//   - Format: descending-power "c*x^k" rendering shared with plot export
//   - FormatFloat: locale-invariant number formatting ('.' separator)
//
// All functions are pure and never mutate their input.
package poly
