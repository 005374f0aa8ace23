// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense kernels.
// This file contains ONLY the public Matrix interface and the LinearSystem
// pair consumed by Solve. Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// LinearSystem is the transient pair (A, B) of the equation A·c = B.
//   - A is square (n×n), B has length n.
//   - Both are owned by the system and consumed destructively by Solve:
//     rows are swapped and overwritten during elimination.
type LinearSystem struct {
	A *Dense    // coefficient matrix, row-major
	B []float64 // right-hand side
}

// Size returns n, the number of equations (and unknowns).
func (s *LinearSystem) Size() int {
	return len(s.B)
}

// Solve runs Gaussian elimination with partial pivoting over the system.
// After the call A is upper-triangular and B is the eliminated rhs; reuse
// of the same LinearSystem is not meaningful.
func (s *LinearSystem) Solve(opts ...Option) ([]float64, error) {
	if s == nil || s.A == nil {
		return nil, matrixErrorf(opSolve, ErrNilMatrix)
	}

	return Solve(s.A, s.B, opts...)
}
