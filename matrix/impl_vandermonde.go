// SPDX-License-Identifier: MIT

// Package matrix - Vandermonde system construction.
//
// Purpose:
//   - Express "evaluate an unknown polynomial at each sample x" as A·c = b,
//     with A[i][j] = x_i^j (ascending powers) and b[i] = y_i.
//
// Notes:
//   - Distinctness of x is NOT validated here; a repeated x yields a singular
//     system that Solve reports as ErrSingular.

package matrix

// Vandermonde builds the n×n matrix V[i][j] = xs[i]^j for n = len(xs).
// Implementation:
//   - Stage 1: validate len(xs) > 0.
//   - Stage 2: for each row, start at 1 (x^0, also for x == 0) and multiply
//     by x once per column.
//
// Errors:
//   - ErrInvalidDimensions (empty input).
//   - ErrNaNInf (non-finite x or overflowing power under the numeric policy).
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func Vandermonde(xs []float64) (*Dense, error) {
	n := len(xs)
	v, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opVandermonde, err)
	}

	var (
		i, j  int
		power float64
	)
	for i = 0; i < n; i++ {
		power = 1
		for j = 0; j < n; j++ {
			if err = v.Set(i, j, power); err != nil {
				return nil, matrixErrorf(opVandermonde, err)
			}
			power *= xs[i]
		}
	}

	return v, nil
}

// NewLinearSystem pairs Vandermonde(xs) with a private copy of ys as the rhs.
// Errors:
//   - ErrNilMatrix (nil ys), ErrDimensionMismatch (len(xs) != len(ys)),
//     plus anything Vandermonde reports.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func NewLinearSystem(xs, ys []float64) (*LinearSystem, error) {
	if err := ValidateVecLen(ys, len(xs)); err != nil {
		return nil, matrixErrorf(opSystem, err)
	}
	a, err := Vandermonde(xs)
	if err != nil {
		return nil, matrixErrorf(opSystem, err)
	}
	b := make([]float64, len(ys))
	copy(b, ys)

	return &LinearSystem{A: a, B: b}, nil
}
