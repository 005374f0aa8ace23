// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the interpolation
// pipeline: dense Gaussian elimination with partial pivoting and a
// matrix-vector product for residual checks.
//
// Purpose:
//   - Declare canonical kernels and the shared constants/operation tags.
//
// Notes:
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for back substitution and dot products.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot during elimination.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSolve       = "Solve"
	opMatVec      = "MatVec"
	opVandermonde = "Vandermonde"
	opSystem      = "NewLinearSystem"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m·x for an r×c matrix and a length-c vector.
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateVecLen(x, m.Cols()).
//   - Stage 2: *Dense fast-path over the flat buffer; generic At fallback.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i→j accumulation order.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, rows)
	var (
		i, j int
		sum  float64
	)
	// Fast path: direct flat access.
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			sum = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				sum += d.data[base+j] * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	// Fallback: interface path.
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		sum = ZeroSum
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Solve computes c such that A·c = b by Gaussian elimination with partial
// pivoting followed by back substitution.
// A and b are consumed in place: rows are swapped and overwritten, so pass
// Clone()/copies when the originals are still needed.
//
// Implementation:
//   - Stage 1: ValidateSystem(a, b); optional finiteness check of the inputs.
//   - Stage 2: for each pivot column i = 0..n-1:
//     scan rows i..n-1 for the largest |a[r][i]| (strict '>' keeps the lowest
//     index on ties); fail with ErrSingular when that magnitude <= tol;
//     swap the full pivot row into position i in both a and b;
//     for each row j > i subtract factor=a[j][i]/a[i][i] times row i over
//     columns >= i, and the same multiple of b[i] from b[j].
//   - Stage 3: back-substitute from n-1 down to 0:
//     c[i] = (b[i] - Σ_{j>i} a[i][j]·c[j]) / a[i][i].
//   - Stage 4: reject a non-finite solution as ErrSingular.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - ErrNaNInf (non-finite input under the numeric policy).
//   - ErrSingular (zero pivot, or overflow into NaN/Inf).
//
// Determinism:
//   - Fixed loop orders and tie-break; identical inputs give bit-identical output.
//
// Complexity:
//   - Time O(n^3), Space O(n) for the solution.
func Solve(a *Dense, b []float64, opts ...Option) ([]float64, error) {
	if a == nil {
		return nil, matrixErrorf(opSolve, ErrNilMatrix)
	}
	if err := ValidateSystem(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(a.data); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
		if err := ValidateFinite(b); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
	}

	n := a.r
	data := a.data
	var (
		i, j, k      int
		p            int     // pivot row
		best, cand   float64 // pivot magnitudes
		pivot        float64
		factor, sum  float64
		baseI, baseJ int
	)

	// Forward elimination.
	for i = 0; i < n; i++ {
		p = i
		best = math.Abs(data[i*n+i])
		for j = i + 1; j < n; j++ {
			cand = math.Abs(data[j*n+i])
			if cand > best {
				p, best = j, cand
			}
		}
		if best <= o.pivotTol {
			return nil, matrixErrorf(opSolve, fmt.Errorf("pivot column %d: %w", i, ErrSingular))
		}
		if p != i {
			_ = a.SwapRows(i, p) // indices are in range by construction
			b[i], b[p] = b[p], b[i]
		}

		baseI = i * n
		pivot = data[baseI+i]
		for j = i + 1; j < n; j++ {
			baseJ = j * n
			factor = data[baseJ+i] / pivot
			b[j] -= factor * b[i]
			for k = i; k < n; k++ {
				data[baseJ+k] -= factor * data[baseI+k]
			}
		}
	}

	// Back substitution.
	solution := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		baseI = i * n
		for j = i + 1; j < n; j++ {
			sum += data[baseI+j] * solution[j]
		}
		solution[i] = (b[i] - sum) / data[baseI+i]
	}

	if err := ValidateFinite(solution); err != nil {
		return nil, matrixErrorf(opSolve, fmt.Errorf("%w: %w", ErrSingular, err))
	}

	return solution, nil
}
