// SPDX-License-Identifier: MIT

package interp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath-interp/matrix"
	"github.com/katalvlaran/lvlath-interp/points"
	"github.com/katalvlaran/lvlath-interp/poly"
)

// MinPoints is the smallest point count Interpolate accepts.
const MinPoints = 2

// Interpolate fits the interpolating polynomial through every point of ps.
//
// Algorithm Outline:
//  1. Require ps.Len() >= MinPoints.
//  2. Build A[i][j] = x_i^j, b[i] = y_i.
//  3. Solve A·c = b by Gaussian elimination with partial pivoting.
//
// opts are forwarded to matrix.Solve (e.g. matrix.WithPivotTolerance).
//
// Errors:
//   - ErrInsufficientPoints - fewer than two points (nil ps counts as empty).
//   - ErrSingularSystem     - zero pivot; wraps matrix.ErrSingular.
//   - matrix errors         - e.g. ErrNaNInf when x^j overflows.
func Interpolate(ps *points.PointSet, opts ...matrix.Option) (poly.Coefficients, error) {
	if ps == nil {
		return nil, ErrInsufficientPoints
	}
	xs, ys := ps.XY()

	return InterpolateXY(xs, ys, opts...)
}

// InterpolateXY is Interpolate over parallel x/y slices. Inputs are not mutated.
func InterpolateXY(xs, ys []float64, opts ...matrix.Option) (poly.Coefficients, error) {
	if len(xs) < MinPoints {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientPoints, len(xs))
	}
	sys, err := matrix.NewLinearSystem(xs, ys)
	if err != nil {
		return nil, err
	}
	c, err := sys.Solve(opts...)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, fmt.Errorf("%w: %w", ErrSingularSystem, err)
		}
		return nil, err
	}

	return poly.Coefficients(c), nil
}

// Residual returns max_i |P(x_i) - y_i| over the points of ps.
// An empty or nil set yields 0.
func Residual(ps *points.PointSet, c poly.Coefficients) float64 {
	if ps == nil {
		return 0
	}
	var worst float64
	for _, p := range ps.Points() {
		worst = math.Max(worst, math.Abs(poly.Evaluate(c, p.X)-p.Y))
	}

	return worst
}
