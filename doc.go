// Package lvlath is a small toolkit for polynomial interpolation: enter
// sample points, fit the unique polynomial through them, evaluate and
// differentiate it, and export a pgfplots figure of the result.
//
// The work is split across focused subpackages:
//
//	matrix/   - dense row-major matrix, Vandermonde systems, Gaussian
//	            elimination with partial pivoting
//	points/   - Point, locale-invariant parsing, ordered PointSet
//	poly/     - coefficient vectors: Evaluate, Differentiate, Format
//	interp/   - fit a PointSet to poly.Coefficients
//	export/   - pgfplots LaTeX rendering and the file exporter
//	config/   - YAML + environment configuration
//	session/  - the stateful workflow (add, select, remove, calculate, ...)
//	cmd/interp - line-oriented terminal front end
//
// Quick example:
//
//	ps := points.NewPointSet(
//		points.Point{X: 0, Y: 1},
//		points.Point{X: 1, Y: 3},
//		points.Point{X: 2, Y: 7},
//	)
//	c, _ := interp.Interpolate(ps) // [1 1 1]
//	fmt.Println(poly.Format(c))    // 1*x^2+1*x^1+1*x^0
//	fmt.Println(poly.Evaluate(c, 3)) // 13
//
// A fit needs at least two points with pairwise distinct x. Duplicate x
// values make the Vandermonde matrix singular, which is reported as
// interp.ErrSingularSystem rather than as NaN coefficients.
package lvlath
