// Package points holds the sample pairs an interpolating polynomial is fitted to.
//
// A PointSet keeps insertion order for display purposes only; the fitted
// polynomial does not depend on it. Distinct x values are the caller's
// responsibility: a repeated x is accepted here and surfaces later as a
// singular system.
//
// ParseFloat / ParsePoint convert user-entered text into finite float64
// values using '.' as the decimal separator regardless of host locale.
package points
