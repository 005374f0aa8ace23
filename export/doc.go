// Package export turns a point set and its interpolating polynomial into a
// pgfplots (LaTeX) document: a scatter plot of the samples and the curve
// over [min x, max x].
//
// Render is a pure function from (points, coefficients) to text. Every number
// goes through poly.FormatFloat, so the document uses '.' as the decimal
// separator regardless of host locale.
//
// FileExporter writes the document to a fixed, well-known location
// (interpolation.tex in the user's Desktop by default).
package export
