// SPDX-License-Identifier: MIT

package export

import (
	"strings"

	"github.com/katalvlaran/lvlath-interp/points"
	"github.com/katalvlaran/lvlath-interp/poly"
)

// Document skeleton. The scatter table lists one "x y" pair per line; the
// curve is an explicit function of x over the sample domain.
const (
	preamble = "\\documentclass[11pt]{article}\n" +
		"\\usepackage{tikz}\n" +
		"\\usepackage{pgfplots}\n" +
		"\\pgfplotsset{compat=1.12}\n" +
		"\\usepgfplotslibrary{fillbetween}\n" +
		"\\begin{document}\n" +
		"\t\\begin{tikzpicture}\n" +
		"\t\t\\pgfplotsset{scale only axis,}\n" +
		"\t\t\\begin{axis}[xlabel=$x$, ylabel=$y$, samples=100]\n"
	scatterOpen = "\\addplot [only marks] table {\n"
	plotClose   = "};\n"
	curveOpen   = "\\addplot[][domain="
	curveExpr   = "]{"
	postamble   = "\t\t\\end{axis}\n" +
		"\t\\end{tikzpicture}\n" +
		"\\end{document}\n"
)

// Render builds the pgfplots document for ps and c.
//
// Errors:
//   - ErrNoPoints       - ps is nil or empty.
//   - ErrNoCoefficients - c is empty.
func Render(ps *points.PointSet, c poly.Coefficients) (string, error) {
	if ps == nil || ps.Len() == 0 {
		return "", ErrNoPoints
	}
	if len(c) == 0 {
		return "", ErrNoCoefficients
	}
	lo, hi, err := ps.Bounds()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(preamble)

	sb.WriteString(scatterOpen)
	for _, p := range ps.Points() {
		sb.WriteString(poly.FormatFloat(p.X))
		sb.WriteByte(' ')
		sb.WriteString(poly.FormatFloat(p.Y))
		sb.WriteByte('\n')
	}
	sb.WriteString(plotClose)

	sb.WriteString(curveOpen)
	sb.WriteString(Domain(lo, hi))
	sb.WriteString(curveExpr)
	sb.WriteString(poly.Format(c))
	sb.WriteString(plotClose)

	sb.WriteString(postamble)

	return sb.String(), nil
}

// Domain renders the pgfplots domain "lo:hi".
func Domain(lo, hi float64) string {
	return poly.FormatFloat(lo) + ":" + poly.FormatFloat(hi)
}
