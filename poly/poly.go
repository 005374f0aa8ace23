// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Formatting literals shared with the plot exporter.
const (
	termVar  = "*x^"
	termPlus = "+"
	zeroPoly = "0"
)

// Scientific notation is used outside [sciLow, sciHigh) so that tiny round-off
// coefficients and huge values stay short.
const (
	sciLow  = 1e-4
	sciHigh = 1e15
)

// Coefficients is a polynomial in ascending power order: c[i] multiplies x^i.
type Coefficients []float64

// Degree returns len(c)-1, or -1 for the empty (zero) polynomial.
func (c Coefficients) Degree() int { return len(c) - 1 }

// Clone returns an independent copy.
func (c Coefficients) Clone() Coefficients {
	out := make(Coefficients, len(c))
	copy(out, c)

	return out
}

// String renders the polynomial with Format.
func (c Coefficients) String() string { return Format(c) }

// Evaluate returns Σ c[i]·x^i.
// Terms are accumulated left to right (ascending powers) with a running power
// of x; the empty polynomial evaluates to 0.
// Complexity: O(n).
func Evaluate(c Coefficients, x float64) float64 {
	var (
		result float64
		power  = 1.0
	)
	for i, ci := range c {
		result += ci * power
		if i < len(c)-1 {
			power *= x
		}
	}

	return result
}

// Differentiate returns the coefficients of dP/dx: out[i] = c[i+1]·(i+1).
// A constant (length 1) yields the empty vector.
// Errors: ErrNothingToDifferentiate (wraps ErrInvalidArgument) for an empty input.
// Complexity: O(n).
func Differentiate(c Coefficients) (Coefficients, error) {
	if len(c) == 0 {
		return nil, ErrNothingToDifferentiate
	}
	out := make(Coefficients, len(c)-1)
	for i := range out {
		out[i] = c[i+1] * float64(i+1)
	}

	return out, nil
}

// DifferentiateN applies Differentiate k times; k == 0 returns a copy.
// Errors: ErrInvalidArgument for k < 0; ErrNothingToDifferentiate when the
// vector runs out before k derivatives were taken.
func DifferentiateN(c Coefficients, k int) (Coefficients, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: negative derivative order %d", ErrInvalidArgument, k)
	}
	out := c.Clone()
	var err error
	for ; k > 0; k-- {
		if out, err = Differentiate(out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Format renders c in descending power order as "<coef>*x^<k>" terms.
// A '+' precedes every non-negative coefficient except the leading one;
// negative coefficients carry their own '-'. The x^0 term is always written.
// The empty polynomial renders as "0".
//
// Example: [1, -2, 3] → "3*x^2-2*x^1+1*x^0".
func Format(c Coefficients) string {
	if len(c) == 0 {
		return zeroPoly
	}
	var sb strings.Builder
	for i := len(c) - 1; i >= 0; i-- {
		if i < len(c)-1 && c[i] >= 0 {
			sb.WriteString(termPlus)
		}
		sb.WriteString(FormatFloat(c[i]))
		sb.WriteString(termVar)
		sb.WriteString(strconv.Itoa(i))
	}

	return sb.String()
}

// FormatFloat renders v independent of any locale: '.' is the only decimal
// separator and no grouping is applied. Output is the shortest string that
// parses back to v; magnitudes below 1e-4 or at least 1e15 use e-notation.
// Negative zero renders as "0".
func FormatFloat(v float64) string {
	if v == 0 {
		return zeroPoly
	}
	if abs := math.Abs(v); abs < sciLow || abs >= sciHigh {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
