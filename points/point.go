// SPDX-License-Identifier: MIT

package points

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/katalvlaran/lvlath-interp/poly"
)

// Point is an immutable sample (X, Y). "Editing" a point is remove-then-add.
type Point struct {
	X, Y float64
}

// String renders the point as "(x, y)" with locale-invariant numbers.
func (p Point) String() string {
	return "(" + poly.FormatFloat(p.X) + ", " + poly.FormatFloat(p.Y) + ")"
}

// ParseFloat converts user text into a finite float64.
// Surrounding whitespace is ignored; '.' is the only decimal separator.
// Errors: ErrParse for empty, malformed or non-finite (NaN/Inf) input.
func ParseFloat(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrParse)
	}
	v, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, text)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrParse, text)
	}

	return v, nil
}

// ParsePoint parses both coordinates; nothing is returned unless both succeed.
func ParsePoint(xText, yText string) (Point, error) {
	x, err := ParseFloat(xText)
	if err != nil {
		return Point{}, fmt.Errorf("x: %w", err)
	}
	y, err := ParseFloat(yText)
	if err != nil {
		return Point{}, fmt.Errorf("y: %w", err)
	}

	return Point{X: x, Y: y}, nil
}
