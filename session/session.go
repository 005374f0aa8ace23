// SPDX-License-Identifier: MIT

package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/lvlath-interp/export"
	"github.com/katalvlaran/lvlath-interp/interp"
	"github.com/katalvlaran/lvlath-interp/matrix"
	"github.com/katalvlaran/lvlath-interp/points"
	"github.com/katalvlaran/lvlath-interp/poly"
)

const noSelection = -1

// Session is the state of one interpolation workflow.
type Session struct {
	mu sync.Mutex

	points   *points.PointSet
	selected int               // index into points, noSelection if none
	coeffs   poly.Coefficients // last successful fit, nil before the first
	stale    bool              // points changed since coeffs were computed

	exporter   export.Exporter
	solverOpts []matrix.Option
	logger     l.Wrapper
}

// Calculation is the outcome of a successful Calculate.
type Calculation struct {
	Coefficients poly.Coefficients
	ExportPath   string // empty when no exporter is configured
}

// Evaluation is P(X) = Y for the current fit.
type Evaluation struct {
	X, Y float64
}

// String renders "P(x) = y" with locale-invariant numbers.
func (e Evaluation) String() string {
	return "P(" + poly.FormatFloat(e.X) + ") = " + poly.FormatFloat(e.Y)
}

// New creates an empty session.
func New(opts ...Option) *Session {
	s := &Session{
		points:   &points.PointSet{},
		selected: noSelection,
		logger:   l.NewNopLoggerWrapper(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.logger = s.logger.WithFields(l.StringField(l.ClsKey, "Session"))

	return s
}

// touch records a point-set mutation. Caller holds mu.
func (s *Session) touch() {
	if s.coeffs != nil {
		s.stale = true
	}
}

// AddPoint parses x and y text and appends the point.
// On ErrParse nothing changes.
func (s *Session) AddPoint(xText, yText string) (points.Point, error) {
	p, err := points.ParsePoint(xText, yText)
	if err != nil {
		return points.Point{}, err
	}
	s.Add(p)

	return p, nil
}

// Add appends an already-parsed point.
func (s *Session) Add(p points.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.points.Add(p)
	s.touch()
	s.logger.WithFields(l.StringField("point", p.String()), l.IntField("count", s.points.Len())).Debug("point added")
}

// Points returns a copy of the points in insertion order.
func (s *Session) Points() []points.Point {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.points.Points()
}

// Select marks the i-th point as selected.
func (s *Session) Select(i int) (points.Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.points.At(i)
	if err != nil {
		return points.Point{}, err
	}
	s.selected = i

	return p, nil
}

// ClearSelection drops the current selection, if any.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = noSelection
}

// Selected returns the selected point and whether there is one.
func (s *Session) Selected() (points.Point, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == noSelection {
		return points.Point{}, false
	}
	p, err := s.points.At(s.selected)

	return p, err == nil
}

// RemoveSelected deletes the selected point and clears the selection.
// Errors: ErrNoSelection.
func (s *Session) RemoveSelected() (points.Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == noSelection {
		return points.Point{}, ErrNoSelection
	}
	p, err := s.points.RemoveAt(s.selected)
	if err != nil {
		return points.Point{}, err
	}
	s.selected = noSelection
	s.touch()
	s.logger.WithFields(l.StringField("point", p.String()), l.IntField("count", s.points.Len())).Debug("point removed")

	return p, nil
}

// Calculate fits the polynomial through the current points and, when an
// exporter is configured, publishes the plot.
//
// Errors:
//   - ErrInsufficientPoints, ErrSingularSystem: nothing changes; a previous
//     fit (possibly stale) is kept.
//   - ErrExport: the new fit IS stored and returned; only publishing failed.
func (s *Session) Calculate() (Calculation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := interp.Interpolate(s.points, s.solverOpts...)
	if err != nil {
		s.logger.WithFields(l.ErrorField(err), l.IntField("count", s.points.Len())).Error("calculate failed")

		return Calculation{}, err
	}
	s.coeffs = c
	s.stale = false
	s.logger.WithFields(l.IntField("degree", c.Degree()), l.StringField("poly", c.String())).Debug("calculated")

	res := Calculation{Coefficients: c.Clone()}
	if s.exporter == nil {
		return res, nil
	}
	if res.ExportPath, err = s.exporter.Export(s.points.Clone(), c.Clone()); err != nil {
		s.logger.WithFields(l.ErrorField(err)).Error("export failed")

		return res, fmt.Errorf("%w: %w", ErrExport, err)
	}

	return res, nil
}

// current returns the fit or ErrNotCalculated. Caller holds mu.
func (s *Session) current() (poly.Coefficients, error) {
	if s.coeffs == nil {
		return nil, ErrNotCalculated
	}
	if s.stale {
		return nil, fmt.Errorf("%w: points changed since the last calculation", ErrNotCalculated)
	}

	return s.coeffs, nil
}

// Coefficients returns a copy of the current fit.
func (s *Session) Coefficients() (poly.Coefficients, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.current()
	if err != nil {
		return nil, err
	}

	return c.Clone(), nil
}

// Stale reports whether the points changed after the last successful fit.
func (s *Session) Stale() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stale
}

// Evaluate parses x and returns P(x).
// The fit is checked before parsing, so a missing calculation is reported
// first.
func (s *Session) Evaluate(xText string) (Evaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.current()
	if err != nil {
		return Evaluation{}, err
	}
	x, err := points.ParseFloat(xText)
	if err != nil {
		return Evaluation{}, err
	}

	return Evaluation{X: x, Y: poly.Evaluate(c, x)}, nil
}

// Derivative returns the k-th derivative of the current fit.
func (s *Session) Derivative(k int) (poly.Coefficients, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.current()
	if err != nil {
		return nil, err
	}

	return poly.DifferentiateN(c, k)
}

// FirstDerivative returns dP/dx of the current fit.
func (s *Session) FirstDerivative() (poly.Coefficients, error) { return s.Derivative(1) }

// SecondDerivative returns d²P/dx² of the current fit.
func (s *Session) SecondDerivative() (poly.Coefficients, error) { return s.Derivative(2) }

// Message maps an error from any Session method to the text shown to the user.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrParse):
		return "Invalid input. Please enter valid numbers."
	case errors.Is(err, ErrNoSelection):
		return "No point selected. Please select a point to remove."
	case errors.Is(err, points.ErrOutOfRange):
		return "No such point."
	case errors.Is(err, ErrInsufficientPoints):
		return "At least two points are required for interpolation."
	case errors.Is(err, ErrSingularSystem):
		return "The points do not define a unique polynomial. Remove points with duplicate x values."
	case errors.Is(err, ErrNotCalculated):
		return "Please calculate the interpolation polynomial first."
	case errors.Is(err, ErrExport):
		return "Calculation complete, but the LaTeX file could not be saved: " + err.Error()
	default:
		return err.Error()
	}
}
