// SPDX-License-Identifier: MIT

package points

import "fmt"

// PointSet is an ordered collection of points.
// The zero value is an empty, ready-to-use set. It is not safe for
// concurrent use; the owning session serializes access.
type PointSet struct {
	items []Point
}

// NewPointSet returns a set holding a copy of pts in the given order.
func NewPointSet(pts ...Point) *PointSet {
	s := &PointSet{items: make([]Point, 0, len(pts))}
	s.items = append(s.items, pts...)

	return s
}

// Len returns the number of points.
func (s *PointSet) Len() int { return len(s.items) }

// Add appends p at the end of the set.
func (s *PointSet) Add(p Point) { s.items = append(s.items, p) }

// At returns the i-th point in insertion order.
func (s *PointSet) At(i int) (Point, error) {
	if i < 0 || i >= len(s.items) {
		return Point{}, fmt.Errorf("At(%d): %w", i, ErrOutOfRange)
	}

	return s.items[i], nil
}

// RemoveAt deletes the i-th point, preserving the order of the rest.
func (s *PointSet) RemoveAt(i int) (Point, error) {
	if i < 0 || i >= len(s.items) {
		return Point{}, fmt.Errorf("RemoveAt(%d): %w", i, ErrOutOfRange)
	}
	p := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)

	return p, nil
}

// Remove deletes the first point equal to p.
func (s *PointSet) Remove(p Point) error {
	for i, q := range s.items {
		if q == p {
			_, err := s.RemoveAt(i)
			return err
		}
	}

	return fmt.Errorf("Remove%s: %w", p, ErrNotFound)
}

// Points returns a copy of the points in insertion order.
func (s *PointSet) Points() []Point {
	out := make([]Point, len(s.items))
	copy(out, s.items)

	return out
}

// XY splits the set into parallel x and y slices (fresh copies).
func (s *PointSet) XY() (xs, ys []float64) {
	xs = make([]float64, len(s.items))
	ys = make([]float64, len(s.items))
	for i, p := range s.items {
		xs[i], ys[i] = p.X, p.Y
	}

	return xs, ys
}

// Bounds returns the smallest and largest x in the set.
// Errors: ErrEmptySet.
func (s *PointSet) Bounds() (minX, maxX float64, err error) {
	if len(s.items) == 0 {
		return 0, 0, ErrEmptySet
	}
	minX, maxX = s.items[0].X, s.items[0].X
	for _, p := range s.items[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
	}

	return minX, maxX, nil
}

// Clone returns an independent copy of the set.
func (s *PointSet) Clone() *PointSet { return NewPointSet(s.items...) }
