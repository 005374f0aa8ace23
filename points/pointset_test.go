package points_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-interp/points"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPointSet_AddOrder keeps insertion order.
func TestPointSet_AddOrder(t *testing.T) {
	var s points.PointSet
	assert.Equal(t, 0, s.Len())

	s.Add(points.Point{X: 3, Y: 1})
	s.Add(points.Point{X: -1, Y: 2})
	s.Add(points.Point{X: 2, Y: 0})

	require.Equal(t, 3, s.Len())
	assert.Equal(t, []points.Point{{X: 3, Y: 1}, {X: -1, Y: 2}, {X: 2, Y: 0}}, s.Points())

	xs, ys := s.XY()
	assert.Equal(t, []float64{3, -1, 2}, xs)
	assert.Equal(t, []float64{1, 2, 0}, ys)
}

// TestPointSet_Remove removes the first match and keeps the rest in order.
func TestPointSet_Remove(t *testing.T) {
	s := points.NewPointSet(
		points.Point{X: 1, Y: 1},
		points.Point{X: 2, Y: 2},
		points.Point{X: 1, Y: 1},
	)

	require.NoError(t, s.Remove(points.Point{X: 1, Y: 1}))
	assert.Equal(t, []points.Point{{X: 2, Y: 2}, {X: 1, Y: 1}}, s.Points())

	err := s.Remove(points.Point{X: 9, Y: 9})
	assert.ErrorIs(t, err, points.ErrNotFound)
	assert.Equal(t, 2, s.Len())
}

// TestPointSet_IndexAccess covers At/RemoveAt and their bounds.
func TestPointSet_IndexAccess(t *testing.T) {
	s := points.NewPointSet(points.Point{X: 1}, points.Point{X: 2}, points.Point{X: 3})

	p, err := s.At(1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.X)

	removed, err := s.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, removed.X)
	assert.Equal(t, 2, s.Len())

	_, err = s.At(2)
	assert.ErrorIs(t, err, points.ErrOutOfRange)
	_, err = s.RemoveAt(-1)
	assert.ErrorIs(t, err, points.ErrOutOfRange)
}

// TestPointSet_Bounds returns min/max x and fails on an empty set.
func TestPointSet_Bounds(t *testing.T) {
	var empty points.PointSet
	_, _, err := empty.Bounds()
	assert.ErrorIs(t, err, points.ErrEmptySet)

	s := points.NewPointSet(points.Point{X: 0.5}, points.Point{X: -2}, points.Point{X: 7})
	lo, hi, err := s.Bounds()
	require.NoError(t, err)
	assert.Equal(t, -2.0, lo)
	assert.Equal(t, 7.0, hi)
}

// TestPointSet_CopiesAreIndependent guards Points/Clone/NewPointSet against aliasing.
func TestPointSet_CopiesAreIndependent(t *testing.T) {
	src := []points.Point{{X: 1, Y: 1}}
	s := points.NewPointSet(src...)
	src[0].X = 99

	pts := s.Points()
	pts[0].Y = 42

	c := s.Clone()
	c.Add(points.Point{X: 5})

	assert.Equal(t, []points.Point{{X: 1, Y: 1}}, s.Points())
	assert.Equal(t, 2, c.Len())
}
