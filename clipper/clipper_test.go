package clipper

import (
	"math"
	"testing"

	"github.com/osuushi/skeleton/geom"
	"github.com/osuushi/skeleton/internal/throw"
	"github.com/osuushi/skeleton/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(left, bottom, right, top float64) *shape.Path {
	return shape.FromPoints([]geom.Vector2{
		geom.V(left, bottom), geom.V(right, bottom), geom.V(right, top), geom.V(left, top),
	}, true)
}

// Unsigned shoelace area
func area(p *shape.Path) float64 {
	points := p.Points()
	sum := 0.0
	for i, a := range points {
		b := points[(i+1)%len(points)]
		sum += a.Cross(b)
	}
	return math.Abs(sum) / 2
}

func TestUnion_AdjacentBoxes(t *testing.T) {
	result, err := Union(box(0, 0, 0.5, 1), box(0.5, 0, 1, 1))
	require.NoError(t, err)
	require.Len(t, result, 1)

	path := result[0]
	assert.True(t, path.IsClosed())
	assert.True(t, path.IsContiguous())
	assert.InDelta(t, 1, area(path), 1e-6)
	bounds := path.BoundingBox()
	assert.InDelta(t, 0, bounds.Left(), 1e-6)
	assert.InDelta(t, 1, bounds.Right(), 1e-6)
}

func TestClip_OverlappingBoxes(t *testing.T) {
	a, b := box(0, 0, 2, 2), box(1, 1, 3, 3)
	for _, test := range []struct {
		mode Mode
		area float64
		len  int
	}{
		{IntersectionMode, 1, 4},
		{UnionMode, 7, 8},
		{DifferenceMode, 3, 6},
		{NotMode, 3, 6},
	} {
		t.Run(test.mode.String(), func(t *testing.T) {
			result, err := Clip(test.mode, a, b)
			require.NoError(t, err)
			require.Len(t, result, 1)
			assert.True(t, result[0].IsClosed())
			assert.InDelta(t, test.area, area(result[0]), 1e-6)
			assert.Equal(t, test.len, result[0].Len())
		})
	}
}

func TestClip_Clockwise(t *testing.T) {
	result, err := Intersection(box(0, 0, 2, 2).Reverse(), box(1, 1, 3, 3))
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.InDelta(t, 1, area(result[0]), 1e-6)
}

func TestClip_Disjoint(t *testing.T) {
	a, b := box(0, 0, 1, 1), box(2, 2, 3, 3)

	result, err := Intersection(a, b)
	require.NoError(t, err)
	assert.Empty(t, result)

	result, err = Union(a, b)
	require.NoError(t, err)
	assert.Len(t, result, 2)

	result, err = Difference(a, b)
	require.NoError(t, err)
	assert.Equal(t, []*shape.Path{a}, result)
}

func TestClip_Nested(t *testing.T) {
	outer, hole := box(0, 0, 4, 4), box(1, 1, 2, 2)

	result, err := Intersection(outer, hole)
	require.NoError(t, err)
	assert.Equal(t, []*shape.Path{hole}, result)

	result, err = Union(outer, hole)
	require.NoError(t, err)
	assert.Equal(t, []*shape.Path{outer}, result)

	result, err = Difference(outer, hole)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.False(t, result[0].IsClockwise())
	assert.True(t, result[1].IsClockwise())

	result, err = Not(outer, hole)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestClip_Coincident(t *testing.T) {
	a := box(0, 0, 1, 1)

	result, err := Union(a, box(0, 0, 1, 1))
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.InDelta(t, 1, area(result[0]), 1e-6)

	result, err = Difference(a, box(0, 0, 1, 1))
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestClip_OpenPath(t *testing.T) {
	open := shape.FromPoints([]geom.Vector2{geom.V(0, 0), geom.V(1, 1)}, false)
	_, err := Union(open, box(0, 0, 1, 1))
	assert.ErrorIs(t, err, ErrOpenPath)
}

func TestRoleTable(t *testing.T) {
	assert.Equal(t, noRole, roleFromEdgeLocations[onEdge][onEdge])
	assert.Equal(t, exit, roleFromEdgeLocations[onEdge][outside])
	assert.Equal(t, entry, roleFromEdgeLocations[onEdge][inside])
	assert.Equal(t, entry, roleFromEdgeLocations[outside][onEdge])
	assert.Equal(t, entryExit, roleFromEdgeLocations[outside][outside])
	assert.Equal(t, entry, roleFromEdgeLocations[outside][inside])
	assert.Equal(t, exit, roleFromEdgeLocations[inside][onEdge])
	assert.Equal(t, exit, roleFromEdgeLocations[inside][outside])
	assert.Equal(t, exitEntry, roleFromEdgeLocations[inside][inside])

	for _, r := range []role{entry, exit, entryExit, exitEntry} {
		assert.Equal(t, r, r.reversed().reversed())
		assert.NotEqual(t, r, r.reversed())
	}
}

func TestLocateEdge_Inconsistent(t *testing.T) {
	a := &vertex{forwardEdge: geom.NewLineSegment(geom.V(0, 0), geom.V(1, 0)), location: inside}
	b := &vertex{forwardEdge: geom.NewLineSegment(geom.V(1, 0), geom.V(0, 0)), location: outside}
	a.next, a.previous, b.next, b.previous = b, b, a, a

	err := func() (err error) {
		defer func() { err = throw.HandlePanicRecover(recover()) }()
		locateEdge(a, box(0, 0, 1, 1))
		return nil
	}()
	assert.ErrorIs(t, err, ErrInconsistentLocations)
}
