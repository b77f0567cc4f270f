package shape

import (
	"testing"

	"github.com/osuushi/skeleton/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func v(x, y float64) geom.Vector2 { return geom.V(x, y) }

func square() *Path {
	return FromPoints([]geom.Vector2{v(0, 0), v(1, 0), v(1, 1), v(0, 1)}, true)
}

func TestPathDerivedValues(t *testing.T) {
	p := square()
	assert.Equal(t, 4, p.Len())
	assert.Equal(t, 4.0, p.Length())
	assert.Equal(t, []float64{0, 1, 2, 3}, p.SegmentOffsets())
	assert.True(t, p.IsClosed())
	assert.True(t, p.IsContiguous())
	assert.False(t, p.IsClockwise())
	assert.True(t, p.Reverse().IsClockwise())
	assert.Equal(t, v(0, 0), p.BoundingBox().Origin())
	assert.Equal(t, v(1, 1), p.BoundingBox().Corner())
	assert.Equal(t, []geom.Vector2{v(0, 0), v(1, 0), v(1, 1), v(0, 1)}, p.Points())

	open := FromPoints([]geom.Vector2{v(0, 0), v(1, 1)}, false)
	assert.False(t, open.IsClosed())
	assert.Equal(t, []geom.Vector2{v(0, 0), v(1, 1)}, open.Points())

	joined := open.Concat(FromPoints([]geom.Vector2{v(1, 1), v(2, 0)}, false))
	assert.Equal(t, 2, joined.Len())
	assert.True(t, joined.IsContiguous())
	assert.Equal(t, v(2, 0), joined.End())
}

func TestPathContainsPoint(t *testing.T) {
	p := square()
	assert.True(t, p.ContainsPoint(v(0.5, 0.5)))
	assert.True(t, p.ContainsPoint(v(0.25, 0.75)))
	assert.False(t, p.ContainsPoint(v(1.5, 0.5)))
	assert.False(t, p.ContainsPoint(v(-0.5, 0.5)))

	// The ray passes exactly through the vertex at (1, 0.5).
	diamond := FromPoints([]geom.Vector2{v(0.5, 0), v(1, 0.5), v(0.5, 1), v(0, 0.5)}, true)
	assert.True(t, diamond.ContainsPoint(v(0.5, 0.5)))
	assert.False(t, diamond.ContainsPoint(v(0.9, 0.9)))

	// On the boundary counts as inside
	assert.True(t, p.ContainsPoint(v(0, 0.5)))

	assert.False(t, FromPoints([]geom.Vector2{v(0, 0), v(1, 0)}, false).ContainsPoint(v(0.5, 0)))
}

func TestPathOffsets(t *testing.T) {
	p := square()
	offset, ok := p.OffsetOf(v(1.2, 0.5))
	require.True(t, ok)
	assert.InDelta(t, 1.5, offset, 1e-9)
	assert.Equal(t, v(1, 0.5), p.PositionOf(1.5))
	assert.Equal(t, v(0, 1), p.DirectionOf(1.5))
	assert.Equal(t, v(-1, 0), p.DirectionOf(2))
	assert.Equal(t, v(1, 0.25), p.ClosestPointTo(v(3, 0.25)))
}

func TestPathCut(t *testing.T) {
	p := square()

	t.Run("within one segment", func(t *testing.T) {
		cut, err := p.Cut(0.25, 0.75)
		require.NoError(t, err)
		require.Equal(t, 1, cut.Len())
		assert.True(t, cut.Start().RoughlyEqual(v(0.25, 0)))
		assert.True(t, cut.End().RoughlyEqual(v(0.75, 0)))
	})

	t.Run("across a corner", func(t *testing.T) {
		cut, err := p.Cut(0.5, 2.5)
		require.NoError(t, err)
		require.Equal(t, 3, cut.Len())
		assert.True(t, cut.Start().RoughlyEqual(v(0.5, 0)))
		assert.True(t, cut.End().RoughlyEqual(v(0.5, 1)))
		assert.True(t, cut.IsContiguous())
		assert.InDelta(t, 2, cut.Length(), 1e-9)
	})
}

func TestPathMakeContiguousAndWeld(t *testing.T) {
	gappy := NewPath([]geom.Segment{
		geom.NewLineSegment(v(0, 0), v(1, 0)),
		geom.NewLineSegment(v(1, 0.5), v(0, 0.5)),
	})
	assert.False(t, gappy.IsContiguous())

	bridged := gappy.MakeContiguous(false)
	assert.Equal(t, 3, bridged.Len())
	assert.True(t, bridged.IsContiguous())
	assert.False(t, bridged.IsClosed())

	looped := gappy.MakeContiguous(true)
	assert.Equal(t, 4, looped.Len())
	assert.True(t, looped.IsClosed())

	nearly := NewPath([]geom.Segment{
		geom.NewLineSegment(v(0, 0), v(1, 0.01)),
		geom.NewLineSegment(v(1, 0), v(1, 1)),
		geom.NewLineSegment(v(1, 1), v(1, 1.005)),
		geom.NewLineSegment(v(1, 1.01), v(0, 0.01)),
	})
	welded := nearly.Weld(geom.Thickness)
	require.Equal(t, 3, welded.Len())
	assert.True(t, welded.IsContiguous())
	assert.True(t, welded.IsClosed())
	assert.Equal(t, v(1, 0), welded.Segments[0].End())
}

func TestPathIntersections(t *testing.T) {
	cross := FromPoints([]geom.Vector2{v(0.5, -1), v(0.5, 2)}, false)
	found := square().Intersections(cross)
	require.Len(t, found, 2)
	assert.InDelta(t, 0.5, found[0].U, 1e-9)
	assert.InDelta(t, 2.5, found[1].U, 1e-9)
	for _, i := range found {
		assert.Less(t, i.V, 1.0)
	}
}

func TestPather(t *testing.T) {
	t.Run("closing", func(t *testing.T) {
		p, err := NewPather(v(0, 0)).LineTo(v(1, 0)).LineTo(v(1, 1)).Close()
		require.NoError(t, err)
		assert.True(t, p.IsClosed())
		assert.Equal(t, 3, p.Len())
	})

	t.Run("curves", func(t *testing.T) {
		p, err := NewPather(v(0, 0)).LineTo(v(1, 0)).CurveTo(v(1, 1)).Path()
		require.NoError(t, err)
		require.Equal(t, 2, p.Len())
		assert.Equal(t, geom.KindCurve, p.Segments[1].Kind())
		assert.True(t, p.IsContiguous())
	})

	t.Run("curve without direction", func(t *testing.T) {
		_, err := NewPather(v(0, 0)).CurveTo(v(1, 1)).LineTo(v(2, 2)).Path()
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := NewPather(v(0, 0)).Close()
		assert.ErrorIs(t, err, ErrEmptyPath)
	})
}
