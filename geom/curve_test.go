package geom

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCurve(t *testing.T, start, direction, end Vector2) Curve {
	s, err := NewCurve(start, direction, end)
	require.NoError(t, err)
	c, ok := s.(Curve)
	require.True(t, ok, "expected a curve, got %T", s)
	return c
}

func TestCurveCircles(t *testing.T) {
	a := mustCurve(t, V(0, 0), V(0, 1), V(2, 0))
	b := mustCurve(t, V(1, 0), V(0, 1), V(3, 0))
	assert.True(t, a.Center().RoughlyEqual(V(1, 0)))
	assert.InDelta(t, 1, a.Radius(), RoughlyEpsilon)
	assert.InDelta(t, math.Pi, a.Length(), RoughlyEpsilon)
	assert.Equal(t, 1, a.Orientation())
	assert.True(t, b.Center().RoughlyEqual(V(2, 0)))
	assert.InDelta(t, 1, b.Radius(), RoughlyEpsilon)
}

func TestCurveDegenerate(t *testing.T) {
	t.Run("flat circle becomes a line", func(t *testing.T) {
		s, err := NewCurve(V(0, 0), V(0, 1), V(0, 1))
		require.NoError(t, err)
		assert.Equal(t, KindLineSegment, s.Kind())
		assert.Equal(t, V(0, 0), s.Start())
		assert.Equal(t, V(0, 1), s.End())
	})

	t.Run("infinite circle", func(t *testing.T) {
		_, err := NewCurve(V(0, 0), V(0, -1), V(0, 1))
		assert.True(t, errors.Is(err, ErrDegenerateCurve))
		assert.Nil(t, CurveIfValid(V(0, 0), V(0, -1), V(0, 1)))
	})
}

func TestCurveOffsets(t *testing.T) {
	cases := []struct {
		name                  string
		start, direction, end Vector2
	}{
		{"quarter clockwise", V(0, 0), V(0, 1), V(1, 1)},
		{"quarter counter-clockwise", V(0, 0), V(1, 0), V(1, 1)},
		{"half", V(0, 0), V(0, 1), V(2, 0)},
		{"shallow", V(0, 0), V(1, 0.2), V(2, 0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			curve := mustCurve(t, c.start, c.direction, c.end)
			assert.InDelta(t, 0, curve.OffsetOf(curve.Start()), 1e-3)
			assert.InDelta(t, curve.Length(), curve.OffsetOf(curve.End()), 1e-3)
			assert.True(t, curve.PositionOf(curve.Length()).Within(curve.End(), 1e-6))
			assert.True(t, curve.DirectionOf(0).RoughlyEqual(c.direction.Normalize()))
			mid := curve.Midpoint()
			assert.InDelta(t, curve.Length()/2, curve.OffsetOf(mid), 1e-3)
			assert.True(t, curve.ContainsPoint(mid))
		})
	}
}

func TestCurveQuarterGeometry(t *testing.T) {
	c := mustCurve(t, V(0, 0), V(0, 1), V(1, 1))
	assert.True(t, c.Center().RoughlyEqual(V(1, 0)))
	assert.InDelta(t, math.Pi/2, c.Length(), RoughlyEpsilon)
	assert.True(t, c.EndDirection().RoughlyEqual(V(1, 0)), "end direction %v", c.EndDirection())
	assert.True(t, c.ClosestPointTo(V(0.5, 0)).RoughlyEqual(V(0, 0)))
	assert.True(t, c.ClosestPointTo(V(2, 2)).RoughlyEqual(V(1, 1)))
	assert.True(t, c.WedgeContainsPoint(V(0.2, 0.6), 0))
	assert.False(t, c.WedgeContainsPoint(V(1.5, 0.5), 0))
}

func TestCurveSubdivideAndReverse(t *testing.T) {
	c := mustCurve(t, V(0, 0), V(0, 1), V(1, 1))
	middle := c.PositionOf(c.Length() / 2)
	head, tail := c.Subdivide(middle)
	assert.True(t, head.Start().RoughlyEqual(V(0, 0)))
	assert.True(t, head.End().RoughlyEqual(middle))
	assert.True(t, tail.Start().RoughlyEqual(middle))
	assert.True(t, tail.End().RoughlyEqual(V(1, 1)))
	assert.InDelta(t, c.Length(), head.Length()+tail.Length(), 1e-6)

	r := c.Reverse()
	assert.True(t, r.Start().RoughlyEqual(V(1, 1)))
	assert.True(t, r.End().RoughlyEqual(V(0, 0)))
	assert.True(t, r.Direction().RoughlyEqual(V(-1, 0)))
	assert.InDelta(t, c.Length(), r.Length(), 1e-6)
}

func TestLineSegmentQueries(t *testing.T) {
	s := NewLineSegment(V(0, 0), V(2, 0))
	assert.Equal(t, 2.0, s.Length())
	assert.Equal(t, V(1, 0), s.Direction())
	assert.Equal(t, 0.5, s.OffsetOf(V(0.5, 3)))
	assert.Equal(t, V(0, 0), s.ClosestPointTo(V(-1, 1)))
	assert.Equal(t, V(2, 0), s.ClosestPointTo(V(3, 1)))
	assert.Equal(t, V(1, 0), s.ClosestPointTo(V(1, 1)))
	assert.Equal(t, 0.25, s.AlphaAt(V(0.5, 0)))
	assert.True(t, s.ContainsPoint(V(1, 0.01)))
	assert.False(t, s.ContainsPoint(V(1, 0.1)))
	assert.True(t, s.RoughlyContainsPoint(V(2, 0)))
	assert.False(t, s.RoughlyContainsPoint(V(2.1, 0)))

	head, tail := s.Subdivide(V(0.5, 0))
	assert.Equal(t, V(0.5, 0), head.End())
	assert.Equal(t, V(0.5, 0), tail.Start())
	assert.Equal(t, V(2, 0), s.Reverse().Start())
	assert.Equal(t, V(1, 1), s.Translate(V(1, 1)).Start())
	assert.Equal(t, V(4, 0), s.Scale(2).End())
	assert.Equal(t, V(0, -1), s.OffsetPerpendicular(1).Start())
}

func TestLineCannotSubdivide(t *testing.T) {
	assert.Panics(t, func() {
		Line{V(0, 0), V(1, 0)}.Subdivide(V(1, 0))
	})
}
