package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, Vector2{}, Vector2{}.Normalize())
	n := V(3, 4).Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
}

func TestCrossAndPerpendicular(t *testing.T) {
	assert.Equal(t, 1.0, V(1, 0).Cross(V(0, 1)))
	assert.Equal(t, -1.0, V(0, 1).Cross(V(1, 0)))
	assert.Equal(t, V(1, 0), V(0, 1).Perpendicular())
	assert.Equal(t, V(3, 1), V(1, 1).ScalePerpendicularAndAdd(V(0, 1), 2))
}

func TestRotate(t *testing.T) {
	r := V(1, 0).Rotate(math.Pi / 2)
	assert.True(t, r.RoughlyEqual(V(0, 1)), "got %v", r)
}

func TestAngleBetweenWithDirections(t *testing.T) {
	// Sweeping from +x to +y heading up is a quarter turn, heading down it
	// is three quarters.
	assert.InDelta(t, math.Pi/2, V(1, 0).AngleBetweenWithDirections(V(0, 1), V(0, 1)), 1e-9)
	assert.InDelta(t, 3*math.Pi/2, V(1, 0).AngleBetweenWithDirections(V(0, -1), V(0, 1)), 1e-9)
}

func TestTheta(t *testing.T) {
	assert.InDelta(t, 0, Theta(V(1, 0)), 1e-12)
	assert.InDelta(t, 0.25, Theta(V(0, 1)), 1e-12)
	assert.InDelta(t, 0.75, Theta(V(0, -1)), 1e-12)
}

func TestTolerantHelpers(t *testing.T) {
	assert.Equal(t, 0, Sign(1e-5))
	assert.Equal(t, 1, Sign(0.1))
	assert.Equal(t, -1, Sign(-0.1))
	assert.True(t, RoughlyBetween(0, -1e-5, 1))
	assert.False(t, Between(0, -1e-5, 1))
	assert.Equal(t, 1.0, Clamp(0, 3, 1))
	assert.Equal(t, 2, CircularIndex(-1, 3))
	assert.True(t, Colinear(V(0, 0), V(1, 1), V(2, 2)))
	assert.Equal(t, V(1, 1), TriangleCenter(V(0, 0), V(3, 0), V(0, 3)))
}

func TestRectangle(t *testing.T) {
	r := RectangleCorner(V(1, 2), V(0, 0))
	assert.Equal(t, 0.0, r.Left())
	assert.Equal(t, 2.0, r.Bottom())
	assert.Equal(t, V(0.5, 1), r.Center())
	assert.True(t, r.ContainsPoint(V(0, 0)))
	assert.False(t, r.ContainsPoint(V(1, 2)))
	assert.True(t, r.RoughlyContainsPoint(V(1, 2), RoughlyEpsilon))

	grown := RectangleEmpty().ExpandPoint(V(5, 5)).Expand(r)
	assert.Equal(t, V(0, 0), grown.Origin())
	assert.Equal(t, V(5, 5), grown.Corner())
}
