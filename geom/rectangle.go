package geom

import (
	"math"

	jgeom "github.com/jbeda/geom"
)

// Axis aligned bounding box. Y grows "down" from Top to Bottom, matching the
// drawing convention, so Top <= Bottom.
type Rectangle struct {
	jgeom.Rect
}

func coord(v Vector2) jgeom.Coord {
	return jgeom.Coord{X: v.X, Y: v.Y}
}

// Rectangle spanning two opposite corners, in any order.
func RectangleCorner(a, b Vector2) Rectangle {
	r := Rectangle{jgeom.Rect{Min: coord(a), Max: coord(a)}}
	r.ExpandToContainCoord(coord(b))
	return r
}

func RectanglePoint(p Vector2) Rectangle {
	return RectangleCorner(p, p)
}

// An inverted rectangle which any expansion will replace.
func RectangleEmpty() Rectangle {
	return Rectangle{jgeom.Rect{
		Min: jgeom.Coord{X: math.Inf(1), Y: math.Inf(1)},
		Max: jgeom.Coord{X: math.Inf(-1), Y: math.Inf(-1)},
	}}
}

func (r Rectangle) Left() float64   { return r.Min.X }
func (r Rectangle) Right() float64  { return r.Max.X }
func (r Rectangle) Top() float64    { return r.Min.Y }
func (r Rectangle) Bottom() float64 { return r.Max.Y }

func (r Rectangle) Origin() Vector2 { return Vector2{r.Min.X, r.Min.Y} }
func (r Rectangle) Corner() Vector2 { return Vector2{r.Max.X, r.Max.Y} }

func (r Rectangle) Center() Vector2 {
	return r.Origin().Lerp(r.Corner(), 0.5)
}

// Union of both rectangles.
func (r Rectangle) Expand(o Rectangle) Rectangle {
	if math.IsInf(r.Min.X, 1) {
		return o
	}
	if math.IsInf(o.Min.X, 1) {
		return r
	}
	r.ExpandToContainRect(o.Rect)
	return r
}

func (r Rectangle) ExpandPoint(p Vector2) Rectangle {
	if math.IsInf(r.Min.X, 1) {
		return RectanglePoint(p)
	}
	r.ExpandToContainCoord(coord(p))
	return r
}

// Half open containment: the far edges are excluded.
func (r Rectangle) ContainsPoint(p Vector2) bool {
	return r.Min.X <= p.X && p.X < r.Max.X && r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// Closed containment widened by epsilon on every side.
func (r Rectangle) RoughlyContainsPoint(p Vector2, epsilon float64) bool {
	return r.Min.X-epsilon <= p.X && p.X <= r.Max.X+epsilon &&
		r.Min.Y-epsilon <= p.Y && p.Y <= r.Max.Y+epsilon
}

func (r Rectangle) Translate(offset Vector2) Rectangle {
	return RectangleCorner(r.Origin().Add(offset), r.Corner().Add(offset))
}

func (r Rectangle) Scale(s float64) Rectangle {
	return RectangleCorner(r.Origin().Scale(s), r.Corner().Scale(s))
}
