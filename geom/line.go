package geom

import (
	"math"

	"github.com/osuushi/skeleton/internal/throw"
)

// A half-infinite line. Direction is not required to be unit length, and
// intersection parameters along a ray are measured in multiples of it.
type Ray struct {
	Start     Vector2
	Direction Vector2
}

// A bi-infinite line through Middle.
type Line struct {
	Middle    Vector2
	Direction Vector2
}

func (Ray) Kind() Kind  { return KindRay }
func (Ray) primitive()  {}
func (Line) Kind() Kind { return KindLine }
func (Line) primitive() {}

func (r Ray) BoundingBox() Rectangle {
	return RectanglePoint(r.Start)
}

func (r Ray) Reverse() Ray {
	return Ray{r.Start, r.Direction.Negate()}
}

func (r Ray) Translate(offset Vector2) Ray {
	return Ray{r.Start.Add(offset), r.Direction}
}

func (r Ray) Scale(s float64) Ray {
	return Ray{r.Start.Scale(s), r.Direction}
}

func (r Ray) Subdivide(p Vector2) (LineSegment, Ray) {
	return NewLineSegment(r.Start, p), Ray{p, r.Direction}
}

// Point reached after travelling t units of Direction.
func (r Ray) At(t float64) Vector2 {
	return r.Start.ScaleAndAdd(r.Direction, t)
}

func (r Ray) Line() Line {
	return Line{r.Start, r.Direction}
}

func (l Line) BoundingBox() Rectangle {
	return RectanglePoint(l.Middle)
}

func (l Line) Reverse() Line {
	return l
}

func (l Line) Translate(offset Vector2) Line {
	return Line{l.Middle.Add(offset), l.Direction}
}

// A bi-infinite line has no finite pieces to split into.
func (l Line) Subdivide(p Vector2) {
	throw.Fatalf("cannot subdivide a bidirectional line at %v", p)
}

func (l Line) Scale(s float64) {
	throw.Fatalf("cannot scale a bidirectional line by %v", s)
}

// Unsigned distance from p to the line through start along unit direction.
func pointToLineDistance(p, start, direction Vector2) float64 {
	return math.Abs(p.Sub(start).Dot(direction.Perpendicular()))
}
