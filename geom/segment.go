package geom

import "fmt"

type LineSegment struct {
	start, end Vector2
	direction  Vector2
	length     float64
}

func NewLineSegment(start, end Vector2) LineSegment {
	d := end.Sub(start)
	return LineSegment{
		start:     start,
		end:       end,
		direction: d.Normalize(),
		length:    d.Length(),
	}
}

// Segment from start travelling length along direction.
func ProjectLineSegment(start, direction Vector2, length float64) LineSegment {
	return NewLineSegment(start, start.ScaleAndAdd(direction, length))
}

func (LineSegment) Kind() Kind { return KindLineSegment }
func (LineSegment) primitive() {}

func (s LineSegment) String() string {
	return fmt.Sprintf("%v->%v", s.start, s.end)
}

func (s LineSegment) Start() Vector2        { return s.start }
func (s LineSegment) End() Vector2          { return s.end }
func (s LineSegment) Direction() Vector2    { return s.direction }
func (s LineSegment) EndDirection() Vector2 { return s.direction }
func (s LineSegment) Length() float64       { return s.length }

func (s LineSegment) Midpoint() Vector2 {
	return s.start.Lerp(s.end, 0.5)
}

func (s LineSegment) BoundingBox() Rectangle {
	return RectangleCorner(s.start, s.end)
}

func (s LineSegment) Subdivide(p Vector2) (Segment, Segment) {
	return NewLineSegment(s.start, p), NewLineSegment(p, s.end)
}

func (s LineSegment) Reverse() Segment {
	return NewLineSegment(s.end, s.start)
}

func (s LineSegment) Scale(k float64) Segment {
	return NewLineSegment(s.start.Scale(k), s.end.Scale(k))
}

func (s LineSegment) Translate(offset Vector2) Segment {
	return NewLineSegment(s.start.Add(offset), s.end.Add(offset))
}

// The segment moved sideways by offsetToRight, measured clockwise from the
// direction of travel.
func (s LineSegment) OffsetPerpendicular(offsetToRight float64) LineSegment {
	return NewLineSegment(
		s.start.ScalePerpendicularAndAdd(s.direction, offsetToRight),
		s.end.ScalePerpendicularAndAdd(s.direction, offsetToRight),
	)
}

func (s LineSegment) OffsetOf(p Vector2) float64 {
	return s.direction.Dot(p.Sub(s.start))
}

func (s LineSegment) PositionOf(offset float64) Vector2 {
	return s.start.ScaleAndAdd(s.direction, offset)
}

func (s LineSegment) DirectionOf(offset float64) Vector2 {
	return s.direction
}

func (s LineSegment) ClosestPointTo(p Vector2) Vector2 {
	offset := s.OffsetOf(p)
	if offset < 0 {
		return s.start
	}
	if offset > s.length {
		return s.end
	}
	return s.PositionOf(offset)
}

func (s LineSegment) AlphaAt(p Vector2) float64 {
	return s.start.Distance(p) / s.length
}

// Whether p lies within Thickness of the segment.
func (s LineSegment) ContainsPoint(p Vector2) bool {
	toPoint := p.Sub(s.start)
	distance := pointToLineDistance(p, s.start, s.direction)
	u := toPoint.Dot(s.direction)
	return distance < Thickness && u > -Thickness && u < s.length+Thickness
}

// Whether p is colinear with the segment and between its ends, both within
// RoughlyEpsilon.
func (s LineSegment) RoughlyContainsPoint(p Vector2) bool {
	if !Colinear(s.start, p, s.end) {
		return false
	}
	if RoughlyEqual(s.start.X, p.X) || RoughlyEqual(s.end.X, p.X) {
		return RoughlyBetween(s.start.Y, p.Y, s.end.Y) || RoughlyBetween(s.end.Y, p.Y, s.start.Y)
	}
	return RoughlyBetween(s.start.X, p.X, s.end.X) || RoughlyBetween(s.end.X, p.X, s.start.X)
}

func (s LineSegment) Line() Line {
	return Line{s.start, s.direction}
}

// A spoke of the skeleton roof: positions in the plane with time as Z.
type LineSegment3 struct {
	Start, End Vector3
}

func (s LineSegment3) Length() float64 {
	return s.End.Sub(s.Start).Length()
}

func (s LineSegment3) Flat() LineSegment {
	return NewLineSegment(s.Start.XY(), s.End.XY())
}

func (s LineSegment3) String() string {
	return fmt.Sprintf("%v->%v", s.Start, s.End)
}
