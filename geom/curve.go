package geom

import (
	"fmt"

	"github.com/osuushi/skeleton/internal/throw"
	"github.com/pkg/errors"
)

// A circular arc from start to end, leaving start in a given direction.
type Curve struct {
	start, end  Vector2
	direction   Vector2
	center      Vector2
	radius      float64
	length      float64
	chordLength float64
	// 1 for clockwise, -1 for counter-clockwise (y up)
	orientation int
}

// Build the arc leaving start along direction and arriving at end. When the
// chord runs along direction the result is a plain LineSegment.
func NewCurve(start, direction, end Vector2) (Segment, error) {
	c := Curve{start: start, end: end, direction: direction.Normalize()}
	chord := start.Sub(end)
	c.orientation = Sign(c.direction.Cross(chord))
	c.chordLength = chord.Length()

	if c.orientation == 0 {
		if !chord.Normalize().Add(c.direction).RoughlyEqual(Vector2{}) {
			return nil, errors.Wrapf(ErrDegenerateCurve, "curve %v %v %v", start, direction, end)
		}
		return NewLineSegment(start, end), nil
	}

	startToCenter := c.rayFromStartToCenter()
	halfChordToCenter := c.rayFromHalfChordToCenter()

	// Arcs beyond a half turn have their centre behind the chord.
	found := Intersect(startToCenter, halfChordToCenter)
	if len(found) != 1 {
		found = Intersect(startToCenter, halfChordToCenter.Reverse())
	}
	if len(found) != 1 {
		return nil, errors.Wrapf(ErrNoCircle, "curve %v %v %v", start, direction, end)
	}

	c.center = found[0].P
	c.radius = c.center.Distance(start)
	c.length = c.radius * 2 * startToCenter.Direction.AngleBetween(halfChordToCenter.Direction)
	return c, nil
}

// Like NewCurve, but degenerate input yields nil.
func CurveIfValid(start, direction, end Vector2) Segment {
	s, err := NewCurve(start, direction, end)
	if err != nil {
		return nil
	}
	return s
}

// Derived curves fall back to a straight line when the arc degenerates, which
// only happens for pieces far below the geometry tolerance.
func curveOrLine(start, direction, end Vector2) Segment {
	if s := CurveIfValid(start, direction, end); s != nil {
		return s
	}
	return NewLineSegment(start, end)
}

func (Curve) Kind() Kind { return KindCurve }
func (Curve) primitive() {}

func (c Curve) String() string {
	return fmt.Sprintf("%v~%v (center %v, r %.4g)", c.start, c.end, c.center, c.radius)
}

func (c Curve) Start() Vector2     { return c.start }
func (c Curve) End() Vector2       { return c.end }
func (c Curve) Direction() Vector2 { return c.direction }
func (c Curve) Length() float64    { return c.length }
func (c Curve) Center() Vector2    { return c.center }
func (c Curve) Radius() float64    { return c.radius }
func (c Curve) Orientation() int   { return c.orientation }

func (c Curve) Circle() Circle {
	return Circle{c.center, c.radius}
}

func (c Curve) rayFromStartToCenter() Ray {
	toCenter := c.direction.Perpendicular()
	if c.orientation == -1 {
		toCenter = toCenter.Negate()
	}
	return Ray{c.start, toCenter}
}

func (c Curve) rayFromHalfChordToCenter() Ray {
	halfChord := c.start.Lerp(c.end, 0.5)
	toCenter := halfChord.Sub(c.start).Perpendicular().Normalize()
	if c.orientation == -1 {
		toCenter = toCenter.Negate()
	}
	return Ray{halfChord, toCenter}
}

func (c Curve) Midpoint() Vector2 {
	return c.PositionOf(c.length / 2)
}

func (c Curve) BoundingBox() Rectangle {
	return RectangleCorner(c.start, c.end).ExpandPoint(c.Midpoint())
}

// Tangent rotated to point along the travel direction at offset.
func (c Curve) tangent(centerToPoint Vector2) Vector2 {
	if c.orientation > 0 {
		return Vector2{centerToPoint.Y, -centerToPoint.X}.Normalize()
	}
	return Vector2{-centerToPoint.Y, centerToPoint.X}.Normalize()
}

func (c Curve) EndDirection() Vector2 {
	return c.tangent(c.end.Sub(c.center))
}

func (c Curve) PositionOf(offset float64) Vector2 {
	centerToStart := c.start.Sub(c.center)
	return centerToStart.Rotate(float64(-c.orientation) * offset / c.radius).Add(c.center)
}

func (c Curve) DirectionOf(offset float64) Vector2 {
	centerToStart := c.start.Sub(c.center)
	return c.tangent(centerToStart.Rotate(float64(-c.orientation) * offset / c.radius))
}

const curveOffsetTolerance = 1e-3

// Arc length from start to the projection of p onto the arc. Points outside
// the arc's span get a negative offset or one past Length, whichever end is
// nearer.
func (c Curve) OffsetOf(p Vector2) float64 {
	centerToStart := c.start.Sub(c.center)
	centerToPoint := p.Sub(c.center)
	centerToEnd := c.end.Sub(c.center)
	span := c.length / c.radius

	toPoint := centerToStart.AngleBetweenWithDirections(c.direction, centerToPoint)
	fromPoint := centerToPoint.AngleBetweenWithDirections(c.tangent(centerToPoint), centerToEnd)

	switch {
	case toPoint <= span+curveOffsetTolerance && fromPoint <= span+curveOffsetTolerance:
		return toPoint * c.radius
	case c.start.Distance(p) < c.end.Distance(p):
		return -centerToStart.AngleBetween(centerToPoint) * c.radius
	default:
		return c.length + centerToEnd.AngleBetween(centerToPoint)*c.radius
	}
}

func (c Curve) ClosestPointTo(p Vector2) Vector2 {
	if RoughlyBetween(0, c.OffsetOf(p), c.length) {
		centerToPoint := p.Sub(c.center)
		return c.center.Add(centerToPoint.Scale(c.radius / centerToPoint.Length()))
	}
	if c.start.Distance(p) < c.end.Distance(p) {
		return c.start
	}
	return c.end
}

func (c Curve) AlphaAt(p Vector2) float64 {
	return c.OffsetOf(p) / c.length
}

// Whether p lies inside the angular span of the arc, with the span extended
// by tolerance (an arc length) at both ends.
func (c Curve) WedgeContainsPoint(p Vector2, tolerance float64) bool {
	dir, start, end := c.direction, c.start, c.end
	if tolerance != 0 {
		dir = c.DirectionOf(-tolerance)
		start = c.PositionOf(-tolerance)
		end = c.PositionOf(c.length + tolerance)
	}

	test := p.Sub(start)
	chord := end.Sub(start)
	sign0 := Sign(dir.Cross(chord))
	sign1 := Sign(dir.Cross(test))
	sign2 := Sign(test.Cross(chord))

	if sign0 == 0 {
		throw.Fatalf("curve %v has no wedge", c)
	}
	// On an edge of the wedge
	if sign1 == 0 || sign2 == 0 {
		return true
	}
	return sign0 == sign1 && sign0 == sign2
}

// Whether p lies within Thickness of the arc.
func (c Curve) ContainsPoint(p Vector2) bool {
	d := c.center.Distance(p)
	return RoughlyEqualWithin(d, c.radius, Thickness) && c.WedgeContainsPoint(p, Thickness)
}

func (c Curve) Subdivide(p Vector2) (Segment, Segment) {
	head := curveOrLine(c.start, c.direction, p)
	tail := curveOrLine(p, c.DirectionOf(c.OffsetOf(p)), c.end)
	return head, tail
}

func (c Curve) Reverse() Segment {
	return curveOrLine(c.end, c.EndDirection().Negate(), c.start)
}

func (c Curve) Scale(s float64) Segment {
	return curveOrLine(c.start.Scale(s), c.direction, c.end.Scale(s))
}

func (c Curve) Translate(offset Vector2) Segment {
	return curveOrLine(c.start.Add(offset), c.direction, c.end.Add(offset))
}
