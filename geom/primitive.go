package geom

// Kind tags every primitive that can take part in an intersection.
type Kind int

const (
	KindRay Kind = iota
	KindLine
	KindLineSegment
	KindCircle
	KindCurve
	kindCount
)

var kindNames = [kindCount]string{"ray", "line", "lineSegment", "circle", "curve"}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Primitive is the closed set of shapes understood by Intersect.
type Primitive interface {
	Kind() Kind
	BoundingBox() Rectangle
	primitive()
}

// Segment is a finite piece of a path: a LineSegment or a Curve.
type Segment interface {
	Primitive

	Start() Vector2
	End() Vector2
	// Unit direction at the start of the segment.
	Direction() Vector2
	// Unit direction at the end of the segment.
	EndDirection() Vector2
	Length() float64
	Midpoint() Vector2

	Subdivide(p Vector2) (Segment, Segment)
	Reverse() Segment
	Scale(s float64) Segment
	Translate(offset Vector2) Segment

	// Distance along the segment to the point closest to p. May fall outside
	// [0, Length()] for points beyond the ends.
	OffsetOf(p Vector2) float64
	PositionOf(offset float64) Vector2
	DirectionOf(offset float64) Vector2
	ClosestPointTo(p Vector2) Vector2
	// Fraction of the segment length at which p lies.
	AlphaAt(p Vector2) float64
	ContainsPoint(p Vector2) bool
}
