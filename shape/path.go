// Package shape holds paths: ordered runs of line segments and arcs used both
// as skeleton input and as the boundary of each wave.
package shape

import (
	"fmt"
	"math"
	"strings"

	"github.com/osuushi/skeleton/geom"
	"github.com/pkg/errors"
)

var ErrEmptyPath = errors.New("path has no segments")

// Path is immutable once built. Derived values are computed by NewPath.
type Path struct {
	Segments []geom.Segment

	segmentOffsets []float64
	length         float64
	clockwise      bool
	boundingBox    geom.Rectangle
}

func NewPath(segments []geom.Segment) *Path {
	p := &Path{
		Segments:       append([]geom.Segment(nil), segments...),
		segmentOffsets: make([]float64, len(segments)),
		boundingBox:    geom.RectangleEmpty(),
	}

	var sum float64
	for i, s := range p.Segments {
		p.segmentOffsets[i] = p.length
		p.length += s.Length()
		p.boundingBox = p.boundingBox.Expand(s.BoundingBox())
		sum += (s.End().X - s.Start().X) * (s.End().Y + s.Start().Y)
	}
	p.clockwise = sum > 0
	return p
}

// Build a polygonal path through points. A closed path gets a final segment
// back to the first point unless the points already end there.
func FromPoints(points []geom.Vector2, closed bool) *Path {
	var segments []geom.Segment
	for i := 1; i < len(points); i++ {
		segments = append(segments, geom.NewLineSegment(points[i-1], points[i]))
	}
	if closed && len(points) > 1 && !points[len(points)-1].RoughlyEqual(points[0]) {
		segments = append(segments, geom.NewLineSegment(points[len(points)-1], points[0]))
	}
	return NewPath(segments)
}

func (p *Path) String() string {
	var b strings.Builder
	b.WriteString("Path[")
	for i, s := range p.Segments {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%v", s)
	}
	b.WriteString("]")
	return b.String()
}

func (p *Path) Len() int                    { return len(p.Segments) }
func (p *Path) Length() float64             { return p.length }
func (p *Path) SegmentOffsets() []float64   { return p.segmentOffsets }
func (p *Path) BoundingBox() geom.Rectangle { return p.boundingBox }

// Winding by signed area, in a y-up coordinate system.
func (p *Path) IsClockwise() bool { return p.clockwise }

func (p *Path) Start() geom.Vector2 { return p.Segments[0].Start() }
func (p *Path) End() geom.Vector2   { return p.Segments[len(p.Segments)-1].End() }

// A closed path has at least two segments and ends where it starts.
func (p *Path) IsClosed() bool {
	return len(p.Segments) > 1 && p.Start().RoughlyEqual(p.End())
}

func (p *Path) IsContiguous() bool {
	for i := 1; i < len(p.Segments); i++ {
		if !p.Segments[i-1].End().RoughlyEqual(p.Segments[i].Start()) {
			return false
		}
	}
	return true
}

// The start of every segment, followed by the end of the last one unless the
// path is closed.
func (p *Path) Points() []geom.Vector2 {
	points := make([]geom.Vector2, 0, len(p.Segments)+1)
	for _, s := range p.Segments {
		points = append(points, s.Start())
	}
	if len(p.Segments) > 0 && !p.IsClosed() {
		points = append(points, p.End())
	}
	return points
}

func (p *Path) Concat(other *Path) *Path {
	segments := append(append([]geom.Segment(nil), p.Segments...), other.Segments...)
	return NewPath(segments)
}

func (p *Path) Reverse() *Path {
	segments := make([]geom.Segment, len(p.Segments))
	for i, s := range p.Segments {
		segments[len(segments)-1-i] = s.Reverse()
	}
	return NewPath(segments)
}

func (p *Path) Scale(k float64) *Path {
	segments := make([]geom.Segment, len(p.Segments))
	for i, s := range p.Segments {
		segments[i] = s.Scale(k)
	}
	return NewPath(segments)
}

func (p *Path) Translate(offset geom.Vector2) *Path {
	segments := make([]geom.Segment, len(p.Segments))
	for i, s := range p.Segments {
		segments[i] = s.Translate(offset)
	}
	return NewPath(segments)
}

// Every intersection between a segment of p and a segment of other. The
// parameters are offset by the segment indices, so the integer part of U
// names the segment of p and the fraction the position along it.
func (p *Path) Intersections(other *Path) []geom.Intersection {
	var found []geom.Intersection
	for i, a := range p.Segments {
		for j, b := range other.Segments {
			for _, intersection := range geom.Intersect(a, b) {
				intersection.U += float64(i)
				intersection.V += float64(j)
				found = append(found, intersection)
			}
		}
	}
	return found
}

const containsPointRestarts = 8

// Crossing number test. A ray that grazes a segment end is lengthened and
// rotated, and the count starts over.
func (p *Path) ContainsPoint(point geom.Vector2) bool {
	if !p.IsClosed() || !p.boundingBox.RoughlyContainsPoint(point, geom.Thickness) {
		return false
	}

	along := geom.Vector2{X: p.boundingBox.Right() + 1 - point.X, Y: 0}
	for attempt := 0; ; attempt++ {
		ray := geom.NewLineSegment(point, point.Add(along))
		crossings, degenerate := 0, false

	segments:
		for _, s := range p.Segments {
			for _, potential := range geom.Intersect(ray, s) {
				if potential.UIsDegenerate() {
					// On the boundary
					return true
				}
				if potential.VIsDegenerate() && attempt < containsPointRestarts {
					degenerate = true
					break segments
				}
				crossings++
			}
		}

		if !degenerate {
			return crossings%2 == 1
		}
		along = along.Scale(2).Rotate(0.5)
	}
}

const offsetTolerance = 1e-2

// Offset along the whole path of the point nearest to p. ok is false when p
// projects past the ends of every segment.
func (p *Path) OffsetOf(point geom.Vector2) (offset float64, ok bool) {
	closest := math.Inf(1)
	for i, s := range p.Segments {
		distance := point.Distance(s.ClosestPointTo(point))
		if distance >= closest {
			continue
		}
		segmentOffset := s.OffsetOf(point)
		if segmentOffset >= -offsetTolerance && segmentOffset <= s.Length()+offsetTolerance {
			closest = distance
			offset = segmentOffset + p.segmentOffsets[i]
			ok = true
		}
	}
	return offset, ok
}

// The point on the path nearest to p.
func (p *Path) ClosestPointTo(point geom.Vector2) geom.Vector2 {
	var best geom.Vector2
	closest := math.Inf(1)
	for _, s := range p.Segments {
		candidate := s.ClosestPointTo(point)
		if distance := point.Distance(candidate); distance < closest {
			closest = distance
			best = candidate
		}
	}
	return best
}

// Index of the segment holding offset. Offsets before the start or past the
// end use the first or last segment.
func (p *Path) segmentAt(offset float64) int {
	index := 0
	for i, o := range p.segmentOffsets {
		if o > offset {
			break
		}
		index = i
	}
	return index
}

func (p *Path) PositionOf(offset float64) geom.Vector2 {
	i := p.segmentAt(offset)
	return p.Segments[i].PositionOf(offset - p.segmentOffsets[i])
}

func (p *Path) DirectionOf(offset float64) geom.Vector2 {
	i := p.segmentAt(offset)
	return p.Segments[i].DirectionOf(offset - p.segmentOffsets[i])
}

// The part of the path between two offsets. The pieces cut from the first
// and last segment keep the direction of the path at the cut.
func (p *Path) Cut(startOffset, endOffset float64) (*Path, error) {
	if len(p.Segments) == 0 {
		return nil, ErrEmptyPath
	}

	first, last := 0, 0
	for i, o := range p.segmentOffsets {
		if o < startOffset+offsetTolerance {
			first = i
		}
		if o < endOffset+offsetTolerance {
			last = i
		}
	}

	start := p.PositionOf(startOffset)
	startDirection := p.DirectionOf(startOffset)
	end := p.PositionOf(endOffset)

	if first == last {
		s, err := geom.NewCurve(start, startDirection, end)
		if err != nil {
			return nil, errors.Wrapf(err, "cutting %v to %v", startOffset, endOffset)
		}
		return NewPath([]geom.Segment{s}), nil
	}

	head, err := geom.NewCurve(start, startDirection, p.Segments[first].End())
	if err != nil {
		return nil, errors.Wrapf(err, "cutting head at %v", startOffset)
	}
	lastSegment := p.Segments[last]
	tail, err := geom.NewCurve(lastSegment.Start(), lastSegment.Direction(), end)
	if err != nil {
		return nil, errors.Wrapf(err, "cutting tail at %v", endOffset)
	}

	segments := []geom.Segment{head}
	segments = append(segments, p.Segments[first+1:last]...)
	segments = append(segments, tail)
	return NewPath(segments), nil
}

// Bridge every gap between consecutive segments with a line. A loop is also
// bridged from its end back to its start.
func (p *Path) MakeContiguous(loop bool) *Path {
	if len(p.Segments) == 0 {
		return p
	}
	var segments []geom.Segment
	for i, s := range p.Segments {
		segments = append(segments, s)
		if i+1 < len(p.Segments) && !s.End().RoughlyEqual(p.Segments[i+1].Start()) {
			segments = append(segments, geom.NewLineSegment(s.End(), p.Segments[i+1].Start()))
		}
	}
	if loop && !p.End().RoughlyEqual(p.Start()) {
		segments = append(segments, geom.NewLineSegment(p.End(), p.Start()))
	}
	return NewPath(segments)
}

// Drop segments no longer than maxDistance and snap each remaining end onto
// the following start when they are within maxDistance. The path is treated
// as a loop.
func (p *Path) Weld(maxDistance float64) *Path {
	var long []geom.Segment
	for _, s := range p.Segments {
		if s.Length() > maxDistance {
			long = append(long, s)
		}
	}

	segments := make([]geom.Segment, 0, len(long))
	for i, s := range long {
		next := long[(i+1)%len(long)]
		end := s.End()
		if end.Within(next.Start(), maxDistance) {
			end = next.Start()
		}
		segments = append(segments, withEnd(s, end))
	}
	return NewPath(segments)
}

func withEnd(s geom.Segment, end geom.Vector2) geom.Segment {
	if s.Kind() == geom.KindCurve {
		if c := geom.CurveIfValid(s.Start(), s.Direction(), end); c != nil {
			return c
		}
	}
	return geom.NewLineSegment(s.Start(), end)
}
