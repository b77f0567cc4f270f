package internal

import (
	"fmt"
	"math"

	"github.com/osuushi/skeleton/geom"
)

// CollapseEvent predicts when an edge shrinks to nothing: the moment its two
// end vertices meet.
type CollapseEvent struct {
	ID       int
	Edge     *Edge
	Position geom.Vector2
	time     float64

	end *Vertex
	// Versions of the edge and its ends when predicted.
	edgeVersion, startVersion, endVersion int
}

func newCollapseEvent(edge *Edge) *CollapseEvent {
	end := edge.End()
	e := &CollapseEvent{
		ID:           edge.Wavefront.processor.nextID(),
		Edge:         edge,
		time:         math.Inf(1),
		end:          end,
		edgeVersion:  edge.version,
		startVersion: edge.Start.version,
		endVersion:   end.version,
	}

	hits := geom.Intersect(edge.Start.Projection(), end.Projection())
	if len(hits) == 0 {
		return e
	}
	e.Position = hits[0].P
	e.time = edge.lengthAt(e.Position) + edge.Wavefront.Time
	return e
}

func (e *CollapseEvent) Time() float64 { return e.time }

func (e *CollapseEvent) name() string {
	w := e.Edge.Wavefront
	switch {
	case w == nil || w.Length < 3:
		return "Collapse(dead)"
	case w.Length == 3:
		return "Triangle"
	}
	return "Collapse"
}

func (e *CollapseEvent) String() string {
	return fmt.Sprintf("%s:%d edge %v at %.10g", e.name(), e.ID, e.Edge, e.time)
}

// Stale once the edge is retired, or either end vertex has changed course
// since the prediction.
func (e *CollapseEvent) stale() bool {
	edge := e.Edge
	return edge.Wavefront == nil ||
		edge.Collapse != e ||
		edge.version != e.edgeVersion ||
		edge.Start.version != e.startVersion ||
		edge.End() != e.end ||
		e.end.version != e.endVersion
}

func (e *CollapseEvent) isValid() bool {
	if e.stale() || atInstantZero(e.time) {
		return false
	}

	switch w := e.Edge.Wavefront; {
	case w.Length < 3:
		return false
	case w.Length == 3:
		return true
	}

	// An edge can't collapse while either end travels parallel to it.
	edge := e.Edge
	az := edge.LineDirection.Cross(edge.Start.Direction)
	bz := edge.LineDirection.Cross(edge.End().Direction)
	return !geom.RoughlyEqual(az, 0) && !geom.RoughlyEqual(bz, 0)
}

func (e *CollapseEvent) remove() {
	e.time = math.Inf(1)
}

func (e *CollapseEvent) process() {
	edge := e.Edge
	w := edge.Wavefront
	p := w.processor
	p.commitVertex(edge.Start, w.Time)
	p.commitVertex(edge.End(), w.Time)

	if w.Length == 3 {
		third := edge.Next.End()
		p.commitVertex(third, w.Time)

		// One side of the triangle has collapsed, but the other two might now
		// be overlapping parallel lines. Connect an uncollapsed side to the
		// centre.
		a, b, c := edge.Start.Position, edge.End().Position, third.Position
		center := geom.TriangleCenter(a, b, c)
		start, end := a, b
		if a.RoughlyEqual(b) {
			if b.RoughlyEqual(c) {
				start, end = c, a
			} else {
				start, end = b, c
			}
		}

		apex := center.Extend(w.Time)
		p.commitSpoke(start.Extend(w.Time), apex)
		p.commitSpoke(apex, end.Extend(w.Time))
		w.remove()
		return
	}

	previous, next := edge.Previous, edge.Next
	edge.collapse()

	next.Start.computeDirectionAndSpeed()
	previous.computeCollapseEvent()
	next.computeCollapseEvent()
	// The merged corner may now be reflex.
	next.Start.computeSplitEvents()
}

// Nothing happens at the very start of propagation. An event there needs a
// self intersecting source, or is a cap of an open path meeting its own end.
func atInstantZero(time float64) bool {
	return math.Abs(time) < TimeEpsilon
}
