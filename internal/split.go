package internal

import (
	"fmt"
	"math"

	"github.com/osuushi/skeleton/geom"
	"github.com/osuushi/skeleton/internal/throw"
)

// SplitEvent predicts a reflex vertex running into an edge of its own
// wavefront, dividing the wavefront in two.
type SplitEvent struct {
	ID     int
	Edge   *Edge
	Vertex *Vertex
	time   float64

	edgeVersion, vertexVersion int
}

func newSplitEvent(edge *Edge, vertex *Vertex) *SplitEvent {
	e := &SplitEvent{
		ID:            edge.Wavefront.processor.nextID(),
		Edge:          edge,
		Vertex:        vertex,
		time:          math.Inf(1),
		edgeVersion:   edge.version,
		vertexVersion: vertex.version,
	}

	hits := geom.Intersect(vertex.Projection(), edge.line())
	if len(hits) == 0 {
		return e
	}
	projectionToEdge := hits[0].P

	// The vertex meets the edge somewhere on the bisector between the edge's
	// line and the line of the edge trailing the vertex.
	trailing := vertex.PreviousEdge()
	var bisector geom.Primitive
	hits = geom.Intersect(edge.line(), trailing.line())
	if len(hits) == 0 {
		midpoint := edge.Start.Position.Lerp(trailing.Start.Position, 0.5)
		bisector = geom.Line{Middle: midpoint, Direction: trailing.LineDirection}
	} else {
		edgeToEdge := hits[0].P
		toVertex := vertex.Position.Sub(edgeToEdge).Normalize()
		toProjection := projectionToEdge.Sub(edgeToEdge).Normalize()
		bisector = geom.Ray{Start: edgeToEdge, Direction: toVertex.Add(toProjection).Normalize()}
	}

	hits = geom.Intersect(vertex.Projection(), bisector)
	if len(hits) == 0 {
		return e
	}

	length := edge.lengthAt(hits[0].P)
	if length < 0 || math.IsInf(length, 1) {
		return e
	}
	e.time = length + edge.Wavefront.Time
	return e
}

func (e *SplitEvent) Time() float64 { return e.time }

func (e *SplitEvent) alive() bool {
	w := e.Edge.Wavefront
	return w != nil && w == e.Vertex.Wavefront()
}

func (e *SplitEvent) name() string {
	if !e.alive() {
		return "Split(dead)"
	}
	if geom.RoughlyEqual(e.Edge.Start.Position.Distance(e.Vertex.Position), 0) {
		return "Cut.start"
	}
	if geom.RoughlyEqual(e.Edge.End().Position.Distance(e.Vertex.Position), 0) {
		return "Cut.end"
	}
	return "Split"
}

func (e *SplitEvent) String() string {
	return fmt.Sprintf("%s:%d edge %v by %v at %.10g", e.name(), e.ID, e.Edge, e.Vertex, e.time)
}

func (e *SplitEvent) isValid() bool {
	if !e.alive() ||
		e.Edge.version != e.edgeVersion ||
		e.Vertex.version != e.vertexVersion {
		return false
	}
	if atInstantZero(e.time) || math.IsInf(e.time, 1) {
		return false
	}
	// Nothing smaller than a quadrilateral can split.
	if e.Edge.Wavefront.Length < 4 || e.Vertex.IsAcute {
		return false
	}

	dt := e.time - e.Edge.Wavefront.Time
	return e.Edge.projectBy(dt).RoughlyContainsPoint(e.Vertex.projectBy(dt))
}

func (e *SplitEvent) remove() {
	events := e.Vertex.Events
	for i, other := range events {
		if other == e {
			e.Vertex.Events = append(events[:i:i], events[i+1:]...)
			return
		}
	}
}

func (e *SplitEvent) process() {
	edge, vertex := e.Edge, e.Vertex
	toStart := edge.Start.Position.Distance(vertex.Position)
	if geom.RoughlyEqual(toStart, 0) {
		cut(edge.Start, vertex)
		return
	}
	toEnd := edge.End().Position.Distance(vertex.Position)
	if geom.RoughlyEqual(toEnd, 0) {
		cut(edge.End(), vertex)
		return
	}

	// Roughly on the edge but not really inside it: it's still a cut at the
	// nearer end.
	if !edge.segment().BoundingBox().RoughlyContainsPoint(vertex.Position, geom.RoughlyEpsilon) {
		if toStart < toEnd {
			cut(edge.Start, vertex)
		} else {
			cut(edge.End(), vertex)
		}
		return
	}

	split(edge, vertex)
}

// Subdivide edge where vertex hit it, then cut between the new corner and
// vertex.
func split(edge *Edge, vertex *Vertex) {
	first, second := edge.split(vertex.Position)
	second.Start.computeDirectionAndSpeed()

	// Collapse events are left to the joins in cut.
	first.computeSplitEvents()
	second.computeSplitEvents()

	cut(second.Start, vertex)
}

// Connect two vertices of one wavefront, dividing its cycle into two arcs.
// Each arc is closed up by a join and becomes a wavefront of its own; arcs
// with fewer than three edges are finished on the spot.
func cut(edgeVertex, cutVertex *Vertex) {
	if edgeVertex == cutVertex {
		return
	}

	w0 := edgeVertex.Wavefront()
	p := w0.processor
	p.commitVertex(edgeVertex, w0.Time)
	p.commitVertex(cutVertex, w0.Time)

	previous0, next0 := edgeVertex.PreviousEdge(), cutVertex.NextEdge
	previous1, next1 := cutVertex.PreviousEdge(), edgeVertex.NextEdge

	previous0, _ = w0.join(previous0, next0)
	previous1, _ = w0.join(previous1, next1)

	w0.Root = previous0
	w1 := newWavefront(p, previous1, w0.Time)
	w0.recount()
	if previous1.Wavefront != w1 {
		// The joins folded both arcs into one cycle.
		Logger().Debug("cut closed a single cycle", "wavefront", w0.ID)
	} else {
		Logger().Debug("cut", "wavefront", w0.ID, "length", w0.Length, "new", w1.ID, "newLength", w1.Length)
	}

	if w0.Length < 3 {
		w0.finishDegenerate()
		w0.remove()
	}
	if previous1.Wavefront == w1 {
		if w1.Length < 3 {
			w1.finishDegenerate()
			w1.retireEdges()
		} else {
			p.addWavefront(w1)
		}
	}
}

// Close the gap between previous and next by extending or contracting both
// until their lines meet. When that twists the boundary over a neighbour, the
// neighbour is skipped and the join retried one edge further out.
func (w *Wavefront) join(previous, next *Edge) (*Edge, *Edge) {
	p := w.processor
	for attempts := 0; ; attempts++ {
		if attempts > w.Length {
			throw.Fatalf("join of %v and %v did not settle after %d attempts", previous, next, attempts)
		}

		hits := geom.Intersect(previous.line(), next.line())
		moved := len(hits) > 0
		if moved {
			next.Start.Position = hits[0].P
			p.commitVertex(next.Start, w.Time)
		}

		connect(previous, next)

		if moved {
			twist := geom.Intersect(previous.Previous.segment(), next.segment())
			if len(twist) > 0 && !twist[0].IsDegenerate() && previous.Previous != next {
				previous.retire()
				previous = previous.Previous
				continue
			}
			twist = geom.Intersect(previous.segment(), next.Next.segment())
			if len(twist) > 0 && !twist[0].IsDegenerate() && next.Next != previous {
				next.retire()
				next = next.Next
				continue
			}
		}
		break
	}

	next.Start.computeDirectionAndSpeed()
	previous.computeCollapseEvent()
	next.computeCollapseEvent()
	next.Start.computeSplitEvents()

	return previous, next
}
