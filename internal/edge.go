package internal

import (
	"fmt"
	"math"

	"github.com/osuushi/skeleton/geom"
	"github.com/osuushi/skeleton/internal/dbg"
)

// EdgeSide classifies which side of the original contour an edge descends
// from. Open contours are split into one wave per run of equal sides.
type EdgeSide int

const (
	InnerEdge EdgeSide = iota
	OuterEdge
	StartCapEdge
	EndCapEdge
	DeadEdge
)

var edgeSideNames = [...]string{"inner", "outer", "startCap", "endCap", "dead"}

func (s EdgeSide) String() string {
	if s < 0 || int(s) >= len(edgeSideNames) {
		return fmt.Sprintf("EdgeSide(%d)", int(s))
	}
	return edgeSideNames[s]
}

func (s EdgeSide) IsCap() bool {
	return s == StartCapEdge || s == EndCapEdge
}

func (s EdgeSide) tone() dbg.Tone {
	switch s {
	case InnerEdge:
		return dbg.Inner
	case OuterEdge:
		return dbg.Outer
	case StartCapEdge, EndCapEdge:
		return dbg.Cap
	case DeadEdge:
		return dbg.Dead
	}
	return dbg.Plain
}

// Edge is a node in a wavefront's cyclic doubly linked boundary. It owns its
// start vertex; its end is the next edge's start.
type Edge struct {
	ID        int
	Side      EdgeSide
	Start     *Vertex
	Previous  *Edge
	Next      *Edge
	Wavefront *Wavefront

	// Direction is the unit normal the edge travels along. LineDirection runs
	// along the edge.
	Direction     geom.Vector2
	LineDirection geom.Vector2

	Collapse *CollapseEvent

	// Bumped when the edge is retired. Events stamp it.
	version int

	// Set while committing an open wavefront with caps.
	cutSegment *geom.LineSegment
	cutReverse bool
}

func newEdge(p *Processor, start *Vertex, side EdgeSide) *Edge {
	e := &Edge{ID: p.nextID(), Side: side, Start: start}
	e.Previous = e
	e.Next = e
	start.NextEdge = e
	return e
}

func (e *Edge) String() string {
	return fmt.Sprintf("%s#%d(%v)", dbg.ColorName(e, e.Side.tone()), e.ID, e.Side)
}

func (e *Edge) End() *Vertex { return e.Next.Start }

func (e *Edge) IsCap() bool { return e.Side.IsCap() }

func (e *Edge) segment() geom.LineSegment {
	return geom.NewLineSegment(e.Start.Position, e.End().Position)
}

func (e *Edge) line() geom.Line {
	return geom.Line{Middle: e.Start.Position, Direction: e.LineDirection}
}

// Link each edge to the one after it. The list is not closed.
func connect(edges ...*Edge) {
	if len(edges) < 2 {
		panic("connect needs at least two edges")
	}
	for i := 1; i < len(edges); i++ {
		edges[i-1].Next = edges[i]
		edges[i].Previous = edges[i-1]
	}
}

// Take the edge out of play. Anything still pointing at it is stale.
func (e *Edge) retire() {
	e.Wavefront = nil
	e.version++
}

func (e *Edge) computeDirection() {
	start, end := e.Start.Position, e.End().Position

	// A zero length cap turns the corner from the edge before it.
	if e.IsCap() && start == end {
		previous := e.Previous.Direction
		e.Direction = geom.Vector2{X: previous.Y, Y: -previous.X}
		e.LineDirection = previous
		return
	}

	e.LineDirection = end.Sub(start).Normalize()
	e.Direction = geom.Vector2{X: -e.LineDirection.Y, Y: e.LineDirection.X}
}

func (e *Edge) computeCollapseEvent() {
	e.Collapse = newCollapseEvent(e)
}

// Predict splits of this edge by every reflex vertex not adjacent to it.
func (e *Edge) computeSplitEvents() {
	end := e.Previous
	for edge := e.Next.Next.Next; edge != end; edge = edge.Next {
		vertex := edge.Start
		if !vertex.IsAcute {
			vertex.Events = append(vertex.Events, newSplitEvent(e, vertex))
		}
	}
}

// How long until the edge's moving line reaches p. Infinite if p is behind
// the edge.
func (e *Edge) lengthAt(p geom.Vector2) float64 {
	measuring := geom.Ray{Start: p, Direction: e.Direction.Negate()}
	hits := geom.Intersect(measuring, e.line())
	if len(hits) == 0 {
		return math.Inf(1)
	}
	return hits[0].U
}

func (e *Edge) projectBy(amount float64) geom.LineSegment {
	return geom.NewLineSegment(e.Start.projectBy(amount), e.End().projectBy(amount))
}

// Unlink the edge, joining its neighbours directly.
func (e *Edge) collapse() {
	w := e.Wavefront
	if w.Root == e {
		w.Root = e.Next
	}
	connect(e.Previous, e.Next)
	w.Length--
	e.retire()
}

// Replace the edge with two halves meeting at position. The first half keeps
// the edge's start vertex; the second starts at a new vertex that moves with
// the edge itself.
func (e *Edge) split(position geom.Vector2) (*Edge, *Edge) {
	w := e.Wavefront
	p := w.processor
	if w.Root == e {
		w.Root = e.Next
	}

	previous, next := e.Previous, e.Next
	middle1 := newEdge(p, e.Start, e.Side)
	middle2 := newEdge(p, newVertex(p, position, w.Time), e.Side)

	for _, m := range []*Edge{middle1, middle2} {
		m.Wavefront = w
		m.Direction = e.Direction
		m.LineDirection = e.LineDirection
	}

	v := middle2.Start
	v.IsAcute = false
	v.IsParallel = true
	v.Speed = 1
	v.Direction = e.Direction

	connect(previous, middle1, middle2, next)
	w.Length++
	e.retire()

	return middle1, middle2
}
