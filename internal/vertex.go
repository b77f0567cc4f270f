package internal

import (
	"fmt"
	"math"

	"github.com/osuushi/skeleton/geom"
	"github.com/osuushi/skeleton/internal/dbg"
	"github.com/osuushi/skeleton/internal/throw"
)

// Vertex is a moving corner of a wavefront, owned by the edge that starts at
// it.
type Vertex struct {
	ID       int
	Position geom.Vector2
	// Last committed point of the vertex's trail, with time as Z.
	Beginning geom.Vector3
	NextEdge  *Edge

	Direction  geom.Vector2
	Speed      float64
	IsParallel bool
	// True for convex or parallel corners, which never split an edge.
	IsAcute bool

	Events []*SplitEvent

	// Bumped whenever direction and speed are recomputed. Events stamp it.
	version int
}

func newVertex(p *Processor, position geom.Vector2, time float64) *Vertex {
	if position.IsInf() || math.IsNaN(position.X) || math.IsNaN(position.Y) {
		throw.Fatalf("bad vertex position %v", position)
	}
	return &Vertex{
		ID:        p.nextID(),
		Position:  position,
		Beginning: position.Extend(time),
	}
}

func (v *Vertex) String() string {
	return fmt.Sprintf("%s#%d%v", dbg.Name(v), v.ID, v.Position)
}

func (v *Vertex) Wavefront() *Wavefront { return v.NextEdge.Wavefront }
func (v *Vertex) PreviousEdge() *Edge   { return v.NextEdge.Previous }
func (v *Vertex) Next() *Vertex         { return v.NextEdge.End() }
func (v *Vertex) Previous() *Vertex     { return v.PreviousEdge().Start }

func (v *Vertex) computeDirectionAndSpeed() {
	// Any split events predicted from the old motion are now stale.
	v.Events = nil
	v.version++

	previous, next := v.PreviousEdge(), v.NextEdge
	orientation := previous.Direction.Cross(next.Direction)
	v.IsParallel = geom.RoughlyEqual(orientation, 0)
	v.IsAcute = v.IsParallel || orientation > 0

	v.Direction = previous.Direction.Add(next.Direction).Normalize()

	if v.IsParallel {
		v.Speed = 1
		return
	}

	previousLine := geom.Line{Middle: v.Position.Add(previous.LineDirection), Direction: previous.Direction}
	nextLine := geom.Line{Middle: v.Position.Add(next.LineDirection), Direction: next.Direction}
	hits := geom.Intersect(previousLine, nextLine)
	if len(hits) == 0 {
		v.Speed = 0
		return
	}
	v.Speed = v.Position.Distance(hits[0].P)
}

// Predict this vertex splitting every edge not adjacent to it. Convex
// corners never split anything.
func (v *Vertex) computeSplitEvents() {
	v.Events = nil
	if v.IsAcute {
		return
	}
	end := v.PreviousEdge()
	for edge := v.NextEdge.Next.Next; edge != end; edge = edge.Next {
		v.Events = append(v.Events, newSplitEvent(edge, v))
	}
}

// The ray the vertex travels along, from where it is now.
func (v *Vertex) Projection() geom.Ray {
	return geom.Ray{Start: v.Position, Direction: v.Direction}
}

func (v *Vertex) movementBy(amount float64) geom.Vector2 {
	return v.Direction.Scale(v.Speed * amount)
}

func (v *Vertex) projectBy(amount float64) geom.Vector2 {
	return v.Position.Add(v.movementBy(amount))
}

func (v *Vertex) move(amount float64) {
	v.Position = v.projectBy(amount)
}
