package clipper

import (
	"fmt"
	"sort"

	"github.com/osuushi/skeleton/geom"
	"github.com/osuushi/skeleton/internal/dbg"
	"github.com/osuushi/skeleton/internal/throw"
	"github.com/osuushi/skeleton/shape"
)

type location int

const (
	outside location = iota
	inside
	onEdge
)

func (l location) String() string {
	switch l {
	case inside:
		return "IN"
	case onEdge:
		return "ON"
	}
	return "OUT"
}

type role int

const (
	noRole role = iota
	entry
	exit
	entryExit
	exitEntry
)

func (r role) String() string {
	return [...]string{"-", "entry", "exit", "entry/exit", "exit/entry"}[r]
}

// The role of an intersection, indexed by the locations of the edges before
// and after it.
var roleFromEdgeLocations = [3][3]role{
	outside: {outside: entryExit, inside: entry, onEdge: entry},
	inside:  {outside: exit, inside: exitEntry, onEdge: exit},
	onEdge:  {outside: exit, inside: entry, onEdge: noRole},
}

func (r role) reversed() role {
	switch r {
	case entry:
		return exit
	case exit:
		return entry
	case entryExit:
		return exitEntry
	case exitEntry:
		return entryExit
	}
	return r
}

// vertex is one corner of a polygon chain, owning the edge that leaves it.
type vertex struct {
	forwardEdge         geom.Segment
	forwardEdgeLocation location
	location            location
	role                role

	next, previous *vertex
	// The same intersection on the other chain
	neighbor *vertex
	// Consecutive intersections with the same simple role are coupled and
	// traversed as one.
	partner      *vertex
	firstPartner bool
}

func (v *vertex) String() string {
	return fmt.Sprintf("%s%v[%v %v]", dbg.Name(v), v.position(), v.location, v.role)
}

func (v *vertex) position() geom.Vector2         { return v.forwardEdge.Start() }
func (v *vertex) backwardEdge() geom.Segment     { return v.previous.forwardEdge }
func (v *vertex) backwardEdgeLocation() location { return v.previous.forwardEdgeLocation }

func (v *vertex) isIntersection() bool { return v.neighbor != nil && v.role != noRole }
func (v *vertex) isEntry() bool        { return v.role == entry || v.role == entryExit }
func (v *vertex) isExit() bool         { return v.role == exit || v.role == exitEntry }

// Every vertex of the chain, starting at v.
func (v *vertex) vertices() []*vertex {
	vertices := []*vertex{v}
	for current := v.next; current != v; current = current.next {
		vertices = append(vertices, current)
	}
	return vertices
}

func (v *vertex) toPath() *shape.Path {
	var segments []geom.Segment
	for _, current := range v.vertices() {
		segments = append(segments, current.forwardEdge)
	}
	return shape.NewPath(segments)
}

// Subdivide the forward edge at p and insert a vertex there.
func (v *vertex) split(p geom.Vector2) *vertex {
	first, second := v.forwardEdge.Subdivide(p)
	v.forwardEdge = first
	inserted := &vertex{forwardEdge: second, previous: v, next: v.next}
	v.next.previous = inserted
	v.next = inserted
	return inserted
}

// Build the chain for path, locating each corner against other.
func newChain(path, other *shape.Path) *vertex {
	var first, last *vertex
	for _, s := range path.Segments {
		v := &vertex{forwardEdge: s, location: outside}
		if other.ContainsPoint(v.position()) {
			v.location = inside
		}
		if last == nil {
			first = v
		} else {
			last.next, v.previous = v, last
		}
		last = v
	}
	last.next, first.previous = first, last
	return first
}

type crossing struct {
	position      geom.Vector2
	u, v          float64
	subject, clip *vertex
}

// Find every crossing of the two chains. A crossing at the very end of an edge
// is skipped since the next edge finds it at its start.
func findCrossings(subject, clip *vertex) []*crossing {
	var crossings []*crossing
	for _, s := range subject.vertices() {
		for _, c := range clip.vertices() {
			for _, hit := range geom.Intersect(s.forwardEdge, c.forwardEdge) {
				if geom.RoughlyEqual(hit.U, 1) || geom.RoughlyEqual(hit.V, 1) {
					continue
				}
				crossings = append(crossings, &crossing{hit.P, hit.U, hit.V, s, c})
			}
		}
	}
	return crossings
}

// Insert a vertex for every crossing into both chains and link each pair as
// neighbours. Crossings within Thickness of an existing corner reuse it.
func splitAtCrossings(crossings []*crossing) {
	splitChain := func(byVertex map[*vertex][]*crossing, parameter func(*crossing) float64, assign func(*crossing, *vertex)) {
		for original, group := range byVertex {
			sort.Slice(group, func(i, j int) bool { return parameter(group[i]) < parameter(group[j]) })
			current := original
			for _, c := range group {
				var split *vertex
				switch {
				case c.position.Distance(current.position()) < geom.Thickness:
					split = current
				case c.position.Distance(current.next.position()) < geom.Thickness:
					split = current.next
				default:
					split = current.split(c.position)
				}
				assign(c, split)
				current = split
			}
		}
	}

	bySubject := make(map[*vertex][]*crossing)
	byClip := make(map[*vertex][]*crossing)
	for _, c := range crossings {
		bySubject[c.subject] = append(bySubject[c.subject], c)
		byClip[c.clip] = append(byClip[c.clip], c)
	}
	splitChain(bySubject,
		func(c *crossing) float64 { return c.u },
		func(c *crossing, v *vertex) { c.subject = v })
	splitChain(byClip,
		func(c *crossing) float64 { return c.v },
		func(c *crossing, v *vertex) { c.clip = v })

	for _, c := range crossings {
		c.subject.location, c.clip.location = onEdge, onEdge
		c.subject.neighbor, c.clip.neighbor = c.clip, c.subject
	}
}

func locateEdges(chain *vertex, other *shape.Path) {
	for _, v := range chain.vertices() {
		v.forwardEdgeLocation = locateEdge(v, other)
	}
}

func locateEdge(v *vertex, other *shape.Path) location {
	current, next := v.location, v.next.location
	switch {
	case current == outside && next == inside, current == inside && next == outside:
		throw.Fatal(ErrInconsistentLocations, fmt.Sprintf("edge %v", v.forwardEdge))
	case current == outside || next == outside:
		return outside
	case current == inside || next == inside:
		return inside
	}

	// Both ends on the other boundary: the middle decides.
	midpoint := v.forwardEdge.Midpoint()
	if midpoint.Distance(other.ClosestPointTo(midpoint)) < geom.Thickness {
		return onEdge
	}
	if other.ContainsPoint(midpoint) {
		return inside
	}
	return outside
}

func setRoles(chain *vertex) {
	for _, v := range chain.vertices() {
		if v.neighbor == nil {
			continue
		}
		v.role = roleFromEdgeLocations[v.backwardEdgeLocation()][v.forwardEdgeLocation]
		// A touch with no change of side is no intersection at all.
		if v.role == noRole {
			v.neighbor = nil
		}
	}
}

func reverseRoles(chain *vertex) {
	for _, v := range chain.vertices() {
		v.role = v.role.reversed()
	}
}

func markCouples(chain *vertex) {
	vertices := chain.vertices()
	var previous *vertex
	// Twice round so the last intersection can couple with the first.
	for i := 0; i < 2*len(vertices); i++ {
		v := vertices[i%len(vertices)]
		if !v.isIntersection() {
			continue
		}
		if previous != nil && previous != v && (v.role == entry || v.role == exit) && v.role == previous.role {
			v.partner, previous.partner = previous, v
			previous.firstPartner = true
		}
		previous = v
	}
}
