package clipper

import (
	"github.com/osuushi/skeleton/geom"
	"github.com/osuushi/skeleton/internal"
	"github.com/osuushi/skeleton/internal/throw"
	"github.com/osuushi/skeleton/shape"
)

type direction int

const (
	forwardStay direction = iota
	forwardSwitch
	backwardStay
	backwardSwitch
)

func (d direction) String() string {
	return [...]string{"forward & stay", "forward & switch", "backward & stay", "backward & switch"}[d]
}

func (d direction) isStay() bool { return d == forwardStay || d == backwardStay }

// Trace result paths until no unused intersection is left to start from.
func traverse(subject, clip *vertex) []*shape.Path {
	// Each step either emits an edge or switches chains, so a walk can't be
	// longer than this.
	maxSteps := 2 * (len(subject.vertices()) + len(clip.vertices()))

	var paths []*shape.Path
	for walks := 0; ; walks++ {
		start := findStart(subject)
		if start == nil {
			return paths
		}
		if walks > maxSteps {
			throw.Fatalf("clipping keeps restarting at %v", start)
		}

		var edges []geom.Segment
		d := nextDirection(start, start, forwardSwitch)
		previousIntersection := start
		current := proceed(start, d, &edges)

		for steps := 0; current != start && !(current.neighbor != nil && current.role == noRole); steps++ {
			if steps > maxSteps {
				throw.Fatalf("clipping traversal from %v does not return", start)
			}
			if current.isIntersection() {
				d = nextDirection(current, previousIntersection, d)
				previousIntersection = current
			}
			internal.Logger().Debug("clip step", "vertex", current, "direction", d)
			current = proceed(current, d, &edges)
		}

		if len(edges) > 2 || containsCurve(edges) {
			paths = append(paths, shape.NewPath(edges))
		}
	}
}

func containsCurve(edges []geom.Segment) bool {
	for _, edge := range edges {
		if edge.Kind() == geom.KindCurve {
			return true
		}
	}
	return false
}

// The direction to leave an intersection by, given the direction we arrived
// in. Used roles are cleared, or reduced to the half not yet used.
func nextDirection(current, previousIntersection *vertex, d direction) direction {
	coupled := current.partner != nil && previousIntersection.partner == current

	if d.isStay() {
		// Arriving along the same chain
		forward := d == forwardStay
		switch current.role {
		case entryExit:
			if forward {
				current.role = exit
				return forwardSwitch
			}
			current.role = entry
			return backwardSwitch
		case exitEntry:
			if forward {
				current.role = entry
				return forwardSwitch
			}
			current.role = exit
			return backwardSwitch
		case entry:
			current.role = noRole
			if forward && coupled {
				return forwardStay
			}
		case exit:
			current.role = noRole
			if !forward && coupled {
				return backwardStay
			}
		}
		if forward {
			return forwardSwitch
		}
		return backwardSwitch
	}

	// Arriving from the other chain
	switch current.role {
	case entryExit:
		current.role = noRole
		if d == forwardSwitch {
			return backwardSwitch
		}
		return forwardSwitch
	case exitEntry:
		if d == forwardSwitch {
			current.role = entry
			return backwardStay
		}
		current.role = exit
		return forwardStay
	case entry:
		current.role = noRole
		return forwardStay
	case exit:
		current.role = noRole
		return backwardStay
	}
	return d
}

// Take one step, collecting the edge walked along.
func proceed(v *vertex, d direction, edges *[]geom.Segment) *vertex {
	switch d {
	case forwardStay:
		*edges = append(*edges, v.forwardEdge)
		return v.next
	case backwardStay:
		*edges = append(*edges, v.backwardEdge().Reverse())
		return v.previous
	}
	return v.neighbor
}

func findStart(chain *vertex) *vertex {
	for _, v := range chain.vertices() {
		if !v.isIntersection() {
			continue
		}
		if v.partner == nil {
			return v
		}
		switch {
		case v.isEntry() && v.partner.isEntry() && v.firstPartner:
			return v.partner
		case v.isExit() && v.partner.isExit() && !v.firstPartner:
			return v
		}
	}
	return nil
}
