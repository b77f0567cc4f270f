package internal

import (
	"github.com/osuushi/skeleton/geom"
	"github.com/osuushi/skeleton/shape"
	"github.com/pkg/errors"
)

// Segments shorter than this can't give an edge a direction.
const minimumEdgeLength = geom.RoughlyEpsilon

// Build the edge cycles for path and return their roots. A closed path gives
// an inner cycle, plus an outer one unless propagating forever. An open path
// gives one cycle: its right side, a start cap, its left side and an end cap.
func buildEdges(p *Processor, path *shape.Path, infinite bool) ([]*Edge, error) {
	if path == nil || path.Len() == 0 {
		return nil, errors.WithStack(shape.ErrEmptyPath)
	}

	if path.IsClosed() {
		// Edges move to their left, so the inner cycle runs counterclockwise.
		if path.IsClockwise() {
			path = path.Reverse()
		}
		segments := usableSegments(path)
		if len(segments) < 3 {
			return nil, errors.Wrapf(ErrUnsupportedConfiguration, "closed path needs 3 edges, has %d", len(segments))
		}
		roots := []*Edge{closedCycle(p, segments, false)}
		if !infinite {
			roots = append(roots, closedCycle(p, segments, true))
		}
		return roots, nil
	}

	if infinite {
		return nil, errors.Wrap(ErrUnsupportedConfiguration, "cannot propagate an open path infinitely")
	}
	segments := usableSegments(path)
	if len(segments) == 0 {
		return nil, errors.Wrap(shape.ErrEmptyPath, "every segment has zero length")
	}
	return []*Edge{openCycle(p, segments)}, nil
}

func usableSegments(path *shape.Path) []geom.Segment {
	var segments []geom.Segment
	for i, s := range path.Segments {
		if s.Start().Distance(s.End()) < minimumEdgeLength {
			Logger().Warn("skipping zero length segment", "index", i, "at", s.Start())
			continue
		}
		segments = append(segments, s)
	}
	return segments
}

func edgeAt(p *Processor, position geom.Vector2, side EdgeSide) *Edge {
	return newEdge(p, newVertex(p, position, 0), side)
}

func closedCycle(p *Processor, segments []geom.Segment, outer bool) *Edge {
	edges := make([]*Edge, 0, len(segments))
	if outer {
		for i := len(segments) - 1; i >= 0; i-- {
			edges = append(edges, edgeAt(p, segments[i].End(), OuterEdge))
		}
	} else {
		for _, s := range segments {
			edges = append(edges, edgeAt(p, s.Start(), InnerEdge))
		}
	}
	connect(edges...)
	connect(edges[len(edges)-1], edges[0])
	return edges[0]
}

func openCycle(p *Processor, segments []geom.Segment) *Edge {
	edges := make([]*Edge, 0, 2*len(segments)+2)
	for i := len(segments) - 1; i >= 0; i-- {
		edges = append(edges, edgeAt(p, segments[i].End(), OuterEdge))
	}
	edges = append(edges, edgeAt(p, segments[0].Start(), StartCapEdge))
	for _, s := range segments {
		edges = append(edges, edgeAt(p, s.Start(), InnerEdge))
	}
	edges = append(edges, edgeAt(p, segments[len(segments)-1].End(), EndCapEdge))

	connect(edges...)
	connect(edges[len(edges)-1], edges[0])
	return edges[0]
}

// The four rays that trim open path caps on commit: for each end, one ray
// bounding the cap going forward and one going backward.
func capRays(path *shape.Path, weight float64) []geom.Ray {
	first := path.Segments[0]
	last := path.Segments[path.Len()-1]

	startDirection := first.Direction().Negate()
	startNormal := geom.Vector2{X: -startDirection.Y, Y: startDirection.X}
	endDirection := last.EndDirection()
	endNormal := geom.Vector2{X: -endDirection.Y, Y: endDirection.X}

	a := startDirection.Lerp(startNormal, 1-weight)
	b := startDirection.Lerp(startNormal, weight)
	c := endDirection.Lerp(endNormal, 1-weight)
	d := endDirection.Lerp(endNormal, weight)

	return []geom.Ray{
		{Start: path.Start(), Direction: geom.Vector2{X: b.Y, Y: -b.X}},
		{Start: path.Start(), Direction: a},
		{Start: path.End(), Direction: geom.Vector2{X: d.Y, Y: -d.X}},
		{Start: path.End(), Direction: c},
	}
}
