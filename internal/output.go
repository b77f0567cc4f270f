package internal

import (
	"github.com/osuushi/skeleton/geom"
	"github.com/osuushi/skeleton/internal/throw"
	"github.com/osuushi/skeleton/shape"
)

// Emit a wavefront that reached the limit: a last spoke for every vertex,
// then its boundary as waves.
func (p *Processor) commitWavefront(w *Wavefront) {
	Logger().Debug("committing wavefront", "wavefront", w.ID, "time", w.Time, "length", w.Length)
	edges := w.Edges()
	for _, edge := range edges {
		p.commitVertex(edge.Start, w.Time)
	}

	if p.caps != nil {
		var caps []*Edge
		for _, edge := range edges {
			if edge.IsCap() {
				caps = append(caps, edge)
			}
		}
		p.trimCaps(caps)
	}

	p.commitWaves(w)
}

// Cut every cap against its bounding rays. Edges walked past before a ray is
// met, in either direction, are dead and produce no wave.
func (p *Processor) trimCaps(caps []*Edge) {
	for _, capEdge := range caps {
		forward, backward := p.caps[0], p.caps[1]
		if capEdge.Side == EndCapEdge {
			forward, backward = p.caps[2], p.caps[3]
		}

		for current := capEdge; ; {
			if hits := geom.Intersect(current.segment(), forward); len(hits) > 0 {
				trimmed := geom.NewLineSegment(hits[0].P, current.committedSegment().End())
				current.cutSegment = &trimmed
				break
			}
			if !current.IsCap() {
				current.Side = DeadEdge
			}
			current = current.Next
			if current.IsCap() {
				break
			}
		}

		for current := capEdge; ; {
			if hits := geom.Intersect(current.segment(), backward); len(hits) > 0 {
				if current.cutSegment != nil {
					current.cutReverse = true
				}
				trimmed := geom.NewLineSegment(current.committedSegment().Start(), hits[0].P)
				current.cutSegment = &trimmed
				break
			}
			if !current.IsCap() {
				current.Side = DeadEdge
			}
			current = current.Previous
			if current.IsCap() {
				break
			}
		}
	}

	for _, capEdge := range caps {
		if capEdge.cutSegment == nil {
			capEdge.Side = DeadEdge
		}
	}
}

// The part of the edge that survives cap trimming.
func (e *Edge) committedSegment() geom.LineSegment {
	if e.cutSegment != nil {
		return *e.cutSegment
	}
	return e.segment()
}

// Split the boundary into one wave per run of equal sides, dropping dead
// runs.
func (p *Processor) commitWaves(w *Wavefront) {
	side := EdgeSide(-1)
	var pather *shape.Pather
	commit := func() { p.commitWave(pather, side) }

	for _, edge := range w.Edges() {
		segment := edge.committedSegment()
		if side != edge.Side {
			commit()
			side = edge.Side
			if edge.cutReverse {
				// The edge was trimmed from both ends and only its two tips
				// survive, each in its own wave.
				pather = shape.NewPather(edge.Start.Position).LineTo(edge.cutSegment.End())
				commit()
				pather = shape.NewPather(edge.cutSegment.Start())
			} else {
				pather = shape.NewPather(segment.Start())
			}
		}
		if edge.cutReverse {
			pather.LineTo(edge.segment().End())
		} else {
			pather.LineTo(segment.End())
		}
	}
	commit()
}

func (p *Processor) commitWave(pather *shape.Pather, side EdgeSide) {
	if pather == nil || side == DeadEdge {
		return
	}
	path, err := pather.Path()
	if err != nil {
		throw.Fatalf("building %v wave: %v", side, err)
	}
	if path.Len() == 0 {
		Logger().Debug("dropping empty wave", "side", side)
		return
	}
	p.Waves = append(p.Waves, Wave{Path: path, Side: side})
}
