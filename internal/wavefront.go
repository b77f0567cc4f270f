package internal

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/osuushi/skeleton/geom"
	"github.com/osuushi/skeleton/internal/dbg"
	"github.com/osuushi/skeleton/internal/throw"
	"github.com/osuushi/skeleton/shape"
)

// Events closer together than this are simultaneous and processed as one
// batch.
const TimeEpsilon = 1e-8

type event interface {
	fmt.Stringer
	Time() float64
	isValid() bool
	process()
	remove()
}

// Wavefront is one connected, independently moving boundary.
type Wavefront struct {
	ID     int
	Root   *Edge
	Time   float64
	Length int

	processor *Processor
}

// Take ownership of the cycle through root.
func newWavefront(p *Processor, root *Edge, time float64) *Wavefront {
	w := &Wavefront{ID: p.nextID(), Root: root, Time: time, processor: p}
	w.recount()
	return w
}

func (w *Wavefront) String() string {
	return fmt.Sprintf("%s#%d(len=%d t=%.6g)", dbg.Name(w), w.ID, w.Length, w.Time)
}

// Edges in order from the root.
func (w *Wavefront) Edges() []*Edge {
	if w.Root == nil {
		return nil
	}
	var edges []*Edge
	edge := w.Root
	for {
		edges = append(edges, edge)
		edge = edge.Next
		if edge == w.Root {
			return edges
		}
		if len(edges) > w.processor.ids {
			throw.Fatalf("wavefront %d does not cycle back to its root", w.ID)
		}
	}
}

func (w *Wavefront) recount() {
	w.Length = 0
	for _, edge := range w.Edges() {
		edge.Wavefront = w
		w.Length++
	}
}

// The four passes must run in this order; each consumes what the one before
// computed.
func (w *Wavefront) initialise() *Wavefront {
	edges := w.Edges()
	for _, edge := range edges {
		edge.computeDirection()
	}
	for _, edge := range edges {
		edge.Start.computeDirectionAndSpeed()
	}
	for _, edge := range edges {
		edge.computeCollapseEvent()
	}
	for _, edge := range edges {
		edge.computeSplitEvents()
	}
	return w
}

// Advance to the next batch of events and apply it. Returns false, having
// moved to limit, when no event happens before the limit.
func (w *Wavefront) process(limit float64) bool {
	var (
		time  float64
		batch []event
	)
	for {
		time, batch = w.nextEvents()
		if len(batch) == 0 || time > limit+TimeEpsilon {
			if !math.IsInf(limit, 1) {
				w.move(limit)
			}
			return false
		}

		valid := false
		for _, e := range batch {
			if e.isValid() {
				valid = true
			} else {
				Logger().Debug("discarding event", slog.Any("event", e))
				e.remove()
			}
		}
		if valid {
			break
		}
	}

	w.move(time)
	Logger().Debug("processing batch", "wavefront", w.ID, "time", time, "events", len(batch))
	for _, e := range batch {
		if e.isValid() {
			Logger().Debug("event", slog.Any("event", e))
			e.process()
		}
		e.remove()
	}
	return true
}

// The earliest events of the wavefront, together with every other event
// within TimeEpsilon of them. The returned time is the latest in the batch.
func (w *Wavefront) nextEvents() (float64, []event) {
	var candidates []event
	earliest := math.Inf(1)
	consider := func(e event) {
		t := e.Time()
		if math.IsInf(t, 1) {
			return
		}
		if t < w.Time-TimeEpsilon {
			throw.Fatalf("event %v predicted before wavefront time %v", e, w.Time)
		}
		candidates = append(candidates, e)
		earliest = math.Min(earliest, t)
	}

	for _, edge := range w.Edges() {
		if edge.Collapse != nil {
			consider(edge.Collapse)
		}
		for _, e := range edge.Start.Events {
			consider(e)
		}
	}

	var batch []event
	latest := math.Inf(-1)
	for _, e := range candidates {
		if geom.RoughlyEqualWithin(e.Time(), earliest, TimeEpsilon) {
			batch = append(batch, e)
			latest = math.Max(latest, e.Time())
		}
	}
	if len(batch) == 0 {
		return math.Inf(1), nil
	}
	return latest, batch
}

func (w *Wavefront) move(time float64) {
	delta := time - w.Time
	for _, edge := range w.Edges() {
		edge.Start.move(delta)
	}
	w.Time = time
}

func (w *Wavefront) retireEdges() {
	for _, edge := range w.Edges() {
		edge.retire()
	}
	w.Length = 0
}

func (w *Wavefront) remove() {
	w.retireEdges()
	w.Root = nil
	w.processor.removeWavefront(w)
}

// Finish a wavefront too small to carry on: a single spoke joins what is
// left of it.
func (w *Wavefront) finishDegenerate() {
	p := w.processor
	start, end := w.Root.Start, w.Root.End()
	p.commitVertex(start, w.Time)
	p.commitVertex(end, w.Time)
	p.commitSpoke(start.Position.Extend(w.Time), end.Position.Extend(w.Time))
}

// The current boundary as a closed polygon.
func (w *Wavefront) ToPath() *shape.Path {
	var points []geom.Vector2
	for _, edge := range w.Edges() {
		points = append(points, edge.Start.Position)
	}
	if len(points) > 0 {
		points = append(points, points[0])
	}
	return shape.FromPoints(points, false)
}

// Panic unless the chain, the vertex ownership and Length all agree.
func (w *Wavefront) checkChain() {
	if w.Root == nil {
		throw.Fatalf("wavefront %v has no root", w)
	}
	length := 0
	edge := w.Root
	for {
		length++
		if length > w.Length {
			throw.Fatalf("wavefront %v chain longer than its length", w)
		}
		switch {
		case edge.Next.Previous != edge:
			throw.Fatalf("edge %v: next does not link back", edge)
		case edge.Start.NextEdge != edge:
			throw.Fatalf("edge %v: vertex %v belongs elsewhere", edge, edge.Start)
		case edge.Wavefront != w:
			throw.Fatalf("edge %v belongs to wavefront %v, not %v", edge, edge.Wavefront, w)
		}
		edge = edge.Next
		if edge == w.Root {
			break
		}
	}
	if length != w.Length {
		throw.Fatalf("wavefront %v chain has %d edges", w, length)
	}
}
