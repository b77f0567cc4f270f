package internal

import (
	"math"

	"github.com/osuushi/skeleton/geom"
	"github.com/osuushi/skeleton/internal/dbg"
	"github.com/osuushi/skeleton/internal/throw"
	"github.com/osuushi/skeleton/shape"
	"github.com/pkg/errors"
)

var (
	ErrEventsExhaustedPrematurely = errors.New("events exhausted before the wavefront collapsed")
	ErrUnsupportedConfiguration   = errors.New("unsupported configuration")
)

// Config tunes a single run.
type Config struct {
	// Splits the direction of open path end caps between straight back and
	// sideways. Nil leaves caps uncut.
	CapWeight *float64
	// Check every wavefront chain after each batch of events.
	Validate bool
	// Log every wavefront boundary after each batch of events.
	Debug bool
	// Save a drawing of the result to this PNG file.
	DebugDraw string
	// Print a drawing of the result to an iTerm terminal.
	DebugTerminal bool
}

// Pixels per unit of the debug drawings.
const debugDrawScale = 100

// Wave is a final wavefront boundary. Open paths produce one per run of edges
// from the same side.
type Wave struct {
	Path *shape.Path
	Side EdgeSide
}

// Processor owns all state of one skeleton computation: the live wavefronts,
// the output spokes and waves, and the id counter.
type Processor struct {
	Spokes []geom.LineSegment3
	Waves  []Wave

	limit      float64
	config     Config
	caps       []geom.Ray
	wavefronts []*Wavefront
	ids        int
}

// Build the initial wavefronts for path. A limit of +Inf propagates until
// everything has collapsed.
func NewProcessor(path *shape.Path, limit float64, config Config) (*Processor, error) {
	p := &Processor{limit: limit, config: config}
	roots, err := buildEdges(p, path, math.IsInf(limit, 1))
	if err != nil {
		return nil, err
	}

	if config.CapWeight != nil && !path.IsClosed() {
		p.caps = capRays(path, *config.CapWeight)
	}

	for _, root := range roots {
		w := newWavefront(p, root, 0).initialise()
		p.addWavefront(w)
	}
	return p, nil
}

func (p *Processor) nextID() int {
	p.ids++
	return p.ids
}

func (p *Processor) Wavefronts() []*Wavefront { return p.wavefronts }

func (p *Processor) addWavefront(w *Wavefront) {
	Logger().Debug("adding wavefront", "wavefront", w.ID, "length", w.Length, "time", w.Time)
	p.wavefronts = append(p.wavefronts, w)
}

func (p *Processor) removeWavefront(w *Wavefront) {
	for i, other := range p.wavefronts {
		if other == w {
			p.wavefronts = append(p.wavefronts[:i], p.wavefronts[i+1:]...)
			return
		}
	}
}

// Run every wavefront to collapse or to the limit. Invariant failures and
// exhaustion panic with a throw.Error.
func (p *Processor) Run() {
	for len(p.wavefronts) > 0 {
		w := p.wavefronts[0]
		if !w.process(p.limit) {
			if math.IsInf(p.limit, 1) {
				throw.Fatal(ErrEventsExhaustedPrematurely, w.String())
			}
			p.commitWavefront(w)
			w.remove()
			continue
		}

		if p.config.Validate {
			for _, live := range p.wavefronts {
				live.checkChain()
			}
		}
		if p.config.Debug && w.Root != nil {
			Logger().Debug("wavefront", "wavefront", w.ID, "time", w.Time, "boundary", dbg.Dump(w.ToPath().Points()))
		}
	}

	if p.config.DebugDraw != "" {
		if err := p.SavePNG(p.config.DebugDraw, debugDrawScale); err != nil {
			Logger().Warn("could not save debug drawing", "file", p.config.DebugDraw, "error", err)
		}
	}
	if p.config.DebugTerminal {
		p.dbgDraw(debugDrawScale)
	}
}

func (p *Processor) commitSpoke(start, end geom.Vector3) {
	if start.RoughlyEqual(end) {
		return
	}
	p.Spokes = append(p.Spokes, geom.LineSegment3{Start: start, End: end})
}

// Extend the vertex's trail to where it is at time.
func (p *Processor) commitVertex(v *Vertex, time float64) {
	beginning := v.Position.Extend(time)
	p.commitSpoke(v.Beginning, beginning)
	v.Beginning = beginning
}
