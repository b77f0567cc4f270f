// Straight skeletons of polygonal paths for Go.
//
// Every edge of a path is moved along its normal at unit speed. The corners
// trace out spokes, and whatever is left of the boundary when the limit is
// reached comes back as waves. A closed path shrinks inside and grows outside;
// an open path grows on both sides and around both ends.
package skeleton

import (
	"log/slog"
	"math"

	"github.com/osuushi/skeleton/geom"
	"github.com/osuushi/skeleton/internal"
	"github.com/osuushi/skeleton/internal/throw"
	"github.com/osuushi/skeleton/shape"
	"github.com/pkg/errors"
)

type Wave = internal.Wave
type EdgeSide = internal.EdgeSide

const (
	InnerEdge    = internal.InnerEdge
	OuterEdge    = internal.OuterEdge
	StartCapEdge = internal.StartCapEdge
	EndCapEdge   = internal.EndCapEdge
	DeadEdge     = internal.DeadEdge
)

var (
	ErrEventsExhaustedPrematurely = internal.ErrEventsExhaustedPrematurely
	ErrUnsupportedConfiguration   = internal.ErrUnsupportedConfiguration
	ErrInvariant                  = throw.ErrInvariant
	ErrEmptyPath                  = shape.ErrEmptyPath
	ErrInvalidCapWeight           = errors.New("cap weight must be between 0 and 1")
)

// Propagate until every wavefront has collapsed. Only closed paths can.
var Infinity = math.Inf(1)

// Skeleton is the result of propagating one path.
type Skeleton struct {
	// The trail of every corner, with time as Z.
	Spokes []geom.LineSegment3
	// The boundary left at the limit, split by side.
	Waves []Wave

	processor *internal.Processor
}

// New propagates path up to limit. Pass Infinity to propagate a closed path
// until it vanishes entirely.
func New(path *shape.Path, limit float64, opts Options) (result *Skeleton, err error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(limit) || limit < 0 {
		return nil, errors.Errorf("limit must be non-negative, got %v", limit)
	}

	defer func() {
		if recoveredErr := throw.HandlePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	p, err := internal.NewProcessor(path, limit, opts.config())
	if err != nil {
		return nil, err
	}
	p.Run()
	return &Skeleton{Spokes: p.Spokes, Waves: p.Waves, processor: p}, nil
}

// Draw the spokes and waves to a PNG file, at scale pixels per unit.
func (s *Skeleton) SavePNG(filename string, scale float64) error {
	return errors.Wrap(s.processor.SavePNG(filename, scale), "saving skeleton drawing")
}

// Paths of the waves from one side only.
func (s *Skeleton) WavesOf(side EdgeSide) []*shape.Path {
	var paths []*shape.Path
	for _, wave := range s.Waves {
		if wave.Side == side {
			paths = append(paths, wave.Path)
		}
	}
	return paths
}

// SetLogger sets the logger for debug output of the solver. By default nothing
// is logged. Nil restores the default.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}
