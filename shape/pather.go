package shape

import (
	"github.com/osuushi/skeleton/geom"
	"github.com/pkg/errors"
)

// Pather builds a path one segment at a time. The first error sticks and is
// reported by Path and Close.
type Pather struct {
	current   geom.Vector2
	direction *geom.Vector2
	segments  []geom.Segment
	err       error
}

func NewPather(start geom.Vector2) *Pather {
	return &Pather{current: start}
}

func (p *Pather) MoveTo(position geom.Vector2) *Pather {
	p.current = position
	p.direction = nil
	return p
}

func (p *Pather) LineTo(position geom.Vector2) *Pather {
	p.push(geom.NewLineSegment(p.current, position))
	return p
}

// Arc to position, continuing in the current direction.
func (p *Pather) CurveTo(position geom.Vector2) *Pather {
	if p.direction == nil {
		p.fail(errors.New("direction required if no existing segments"))
		return p
	}
	return p.CurveToWithDirection(position, *p.direction)
}

func (p *Pather) CurveToWithDirection(position, direction geom.Vector2) *Pather {
	s, err := geom.NewCurve(p.current, direction, position)
	if err != nil {
		p.fail(err)
		return p
	}
	p.push(s)
	return p
}

// Finish the path with a line back to its start.
func (p *Pather) Close() (*Path, error) {
	if p.err != nil {
		return nil, p.err
	}
	if len(p.segments) == 0 {
		return nil, errors.Wrap(ErrEmptyPath, "cannot close")
	}
	path := NewPath(p.segments)
	if path.IsClosed() {
		return path, nil
	}
	p.LineTo(p.segments[0].Start())
	return NewPath(p.segments), nil
}

func (p *Pather) Path() (*Path, error) {
	if p.err != nil {
		return nil, p.err
	}
	return NewPath(p.segments), nil
}

func (p *Pather) push(s geom.Segment) {
	if p.err != nil {
		return
	}
	p.segments = append(p.segments, s)
	p.current = s.End()
	direction := s.EndDirection()
	p.direction = &direction
}

func (p *Pather) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}
