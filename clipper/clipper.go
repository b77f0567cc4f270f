// Package clipper implements Boolean operations on closed paths, following
// "An Extension of Polygon Clipping To Resolve Degenerate Cases" by Dae Hyun
// Kim and Myoung-Jun Kim.
//
// Both paths become cyclic vertex chains, split wherever they cross. Each
// crossing gets an entry or exit role from the location of the edges around
// it, and the result is traced by walking the chains, switching from one to
// the other at every crossing.
package clipper

import (
	"github.com/osuushi/skeleton/geom"
	"github.com/osuushi/skeleton/internal"
	"github.com/osuushi/skeleton/internal/throw"
	"github.com/osuushi/skeleton/shape"
	"github.com/pkg/errors"
)

var (
	ErrOpenPath              = errors.New("path must be closed to be clipped")
	ErrInconsistentLocations = errors.New("edge goes between inside and outside without an intersection")
)

type Mode int

const (
	// Area covered by both paths.
	IntersectionMode Mode = iota
	// Area covered by either path.
	UnionMode
	// Area of the subject outside the clip.
	DifferenceMode
	// Area of the clip outside the subject.
	NotMode
)

func (m Mode) String() string {
	return [...]string{"intersection", "union", "difference", "not"}[m]
}

func Intersection(subject, clip *shape.Path) ([]*shape.Path, error) {
	return Clip(IntersectionMode, subject, clip)
}

func Union(subject, clip *shape.Path) ([]*shape.Path, error) {
	return Clip(UnionMode, subject, clip)
}

func Difference(subject, clip *shape.Path) ([]*shape.Path, error) {
	return Clip(DifferenceMode, subject, clip)
}

func Not(subject, clip *shape.Path) ([]*shape.Path, error) {
	return Clip(NotMode, subject, clip)
}

// Clip combines two closed paths. The resulting paths are welded, so corners
// closer than geom.Thickness are merged.
func Clip(mode Mode, subject, clip *shape.Path) (result []*shape.Path, err error) {
	if !subject.IsClosed() || !clip.IsClosed() {
		return nil, errors.WithStack(ErrOpenPath)
	}
	defer func() {
		if err = throw.HandlePanicRecover(recover()); err != nil {
			result = nil
		}
	}()

	if subject.IsClockwise() {
		subject = subject.Reverse()
	}
	if clip.IsClockwise() {
		clip = clip.Reverse()
	}

	subjectChain := newChain(subject, clip)
	clipChain := newChain(clip, subject)
	crossings := findCrossings(subjectChain, clipChain)
	splitAtCrossings(crossings)
	locateEdges(subjectChain, clip)
	locateEdges(clipChain, subject)

	// The paths lie exactly on top of each other.
	coincident := true
	for _, v := range subjectChain.vertices() {
		if v.forwardEdgeLocation != onEdge {
			coincident = false
			break
		}
	}
	if coincident {
		if mode == UnionMode || mode == IntersectionMode {
			return []*shape.Path{subjectChain.toPath()}, nil
		}
		return nil, nil
	}

	setRoles(subjectChain)
	setRoles(clipChain)
	markCouples(subjectChain)
	markCouples(clipChain)

	if !hasIntersections(subjectChain) {
		return separate(mode, subject, clip, subjectChain, clipChain), nil
	}

	if mode == UnionMode || mode == DifferenceMode {
		reverseRoles(subjectChain)
	}
	if mode == UnionMode || mode == NotMode {
		reverseRoles(clipChain)
	}

	internal.Logger().Debug("clipping", "mode", mode, "crossings", len(crossings))
	for _, path := range traverse(subjectChain, clipChain) {
		result = append(result, path.Weld(geom.Thickness))
	}
	return result, nil
}

func hasIntersections(chain *vertex) bool {
	for _, v := range chain.vertices() {
		if v.isIntersection() {
			return true
		}
	}
	return false
}

func isInside(chain *vertex) bool {
	for _, v := range chain.vertices() {
		if v.location == inside {
			return true
		}
	}
	return false
}

// The result when the boundaries never cross: the paths are disjoint, or one
// holds the other. Holes come back as clockwise paths.
func separate(mode Mode, subject, clip *shape.Path, subjectChain, clipChain *vertex) []*shape.Path {
	subjectInside, clipInside := isInside(subjectChain), isInside(clipChain)
	switch mode {
	case IntersectionMode:
		switch {
		case subjectInside:
			return []*shape.Path{subject}
		case clipInside:
			return []*shape.Path{clip}
		}
		return nil
	case UnionMode:
		switch {
		case subjectInside:
			return []*shape.Path{clip}
		case clipInside:
			return []*shape.Path{subject}
		}
		return []*shape.Path{subject, clip}
	case NotMode:
		subject, clip = clip, subject
		subjectInside, clipInside = clipInside, subjectInside
	}

	switch {
	case subjectInside:
		return nil
	case clipInside:
		return []*shape.Path{subject, clip.Reverse()}
	}
	return []*shape.Path{subject}
}
