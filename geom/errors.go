package geom

import "github.com/pkg/errors"

var (
	// The chord of a curve faces against its start direction, so the circle
	// would need an infinite radius.
	ErrDegenerateCurve = errors.New("not a valid curve, infinite circle found")
	ErrNoCircle        = errors.New("not a valid curve, no circle found")
)
