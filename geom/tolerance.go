package geom

import "math"

const (
	// Tolerance used for "roughly equal" comparisons throughout the geometry.
	RoughlyEpsilon = 1e-4
	// Positional tolerance for deciding whether two primitives touch.
	Thickness = 0.03
)

// To compensate for imprecision in floats, most equality checks in the
// geometry are tolerance based.
func RoughlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= RoughlyEpsilon
}

func RoughlyEqualWithin(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

func Clamp(min, x, max float64) float64 {
	return math.Min(math.Max(x, min), max)
}

func Between(min, x, max float64) bool {
	return min <= x && x <= max
}

// Like Between, but the bounds are widened by RoughlyEpsilon.
func RoughlyBetween(min, x, max float64) bool {
	return (min < x || RoughlyEqual(min, x)) && (x < max || RoughlyEqual(max, x))
}

// Sign is tolerant: anything roughly zero has sign 0.
func Sign(x float64) int {
	switch {
	case RoughlyEqual(x, 0):
		return 0
	case x > 0:
		return 1
	default:
		return -1
	}
}

// Often we want to treat a slice as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
