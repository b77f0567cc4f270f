package geom

import "math"

// Centroid of a triangle.
func TriangleCenter(a, b, c Vector2) Vector2 {
	return Vector2{(a.X + b.X + c.X) / 3, (a.Y + b.Y + c.Y) / 3}
}

func Colinear(a, b, c Vector2) bool {
	return RoughlyEqual((b.X-a.X)*(c.Y-a.Y), (c.X-a.X)*(b.Y-a.Y))
}

// Angle of v in turns, in [0, 1).
func Theta(v Vector2) float64 {
	angle := math.Atan2(v.Y, v.X)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle / (2 * math.Pi)
}

func AngleFrom(p, center Vector2) float64 {
	return Theta(p.Sub(center))
}
