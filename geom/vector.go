package geom

import (
	"fmt"
	"math"
)

type Vector2 struct {
	X, Y float64
}

// Positions on the skeleton roof. Z is simulation time.
type Vector3 struct {
	X, Y, Z float64
}

func V(x, y float64) Vector2 {
	return Vector2{x, y}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%.4g, %.4g)", v.X, v.Y)
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// v + o*s
func (v Vector2) ScaleAndAdd(o Vector2, s float64) Vector2 {
	return Vector2{v.X + o.X*s, v.Y + o.Y*s}
}

func (v Vector2) Negate() Vector2 {
	return Vector2{-v.X, -v.Y}
}

func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Z component of the 3D cross product of v and o.
func (v Vector2) Cross(o Vector2) float64 {
	return v.X*o.Y - o.X*v.Y
}

func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector2) SquaredLength() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector2) Distance(o Vector2) float64 {
	return v.Sub(o).Length()
}

// The zero vector normalizes to itself.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector2{v.X / l, v.Y / l}
}

// Clockwise quarter turn in a y-up system.
func (v Vector2) Perpendicular() Vector2 {
	return Vector2{v.Y, -v.X}
}

// v + perpendicular(direction)*s
func (v Vector2) ScalePerpendicularAndAdd(direction Vector2, s float64) Vector2 {
	return Vector2{v.X + direction.Y*s, v.Y - direction.X*s}
}

func (v Vector2) Lerp(o Vector2, t float64) Vector2 {
	return Vector2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Counter-clockwise rotation by angle radians.
func (v Vector2) Rotate(angle float64) Vector2 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vector2{c*v.X - s*v.Y, s*v.X + c*v.Y}
}

func (v Vector2) RoughlyEqual(o Vector2) bool {
	return v.Within(o, RoughlyEpsilon)
}

func (v Vector2) Within(o Vector2, epsilon float64) bool {
	return math.Abs(v.X-o.X) <= epsilon && math.Abs(v.Y-o.Y) <= epsilon
}

func (v Vector2) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// Unsigned angle between v and o in radians.
func (v Vector2) AngleBetween(o Vector2) float64 {
	cos := v.Dot(o) / (v.Length() * o.Length())
	return math.Acos(Clamp(-1, cos, 1))
}

// Angle swept from v to o when travelling in vDirection, in [0, 2π).
func (v Vector2) AngleBetweenWithDirections(vDirection, o Vector2) float64 {
	angle := v.AngleBetween(o)
	if vDirection.Dot(o.Sub(v)) >= 0 {
		return angle
	}
	return 2*math.Pi - angle
}

func (v Vector2) Extend(z float64) Vector3 {
	return Vector3{v.X, v.Y, z}
}

func (v Vector3) XY() Vector2 {
	return Vector2{v.X, v.Y}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vector3) RoughlyEqual(o Vector3) bool {
	return RoughlyEqual(v.X, o.X) && RoughlyEqual(v.Y, o.Y) && RoughlyEqual(v.Z, o.Z)
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%.4g, %.4g, %.4g)", v.X, v.Y, v.Z)
}
