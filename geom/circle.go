package geom

type Circle struct {
	Center Vector2
	Radius float64
}

func (Circle) Kind() Kind { return KindCircle }
func (Circle) primitive() {}

func (c Circle) BoundingBox() Rectangle {
	r := Vector2{c.Radius, c.Radius}
	return RectangleCorner(c.Center.Sub(r), c.Center.Add(r))
}

func (c Circle) Translate(offset Vector2) Circle {
	return Circle{c.Center.Add(offset), c.Radius}
}

func (c Circle) Scale(s float64) Circle {
	return Circle{c.Center.Scale(s), c.Radius * s}
}

// Angle of p around the centre, in turns.
func (c Circle) Angle(p Vector2) float64 {
	return AngleFrom(p, c.Center)
}

// Tangent direction at p.
func (c Circle) DirectionOf(p Vector2, clockwise bool) Vector2 {
	tail := c.Center.Sub(p)
	if clockwise {
		return Vector2{-tail.Y, tail.X}.Normalize()
	}
	return Vector2{tail.Y, -tail.X}.Normalize()
}

func (c Circle) ContainsPoint(p Vector2) bool {
	return c.Center.Distance(p) <= c.Radius+Thickness
}
