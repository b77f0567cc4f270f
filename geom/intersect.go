package geom

import (
	"fmt"
	"math"
	"sort"

	"github.com/osuushi/skeleton/internal/throw"
)

// A point where two primitives meet. U is the parameter on the first operand
// and V on the second. For finite segments they are fractions of the length;
// for rays and lines, multiples of the direction; for circles, the angle
// around the centre in turns.
type Intersection struct {
	P    Vector2
	U, V float64
}

func (i Intersection) String() string {
	return fmt.Sprintf("%v u=%.4g v=%.4g", i.P, i.U, i.V)
}

func (i Intersection) IsDegenerate() bool {
	return i.UIsDegenerate() || i.VIsDegenerate()
}

func (i Intersection) UIsDegenerate() bool {
	return RoughlyEqual(i.U, 0) || RoughlyEqual(i.U, 1)
}

func (i Intersection) VIsDegenerate() bool {
	return RoughlyEqual(i.V, 0) || RoughlyEqual(i.V, 1)
}

type intersector func(a, b Primitive) []Intersection

// Indexed by [a.Kind()][b.Kind()]. Filled once in init and read-only after.
var intersectors [kindCount][kindCount]intersector

func typed[A, B Primitive](f func(A, B) []Intersection) intersector {
	return func(a, b Primitive) []Intersection {
		return f(a.(A), b.(B))
	}
}

func swapped[A, B Primitive](f func(B, A) []Intersection) intersector {
	return func(a, b Primitive) []Intersection {
		return swapUV(f(b.(B), a.(A)))
	}
}

func install(a, b Kind, f intersector) {
	if intersectors[a][b] != nil {
		panic(fmt.Sprintf("intersection %v-%v installed twice", a, b))
	}
	intersectors[a][b] = f
}

func init() {
	install(KindRay, KindRay, typed(rayRay))
	install(KindRay, KindLine, typed(rayLine))
	install(KindRay, KindLineSegment, typed(rayLineSegment))
	install(KindLine, KindLine, typed(lineLine))
	install(KindLine, KindRay, swapped[Line, Ray](rayLine))
	install(KindLineSegment, KindRay, swapped[LineSegment, Ray](rayLineSegment))
	install(KindLineSegment, KindLineSegment, typed(lineSegmentLineSegment))
	install(KindLineSegment, KindCircle, typed(lineSegmentCircle))
	install(KindLineSegment, KindCurve, typed(lineSegmentCurve))
	install(KindCircle, KindLineSegment, swapped[Circle, LineSegment](lineSegmentCircle))
	install(KindCircle, KindCircle, typed(circleCircle))
	install(KindCurve, KindLineSegment, swapped[Curve, LineSegment](lineSegmentCurve))
	install(KindCurve, KindCurve, typed(curveCurve))
}

// Intersect returns the zero, one or two points where a and b meet.
// Combinations without an intersection routine are a programming error.
func Intersect(a, b Primitive) []Intersection {
	f := intersectors[a.Kind()][b.Kind()]
	if f == nil {
		throw.Fatalf("intersection combination %v-%v not implemented", a.Kind(), b.Kind())
	}
	return f(a, b)
}

// Whether Intersect supports the pair.
func CanIntersect(a, b Kind) bool {
	return intersectors[a][b] != nil
}

func swapUV(found []Intersection) []Intersection {
	for i := range found {
		found[i].U, found[i].V = found[i].V, found[i].U
	}
	return found
}

// http://stackoverflow.com/questions/2931573/determining-if-two-rays-intersect
func rayRay(a, b Ray) []Intersection {
	det := b.Direction.X*a.Direction.Y - b.Direction.Y*a.Direction.X

	if RoughlyEqual(det, 0) {
		if a.Start.Within(b.Start, Thickness) {
			return []Intersection{{a.Start, 0, 0}}
		}
		if !a.Direction.RoughlyEqual(b.Direction) {
			return nil
		}
		if pointToLineDistance(a.Start, b.Start, b.Direction) > Thickness {
			return nil
		}
		// One ray contains the other, depending on which starts first
		if a.Direction.RoughlyEqual(b.Start.Sub(a.Start).Normalize()) {
			return []Intersection{{b.Start, 0, 0}}
		}
		return []Intersection{{a.Start, 0, 0}}
	}

	dx := b.Start.X - a.Start.X
	dy := b.Start.Y - a.Start.Y
	u := (dy*b.Direction.X - dx*b.Direction.Y) / det
	v := (dy*a.Direction.X - dx*a.Direction.Y) / det

	if u < -Thickness || v < -Thickness {
		return nil
	}
	u = math.Max(u, 0)
	v = math.Max(v, 0)

	return []Intersection{{a.At(u), u, v}}
}

func lineLine(a, b Line) []Intersection {
	det := b.Direction.X*a.Direction.Y - b.Direction.Y*a.Direction.X

	if RoughlyEqual(det, 0) {
		if a.Middle.Within(b.Middle, Thickness) {
			return []Intersection{{a.Middle, 0, 0}}
		}
		if pointToLineDistance(a.Middle, b.Middle, b.Direction) > Thickness {
			return nil
		}
		if a.Direction.RoughlyEqual(b.Middle.Sub(a.Middle).Normalize()) {
			return []Intersection{{b.Middle, 0, 0}}
		}
		return []Intersection{{a.Middle, 0, 0}}
	}

	dx := b.Middle.X - a.Middle.X
	dy := b.Middle.Y - a.Middle.Y
	u := (dy*b.Direction.X - dx*b.Direction.Y) / det
	v := (dy*a.Direction.X - dx*a.Direction.Y) / det

	return []Intersection{{a.Middle.ScaleAndAdd(a.Direction, u), u, v}}
}

func rayLine(a Ray, b Line) []Intersection {
	det := b.Direction.X*a.Direction.Y - b.Direction.Y*a.Direction.X

	if RoughlyEqual(det, 0) {
		if a.Start.Within(b.Middle, Thickness) {
			return []Intersection{{a.Start, 0, 0}}
		}
		if pointToLineDistance(a.Start, b.Middle, b.Direction) > Thickness {
			return nil
		}
		if a.Direction.RoughlyEqual(b.Middle.Sub(a.Start).Normalize()) {
			return []Intersection{{b.Middle, 0, 0}}
		}
		return []Intersection{{a.Start, 0, 0}}
	}

	dx := b.Middle.X - a.Start.X
	dy := b.Middle.Y - a.Start.Y
	u := (dy*b.Direction.X - dx*b.Direction.Y) / det
	v := (dy*a.Direction.X - dx*a.Direction.Y) / det

	if u < -Thickness {
		return nil
	}
	u = math.Max(u, 0)

	return []Intersection{{a.At(u), u, v}}
}

func rayLineSegment(ray Ray, segment LineSegment) []Intersection {
	var found []Intersection
	for _, potential := range rayRay(ray, Ray{segment.start, segment.direction}) {
		if potential.V <= segment.length+Thickness {
			potential.V = math.Min(potential.V/segment.length, 1)
			found = append(found, potential)
		}
	}
	return found
}

func lineSegmentLineSegment(a, b LineSegment) []Intersection {
	da := a.end.Sub(a.start)
	db := b.end.Sub(b.start)

	if RoughlyEqual(da.Normalize().Cross(db.Normalize()), 0) {
		return overlappingLineSegments(a, b)
	}

	det := db.Cross(da)
	u := (db.X*(b.start.Y-a.start.Y) - db.Y*(b.start.X-a.start.X)) / det
	v := (da.X*(b.start.Y-a.start.Y) - da.Y*(b.start.X-a.start.X)) / det

	// For very flat angles a point can be Thickness away from the other
	// segment while u is far further than this from [0, 1].
	uTolerance := Thickness / da.Length()
	vTolerance := Thickness / db.Length()
	if !Between(-uTolerance, u, 1+uTolerance) || !Between(-vTolerance, v, 1+vTolerance) {
		return nil
	}
	u = Clamp(0, u, 1)
	v = Clamp(0, v, 1)

	return []Intersection{{a.start.Lerp(a.end, u), u, v}}
}

// Parallel segments touch at a shared point, overlap along a span, or miss.
func overlappingLineSegments(a, b LineSegment) []Intersection {
	if pointToLineDistance(a.start, b.start, b.direction) > Thickness {
		return nil
	}
	if RoughlyEqual(a.length, 0) && RoughlyEqual(b.length, 0) {
		return nil
	}

	type endpoint struct {
		id       int
		position Vector2
	}
	sorted := []endpoint{{0, a.start}, {1, a.end}, {2, b.start}, {3, b.end}}

	// Sort along x, or along y for vertical segments. Overlapping segments
	// end up as [outside, inside, inside, outside] and disjoint ones have
	// both ends of one segment first.
	vertical := RoughlyEqualWithin(a.start.X, a.end.X, Thickness) &&
		RoughlyEqualWithin(b.start.X, b.end.X, Thickness)
	sort.SliceStable(sorted, func(i, j int) bool {
		if vertical {
			return sorted[i].position.Y < sorted[j].position.Y
		}
		return sorted[i].position.X < sorted[j].position.X
	})

	if sorted[1].position.Within(sorted[2].position, Thickness) {
		p := sorted[1].position
		return []Intersection{{p, a.AlphaAt(p), b.AlphaAt(p)}}
	}

	if order := sorted[0].id + sorted[1].id; order == 1 || order == 5 {
		return nil
	}

	p1, p2 := sorted[1].position, sorted[2].position
	return []Intersection{
		{p1, a.AlphaAt(p1), b.AlphaAt(p1)},
		{p2, a.AlphaAt(p2), b.AlphaAt(p2)},
	}
}

func lineSegmentCircle(segment LineSegment, circle Circle) []Intersection {
	dp := segment.end.Sub(segment.start)
	a := dp.SquaredLength()
	b := 2 * (dp.X*(segment.start.X-circle.Center.X) + dp.Y*(segment.start.Y-circle.Center.Y))
	c := circle.Center.SquaredLength() + segment.start.SquaredLength() -
		2*circle.Center.Dot(segment.start)

	r2 := circle.Radius * circle.Radius
	t2 := Thickness * Thickness
	discCenter := b*b - 4*a*(c-r2)
	discInner := b*b - 4*a*(c-(r2-t2))
	discOuter := b*b - 4*a*(c-(r2+t2))

	if math.Abs(a) <= RoughlyEpsilon || (discCenter < 0 && discInner < 0 && discOuter < 0) {
		return nil
	}

	root := func(disc, sign float64) float64 {
		return (-b + sign*math.Sqrt(disc)) / (2 * a)
	}
	// Prefer the exact root, then the roots of the circle grown and shrunk
	// by Thickness. NaN roots fail every Between test.
	pick := func(sign float64) float64 {
		if s := root(discCenter, sign); Between(0, s, 1) {
			return s
		}
		if s := root(discOuter, sign); Between(0, s, 1) {
			return s
		}
		return root(discInner, sign)
	}
	s1, s2 := pick(1), pick(-1)

	solution := func(s float64) Intersection {
		p := segment.start.ScaleAndAdd(dp, s)
		return Intersection{p, s, Theta(p.Sub(circle.Center))}
	}

	var found []Intersection
	if Between(0, s1, 1) {
		found = append(found, solution(s1))
	}
	if !RoughlyEqual(s1, s2) && Between(0, s2, 1) {
		found = append(found, solution(s2))
	}
	return found
}

func lineSegmentCurve(segment LineSegment, curve Curve) []Intersection {
	var found []Intersection
	for _, potential := range lineSegmentCircle(segment, curve.Circle()) {
		if curve.WedgeContainsPoint(potential.P, Thickness) {
			potential.U = Clamp(0, potential.U, 1)
			potential.V = Clamp(0, curve.AlphaAt(potential.P), 1)
			found = append(found, potential)
		}
	}
	return found
}

func circleCircle(a, b Circle) []Intersection {
	c0, c1 := a.Center, b.Center
	r0, r1 := a.Radius, b.Radius
	d := c0.Distance(c1)

	switch {
	case d == 0 && r0 == r1:
		// Same circle
		return nil
	case d > r0+r1:
		return nil
	case d < math.Abs(r0-r1):
		// One inside the other
		return nil
	}

	// Distance from c0 to the chord through both solutions, and half the
	// chord length.
	c := (r0*r0 - r1*r1 + d*d) / (2 * d)
	h := math.Sqrt(math.Max(r0*r0-c*c, 0))

	delta := c1.Sub(c0)
	mid := c0.Add(delta.Scale(c / d))
	offset := Vector2{-delta.Y * h / d, delta.X * h / d}

	solution := func(p Vector2) Intersection {
		return Intersection{p, Theta(p.Sub(c0)), Theta(p.Sub(c1))}
	}

	if RoughlyEqual(h, 0) {
		return []Intersection{solution(mid.Add(offset))}
	}
	return []Intersection{solution(mid.Add(offset)), solution(mid.Sub(offset))}
}

func curveCurve(a, b Curve) []Intersection {
	if a.center.Within(b.center, Thickness) && RoughlyEqualWithin(a.radius, b.radius, Thickness) {
		return coincidentCurves(a, b)
	}

	var found []Intersection
	for _, potential := range circleCircle(a.Circle(), b.Circle()) {
		if a.WedgeContainsPoint(potential.P, Thickness) && b.WedgeContainsPoint(potential.P, Thickness) {
			potential.U = a.AlphaAt(potential.P)
			potential.V = b.AlphaAt(potential.P)
			found = append(found, potential)
		}
	}
	return found
}

// Arcs of the same circle meet wherever one contains an end of the other.
func coincidentCurves(a, b Curve) []Intersection {
	var found []Intersection
	if a.WedgeContainsPoint(b.start, Thickness) {
		found = append(found, Intersection{b.start, a.AlphaAt(b.start), 0})
	}
	if a.WedgeContainsPoint(b.end, Thickness) {
		found = append(found, Intersection{b.end, a.AlphaAt(b.end), 1})
	}
	if len(found) == 2 {
		return found
	}
	if b.WedgeContainsPoint(a.start, Thickness) {
		found = append(found, Intersection{a.start, 0, b.AlphaAt(a.start)})
	}
	if len(found) == 2 {
		return found
	}
	if b.WedgeContainsPoint(a.end, Thickness) {
		found = append(found, Intersection{a.end, 1, b.AlphaAt(a.end)})
	}
	return found
}
