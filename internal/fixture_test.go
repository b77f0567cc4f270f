package internal

import (
	"embed"
	"log"
	"math"

	"github.com/osuushi/skeleton/geom"
	"github.com/osuushi/skeleton/shape"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each must hold exactly one shape. If anything goes wrong, the test binary
// dies.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *shape.Path {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	paths, err := shape.ParseSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(paths) != 1 {
		log.Fatalf("Expected one shape in fixture %q, found %d", name, len(paths))
	}
	return paths[0]
}

// A regular polygon around the origin with the first corner on the x axis.
func RegularPolygon(sides int, radius float64) *shape.Path {
	points := make([]geom.Vector2, 0, sides)
	for i := 0; i < sides; i++ {
		angle := 2 * math.Pi * float64(i) / float64(sides)
		points = append(points, geom.V(radius*math.Cos(angle), radius*math.Sin(angle)))
	}
	return shape.FromPoints(points, true)
}
