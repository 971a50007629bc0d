package internal

import (
	"embed"
	"log"
	"math"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into seed sets. This is not a full (or even
// correct) svg parser. Every <circle> becomes a seed at its centre, and the
// root element's width and height become the bounding box. If anything goes
// wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

type SeedFixture struct {
	Seeds  []Point
	Width  float64
	Height float64
}

func LoadFixture(name string) SeedFixture {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	result := SeedFixture{
		Width:  parseAttribute(name, rootEl, "width"),
		Height: parseAttribute(name, rootEl, "height"),
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}
	for _, circleEl := range circles {
		result.Seeds = append(result.Seeds, Point{
			X: parseAttribute(name, circleEl, "cx"),
			Y: parseAttribute(name, circleEl, "cy"),
		})
	}
	return result
}

func parseAttribute(name string, el *svgparser.Element, attribute string) float64 {
	value, ok := el.Attributes[attribute]
	if !ok {
		log.Fatalf("Missing %s on <%s> in fixture %q", attribute, el.Name, name)
	}
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Fatalf("Invalid %s value %q in fixture %q: %v", attribute, value, name, err)
	}
	return result
}

// Some ad hoc seed sets

func ThreeSeeds() SeedFixture {
	return SeedFixture{
		Seeds:  []Point{{0, 0}, {10, 0}, {5, 10}},
		Width:  10,
		Height: 10,
	}
}

func Square() SeedFixture {
	return SeedFixture{
		Seeds:  []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		Width:  10,
		Height: 10,
	}
}

// Seeds along a slightly perturbed spiral, which puts every new seed outside
// the hull of the seeds before it.
func Spiral() SeedFixture {
	var seeds []Point
	const n = 60
	for i := 0; i < n; i++ {
		angle := float64(i) * 0.61
		r := 5 + float64(i)*0.75
		seeds = append(seeds, Point{
			X: 50 + r*math.Cos(angle),
			Y: 50 + r*math.Sin(angle),
		})
	}
	return SeedFixture{Seeds: seeds, Width: 100, Height: 100}
}

// A jittered grid, so that no four seeds are cocircular.
func JitteredGrid() SeedFixture {
	var seeds []Point
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			seeds = append(seeds, Point{
				X: 6 + float64(col)*12 + 0.37*math.Sin(float64(7*row+3*col)),
				Y: 6 + float64(row)*12 + 0.41*math.Cos(float64(5*row+11*col)),
			})
		}
	}
	return SeedFixture{Seeds: seeds, Width: 100, Height: 100}
}

// Fixtures in general position, where the Delaunay property holds strictly.
var generalPositionFixtures = []string{"scatter", "hexagon", "integer_scatter"}
