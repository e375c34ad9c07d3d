package hull

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into point sets. This is not a full (or
// even correct) svg parser. Points come from the centers of circles and the
// points of polygons, in document order. Elements with class "hull" mark the
// points expected on the strict hull. If anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

type Fixture struct {
	Points []Point
	// Indices of the points on the strict hull
	Expected map[int]bool
}

func LoadFixture(name string) Fixture {
	file, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer file.Close()
	rootEl, err := svgparser.Parse(file, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	fixture := Fixture{Expected: make(map[int]bool)}
	var walk func(el *svgparser.Element)
	walk = func(el *svgparser.Element) {
		var points []Point
		switch el.Name {
		case "circle":
			points = []Point{{
				X: parseFloat(el.Attributes["cx"]),
				Y: parseFloat(el.Attributes["cy"]),
			}}
		case "polygon":
			points = parsePointList(el.Attributes["points"])
		}
		for _, p := range points {
			if el.Attributes["class"] == "hull" {
				fixture.Expected[len(fixture.Points)] = true
			}
			fixture.Points = append(fixture.Points, p)
		}
		for _, child := range el.Children {
			walk(child)
		}
	}
	walk(rootEl)

	if len(fixture.Points) == 0 {
		log.Fatalf("No points found in fixture %q", name)
	}
	return fixture
}

func parsePointList(s string) []Point {
	var points []Point
	for _, pointString := range strings.Fields(s) {
		parts := strings.Split(pointString, ",")
		if len(parts) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		points = append(points, Point{X: parseFloat(parts[0]), Y: parseFloat(parts[1])})
	}
	return points
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid number %q: %v", s, err)
	}
	return f
}

var fixtureNames = []string{
	"octagon",
	"triangle_cloud",
	"diamond_duplicates",
	"pentagon_outline",
}
