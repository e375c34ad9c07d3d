package pointio

import (
	"io"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/convexhull/hull"
	"github.com/pkg/errors"
)

// Points from an SVG document: the centers of circles and ellipses, and the
// vertices of polygons and polylines, in document order. Transforms are not
// applied.
func ReadSVG(r io.Reader) ([]hull.Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	points := []hull.Point{}
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		switch el.Name {
		case "circle", "ellipse":
			p, err := parsePair([]string{el.Attributes["cx"], el.Attributes["cy"]})
			if err != nil {
				return errors.Wrapf(err, "<%s> center", el.Name)
			}
			points = append(points, p)
		case "polygon", "polyline":
			// Coordinates may be separated by commas, whitespace, or both
			coordinates := strings.FieldsFunc(el.Attributes["points"], func(r rune) bool {
				return isSeparator(r) || r == '\n' || r == '\r'
			})
			if len(coordinates)%2 != 0 {
				return errors.Errorf("<%s> has an odd number of coordinates", el.Name)
			}
			for i := 0; i < len(coordinates); i += 2 {
				p, err := parsePair(coordinates[i : i+2])
				if err != nil {
					return errors.Wrapf(err, "<%s> vertex %d", el.Name, i/2)
				}
				points = append(points, p)
			}
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(root); err != nil {
		return nil, err
	}
	return points, nil
}
