package pointio

import (
	"io"

	"github.com/osuushi/convexhull/hull"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A point in a YAML document, either {x: 1, y: 2} or [1, 2].
type yamlPoint hull.Point

func (p *yamlPoint) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		var fields struct {
			X *float64 `yaml:"x"`
			Y *float64 `yaml:"y"`
		}
		if err := value.Decode(&fields); err != nil {
			return err
		}
		if fields.X == nil || fields.Y == nil {
			return errors.Errorf("line %d: point needs both x and y", value.Line)
		}
		*p = yamlPoint{X: *fields.X, Y: *fields.Y}
		return nil
	case yaml.SequenceNode:
		var pair []float64
		if err := value.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return errors.Errorf("line %d: expected 2 coordinates, got %d", value.Line, len(pair))
		}
		*p = yamlPoint{X: pair[0], Y: pair[1]}
		return nil
	}
	return errors.Errorf("line %d: a point must be a mapping or a sequence", value.Line)
}

// Points from a YAML document holding a single sequence of points. An empty
// document is an empty point set.
func ReadYAML(r io.Reader) ([]hull.Point, error) {
	var document []yamlPoint
	if err := yaml.NewDecoder(r).Decode(&document); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding yaml points")
	}

	points := make([]hull.Point, len(document))
	for i, p := range document {
		points[i] = hull.Point(p)
	}
	return points, nil
}

// Write points as a YAML sequence of {x, y} mappings.
func WriteYAML(w io.Writer, points []hull.Point) error {
	type entry struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	}
	document := make([]entry, len(points))
	for i, p := range points {
		document[i] = entry{X: p.X, Y: p.Y}
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(document); err != nil {
		return errors.Wrap(err, "encoding yaml points")
	}
	return encoder.Close()
}
