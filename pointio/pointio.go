// Reading, writing and generating point sets for the hull algorithms.
//
// Three input formats are understood: plain text with one "x y" pair per line,
// YAML (a sequence of {x, y} mappings or [x, y] pairs), and SVG, where circle
// centers and polygon or polyline vertices become points in document order.
package pointio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/osuushi/convexhull/hull"
	"github.com/pkg/errors"
)

// Read a point set from a file, choosing the format by extension.
func ReadFile(path string) ([]hull.Point, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return ReadSVG(file)
	case ".yaml", ".yml":
		return ReadYAML(file)
	}
	return ReadText(file)
}

// Points as whitespace or comma separated "x y" pairs, one per line. Blank
// lines and lines starting with # are ignored.
func ReadText(r io.Reader) ([]hull.Point, error) {
	points := []hull.Point{}
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePair(strings.FieldsFunc(line, isSeparator))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

// Write points in the format ReadText reads.
func WriteText(w io.Writer, points []hull.Point) error {
	buffered := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(buffered, "%s %s\n", formatFloat(p.X), formatFloat(p.Y)); err != nil {
			return err
		}
	}
	return buffered.Flush()
}

// Uniformly distributed points with integer coordinates in [0, gridSize]. The
// same seed always produces the same points.
func Random(seed int64, n, gridSize int) ([]hull.Point, error) {
	if n < 0 {
		return nil, errors.Errorf("negative point count %d", n)
	}
	if gridSize < 0 || gridSize == math.MaxInt {
		return nil, errors.Errorf("grid size %d out of range", gridSize)
	}
	rng := rand.New(rand.NewSource(seed))
	points := make([]hull.Point, n)
	for i := range points {
		points[i] = hull.Point{
			X: float64(rng.Intn(gridSize + 1)),
			Y: float64(rng.Intn(gridSize + 1)),
		}
	}
	return points, nil
}

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t'
}

func parsePair(parts []string) (hull.Point, error) {
	if len(parts) != 2 {
		return hull.Point{}, errors.Errorf("expected 2 coordinates, got %d", len(parts))
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return hull.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return hull.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return hull.Point{X: x, Y: y}, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
