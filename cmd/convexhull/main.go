package main

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/convexhull/hull"
	"github.com/osuushi/convexhull/pointio"
	"github.com/osuushi/convexhull/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of convex hull computation. Points are read from a file (plain text
// "x y" lines, YAML, or SVG, by extension), from stdin as plain text, or
// generated at random. The hull is printed with its vertices highlighted, and
// can be rendered to PNG, either as the finished hull or as one frame per
// construction step.
var (
	app = kingpin.New("convexhull", "Compute the convex hull of a set of 2D points.")

	algorithm = app.Flag("algorithm", "Hull algorithm.").Short('a').Default("graham").Enum("graham", "monotone")
	collinear = app.Flag("collinear", "Keep collinear points on the boundary (graham only).").Bool()
	random    = app.Flag("random", "Generate this many random points instead of reading input.").Int()
	seed      = app.Flag("seed", "Seed for random points.").Default("1").Int64()
	gridSize  = app.Flag("grid", "Random points have integer coordinates in [0, grid].").Default("720").Int()
	pngPath   = app.Flag("png", "Render the hull to this PNG file.").String()
	framesDir = app.Flag("frames", "Render one PNG per construction step into this directory.").String()
	inline    = app.Flag("imgcat", "Print rendered images inline (iTerm only).").Bool()
	noColor   = app.Flag("no-color", "Disable colored output.").Bool()
	yamlOut   = app.Flag("yaml", "Print the hull as YAML instead of text.").Bool()

	inputPath = app.Arg("file", "Input file. Plain text is read from stdin when absent.").String()
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("convexhull: ")
	kingpin.MustParse(app.Parse(os.Args[1:]))
	app.FatalIfError(checkRandomFlags(*random, *gridSize), "")

	points, err := readPoints()
	app.FatalIfError(err, "reading points")

	result, trace, err := computeHull(points)
	app.FatalIfError(err, "computing hull")

	colors := aurora.NewAurora(!*noColor)
	printSummary(os.Stderr, colors, points, result)
	if *yamlOut {
		err = pointio.WriteYAML(os.Stdout, result.Points())
	} else {
		err = pointio.WriteText(os.Stdout, result.Points())
	}
	app.FatalIfError(err, "writing hull")

	options := render.DefaultOptions()
	if *random > 0 {
		options.GridSize = float64(*gridSize) / 10
	}
	if *pngPath != "" {
		writeImage(*pngPath, render.Hull(points, result, options))
	}
	if *framesDir != "" {
		if err := os.MkdirAll(*framesDir, 0o755); err != nil {
			log.Fatalf("Could not create %s: %v", *framesDir, err)
		}
		for i, step := range trace {
			writeImage(filepath.Join(*framesDir, fmt.Sprintf("step_%04d.png", i)), render.Step(points, step, options))
		}
		log.Printf("Wrote %d frames to %s", len(trace), *framesDir)
	}
}

func readPoints() ([]hull.Point, error) {
	if *random > 0 {
		return pointio.Random(*seed, *random, *gridSize)
	}
	if *inputPath != "" {
		return pointio.ReadFile(*inputPath)
	}
	return pointio.ReadText(os.Stdin)
}

func checkRandomFlags(count, grid int) error {
	if count < 0 {
		return errors.Errorf("--random must not be negative, got %d", count)
	}
	if grid < 0 {
		return errors.Errorf("--grid must not be negative, got %d", grid)
	}
	return nil
}

// The trace is only computed when frames were asked for.
func computeHull(points []hull.Point) (hull.Hull, hull.Trace, error) {
	tracing := *framesDir != ""
	switch {
	case *algorithm == "monotone" && tracing:
		return hull.MonotoneChainTrace(points)
	case *algorithm == "monotone":
		result, err := hull.MonotoneChain(points)
		return result, nil, err
	case tracing:
		return hull.GrahamScanTrace(points, *collinear)
	}
	result, err := hull.GrahamScan(points, *collinear)
	return result, nil, err
}

// One line per input point, hull vertices in green and the rest in red, as the
// renderer colors them.
func printSummary(w io.Writer, colors aurora.Aurora, points []hull.Point, result hull.Hull) {
	onHull := result.OnHull(len(points))
	for i, p := range points {
		label := fmt.Sprintf("%4d  (%g, %g)", i, p.X, p.Y)
		if onHull[i] {
			fmt.Fprintln(w, colors.Green(label))
		} else {
			fmt.Fprintln(w, colors.Red(label))
		}
	}
	fmt.Fprintf(w, "%s of %d points, area %g\n",
		colors.Bold(fmt.Sprintf("%d hull vertices", len(result))), len(points), result.Area())
}

func writeImage(path string, img image.Image) {
	if err := render.SavePNG(path, img); err != nil {
		log.Fatal(err)
	}
	if *inline {
		if err := render.Cat(path, os.Stdout); err != nil {
			log.Fatal(err)
		}
	}
}
