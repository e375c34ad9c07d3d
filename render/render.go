// Offline rendering of point sets and their hulls to images.
//
// Points on the hull are drawn green, and the rest red, with the hull boundary
// drawn between them. A construction step is drawn the same way, except that
// the partial boundary is drawn yellow and its closing edge is dashed, since
// it is not part of the hull yet.
package render

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/convexhull/hull"
	"github.com/pkg/errors"
)

type Options struct {
	// Size of the output image in pixels. The points are scaled to fit inside
	// it, preserving aspect ratio.
	Width, Height int
	// Margin around the points, in pixels
	Padding    float64
	PointSize  float64
	LineWidth  float64
	Background color.Color
	Point      color.Color
	HullPoint  color.Color
	Edge       color.Color
	Partial    color.Color
	// Draw a grid line every GridSize units of input space. Zero disables the
	// grid.
	GridSize float64
	Grid     color.Color
}

func DefaultOptions() Options {
	return Options{
		Width:      720,
		Height:     720,
		Padding:    20,
		PointSize:  4,
		LineWidth:  2,
		Background: color.RGBA{26, 26, 26, 255},
		Point:      color.RGBA{255, 0, 0, 255},
		HullPoint:  color.RGBA{0, 255, 0, 255},
		Edge:       color.RGBA{0, 255, 0, 255},
		Partial:    color.RGBA{255, 204, 51, 255},
		Grid:       color.RGBA{77, 77, 77, 255},
	}
}

// Draw the points with their finished hull.
func Hull(points []hull.Point, h hull.Hull, options Options) image.Image {
	c := newCanvas(points, options)
	c.drawEdges(h, options.Edge, true)
	c.drawPoints(points, h.OnHull(len(points)))
	return c.Image()
}

// Draw the points with the partial hull of one construction step.
func Step(points []hull.Point, step hull.Step, options Options) image.Image {
	c := newCanvas(points, options)
	c.drawEdges(step.Partial, options.Partial, false)
	if len(step.Partial) > 2 {
		first := c.project(step.Partial[0].Point)
		last := c.project(step.Partial[len(step.Partial)-1].Point)
		c.SetColor(options.Partial)
		c.SetDash(6, 6)
		c.DrawLine(first.X, first.Y, last.X, last.Y)
		c.Stroke()
		c.SetDash()
	}
	c.drawPoints(points, step.OnHull)
	return c.Image()
}

func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

// Print an image inline, for terminals that support it (iTerm only).
func Cat(path string, w io.Writer) error {
	if err := imgcat.CatFile(path, w); err != nil {
		return errors.Wrapf(err, "printing %s", path)
	}
	return nil
}

type canvas struct {
	*gg.Context
	options Options
	// Input space to image space
	scale            float64
	minX, minY       float64
	offsetX, offsetY float64
}

func newCanvas(points []hull.Point, options Options) *canvas {
	c := &canvas{Context: gg.NewContext(options.Width, options.Height), options: options}
	c.SetColor(options.Background)
	c.DrawRectangle(0, 0, float64(options.Width), float64(options.Height))
	c.Fill()

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	usableWidth := float64(options.Width) - 2*options.Padding
	usableHeight := float64(options.Height) - 2*options.Padding
	spanX, spanY := maxX-minX, maxY-minY
	switch {
	case spanX == 0 && spanY == 0:
		c.scale = 1
	case spanX == 0:
		c.scale = usableHeight / spanY
	case spanY == 0:
		c.scale = usableWidth / spanX
	default:
		c.scale = math.Min(usableWidth/spanX, usableHeight/spanY)
	}
	c.minX, c.minY = minX, minY
	// Center the points in the image
	c.offsetX = (float64(options.Width) - spanX*c.scale) / 2
	c.offsetY = (float64(options.Height) - spanY*c.scale) / 2

	if options.GridSize > 0 {
		c.drawGrid(maxX, maxY)
	}
	return c
}

// Image space has its origin at the top left, so y is flipped.
func (c *canvas) project(p hull.Point) gg.Point {
	return gg.Point{
		X: c.offsetX + (p.X-c.minX)*c.scale,
		Y: float64(c.options.Height) - (c.offsetY + (p.Y-c.minY)*c.scale),
	}
}

func (c *canvas) drawGrid(maxX, maxY float64) {
	c.SetColor(c.options.Grid)
	c.SetLineWidth(1)
	step := c.options.GridSize
	for x := math.Floor(c.minX/step) * step; x <= maxX; x += step {
		top := c.project(hull.Point{X: x, Y: maxY})
		bottom := c.project(hull.Point{X: x, Y: c.minY})
		c.DrawLine(top.X, top.Y, bottom.X, bottom.Y)
	}
	for y := math.Floor(c.minY/step) * step; y <= maxY; y += step {
		left := c.project(hull.Point{X: c.minX, Y: y})
		right := c.project(hull.Point{X: maxX, Y: y})
		c.DrawLine(left.X, left.Y, right.X, right.Y)
	}
	c.Stroke()
}

func (c *canvas) drawEdges(h hull.Hull, edgeColor color.Color, closed bool) {
	if len(h) < 2 {
		return
	}
	c.SetColor(edgeColor)
	c.SetLineWidth(c.options.LineWidth)
	start := c.project(h[0].Point)
	c.MoveTo(start.X, start.Y)
	for _, v := range h[1:] {
		p := c.project(v.Point)
		c.LineTo(p.X, p.Y)
	}
	if closed {
		c.ClosePath()
	}
	c.Stroke()
}

func (c *canvas) drawPoints(points []hull.Point, onHull []bool) {
	for i, p := range points {
		if i < len(onHull) && onHull[i] {
			c.SetColor(c.options.HullPoint)
		} else {
			c.SetColor(c.options.Point)
		}
		projected := c.project(p)
		c.DrawCircle(projected.X, projected.Y, c.options.PointSize)
		c.Fill()
	}
}
