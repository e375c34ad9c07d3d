// A small package for computing the convex hull of a set of 2D points.
//
// Two algorithms are provided: Graham scan and Andrew's monotone chain. Both
// return the hull counterclockwise, starting from the lowest (then leftmost)
// point, with every vertex carrying the index of the input point it came from.
// Each also has a tracing variant that records the hull after every step, for
// visualizing how the hull is built.
package convexhull

import "github.com/osuushi/convexhull/hull"

type Point = hull.Point
type Vertex = hull.Vertex
type Hull = hull.Hull
type Turn = hull.Turn
type Step = hull.Step
type Trace = hull.Trace

const (
	Clockwise        = hull.Clockwise
	Collinear        = hull.Collinear
	CounterClockwise = hull.CounterClockwise
)

var (
	ErrEmptyInput = hull.ErrEmptyInput
	ErrNonFinite  = hull.ErrNonFinite
)

// Compute the hull with a Graham scan. Collinear points along the boundary
// are dropped unless includeCollinear is set.
func GrahamScan(points []Point, includeCollinear bool) (Hull, error) {
	return hull.GrahamScan(points, includeCollinear)
}

// Compute the hull with Andrew's monotone chain. Collinear points along the
// boundary are always dropped.
func MonotoneChain(points []Point) (Hull, error) {
	return hull.MonotoneChain(points)
}

func GrahamScanTrace(points []Point, includeCollinear bool) (Hull, Trace, error) {
	return hull.GrahamScanTrace(points, includeCollinear)
}

func MonotoneChainTrace(points []Point) (Hull, Trace, error) {
	return hull.MonotoneChainTrace(points)
}

// The turn made by walking from a to b to c.
func Orientation(a, b, c Point) Turn {
	return hull.Orientation(a, b, c)
}
