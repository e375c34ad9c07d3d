package hull

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
)

var (
	ErrEmptyInput = errors.New("convex hull of an empty point set")
	ErrNonFinite  = errors.New("non-finite coordinate")
)

func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Z component of the 3D cross product, treating both points as vectors.
func (p Point) Cross(other Point) float64 {
	return p.X*other.Y - p.Y*other.X
}

func (p Point) DistanceSquared(other Point) float64 {
	d := p.Sub(other)
	return d.X*d.X + d.Y*d.Y
}

// Exact equality. Hulls are built from the caller's coordinates, so there is
// no tolerance here.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Sign of (b-a) × (c-a). Coordinates are float64, so products of integer
// coordinates up to 2^26 in magnitude are exact. When the products overflow,
// the sign comes from an exact computation instead.
func Orientation(a, b, c Point) Turn {
	value := b.Sub(a).Cross(c.Sub(a))
	if !isFinite(value) && finitePoints(a, b, c) {
		return Turn(exactCross(a, b, c).Sign())
	}
	switch {
	case value < 0:
		return Clockwise
	case value > 0:
		return CounterClockwise
	}
	return Collinear
}

// Mantissa bits needed for differences of any two finite float64 values, and
// for products and sums of those differences, to be exact.
const exactPrec = 4400

func exactFloat(f float64) *big.Float {
	return new(big.Float).SetPrec(exactPrec).SetFloat64(f)
}

// (b-a) × (c-a) with no rounding or overflow. Coordinates must be finite.
func exactCross(a, b, c Point) *big.Float {
	abX, abY := exactFloat(b.X), exactFloat(b.Y)
	abX.Sub(abX, exactFloat(a.X))
	abY.Sub(abY, exactFloat(a.Y))
	acX, acY := exactFloat(c.X), exactFloat(c.Y)
	acX.Sub(acX, exactFloat(a.X))
	acY.Sub(acY, exactFloat(a.Y))

	abX.Mul(abX, acY)
	abY.Mul(abY, acX)
	return abX.Sub(abX, abY)
}

// |b-a|² with no rounding or overflow. Coordinates must be finite.
func exactDistanceSquared(a, b Point) *big.Float {
	dx, dy := exactFloat(b.X), exactFloat(b.Y)
	dx.Sub(dx, exactFloat(a.X))
	dy.Sub(dy, exactFloat(a.Y))
	dx.Mul(dx, dx)
	dy.Mul(dy, dy)
	return dx.Add(dx, dy)
}

func finitePoints(points ...Point) bool {
	for _, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return false
		}
	}
	return true
}

// Index of the lowest point, using the smallest X to break ties. Returns -1 for
// an empty slice.
func Pivot(points []Point) int {
	result := -1
	for i, p := range points {
		if result < 0 || p.Y < points[result].Y || (p.Y == points[result].Y && p.X < points[result].X) {
			result = i
		}
	}
	return result
}

// Angular ordering about the pivot. Points counterclockwise from another point
// come after it, and points collinear with the pivot are ordered by distance
// from it, closest first. The pivot itself (and any copy of it) sorts first.
//
// This is only a strict weak ordering if the pivot is the point returned by
// Pivot, so that every other point lies in the half plane above it.
func PolarLess(pivot Point) func(a, b Point) bool {
	return func(a, b Point) bool {
		switch Orientation(pivot, a, b) {
		case CounterClockwise:
			return true
		case Clockwise:
			return false
		}
		return closer(pivot, a, b)
	}
}

// Whether a is strictly closer to the origin point than b.
func closer(origin, a, b Point) bool {
	da, db := origin.DistanceSquared(a), origin.DistanceSquared(b)
	if (isFinite(da) && isFinite(db)) || !finitePoints(origin, a, b) {
		return da < db
	}
	return exactDistanceSquared(origin, a).Cmp(exactDistanceSquared(origin, b)) < 0
}

// Lexicographic ordering by X, then Y.
func LexLess(a, b Point) bool {
	if a.X == b.X {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// Pair each point with its index, rejecting input the comparators cannot order.
func toVertices(points []Point) ([]Vertex, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}
	vertices := make([]Vertex, len(points))
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return nil, errors.Wrapf(ErrNonFinite, "point %d (%v, %v)", i, p.X, p.Y)
		}
		vertices[i] = Vertex{Point: p, Index: i}
	}
	return vertices, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (s *VertexStack) Push(v Vertex) {
	*s = append(*s, v)
}

func (s *VertexStack) Pop() (Vertex, bool) {
	if len(*s) == 0 {
		return Vertex{}, false
	}
	v := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return v, true
}

func (s *VertexStack) Peek() (Vertex, bool) {
	if len(*s) == 0 {
		return Vertex{}, false
	}
	return (*s)[len(*s)-1], true
}

// The second element from the top, if any.
func (s *VertexStack) PeekBelow() (Vertex, bool) {
	if len(*s) < 2 {
		return Vertex{}, false
	}
	return (*s)[len(*s)-2], true
}

func (s *VertexStack) Len() int {
	return len(*s)
}

// Whether the top two elements and the candidate make a turn in the given
// direction. Stacks with fewer than two elements always accept the candidate.
func (s *VertexStack) Turns(candidate Point, want Turn) bool {
	top, ok := s.Peek()
	if !ok {
		return true
	}
	below, ok := s.PeekBelow()
	if !ok {
		return true
	}
	return Orientation(below.Point, top.Point, candidate) == want
}
