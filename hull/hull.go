package hull

func (h Hull) Points() []Point {
	points := make([]Point, len(h))
	for i, v := range h {
		points[i] = v.Point
	}
	return points
}

// Original indices of the hull vertices, in hull order.
func (h Hull) Indices() []int {
	indices := make([]int, len(h))
	for i, v := range h {
		indices[i] = v.Index
	}
	return indices
}

// Flags for an input of n points, true for each original index on the hull.
// Indices outside [0, n) are ignored.
func (h Hull) OnHull(n int) []bool {
	flags := make([]bool, n)
	for _, v := range h {
		if v.Index >= 0 && v.Index < n {
			flags[v.Index] = true
		}
	}
	return flags
}

// Shoelace area. Positive for a counterclockwise hull, zero for degenerate
// hulls. Areas too large for a float64 come back as ±Inf with the right sign.
func (h Hull) Area() float64 {
	var sum float64
	for i, v := range h {
		next := h[(i+1)%len(h)]
		sum += v.Point.Cross(next.Point)
	}
	if isFinite(sum) || !finitePoints(h.Points()...) {
		return sum / 2
	}

	exact := exactFloat(0)
	for i, v := range h {
		exact.Add(exact, exactCross(Point{}, v.Point, h[(i+1)%len(h)].Point))
	}
	area, _ := exact.SetMantExp(exact, -1).Float64()
	return area
}

// Whether the point is inside the hull or on its boundary. Degenerate hulls
// (a single point, a segment, or a collinear chain) contain exactly the points
// on their segments.
func (h Hull) Contains(p Point) bool {
	if len(h) == 0 {
		return false
	}
	if h.Area() == 0 {
		for i, v := range h {
			if onSegment(v.Point, h[(i+1)%len(h)].Point, p) {
				return true
			}
		}
		return false
	}
	for i, v := range h {
		if Orientation(v.Point, h[(i+1)%len(h)].Point, p) == Clockwise {
			return false
		}
	}
	return true
}

// No clockwise turns anywhere along the boundary, including at the closing
// vertex. Collinear vertices are allowed.
func (h Hull) IsConvex() bool {
	return h.allTurns(func(t Turn) bool { return t != Clockwise })
}

func (h Hull) allTurns(ok func(Turn) bool) bool {
	if len(h) < 3 {
		return true
	}
	n := len(h)
	for i := range h {
		if !ok(Orientation(h[i].Point, h[(i+1)%n].Point, h[(i+2)%n].Point)) {
			return false
		}
	}
	return true
}

func onSegment(a, b, p Point) bool {
	if Orientation(a, b, p) != Collinear {
		return false
	}
	return p.X >= minFloat(a.X, b.X) && p.X <= maxFloat(a.X, b.X) &&
		p.Y >= minFloat(a.Y, b.Y) && p.Y <= maxFloat(a.Y, b.Y)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
