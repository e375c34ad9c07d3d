package hull

import "sort"

// Graham scan. Points are sorted by angle around the pivot, then walked once
// with a stack, discarding every vertex that would make the boundary turn
// clockwise.
//
// By default the hull is strict: a vertex in the middle of a straight run of
// the boundary is discarded. With includeCollinear, such vertices are kept, so
// the two modes can return different vertex counts for the same input.
// Duplicate points are never repeated in the result; the first occurrence
// wins.
//
// For one or two points, the input is returned unchanged. The input slice is
// never modified.
func GrahamScan(points []Point, includeCollinear bool) (Hull, error) {
	return grahamScan(points, includeCollinear, nil)
}

// Same as GrahamScan, but also returns the state of the stack after each
// point is processed.
func GrahamScanTrace(points []Point, includeCollinear bool) (Hull, Trace, error) {
	var trace Trace
	result, err := grahamScan(points, includeCollinear, trace.recorder(len(points)))
	if err != nil {
		return nil, nil, err
	}
	return result, trace, nil
}

func grahamScan(points []Point, includeCollinear bool, record recorder) (Hull, error) {
	vertices, err := toVertices(points)
	if err != nil {
		return nil, err
	}
	if len(vertices) <= 2 {
		return trivialHull(vertices, record), nil
	}

	pivot := points[Pivot(points)]
	SortByAngle(vertices, pivot)
	if includeCollinear {
		reverseCollinearTail(vertices, pivot)
	}

	stack := make(VertexStack, 0, len(vertices))
	for _, v := range vertices {
		if top, ok := stack.Peek(); ok && top.Equal(v.Point) {
			record.record(v, Hull(stack))
			continue
		}
		for stack.Len() >= 2 && !keepsTurn(&stack, v.Point, includeCollinear) {
			stack.Pop()
		}
		stack.Push(v)
		record.record(v, Hull(stack))
	}

	return Hull(stack), nil
}

// Sort vertices in place using PolarLess. The sort is stable, so coincident
// points keep their input order.
func SortByAngle(vertices []Vertex, pivot Point) {
	less := PolarLess(pivot)
	sort.SliceStable(vertices, func(i, j int) bool {
		return less(vertices[i].Point, vertices[j].Point)
	})
}

// The last run of an angular sort, where points share the final angle, is
// ordered closest first. Walking the boundary counterclockwise reaches those
// points farthest first, so that run has to be reordered before an inclusive
// scan. The pivot never moves, and if every point is collinear with the pivot
// there is no closing edge to walk, so nothing is reversed.
func reverseCollinearTail(vertices []Vertex, pivot Point) {
	last := vertices[len(vertices)-1].Point
	i := len(vertices) - 1
	for i > 0 && Orientation(pivot, vertices[i].Point, last) == Collinear {
		i--
	}
	if i == 0 {
		return
	}
	// Farthest first, keeping copies of a point in input order
	tail := vertices[i+1:]
	sort.SliceStable(tail, func(a, b int) bool {
		return closer(pivot, tail[b].Point, tail[a].Point)
	})
}

func keepsTurn(stack *VertexStack, candidate Point, includeCollinear bool) bool {
	top, _ := stack.Peek()
	below, _ := stack.PeekBelow()
	turn := Orientation(below.Point, top.Point, candidate)
	if includeCollinear {
		return turn != Clockwise
	}
	return turn == CounterClockwise
}

// With fewer than three points there is nothing to compute.
func trivialHull(vertices []Vertex, record recorder) Hull {
	for i, v := range vertices {
		record.record(v, Hull(vertices[:i+1]))
	}
	return Hull(vertices)
}
