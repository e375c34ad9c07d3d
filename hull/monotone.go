package hull

import "sort"

// Andrew's monotone chain. Points are sorted left to right, and the line from
// the leftmost to the rightmost point splits them into an upper and a lower
// set. Each set is walked with its own stack: the upper chain may only turn
// clockwise, the lower chain only counterclockwise. Points on the splitting
// line are on neither chain, except for the rightmost point, which closes
// both.
//
// The result is strict (no collinear boundary points) and, like GrahamScan,
// counterclockwise starting from the lowest point, so the two algorithms agree
// exactly whenever no three input points are collinear.
func MonotoneChain(points []Point) (Hull, error) {
	return monotoneChain(points, nil)
}

// Same as MonotoneChain, but also returns the state of both chains after each
// point is processed.
func MonotoneChainTrace(points []Point) (Hull, Trace, error) {
	var trace Trace
	result, err := monotoneChain(points, trace.recorder(len(points)))
	if err != nil {
		return nil, nil, err
	}
	return result, trace, nil
}

func monotoneChain(points []Point, record recorder) (Hull, error) {
	vertices, err := toVertices(points)
	if err != nil {
		return nil, err
	}
	if len(vertices) <= 2 {
		return trivialHull(vertices, record), nil
	}

	SortLexicographically(vertices)
	// Copies of the rightmost point sort together at the end. The first of them
	// closes the chains, and the rest fall on the splitting line.
	end := len(vertices) - 1
	for end > 0 && vertices[end-1].Equal(vertices[end].Point) {
		end--
	}
	first, last := vertices[0], vertices[end]

	// Every point is the same point. Both chains would be empty.
	if first.Equal(last.Point) {
		result := Hull{first}
		for _, v := range vertices {
			record.record(v, result)
		}
		return result, nil
	}

	upper := VertexStack{first}
	lower := VertexStack{first}
	record.record(first, joinChains(lower, upper))

	for i := 1; i < len(vertices); i++ {
		v := vertices[i]
		closing := i == end
		side := Orientation(first.Point, v.Point, last.Point)

		if closing || side == Clockwise {
			extendChain(&upper, v, Clockwise)
		}
		if closing || side == CounterClockwise {
			extendChain(&lower, v, CounterClockwise)
		}

		if record != nil {
			partial := joinChains(lower, upper)
			if i >= end {
				partial = rotateToPivot(partial)
			}
			record(v, partial)
		}
	}

	return rotateToPivot(joinChains(lower, upper)), nil
}

// Pop until the chain turns the right way, then push. A copy of the chain's
// last vertex is dropped instead, so the first occurrence of a point wins.
func extendChain(chain *VertexStack, v Vertex, turn Turn) {
	if top, ok := chain.Peek(); ok && top.Equal(v.Point) {
		return
	}
	for chain.Len() >= 2 && !chain.Turns(v.Point, turn) {
		chain.Pop()
	}
	chain.Push(v)
}

// Sort vertices in place using LexLess. The sort is stable, so coincident
// points keep their input order.
func SortLexicographically(vertices []Vertex) {
	sort.SliceStable(vertices, func(i, j int) bool {
		return LexLess(vertices[i].Point, vertices[j].Point)
	})
}

// The lower chain left to right, then the upper chain right to left. The
// leftmost point starts both chains and is only emitted once, as is the
// rightmost point once both chains have reached it.
func joinChains(lower, upper VertexStack) Hull {
	result := make(Hull, 0, len(lower)+len(upper))
	result = append(result, lower...)
	lowerTop := lower[len(lower)-1]
	for i := len(upper) - 1; i >= 1; i-- {
		if i == len(upper)-1 && upper[i].Index == lowerTop.Index {
			continue
		}
		result = append(result, upper[i])
	}
	return result
}

// Rotate a counterclockwise hull so that it starts at its lowest point.
func rotateToPivot(h Hull) Hull {
	start := Pivot(h.Points())
	if start <= 0 {
		return h
	}
	result := make(Hull, 0, len(h))
	result = append(result, h[start:]...)
	return append(result, h[:start]...)
}
