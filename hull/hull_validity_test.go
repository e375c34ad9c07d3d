package hull

// This contains no actual tests. It is just a helper for testing hull validity.

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
)

// Helper to check that a hull is valid for a set of points. The rules are:
// 1. Every hull vertex is the input point at its index.
// 2. No input index appears twice, nor any coordinate once there are more
//    than two points.
// 3. No input point lies outside the hull.
// 4. The hull is convex and counterclockwise (strictly, unless collinear
//    vertices are allowed).
// 5. The hull starts at the lowest, then leftmost, input point.
func AssertValidHull(t *testing.T, points []Point, hull Hull, allowCollinear bool) {
	t.Helper()
	require.NotEmpty(t, hull, "hull of %d points is empty", len(points))

	seenIndices := make(map[int]struct{})
	seenPoints := make(map[Point]struct{})
	for _, v := range hull {
		require.True(t, v.Index >= 0 && v.Index < len(points), "index %d out of range", v.Index)
		require.Equal(t, points[v.Index], v.Point, "vertex %d does not match its input point", v.Index)

		_, dup := seenIndices[v.Index]
		require.False(t, dup, "index %d repeated in hull:\n%# v", v.Index, pretty.Formatter(hull))
		seenIndices[v.Index] = struct{}{}
		// One or two points come back unchanged, copies included
		_, dup = seenPoints[v.Point]
		require.False(t, dup && len(points) > 2, "point %v repeated in hull:\n%# v", v.Point, pretty.Formatter(hull))
		seenPoints[v.Point] = struct{}{}
	}

	for i, p := range points {
		require.True(t, hull.Contains(p), "point %d %v is outside the hull:\n%# v", i, p, pretty.Formatter(hull))
	}

	if allowCollinear {
		require.True(t, hull.IsConvex(), "hull is not convex:\n%# v", pretty.Formatter(hull))
	} else if len(hull) >= 3 {
		require.True(t, hull.isStrictlyConvex(), "hull is not strictly convex:\n%# v", pretty.Formatter(hull))
	}
	require.GreaterOrEqual(t, hull.Area(), 0.0, "hull is clockwise")

	if len(points) > 2 {
		require.Equal(t, points[Pivot(points)], hull[0].Point, "hull does not start at the pivot")
	}
}

// Compare hulls by coordinates, with a readable diff on failure.
func AssertSameHullPoints(t *testing.T, expected, actual Hull) {
	t.Helper()
	if diff := pretty.Diff(expected.Points(), actual.Points()); len(diff) > 0 {
		t.Fatalf("hulls differ:\n%s", joinLines(diff))
	}
}

// Every consecutive triple turns counterclockwise.
func (h Hull) isStrictlyConvex() bool {
	return h.allTurns(func(t Turn) bool { return t == CounterClockwise })
}

func (h Hull) reverse() Hull {
	result := make(Hull, 0, len(h))
	for i := len(h) - 1; i >= 0; i-- {
		result = append(result, h[i])
	}
	return result
}

func joinLines(lines []string) string {
	var result string
	for _, line := range lines {
		result += line + "\n"
	}
	return result
}
