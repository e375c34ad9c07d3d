package hull

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrahamScan(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		for _, includeCollinear := range []bool{false, true} {
			result, err := GrahamScan(nil, includeCollinear)
			assert.ErrorIs(t, err, ErrEmptyInput)
			assert.Nil(t, result)
		}
	})

	t.Run("non-finite", func(t *testing.T) {
		_, err := GrahamScan([]Point{{0, 0}, {1, math.Inf(1)}, {2, 0}}, false)
		assert.ErrorIs(t, err, ErrNonFinite)
	})

	t.Run("single point", func(t *testing.T) {
		result, err := GrahamScan([]Point{{3, 4}}, false)
		require.NoError(t, err)
		assert.Equal(t, Hull{{Point{3, 4}, 0}}, result)
	})

	t.Run("two points are returned unchanged", func(t *testing.T) {
		points := []Point{{5, 5}, {0, 0}}
		result, err := GrahamScan(points, false)
		require.NoError(t, err)
		assert.Equal(t, Hull{{Point{5, 5}, 0}, {Point{0, 0}, 1}}, result)
	})

	t.Run("square with interior point", func(t *testing.T) {
		points := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {2, 2}}
		result, err := GrahamScan(points, false)
		require.NoError(t, err)
		assert.Equal(t, Hull{
			{Point{0, 0}, 0},
			{Point{4, 0}, 1},
			{Point{4, 4}, 2},
			{Point{0, 4}, 3},
		}, result)
		AssertValidHull(t, points, result, false)
	})

	t.Run("square with duplicate corner", func(t *testing.T) {
		points := []Point{{0, 0}, {0, 0}, {4, 0}, {4, 4}, {0, 4}}
		for _, includeCollinear := range []bool{false, true} {
			result, err := GrahamScan(points, includeCollinear)
			require.NoError(t, err)
			assert.Equal(t, []int{0, 2, 3, 4}, result.Indices())
			AssertValidHull(t, points, result, includeCollinear)
		}
	})

	t.Run("collinear", func(t *testing.T) {
		points := []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}

		strict, err := GrahamScan(points, false)
		require.NoError(t, err)
		assert.Equal(t, []Point{{0, 0}, {3, 0}}, strict.Points())

		inclusive, err := GrahamScan(points, true)
		require.NoError(t, err)
		assert.Equal(t, points, inclusive.Points())
		assert.Equal(t, []int{0, 1, 2, 3}, inclusive.Indices())
	})

	t.Run("collinear in shuffled order", func(t *testing.T) {
		points := []Point{{2, 2}, {0, 0}, {3, 3}, {1, 1}}

		strict, err := GrahamScan(points, false)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, strict.Indices())

		inclusive, err := GrahamScan(points, true)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 3, 0, 2}, inclusive.Indices())
	})

	t.Run("all points coincide", func(t *testing.T) {
		points := []Point{{1, 1}, {1, 1}, {1, 1}}
		for _, includeCollinear := range []bool{false, true} {
			result, err := GrahamScan(points, includeCollinear)
			require.NoError(t, err)
			assert.Equal(t, Hull{{Point{1, 1}, 0}}, result)
		}
	})

	t.Run("collinear points on every edge", func(t *testing.T) {
		// A 2x2 grid: corners plus edge midpoints plus the center
		var points []Point
		for y := 0; y <= 2; y++ {
			for x := 0; x <= 2; x++ {
				points = append(points, Point{float64(x), float64(y)})
			}
		}

		strict, err := GrahamScan(points, false)
		require.NoError(t, err)
		assert.Equal(t, []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}, strict.Points())
		AssertValidHull(t, points, strict, false)

		inclusive, err := GrahamScan(points, true)
		require.NoError(t, err)
		assert.Equal(t, []Point{
			{0, 0}, {1, 0}, {2, 0},
			{2, 1}, {2, 2},
			{1, 2}, {0, 2},
			{0, 1},
		}, inclusive.Points())
		AssertValidHull(t, points, inclusive, true)
	})

	t.Run("input is not modified", func(t *testing.T) {
		points := []Point{{4, 4}, {0, 0}, {2, 1}, {4, 0}, {0, 4}}
		original := append([]Point(nil), points...)
		_, err := GrahamScan(points, true)
		require.NoError(t, err)
		assert.Equal(t, original, points)
	})

	t.Run("idempotent", func(t *testing.T) {
		points := LoadFixture("octagon").Points
		first, err := GrahamScan(points, false)
		require.NoError(t, err)
		second, err := GrahamScan(points, false)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	for _, name := range fixtureNames {
		name := name
		t.Run(name, func(t *testing.T) {
			fixture := LoadFixture(name)
			result, err := GrahamScan(fixture.Points, false)
			require.NoError(t, err)
			AssertValidHull(t, fixture.Points, result, false)
			assert.Equal(t, sortedIndices(fixture.Expected), sortedIndices(toSet(result.Indices())))

			inclusive, err := GrahamScan(fixture.Points, true)
			require.NoError(t, err)
			AssertValidHull(t, fixture.Points, inclusive, true)
			assert.GreaterOrEqual(t, len(inclusive), len(result))
			assert.InDelta(t, result.Area(), inclusive.Area(), 1e-9)
		})
	}

	t.Run("octagon keeps edge points when asked", func(t *testing.T) {
		fixture := LoadFixture("octagon")
		inclusive, err := GrahamScan(fixture.Points, true)
		require.NoError(t, err)
		// The eight corners, plus (3, 0) and (6, 3) on the edges
		assert.Len(t, inclusive, 10)
		assert.Contains(t, inclusive.Points(), Point{3, 0})
		assert.Contains(t, inclusive.Points(), Point{6, 3})
	})
}

func toSet(indices []int) map[int]bool {
	set := make(map[int]bool, len(indices))
	for _, i := range indices {
		set[i] = true
	}
	return set
}
