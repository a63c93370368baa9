package shrink

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordsPolyProjection(t *testing.T) {
	square := Polygon{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	coords := []Point{{1, 1}, {3, 3}}

	projections := CoordsPolyProjection(coords, square)
	assert.Len(t, projections, 2)

	// The center is equidistant from all four edges, so any edge point at
	// distance 1 is a correct answer
	assert.InDelta(t, 1.0, coords[0].Dist(projections[0]), Tolerance)

	// Outside the corner, the nearest boundary point is the corner itself
	assert.InDelta(t, 2.0, projections[1].X, Tolerance)
	assert.InDelta(t, 2.0, projections[1].Y, Tolerance)
}

func TestCoordsPolyDistance(t *testing.T) {
	square := Polygon{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	coords := []Point{{1, 1}, {3, 3}, {2, 1}}

	dists := CoordsPolyDistance(coords, square)
	assert.Len(t, dists, len(coords))
	for _, d := range dists {
		assert.GreaterOrEqual(t, d, 0.0)
	}
	assert.InDelta(t, 1.0, dists[0], Tolerance)
	assert.InDelta(t, math.Sqrt2, dists[1], Tolerance)
	// On the boundary, distance vanishes
	assert.InDelta(t, 0.0, dists[2], Tolerance)
}

func TestCoordsPolyDistanceDegenerate(t *testing.T) {
	coords := []Point{{1, 1}, {5, 5}}

	// A single-vertex polygon measures distance to that vertex
	dists := CoordsPolyDistance(coords, Polygon{{0, 0}})
	assert.InDelta(t, math.Sqrt2, dists[0], Tolerance)

	// An empty polygon has no boundary; everything is at distance zero
	dists = CoordsPolyDistance(coords, Polygon{})
	assert.Equal(t, []float64{0, 0}, dists)
}

func TestCoordsPolyDistanceFixture(t *testing.T) {
	poly := LoadFixture("banner")
	coords := []Point{{0, 0}, {50, 25}, {200, 200}}
	dists := CoordsPolyDistance(coords, poly)
	assert.Len(t, dists, 3)
	for _, d := range dists {
		assert.GreaterOrEqual(t, d, 0.0)
	}
	// An interior point is closer to the boundary than a far-away one
	assert.Less(t, dists[1], dists[2])
}
