package shrink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionCoordinatesSingle(t *testing.T) {
	polys := []Polygon{{{1, 1}, {8, 1}, {8, 3}, {1, 3}}}
	regions, err := RegionCoordinates(10, 10, polys, []float64{1}, 0.2)
	assert.NoError(t, err)
	assert.LessOrEqual(t, len(regions), 1)

	for _, region := range regions {
		assert.True(t, region.valid())
		// The shrunk core stays inside the original
		assert.Less(t, region.Area(), polys[0].Area())
	}
}

func TestRegionCoordinatesMultiple(t *testing.T) {
	polys := []Polygon{
		{{1, 1}, {8, 1}, {8, 3}, {1, 3}},
		{{2, 5}, {7, 5}, {7, 7}, {2, 7}},
	}
	regions, err := RegionCoordinates(10, 10, polys, []float64{1, 0.8}, 0.2)
	assert.NoError(t, err)
	assert.LessOrEqual(t, len(regions), 2)

	for _, region := range regions {
		assert.True(t, region.valid())
		minX, minY, maxX, maxY := region.Bounds()
		assert.GreaterOrEqual(t, minX, 0.0)
		assert.GreaterOrEqual(t, minY, 0.0)
		assert.LessOrEqual(t, maxX, 9.0)
		assert.LessOrEqual(t, maxY, 9.0)
	}
}

// Higher shrink ratios must eat more of the polygon.
func TestRegionCoordinatesRatioMonotone(t *testing.T) {
	polys := []Polygon{LoadFixture("banner")}
	heights := []float64{1}

	gentle, err := RegionCoordinates(120, 60, polys, heights, 0.1)
	assert.NoError(t, err)
	aggressive, err := RegionCoordinates(120, 60, polys, heights, 0.9)
	assert.NoError(t, err)

	if assert.Len(t, gentle, 1) && assert.Len(t, aggressive, 1) {
		assert.Greater(t, gentle[0].Area(), aggressive[0].Area())
	}
}

// Degenerate instances disappear from the output instead of erroring.
func TestRegionCoordinatesDropsDegenerate(t *testing.T) {
	polys := []Polygon{
		{{0, 0}, {5, 5}}, // segment
		{{2, 5}, {7, 5}, {7, 7}, {2, 7}},
	}
	regions, err := RegionCoordinates(10, 10, polys, []float64{1, 1}, 0.2)
	assert.NoError(t, err)
	assert.Len(t, regions, 1)
}

func TestRegionCoordinatesContract(t *testing.T) {
	polys := []Polygon{{{1, 1}, {8, 1}, {8, 3}, {1, 3}}}

	_, err := RegionCoordinates(10, 10, polys, []float64{}, 0.2)
	assert.Error(t, err, "mismatched heights must fail fast")

	_, err = RegionCoordinates(0, 10, polys, []float64{1}, 0.2)
	assert.Error(t, err)
}

// A wild ratio gets clamped instead of producing a negative or polygon-
// crossing offset.
func TestRegionCoordinatesClampedRatio(t *testing.T) {
	polys := []Polygon{{{1, 1}, {8, 1}, {8, 3}, {1, 3}}}
	for _, ratio := range []float64{-3, 50} {
		regions, err := RegionCoordinates(10, 10, polys, []float64{1}, ratio)
		assert.NoError(t, err)
		for _, region := range regions {
			assert.True(t, region.valid())
		}
	}
}
