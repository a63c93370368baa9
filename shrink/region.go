package shrink

// RegionCoordinates produces the shrunk "core" polygon for each text
// instance. The effective offset grows with both the instance's confidence
// height and the global shrink ratio, scaled by the polygon's area-to-
// perimeter ratio so fat regions shrink further than thin ones, and is
// capped at the largest offset SmallestWidth confirms safe.
//
// Instances that still collapse (or were degenerate to begin with) are
// dropped from the output, so the result can be shorter than the input.
// Coordinates are clipped into the [0, width-1] x [0, height-1] raster
// domain. Mismatched polygon/height lists are a caller bug and error out.
func RegionCoordinates(width, height int, polys []Polygon, heights []float64, shrinkRatio float64) (regions []Polygon, err error) {
	defer func() { handleContractPanic(recover(), &err) }()
	if len(polys) != len(heights) {
		fatalf("got %d polygons but %d heights", len(polys), len(heights))
	}
	if width <= 0 || height <= 0 {
		fatalf("raster dimensions must be positive, got %dx%d", width, height)
	}

	regions = make([]Polygon, 0, len(polys))
	for i, poly := range polys {
		shrunk := ShrinkPolygon(poly, regionOffset(poly, heights[i], shrinkRatio))
		if !shrunk.valid() {
			continue
		}
		regions = append(regions, clipToRaster(shrunk, width, height))
	}
	return regions, nil
}

// regionOffset maps a confidence height and the global shrink ratio to a
// shrink distance for one polygon. Both knobs are clamped into (0, 1] so a
// wild ratio can't ask for a negative or interior-crossing offset.
func regionOffset(poly Polygon, instanceHeight, shrinkRatio float64) float64 {
	perimeter := poly.Perimeter()
	if perimeter < Tolerance {
		return 0
	}
	r := clamp01(shrinkRatio) * clamp01(instanceHeight)
	offset := poly.Area() * r / perimeter

	// Cap at the largest offset the width solver confirms safe. Sub-pixel
	// offsets are always allowed through, since the solver only speaks in
	// whole pixels; if one does collapse a thin polygon anyway, the
	// validity check in RegionCoordinates drops it.
	limit := float64(SmallestWidth(poly))
	if limit < 1 {
		limit = 1
	}
	if offset > limit {
		offset = limit
	}
	return offset
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clipToRaster(poly Polygon, width, height int) Polygon {
	out := make(Polygon, len(poly))
	for i, p := range poly {
		out[i] = Point{
			X: clampf(p.X, 0, float64(width-1)),
			Y: clampf(p.Y, 0, float64(height-1)),
		}
	}
	return out
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
