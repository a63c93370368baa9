package shrink

// CoordsPolyProjection finds, for every query coordinate, the nearest point
// on the polygon's boundary, by projecting onto every edge segment and
// keeping the closest hit. Brute force over edges is fine here: text
// polygons carry tens of vertices and queries are batched per instance, not
// per image.
//
// A polygon with a single vertex projects everything onto that vertex. An
// empty polygon has no boundary; the queries come back unchanged with
// distance 0, mirroring how degenerate geometry degrades elsewhere.
func CoordsPolyProjection(coords []Point, poly Polygon) []Point {
	out := make([]Point, len(coords))
	if len(poly) == 0 {
		copy(out, coords)
		return out
	}
	n := len(poly)
	for ci, c := range coords {
		best := poly[0]
		bestDist := c.Dist(best)
		for i := 0; i < n; i++ {
			proj := ProjectPointToSegment(c, poly[i], poly[CircularIndex(i+1, n)])
			if d := c.Dist(proj); d < bestDist {
				best = proj
				bestDist = d
			}
		}
		out[ci] = best
	}
	return out
}

// CoordsPolyDistance is the distance companion: the Euclidean distance from
// each query coordinate to its nearest boundary point. All entries are
// non-negative.
func CoordsPolyDistance(coords []Point, poly Polygon) []float64 {
	projections := CoordsPolyProjection(coords, poly)
	out := make([]float64, len(coords))
	for i, c := range coords {
		out[i] = c.Dist(projections[i])
	}
	return out
}
