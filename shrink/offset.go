package shrink

import "math"

// ShrinkPolygon moves the polygon boundary inward by offset pixels using
// mitered joins: each edge slides along its inward normal, and each new
// vertex is the intersection of its two adjacent offset edge lines. Winding
// order is detected from the signed area, so both orientations shrink toward
// the interior for offset >= 0.
//
// Polygons with fewer than three vertices have no interior to shrink and are
// returned unchanged. The result always has the same vertex count as the
// input and never contains NaN or Inf, but a large offset relative to the
// polygon's size can still self-intersect; SmallestWidth bounds the offset
// for callers that need to stay safe.
func ShrinkPolygon(poly Polygon, offset float64) Polygon {
	if len(poly) < 3 {
		return poly
	}

	// Sign of the shoelace sum tells us the winding, which tells us which
	// perpendicular points inward.
	sign := 1.0
	if poly.IsClockwise() {
		sign = -1.0
	}

	n := len(poly)
	normals := make([]Point, n)
	for i := 0; i < n; i++ {
		e := poly[CircularIndex(i+1, n)].Sub(poly[i])
		length := e.Norm()
		if length < Tolerance {
			// Degenerate edge; reuse the previous normal so the join math
			// stays finite. The first edge of a polygon can't be degenerate
			// without the whole polygon being near-degenerate anyway.
			normals[i] = normals[CircularIndex(i-1, n)]
			continue
		}
		normals[i] = Point{-e.Y, e.X}.Scale(sign / length)
	}

	out := make(Polygon, n)
	for i := 0; i < n; i++ {
		prev := CircularIndex(i-1, n)
		// Offset copies of the two edges meeting at vertex i.
		a1 := poly[prev].Add(normals[prev].Scale(offset))
		d1 := poly[i].Sub(poly[prev])
		a2 := poly[i].Add(normals[i].Scale(offset))
		d2 := poly[CircularIndex(i+1, n)].Sub(poly[i])

		denom := d1.Cross(d2)
		if math.Abs(denom) < Tolerance {
			// Near-parallel join. The miter point would shoot off toward
			// infinity, so fall back to the vertex moved by the averaged
			// edge normals.
			avg := normals[prev].Add(normals[i]).Scale(0.5 * offset)
			out[i] = poly[i].Add(avg)
			continue
		}
		t := a2.Sub(a1).Cross(d2) / denom
		out[i] = a1.Add(d1.Scale(t))
	}
	return out
}
