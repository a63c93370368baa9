package shrink

import "math"

// NewPolygon normalizes raw coordinate rows into a Polygon. Everything
// downstream operates on the canonical Point type only, so callers holding
// decoded annotation arrays convert once at the boundary. Rows shorter than
// two values are skipped.
func NewPolygon(coords [][]float64) Polygon {
	poly := make(Polygon, 0, len(coords))
	for _, row := range coords {
		if len(row) < 2 {
			continue
		}
		poly = append(poly, Point{row[0], row[1]})
	}
	return poly
}

// signedSum is the raw shoelace sum. Its sign encodes the winding order;
// half its absolute value is the area.
func (poly Polygon) signedSum() float64 {
	sum := 0.0
	for i, p := range poly {
		sum += p.Cross(poly[CircularIndex(i+1, len(poly))])
	}
	return sum
}

// Area is the absolute shoelace area. Winding order doesn't matter; fewer
// than three vertices is zero.
func (poly Polygon) Area() float64 {
	if len(poly) < 3 {
		return 0
	}
	return math.Abs(poly.signedSum()) / 2
}

// IsClockwise reports the winding order, in the y-up convention where a
// positive shoelace sum means counterclockwise.
func (poly Polygon) IsClockwise() bool {
	return poly.signedSum() < 0
}

// Perimeter is the total boundary length, including the closing edge.
func (poly Polygon) Perimeter() float64 {
	if len(poly) < 2 {
		return 0
	}
	sum := 0.0
	for i, p := range poly {
		sum += p.Dist(poly[CircularIndex(i+1, len(poly))])
	}
	return sum
}

func (poly Polygon) Reverse() Polygon {
	out := make(Polygon, 0, len(poly))
	for i := len(poly) - 1; i >= 0; i-- {
		out = append(out, poly[i])
	}
	return out
}

// Bounds returns the axis-aligned bounding box. For an empty polygon all
// four values are zero.
func (poly Polygon) Bounds() (minX, minY, maxX, maxY float64) {
	if len(poly) == 0 {
		return 0, 0, 0, 0
	}
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range poly {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

// valid reports whether the polygon still has a usable interior: at least
// three finite vertices and an area that hasn't collapsed to nothing.
func (poly Polygon) valid() bool {
	if len(poly) < 3 {
		return false
	}
	for _, p := range poly {
		if !p.finite() {
			return false
		}
	}
	return poly.Area() > Tolerance
}
