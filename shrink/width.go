package shrink

import "math"

// SmallestWidth finds the largest integer offset that ShrinkPolygon can
// apply to this polygon without collapsing it, by binary search. The shrunk
// probe is considered collapsed when it loses its interior (near-zero area)
// or any vertex goes non-finite. Downstream consumers work in discrete pixel
// space, hence the integer result.
//
// A polygon with fewer than three vertices can't be shrunk at all, so the
// answer is 0 without searching.
func SmallestWidth(poly Polygon) int {
	if len(poly) < 3 {
		return 0
	}

	minX, minY, maxX, maxY := poly.Bounds()
	high := int(math.Ceil(math.Max(maxX-minX, maxY-minY)))
	if high < 1 {
		return 0
	}

	// Invariant: low is always a confirmed-valid offset, everything above
	// high is invalid.
	low := 0
	for low < high {
		mid := (low + high + 1) / 2
		if ShrinkPolygon(poly, float64(mid)).valid() {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return low
}
