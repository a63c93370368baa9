package shrink

import "math"

// FillPoly rasterizes one polygon into a (height, width) raster of {0, 1}
// inclusion values, even-odd rule, sampling at integer pixel coordinates.
//
// Rather than asking "which edges cross me?" per pixel, it works edge-major:
// each non-horizontal edge deposits its ray crossings into a per-row
// difference buffer in one pass, and a final prefix sweep converts
// accumulated crossing counts into even-odd parity. Non-convex and
// self-touching polygons come out right because parity is all that's
// consulted.
func FillPoly(poly Polygon, width, height int) *Raster {
	out := NewRaster(width, height)
	if len(poly) < 3 {
		return out
	}

	// diff[y][x] holds the change in crossing count at column x for the
	// horizontal ray cast in +x from row y. One extra column absorbs
	// decrements falling off the right edge.
	stride := width + 1
	diff := make([]int, height*stride)

	n := len(poly)
	for i := 0; i < n; i++ {
		p1 := poly[i]
		p2 := poly[CircularIndex(i+1, n)]
		if Equal(p1.Y, p2.Y) {
			// Horizontal edges never cross a horizontal ray.
			continue
		}
		yLo, yHi := p1.Y, p2.Y
		if yLo > yHi {
			yLo, yHi = yHi, yLo
		}
		rowLo := int(math.Ceil(yLo))
		if rowLo < 0 {
			rowLo = 0
		}
		for y := rowLo; y < height && float64(y) < yHi; y++ {
			// A pixel at (x, y) is crossed by this edge iff x < xint.
			xint := p1.X + (float64(y)-p1.Y)/(p2.Y-p1.Y)*(p2.X-p1.X)
			xOut := int(math.Ceil(xint))
			if xOut <= 0 {
				continue
			}
			if xOut > width {
				xOut = width
			}
			diff[y*stride]++
			diff[y*stride+xOut]--
		}
	}

	for y := 0; y < height; y++ {
		crossings := 0
		for x := 0; x < width; x++ {
			crossings += diff[y*stride+x]
			if crossings%2 != 0 {
				out.data[y*width+x] = 1
			}
		}
	}
	return out
}
