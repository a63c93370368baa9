package shrink

// LineHeight estimates a representative stroke height for a text polygon
// from its shorter bounding dimension. Shrink parameters scale with this so
// small text isn't eaten by a shrink tuned for large text. Degenerate
// polygons give 0.
func LineHeight(poly Polygon) int {
	if len(poly) < 3 {
		return 0
	}
	minX, minY, maxX, maxY := poly.Bounds()
	w := maxX - minX
	h := maxY - minY
	shorter := w
	if h < shorter {
		shorter = h
	}
	if shorter < 0 {
		return 0
	}
	return int(shorter)
}
