package shrink

// Mask composes a list of polygons into one (height, width) inclusion
// raster. Polygons whose ignore flag is set contribute nothing at all;
// everything else is unioned in by per-pixel maximum, so overlap can't push
// a value past 1.
//
// The polygon and ignore lists are parallel; a length mismatch is a caller
// bug and comes back as an error, not a truncated mask.
func Mask(width, height int, polys []Polygon, ignores []bool) (mask *Raster, err error) {
	defer func() { handleContractPanic(recover(), &err) }()
	if len(polys) != len(ignores) {
		fatalf("got %d polygons but %d ignore flags", len(polys), len(ignores))
	}
	mask = NewRaster(width, height)
	for i, poly := range polys {
		if ignores[i] {
			continue
		}
		mask.MaxFrom(FillPoly(poly, width, height))
	}
	return mask, nil
}
