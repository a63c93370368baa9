package shrink

// NormalizedWeight rescales a heatmap restricted to a mask's support so
// that the weights inside the mask sum to the number of positive mask
// pixels. Small instances would otherwise be drowned out by large ones in
// the loss, since their heatmaps cover fewer pixels.
//
// Cells outside the mask come back zero. A mask with no positive pixels has
// nothing to balance; the result is simply all zeros rather than a division
// by zero.
func NormalizedWeight(heatmap, mask *Raster) (weight *Raster, err error) {
	defer func() { handleContractPanic(recover(), &err) }()
	if heatmap.width != mask.width || heatmap.height != mask.height {
		fatalf("heatmap shape %dx%d does not match mask shape %dx%d",
			heatmap.width, heatmap.height, mask.width, mask.height)
	}

	weight = NewRaster(heatmap.width, heatmap.height)
	support := 0
	total := 0.0
	for i, m := range mask.data {
		if m > 0 {
			support++
			total += heatmap.data[i]
		}
	}
	if support == 0 || total <= Tolerance {
		return weight, nil
	}

	scale := float64(support) / total
	for i, m := range mask.data {
		if m <= 0 {
			continue
		}
		v := heatmap.data[i] * scale
		if v < 0 {
			v = 0
		}
		weight.data[i] = v
	}
	return weight, nil
}
