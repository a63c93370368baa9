package shrink

// Targets bundles the per-image training targets a differentiable-
// binarization detector consumes. All rasters share the requested
// (height, width) shape and stay within [0, 1].
type Targets struct {
	// ShrinkMask marks the shrunk core region of every kept instance.
	ShrinkMask *Raster
	// ThresholdMap decays from 1 at each instance boundary to 0 at the
	// edge of the surrounding border band.
	ThresholdMap *Raster
	// ThresholdMask marks where ThresholdMap carries supervision.
	ThresholdMask *Raster
	// TrainingMask is 1 wherever the loss applies; ignored instances
	// punch zero holes into it.
	TrainingMask *Raster
	// WeightMap balances the shrink mask against variable instance sizes.
	WeightMap *Raster
	// Dropped counts instances whose core collapsed during shrinking.
	// They contribute no positive pixels but are not an error.
	Dropped int
}

// GenerateTargets runs the whole target-preparation pipeline for one image:
// shrink every instance's polygon for the core mask, build the border-band
// threshold map from distance-to-boundary, cut ignored instances out of the
// training mask, and normalize loss weights over the result.
func GenerateTargets(width, height int, instances []Instance, shrinkRatio float64) (targets *Targets, err error) {
	defer func() { handleContractPanic(recover(), &err) }()

	kept := make([]Polygon, 0, len(instances))
	keptHeights := make([]float64, 0, len(instances))
	for _, inst := range instances {
		if inst.Ignore {
			continue
		}
		kept = append(kept, inst.Polygon)
		keptHeights = append(keptHeights, inst.Height)
	}

	regions, err := RegionCoordinates(width, height, kept, keptHeights, shrinkRatio)
	if err != nil {
		return nil, err
	}

	noIgnores := make([]bool, len(regions))
	shrinkMask, err := Mask(width, height, regions, noIgnores)
	if err != nil {
		return nil, err
	}

	trainingMask := NewRaster(width, height)
	trainingMask.Fill(1)
	for _, inst := range instances {
		if !inst.Ignore {
			continue
		}
		hole := FillPoly(inst.Polygon, width, height)
		for i, v := range hole.data {
			if v > 0 {
				trainingMask.data[i] = 0
			}
		}
	}

	thresholdMap := NewRaster(width, height)
	thresholdMask := NewRaster(width, height)
	for _, inst := range instances {
		if inst.Ignore {
			continue
		}
		drawBorderBand(thresholdMap, thresholdMask, inst.Polygon, regionOffset(inst.Polygon, inst.Height, shrinkRatio))
	}
	thresholdMap.Clamp01()

	weightMap, err := NormalizedWeight(shrinkMask, trainingMask)
	if err != nil {
		return nil, err
	}

	return &Targets{
		ShrinkMask:    shrinkMask,
		ThresholdMap:  thresholdMap,
		ThresholdMask: thresholdMask,
		TrainingMask:  trainingMask,
		WeightMap:     weightMap,
		Dropped:       len(kept) - len(regions),
	}, nil
}

// drawBorderBand dilates the polygon outward by the same offset its core
// was shrunk by, then, inside that band, writes 1 - d/offset where d is the
// distance to the original boundary. Overlapping bands keep the larger
// value.
func drawBorderBand(thresholdMap, thresholdMask *Raster, poly Polygon, offset float64) {
	if offset < Tolerance || len(poly) < 3 {
		return
	}
	dilated := ShrinkPolygon(poly, -offset)
	if !dilated.valid() {
		return
	}

	band := FillPoly(dilated, thresholdMap.width, thresholdMap.height)

	// Gather the band's pixels and resolve their boundary distances in one
	// batch against the original polygon.
	coords := make([]Point, 0, 64)
	for y := 0; y < band.height; y++ {
		for x := 0; x < band.width; x++ {
			if band.data[y*band.width+x] > 0 {
				coords = append(coords, Point{float64(x), float64(y)})
			}
		}
	}
	dists := CoordsPolyDistance(coords, poly)
	for i, c := range coords {
		x, y := int(c.X), int(c.Y)
		v := 1 - dists[i]/offset
		if v < 0 {
			v = 0
		}
		if v > thresholdMap.At(x, y) {
			thresholdMap.Set(x, y, v)
		}
		thresholdMask.Set(x, y, 1)
	}
}
