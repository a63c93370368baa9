package shrink

// A Raster is a dense (height, width) float64 grid, row-major. It's the
// output currency of this package: inclusion masks, threshold maps and
// weight maps are all Rasters. Values are plain float64s; the functions that
// produce masks guarantee the [0, 1] range, the raster itself doesn't.
//
// Misuse (non-positive dimensions, merging mismatched shapes) panics with a
// contract error. The higher-level entry points recover those panics into
// ordinary error returns.
type Raster struct {
	width  int
	height int
	data   []float64
}

func NewRaster(width, height int) *Raster {
	if width <= 0 || height <= 0 {
		fatalf("raster dimensions must be positive, got %dx%d", width, height)
	}
	return &Raster{
		width:  width,
		height: height,
		data:   make([]float64, width*height),
	}
}

func (r *Raster) Width() int  { return r.width }
func (r *Raster) Height() int { return r.height }

// Data exposes the row-major backing slice for callers feeding tensors.
func (r *Raster) Data() []float64 { return r.data }

func (r *Raster) At(x, y int) float64 {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return 0
	}
	return r.data[y*r.width+x]
}

func (r *Raster) Set(x, y int, v float64) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	r.data[y*r.width+x] = v
}

func (r *Raster) Clone() *Raster {
	out := NewRaster(r.width, r.height)
	copy(out.data, r.data)
	return out
}

// MaxFrom merges other into r by per-cell maximum. This is how overlapping
// instance masks union without ever leaving the [0, 1] range.
func (r *Raster) MaxFrom(other *Raster) {
	if other.width != r.width || other.height != r.height {
		fatalf("raster shape mismatch: %dx%d vs %dx%d", r.width, r.height, other.width, other.height)
	}
	for i, v := range other.data {
		if v > r.data[i] {
			r.data[i] = v
		}
	}
}

func (r *Raster) Sum() float64 {
	sum := 0.0
	for _, v := range r.data {
		sum += v
	}
	return sum
}

// Clamp01 clips every cell into [0, 1] in place.
func (r *Raster) Clamp01() {
	for i, v := range r.data {
		if v < 0 {
			r.data[i] = 0
		} else if v > 1 {
			r.data[i] = 1
		}
	}
}

func (r *Raster) Fill(v float64) {
	for i := range r.data {
		r.data[i] = v
	}
}
