package shrink

// Points here are plain values, not pointers. Nothing in this package keys a
// map on point identity, and every operation constructs fresh output, so
// sharing would only invite accidental mutation of a caller's polygon.
type Point struct {
	X float64
	Y float64
}

// A Polygon is a closed loop; the last vertex implicitly connects back to the
// first. Zero, one and two vertex "polygons" are legal inputs everywhere and
// degrade per-operation rather than erroring.
type Polygon []Point

type Segment struct {
	Start Point
	End   Point
}

// Instance is one annotated text region: its boundary, a confidence height in
// (0, 1] used to modulate how far the core region is shrunk, and an ignore
// flag excluding it from training targets entirely.
type Instance struct {
	Polygon Polygon
	Height  float64
	Ignore  bool
}
