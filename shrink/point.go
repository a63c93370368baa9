package shrink

import "math"

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Cross is the scalar 2D cross product. Its sign tells you which side of p
// the vector q falls on; its magnitude is the area of the parallelogram the
// two vectors span.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Dist(q Point) float64 {
	return p.Sub(q).Norm()
}

// ToPair converts to a plain coordinate pair, for callers that hand the
// result off to array-shaped consumers.
func (p Point) ToPair() [2]float64 {
	return [2]float64{p.X, p.Y}
}

func (p Point) finite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}
