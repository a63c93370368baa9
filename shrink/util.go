package shrink

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. If we
// don't account for this, near-parallel offset edges would produce miter
// points absurdly far from the polygon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat a vertex list as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it only
// gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
