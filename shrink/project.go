package shrink

// ProjectPointToLine drops x orthogonally onto the infinite line through u
// and v. When u and v coincide there is no line to speak of, so the
// projection is defined to be u itself rather than dividing by zero.
func ProjectPointToLine(x, u, v Point) Point {
	d := v.Sub(u)
	lenSq := d.Dot(d)
	if lenSq < Tolerance*Tolerance {
		return u
	}
	t := x.Sub(u).Dot(d) / lenSq
	return u.Add(d.Scale(t))
}

// ProjectPointToSegment is the clamped version: the result always lies on
// the closed segment uv. Projections that fall past an endpoint snap to that
// endpoint.
func ProjectPointToSegment(x, u, v Point) Point {
	d := v.Sub(u)
	lenSq := d.Dot(d)
	if lenSq < Tolerance*Tolerance {
		return u
	}
	t := x.Sub(u).Dot(d) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return u.Add(d.Scale(t))
}
