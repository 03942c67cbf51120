package nodify

// polygonContains reports whether p lies inside or on the convex polygon
// pts, in either winding order, using the cross-product sign test.
func polygonContains(pts []Point, p Point) bool {
	n := len(pts)
	if n < 3 {
		return false
	}

	// The point must be on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		cross := b.Sub(a).Cross(p.Sub(a))
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}
