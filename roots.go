package nodify

import "math"

// unitRoots returns the real roots of a·t² + b·t + c = 0 that lie in
// [0, 1], ascending. A vanishing a degrades to the linear case; an
// identically zero polynomial has no isolated roots and yields none.
func unitRoots(a, b, c float64) []float64 {
	const eps = 1e-12
	var ts []float64
	switch {
	case math.Abs(a) < eps:
		if math.Abs(b) >= eps {
			ts = append(ts, -c/b)
		}
	default:
		disc := b*b - 4*a*c
		if disc < 0 {
			return nil
		}
		// q avoids cancellation between b and the root of the discriminant
		q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
		ts = append(ts, q/a)
		if q != 0 && disc > 0 {
			ts = append(ts, c/q)
		}
	}

	out := ts[:0]
	for _, t := range ts {
		if !isFinite(t) || t < -eps || t > 1+eps {
			continue
		}
		out = append(out, math.Min(math.Max(t, 0), 1))
	}
	if len(out) == 2 && out[0] > out[1] {
		out[0], out[1] = out[1], out[0]
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
