// Package flatten turns curved path outlines into polylines.
//
// It keeps its own tiny point type so the root package can depend on it
// without an import cycle.
package flatten

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Op identifies a path element.
type Op uint8

const (
	OpMove Op = iota
	OpLine
	OpCubic
	OpClose
)

// Element is one path element. Move and Line use Points[0]; Cubic uses
// Points[0] and Points[1] as control points and Points[2] as the end.
type Element struct {
	Op     Op
	Points [3]Point
}

// DefaultTolerance is the maximum distance from the curve for flattening.
const DefaultTolerance = 0.1

// maxDepth bounds curve subdivision so degenerate input terminates.
const maxDepth = 16

// Flatten converts elements into one polyline per subpath.
// A non-positive tolerance selects DefaultTolerance.
func Flatten(elements []Element, tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	var (
		lines   [][]Point
		current []Point
		cursor  Point
	)
	flush := func() {
		if len(current) > 0 {
			lines = append(lines, current)
		}
		current = nil
	}

	for _, e := range elements {
		switch e.Op {
		case OpMove:
			flush()
			cursor = e.Points[0]
			current = []Point{cursor}
		case OpLine:
			if current == nil {
				current = []Point{cursor}
			}
			cursor = e.Points[0]
			current = append(current, cursor)
		case OpCubic:
			if current == nil {
				current = []Point{cursor}
			}
			flattenCubicRec(cursor, e.Points[0], e.Points[1], e.Points[2], tolerance, 0, &current)
			cursor = e.Points[2]
		case OpClose:
			if len(current) > 0 {
				current = append(current, current[0])
				cursor = current[0]
			}
			flush()
		}
	}
	flush()
	return lines
}

// PolylineDistance returns the shortest distance from p to any segment of
// the polyline. A single point polyline measures distance to that point.
func PolylineDistance(line []Point, p Point) float64 {
	switch len(line) {
	case 0:
		return math.Inf(1)
	case 1:
		return p.distance(line[0])
	}
	best := math.Inf(1)
	for i := 1; i < len(line); i++ {
		best = math.Min(best, distanceToLine(p, line[i-1], line[i]))
	}
	return best
}

func (p Point) lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

func (p Point) sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) distance(q Point) float64 {
	return p.sub(q).length()
}

// flattenCubicRec recursively subdivides a cubic Bezier curve.
func flattenCubicRec(p0, p1, p2, p3 Point, tolerance float64, depth int, points *[]Point) {
	// Calculate the distance from control points to the line p0-p3
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	dist := math.Max(d1, d2)

	if dist < tolerance || depth >= maxDepth {
		// Curve is flat enough, add the endpoint
		*points = append(*points, p3)
		return
	}

	// Subdivide the curve using de Casteljau's algorithm
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := p2.lerp(p3, 0.5)
	r0 := q0.lerp(q1, 0.5)
	r1 := q1.lerp(q2, 0.5)
	s := r0.lerp(r1, 0.5)

	flattenCubicRec(p0, q0, r0, s, tolerance, depth+1, points)
	flattenCubicRec(s, r1, q2, p3, tolerance, depth+1, points)
}

// distanceToLine calculates the perpendicular distance from point p to line segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.sub(a)
	abLen := ab.length()

	if abLen < 1e-10 {
		// Line segment is a point
		return p.distance(a)
	}

	// Project p onto the line
	ap := p.sub(a)
	t := ap.dot(ab) / (abLen * abLen)

	if t < 0 {
		return p.distance(a)
	}
	if t > 1 {
		return p.distance(b)
	}

	closest := a.add(ab.mul(t))
	return p.distance(closest)
}
