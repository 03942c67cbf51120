package nodify

import (
	"math"

	"github.com/gogpu/nodify/internal/flatten"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 4),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ctrl1 := Pt(c1x, c1y)
	ctrl2 := Pt(c2x, c2y)
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: ctrl1,
		Control2: ctrl2,
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Polygon appends a closed polygon through pts.
func (p *Path) Polygon(pts ...Point) {
	if len(pts) == 0 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(r Rect) {
	p.Polygon(
		Pt(r.X, r.Y),
		Pt(r.X+r.W, r.Y),
		Pt(r.X+r.W, r.Y+r.H),
		Pt(r.X, r.Y+r.H),
	)
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.TransformPoint(e.Control1)
			ctrl2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Bounds returns the bounding box of every point of the path, control
// points included. This is the conservative box used for redraw regions;
// see TightBounds for the box of the curve itself.
func (p *Path) Bounds() Rect {
	pts := make([]Point, 0, len(p.elements)*3)
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		case CubicTo:
			pts = append(pts, e.Control1, e.Control2, e.Point)
		}
	}
	return RectFromPoints(pts...)
}

// TightBounds returns the bounding box of the curve geometry, using the
// extrema of each cubic segment instead of its control points.
func (p *Path) TightBounds() Rect {
	pts := make([]Point, 0, len(p.elements)*2)
	var current Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			current = e.Point
			pts = append(pts, current)
		case LineTo:
			current = e.Point
			pts = append(pts, current)
		case CubicTo:
			pts = append(pts, cubicExtrema(current, e.Control1, e.Control2, e.Point)...)
			pts = append(pts, e.Point)
			current = e.Point
		}
	}
	return RectFromPoints(pts...)
}

// cubicExtrema returns the points of the cubic where its derivative is zero
// on either axis.
func cubicExtrema(p0, p1, p2, p3 Point) []Point {
	var out []Point
	axis := func(a, b, c, d float64) []float64 {
		// B'(t)/3 = (-a+3b-3c+d)t^2 + 2(a-2b+c)t + (b-a)
		return unitRoots(-a+3*b-3*c+d, 2*(a-2*b+c), b-a)
	}
	ts := append(axis(p0.X, p1.X, p2.X, p3.X), axis(p0.Y, p1.Y, p2.Y, p3.Y)...)
	for _, t := range ts {
		out = append(out, evalCubic(p0, p1, p2, p3, t))
	}
	return out
}

// evalCubic evaluates a cubic Bezier at t.
func evalCubic(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// Flatten converts the path into polylines, one per subpath, with every
// curve approximated to within tolerance.
func (p *Path) Flatten(tolerance float64) [][]Point {
	elems := make([]flatten.Element, 0, len(p.elements))
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			elems = append(elems, flatten.Element{Op: flatten.OpMove, Points: [3]flatten.Point{toFlat(e.Point)}})
		case LineTo:
			elems = append(elems, flatten.Element{Op: flatten.OpLine, Points: [3]flatten.Point{toFlat(e.Point)}})
		case CubicTo:
			elems = append(elems, flatten.Element{Op: flatten.OpCubic, Points: [3]flatten.Point{
				toFlat(e.Control1), toFlat(e.Control2), toFlat(e.Point),
			}})
		case Close:
			elems = append(elems, flatten.Element{Op: flatten.OpClose})
		}
	}

	lines := flatten.Flatten(elems, tolerance)
	out := make([][]Point, len(lines))
	for i, line := range lines {
		out[i] = make([]Point, len(line))
		for j, fp := range line {
			out[i][j] = Point{X: fp.X, Y: fp.Y}
		}
	}
	return out
}

// DistanceTo returns the shortest distance from pt to the flattened path.
// An empty path is infinitely far away.
func (p *Path) DistanceTo(pt Point, tolerance float64) float64 {
	best := math.Inf(1)
	for _, line := range p.Flatten(tolerance) {
		fl := make([]flatten.Point, len(line))
		for i, q := range line {
			fl[i] = toFlat(q)
		}
		best = math.Min(best, flatten.PolylineDistance(fl, toFlat(pt)))
	}
	return best
}

func toFlat(p Point) flatten.Point {
	return flatten.Point{X: p.X, Y: p.Y}
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}
