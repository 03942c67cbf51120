package raster

import (
	"math"

	"github.com/gogpu/nodify"
)

// roundSegments is the polygon resolution of round caps and joins.
const roundSegments = 16

// strokePolyline expands a device-space polyline into filled polygons: one
// quad per segment, plus cap and join shapes. The polygons overlap and must
// be filled with a common orientation so their coverage adds up.
func strokePolyline(line []nodify.Point, half float64, lc nodify.LineCap, lj nodify.LineJoin) [][]nodify.Point {
	line = dedupe(line)
	if len(line) == 0 {
		return nil
	}
	if len(line) == 1 {
		if lc == nodify.LineCapButt {
			return nil
		}
		return [][]nodify.Point{capShape(line[0], nodify.Pt(1, 0), half, lc)}
	}

	closed := line[0] == line[len(line)-1]
	if lc == nodify.LineCapSquare && !closed {
		line = extendEnds(line, half)
	}

	var out [][]nodify.Point
	for i := 0; i+1 < len(line); i++ {
		a, b := line[i], line[i+1]
		n, ok := normal(a, b)
		if !ok {
			continue
		}
		n = n.Mul(half)
		out = append(out, []nodify.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
	}

	// joins at interior vertices, and at the seam of a closed line
	for i := 1; i < len(line); i++ {
		if i == len(line)-1 && !closed {
			break
		}
		prev := line[i-1]
		next := line[(i+1)%len(line)]
		if i == len(line)-1 {
			next = line[1]
		}
		out = append(out, joinShape(prev, line[i], next, half, lj)...)
	}

	if !closed && lc == nodify.LineCapRound {
		out = append(out, circle(line[0], half), circle(line[len(line)-1], half))
	}
	return out
}

func joinShape(prev, at, next nodify.Point, half float64, lj nodify.LineJoin) [][]nodify.Point {
	if lj == nodify.LineJoinRound {
		return [][]nodify.Point{circle(at, half)}
	}
	n0, ok0 := normal(prev, at)
	n1, ok1 := normal(at, next)
	if !ok0 || !ok1 {
		return nil
	}
	// bevel on the outer side of the turn; the inner side is covered by the quads
	if n0.Cross(n1) > 0 {
		n0, n1 = n0.Mul(-1), n1.Mul(-1)
	}
	bevel := []nodify.Point{at, at.Add(n0.Mul(half)), at.Add(n1.Mul(half))}
	if lj == nodify.LineJoinBevel {
		return [][]nodify.Point{bevel}
	}
	// miter, limited to 4 half-widths like the usual default
	mid, ok := n0.Add(n1).Normalize()
	if !ok {
		return [][]nodify.Point{bevel}
	}
	cos := mid.Dot(n0)
	if cos <= 0.25 {
		return [][]nodify.Point{bevel}
	}
	tip := at.Add(mid.Mul(half / cos))
	return [][]nodify.Point{{at, at.Add(n0.Mul(half)), tip, at.Add(n1.Mul(half))}}
}

func capShape(p, dir nodify.Point, half float64, lc nodify.LineCap) []nodify.Point {
	if lc == nodify.LineCapRound {
		return circle(p, half)
	}
	n := nodify.Pt(-dir.Y, dir.X).Mul(half)
	d := dir.Mul(half)
	return []nodify.Point{p.Sub(d).Add(n), p.Add(d).Add(n), p.Add(d).Sub(n), p.Sub(d).Sub(n)}
}

func circle(c nodify.Point, r float64) []nodify.Point {
	pts := make([]nodify.Point, roundSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / roundSegments
		pts[i] = nodify.Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
	}
	return pts
}

// normal returns the unit left normal of a→b.
func normal(a, b nodify.Point) (nodify.Point, bool) {
	d, ok := b.Sub(a).Normalize()
	if !ok {
		return nodify.Point{}, false
	}
	return nodify.Pt(-d.Y, d.X), true
}

func extendEnds(line []nodify.Point, half float64) []nodify.Point {
	out := append([]nodify.Point(nil), line...)
	if d, ok := out[0].Sub(out[1]).Normalize(); ok {
		out[0] = out[0].Add(d.Mul(half))
	}
	last := len(out) - 1
	if d, ok := out[last].Sub(out[last-1]).Normalize(); ok {
		out[last] = out[last].Add(d.Mul(half))
	}
	return out
}

// dedupe drops consecutive duplicate points.
func dedupe(line []nodify.Point) []nodify.Point {
	out := make([]nodify.Point, 0, len(line))
	for i, p := range line {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// signedArea is the shoelace area; negative for polygons the stroke
// expansion emits.
func signedArea(poly []nodify.Point) float64 {
	var a float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a * 0.5
}

// orientNegative reverses poly when needed so every stroke polygon winds
// the same way; the rasterizer sums signed coverage.
func orientNegative(poly []nodify.Point) []nodify.Point {
	if signedArea(poly) <= 0 {
		return poly
	}
	out := make([]nodify.Point, len(poly))
	for i, p := range poly {
		out[len(poly)-1-i] = p
	}
	return out
}
