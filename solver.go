package nodify

import "fmt"

// DefaultCubicOffset is how far cubic control points sit from their anchors.
const DefaultCubicOffset = 80

// PathSolver computes the path of a link between two slots, in scene
// space. Solvers are pure: they read current slot geometry and keep no
// state, so a path solved on every draw always tracks its nodes.
type PathSolver interface {
	SolvePath(a, b *Slot) *Path
}

// StraightSolver links the two slot anchors with a single segment.
type StraightSolver struct{}

// SolvePath implements PathSolver.
func (StraightSolver) SolvePath(a, b *Slot) *Path {
	return StraightPath(a.SceneCenter(), b.SceneCenter())
}

// StraightPath returns the two-point polyline from p0 to p1.
func StraightPath(p0, p1 Point) *Path {
	p := NewPath()
	p.MoveTo(p0.X, p0.Y)
	p.LineTo(p1.X, p1.Y)
	return p
}

// CubicSolver links slots with a cubic curve that leaves and enters each
// node along the slot's outward direction.
type CubicSolver struct {
	// Offset is the control point distance. Zero selects DefaultCubicOffset.
	Offset float64
}

// SolvePath implements PathSolver. Slots without a direction fall back
// to the straight path.
func (s CubicSolver) SolvePath(a, b *Slot) *Path {
	offset := s.Offset
	if offset == 0 {
		offset = DefaultCubicOffset
	}
	p, err := CubicPath(a, b, offset)
	if err != nil {
		Logger().Debug("nodify: cubic solver fallback",
			"from", a.String(), "to", b.String(), "err", err)
		return StraightSolver{}.SolvePath(a, b)
	}
	return p
}

// CubicPath returns the cubic from a to b whose control points are the
// anchors pushed out by offset along each slot's direction. It returns
// ErrDegenerateGeometry when either direction is undefined.
func CubicPath(a, b *Slot, offset float64) (*Path, error) {
	da, ok := a.Direction()
	if !ok {
		return nil, fmt.Errorf("slot %s: %w", a, ErrDegenerateGeometry)
	}
	db, ok := b.Direction()
	if !ok {
		return nil, fmt.Errorf("slot %s: %w", b, ErrDegenerateGeometry)
	}

	p0 := a.SceneCenter()
	p3 := b.SceneCenter()
	c1 := p0.Add(da.Mul(offset))
	c2 := p3.Add(db.Mul(offset))
	if !p0.IsFinite() || !p3.IsFinite() || !c1.IsFinite() || !c2.IsFinite() {
		return nil, fmt.Errorf("slots %s -> %s: %w", a, b, ErrDegenerateGeometry)
	}

	p := NewPath()
	p.MoveTo(p0.X, p0.Y)
	p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p3.X, p3.Y)
	return p, nil
}
