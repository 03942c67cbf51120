package nodify

// Connection is a rendered link between two slots. It owns no geometry:
// the path is solved from the live slot positions on every call.
type Connection struct {
	a, b   *Slot
	solver PathSolver
	color  RGBA
}

func newConnection(a, b *Slot, solver PathSolver) *Connection {
	if solver == nil {
		solver = CubicSolver{}
	}
	return &Connection{a: a, b: b, solver: solver, color: DefaultLinkColor}
}

// A returns the slot the link was dragged from.
func (c *Connection) A() *Slot { return c.a }

// B returns the slot the link was dropped on.
func (c *Connection) B() *Slot { return c.b }

// Other returns the endpoint opposite s, or nil if s is not an endpoint.
func (c *Connection) Other(s *Slot) *Slot {
	switch s {
	case c.a:
		return c.b
	case c.b:
		return c.a
	}
	return nil
}

// Touches reports whether either endpoint belongs to n.
func (c *Connection) Touches(n *Node) bool {
	return c.a.node == n || c.b.node == n
}

// Solver returns the path solver.
func (c *Connection) Solver() PathSolver { return c.solver }

// SetSolver replaces the path solver; nil selects the cubic solver.
func (c *Connection) SetSolver(s PathSolver) {
	if s == nil {
		s = CubicSolver{}
	}
	c.solver = s
}

// Color returns the stroke color.
func (c *Connection) Color() RGBA { return c.color }

// SetColor sets the stroke color.
func (c *Connection) SetColor(col RGBA) { c.color = col }

// Path solves and returns the current link path in scene space.
func (c *Connection) Path() *Path {
	return c.solver.SolvePath(c.a, c.b)
}

// BoundingBox implements Drawable. It is the control-point bounds of a
// freshly solved path.
func (c *Connection) BoundingBox() Rect {
	return c.Path().Bounds()
}

// Extent returns the box the stroked curve actually covers: the cubic
// extrema bounds grown by half the link width. It is never larger than
// BoundingBox grown the same way.
func (c *Connection) Extent() Rect {
	return c.Path().TightBounds().Grow(LinkStroke(c.color).Width / 2)
}

// HitTest reports whether the scene point p lies within tolerance of the
// link curve.
func (c *Connection) HitTest(p Point, tolerance float64) bool {
	return c.Path().DistanceTo(p, 0.25) <= tolerance
}

// Render implements Drawable.
func (c *Connection) Render(dc DrawContext) {
	dc.StrokePath(c.Path(), LinkStroke(c.color))
}

// DragPath is the transient straight preview drawn while a link is being
// dragged out of a slot.
type DragPath struct {
	Origin *Slot
	End    Point
}

// Start returns the origin slot's anchor in scene space.
func (d *DragPath) Start() Point { return d.Origin.SceneCenter() }

// Path returns the preview segment.
func (d *DragPath) Path() *Path { return StraightPath(d.Start(), d.End) }

// BoundingBox implements Drawable.
func (d *DragPath) BoundingBox() Rect { return d.Path().Bounds() }

// Render implements Drawable.
func (d *DragPath) Render(dc DrawContext) {
	dc.StrokePath(d.Path(), LinkStroke(d.Origin.color))
}
