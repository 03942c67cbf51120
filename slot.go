package nodify

import "fmt"

// DefaultSlotSize is the width and height of a slot wedge.
const DefaultSlotSize = 14

// Slot is a directional anchor on one side of a Node. It holds at most one
// Connection.
//
// Coordinates: LocalCenter is in the owning node's local space (origin at
// the node's top-left corner); SceneCenter, Polygon and Contains are in scene
// space. Nothing else in the package converts between the two.
type Slot struct {
	node   *Node
	side   Side
	width  float64
	height float64
	color  RGBA
	local  Point

	connection *Connection
}

// newSlot creates the slot for side of n. An invalid side is a
// construction-time contract violation and panics.
func newSlot(n *Node, side Side) *Slot {
	if !side.Valid() {
		panic(fmt.Sprintf("nodify: invalid side %d", uint8(side)))
	}
	s := &Slot{
		node:   n,
		side:   side,
		width:  DefaultSlotSize,
		height: DefaultSlotSize,
		color:  DefaultSlotColor,
	}
	s.Reposition()
	return s
}

// Node returns the node that owns the slot.
func (s *Slot) Node() *Node { return s.node }

// Side returns the edge the slot sits on.
func (s *Slot) Side() Side { return s.side }

// Size returns the wedge width and height.
func (s *Slot) Size() (w, h float64) { return s.width, s.height }

// Color returns the fill color used when connected.
func (s *Slot) Color() RGBA { return s.color }

// SetColor sets the slot fill color.
func (s *Slot) SetColor(c RGBA) { s.color = c }

// SetSize sets the wedge size. Non-positive dimensions are ignored.
func (s *Slot) SetSize(w, h float64) {
	if w > 0 {
		s.width = w
	}
	if h > 0 {
		s.height = h
	}
}

// Reposition recomputes the local anchor from the owning node's size.
// Node calls it on every size change.
func (s *Slot) Reposition() {
	s.local = s.side.anchor(s.node.w, s.node.h)
}

// LocalCenter returns the anchor in node-local coordinates.
func (s *Slot) LocalCenter() Point { return s.local }

// SceneCenter returns the anchor in scene coordinates.
func (s *Slot) SceneCenter() Point { return s.node.Pos().Add(s.local) }

// Direction returns the unit vector from the node center to the anchor.
// The second result is false when the node has collapsed to a point.
func (s *Slot) Direction() (Point, bool) {
	return s.SceneCenter().Sub(s.node.Rect().Center()).Normalize()
}

// Polygon returns the three wedge vertices in scene coordinates.
func (s *Slot) Polygon() [3]Point {
	w := s.side.wedge(s.width, s.height)
	c := s.SceneCenter()
	return [3]Point{c.Add(w[0]), c.Add(w[1]), c.Add(w[2])}
}

// Contains reports whether the scene point p lies inside the wedge.
func (s *Slot) Contains(p Point) bool {
	poly := s.Polygon()
	return polygonContains(poly[:], p)
}

// Connected reports whether the slot holds a connection.
func (s *Slot) Connected() bool { return s.connection != nil }

// Connection returns the connection held by the slot, or nil.
func (s *Slot) Connection() *Connection { return s.connection }

// connect records c on the slot. The scene calls it on both endpoints.
func (s *Slot) connect(c *Connection) {
	s.connection = c
}

// disconnect clears the slot if it holds c.
func (s *Slot) disconnect(c *Connection) {
	if s.connection == c {
		s.connection = nil
	}
}

// BoundingBox implements Drawable.
func (s *Slot) BoundingBox() Rect {
	poly := s.Polygon()
	return RectFromPoints(poly[:]...)
}

// Render implements Drawable. Connected slots are drawn in their color,
// free slots darkened.
func (s *Slot) Render(dc DrawContext) {
	poly := s.Polygon()
	path := NewPath()
	path.Polygon(poly[:]...)
	fill := s.color
	if !s.Connected() {
		fill = fill.Darker(120)
	}
	dc.FillPath(path, fill)
}

// String returns a short description for logs.
func (s *Slot) String() string {
	return fmt.Sprintf("%s/%s", s.node.label, s.side)
}
