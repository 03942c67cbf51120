package nodify

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Scene owns the node/connection graph and runs the pointer gesture state
// machine that edits it. A Scene is driven from a single event loop and is
// not safe for concurrent use.
//
// Positions in events handed to Scene.HandlePointer are in scene units;
// a View converts from view pixels before forwarding.
type Scene struct {
	opts sceneOptions

	nodes       []*Node // insertion order
	connections []*Connection

	gesture gesture
}

// NewScene creates an empty scene.
func NewScene(opts ...SceneOption) *Scene {
	o := defaultSceneOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Scene{opts: o}
}

// Background returns the background color.
func (s *Scene) Background() RGBA { return s.opts.background }

// SetBackground sets the background color.
func (s *Scene) SetBackground(c RGBA) { s.opts.background = c }

// AddNode creates a node at (x, y) with size (w, h), grown to the label's
// minimum if needed, raised above every existing node.
func (s *Scene) AddNode(label string, x, y, w, h float64) *Node {
	n := newNode(label, x, y, w, h, s.opts.measurer)
	n.scene = s
	n.z = s.topZ()
	s.nodes = append(s.nodes, n)
	s.changed()
	return n
}

// RemoveNode removes n and every connection touching its slots. A gesture
// involving n is cancelled first.
func (s *Scene) RemoveNode(n *Node) error {
	if n == nil || n.scene != s {
		return ErrUnknownNode
	}
	if s.gestureInvolves(n) {
		s.Cancel()
	}
	for _, c := range n.Connections() {
		s.detach(c)
	}
	s.nodes = slices.DeleteFunc(s.nodes, func(o *Node) bool { return o == n })
	n.scene = nil
	n.selected = false
	s.changed()
	return nil
}

// NodeByID returns the node with id, or nil.
func (s *Scene) NodeByID(id uuid.UUID) *Node {
	for _, n := range s.nodes {
		if n.id == id {
			return n
		}
	}
	return nil
}

// Nodes returns the nodes in draw order: ascending z, ties in insertion order.
func (s *Scene) Nodes() []*Node {
	out := slices.Clone(s.nodes)
	slices.SortStableFunc(out, func(a, b *Node) int {
		switch {
		case a.z < b.z:
			return -1
		case a.z > b.z:
			return 1
		}
		return 0
	})
	return out
}

// Connections returns the connections in creation order.
func (s *Scene) Connections() []*Connection {
	return slices.Clone(s.connections)
}

// Connect links a and b. It is the only way connections are created and
// records the new connection on both slots. The pair is rejected, leaving
// the graph unchanged, when either slot is foreign to the scene, when a
// and b are the same slot, or when either slot already holds a connection.
func (s *Scene) Connect(a, b *Slot) (*Connection, error) {
	if err := s.checkConnect(a, b); err != nil {
		s.opts.observer.ConnectRejected(err)
		return nil, err
	}
	c := newConnection(a, b, s.opts.solver)
	a.connect(c)
	b.connect(c)
	s.connections = append(s.connections, c)
	s.changed()
	return c, nil
}

func (s *Scene) checkConnect(a, b *Slot) error {
	for _, sl := range [...]*Slot{a, b} {
		if sl == nil || sl.node.scene != s {
			return ErrForeignSlot
		}
	}
	if a == b {
		return fmt.Errorf("slot %s: %w", a, ErrSelfConnection)
	}
	for _, sl := range [...]*Slot{a, b} {
		if sl.connection != nil {
			return fmt.Errorf("slot %s: %w", sl, ErrSlotOccupied)
		}
	}
	return nil
}

// Disconnect removes c and clears it from both slots.
func (s *Scene) Disconnect(c *Connection) error {
	if !slices.Contains(s.connections, c) {
		return ErrUnknownConnection
	}
	s.detach(c)
	s.changed()
	return nil
}

func (s *Scene) detach(c *Connection) {
	c.a.disconnect(c)
	c.b.disconnect(c)
	s.connections = slices.DeleteFunc(s.connections, func(o *Connection) bool { return o == c })
}

// NodeAt returns the topmost node whose box contains the scene point p.
func (s *Scene) NodeAt(p Point) *Node {
	nodes := s.Nodes()
	for i := len(nodes) - 1; i >= 0; i-- {
		if nodes[i].Contains(p) {
			return nodes[i]
		}
	}
	return nil
}

// SlotAt returns the slot under the scene point p. Slots of a node hidden
// under another node are not reachable.
func (s *Scene) SlotAt(p Point) *Slot {
	nodes := s.Nodes()
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		if sl := n.SlotAt(p); sl != nil {
			return sl
		}
		if n.Contains(p) {
			return nil
		}
	}
	return nil
}

// Selected returns the selected nodes in draw order.
func (s *Scene) Selected() []*Node {
	var out []*Node
	for _, n := range s.Nodes() {
		if n.selected {
			out = append(out, n)
		}
	}
	return out
}

// Select adds n to or removes it from the selection.
func (s *Scene) Select(n *Node, on bool) {
	if n != nil && n.scene == s {
		n.selected = on
	}
}

// ClearSelection deselects every node.
func (s *Scene) ClearSelection() {
	for _, n := range s.nodes {
		n.selected = false
	}
}

// Items returns every drawable in draw order: connections, then nodes by
// ascending z (each node draws its own slots), then the drag preview.
func (s *Scene) Items() []Drawable {
	items := make([]Drawable, 0, len(s.connections)+len(s.nodes)+1)
	for _, c := range s.connections {
		items = append(items, c)
	}
	for _, n := range s.Nodes() {
		items = append(items, n)
	}
	if d, ok := s.DragPath(); ok {
		items = append(items, d)
	}
	return items
}

// ItemsIn returns the items, in draw order, whose bounding box intersects r.
// Connections are culled by their Extent.
func (s *Scene) ItemsIn(r Rect) []Drawable {
	var out []Drawable
	for _, it := range s.Items() {
		box := it.BoundingBox()
		if c, ok := it.(*Connection); ok {
			box = c.Extent()
		}
		if box.Intersects(r) {
			out = append(out, it)
		}
	}
	return out
}

// Render clears dc with the background and draws every item.
func (s *Scene) Render(dc DrawContext) {
	dc.Clear(s.opts.background)
	s.renderItems(dc, s.Items())
}

// RenderRegion clears dc with the background and draws only the items
// intersecting the scene rectangle r.
func (s *Scene) RenderRegion(dc DrawContext, r Rect) {
	dc.Clear(s.opts.background)
	s.renderItems(dc, s.ItemsIn(r))
}

func (s *Scene) renderItems(dc DrawContext, items []Drawable) {
	for _, it := range items {
		it.Render(dc)
	}
	if r, ok := s.Marquee(); ok {
		box := NewPath()
		box.Rectangle(r)
		dc.FillPath(box, RGBA{R: 1, G: 1, B: 1, A: 0.08})
		dc.StrokePath(box, DefaultStroke().WithColor(RGBA{R: 1, G: 1, B: 1, A: 0.5}))
	}
}

// Validate checks the graph invariants: every connection is recorded on
// both of its slots, both slots belong to nodes of this scene, and every
// slot connection is owned by the scene. A failure means a dangling
// reference and is reported wrapping ErrDanglingConnection.
func (s *Scene) Validate() error {
	var errs []error
	for i, c := range s.connections {
		for _, sl := range [...]*Slot{c.a, c.b} {
			if sl.connection != c {
				errs = append(errs, fmt.Errorf("connection %d: slot %s does not record it: %w", i, sl, ErrDanglingConnection))
			}
			if sl.node.scene != s {
				errs = append(errs, fmt.Errorf("connection %d: slot %s is not in the scene: %w", i, sl, ErrDanglingConnection))
			}
		}
	}
	for _, n := range s.nodes {
		for _, sl := range n.slots {
			if sl.connection != nil && !slices.Contains(s.connections, sl.connection) {
				errs = append(errs, fmt.Errorf("slot %s holds a removed connection: %w", sl, ErrDanglingConnection))
			}
		}
		if n.mode == NodeResizing && (s.gesture.mode != GestureResizing || s.gesture.node != n) {
			errs = append(errs, fmt.Errorf("node %s resizing outside a resize gesture", n.label))
		}
	}
	return errors.Join(errs...)
}

func (s *Scene) changed() {
	s.opts.observer.GraphChanged(len(s.nodes), len(s.connections))
}
