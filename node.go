package nodify

import (
	"math"

	"github.com/google/uuid"
)

// Node sizing constants.
const (
	// LabelPadding is the space kept between the label and every node edge.
	LabelPadding = 8
	// MinNodeWidth and MinNodeHeight floor the label-derived minimums.
	// Above 42 units on both axes the default slot wedges stay clear of
	// the resize handle.
	MinNodeWidth  = 48
	MinNodeHeight = 44
	// ResizeHandleSize is the leg length of the bottom-right resize wedge.
	ResizeHandleSize = 14
)

// NodeMode is the interaction mode of a single node.
type NodeMode uint8

const (
	NodeNormal NodeMode = iota
	NodeResizing
)

func (m NodeMode) String() string {
	if m == NodeResizing {
		return "resizing"
	}
	return "normal"
}

// Node is a movable, resizable labeled box owning exactly four slots.
//
// A node's position is its top-left corner in scene space. Its size never
// drops below MinSize; every size change is clamped, never rejected.
type Node struct {
	id    uuid.UUID
	scene *Scene

	label      string
	labelColor RGBA
	color      RGBA
	measurer   LabelMeasurer

	x, y       float64
	w, h       float64
	minW, minH float64

	z        float64
	mode     NodeMode
	selected bool

	slots [len(Sides)]*Slot
}

// newNode builds a node and its slots. The measurer must not be nil.
func newNode(label string, x, y, w, h float64, m LabelMeasurer) *Node {
	n := &Node{
		id:         uuid.New(),
		label:      label,
		labelColor: DefaultLabelColor,
		color:      DefaultNodeColor,
		measurer:   m,
		x:          x,
		y:          y,
	}
	n.updateMinimums()
	n.w, n.h = n.clampSize(w, h)
	for i, side := range Sides {
		n.slots[i] = newSlot(n, side)
	}
	return n
}

// ID returns the node's unique identity.
func (n *Node) ID() uuid.UUID { return n.id }

// Scene returns the owning scene, or nil once the node has been removed.
func (n *Node) Scene() *Scene { return n.scene }

// Label returns the label text.
func (n *Node) Label() string { return n.label }

// SetLabel replaces the label, recomputes the minimum size and grows the
// node if the new label no longer fits.
func (n *Node) SetLabel(label string) {
	n.label = label
	n.updateMinimums()
	n.Resize(n.w, n.h)
}

// LabelColor returns the label color.
func (n *Node) LabelColor() RGBA { return n.labelColor }

// SetLabelColor sets the label color.
func (n *Node) SetLabelColor(c RGBA) { n.labelColor = c }

// Color returns the body fill color.
func (n *Node) Color() RGBA { return n.color }

// SetColor sets the body fill color.
func (n *Node) SetColor(c RGBA) { n.color = c }

// Pos returns the top-left corner in scene space.
func (n *Node) Pos() Point { return Pt(n.x, n.y) }

// SetPos moves the node so its top-left corner is at p.
func (n *Node) SetPos(p Point) {
	n.x, n.y = p.X, p.Y
}

// MoveBy translates the node by d.
func (n *Node) MoveBy(d Point) {
	n.x += d.X
	n.y += d.Y
}

// Size returns the current width and height.
func (n *Node) Size() (w, h float64) { return n.w, n.h }

// MinSize returns the label-derived minimum width and height.
func (n *Node) MinSize() (w, h float64) { return n.minW, n.minH }

// Rect returns the node rectangle in scene space.
func (n *Node) Rect() Rect { return R(n.x, n.y, n.w, n.h) }

// LocalRect returns the node rectangle in its own space, (0, 0, w, h).
func (n *Node) LocalRect() Rect { return R(0, 0, n.w, n.h) }

// Resize sets the size, clamped to MinSize, and repositions every slot
// before returning.
func (n *Node) Resize(w, h float64) {
	n.w, n.h = n.clampSize(w, h)
	for _, s := range n.slots {
		s.Reposition()
	}
}

// SetRect moves and resizes the node in one step.
func (n *Node) SetRect(r Rect) {
	n.SetPos(r.Min())
	n.Resize(r.W, r.H)
}

// Z returns the stacking value; higher values draw on top.
func (n *Node) Z() float64 { return n.z }

// Mode returns the node interaction mode.
func (n *Node) Mode() NodeMode { return n.mode }

// Selected reports whether the node is part of the selection.
func (n *Node) Selected() bool { return n.selected }

// Slot returns the slot on side. It panics on an invalid side.
func (n *Node) Slot(side Side) *Slot {
	if !side.Valid() {
		panic("nodify: invalid side")
	}
	return n.slots[side]
}

// Left returns the left slot.
func (n *Node) Left() *Slot { return n.slots[SideLeft] }

// Top returns the top slot.
func (n *Node) Top() *Slot { return n.slots[SideTop] }

// Right returns the right slot.
func (n *Node) Right() *Slot { return n.slots[SideRight] }

// Bottom returns the bottom slot.
func (n *Node) Bottom() *Slot { return n.slots[SideBottom] }

// Slots returns the four slots in Sides order.
func (n *Node) Slots() [len(Sides)]*Slot { return n.slots }

// Connections returns the connections touching any of the node's slots.
func (n *Node) Connections() []*Connection {
	var out []*Connection
	for _, s := range n.slots {
		if c := s.connection; c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Contains reports whether the scene point p lies inside the node box.
func (n *Node) Contains(p Point) bool {
	return n.Rect().Contains(p)
}

// SlotAt returns the slot whose wedge contains the scene point p, or nil.
func (n *Node) SlotAt(p Point) *Slot {
	for _, s := range n.slots {
		if s.Contains(p) {
			return s
		}
	}
	return nil
}

// resizeHandle returns the resize wedge in node-local space.
func (n *Node) resizeHandle() [3]Point {
	return [3]Point{
		Pt(n.w-ResizeHandleSize, n.h),
		Pt(n.w, n.h-ResizeHandleSize),
		Pt(n.w, n.h),
	}
}

// InResizeHandle reports whether the scene point p lies in the
// bottom-right resize wedge.
func (n *Node) InResizeHandle(p Point) bool {
	tri := n.resizeHandle()
	return polygonContains(tri[:], p.Sub(n.Pos()))
}

// BoundingBox implements Drawable. Slot wedges sit inside the node box.
func (n *Node) BoundingBox() Rect { return n.Rect() }

// Render implements Drawable: the body, the label, the resize handle and
// then the four slots.
func (n *Node) Render(dc DrawContext) {
	fill := n.color
	if n.selected {
		fill = fill.Lighter(120)
	}

	dc.Push(Translate(n.x, n.y))
	body := NewPath()
	body.Rectangle(n.LocalRect())
	dc.FillPath(body, fill)
	dc.DrawText(n.label, n.LocalRect(), n.labelColor)

	tri := n.resizeHandle()
	handle := NewPath()
	handle.Polygon(tri[:]...)
	dc.FillPath(handle, n.color.Darker(120))
	dc.Pop()

	for _, s := range n.slots {
		s.Render(dc)
	}
}

func (n *Node) updateMinimums() {
	tw, th := n.measurer.MeasureLabel(n.label)
	n.minW = math.Max(math.Ceil(tw)+2*LabelPadding, MinNodeWidth)
	n.minH = math.Max(math.Ceil(th)+2*LabelPadding, MinNodeHeight)
}

// clampSize bounds a requested size to the minimums. Non-finite requests
// fall back to the minimum as well.
func (n *Node) clampSize(w, h float64) (float64, float64) {
	if !(w >= n.minW) || math.IsInf(w, 1) {
		w = n.minW
	}
	if !(h >= n.minH) || math.IsInf(h, 1) {
		h = n.minH
	}
	return w, h
}
