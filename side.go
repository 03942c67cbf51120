package nodify

import "fmt"

// Side identifies one edge of a Node, and so one of its four slots.
type Side uint8

const (
	SideLeft Side = iota
	SideTop
	SideRight
	SideBottom
)

// Sides lists every side in slot creation order.
var Sides = [...]Side{SideLeft, SideTop, SideRight, SideBottom}

var sideNames = [...]string{
	SideLeft:   "left",
	SideTop:    "top",
	SideRight:  "right",
	SideBottom: "bottom",
}

// String returns the lowercase side name.
func (s Side) String() string {
	if s.Valid() {
		return sideNames[s]
	}
	return fmt.Sprintf("Side(%d)", uint8(s))
}

// Valid reports whether s is one of the four sides.
func (s Side) Valid() bool {
	return s <= SideBottom
}

// ParseSide parses a side name as produced by String.
func ParseSide(name string) (Side, error) {
	for _, s := range Sides {
		if sideNames[s] == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("nodify: unknown side %q", name)
}

// anchor returns the slot anchor for a w×h node in node-local space.
func (s Side) anchor(w, h float64) Point {
	switch s {
	case SideLeft:
		return Pt(0, h*0.5)
	case SideTop:
		return Pt(w*0.5, 0)
	case SideRight:
		return Pt(w, h*0.5)
	case SideBottom:
		return Pt(w*0.5, h)
	}
	panic(fmt.Sprintf("nodify: invalid side %d", uint8(s)))
}

// wedge returns the three vertices of a w×h slot triangle relative to its
// anchor. The triangle sits on the node edge and points into the node.
func (s Side) wedge(w, h float64) [3]Point {
	hw, hh := w*0.5, h*0.5
	switch s {
	case SideLeft:
		return [3]Point{Pt(0, -hh), Pt(0, hh), Pt(hw, 0)}
	case SideTop:
		return [3]Point{Pt(-hw, 0), Pt(hw, 0), Pt(0, hh)}
	case SideRight:
		return [3]Point{Pt(0, -hh), Pt(0, hh), Pt(-hw, 0)}
	case SideBottom:
		return [3]Point{Pt(-hw, 0), Pt(hw, 0), Pt(0, -hh)}
	}
	panic(fmt.Sprintf("nodify: invalid side %d", uint8(s)))
}
