package nodify

import "fmt"

// GestureMode is the scene-wide interaction state. Exactly one gesture is
// active at a time; every press-move-release cycle starts from and returns
// to GestureIdle.
type GestureMode uint8

const (
	// GestureIdle means no button-held interaction is in progress.
	GestureIdle GestureMode = iota
	// GestureMoving drags the selected nodes.
	GestureMoving
	// GestureResizing drags a node's bottom-right corner.
	GestureResizing
	// GestureConnecting drags a link out of a slot.
	GestureConnecting
	// GestureSelecting drags a marquee over empty canvas.
	GestureSelecting
)

var gestureNames = [...]string{
	GestureIdle:       "idle",
	GestureMoving:     "moving",
	GestureResizing:   "resizing",
	GestureConnecting: "connecting",
	GestureSelecting:  "selecting",
}

func (g GestureMode) String() string {
	if int(g) < len(gestureNames) {
		return gestureNames[g]
	}
	return fmt.Sprintf("GestureMode(%d)", uint8(g))
}

// gesture is the state of the active press-move-release cycle. Fields
// other than mode are only meaningful for the modes noted.
type gesture struct {
	mode GestureMode

	start Point // pointer at press, all modes
	last  Point // pointer at previous event, all modes

	node      *Node // Moving, Resizing
	startRect Rect  // Resizing

	drag *DragPath // Connecting

	marquee  Rect // Selecting
	additive bool // Selecting: keep the existing selection
}
