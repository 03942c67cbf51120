package nodify

import (
	"fmt"
	"strings"
)

// EventKind identifies a pointer event.
type EventKind uint8

const (
	// PointerPress is sent when a button goes down.
	PointerPress EventKind = iota
	// PointerMove is sent when the pointer moves, with or without buttons held.
	PointerMove
	// PointerRelease is sent when a button goes up, wherever the pointer is.
	PointerRelease
	// PointerLeave is sent when the pointer leaves the surface; any active
	// gesture is cancelled.
	PointerLeave
)

var eventKindNames = [...]string{
	PointerPress:   "press",
	PointerMove:    "move",
	PointerRelease: "release",
	PointerLeave:   "leave",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Buttons is a set of pointer buttons.
type Buttons uint8

const (
	ButtonPrimary Buttons = 1 << iota
	ButtonMiddle
	ButtonSecondary
)

// Has reports whether every button in o is in b.
func (b Buttons) Has(o Buttons) bool { return b&o == o && o != 0 }

func (b Buttons) String() string {
	var parts []string
	if b&ButtonPrimary != 0 {
		parts = append(parts, "primary")
	}
	if b&ButtonMiddle != 0 {
		parts = append(parts, "middle")
	}
	if b&ButtonSecondary != 0 {
		parts = append(parts, "secondary")
	}
	return strings.Join(parts, "|")
}

// Modifiers is a set of keyboard modifiers held during a pointer event.
type Modifiers uint8

const (
	// ModAlt is the default pan/zoom modifier.
	ModAlt Modifiers = 1 << iota
	ModShift
	ModCtrl
)

// Has reports whether every modifier in o is in m.
func (m Modifiers) Has(o Modifiers) bool { return m&o == o && o != 0 }

func (m Modifiers) String() string {
	var parts []string
	if m&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if m&ModShift != 0 {
		parts = append(parts, "shift")
	}
	if m&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	return strings.Join(parts, "|")
}

// PointerEvent is one raw input event. Pos is in the coordinate space of
// the receiver: view pixels for View.HandlePointer, scene units for
// Scene.HandlePointer. Buttons is the set held after the event, so a
// release of the last button carries an empty set.
type PointerEvent struct {
	Kind      EventKind
	Pos       Point
	Buttons   Buttons
	Modifiers Modifiers
}

// Press builds a press event.
func Press(pos Point, b Buttons, m Modifiers) PointerEvent {
	return PointerEvent{Kind: PointerPress, Pos: pos, Buttons: b, Modifiers: m}
}

// Move builds a move event.
func Move(pos Point, b Buttons, m Modifiers) PointerEvent {
	return PointerEvent{Kind: PointerMove, Pos: pos, Buttons: b, Modifiers: m}
}

// Release builds a release event.
func Release(pos Point, m Modifiers) PointerEvent {
	return PointerEvent{Kind: PointerRelease, Pos: pos, Modifiers: m}
}

// Leave builds a leave event.
func Leave() PointerEvent {
	return PointerEvent{Kind: PointerLeave}
}
