package nodify

import "errors"

// Errors reported by the graph and the connect protocol.
var (
	// ErrDegenerateGeometry is returned by CubicPath when a slot has no
	// outward direction, which happens when a node collapses to a point.
	ErrDegenerateGeometry = errors.New("nodify: degenerate slot geometry")

	// ErrSelfConnection is returned when a drag is released on its origin slot.
	ErrSelfConnection = errors.New("nodify: slot cannot connect to itself")

	// ErrSlotOccupied is returned when either slot already holds a connection.
	ErrSlotOccupied = errors.New("nodify: slot already connected")

	// ErrForeignSlot is returned when a slot is nil or its node is not in the scene.
	ErrForeignSlot = errors.New("nodify: slot does not belong to this scene")

	// ErrUnknownNode is returned when removing a node the scene does not own.
	ErrUnknownNode = errors.New("nodify: node not in scene")

	// ErrUnknownConnection is returned when removing a connection the scene does not own.
	ErrUnknownConnection = errors.New("nodify: connection not in scene")

	// ErrDanglingConnection is reported by Scene.Validate when a connection
	// and its slots disagree about each other.
	ErrDanglingConnection = errors.New("nodify: dangling connection reference")
)
