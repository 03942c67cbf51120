// Package nodify is the interaction and geometry engine of a node-graph
// editor.
//
// # Overview
//
// A Scene holds rectangular Nodes, each carrying four Slots (left, top,
// right, bottom) that act as connection ports. Connections link two Slots
// and draw themselves through a PathSolver, either a straight segment or a
// cubic curve that leaves each node perpendicular to its side. A View is a
// pan/zoom camera presenting the Scene. The package draws nothing by
// itself: items render through the DrawContext interface, implemented by
// the recording and raster subpackages.
//
// # Quick Start
//
//	import "github.com/gogpu/nodify"
//
//	s := nodify.NewScene()
//	a := s.AddNode("Source", 0, 0, 160, 90)
//	b := s.AddNode("Sink", 300, 0, 160, 90)
//	if _, err := s.Connect(a.Right(), b.Left()); err != nil {
//	    return err
//	}
//
//	v := nodify.NewView(s, nodify.WithViewportSize(1280, 720))
//	v.HandlePointer(nodify.Press(nodify.Pt(640, 360), nodify.ButtonPrimary, 0))
//
// # Coordinate Spaces
//
// Scene units are the model space. A node's position is the scene
// coordinate of its top-left corner; Slot.LocalCenter is relative to that
// corner and Slot.SceneCenter is absolute. View pixels are mapped to scene
// units through View.MapToScene. All spaces have the origin at the top-left
// with Y increasing down.
//
// # Gestures
//
// Pointer input drives a single scene-wide gesture: moving, resizing,
// connecting or marquee selection. Exactly one gesture is active at a time
// and every release or leave returns the scene to idle.
//
// # Logging
//
// The package logs through log/slog. By default nothing is emitted; use
// SetLogger to route messages to a handler.
package nodify

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
