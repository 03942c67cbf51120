package recording

import "github.com/gogpu/nodify"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdPush CommandType = iota // Compose a transform
	CmdPop                     // Restore the previous transform

	// Drawing commands
	CmdClear      // Fill the whole target
	CmdFillPath   // Fill a path
	CmdStrokePath // Stroke a path
	CmdDrawText   // Draw a label
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdPush:       "Push",
	CmdPop:        "Pop",
	CmdClear:      "Clear",
	CmdFillPath:   "FillPath",
	CmdStrokePath: "StrokePath",
	CmdDrawText:   "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a path in the resource pool.
// The zero value is a valid reference to the first path (if any).
type PathRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid path.
func (r PathRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// PushCommand composes Matrix onto the current transform.
type PushCommand struct {
	Matrix nodify.Matrix
}

// Type implements Command.
func (PushCommand) Type() CommandType { return CmdPush }

// PopCommand restores the transform in effect before the matching push.
type PopCommand struct{}

// Type implements Command.
func (PopCommand) Type() CommandType { return CmdPop }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// Drawing commands carry Transform, the full current transform (the
// product of every open push) at the time of the call, so consumers can
// map recorded geometry to device space without replaying the stack.

// ClearCommand fills the whole target with Color.
type ClearCommand struct {
	Color nodify.RGBA
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// FillPathCommand fills a path.
type FillPathCommand struct {
	Path      PathRef
	Color     nodify.RGBA
	Transform nodify.Matrix
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

// StrokePathCommand strokes a path.
type StrokePathCommand struct {
	Path      PathRef
	Stroke    nodify.Stroke
	Transform nodify.Matrix
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// DrawTextCommand draws Text centered in Box.
type DrawTextCommand struct {
	Text      string
	Box       nodify.Rect
	Color     nodify.RGBA
	Transform nodify.Matrix
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
