package recording

import "github.com/gogpu/nodify"

// Recorder captures nodify.DrawContext calls as commands.
//
// Example:
//
//	rec := recording.NewRecorder()
//	scene.Render(rec)
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands  []Command
	resources *ResourcePool

	transform nodify.Matrix
	stack     []nodify.Matrix

	// unbalanced counts Pop calls without a matching Push.
	unbalanced int
}

var _ nodify.DrawContext = (*Recorder)(nil)

// NewRecorder creates a Recorder with the identity transform.
func NewRecorder() *Recorder {
	return &Recorder{
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
		transform: nodify.Identity(),
		stack:     make([]nodify.Matrix, 0, 8),
	}
}

// Push implements nodify.DrawContext.
func (r *Recorder) Push(m nodify.Matrix) {
	r.stack = append(r.stack, r.transform)
	r.transform = r.transform.Multiply(m)
	r.commands = append(r.commands, PushCommand{Matrix: m})
}

// Pop implements nodify.DrawContext. A Pop without a matching Push is
// recorded as unbalanced and otherwise ignored.
func (r *Recorder) Pop() {
	if len(r.stack) == 0 {
		r.unbalanced++
		return
	}
	r.transform = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.commands = append(r.commands, PopCommand{})
}

// Clear implements nodify.DrawContext.
func (r *Recorder) Clear(c nodify.RGBA) {
	r.commands = append(r.commands, ClearCommand{Color: c})
}

// FillPath implements nodify.DrawContext.
func (r *Recorder) FillPath(p *nodify.Path, c nodify.RGBA) {
	r.commands = append(r.commands, FillPathCommand{
		Path:      r.resources.AddPath(p),
		Color:     c,
		Transform: r.transform,
	})
}

// StrokePath implements nodify.DrawContext.
func (r *Recorder) StrokePath(p *nodify.Path, s nodify.Stroke) {
	r.commands = append(r.commands, StrokePathCommand{
		Path:      r.resources.AddPath(p),
		Stroke:    s,
		Transform: r.transform,
	})
}

// DrawText implements nodify.DrawContext.
func (r *Recorder) DrawText(label string, box nodify.Rect, c nodify.RGBA) {
	r.commands = append(r.commands, DrawTextCommand{
		Text:      label,
		Box:       box,
		Color:     c,
		Transform: r.transform,
	})
}

// Transform returns the current transform.
func (r *Recorder) Transform() nodify.Matrix {
	return r.transform
}

// Depth returns the number of open pushes.
func (r *Recorder) Depth() int {
	return len(r.stack)
}

// Reset discards every recorded command and resets the transform.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.resources.Clear()
	r.transform = nodify.Identity()
	r.stack = r.stack[:0]
	r.unbalanced = 0
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. After calling FinishRecording, the Recorder should not be used
// again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		commands:   r.commands,
		resources:  r.resources,
		open:       len(r.stack),
		unbalanced: r.unbalanced,
	}
}

// Recording is an immutable container for recorded drawing commands.
type Recording struct {
	commands   []Command
	resources  *ResourcePool
	open       int
	unbalanced int
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Balanced reports whether every Push was matched by exactly one Pop.
func (r *Recording) Balanced() bool {
	return r.open == 0 && r.unbalanced == 0
}

// Count returns the number of commands of type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Texts returns the drawn labels in draw order.
func (r *Recording) Texts() []string {
	var out []string
	for _, c := range r.commands {
		if t, ok := c.(DrawTextCommand); ok {
			out = append(out, t.Text)
		}
	}
	return out
}

// Bounds returns the device-space bounds of everything filled, stroked or
// labelled, and false when nothing was drawn. Strokes are grown by half
// their width.
func (r *Recording) Bounds() (nodify.Rect, bool) {
	var (
		out  nodify.Rect
		seen bool
	)
	add := func(b nodify.Rect) {
		if !seen {
			out, seen = b, true
			return
		}
		out = out.Union(b)
	}
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case FillPathCommand:
			if p := r.resources.GetPath(c.Path); p != nil && !p.IsEmpty() {
				add(c.Transform.TransformRect(p.Bounds()))
			}
		case StrokePathCommand:
			if p := r.resources.GetPath(c.Path); p != nil && !p.IsEmpty() {
				grow := c.Stroke.Width * 0.5 * c.Transform.ScaleFactor()
				add(c.Transform.TransformRect(p.Bounds()).Grow(grow))
			}
		case DrawTextCommand:
			add(c.Transform.TransformRect(c.Box))
		}
	}
	return out, seen
}

// Playback replays the recording into dc.
func (r *Recording) Playback(dc nodify.DrawContext) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case PushCommand:
			dc.Push(c.Matrix)
		case PopCommand:
			dc.Pop()
		case ClearCommand:
			dc.Clear(c.Color)
		case FillPathCommand:
			if p := r.resources.GetPath(c.Path); p != nil {
				dc.FillPath(p, c.Color)
			}
		case StrokePathCommand:
			if p := r.resources.GetPath(c.Path); p != nil {
				dc.StrokePath(p, c.Stroke)
			}
		case DrawTextCommand:
			dc.DrawText(c.Text, c.Box, c.Color)
		}
	}
}
