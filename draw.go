package nodify

// DrawContext is the rendering collaborator the engine draws through.
// Geometry passed to it is in the coordinate space established by the
// stack of Push calls; implementations decide pixel format, anti-aliasing
// and compositing.
//
// Implementations in this module: recording.Recorder (captures typed
// commands) and raster.Context (rasterizes into an *image.RGBA).
type DrawContext interface {
	// Push composes m onto the current transform, so subsequent geometry
	// is mapped through current * m. Every Push is matched by a Pop.
	Push(m Matrix)
	// Pop restores the transform in effect before the matching Push.
	Pop()

	// Clear fills the whole target with c, ignoring the transform.
	Clear(c RGBA)
	// FillPath fills p with c using the non-zero winding rule.
	FillPath(p *Path, c RGBA)
	// StrokePath strokes the outline of p.
	StrokePath(p *Path, s Stroke)
	// DrawText draws label centered inside box.
	DrawText(label string, box Rect, c RGBA)
}

// Drawable is the capability every scene item exposes to hosts: a bounding
// box in scene space for hit-testing and dirty regions, and a draw callback.
type Drawable interface {
	BoundingBox() Rect
	Render(dc DrawContext)
}

var (
	_ Drawable = (*Node)(nil)
	_ Drawable = (*Slot)(nil)
	_ Drawable = (*Connection)(nil)
	_ Drawable = (*DragPath)(nil)
)
