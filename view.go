package nodify

import (
	"math"
	"slices"
)

// zoomSensitivity converts drag distance in view pixels into a zoom step.
const zoomSensitivity = 0.02

// View is a pan/zoom camera presenting a Scene. Its transform maps scene
// units to view pixels and is only ever changed by composing relative
// translations and scales onto the current matrix, so repeated gestures
// accumulate rather than snap back to a baseline.
//
// A View is driven from the same event loop as its Scene and is not safe
// for concurrent use.
type View struct {
	scene *Scene
	opts  viewOptions

	m        Matrix
	relScale float64
	viewport Rect

	// camera drag state, set by a press with the pan/zoom modifier held
	camActive bool
	camLast   Point
	camAnchor Point
}

// NewView creates a camera over s, centered on the middle of the scene rect.
func NewView(s *Scene, opts ...ViewOption) *View {
	o := defaultViewOptions()
	for _, opt := range opts {
		opt(&o)
	}
	v := &View{
		scene:    s,
		opts:     o,
		m:        Identity(),
		relScale: 1,
		viewport: o.viewport,
	}
	v.CenterOn(o.sceneRect.Center())
	return v
}

// Scene returns the presented scene.
func (v *View) Scene() *Scene { return v.scene }

// Scale returns the cumulative relative scale, starting at 1.
func (v *View) Scale() float64 { return v.relScale }

// Transform returns the current scene-to-view matrix.
func (v *View) Transform() Matrix { return v.m }

// SceneRect returns the fixed scene bounds.
func (v *View) SceneRect() Rect { return v.opts.sceneRect }

// Viewport returns the viewport rectangle in view pixels.
func (v *View) Viewport() Rect { return v.viewport }

// SetViewportSize resizes the viewport keeping the scene point at its
// center fixed. Non-positive sizes are ignored.
func (v *View) SetViewportSize(w, h float64) {
	if !(w > 0 && h > 0) {
		return
	}
	c := v.MapToScene(v.viewport.Center())
	v.viewport = R(0, 0, w, h)
	v.CenterOn(c)
}

// MapToScene converts a view pixel position to scene units.
func (v *View) MapToScene(p Point) Point {
	inv, ok := v.m.Invert()
	if !ok {
		return p
	}
	return inv.TransformPoint(p)
}

// MapFromScene converts a scene position to view pixels.
func (v *View) MapFromScene(p Point) Point {
	return v.m.TransformPoint(p)
}

// VisibleSceneRect returns the part of the scene covered by the viewport.
func (v *View) VisibleSceneRect() Rect {
	inv, ok := v.m.Invert()
	if !ok {
		return v.opts.sceneRect
	}
	return inv.TransformRect(v.viewport)
}

// CenterOn scrolls so the scene point p sits at the viewport center. The
// scale is unchanged.
func (v *View) CenterOn(p Point) {
	c := v.viewport.Center()
	at := v.m.TransformPoint(p)
	v.m = Translate(c.X-at.X, c.Y-at.Y).Multiply(v.m)
}

// Pan moves the camera by (dx, dy) view pixels. The delta is divided by
// the current scale so the content tracks the pointer at any zoom level.
func (v *View) Pan(dx, dy float64) {
	s := v.m.ScaleFactor()
	if s == 0 || !isFinite(dx) || !isFinite(dy) {
		return
	}
	v.translateScene(dx/s, dy/s)
}

func (v *View) translateScene(dx, dy float64) {
	v.m = v.m.Multiply(Translate(dx, dy))
}

// Zoom composes a uniform scale of factor onto the camera. It returns
// false and changes nothing when factor is not positive or when the
// cumulative scale would leave the configured range.
func (v *View) Zoom(factor float64) bool {
	next := v.relScale * factor
	if !(factor > 0) || !isFinite(factor) || next < v.opts.minScale || next > v.opts.maxScale {
		Logger().Debug("nodify: zoom rejected", "factor", factor, "scale", v.relScale)
		v.opts.observer.ZoomRejected(factor)
		return false
	}
	v.relScale = next
	v.m = v.m.Multiply(Scale(factor, factor))
	v.opts.observer.ScaleChanged(v.relScale)
	return true
}

// ZoomAt zooms by factor keeping the scene point under the view position
// anchor fixed on screen.
func (v *View) ZoomAt(factor float64, anchor Point) bool {
	before := v.MapToScene(anchor)
	if !v.Zoom(factor) {
		return false
	}
	after := v.MapToScene(anchor)
	v.translateScene(after.X-before.X, after.Y-before.Y)
	return true
}

// zoomFactor maps one drag step to a zoom factor. Dragging left or up
// zooms out.
func zoomFactor(d Point) float64 {
	step := zoomSensitivity * math.Max(math.Hypot(d.X, d.Y), 1)
	if d.X < 0 || d.Y < 0 {
		step = -step
	}
	return 1 + step
}

// HandlePointer processes one event in view pixels and reports whether it
// was consumed. A press with the pan/zoom modifier held starts a camera
// drag when the Scene is idle: moves pan when the held buttons equal a pan
// set, and zoom around the press position when they equal a zoom set.
// Presses during a camera drag are swallowed. All other events are
// mapped to scene units and handed to the Scene. Releases always reach
// the Scene so no scene gesture can outlive the button.
func (v *View) HandlePointer(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerPress:
		if v.camActive {
			return true
		}
		if ev.Modifiers.Has(v.opts.modifier) && v.scene.Gesture() == GestureIdle {
			v.camActive = true
			v.camLast = ev.Pos
			v.camAnchor = ev.Pos
			return true
		}
	case PointerMove:
		if v.camActive {
			v.cameraMove(ev)
			return true
		}
	case PointerRelease:
		wasCam := v.camActive
		v.camActive = false
		return v.forward(ev) || wasCam
	case PointerLeave:
		wasCam := v.camActive
		v.camActive = false
		return v.scene.HandlePointer(ev) || wasCam
	}
	return v.forward(ev)
}

// Panning reports whether a camera drag is in progress.
func (v *View) Panning() bool { return v.camActive }

func (v *View) cameraMove(ev PointerEvent) {
	d := ev.Pos.Sub(v.camLast)
	v.camLast = ev.Pos
	switch {
	case slices.Contains(v.opts.panButtons, ev.Buttons):
		v.Pan(d.X, d.Y)
	case slices.Contains(v.opts.zoomButtons, ev.Buttons):
		v.ZoomAt(zoomFactor(d), v.camAnchor)
	}
}

func (v *View) forward(ev PointerEvent) bool {
	ev.Pos = v.MapToScene(ev.Pos)
	return v.scene.HandlePointer(ev)
}

// Render draws the visible part of the scene through the camera transform.
func (v *View) Render(dc DrawContext) {
	dc.Push(v.m)
	v.scene.RenderRegion(dc, v.VisibleSceneRect())
	dc.Pop()
}
