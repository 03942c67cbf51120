package nodify

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// flatView returns a view over s whose scene and view spaces coincide.
func flatView(s *Scene, opts ...ViewOption) *View {
	return NewView(s, append([]ViewOption{
		WithSceneRect(R(0, 0, 800, 600)),
		WithViewportSize(800, 600),
	}, opts...)...)
}

func TestNewViewCentersSceneRect(t *testing.T) {
	v := NewView(NewScene())
	if got := v.MapFromScene(Pt(16000, 16000)); got != Pt(400, 300) {
		t.Errorf("scene center maps to %v, want (400,300)", got)
	}
	if got := v.VisibleSceneRect(); got != R(15600, 15700, 800, 600) {
		t.Errorf("VisibleSceneRect = %v", got)
	}
	if v.Scale() != 1 || v.SceneRect() != R(0, 0, DefaultSceneSize, DefaultSceneSize) {
		t.Errorf("scale %v, scene rect %v", v.Scale(), v.SceneRect())
	}
	if flatView(NewScene()).Transform() != Identity() {
		t.Error("flat view is not the identity")
	}
}

func TestPanTracksPointer(t *testing.T) {
	v := NewView(NewScene())
	v.Zoom(2)
	p := v.MapToScene(Pt(100, 100))

	v.Pan(30, -20)
	if got := v.MapFromScene(p); !got.ApproxEqual(Pt(130, 80), 1e-9) {
		t.Errorf("panned point at %v, want (130,80)", got)
	}
	if v.Scale() != 2 {
		t.Errorf("pan changed scale to %v", v.Scale())
	}

	before := v.Transform()
	v.Pan(math.NaN(), 1)
	if v.Transform() != before {
		t.Error("NaN pan moved the camera")
	}
}

func TestZoomLimits(t *testing.T) {
	tests := []struct {
		name    string
		factors []float64
		ok      []bool
		scale   float64
	}{
		{"within range", []float64{2, 2}, []bool{true, true}, 4},
		{"to max", []float64{8}, []bool{true}, 8},
		{"past max", []float64{10}, []bool{false}, 1},
		{"to min", []float64{0.2}, []bool{true}, 0.2},
		{"past min", []float64{0.2, 0.99}, []bool{true, false}, 0.2},
		{"zero", []float64{0}, []bool{false}, 1},
		{"negative", []float64{-2}, []bool{false}, 1},
		{"nan", []float64{math.NaN()}, []bool{false}, 1},
		{"inf", []float64{math.Inf(1)}, []bool{false}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView(NewScene())
			for i, f := range tt.factors {
				if got := v.Zoom(f); got != tt.ok[i] {
					t.Errorf("Zoom(%v) = %v, want %v", f, got, tt.ok[i])
				}
			}
			if math.Abs(v.Scale()-tt.scale) > 1e-12 {
				t.Errorf("scale = %v, want %v", v.Scale(), tt.scale)
			}
			if math.Abs(v.Transform().ScaleFactor()-tt.scale) > 1e-12 {
				t.Errorf("matrix scale = %v, want %v", v.Transform().ScaleFactor(), tt.scale)
			}
		})
	}
}

func TestCustomZoomLimits(t *testing.T) {
	v := NewView(NewScene(), WithZoomLimits(0.5, 2))
	if v.Zoom(3) || !v.Zoom(2) || v.Zoom(1.01) {
		t.Error("custom limits not applied")
	}
	// an inverted range is ignored
	v = NewView(NewScene(), WithZoomLimits(2, 1))
	if !v.Zoom(DefaultMaxScale) {
		t.Error("invalid range replaced the defaults")
	}
}

func TestZoomAtKeepsAnchor(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("anchor scene point stays under the anchor", prop.ForAll(
		func(ax, ay, f, px, py float64) bool {
			v := NewView(NewScene())
			v.Pan(px, py)
			anchor := Pt(ax, ay)
			before := v.MapToScene(anchor)
			if !v.ZoomAt(f, anchor) {
				return false
			}
			return v.MapToScene(anchor).ApproxEqual(before, 1e-6) &&
				math.Abs(v.Scale()-f) < 1e-12
		},
		gen.Float64Range(0, 800),
		gen.Float64Range(0, 600),
		gen.Float64Range(0.5, 2),
		gen.Float64Range(-500, 500),
		gen.Float64Range(-500, 500),
	))

	properties.TestingRun(t)
}

func TestRepeatedZoomStaysInRange(t *testing.T) {
	zoomUntilRejected := func(v *View, f float64) bool {
		for range 1000 {
			before := v.Scale()
			if !v.Zoom(f) {
				next := before * f
				return v.Scale() == before && (next > DefaultMaxScale || next < DefaultMinScale)
			}
			if v.Scale() < DefaultMinScale || v.Scale() > DefaultMaxScale {
				return false
			}
		}
		return false
	}

	for _, f := range []float64{1.1, 1 / 1.1} {
		if !zoomUntilRejected(NewView(NewScene()), f) {
			t.Errorf("repeated Zoom(%v) left the scale range", f)
		}
	}

	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)
	properties.Property("repeated zoom is clamped to the scale range", prop.ForAll(
		func(f float64, in bool) bool {
			if !in {
				f = 1 / f
			}
			return zoomUntilRejected(NewView(NewScene()), f)
		},
		gen.Float64Range(1.01, 3),
		gen.Bool(),
	))
	properties.TestingRun(t)
}

func TestZoomAccumulates(t *testing.T) {
	v := NewView(NewScene())
	anchor := Pt(200, 150)
	p := v.MapToScene(anchor)
	for range 5 {
		v.ZoomAt(1.2, anchor)
	}
	if want := math.Pow(1.2, 5); math.Abs(v.Scale()-want) > 1e-9 {
		t.Errorf("scale = %v, want %v", v.Scale(), want)
	}
	if !v.MapToScene(anchor).ApproxEqual(p, 1e-6) {
		t.Error("anchor drifted over repeated zooms")
	}
}

func TestZoomFactor(t *testing.T) {
	tests := []struct {
		d    Point
		want float64
	}{
		{Pt(10, 0), 1.2},
		{Pt(0, 10), 1.2},
		{Pt(-10, 0), 0.8},
		{Pt(0, -10), 0.8},
		{Pt(3, 4), 1.1},
		{Pt(5, -1), 1 - 0.02*math.Hypot(5, 1)},
		{Pt(0, 0), 1.02},
		{Pt(0.1, 0), 1.02},
	}
	for _, tt := range tests {
		if got := zoomFactor(tt.d); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("zoomFactor(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestCenterOnAndResize(t *testing.T) {
	v := NewView(NewScene())
	v.Zoom(2)
	v.CenterOn(Pt(100, 50))
	if got := v.MapFromScene(Pt(100, 50)); !got.ApproxEqual(Pt(400, 300), 1e-9) {
		t.Errorf("CenterOn: point at %v", got)
	}

	v.SetViewportSize(1000, 200)
	if got := v.MapToScene(Pt(500, 100)); !got.ApproxEqual(Pt(100, 50), 1e-9) {
		t.Errorf("resize moved the center to %v", got)
	}
	if v.Viewport() != R(0, 0, 1000, 200) {
		t.Errorf("viewport = %v", v.Viewport())
	}
	if got := v.VisibleSceneRect(); !got.Min().ApproxEqual(Pt(-150, 0), 1e-9) || math.Abs(got.W-500) > 1e-9 {
		t.Errorf("VisibleSceneRect = %v", got)
	}

	before := v.Viewport()
	v.SetViewportSize(0, 100)
	if v.Viewport() != before {
		t.Error("zero viewport accepted")
	}
}

func TestViewCameraDrag(t *testing.T) {
	s, _, _ := newPair()
	v := flatView(s)
	p := v.MapToScene(Pt(100, 100))

	if !v.HandlePointer(Press(Pt(100, 100), ButtonPrimary, ModAlt)) || !v.Panning() {
		t.Fatal("alt press did not start a camera drag")
	}
	v.HandlePointer(Move(Pt(130, 110), ButtonPrimary, ModAlt))
	if got := v.MapFromScene(p); !got.ApproxEqual(Pt(130, 110), 1e-9) {
		t.Errorf("pan: point at %v, want (130,110)", got)
	}
	if s.Gesture() != GestureIdle {
		t.Errorf("camera drag reached the scene: %v", s.Gesture())
	}

	if !v.HandlePointer(Release(Pt(130, 110), ModAlt)) || v.Panning() {
		t.Error("release did not end the camera drag")
	}
	// without the modifier moves go to the scene again
	if v.HandlePointer(Move(Pt(200, 200), ButtonPrimary, 0)) {
		t.Error("idle move consumed")
	}
}

func TestViewCameraZoom(t *testing.T) {
	for _, b := range []Buttons{ButtonMiddle, ButtonSecondary} {
		t.Run(b.String(), func(t *testing.T) {
			v := flatView(NewScene())
			anchor := Pt(200, 150)
			p := v.MapToScene(anchor)

			v.HandlePointer(Press(anchor, b, ModAlt))
			v.HandlePointer(Move(Pt(210, 150), b, ModAlt))
			if math.Abs(v.Scale()-1.2) > 1e-12 {
				t.Errorf("scale = %v, want 1.2", v.Scale())
			}
			v.HandlePointer(Move(Pt(200, 150), b, ModAlt))
			if math.Abs(v.Scale()-1.2*0.8) > 1e-12 {
				t.Errorf("scale = %v, want 0.96", v.Scale())
			}
			if !v.MapToScene(anchor).ApproxEqual(p, 1e-9) {
				t.Error("zoom anchor drifted")
			}
		})
	}
}

func TestViewCameraButtonsMatchExactly(t *testing.T) {
	v := flatView(NewScene())
	before := v.Transform()
	v.HandlePointer(Press(Pt(100, 100), ButtonPrimary|ButtonSecondary, ModAlt))
	v.HandlePointer(Move(Pt(150, 150), ButtonPrimary|ButtonSecondary, ModAlt))
	if v.Transform() != before {
		t.Error("chorded buttons moved the camera")
	}
	if !v.HandlePointer(Leave()) || v.Panning() {
		t.Error("leave did not end the camera drag")
	}
}

func TestViewCustomModifier(t *testing.T) {
	s, _, _ := newPair()
	v := flatView(s, WithPanZoomModifier(ModShift))
	v.HandlePointer(Press(Pt(500, 500), ButtonPrimary, ModAlt))
	if v.Panning() || s.Gesture() != GestureSelecting {
		t.Errorf("alt press with a shift modifier: panning %v, gesture %v", v.Panning(), s.Gesture())
	}
	v.HandlePointer(Release(Pt(500, 500), 0))

	v.HandlePointer(Press(Pt(500, 500), ButtonPrimary, ModShift))
	if !v.Panning() {
		t.Error("shift press did not start a camera drag")
	}
}

func TestViewForwardsInSceneUnits(t *testing.T) {
	s, a, b := newPair()
	v := NewView(s, WithViewportSize(800, 600))
	v.CenterOn(Pt(230, 45))
	v.ZoomAt(2, Pt(400, 300))

	from := v.MapFromScene(Pt(157, 45))
	to := v.MapFromScene(Pt(303, 45))
	v.HandlePointer(Press(from, ButtonPrimary, 0))
	if s.Gesture() != GestureConnecting {
		t.Fatalf("gesture = %v, want connecting", s.Gesture())
	}
	v.HandlePointer(Move(to, ButtonPrimary, 0))
	v.HandlePointer(Release(to, 0))

	conns := s.Connections()
	if len(conns) != 1 || conns[0].A() != a.Right() || conns[0].B() != b.Left() {
		t.Fatalf("connections = %v", conns)
	}
}

func TestViewReleaseAlwaysReachesScene(t *testing.T) {
	s, _, _ := newPair()
	v := flatView(s)

	v.HandlePointer(Press(Pt(80, 30), ButtonPrimary, 0))
	if s.Gesture() != GestureMoving {
		t.Fatalf("gesture = %v", s.Gesture())
	}
	// modifier pressed mid-drag; the release must still end the scene gesture
	v.HandlePointer(Release(Pt(80, 30), ModAlt))
	if s.Gesture() != GestureIdle {
		t.Errorf("gesture = %v after release", s.Gesture())
	}
}

func TestViewOneDragAtATime(t *testing.T) {
	t.Run("modifier press during scene drag", func(t *testing.T) {
		s, _, _ := newPair()
		v := flatView(s)

		v.HandlePointer(Press(Pt(157, 45), ButtonPrimary, 0))
		if s.Gesture() != GestureConnecting {
			t.Fatalf("gesture = %v, want connecting", s.Gesture())
		}
		v.HandlePointer(Press(Pt(157, 45), ButtonPrimary|ButtonMiddle, ModAlt))
		if v.Panning() {
			t.Fatal("camera drag started over a scene gesture")
		}
		before := v.Transform()
		v.HandlePointer(Move(Pt(250, 60), ButtonPrimary|ButtonMiddle, ModAlt))
		if v.Transform() != before {
			t.Error("camera moved during a scene gesture")
		}
		d, ok := s.DragPath()
		if !ok || d.End != Pt(250, 60) {
			t.Errorf("drag path = %v, %v; want end (250,60)", d, ok)
		}
	})

	t.Run("plain press during camera drag", func(t *testing.T) {
		s, _, _ := newPair()
		v := flatView(s)

		v.HandlePointer(Press(Pt(500, 500), ButtonPrimary, ModAlt))
		if !v.Panning() {
			t.Fatal("alt press did not start a camera drag")
		}
		if !v.HandlePointer(Press(Pt(80, 30), ButtonPrimary, 0)) {
			t.Error("press during a camera drag not consumed")
		}
		if s.Gesture() != GestureIdle {
			t.Errorf("scene gesture %v started during a camera drag", s.Gesture())
		}
		v.HandlePointer(Release(Pt(80, 30), 0))
		if v.Panning() || s.Gesture() != GestureIdle {
			t.Errorf("after release: panning %v, gesture %v", v.Panning(), s.Gesture())
		}
	})
}

func TestViewObserver(t *testing.T) {
	obs := &spyObserver{}
	v := NewView(NewScene(), WithViewObserver(obs))
	v.Zoom(2)
	v.Zoom(100)
	if len(obs.scales) != 1 || obs.scales[0] != 2 {
		t.Errorf("scales = %v", obs.scales)
	}
	if len(obs.zoomRejected) != 1 || obs.zoomRejected[0] != 100 {
		t.Errorf("rejected = %v", obs.zoomRejected)
	}
}

// countingContext counts draw calls and tracks the push depth.
type countingContext struct {
	pushes, pops, clears, fills, strokes, texts int
	depth, maxDepth                              int
}

func (c *countingContext) Push(Matrix) {
	c.pushes++
	c.depth++
	c.maxDepth = max(c.maxDepth, c.depth)
}
func (c *countingContext) Pop()                          { c.pops++; c.depth-- }
func (c *countingContext) Clear(RGBA)                    { c.clears++ }
func (c *countingContext) FillPath(*Path, RGBA)          { c.fills++ }
func (c *countingContext) StrokePath(*Path, Stroke)      { c.strokes++ }
func (c *countingContext) DrawText(string, Rect, RGBA) { c.texts++ }

func TestViewRenderCullsOffscreen(t *testing.T) {
	s, a, b := newPair()
	if _, err := s.Connect(a.Right(), b.Left()); err != nil {
		t.Fatal(err)
	}
	s.AddNode("far", 5000, 5000, 100, 60)

	v := flatView(s)
	dc := &countingContext{}
	v.Render(dc)

	if dc.pushes != dc.pops || dc.depth != 0 {
		t.Errorf("unbalanced: %d pushes, %d pops", dc.pushes, dc.pops)
	}
	if dc.clears != 1 || dc.strokes != 1 || dc.texts != 2 {
		t.Errorf("clears %d, strokes %d, texts %d; want 1, 1, 2", dc.clears, dc.strokes, dc.texts)
	}
	// body, handle and four slots per visible node
	if dc.fills != 12 {
		t.Errorf("fills = %d, want 12", dc.fills)
	}
	if dc.maxDepth != 2 {
		t.Errorf("max push depth = %d, want 2", dc.maxDepth)
	}
}
