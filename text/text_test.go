package text

import (
	"errors"
	"testing"

	"github.com/gogpu/nodify"
)

func testMeasurers(t *testing.T) map[string]nodify.LabelMeasurer {
	t.Helper()

	fm, err := Regular().Measurer(13)
	if err != nil {
		t.Fatalf("Measurer(13): %v", err)
	}
	sm, err := NewShapingMeasurer(Regular(), 13)
	if err != nil {
		t.Fatalf("NewShapingMeasurer(13): %v", err)
	}
	return map[string]nodify.LabelMeasurer{
		"face":    fm,
		"shaping": sm,
	}
}

func TestNewFontSourceEmpty(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte("not a font")); err == nil {
		t.Error("NewFontSource(garbage) should fail")
	}
}

func TestInvalidSize(t *testing.T) {
	for _, size := range []float64{0, -3} {
		if _, err := Regular().Face(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Face(%g) error = %v, want ErrInvalidSize", size, err)
		}
		if _, err := NewShapingMeasurer(Regular(), size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewShapingMeasurer(%g) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestMeasureLabel(t *testing.T) {
	for name, m := range testMeasurers(t) {
		t.Run(name, func(t *testing.T) {
			w, h := m.MeasureLabel("Node")
			if w <= 0 || h <= 0 {
				t.Fatalf("MeasureLabel(Node) = %v, %v; want positive", w, h)
			}

			ew, eh := m.MeasureLabel("")
			if ew != 0 {
				t.Errorf("empty label width = %v, want 0", ew)
			}
			if eh != h {
				t.Errorf("empty label height = %v, want line height %v", eh, h)
			}

			prev := 0.0
			for _, label := range []string{"N", "No", "Nod", "Node", "Node 1", "Node 12"} {
				w, _ := m.MeasureLabel(label)
				if w < prev {
					t.Errorf("width(%q) = %v shrank below %v", label, w, prev)
				}
				prev = w
			}
		})
	}
}

func TestMeasureLabelNormalizes(t *testing.T) {
	composed := "caf\u00e9"
	decomposed := "cafe\u0301"
	for name, m := range testMeasurers(t) {
		t.Run(name, func(t *testing.T) {
			w1, _ := m.MeasureLabel(composed)
			w2, _ := m.MeasureLabel(decomposed)
			if w1 != w2 {
				t.Errorf("composed width %v != decomposed width %v", w1, w2)
			}
		})
	}
}

func TestScaleWithSize(t *testing.T) {
	small, err := NewShapingMeasurer(Regular(), 10)
	if err != nil {
		t.Fatal(err)
	}
	large, err := NewShapingMeasurer(Regular(), 20)
	if err != nil {
		t.Fatal(err)
	}
	ws, hs := small.MeasureLabel("Output")
	wl, hl := large.MeasureLabel("Output")
	if wl <= ws || hl <= hs {
		t.Errorf("size 20 (%v, %v) should exceed size 10 (%v, %v)", wl, hl, ws, hs)
	}
}

func TestSceneUsesMeasurer(t *testing.T) {
	sm, err := NewShapingMeasurer(Regular(), 13)
	if err != nil {
		t.Fatal(err)
	}
	s := nodify.NewScene(nodify.WithMeasurer(sm))
	label := "A rather long node label that must fit"
	n := s.AddNode(label, 0, 0, 10, 10)

	lw, _ := sm.MeasureLabel(label)
	w, _ := n.Size()
	if w < lw {
		t.Errorf("node width %v narrower than its label %v", w, lw)
	}
}
