package nodify

import (
	"image/color"
	"math"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in     string
		want   RGBA
		wantOK bool
	}{
		{"#336699", RGB8(0x33, 0x66, 0x99, 0xff), true},
		{"336699", RGB8(0x33, 0x66, 0x99, 0xff), true},
		{"#fff", White, true},
		{"#0008", RGB8(0, 0, 0, 0x88), true},
		{"#11223344", RGB8(0x11, 0x22, 0x33, 0x44), true},
		{"#12345", Black, false},
		{"#ggg", Black, false},
		{"", Black, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Hex(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Hex(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestColorRoundTrip(t *testing.T) {
	for _, c := range []RGBA{DefaultBackground, DefaultNodeColor, White, Black, RGB8(1, 2, 3, 4)} {
		if got := FromColor(c.Color()); got != c && !approxColor(got, c) {
			t.Errorf("FromColor(%v.Color()) = %v", c, got)
		}
	}
	if got := DefaultBackground.Color(); got != (color.NRGBA{R: 45, G: 45, B: 45, A: 255}) {
		t.Errorf("DefaultBackground.Color() = %v", got)
	}
	if got := RGB(2, -1, 0.5).Color(); got != (color.NRGBA{R: 255, G: 0, B: 128, A: 255}) {
		t.Errorf("out-of-range Color() = %v, want clamped", got)
	}
}

func TestLighterDarker(t *testing.T) {
	gray := RGB(0.6, 0.6, 0.6)

	if got := gray.Lighter(100); got != gray {
		t.Errorf("Lighter(100) = %v, want unchanged", got)
	}
	if got := gray.Darker(50); got != gray {
		t.Errorf("Darker(50) = %v, want unchanged", got)
	}
	if got := gray.Darker(300); !approxColor(got, RGB(0.2, 0.2, 0.2)) {
		t.Errorf("Darker(300) = %v, want 0.2 gray", got)
	}
	if got := RGB(0.4, 0.2, 0.2).Lighter(150); !approxColor(got, RGB(0.6, 0.3, 0.3)) {
		t.Errorf("Lighter(150) = %v, want (0.6, 0.3, 0.3)", got)
	}
	if got := White.Lighter(200); got != White {
		t.Errorf("White.Lighter(200) = %v, want white", got)
	}
	// past full intensity the excess desaturates
	got := RGB(0.8, 0.4, 0.4).Lighter(150)
	if got.R != 1 || !(got.G > 0.5) {
		t.Errorf("Lighter past 1 = %v", got)
	}
	if a := (RGBA{R: 0.5, A: 0.3}).Darker(200).A; a != 0.3 {
		t.Errorf("Darker changed alpha to %v", a)
	}
}

func approxColor(a, b RGBA) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}
