package nodify

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// LabelMeasurer reports the extent of a label when drawn. Node minimum
// sizes are derived from it, so implementations must return non-negative
// widths that never shrink when runes are appended.
type LabelMeasurer interface {
	MeasureLabel(label string) (w, h float64)
}

// LabelMeasurerFunc adapts a function to LabelMeasurer.
type LabelMeasurerFunc func(label string) (w, h float64)

// MeasureLabel implements LabelMeasurer.
func (f LabelMeasurerFunc) MeasureLabel(label string) (w, h float64) { return f(label) }

// FaceMeasurer measures labels with a golang.org/x/image font face.
// Labels are NFC-normalized first so composed and decomposed input measure
// the same.
type FaceMeasurer struct {
	Face font.Face
}

// DefaultMeasurer measures with the 7×13 basic bitmap face. The text
// subpackage provides outline-font measurers.
func DefaultMeasurer() FaceMeasurer {
	return FaceMeasurer{Face: basicfont.Face7x13}
}

// MeasureLabel implements LabelMeasurer.
func (m FaceMeasurer) MeasureLabel(label string) (w, h float64) {
	label = norm.NFC.String(label)
	adv := font.MeasureString(m.Face, label)
	metrics := m.Face.Metrics()
	return fixedToFloat(adv), fixedToFloat(metrics.Height)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
