package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/nodify"
)

// ShapingMeasurer measures labels by shaping them with go-text/typesetting's
// HarfBuzz port, so kerning and ligatures count toward the width.
//
// go-text faces and shapers carry mutable buffers, so one mutex serializes
// MeasureLabel. Measuring only happens when a label changes.
type ShapingMeasurer struct {
	src  *FontSource
	size float64

	height float64 // line height from the x/image metrics at size

	mu     sync.Mutex
	face   *gotext.Face
	shaper shaping.HarfbuzzShaper
}

var _ nodify.LabelMeasurer = (*ShapingMeasurer)(nil)

// NewShapingMeasurer creates a shaping measurer for src at size.
func NewShapingMeasurer(src *FontSource, size float64) (*ShapingMeasurer, error) {
	xf, err := src.Face(size)
	if err != nil {
		return nil, err
	}
	return &ShapingMeasurer{
		src:    src,
		size:   size,
		height: fromFixed(xf.Metrics().Height),
		face:   gotext.NewFace(src.shaped),
	}, nil
}

// Source returns the font being shaped.
func (m *ShapingMeasurer) Source() *FontSource { return m.src }

// Size returns the font size in pixels per em.
func (m *ShapingMeasurer) Size() float64 { return m.size }

// MeasureLabel implements nodify.LabelMeasurer. The height is the font's
// line height, also for an empty label.
func (m *ShapingMeasurer) MeasureLabel(label string) (w, h float64) {
	runes := []rune(norm.NFC.String(label))

	m.mu.Lock()
	defer m.mu.Unlock()

	h = m.height
	if len(runes) == 0 {
		return 0, h
	}
	out := m.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      m.face,
		Size:      toFixed(m.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})
	for _, g := range out.Glyphs {
		w += fromFixed(g.Advance)
	}
	return w, h
}

// detectScript returns the script of the first non-space rune. Mixed-script
// labels are measured as a single run.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
