package text

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/nodify"
)

// FontSource is a parsed TrueType/OpenType font shared by every face and
// measurer created from it. It holds both the x/image and the go-text
// parse of the same data. A FontSource is safe for concurrent use.
type FontSource struct {
	name   string
	sfnt   *opentype.Font
	shaped *gotext.Font
}

// NewFontSource parses font data.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}
	name, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		name = ""
	}
	return &FontSource{name: name, sfnt: f, shaped: face.Font}, nil
}

var regular = sync.OnceValue(func() *FontSource {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("text: embedded Go Regular font: %v", err))
	}
	return src
})

// Regular returns the embedded Go Regular font.
func Regular() *FontSource { return regular() }

// Name returns the font family name, or "" when the font has none.
func (s *FontSource) Name() string { return s.name }

// Face returns an x/image face at size (pixels per em at 72 DPI).
func (s *FontSource) Face(size float64) (font.Face, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(s.sfnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("text: face at size %g: %w", size, err)
	}
	return face, nil
}

// Measurer returns a glyph-advance measurer at size.
func (s *FontSource) Measurer(size float64) (nodify.FaceMeasurer, error) {
	face, err := s.Face(size)
	if err != nil {
		return nodify.FaceMeasurer{}, err
	}
	return nodify.FaceMeasurer{Face: face}, nil
}

func checkSize(size float64) error {
	if !(size > 0) || math.IsInf(size, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidSize, size)
	}
	return nil
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
