package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/nodify"
	"github.com/gogpu/nodify/internal/cache"
	"github.com/gogpu/nodify/text"
)

// Defaults for a new Context.
const (
	// DefaultLabelSize is the label font size in scene units.
	DefaultLabelSize = 13.0
	// DefaultTolerance is the curve flattening tolerance in device pixels.
	DefaultTolerance = 0.25

	// maxFaces bounds the per-size face cache.
	maxFaces = 8
)

// Context implements nodify.DrawContext over an *image.RGBA.
//
// A Context is not safe for concurrent use.
type Context struct {
	img *image.RGBA
	ras *vector.Rasterizer

	transform nodify.Matrix
	stack     []nodify.Matrix

	font      *text.FontSource
	labelSize float64
	faces     *cache.LRU[int, font.Face] // keyed by pixel size

	tolerance float64
}

var _ nodify.DrawContext = (*Context)(nil)

// Option configures a Context.
type Option func(*Context)

// WithFont sets the label font. Nil keeps Go Regular.
func WithFont(src *text.FontSource) Option {
	return func(c *Context) {
		if src != nil {
			c.font = src
		}
	}
}

// WithLabelSize sets the label font size in scene units.
func WithLabelSize(size float64) Option {
	return func(c *Context) {
		if size > 0 {
			c.labelSize = size
		}
	}
}

// WithTolerance sets the curve flattening tolerance in device pixels.
func WithTolerance(tol float64) Option {
	return func(c *Context) {
		if tol > 0 {
			c.tolerance = tol
		}
	}
}

// NewContext creates a w×h transparent canvas.
func NewContext(w, h int, opts ...Option) *Context {
	c := &Context{
		img:       image.NewRGBA(image.Rect(0, 0, w, h)),
		ras:       vector.NewRasterizer(w, h),
		transform: nodify.Identity(),
		font:      text.Regular(),
		labelSize: DefaultLabelSize,
		faces:     cache.New(maxFaces, closeFace),
		tolerance: DefaultTolerance,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Image returns the canvas.
func (c *Context) Image() *image.RGBA { return c.img }

// Width returns the canvas width in pixels.
func (c *Context) Width() int { return c.img.Bounds().Dx() }

// Height returns the canvas height in pixels.
func (c *Context) Height() int { return c.img.Bounds().Dy() }

// Push implements nodify.DrawContext.
func (c *Context) Push(m nodify.Matrix) {
	c.stack = append(c.stack, c.transform)
	c.transform = c.transform.Multiply(m)
}

// Pop implements nodify.DrawContext. Extra pops are ignored.
func (c *Context) Pop() {
	if len(c.stack) == 0 {
		return
	}
	c.transform = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Clear implements nodify.DrawContext.
func (c *Context) Clear(col nodify.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.Color()), image.Point{}, draw.Src)
}

// FillPath implements nodify.DrawContext.
func (c *Context) FillPath(p *nodify.Path, col nodify.RGBA) {
	if p == nil || p.IsEmpty() || col.A <= 0 {
		return
	}
	c.beginShape()
	for _, line := range p.Transform(c.transform).Flatten(c.tolerance) {
		c.addPolyline(line)
	}
	c.paint(col)
}

// StrokePath implements nodify.DrawContext. The width is scaled with the
// current transform.
func (c *Context) StrokePath(p *nodify.Path, s nodify.Stroke) {
	if p == nil || p.IsEmpty() || s.Color.A <= 0 || !(s.Width > 0) {
		return
	}
	half := s.Width * 0.5 * c.transform.ScaleFactor()
	if half <= 0 {
		return
	}
	c.beginShape()
	for _, line := range p.Transform(c.transform).Flatten(c.tolerance) {
		for _, poly := range strokePolyline(line, half, s.Cap, s.Join) {
			c.addPolyline(orientNegative(poly))
		}
	}
	c.paint(s.Color)
}

// DrawText implements nodify.DrawContext. Labels are centered in box and
// clipped to the canvas, not to the box.
func (c *Context) DrawText(label string, box nodify.Rect, col nodify.RGBA) {
	if label == "" || col.A <= 0 {
		return
	}
	px := int(math.Round(c.labelSize * c.transform.ScaleFactor()))
	if px < 1 {
		return
	}
	face, err := c.face(px)
	if err != nil {
		nodify.Logger().Warn("raster: label face unavailable", "size", px, "err", err)
		return
	}

	center := c.transform.TransformPoint(box.Center())
	m := face.Metrics()
	width := font.MeasureString(face, label)
	dot := fixed.Point26_6{
		X: fixed.Int26_6(math.Round(center.X*64)) - width/2,
		Y: fixed.Int26_6(math.Round(center.Y*64)) + (m.Ascent-m.Descent)/2,
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col.Color()),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(label)
}

// EncodePNG writes the canvas as PNG.
func (c *Context) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

func (c *Context) face(px int) (font.Face, error) {
	if f, ok := c.faces.Get(px); ok {
		return f, nil
	}
	f, err := c.font.Face(float64(px))
	if err != nil {
		return nil, err
	}
	c.faces.Put(px, f)
	return f, nil
}

func closeFace(px int, f font.Face) {
	if err := f.Close(); err != nil {
		nodify.Logger().Debug("raster: close face", "size", px, "err", err)
	}
}

func (c *Context) beginShape() {
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	c.ras.DrawOp = draw.Over
}

func (c *Context) addPolyline(line []nodify.Point) {
	if len(line) < 3 {
		return
	}
	c.ras.MoveTo(float32(line[0].X), float32(line[0].Y))
	for _, p := range line[1:] {
		c.ras.LineTo(float32(p.X), float32(p.Y))
	}
	c.ras.ClosePath()
}

func (c *Context) paint(col nodify.RGBA) {
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col.Color()), image.Point{})
}
