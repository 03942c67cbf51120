package nodify

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap that ends exactly at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap extending half the width.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Stroke defines the style for stroking paths.
type Stroke struct {
	// Width is the line width in scene units. Default: 1.0
	Width float64

	// Cap is the shape of line endpoints. Default: LineCapButt
	Cap LineCap

	// Join is the shape of line joins. Default: LineJoinMiter
	Join LineJoin

	// Color is the stroke color.
	Color RGBA
}

// DefaultStroke returns a Stroke with default settings.
// This creates a solid 1-unit black line with butt caps and miter joins.
func DefaultStroke() Stroke {
	return Stroke{
		Width: 1.0,
		Cap:   LineCapButt,
		Join:  LineJoinMiter,
		Color: Black,
	}
}

// LinkStroke is the style every Connection is drawn with:
// width 2, round joins, flat caps.
func LinkStroke(c RGBA) Stroke {
	return Stroke{
		Width: 2,
		Cap:   LineCapButt,
		Join:  LineJoinRound,
		Color: c,
	}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithColor returns a copy of the Stroke with the given color.
func (s Stroke) WithColor(c RGBA) Stroke {
	s.Color = c
	return s
}
