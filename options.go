package nodify

// SceneOption configures a Scene during creation.
//
// Example:
//
//	m, err := text.NewShapingMeasurer(text.Regular(), 13)
//	if err != nil {
//	    return err
//	}
//	s := nodify.NewScene(
//	    nodify.WithMeasurer(m),
//	    nodify.WithObserver(metrics.NewRegistry()),
//	)
type SceneOption func(*sceneOptions)

// sceneOptions holds optional configuration for Scene creation.
type sceneOptions struct {
	measurer   LabelMeasurer
	observer   Observer
	solver     PathSolver
	background RGBA
}

// defaultSceneOptions returns the default scene options.
func defaultSceneOptions() sceneOptions {
	return sceneOptions{
		measurer:   DefaultMeasurer(),
		observer:   nopObserver{},
		solver:     CubicSolver{},
		background: DefaultBackground,
	}
}

// WithMeasurer sets the label measurer used to derive node minimum sizes.
// Nil keeps the default basic-font measurer.
func WithMeasurer(m LabelMeasurer) SceneOption {
	return func(o *sceneOptions) {
		if m != nil {
			o.measurer = m
		}
	}
}

// WithObserver registers an observer of gestures and graph changes.
func WithObserver(ob Observer) SceneOption {
	return func(o *sceneOptions) {
		if ob != nil {
			o.observer = ob
		}
	}
}

// WithSolver sets the path solver given to new connections.
func WithSolver(s PathSolver) SceneOption {
	return func(o *sceneOptions) {
		if s != nil {
			o.solver = s
		}
	}
}

// WithBackground sets the scene background color.
func WithBackground(c RGBA) SceneOption {
	return func(o *sceneOptions) {
		o.background = c
	}
}

// ViewOption configures a View during creation.
type ViewOption func(*viewOptions)

type viewOptions struct {
	sceneRect   Rect
	viewport    Rect
	minScale    float64
	maxScale    float64
	modifier    Modifiers
	panButtons  []Buttons
	zoomButtons []Buttons
	observer    ViewObserver
}

// Default camera limits.
const (
	DefaultSceneSize = 32000
	DefaultMinScale  = 0.2
	DefaultMaxScale  = 8.0
)

func defaultViewOptions() viewOptions {
	return viewOptions{
		sceneRect:   R(0, 0, DefaultSceneSize, DefaultSceneSize),
		viewport:    R(0, 0, 800, 600),
		minScale:    DefaultMinScale,
		maxScale:    DefaultMaxScale,
		modifier:    ModAlt,
		panButtons:  []Buttons{ButtonPrimary},
		zoomButtons: []Buttons{ButtonMiddle, ButtonSecondary},
		observer:    nopObserver{},
	}
}

// WithSceneRect sets the scene bounds the view is centered in.
func WithSceneRect(r Rect) ViewOption {
	return func(o *viewOptions) {
		if !r.IsEmpty() {
			o.sceneRect = r
		}
	}
}

// WithViewportSize sets the initial viewport size in pixels.
func WithViewportSize(w, h float64) ViewOption {
	return func(o *viewOptions) {
		if w > 0 && h > 0 {
			o.viewport = R(0, 0, w, h)
		}
	}
}

// WithZoomLimits sets the closed range the cumulative scale must stay in.
// Invalid ranges are ignored.
func WithZoomLimits(minScale, maxScale float64) ViewOption {
	return func(o *viewOptions) {
		if minScale > 0 && maxScale >= minScale {
			o.minScale, o.maxScale = minScale, maxScale
		}
	}
}

// WithPanZoomModifier sets the modifier that switches pointer drags from
// scene interaction to camera pan/zoom.
func WithPanZoomModifier(m Modifiers) ViewOption {
	return func(o *viewOptions) {
		if m != 0 {
			o.modifier = m
		}
	}
}

// WithViewObserver registers an observer of camera changes.
func WithViewObserver(ob ViewObserver) ViewOption {
	return func(o *viewOptions) {
		if ob != nil {
			o.observer = ob
		}
	}
}
