package main

import (
	"fmt"
	"io"

	"github.com/gogpu/nodify"
	"github.com/gogpu/nodify/metrics"
	"github.com/gogpu/nodify/raster"
	"github.com/gogpu/nodify/recording"
	"github.com/gogpu/nodify/text"
)

// session is a scene and camera built from a script, with its events
// replayed.
type session struct {
	pal   palette
	reg   *metrics.Registry
	scene *nodify.Scene
	view  *nodify.View
	nodes map[string]*nodify.Node

	consumed int
}

func newSession(s *Script, t *Theme) (*session, error) {
	pal := t.palette()
	m, err := text.NewShapingMeasurer(text.Regular(), pal.labelSize)
	if err != nil {
		return nil, err
	}
	var solver nodify.PathSolver = nodify.CubicSolver{}
	if s.Solver == "straight" {
		solver = nodify.StraightSolver{}
	}

	ss := &session{
		pal:   pal,
		reg:   metrics.NewRegistry(),
		nodes: make(map[string]*nodify.Node, len(s.Nodes)),
	}
	ss.scene = nodify.NewScene(
		nodify.WithMeasurer(m),
		nodify.WithObserver(ss.reg),
		nodify.WithSolver(solver),
		nodify.WithBackground(pal.background),
	)

	for _, spec := range s.Nodes {
		n := ss.scene.AddNode(spec.Label, spec.X, spec.Y, spec.W, spec.H)
		fill := pal.node
		if c, ok := nodify.Hex(spec.Color); ok && spec.Color != "" {
			fill = c
		}
		n.SetColor(fill)
		n.SetLabelColor(pal.label)
		for _, sl := range n.Slots() {
			sl.SetColor(pal.slot)
		}
		ss.nodes[spec.ID] = n
	}

	for i, l := range s.Connections {
		a, err := ss.slot(l.From)
		if err != nil {
			return nil, fmt.Errorf("connections[%d]: %w", i, err)
		}
		b, err := ss.slot(l.To)
		if err != nil {
			return nil, fmt.Errorf("connections[%d]: %w", i, err)
		}
		if _, err := ss.scene.Connect(a, b); err != nil {
			return nil, fmt.Errorf("connections[%d]: %w", i, err)
		}
	}

	ss.view = nodify.NewView(ss.scene,
		nodify.WithViewportSize(float64(s.Viewport.Width), float64(s.Viewport.Height)),
		nodify.WithViewObserver(ss.reg),
	)
	if len(s.Center) == 2 {
		ss.view.CenterOn(nodify.Pt(s.Center[0], s.Center[1]))
	}
	if s.Zoom > 0 && s.Zoom != 1 {
		c := ss.view.MapToScene(ss.view.Viewport().Center())
		if !ss.view.Zoom(s.Zoom) {
			return nil, fmt.Errorf("zoom %g outside [%g, %g]", s.Zoom, nodify.DefaultMinScale, nodify.DefaultMaxScale)
		}
		ss.view.CenterOn(c)
	}

	for _, e := range s.Events {
		ev := e.Event()
		var ok bool
		if e.Space == "scene" {
			ok = ss.scene.HandlePointer(ev)
		} else {
			ok = ss.view.HandlePointer(ev)
		}
		if ok {
			ss.consumed++
		}
	}

	for _, c := range ss.scene.Connections() {
		c.SetColor(pal.link)
	}

	if err := ss.scene.Validate(); err != nil {
		return nil, fmt.Errorf("scene invalid after replay: %w", err)
	}
	if err := ss.check(s.Expect); err != nil {
		return nil, err
	}
	return ss, nil
}

func (ss *session) slot(ref string) (*nodify.Slot, error) {
	id, side, err := splitSlotRef(ref)
	if err != nil {
		return nil, err
	}
	n, ok := ss.nodes[id]
	if !ok {
		return nil, fmt.Errorf("unknown node %q", id)
	}
	return n.Slot(side), nil
}

func (ss *session) check(x *Expectation) error {
	if x == nil {
		return nil
	}
	if x.Nodes != nil {
		if got := len(ss.scene.Nodes()); got != *x.Nodes {
			return fmt.Errorf("expect: %d nodes, got %d", *x.Nodes, got)
		}
	}
	if x.Connections != nil {
		if got := len(ss.scene.Connections()); got != *x.Connections {
			return fmt.Errorf("expect: %d connections, got %d", *x.Connections, got)
		}
	}
	return nil
}

// renderPNG rasterizes the view and writes it as PNG.
func (ss *session) renderPNG(w io.Writer) error {
	vp := ss.view.Viewport()
	dc := raster.NewContext(int(vp.W), int(vp.H), raster.WithLabelSize(ss.pal.labelSize))
	ss.view.Render(dc)
	return dc.EncodePNG(w)
}

// record captures the view's draw commands.
func (ss *session) record() *recording.Recording {
	rec := recording.NewRecorder()
	ss.view.Render(rec)
	return rec.FinishRecording()
}
