package nodify

// HandlePointer dispatches one scene-space pointer event and reports
// whether the scene consumed it.
//
// Transitions:
//
//	idle --press on slot-------> connecting (drag preview from the slot)
//	idle --press on corner-----> resizing
//	idle --press on node-------> moving (node selected)
//	idle --press on canvas-----> selecting (marquee)
//	any  --release-------------> idle (connecting commits if over a valid slot)
//	any  --leave---------------> idle (nothing committed)
//
// Presses that arrive while a gesture is active are swallowed, so a second
// gesture can never start on top of the first.
func (s *Scene) HandlePointer(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerPress:
		return s.press(ev)
	case PointerMove:
		return s.move(ev)
	case PointerRelease:
		return s.release(ev)
	case PointerLeave:
		active := s.gesture.mode != GestureIdle
		s.Cancel()
		return active
	}
	return false
}

// Gesture returns the active gesture mode.
func (s *Scene) Gesture() GestureMode { return s.gesture.mode }

// GestureNode returns the node being moved or resized, or nil.
func (s *Scene) GestureNode() *Node { return s.gesture.node }

// DragPath returns the link preview while a connection is being dragged.
func (s *Scene) DragPath() (*DragPath, bool) {
	if s.gesture.mode != GestureConnecting {
		return nil, false
	}
	return s.gesture.drag, true
}

// Marquee returns the selection rectangle while one is being dragged.
func (s *Scene) Marquee() (Rect, bool) {
	if s.gesture.mode != GestureSelecting {
		return Rect{}, false
	}
	return s.gesture.marquee, true
}

// Cancel aborts the active gesture. Moves and resizes already applied
// stay; a connection drag is discarded without touching the graph.
func (s *Scene) Cancel() {
	if s.gesture.mode == GestureIdle {
		return
	}
	s.endGesture(false)
}

func (s *Scene) press(ev PointerEvent) bool {
	if s.gesture.mode != GestureIdle {
		return true
	}
	p := ev.Pos
	n := s.NodeAt(p)
	if n != nil {
		s.BringToFront(n)
	}
	// only the primary button starts a gesture
	if ev.Buttons&ButtonPrimary == 0 {
		return false
	}

	s.gesture = gesture{start: p, last: p}
	if n == nil {
		additive := ev.Modifiers.Has(ModCtrl) || ev.Modifiers.Has(ModShift)
		if !additive {
			s.ClearSelection()
		}
		s.gesture.marquee = Rect{X: p.X, Y: p.Y}
		s.gesture.additive = additive
		s.beginGesture(GestureSelecting)
		return true
	}

	slot := n.SlotAt(p)
	switch {
	case slot != nil:
		s.gesture.drag = &DragPath{Origin: slot, End: p}
		s.beginGesture(GestureConnecting)
	case n.InResizeHandle(p):
		s.gesture.node = n
		s.gesture.startRect = n.Rect()
		n.mode = NodeResizing
		s.beginGesture(GestureResizing)
	default:
		switch {
		case ev.Modifiers.Has(ModCtrl):
			n.selected = !n.selected
		case !n.selected:
			s.ClearSelection()
			n.selected = true
		}
		s.gesture.node = n
		s.beginGesture(GestureMoving)
	}
	return true
}

func (s *Scene) move(ev PointerEvent) bool {
	g := &s.gesture
	p := ev.Pos
	switch g.mode {
	case GestureIdle:
		return false
	case GestureConnecting:
		g.drag.End = p
	case GestureResizing:
		d := p.Sub(g.start)
		g.node.Resize(g.startRect.W+d.X, g.startRect.H+d.Y)
	case GestureMoving:
		d := p.Sub(g.last)
		for _, n := range s.nodes {
			if n.selected {
				n.MoveBy(d)
			}
		}
	case GestureSelecting:
		g.marquee = Rect{X: g.start.X, Y: g.start.Y, W: p.X - g.start.X, H: p.Y - g.start.Y}.Normalized()
	}
	g.last = p
	return true
}

func (s *Scene) release(ev PointerEvent) bool {
	g := &s.gesture
	if g.mode == GestureIdle {
		return false
	}
	s.move(Move(ev.Pos, ev.Buttons, ev.Modifiers))

	committed := true
	switch g.mode {
	case GestureConnecting:
		committed = false
		if target := s.SlotAt(ev.Pos); target != nil {
			if _, err := s.Connect(g.drag.Origin, target); err != nil {
				Logger().Warn("nodify: connection rejected", "from", g.drag.Origin.String(), "to", target.String(), "err", err)
			} else {
				committed = true
			}
		}
	case GestureSelecting:
		for _, n := range s.nodes {
			if n.Rect().Intersects(g.marquee) {
				n.selected = true
			}
		}
	}
	s.endGesture(committed)
	return true
}

func (s *Scene) beginGesture(mode GestureMode) {
	s.gesture.mode = mode
	Logger().Debug("nodify: gesture begin", "mode", mode.String(), "at", s.gesture.start)
	s.opts.observer.GestureBegan(mode)
}

// endGesture resets all gesture state, including the per-node mode, so no
// drag can outlive its release.
func (s *Scene) endGesture(committed bool) {
	mode := s.gesture.mode
	if n := s.gesture.node; n != nil {
		n.mode = NodeNormal
	}
	s.gesture = gesture{}
	Logger().Debug("nodify: gesture end", "mode", mode.String(), "committed", committed)
	s.opts.observer.GestureEnded(mode, committed)
}

func (s *Scene) gestureInvolves(n *Node) bool {
	g := &s.gesture
	if g.node == n {
		return true
	}
	return g.drag != nil && g.drag.Origin.node == n
}
