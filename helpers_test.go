package nodify

import "unicode/utf8"

// fixedMeasurer gives every rune a 7×13 cell, like the basic bitmap face.
var fixedMeasurer = LabelMeasurerFunc(func(label string) (float64, float64) {
	return 7 * float64(utf8.RuneCountInString(label)), 13
})

// newPair returns a scene with two 160×90 nodes side by side, a at the
// origin and b at (300, 0).
func newPair(opts ...SceneOption) (s *Scene, a, b *Node) {
	s = NewScene(append([]SceneOption{WithMeasurer(fixedMeasurer)}, opts...)...)
	a = s.AddNode("A", 0, 0, 160, 90)
	b = s.AddNode("B", 300, 0, 160, 90)
	return s, a, b
}

// drag runs a primary-button press, move and release in scene space.
func drag(s *Scene, from, to Point) {
	s.HandlePointer(Press(from, ButtonPrimary, 0))
	s.HandlePointer(Move(to, ButtonPrimary, 0))
	s.HandlePointer(Release(to, 0))
}

type ended struct {
	mode      GestureMode
	committed bool
}

// spyObserver records every Observer and ViewObserver call.
type spyObserver struct {
	began        []GestureMode
	ended        []ended
	rejected     []error
	changes      [][2]int
	scales       []float64
	zoomRejected []float64
}

func (o *spyObserver) GestureBegan(m GestureMode) { o.began = append(o.began, m) }
func (o *spyObserver) GestureEnded(m GestureMode, committed bool) {
	o.ended = append(o.ended, ended{m, committed})
}
func (o *spyObserver) ConnectRejected(err error)    { o.rejected = append(o.rejected, err) }
func (o *spyObserver) GraphChanged(nodes, conns int) { o.changes = append(o.changes, [2]int{nodes, conns}) }
func (o *spyObserver) ScaleChanged(s float64)        { o.scales = append(o.scales, s) }
func (o *spyObserver) ZoomRejected(f float64)        { o.zoomRejected = append(o.zoomRejected, f) }
