package nodify

// Observer is notified of scene gestures and graph changes. The metrics
// subpackage provides a Prometheus implementation. Calls happen on the
// event loop and must not re-enter the scene.
type Observer interface {
	// GestureBegan is called when a press starts a gesture.
	GestureBegan(mode GestureMode)
	// GestureEnded is called when the gesture returns to idle. committed is
	// false for cancelled gestures and for connection drags that were dropped.
	GestureEnded(mode GestureMode, committed bool)
	// ConnectRejected is called when the connect protocol refuses a pair.
	ConnectRejected(err error)
	// GraphChanged is called after nodes or connections are added or removed.
	GraphChanged(nodes, connections int)
}

// ViewObserver is notified of camera changes.
type ViewObserver interface {
	// ScaleChanged is called after every accepted zoom.
	ScaleChanged(scale float64)
	// ZoomRejected is called when a zoom would leave the allowed range.
	ZoomRejected(factor float64)
}

type nopObserver struct{}

func (nopObserver) GestureBegan(GestureMode)       {}
func (nopObserver) GestureEnded(GestureMode, bool) {}
func (nopObserver) ConnectRejected(error)          {}
func (nopObserver) GraphChanged(int, int)          {}
func (nopObserver) ScaleChanged(float64)           {}
func (nopObserver) ZoomRejected(float64)           {}
