package nodify

import (
	"errors"
	"math"
	"testing"
)

func TestConnect(t *testing.T) {
	obs := &spyObserver{}
	s, a, b := newPair(WithObserver(obs))

	c, err := s.Connect(a.Right(), b.Left())
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if a.Right().Connection() != c || b.Left().Connection() != c {
		t.Error("connection not recorded on both slots")
	}
	if !a.Right().Connected() || a.Left().Connected() {
		t.Error("Connected flags")
	}
	if got := s.Connections(); len(got) != 1 || got[0] != c {
		t.Errorf("Connections() = %v", got)
	}
	if got := a.Connections(); len(got) != 1 || got[0] != c {
		t.Errorf("Node.Connections() = %v", got)
	}
	if last := obs.changes[len(obs.changes)-1]; last != [2]int{2, 1} {
		t.Errorf("last GraphChanged = %v, want [2 1]", last)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestConnectRejections(t *testing.T) {
	obs := &spyObserver{}
	s, a, b := newPair(WithObserver(obs))
	if _, err := s.Connect(a.Right(), b.Left()); err != nil {
		t.Fatal(err)
	}
	other := NewScene(WithMeasurer(fixedMeasurer)).AddNode("X", 0, 0, 100, 60)

	tests := []struct {
		name string
		a, b *Slot
		want error
	}{
		{"same slot", a.Top(), a.Top(), ErrSelfConnection},
		{"occupied source", a.Right(), b.Top(), ErrSlotOccupied},
		{"occupied target", a.Top(), b.Left(), ErrSlotOccupied},
		{"foreign slot", a.Top(), other.Left(), ErrForeignSlot},
		{"nil slot", nil, a.Top(), ErrForeignSlot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(obs.rejected)
			c, err := s.Connect(tt.a, tt.b)
			if !errors.Is(err, tt.want) || c != nil {
				t.Fatalf("Connect = %v, %v; want %v", c, err, tt.want)
			}
			if len(obs.rejected) != before+1 {
				t.Error("ConnectRejected not reported")
			}
			if len(s.Connections()) != 1 {
				t.Error("rejected connect changed the graph")
			}
		})
	}

	// two slots of one node may be linked
	if _, err := s.Connect(a.Top(), a.Bottom()); err != nil {
		t.Errorf("same-node connect: %v", err)
	}
}

func TestRemoveNodeCascades(t *testing.T) {
	s, a, b := newPair()
	c := s.AddNode("C", 0, 200, 160, 90)
	if _, err := s.Connect(a.Right(), b.Left()); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Connect(b.Bottom(), c.Top()); err != nil {
		t.Fatal(err)
	}

	if err := s.RemoveNode(b); err != nil {
		t.Fatalf("RemoveNode: %v", err)
	}
	if len(s.Connections()) != 0 {
		t.Errorf("%d connections survive the node", len(s.Connections()))
	}
	if a.Right().Connected() || c.Top().Connected() {
		t.Error("surviving slots still hold removed connections")
	}
	if b.Scene() != nil || len(s.Nodes()) != 2 {
		t.Error("node still attached")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if err := s.RemoveNode(b); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("second RemoveNode = %v, want ErrUnknownNode", err)
	}
	if _, err := s.Connect(a.Right(), b.Left()); !errors.Is(err, ErrForeignSlot) {
		t.Errorf("connect to removed node = %v, want ErrForeignSlot", err)
	}
}

func TestRemoveNodeCancelsGesture(t *testing.T) {
	s, a, _ := newPair()
	s.HandlePointer(Press(Pt(157, 45), ButtonPrimary, 0))
	if s.Gesture() != GestureConnecting {
		t.Fatalf("gesture = %v", s.Gesture())
	}
	if err := s.RemoveNode(a); err != nil {
		t.Fatal(err)
	}
	if s.Gesture() != GestureIdle {
		t.Errorf("gesture = %v after removing its node", s.Gesture())
	}
}

func TestDisconnect(t *testing.T) {
	s, a, b := newPair()
	c, err := s.Connect(a.Right(), b.Left())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Disconnect(c); err != nil {
		t.Fatalf("Disconnect: %v", err)
	}
	if a.Right().Connected() || b.Left().Connected() {
		t.Error("slots still connected")
	}
	if err := s.Disconnect(c); !errors.Is(err, ErrUnknownConnection) {
		t.Errorf("second Disconnect = %v, want ErrUnknownConnection", err)
	}
	// the freed slots accept a new link
	if _, err := s.Connect(b.Left(), a.Right()); err != nil {
		t.Errorf("reconnect: %v", err)
	}
}

func TestValidateDetectsDanglingReferences(t *testing.T) {
	s, a, b := newPair()
	c, err := s.Connect(a.Right(), b.Left())
	if err != nil {
		t.Fatal(err)
	}

	b.Left().connection = nil
	if err := s.Validate(); !errors.Is(err, ErrDanglingConnection) {
		t.Errorf("Validate = %v, want ErrDanglingConnection", err)
	}

	b.Left().connection = c
	s.connections = nil
	if err := s.Validate(); !errors.Is(err, ErrDanglingConnection) {
		t.Errorf("Validate = %v, want ErrDanglingConnection", err)
	}
}

func TestNodeLookup(t *testing.T) {
	s, a, b := newPair()
	if s.NodeByID(a.ID()) != a || s.NodeByID(b.ID()) != b {
		t.Error("NodeByID")
	}
	if a.ID() == b.ID() {
		t.Error("ids collide")
	}
	if s.NodeAt(Pt(80, 45)) != a || s.NodeAt(Pt(380, 45)) != b || s.NodeAt(Pt(230, 45)) != nil {
		t.Error("NodeAt")
	}
	if s.SlotAt(Pt(157, 45)) != a.Right() || s.SlotAt(Pt(80, 45)) != nil {
		t.Error("SlotAt")
	}
}

func TestZOrder(t *testing.T) {
	s, a, b := newPair()
	c := s.AddNode("C", 100, 20, 160, 90) // overlaps a

	if !(a.Z() < b.Z() && b.Z() < c.Z()) {
		t.Fatalf("z = %v %v %v, want increasing", a.Z(), b.Z(), c.Z())
	}
	if s.NodeAt(Pt(120, 40)) != c {
		t.Error("topmost node not hit first")
	}

	s.BringToFront(a)
	if !(a.Z() > c.Z()) {
		t.Errorf("z after BringToFront = %v, want above %v", a.Z(), c.Z())
	}
	if s.NodeAt(Pt(120, 40)) != a {
		t.Error("raised node not hit first")
	}
	nodes := s.Nodes()
	if nodes[0] != b || nodes[1] != c || nodes[2] != a {
		t.Errorf("draw order = %v %v %v", nodes[0].Label(), nodes[1].Label(), nodes[2].Label())
	}

	// a slot under another node is hidden
	s.BringToFront(c)
	if got := s.SlotAt(Pt(157, 45)); got != nil {
		t.Errorf("covered slot reachable: %v", got)
	}

	s.BringToFront(nil)
	s.BringToFront(NewScene().AddNode("X", 0, 0, 0, 0))
}

func TestItemsDrawOrder(t *testing.T) {
	s, a, b := newPair()
	c, err := s.Connect(a.Right(), b.Left())
	if err != nil {
		t.Fatal(err)
	}
	items := s.Items()
	if len(items) != 3 || items[0] != Drawable(c) || items[1] != Drawable(a) || items[2] != Drawable(b) {
		t.Fatalf("Items() = %v", items)
	}

	s.HandlePointer(Press(Pt(157+300, 45), ButtonPrimary, 0))
	items = s.Items()
	if _, ok := items[len(items)-1].(*DragPath); !ok {
		t.Error("drag preview not drawn last")
	}

	if got := s.ItemsIn(R(0, 0, 100, 100)); len(got) != 1 || got[0] != Drawable(a) {
		t.Errorf("ItemsIn = %v", got)
	}
}

func TestItemsInCullsConnectionsByCurve(t *testing.T) {
	s, a, b := newPair()
	c, err := s.Connect(a.Bottom(), b.Bottom())
	if err != nil {
		t.Fatal(err)
	}
	// controls at y=170, the curve itself dips to y=150
	if box := c.BoundingBox(); box.Y+box.H != 170 {
		t.Fatalf("BoundingBox = %v", box)
	}
	if ext := c.Extent(); math.Abs(ext.Y+ext.H-151) > 1e-9 {
		t.Errorf("Extent = %v, want bottom at 151", ext)
	}

	if got := s.ItemsIn(R(200, 155, 50, 10)); len(got) != 0 {
		t.Errorf("ItemsIn below the curve = %v, want none", got)
	}
	if got := s.ItemsIn(R(200, 140, 50, 5)); len(got) != 1 || got[0] != Drawable(c) {
		t.Errorf("ItemsIn across the curve = %v", got)
	}
}

func TestSelection(t *testing.T) {
	s, a, b := newPair()
	s.Select(a, true)
	s.Select(b, true)
	if got := s.Selected(); len(got) != 2 {
		t.Errorf("Selected = %d nodes", len(got))
	}
	s.ClearSelection()
	if len(s.Selected()) != 0 {
		t.Error("ClearSelection")
	}
	s.SetBackground(White)
	if s.Background() != White {
		t.Error("SetBackground")
	}
}
