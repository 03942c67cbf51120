package nodify

// ZStep separates a raised node from the previous top of the stack.
const ZStep = 0.1

// BringToFront raises n above every other node by scanning all nodes for
// the highest z and placing n one ZStep above it. The scan is O(n), which
// is fine for interactive node counts.
func (s *Scene) BringToFront(n *Node) {
	if n == nil || n.scene != s {
		return
	}
	n.z = s.topZ()
}

// topZ returns one step above the highest z in the scene, or 0 when empty.
func (s *Scene) topZ() float64 {
	if len(s.nodes) == 0 {
		return 0
	}
	top := s.nodes[0].z
	for _, o := range s.nodes[1:] {
		if o.z > top {
			top = o.z
		}
	}
	return top + ZStep
}
