package nodeflow

// Canvas is the owner of selection, alignment and pointer routing that the
// gesture controllers call out to. Editor implements it.
type Canvas interface {
	// SelectNode marks n as the interaction target. Idempotent.
	SelectNode(n *Node)
	// TryAlignNode returns candidate, possibly snapped to nearby geometry.
	TryAlignNode(n *Node, candidate Vec2) Vec2
	// ClearAlignmentGuides hides any snapping guides. Safe when none are shown.
	ClearAlignmentGuides()
}

// pointerCapturer is implemented by canvases that route pointers.
type pointerCapturer interface {
	CapturePointer(pointerID int, n *Node)
}

// PointerEvent is the input the gesture controllers consume. X and Y are in
// world (screen) space; the controllers convert them to the canvas frame.
type PointerEvent struct {
	PointerID int
	X, Y      float64
	// Button is the button pressed at gesture start; for moves it is the
	// button still held.
	Button    MouseButton
	Modifiers KeyModifiers
	// Target is the node the press landed on. It may be a descendant of the
	// node being dragged. Nil means the node itself.
	Target *Node
}

// beginGesture moves n from idle into state. It reports false, leaving n
// untouched, when another gesture already owns the node.
func (n *Node) beginGesture(state GestureState) bool {
	if n.gesture != GestureIdle {
		logger.Debug("gesture start rejected", "node", n.Name, "want", state, "have", n.gesture)
		return false
	}
	n.gesture = state
	logger.Debug("gesture started", "node", n.Name, "state", state)
	return true
}

// endGesture returns n to idle if state is the active gesture.
func (n *Node) endGesture(state GestureState) bool {
	if n.gesture != state {
		return false
	}
	n.gesture = GestureIdle
	logger.Debug("gesture ended", "node", n.Name, "state", state)
	return true
}

// blockedByControl reports whether target, or any node between target and
// owner, is an opt-out control.
func blockedByControl(owner, target *Node) bool {
	for p := target; p != nil && p != owner; p = p.Parent {
		if p.BlocksDrag {
			return true
		}
	}
	return false
}

// draggableAncestor walks up from target to the nearest graph node.
func draggableAncestor(target *Node) *Node {
	for p := target; p != nil; p = p.Parent {
		if p.Draggable {
			return p
		}
	}
	return nil
}
