package nodeflow

// ResizeController runs the four-handle resize gesture of one node:
// Idle -> Resizing -> Idle. During the gesture the node's size changes and
// its visual offset keeps the anchor corner fixed; Location is written once,
// when the gesture ends.
type ResizeController struct {
	node     *Node
	notifier *GestureNotifier

	corner        Corner
	startVector   Vec2
	startSize     Vec2
	startLocation Vec2
	// accumulated is the handle displacement since Start. Each Update adds
	// its (vector - startVector) into it and the sum replaces the old value.
	accumulated Vec2
	// anchorDelta is the offset of the accepted state, committed at the end.
	anchorDelta Vec2
}

// NewResizeController creates the resize controller for n.
func NewResizeController(n *Node, notifier *GestureNotifier) *ResizeController {
	return &ResizeController{node: n, notifier: notifier}
}

// Active reports whether a resize gesture is in progress.
func (r *ResizeController) Active() bool {
	return r.node.gesture == GestureResizing
}

// Corner returns the handle driving the active gesture.
func (r *ResizeController) Corner() Corner {
	return r.corner
}

// Start begins a resize from handle c. vector is the handle's reported
// position at drag start. Returns false if the node is not resizable or
// another gesture is active.
func (r *ResizeController) Start(c Corner, vector Vec2) bool {
	if !r.node.Resizable {
		return false
	}
	if !r.node.beginGesture(GestureResizing) {
		return false
	}
	r.corner = c
	r.startVector = vector
	r.startSize = r.node.Size()
	r.startLocation = r.node.Location()
	r.accumulated = Vec2{}
	r.anchorDelta = Vec2{}
	return true
}

// Update applies a drag-delta event from handle c. Updates that would make
// either dimension smaller than the node's minimum are dropped silently.
func (r *ResizeController) Update(c Corner, vector Vec2) {
	if r.node.gesture != GestureResizing || c != r.corner {
		return
	}
	delta := vector.Sub(r.startVector).Add(r.accumulated)
	r.accumulated = delta

	w, h := r.startSize.X, r.startSize.Y
	var moveX, moveY bool
	switch c {
	case CornerTopLeft:
		w -= delta.X
		h -= delta.Y
		moveX, moveY = true, true
	case CornerTopRight:
		w += delta.X
		h -= delta.Y
		moveY = true
	case CornerBottomLeft:
		w -= delta.X
		h += delta.Y
		moveX = true
	case CornerBottomRight:
		w += delta.X
		h += delta.Y
	}
	if w < r.node.MinWidth || h < r.node.MinHeight {
		return
	}

	if moveX {
		r.anchorDelta.X = delta.X
	}
	if moveY {
		r.anchorDelta.Y = delta.Y
	}
	r.node.SetSize(w, h)
	r.node.SetOffset(r.anchorDelta.X, r.anchorDelta.Y)
	r.notifier.Notify(r.node, r.node.Location(), false)
}

// Complete ends the gesture: the visual offset is cleared and Location is
// committed as the start location plus the accepted anchor offset.
func (r *ResizeController) Complete() {
	if !r.node.endGesture(GestureResizing) {
		return
	}
	r.node.SetOffset(0, 0)
	loc := r.startLocation.Add(r.anchorDelta)
	r.node.SetLocation(loc.X, loc.Y)
	r.notifier.Notify(r.node, r.node.Location(), true)
}

// CaptureLost finalizes with the last accepted values; nothing is rolled back.
func (r *ResizeController) CaptureLost() {
	r.Complete()
}

// --- Handle geometry ---

// handleRect returns the hit rectangle of handle c in the node's local
// space. Handles are squares of side size centered on the corners.
func handleRect(n *Node, c Corner, size float64) Rect {
	half := size / 2
	x, y := -half, -half
	switch c {
	case CornerTopRight:
		x = n.Width - half
	case CornerBottomLeft:
		y = n.Height - half
	case CornerBottomRight:
		x = n.Width - half
		y = n.Height - half
	}
	return Rect{X: x, Y: y, Width: size, Height: size}
}

// cornerAt reports which handle of a resizable node contains the local
// point (lx, ly).
func cornerAt(n *Node, lx, ly, size float64) (Corner, bool) {
	if !n.Resizable || size <= 0 {
		return 0, false
	}
	for _, c := range [...]Corner{CornerTopLeft, CornerTopRight, CornerBottomLeft, CornerBottomRight} {
		if handleRect(n, c, size).Contains(lx, ly) {
			return c, true
		}
	}
	return 0, false
}
