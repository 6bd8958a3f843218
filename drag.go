package nodeflow

// DragController runs the move gesture of one node: Idle -> Dragging -> Idle.
type DragController struct {
	node     *Node
	canvas   Canvas
	notifier *GestureNotifier

	pointerID     int
	startPointer  Vec2 // canvas space
	startLocation Vec2
}

// NewDragController creates the move controller for n. canvas may be nil,
// in which case no gesture ever starts.
func NewDragController(n *Node, canvas Canvas, notifier *GestureNotifier) *DragController {
	return &DragController{node: n, canvas: canvas, notifier: notifier}
}

// Active reports whether a move gesture is in progress.
func (d *DragController) Active() bool {
	return d.node.gesture == GestureDragging
}

// PointerID returns the pointer driving the active gesture.
func (d *DragController) PointerID() int {
	return d.pointerID
}

// Start handles a press on the node. The node is selected for any accepted
// press, but only the primary button starts a drag. Returns true when the
// node is now dragging.
func (d *DragController) Start(ev PointerEvent) bool {
	if d.canvas == nil {
		return false
	}
	target := ev.Target
	if target == nil {
		target = d.node
	}
	if blockedByControl(d.node, target) {
		return false
	}
	start, ok := PointerToCanvas(d.node, ev.X, ev.Y)
	if !ok {
		logger.Debug("drag ignored: no canvas frame", "node", d.node.Name)
		return false
	}
	if d.node.gesture != GestureIdle {
		logger.Debug("drag ignored: gesture active", "node", d.node.Name, "state", d.node.gesture)
		return false
	}

	d.canvas.SelectNode(d.node)
	if ev.Button != MouseButtonLeft {
		return false
	}
	if !d.node.beginGesture(GestureDragging) {
		return false
	}
	if c, ok := d.canvas.(pointerCapturer); ok {
		c.CapturePointer(ev.PointerID, d.node)
	}
	d.pointerID = ev.PointerID
	d.startPointer = start
	d.startLocation = d.node.Location()
	return true
}

// Update moves the node by the pointer's displacement since Start. With
// ModShift held the raw position is used and guides are cleared; otherwise
// the canvas may snap it. Events from pointers other than the one that
// started the gesture are ignored. Emits a non-final event on every call that
// reaches the node.
func (d *DragController) Update(ev PointerEvent) {
	if d.node.gesture != GestureDragging || ev.Button != MouseButtonLeft || ev.PointerID != d.pointerID {
		return
	}
	cur, ok := PointerToCanvas(d.node, ev.X, ev.Y)
	if !ok {
		return
	}
	offset := cur.Sub(d.startPointer)
	candidate := d.startLocation.Add(offset)

	loc := candidate
	if ev.Modifiers.Has(ModShift) {
		d.canvas.ClearAlignmentGuides()
	} else {
		loc = d.canvas.TryAlignNode(d.node, candidate)
	}
	d.node.SetLocation(loc.X, loc.Y)
	d.notifier.Notify(d.node, d.node.Location(), false)
}

// Complete ends the gesture on pointer release. No-op when not dragging.
func (d *DragController) Complete() {
	if !d.node.endGesture(GestureDragging) {
		return
	}
	d.canvas.ClearAlignmentGuides()
	d.notifier.Notify(d.node, d.node.Location(), true)
}

// CaptureLost ends the gesture when the pointer is taken away. The final
// event is emitted even when no gesture was running.
func (d *DragController) CaptureLost() {
	d.node.endGesture(GestureDragging)
	d.notifier.Notify(d.node, d.node.Location(), true)
	if d.canvas != nil {
		d.canvas.ClearAlignmentGuides()
	}
}

// AutoPanned reacts to the viewport scrolling under a held pointer. Only the
// node currently being dragged reports its location.
func (d *DragController) AutoPanned(target *Node) {
	if target != d.node || d.node.gesture != GestureDragging {
		return
	}
	d.notifier.Notify(d.node, d.node.Location(), false)
}
