package nodeflow

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// pointerMode is what a held pointer is currently doing.
type pointerMode uint8

const (
	pointerIdle   pointerMode = iota // pressed on nothing draggable, or released
	pointerDrag                      // moving a node
	pointerResize                    // dragging a resize handle
	pointerPan                       // panning the canvas
)

// --- Per-pointer state ---

type pointerState struct {
	down       bool
	lastX      float64
	lastY      float64
	button     MouseButton // button captured at press time
	mods       KeyModifiers
	mode       pointerMode
	node       *Node // graph node owning the gesture
	corner     Corner
	lastCanvas Vec2 // last pointer position in the node's canvas frame (resize)
}

// --- Capture ---

// CapturePointer routes all events for pointerID to the given node.
func (e *Editor) CapturePointer(pointerID int, node *Node) {
	if pointerID >= 0 && pointerID < maxPointers {
		e.captured[pointerID] = node
	}
}

// Captured returns the node holding pointerID, or nil.
func (e *Editor) Captured(pointerID int) *Node {
	if pointerID < 0 || pointerID >= maxPointers {
		return nil
	}
	return e.captured[pointerID]
}

// ReleaseCapture takes pointerID away from the node holding it, the way the
// platform does when it cancels a gesture. The holder's gesture is
// finalized with its current values. The pointer stays idle until released.
func (e *Editor) ReleaseCapture(pointerID int) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	n := e.captured[pointerID]
	e.captured[pointerID] = nil
	ps := &e.pointers[pointerID]
	ps.mode = pointerIdle
	ps.node = nil
	if n == nil {
		return
	}
	logger.Debug("pointer capture lost", "pointer", pointerID, "node", n.Name, "state", n.gesture)
	if n.gesture == GestureResizing {
		if n.resize != nil {
			n.resize.CaptureLost()
		}
		return
	}
	if n.drag != nil {
		n.drag.CaptureLost()
	}
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's bounds or,
// for selected resizable nodes, one of its handles. Zero-sized nodes are not
// hit-testable.
func (e *Editor) nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.Width == 0 && n.Height == 0 {
		return false
	}
	if lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height {
		return true
	}
	_, ok := e.handleAt(n, lx, ly)
	return ok
}

// handleAt reports the resize handle under the local point (lx, ly). Only
// selected nodes show handles, so only they can be resized.
func (e *Editor) handleAt(n *Node, lx, ly float64) (Corner, bool) {
	if !n.Selected {
		return 0, false
	}
	return cornerAt(n, lx, ly, e.config.HandleSize)
}

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending hit-testable nodes to buf. Skips Visible=false or
// Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.Width != 0 || n.Height != 0 {
		buf = append(buf, n)
	}
	for _, child := range n.paintOrder() {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at screen point (sx, sy).
// Returns nil if nothing is hit.
func (e *Editor) hitTest(sx, sy float64) *Node {
	e.hitBuf = collectInteractable(e.root, e.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(e.hitBuf) - 1; i >= 0; i-- {
		n := e.hitBuf[i]
		lx, ly := transformPoint(invertAffine(n.worldTransform), sx, sy)
		if e.nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// processInput is called from Editor.Update to handle all pointer input.
// Injected events take the place of real input for the frame they are
// consumed in, and real input is ignored while a gesture script runs.
func (e *Editor) processInput() {
	if e.processInjectedInput() {
		return
	}
	if e.script != nil && !e.script.Done() {
		return
	}
	mods := readModifiers()
	e.processMousePointer(mods)
	e.processTouchPointers(mods)
	e.processWheel()
}

// processMousePointer handles mouse input (pointer 0).
func (e *Editor) processMousePointer(mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()
	pressed, button := mouseButtonState(&e.pointers[0],
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle))
	e.processPointer(0, float64(mx), float64(my), pressed, button, mods)
}

// mouseButtonState reduces the three mouse buttons to the pressed state and
// button processPointer expects. A pointer that went down with a button
// counts as released once that button is up, even while another is held.
func mouseButtonState(ps *pointerState, left, right, middle bool) (bool, MouseButton) {
	if ps.down {
		switch ps.button {
		case MouseButtonLeft:
			return left, ps.button
		case MouseButtonRight:
			return right, ps.button
		default:
			return middle, ps.button
		}
	}
	switch {
	case left:
		return true, MouseButtonLeft
	case right:
		return true, MouseButtonRight
	case middle:
		return true, MouseButtonMiddle
	}
	return false, MouseButtonLeft
}

// processTouchPointers handles touch input (pointers 1-9).
func (e *Editor) processTouchPointers(mods KeyModifiers) {
	touchIDs := ebiten.AppendTouchIDs(e.prevTouchIDs[:0])
	e.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := e.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		e.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft, mods)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if e.touchUsed[i] && !activeSlots[i] {
			ps := &e.pointers[i]
			if ps.down {
				e.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft, mods)
			}
			e.touchUsed[i] = false
			e.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (e *Editor) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if e.touchUsed[i] && e.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !e.touchUsed[i] {
			e.touchUsed[i] = true
			e.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processWheel zooms around the cursor.
func (e *Editor) processWheel() {
	_, wy := ebiten.Wheel()
	if wy == 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	e.viewport.ZoomAt(float64(mx), float64(my), math.Pow(e.config.ZoomStep, wy))
}

// processPointer runs the pointer state machine for a single pointer.
// (sx, sy) is in screen space.
func (e *Editor) processPointer(pointerID int, sx, sy float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &e.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.mods = mods
		ps.lastX = sx
		ps.lastY = sy
		ps.mode = pointerIdle
		ps.node = nil
		e.pointerPressed(pointerID, ps, sx, sy)
	case !pressed && ps.down:
		e.pointerReleased(pointerID, ps)
		ps.down = false
	case pressed && ps.down:
		ps.mods = mods
		if sx != ps.lastX || sy != ps.lastY {
			e.pointerMoved(pointerID, ps, sx, sy)
		}
		ps.lastX = sx
		ps.lastY = sy
	}
}

// pointerPressed routes a press to a resize handle, a node drag, or a canvas
// pan.
func (e *Editor) pointerPressed(pointerID int, ps *pointerState, sx, sy float64) {
	target := e.captured[pointerID]
	if target == nil {
		target = e.hitTest(sx, sy)
	}
	if target == nil {
		if ps.button == MouseButtonLeft {
			e.ClearSelection()
		} else {
			ps.mode = pointerPan
		}
		return
	}

	if target.OnPointerDown != nil {
		lx, ly := target.WorldToLocal(sx, sy)
		target.OnPointerDown(PointerContext{
			Node: target, UserData: target.UserData,
			GlobalX: sx, GlobalY: sy, LocalX: lx, LocalY: ly,
			Button: ps.button, PointerID: pointerID, Modifiers: ps.mods,
		})
	}

	owner := draggableAncestor(target)
	if owner == nil || owner.drag == nil {
		return
	}

	if ps.button == MouseButtonLeft && owner.resize != nil && !blockedByControl(owner, target) {
		lx, ly := owner.WorldToLocal(sx, sy)
		if c, ok := e.handleAt(owner, lx, ly); ok {
			start, ok := PointerToCanvas(owner, sx, sy)
			if ok && owner.resize.Start(c, Vec2{}) {
				e.SelectNode(owner)
				e.CapturePointer(pointerID, owner)
				ps.mode = pointerResize
				ps.node = owner
				ps.corner = c
				ps.lastCanvas = start
			}
			return
		}
	}

	if owner.drag.Start(PointerEvent{
		PointerID: pointerID, X: sx, Y: sy,
		Button: ps.button, Modifiers: ps.mods, Target: target,
	}) {
		ps.mode = pointerDrag
		ps.node = owner
	}
}

// pointerMoved feeds a held pointer's new position to its gesture.
func (e *Editor) pointerMoved(pointerID int, ps *pointerState, sx, sy float64) {
	switch ps.mode {
	case pointerDrag:
		ps.node.drag.Update(PointerEvent{
			PointerID: pointerID, X: sx, Y: sy,
			Button: ps.button, Modifiers: ps.mods,
		})
	case pointerResize:
		cur, ok := PointerToCanvas(ps.node, sx, sy)
		if !ok {
			return
		}
		ps.node.resize.Update(ps.corner, cur.Sub(ps.lastCanvas))
		ps.lastCanvas = cur
	case pointerPan:
		e.viewport.PanBy(sx-ps.lastX, sy-ps.lastY)
	}
}

// pointerReleased completes the pointer's gesture and auto-releases capture.
func (e *Editor) pointerReleased(pointerID int, ps *pointerState) {
	switch ps.mode {
	case pointerDrag:
		ps.node.drag.Complete()
	case pointerResize:
		ps.node.resize.Complete()
	}
	e.captured[pointerID] = nil
	ps.mode = pointerIdle
	ps.node = nil
}

// autoPan scrolls the viewport while a dragging pointer is held near its
// edge. The pointer is re-fed so the node follows it in canvas space, then
// an AutoPanEvent is emitted.
func (e *Editor) autoPan(dt float64) {
	for id := range e.pointers {
		ps := &e.pointers[id]
		if !ps.down || ps.mode != pointerDrag {
			continue
		}
		dx, dy := e.viewport.edgeDirection(ps.lastX, ps.lastY, e.config.AutoPanMargin)
		if dx == 0 && dy == 0 {
			continue
		}
		step := e.config.AutoPanSpeed * dt
		panX, panY := -dx*step, -dy*step
		e.viewport.PanBy(panX, panY)
		ps.node.drag.Update(PointerEvent{
			PointerID: id, X: ps.lastX, Y: ps.lastY,
			Button: ps.button, Modifiers: ps.mods,
		})
		e.notifier.NotifyAutoPan(AutoPanEvent{Node: ps.node, DeltaX: panX, DeltaY: panY})
	}
}
