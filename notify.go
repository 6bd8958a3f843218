package nodeflow

import "slices"

// LocationEvent is emitted after every gesture step that changes, or may
// change, a node's observable position. Final is true only when a gesture
// completes or is cancelled by capture loss.
type LocationEvent struct {
	Node     *Node
	Location Vec2
	Final    bool
}

// AutoPanEvent is emitted when the viewport scrolls because the pointer
// dragging Node is held near a viewport edge.
type AutoPanEvent struct {
	Node   *Node
	DeltaX float64
	DeltaY float64
}

type locationHandler struct {
	id uint32
	fn func(LocationEvent)
}

type autoPanHandler struct {
	id uint32
	fn func(AutoPanEvent)
}

// GestureNotifier fans out location and auto-pan events to registered
// callbacks. The zero value is ready to use.
type GestureNotifier struct {
	location []locationHandler
	autoPan  []autoPanHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *GestureNotifier
	event EventType
}

// Remove unregisters this callback so it no longer fires. The handler list
// is copied, so a Notify already in progress still sees every handler once.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventLocationChanged:
		for i := range h.reg.location {
			if h.reg.location[i].id == h.id {
				h.reg.location = slices.Delete(slices.Clone(h.reg.location), i, i+1)
				return
			}
		}
	case EventAutoPan:
		for i := range h.reg.autoPan {
			if h.reg.autoPan[i].id == h.id {
				h.reg.autoPan = slices.Delete(slices.Clone(h.reg.autoPan), i, i+1)
				return
			}
		}
	}
}

// OnLocationChanged registers a callback for location events of any node.
func (g *GestureNotifier) OnLocationChanged(fn func(LocationEvent)) CallbackHandle {
	g.nextID++
	g.location = append(g.location, locationHandler{id: g.nextID, fn: fn})
	return CallbackHandle{id: g.nextID, reg: g, event: EventLocationChanged}
}

// OnAutoPan registers a callback for auto-pan events.
func (g *GestureNotifier) OnAutoPan(fn func(AutoPanEvent)) CallbackHandle {
	g.nextID++
	g.autoPan = append(g.autoPan, autoPanHandler{id: g.nextID, fn: fn})
	return CallbackHandle{id: g.nextID, reg: g, event: EventAutoPan}
}

// Notify emits a location event for n carrying loc. Notifier-level handlers
// run first, then the node's own OnLocationChanged. A nil notifier still
// delivers to the node callback.
func (g *GestureNotifier) Notify(n *Node, loc Vec2, final bool) {
	evt := LocationEvent{Node: n, Location: loc, Final: final}
	if g != nil {
		for _, h := range g.location {
			h.fn(evt)
		}
	}
	if n != nil && n.OnLocationChanged != nil {
		n.OnLocationChanged(evt)
	}
}

// NotifyAutoPan emits an auto-pan event.
func (g *GestureNotifier) NotifyAutoPan(evt AutoPanEvent) {
	if g == nil {
		return
	}
	for _, h := range g.autoPan {
		h.fn(evt)
	}
}
