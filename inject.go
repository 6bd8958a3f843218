package nodeflow

// syntheticPointerEvent represents a single injected pointer event in
// screen coordinates, or a capture loss when captureLost is set.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
	button           MouseButton
	mods             KeyModifiers
	captureLost      bool
}

// InjectModifiers sets the modifier keys reported with every event queued
// after this call. Pass 0 to release them.
func (e *Editor) InjectModifiers(mods KeyModifiers) {
	e.injectMods = mods
}

// InjectPress queues a pointer press event at the given screen coordinates
// (left button). The event is consumed on the next frame's processInput call.
func (e *Editor) InjectPress(x, y float64) {
	e.InjectPressButton(x, y, MouseButtonLeft)
}

// InjectPressButton queues a press of the given button.
func (e *Editor) InjectPressButton(x, y float64, button MouseButton) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  button,
		mods:    e.injectMods,
	})
}

// InjectMove queues a pointer move event at the given screen coordinates
// with the button held down. Use this between InjectPress and InjectRelease
// to simulate a drag.
func (e *Editor) InjectMove(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  MouseButtonLeft,
		mods:    e.injectMods,
	})
}

// InjectRelease queues a pointer release event at the given screen coordinates.
func (e *Editor) InjectRelease(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: false,
		button:  MouseButtonLeft,
		mods:    e.injectMods,
	})
}

// InjectCaptureLost queues a loss of the mouse pointer's capture, as if the
// platform cancelled the gesture.
func (e *Editor) InjectCaptureLost() {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{captureLost: true})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (e *Editor) InjectClick(x, y float64) {
	e.InjectPress(x, y)
	e.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// frames-2 linearly interpolated moves ending at (toX, toY), and a release
// there. The total sequence consumes `frames` frames. Minimum frames is 2
// (press + release), which moves nothing.
func (e *Editor) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	e.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		e.InjectMove(x, y)
	}
	e.InjectRelease(toX, toY)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer as pointer 0. Returns true if an event was
// consumed (real input should be skipped).
func (e *Editor) processInjectedInput() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	evt := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	if evt.captureLost {
		e.ReleaseCapture(0)
		return true
	}
	e.processPointer(0, evt.screenX, evt.screenY, evt.pressed, evt.button, evt.mods)
	return true
}
