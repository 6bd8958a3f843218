package nodeflow

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func newTestViewport() *Viewport {
	v := newViewport(NewContainer("canvas"), 0.5, 4)
	v.Screen = Rect{Width: 800, Height: 600}
	return v
}

func TestViewportZoomAtKeepsAnchor(t *testing.T) {
	v := newTestViewport()
	v.ZoomAt(200, 100, 2)

	assertNear(t, "zoom", v.Zoom(), 2)
	sx, sy := v.CanvasToScreen(200, 100)
	assertNear(t, "sx", sx, 200)
	assertNear(t, "sy", sy, 100)
	if v.Pan() != (Vec2{-200, -100}) {
		t.Errorf("Pan = %v, want (-200, -100)", v.Pan())
	}
}

func TestViewportZoomClamped(t *testing.T) {
	v := newTestViewport()
	v.ZoomAt(0, 0, 100)
	assertNear(t, "max", v.Zoom(), 4)
	v.SetZoom(0.01)
	assertNear(t, "min", v.Zoom(), 0.5)
}

func TestViewportSetZoomAroundCenter(t *testing.T) {
	v := newTestViewport()
	cx, cy := v.ScreenToCanvas(400, 300)
	v.SetZoom(2)
	sx, sy := v.CanvasToScreen(cx, cy)
	assertNear(t, "sx", sx, 400)
	assertNear(t, "sy", sy, 300)
}

func TestViewportScreenCanvasRoundTrip(t *testing.T) {
	v := newTestViewport()
	v.SetPan(30, -20)
	v.ZoomAt(100, 100, 1.5)
	cx, cy := v.ScreenToCanvas(321, 123)
	sx, sy := v.CanvasToScreen(cx, cy)
	assertNear(t, "sx", sx, 321)
	assertNear(t, "sy", sy, 123)
}

func TestViewportVisibleBounds(t *testing.T) {
	v := newTestViewport()
	v.ZoomAt(0, 0, 2)
	b := v.VisibleBounds()
	assertNear(t, "w", b.Width, 400)
	assertNear(t, "h", b.Height, 300)
	assertNear(t, "x", b.X, 0)
}

func TestViewportScrollTo(t *testing.T) {
	v := newTestViewport()
	v.ScrollTo(100, 100, 1, ease.Linear)
	if !v.Scrolling() {
		t.Fatal("ScrollTo should start scrolling")
	}

	v.update(0.5)
	assertNear(t, "mid x", v.Pan().X, 150)
	assertNear(t, "mid y", v.Pan().Y, 100)

	v.update(0.5)
	assertNear(t, "end x", v.Pan().X, 300)
	assertNear(t, "end y", v.Pan().Y, 200)
	if v.Scrolling() {
		t.Error("scroll should be finished")
	}
}

func TestViewportPanCancelsScroll(t *testing.T) {
	v := newTestViewport()
	v.ScrollTo(100, 100, 1, ease.Linear)
	v.PanBy(5, 5)
	if v.Scrolling() {
		t.Error("PanBy should cancel scrolling")
	}
	if v.Pan() != (Vec2{5, 5}) {
		t.Errorf("Pan = %v, want (5, 5)", v.Pan())
	}
}

func TestViewportEdgeDirection(t *testing.T) {
	v := newTestViewport()
	tests := []struct {
		x, y   float64
		dx, dy float64
	}{
		{400, 300, 0, 0},
		{10, 300, -1, 0},
		{790, 590, 1, 1},
		{400, 5, 0, -1},
	}
	for _, tt := range tests {
		dx, dy := v.edgeDirection(tt.x, tt.y, 24)
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("edgeDirection(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, dx, dy, tt.dx, tt.dy)
		}
	}
	if dx, dy := v.edgeDirection(1, 1, 0); dx != 0 || dy != 0 {
		t.Error("zero margin should disable edge detection")
	}
}
