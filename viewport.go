package nodeflow

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the layer translation.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport owns zoom and pan of the canvas layer. Zoom is the layer's scale
// and pan its translation, so canvas space is the layer's local space.
type Viewport struct {
	layer *Node

	// Screen is the screen-space rectangle the canvas is shown in.
	Screen Rect

	MinZoom, MaxZoom float64

	scrollTween *scrollAnim
}

// newViewport creates a Viewport driving layer.
func newViewport(layer *Node, minZoom, maxZoom float64) *Viewport {
	return &Viewport{layer: layer, MinZoom: minZoom, MaxZoom: maxZoom}
}

// Zoom returns the current scale factor (1.0 = no zoom).
func (v *Viewport) Zoom() float64 {
	return v.layer.ScaleX
}

// Pan returns the screen position of the canvas origin.
func (v *Viewport) Pan() Vec2 {
	return Vec2{v.layer.X, v.layer.Y}
}

// SetPan places the canvas origin at screen position (x, y) and cancels any
// scroll animation.
func (v *Viewport) SetPan(x, y float64) {
	v.scrollTween = nil
	v.layer.SetLocation(x, y)
}

// PanBy shifts the canvas by (dx, dy) screen pixels.
func (v *Viewport) PanBy(dx, dy float64) {
	v.scrollTween = nil
	v.layer.SetLocation(v.layer.X+dx, v.layer.Y+dy)
}

// SetZoom sets the zoom, clamped to [MinZoom, MaxZoom], keeping the canvas
// point under the viewport center fixed.
func (v *Viewport) SetZoom(z float64) {
	cx := v.Screen.X + v.Screen.Width/2
	cy := v.Screen.Y + v.Screen.Height/2
	v.zoomAround(cx, cy, z)
}

// ZoomAt multiplies the zoom by factor, keeping the canvas point under the
// screen position (sx, sy) fixed.
func (v *Viewport) ZoomAt(sx, sy, factor float64) {
	v.zoomAround(sx, sy, v.Zoom()*factor)
}

func (v *Viewport) zoomAround(sx, sy, z float64) {
	z = math.Max(v.MinZoom, math.Min(z, v.MaxZoom))
	cx, cy := v.ScreenToCanvas(sx, sy)
	v.layer.SetScale(z, z)
	// Re-anchor so (cx, cy) maps back to (sx, sy).
	v.layer.SetLocation(sx-cx*z, sy-cy*z)
}

// ScrollTo animates the pan so that canvas point (x, y) ends up at the
// viewport center after duration seconds.
func (v *Viewport) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	z := v.Zoom()
	tx := v.Screen.X + v.Screen.Width/2 - x*z
	ty := v.Screen.Y + v.Screen.Height/2 - y*z
	v.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(v.layer.X), float32(tx), duration, easeFn),
		tweenY: gween.New(float32(v.layer.Y), float32(ty), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is running.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// update advances the scroll animation. Called from Editor.Update.
func (v *Viewport) update(dt float32) {
	if v.scrollTween == nil {
		return
	}
	x, y := v.layer.X, v.layer.Y
	if !v.scrollTween.doneX {
		val, done := v.scrollTween.tweenX.Update(dt)
		x = float64(val)
		v.scrollTween.doneX = done
	}
	if !v.scrollTween.doneY {
		val, done := v.scrollTween.tweenY.Update(dt)
		y = float64(val)
		v.scrollTween.doneY = done
	}
	v.layer.SetLocation(x, y)
	if v.scrollTween.doneX && v.scrollTween.doneY {
		v.scrollTween = nil
	}
}

// ScreenToCanvas converts screen coordinates to canvas coordinates.
func (v *Viewport) ScreenToCanvas(sx, sy float64) (cx, cy float64) {
	return v.layer.WorldToLocal(sx, sy)
}

// CanvasToScreen converts canvas coordinates to screen coordinates.
func (v *Viewport) CanvasToScreen(cx, cy float64) (sx, sy float64) {
	return v.layer.LocalToWorld(cx, cy)
}

// VisibleBounds returns the canvas-space rectangle currently on screen.
func (v *Viewport) VisibleBounds() Rect {
	x0, y0 := v.ScreenToCanvas(v.Screen.X, v.Screen.Y)
	x1, y1 := v.ScreenToCanvas(v.Screen.X+v.Screen.Width, v.Screen.Y+v.Screen.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// edgeDirection returns -1, 0 or 1 per axis for a screen point that lies
// within margin pixels of the viewport's left/top or right/bottom border.
func (v *Viewport) edgeDirection(sx, sy, margin float64) (dx, dy float64) {
	if margin <= 0 || v.Screen.Width <= 0 || v.Screen.Height <= 0 {
		return 0, 0
	}
	switch {
	case sx < v.Screen.X+margin:
		dx = -1
	case sx > v.Screen.X+v.Screen.Width-margin:
		dx = 1
	}
	switch {
	case sy < v.Screen.Y+margin:
		dy = -1
	case sy > v.Screen.Y+v.Screen.Height-margin:
		dy = 1
	}
	return dx, dy
}
