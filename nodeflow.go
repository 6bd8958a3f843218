package nodeflow

import "image/color"

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key; suppresses alignment while dragging
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Has reports whether all modifiers in m are held.
func (k KeyModifiers) Has(m KeyModifiers) bool {
	return k&m == m
}

// GestureState is the single authoritative interaction state of a node.
// A gesture can only start from GestureIdle.
type GestureState uint8

const (
	GestureIdle     GestureState = iota // no gesture in progress
	GestureDragging                     // move gesture owned by DragController
	GestureResizing                     // resize gesture owned by ResizeController
)

// String returns a lowercase name used in log output.
func (g GestureState) String() string {
	switch g {
	case GestureIdle:
		return "idle"
	case GestureDragging:
		return "dragging"
	case GestureResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// Corner identifies one of the four resize handles of a node.
type Corner uint8

const (
	CornerTopLeft     Corner = iota // anchor is the bottom-right corner
	CornerTopRight                  // anchor is the bottom-left corner
	CornerBottomLeft                // anchor is the top-right corner
	CornerBottomRight               // anchor is the top-left corner
)

// String returns a kebab-case name used in log output and scripts.
func (c Corner) String() string {
	switch c {
	case CornerTopLeft:
		return "top-left"
	case CornerTopRight:
		return "top-right"
	case CornerBottomLeft:
		return "bottom-left"
	case CornerBottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of editor event.
type EventType uint8

const (
	EventLocationChanged EventType = iota // a node's location changed or a gesture finished
	EventAutoPan                          // the viewport scrolled while a node was dragged
)
