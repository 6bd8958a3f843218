package nodeflow

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// commandType identifies the kind of a draw command.
type commandType uint8

const (
	commandFill    commandType = iota // node body
	commandOutline                    // selection frame
	commandHandle                     // resize handle
	commandGuide                      // alignment guide
)

// drawCommand is one solid rectangle in screen space.
type drawCommand struct {
	Type  commandType
	Node  *Node
	Rect  Rect
	Color Color
}

var (
	selectionColor = Color{R: 0.35, G: 0.65, B: 1, A: 1}
	handleColor    = Color{R: 1, G: 1, B: 1, A: 1}
	guideColor     = Color{R: 1, G: 0.4, B: 0.7, A: 0.9}
)

const (
	outlineWidth = 2.0 // pixels
	guideWidth   = 1.0 // pixels
)

// whitePixel is a 1x1 white image scaled and tinted to draw every rectangle.
// Created on first Draw so that constructing an editor needs no graphics.
var whitePixel *ebiten.Image

// Draw renders the canvas: node bodies in painter order, then selection
// frames, resize handles and alignment guides on top.
func (e *Editor) Draw(screen *ebiten.Image) {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	screen.Fill(e.ClearColor.toRGBA())

	updateWorldTransform(e.root, identityTransform, false)
	var op ebiten.DrawImageOptions
	for _, cmd := range e.buildCommands(nil) {
		if cmd.Rect.Width <= 0 || cmd.Rect.Height <= 0 {
			continue
		}
		op.GeoM.Reset()
		op.GeoM.Scale(cmd.Rect.Width, cmd.Rect.Height)
		op.GeoM.Translate(cmd.Rect.X, cmd.Rect.Y)
		op.ColorScale.Reset()
		a := float32(cmd.Color.A)
		op.ColorScale.Scale(float32(cmd.Color.R)*a, float32(cmd.Color.G)*a, float32(cmd.Color.B)*a, a)
		screen.DrawImage(whitePixel, &op)
	}
}

// buildCommands appends the frame's draw commands to buf. World transforms
// must be current.
func (e *Editor) buildCommands(buf []drawCommand) []drawCommand {
	buf = appendNodeCommands(e.items, e.viewport.Screen, buf)

	for _, n := range e.selected {
		if !n.Visible {
			continue
		}
		r := screenRect(n)
		buf = append(buf,
			drawCommand{Type: commandOutline, Node: n, Color: selectionColor,
				Rect: Rect{X: r.X - outlineWidth, Y: r.Y - outlineWidth, Width: r.Width + 2*outlineWidth, Height: outlineWidth}},
			drawCommand{Type: commandOutline, Node: n, Color: selectionColor,
				Rect: Rect{X: r.X - outlineWidth, Y: r.Y + r.Height, Width: r.Width + 2*outlineWidth, Height: outlineWidth}},
			drawCommand{Type: commandOutline, Node: n, Color: selectionColor,
				Rect: Rect{X: r.X - outlineWidth, Y: r.Y, Width: outlineWidth, Height: r.Height}},
			drawCommand{Type: commandOutline, Node: n, Color: selectionColor,
				Rect: Rect{X: r.X + r.Width, Y: r.Y, Width: outlineWidth, Height: r.Height}},
		)
		if !n.Resizable {
			continue
		}
		for _, c := range [...]Corner{CornerTopLeft, CornerTopRight, CornerBottomLeft, CornerBottomRight} {
			h := handleRect(n, c, e.config.HandleSize)
			x0, y0 := transformPoint(n.worldTransform, h.X, h.Y)
			x1, y1 := transformPoint(n.worldTransform, h.X+h.Width, h.Y+h.Height)
			buf = append(buf, drawCommand{Type: commandHandle, Node: n, Color: handleColor,
				Rect: Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}})
		}
	}

	for _, g := range e.aligner.Guides() {
		var r Rect
		if g.Vertical {
			x, y0 := e.viewport.CanvasToScreen(g.Pos, g.From)
			_, y1 := e.viewport.CanvasToScreen(g.Pos, g.To)
			r = Rect{X: x - guideWidth/2, Y: y0, Width: guideWidth, Height: y1 - y0}
		} else {
			x0, y := e.viewport.CanvasToScreen(g.From, g.Pos)
			x1, _ := e.viewport.CanvasToScreen(g.To, g.Pos)
			r = Rect{X: x0, Y: y - guideWidth/2, Width: x1 - x0, Height: guideWidth}
		}
		buf = append(buf, drawCommand{Type: commandGuide, Color: guideColor, Rect: r})
	}
	return buf
}

// appendNodeCommands emits fills for n's visible descendants in painter
// order. Fills entirely outside view are culled; an empty view culls nothing.
func appendNodeCommands(n *Node, view Rect, buf []drawCommand) []drawCommand {
	cull := view.Width > 0 && view.Height > 0
	for _, child := range n.paintOrder() {
		if !child.Visible {
			continue
		}
		if child.Width > 0 && child.Height > 0 {
			r := screenRect(child)
			if !cull || r.Intersects(view) {
				buf = append(buf, drawCommand{Type: commandFill, Node: child, Color: child.Color, Rect: r})
			}
		}
		buf = appendNodeCommands(child, view, buf)
	}
	return buf
}

// screenRect returns the node's rendered rectangle in screen space,
// including its visual offset.
func screenRect(n *Node) Rect {
	x0, y0 := transformPoint(n.worldTransform, 0, 0)
	x1, y1 := transformPoint(n.worldTransform, n.Width, n.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
