// Package nodeflow is the interaction core of a node-graph editor built on
// [Ebitengine].
//
// It turns pointer motion into node moves, four-corner node resizes,
// alignment snapping and viewport auto-panning, while keeping every node's
// Location in canvas space no matter how the canvas is zoomed or panned.
//
// # Quick start
//
//	ed := nodeflow.NewEditor(nodeflow.DefaultEditorConfig())
//	n := nodeflow.NewNode("add", 160, 90)
//	n.Resizable = true
//	n.SetLocation(40, 40)
//	ed.AddNode(n)
//	ed.OnLocationChanged(func(evt nodeflow.LocationEvent) {
//		if evt.Final {
//			save(evt.Node, evt.Location)
//		}
//	})
//	nodeflow.Run(ed, nodeflow.RunConfig{Title: "graph"})
//
// # Layers and coordinates
//
// An [Editor] owns three layers: the screen-space root, the canvas layer
// whose scale and translation are the zoom and pan, and the items layer
// holding graph nodes. Gesture math runs in the local space of a node's
// grandparent ([CanvasFrame]), so node-local transforms never leak into it.
//
// # Gestures
//
// Each graph node has one [GestureState]. A [DragController] moves the
// node; Shift bypasses snapping. A [ResizeController] resizes it from any
// corner handle, showing the move of the anchor as a visual offset and
// committing Location once when the handle is released. Both emit
// [LocationEvent] values through the editor's [GestureNotifier]; the last
// event of every gesture has Final set.
//
// The controllers talk to their owner only through [Canvas], so they can be
// driven directly by any input layer.
//
// [Ebitengine]: https://ebitengine.org
package nodeflow
