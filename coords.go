package nodeflow

// CanvasFrame returns the node whose local space gesture math runs in: the
// rendering parent of the node's logical parent. For a graph node added with
// Editor.AddNode this is the editor's canvas layer, which carries zoom and
// pan but none of the node-local transforms (including a resize offset).
// Returns nil if the node is not attached deeply enough.
func CanvasFrame(n *Node) *Node {
	if n == nil || n.Parent == nil {
		return nil
	}
	return n.Parent.Parent
}

// PointerToCanvas converts a world (screen) point into the canvas frame of n.
// The second result is false when the frame cannot be resolved.
func PointerToCanvas(n *Node, wx, wy float64) (Vec2, bool) {
	frame := CanvasFrame(n)
	if frame == nil {
		return Vec2{}, false
	}
	x, y := frame.WorldToLocal(wx, wy)
	return Vec2{x, y}, true
}
