package nodeflow

import "sort"

// PointerContext carries pointer event data for per-node callbacks.
type PointerContext struct {
	Node      *Node
	UserData  any
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	PointerID int
	Modifiers KeyModifiers
}

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic; nodeflow is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

const (
	defaultMinWidth  = 20
	defaultMinHeight = 20
)

// --- Node ---

// Node is the scene graph element. Graph nodes, their embedded widgets and
// the editor's layers all share this one flat struct.
//
// For a graph node, X and Y are its logical Location in canvas space. The
// rendered position additionally includes OffsetX/OffsetY, which only a
// resize gesture writes.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y             float64
	ScaleX, ScaleY   float64
	OffsetX, OffsetY float64

	// Size in local units. Zero-sized nodes are not hit-testable.
	Width, Height       float64
	MinWidth, MinHeight float64

	// Computed (unexported, refreshed by Editor.Update)
	worldTransform [6]float64
	transformDirty bool

	// Visibility & interaction
	Visible      bool
	Interactable bool
	Selected     bool
	Resizable    bool
	// Draggable marks a graph node: presses on it or its descendants move it.
	Draggable bool
	// BlocksDrag marks an embedded control (dropdown, text field). Presses on
	// it or anything inside it never start a node drag.
	BlocksDrag bool

	// Appearance
	Color  Color
	ZIndex int

	// Metadata
	UserData any

	// Gesture state, owned by the controllers below.
	gesture GestureState
	drag    *DragController
	resize  *ResizeController

	autoPanHandle CallbackHandle

	// Per-node callbacks (nil by default)
	OnPointerDown     func(PointerContext)
	OnLocationChanged func(LocationEvent)

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Color = ColorWhite
	n.Visible = true
	n.transformDirty = true
	n.childrenSorted = true
	n.worldTransform = identityTransform
}

// NewContainer creates a grouping node with no size and no visual output.
func NewContainer(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// NewNode creates a draggable graph node of the given size. Attach it to an
// editor with Editor.AddNode.
func NewNode(name string, width, height float64) *Node {
	n := &Node{
		Name:         name,
		Width:        width,
		Height:       height,
		MinWidth:     defaultMinWidth,
		MinHeight:    defaultMinHeight,
		Interactable: true,
		Draggable:    true,
	}
	nodeDefaults(n)
	return n
}

// NewWidget creates an interactable child element (header, port, dropdown)
// positioned in its parent's local space.
func NewWidget(name string, width, height float64) *Node {
	n := &Node{
		Name:         name,
		Width:        width,
		Height:       height,
		Interactable: true,
	}
	nodeDefaults(n)
	return n
}

// --- Geometry ---

// Location returns the node's logical position.
func (n *Node) Location() Vec2 {
	return Vec2{n.X, n.Y}
}

// Size returns the node's width and height.
func (n *Node) Size() Vec2 {
	return Vec2{n.Width, n.Height}
}

// SetSize sets Width and Height. Descendants do not depend on the size, so
// the transform stays clean.
func (n *Node) SetSize(w, h float64) {
	n.Width = w
	n.Height = h
}

// Bounds returns the logical rectangle in the parent's space. The visual
// offset is not included.
func (n *Node) Bounds() Rect {
	return Rect{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
}

// Gesture returns the node's current gesture state.
func (n *Node) Gesture() GestureState {
	return n.gesture
}

// Drag returns the node's move controller, or nil if the node has not been
// added to an editor.
func (n *Node) Drag() *DragController {
	return n.drag
}

// Resize returns the node's resize controller, or nil if the node has not
// been added to an editor.
func (n *Node) Resize() *ResizeController {
	return n.resize
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("nodeflow: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("nodeflow: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("nodeflow: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// paintOrder returns the children sorted by ZIndex, stable in insertion order.
func (n *Node) paintOrder() []*Node {
	if n.childrenSorted && n.sortedChildren != nil {
		return n.sortedChildren
	}
	n.sortedChildren = append(n.sortedChildren[:0], n.children...)
	sort.SliceStable(n.sortedChildren, func(i, j int) bool {
		return n.sortedChildren[i].ZIndex < n.sortedChildren[j].ZIndex
	})
	n.childrenSorted = true
	return n.sortedChildren
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.drag = nil
	n.resize = nil
	n.UserData = nil
	n.OnPointerDown = nil
	n.OnLocationChanged = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
