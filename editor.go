package nodeflow

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Editor is the node-graph canvas. It owns the layer tree, selection,
// alignment, the viewport and pointer routing, and implements Canvas for
// the gesture controllers of every node added to it.
//
// Layers:
//
//	root (screen space)
//	└── canvas (zoom/pan; canvas space)
//	    └── items
//	        └── graph nodes
type Editor struct {
	root   *Node
	canvas *Node
	items  *Node

	config   EditorConfig
	viewport *Viewport
	notifier GestureNotifier
	aligner  Aligner
	selected []*Node

	// ClearColor fills the screen before drawing.
	ClearColor Color

	// Input state
	captured     [maxPointers]*Node
	pointers     [maxPointers]pointerState
	hitBuf       []*Node
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	injectQueue []syntheticPointerEvent
	injectMods  KeyModifiers
	script      *ScriptRunner

	debug bool
}

// NewEditor creates an editor with the given settings. An invalid config is
// replaced by DefaultEditorConfig and the problem is logged.
func NewEditor(cfg EditorConfig) *Editor {
	if err := cfg.Validate(); err != nil {
		logger.Warn("invalid editor config, using defaults", "err", err)
		cfg = DefaultEditorConfig()
	}
	root := NewContainer("root")
	canvas := NewContainer("canvas")
	items := NewContainer("items")
	for _, layer := range []*Node{root, canvas, items} {
		layer.Interactable = true
	}
	root.AddChild(canvas)
	canvas.AddChild(items)

	e := &Editor{
		root:       root,
		canvas:     canvas,
		items:      items,
		config:     cfg,
		ClearColor: Color{R: 0.11, G: 0.11, B: 0.13, A: 1},
	}
	e.viewport = newViewport(canvas, cfg.MinZoom, cfg.MaxZoom)
	return e
}

// Root returns the screen-space root node.
func (e *Editor) Root() *Node { return e.root }

// Canvas returns the zoom/pan layer; its local space is canvas space.
func (e *Editor) Canvas() *Node { return e.canvas }

// Items returns the layer that holds graph nodes.
func (e *Editor) Items() *Node { return e.items }

// Viewport returns the editor's viewport.
func (e *Editor) Viewport() *Viewport { return e.viewport }

// Config returns the editor's settings.
func (e *Editor) Config() EditorConfig { return e.config }

// Notifier returns the editor's event fan-out.
func (e *Editor) Notifier() *GestureNotifier { return &e.notifier }

// --- Nodes ---

// AddNode attaches a graph node to the items layer and wires its gesture
// controllers to this editor. Nodes without a minimum size get the
// configured one. Adding a node that already belongs to an editor is a no-op.
func (e *Editor) AddNode(n *Node) {
	if n.drag != nil {
		return
	}
	if n.MinWidth == 0 {
		n.MinWidth = e.config.MinNodeWidth
	}
	if n.MinHeight == 0 {
		n.MinHeight = e.config.MinNodeHeight
	}
	n.Draggable = true
	n.Interactable = true
	e.items.AddChild(n)
	n.drag = NewDragController(n, e, &e.notifier)
	n.resize = NewResizeController(n, &e.notifier)
	drag := n.drag
	n.autoPanHandle = e.notifier.OnAutoPan(func(evt AutoPanEvent) {
		drag.AutoPanned(evt.Node)
	})
}

// RemoveNode detaches n. A gesture running on n is finalized first.
func (e *Editor) RemoveNode(n *Node) {
	if n.Parent != e.items {
		return
	}
	for id := range e.captured {
		if e.captured[id] == n {
			e.ReleaseCapture(id)
		}
	}
	e.deselect(n)
	n.autoPanHandle.Remove()
	n.autoPanHandle = CallbackHandle{}
	e.items.RemoveChild(n)
	n.drag = nil
	n.resize = nil
}

// Nodes returns the graph nodes in insertion order.
func (e *Editor) Nodes() []*Node {
	return e.items.Children()
}

// --- Selection ---

// SelectNode makes n the only selected node. Idempotent.
func (e *Editor) SelectNode(n *Node) {
	if len(e.selected) == 1 && e.selected[0] == n {
		return
	}
	e.ClearSelection()
	n.Selected = true
	e.selected = append(e.selected, n)
	logger.Debug("node selected", "node", n.Name)
}

// ClearSelection deselects every node.
func (e *Editor) ClearSelection() {
	for _, s := range e.selected {
		s.Selected = false
	}
	e.selected = e.selected[:0]
}

// Selected returns the selected nodes. The returned slice MUST NOT be mutated.
func (e *Editor) Selected() []*Node {
	return e.selected
}

func (e *Editor) deselect(n *Node) {
	for i, s := range e.selected {
		if s == n {
			n.Selected = false
			e.selected = append(e.selected[:i], e.selected[i+1:]...)
			return
		}
	}
}

// --- Alignment ---

// TryAlignNode snaps candidate to the edges of the other graph nodes. The
// snap distance is configured in screen pixels and converted with the
// current zoom.
func (e *Editor) TryAlignNode(n *Node, candidate Vec2) Vec2 {
	if !e.config.Alignment {
		return candidate
	}
	return e.aligner.Align(n, candidate, e.items.Children(), e.config.SnapDistance/e.viewport.Zoom())
}

// ClearAlignmentGuides hides the alignment guides.
func (e *Editor) ClearAlignmentGuides() {
	e.aligner.Clear()
}

// Guides returns the alignment guides currently displayed, in canvas space.
func (e *Editor) Guides() []Guide {
	return e.aligner.Guides()
}

// --- Events ---

// OnLocationChanged registers a callback for location events of all nodes.
func (e *Editor) OnLocationChanged(fn func(LocationEvent)) CallbackHandle {
	return e.notifier.OnLocationChanged(fn)
}

// OnAutoPan registers a callback fired whenever a drag scrolls the viewport.
func (e *Editor) OnAutoPan(fn func(AutoPanEvent)) CallbackHandle {
	return e.notifier.OnAutoPan(fn)
}

// --- Frame ---

// Update advances animations, runs the gesture script and processes input.
func (e *Editor) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	e.step(dt)
}

// step is Update with an explicit frame time.
func (e *Editor) step(dt float32) {
	e.viewport.update(dt)
	updateWorldTransform(e.root, identityTransform, false)
	if e.script != nil {
		e.script.step(e)
	}
	e.processInput()
	e.autoPan(float64(dt))
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and gesture transitions are logged at debug level.
func (e *Editor) SetDebugMode(enabled bool) {
	e.debug = enabled
	globalDebug = enabled
	if enabled {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
}
