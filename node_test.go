package nodeflow

import "testing"

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("n", 120, 80)
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Size() != (Vec2{120, 80}) {
		t.Errorf("Size = %v, want (120, 80)", n.Size())
	}
	if n.MinWidth != defaultMinWidth || n.MinHeight != defaultMinHeight {
		t.Errorf("Min = (%v, %v), want defaults", n.MinWidth, n.MinHeight)
	}
	if !n.Interactable || !n.Draggable || !n.Visible {
		t.Error("graph nodes should be visible, interactable and draggable")
	}
	if n.Resizable || n.BlocksDrag {
		t.Error("graph nodes should not be resizable or block drags by default")
	}
	if n.Gesture() != GestureIdle {
		t.Errorf("gesture = %v, want idle", n.Gesture())
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
}

func TestNewWidgetIsNotDraggable(t *testing.T) {
	w := NewWidget("w", 10, 10)
	if w.Draggable {
		t.Error("widgets should not be draggable")
	}
	if !w.Interactable {
		t.Error("widgets should be interactable")
	}
}

func TestAddChildReparents(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	a.AddChild(c)
	b.AddChild(c)
	if c.Parent != b {
		t.Error("child should be reparented to b")
	}
	if a.NumChildren() != 0 || b.NumChildren() != 1 {
		t.Errorf("children = (%d, %d), want (0, 1)", a.NumChildren(), b.NumChildren())
	}
	if b.ChildAt(0) != c {
		t.Error("ChildAt(0) should be c")
	}
}

func TestAddChildCyclePanics(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	a.AddChild(b)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on cycle")
		}
	}()
	b.AddChild(a)
}

func TestAddChildNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil child")
		}
	}()
	NewContainer("a").AddChild(nil)
}

func TestRemoveChildWrongParentPanics(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	a.RemoveChild(b)
}

func TestRemoveFromParent(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	a.AddChild(b)
	b.RemoveFromParent()
	if b.Parent != nil || a.NumChildren() != 0 {
		t.Error("b should be detached")
	}
	b.RemoveFromParent() // no-op
}

func TestPaintOrderByZIndex(t *testing.T) {
	p := NewContainer("p")
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	p.AddChild(a)
	p.AddChild(b)
	p.AddChild(c)
	a.SetZIndex(5)

	got := p.paintOrder()
	want := []*Node{b, c, a}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("paintOrder[%d] = %q, want %q", i, got[i].Name, want[i].Name)
		}
	}
	if p.Children()[0] != a {
		t.Error("Children should keep insertion order")
	}
}

func TestDisposeRecursive(t *testing.T) {
	p := NewContainer("p")
	n := NewNode("n", 10, 10)
	w := NewWidget("w", 5, 5)
	p.AddChild(n)
	n.AddChild(w)
	n.Dispose()

	if !n.IsDisposed() || !w.IsDisposed() {
		t.Error("node and child should be disposed")
	}
	if p.NumChildren() != 0 {
		t.Error("disposed node should be removed from parent")
	}
	n.Dispose() // idempotent
}

func TestBoundsExcludesOffset(t *testing.T) {
	n := NewNode("n", 30, 40)
	n.SetLocation(1, 2)
	n.SetOffset(10, 10)
	if n.Bounds() != (Rect{X: 1, Y: 2, Width: 30, Height: 40}) {
		t.Errorf("Bounds = %v", n.Bounds())
	}
}
