package nodeflow

import "testing"

func newResizeFixture() (*Node, *ResizeController, *eventLog) {
	n := NewNode("n", 100, 100)
	n.SetLocation(50, 60)
	n.Resizable = true
	log := &eventLog{}
	var notifier GestureNotifier
	notifier.OnLocationChanged(log.record)
	return n, NewResizeController(n, &notifier), log
}

func TestResizeCorners(t *testing.T) {
	tests := []struct {
		corner     Corner
		wantSize   Vec2
		wantOffset Vec2
	}{
		{CornerTopLeft, Vec2{70, 110}, Vec2{30, -10}},
		{CornerTopRight, Vec2{130, 110}, Vec2{0, -10}},
		{CornerBottomLeft, Vec2{70, 90}, Vec2{30, 0}},
		{CornerBottomRight, Vec2{130, 90}, Vec2{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.corner.String(), func(t *testing.T) {
			n, r, log := newResizeFixture()
			if !r.Start(tt.corner, Vec2{}) {
				t.Fatal("Start failed")
			}
			r.Update(tt.corner, Vec2{30, -10})

			if n.Size() != tt.wantSize {
				t.Errorf("Size = %v, want %v", n.Size(), tt.wantSize)
			}
			if got := (Vec2{n.OffsetX, n.OffsetY}); got != tt.wantOffset {
				t.Errorf("offset = %v, want %v", got, tt.wantOffset)
			}
			if n.Location() != (Vec2{50, 60}) {
				t.Errorf("Location changed mid-gesture: %v", n.Location())
			}

			r.Complete()
			want := Vec2{50, 60}.Add(tt.wantOffset)
			if n.Location() != want {
				t.Errorf("committed Location = %v, want %v", n.Location(), want)
			}
			if n.OffsetX != 0 || n.OffsetY != 0 {
				t.Errorf("offset not cleared: (%v, %v)", n.OffsetX, n.OffsetY)
			}
			if n.Size() != tt.wantSize {
				t.Errorf("Size after Complete = %v, want %v", n.Size(), tt.wantSize)
			}
			if log.finals() != 1 {
				t.Errorf("finals = %d, want 1", log.finals())
			}
			if evt := log.last(t); evt.Location != want {
				t.Errorf("final event location = %v, want %v", evt.Location, want)
			}
		})
	}
}

func TestResizeBottomRightKeepsLocation(t *testing.T) {
	n, r, _ := newResizeFixture()
	n.MinWidth, n.MinHeight = 20, 20
	r.Start(CornerBottomRight, Vec2{})
	r.Update(CornerBottomRight, Vec2{30, -10})
	r.Complete()
	if n.Size() != (Vec2{130, 90}) {
		t.Errorf("Size = %v, want (130, 90)", n.Size())
	}
	if n.Location() != (Vec2{50, 60}) {
		t.Errorf("Location = %v, want unchanged (50, 60)", n.Location())
	}
}

func TestResizeMinimumSizeRejects(t *testing.T) {
	n, r, log := newResizeFixture()
	r.Start(CornerTopLeft, Vec2{})
	r.Update(CornerTopLeft, Vec2{10, 10}) // accepted: 90x90
	r.Update(CornerTopLeft, Vec2{75, 0})  // 15 wide: rejected

	if n.Size() != (Vec2{90, 90}) {
		t.Errorf("Size = %v, want last accepted (90, 90)", n.Size())
	}
	if n.OffsetX != 10 || n.OffsetY != 10 {
		t.Errorf("offset = (%v, %v), want (10, 10)", n.OffsetX, n.OffsetY)
	}
	if len(log.events) != 1 {
		t.Errorf("events = %d, want 1 (rejected update is silent)", len(log.events))
	}

	r.Complete()
	if n.Location() != (Vec2{60, 70}) {
		t.Errorf("Location = %v, want (60, 70)", n.Location())
	}
}

func TestResizeAtMinimumIsAccepted(t *testing.T) {
	n, r, _ := newResizeFixture()
	r.Start(CornerBottomRight, Vec2{})
	r.Update(CornerBottomRight, Vec2{-80, -80})
	if n.Size() != (Vec2{20, 20}) {
		t.Errorf("Size = %v, want (20, 20)", n.Size())
	}
}

func TestResizeAccumulatesIncrementalDeltas(t *testing.T) {
	n, r, log := newResizeFixture()
	r.Start(CornerTopLeft, Vec2{})
	for i := 0; i < 4; i++ {
		r.Update(CornerTopLeft, Vec2{5, -5})
	}
	if n.Size() != (Vec2{80, 120}) {
		t.Errorf("Size = %v, want (80, 120)", n.Size())
	}
	if n.OffsetX != 20 || n.OffsetY != -20 {
		t.Errorf("offset = (%v, %v), want (20, -20)", n.OffsetX, n.OffsetY)
	}
	if n.Location() != (Vec2{50, 60}) {
		t.Errorf("Location changed mid-gesture: %v", n.Location())
	}
	for _, evt := range log.events {
		if evt.Final {
			t.Fatal("no final event expected before Complete")
		}
	}

	r.Complete()
	if n.Location() != (Vec2{70, 40}) {
		t.Errorf("Location = %v, want (70, 40)", n.Location())
	}
	if log.finals() != 1 {
		t.Errorf("finals = %d, want 1", log.finals())
	}
}

func TestResizeRejectedDeltaStillAccumulates(t *testing.T) {
	n, r, _ := newResizeFixture()
	r.Start(CornerBottomRight, Vec2{})
	r.Update(CornerBottomRight, Vec2{-90, 0}) // 10 wide: rejected
	r.Update(CornerBottomRight, Vec2{50, 0})  // total -40: 60 wide
	if n.Width != 60 {
		t.Errorf("Width = %v, want 60", n.Width)
	}
}

func TestResizeIgnoresOtherCorner(t *testing.T) {
	n, r, _ := newResizeFixture()
	r.Start(CornerTopLeft, Vec2{})
	r.Update(CornerBottomRight, Vec2{30, 30})
	if n.Size() != (Vec2{100, 100}) {
		t.Errorf("Size = %v, want unchanged", n.Size())
	}
	if r.Corner() != CornerTopLeft {
		t.Errorf("Corner = %v, want top-left", r.Corner())
	}
}

func TestResizeCaptureLostCommits(t *testing.T) {
	n, r, log := newResizeFixture()
	r.Start(CornerTopLeft, Vec2{})
	r.Update(CornerTopLeft, Vec2{10, 20})
	r.CaptureLost()

	if n.Location() != (Vec2{60, 80}) {
		t.Errorf("Location = %v, want (60, 80)", n.Location())
	}
	if n.Size() != (Vec2{90, 80}) {
		t.Errorf("Size = %v, want (90, 80)", n.Size())
	}
	if n.Gesture() != GestureIdle {
		t.Errorf("gesture = %v, want idle", n.Gesture())
	}
	r.Complete()
	if log.finals() != 1 {
		t.Errorf("finals = %d, want 1", log.finals())
	}
}

func TestResizeRequiresResizable(t *testing.T) {
	n, r, _ := newResizeFixture()
	n.Resizable = false
	if r.Start(CornerBottomRight, Vec2{}) {
		t.Error("Start should fail on a non-resizable node")
	}
	if r.Active() {
		t.Error("controller should not be active")
	}
}

func TestResizeRejectedWhileDragging(t *testing.T) {
	n, r, _ := newResizeFixture()
	canvas := NewContainer("canvas")
	items := NewContainer("items")
	canvas.AddChild(items)
	items.AddChild(n)
	d := NewDragController(n, &fakeCanvas{}, nil)
	if !d.Start(press(60, 70)) {
		t.Fatal("drag should start")
	}
	if r.Start(CornerBottomRight, Vec2{}) {
		t.Error("resize must not start while dragging")
	}
	r.Update(CornerBottomRight, Vec2{10, 10})
	if n.Size() != (Vec2{100, 100}) {
		t.Errorf("Size = %v, want unchanged", n.Size())
	}
	if n.Gesture() != GestureDragging {
		t.Errorf("gesture = %v, want dragging", n.Gesture())
	}
}

func TestResizeCompleteWithoutStart(t *testing.T) {
	n, r, log := newResizeFixture()
	r.Complete()
	if len(log.events) != 0 {
		t.Error("Complete without a gesture should not emit")
	}
	if n.Location() != (Vec2{50, 60}) {
		t.Error("Complete without a gesture should not move the node")
	}
}

func TestCornerAt(t *testing.T) {
	n := NewNode("n", 100, 50)
	n.Resizable = true
	tests := []struct {
		x, y   float64
		want   Corner
		wantOK bool
	}{
		{0, 0, CornerTopLeft, true},
		{99, 2, CornerTopRight, true},
		{-3, 52, CornerBottomLeft, true},
		{104, 54, CornerBottomRight, true},
		{50, 25, 0, false},
		{110, 50, 0, false},
	}
	for _, tt := range tests {
		got, ok := cornerAt(n, tt.x, tt.y, 10)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("cornerAt(%v, %v) = %v, %v; want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
		}
	}

	n.Resizable = false
	if _, ok := cornerAt(n, 0, 0, 10); ok {
		t.Error("non-resizable node should have no handles")
	}
}
