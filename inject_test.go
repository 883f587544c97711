package snaek

import "testing"

func TestInjectClick(t *testing.T) {
	var in Injector
	in.InjectClick(10, 20)
	if in.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", in.Pending())
	}

	var m Mouse
	if !in.Next(&m) {
		t.Fatal("Next returned false with samples queued")
	}
	if m.X != 10 || m.Y != 20 || !m.Left.JustPressed() {
		t.Errorf("first sample = %+v, want a press at (10, 20)", m)
	}
	in.Next(&m)
	if !m.Left.JustReleased() {
		t.Errorf("second sample = %+v, want a release", m)
	}
	if in.Next(&m) {
		t.Error("Next returned true on an empty queue")
	}
}

func TestInjectDragInterpolates(t *testing.T) {
	var in Injector
	in.InjectDrag(0, 0, 30, 60, 5)
	if in.Pending() != 5 {
		t.Fatalf("Pending = %d, want 5", in.Pending())
	}

	want := []struct {
		x, y int16
		down bool
	}{
		{0, 0, true},
		{7, 15, true},
		{15, 30, true},
		{22, 45, true},
		{30, 60, false},
	}
	var m Mouse
	for i, w := range want {
		in.Next(&m)
		if m.X != w.x || m.Y != w.y || m.Left.Down != w.down {
			t.Errorf("sample %d = (%d, %d, %v), want (%d, %d, %v)", i, m.X, m.Y, m.Left.Down, w.x, w.y, w.down)
		}
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	var in Injector
	in.InjectDrag(0, 0, 5, 5, 0)
	if in.Pending() != 2 {
		t.Errorf("Pending = %d, want 2", in.Pending())
	}
}

func TestInjectedClickReachesWidget(t *testing.T) {
	c := NewContext(Size{W: 20, H: 20})
	build := func(c *Context) {
		add(c, RootWidget, 1, Props{Flags: FlagCanClick, Size: SizeFixed(10, 10)})
	}

	var in Injector
	in.InjectClick(4, 4)

	var m Mouse
	clicked := false
	for i := 0; i < 3; i++ {
		in.Next(&m)
		c.Frame(m, build, nil)
		id, _ := c.Lookup(1)
		clicked = clicked || mustWidget(t, c, id).Clicked()
	}
	if !clicked {
		t.Error("injected click never reached the widget")
	}
}

func TestInjectDragAcrossFullRange(t *testing.T) {
	var in Injector
	in.InjectDrag(-30000, 0, 30000, 0, 3)

	var m Mouse
	in.Next(&m)
	in.Next(&m)
	// Halfway between the ends, not a wrapped delta.
	if m.X != 0 {
		t.Errorf("midpoint x = %d, want 0", m.X)
	}
}
