package snaek

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestColorTweenReachesTarget(t *testing.T) {
	tw := TweenColor(Transparent, testRed, 1.0, ease.Linear)
	for i := 0; i < 30 && !tw.Done; i++ {
		tw.Update(0.05)
	}
	if !tw.Done {
		t.Fatal("tween not done after its duration")
	}
	if tw.Value() != testRed {
		t.Errorf("Value = %v, want %v", tw.Value(), testRed)
	}
}

func TestColorTweenMidpoint(t *testing.T) {
	tw := TweenColor(Black, White, 1.0, ease.Linear)
	got := tw.Update(0.5)
	if got.A != 0xFF {
		t.Errorf("alpha = %d, want 255", got.A)
	}
	if got.R < 126 || got.R > 129 || got.R != got.G || got.G != got.B {
		t.Errorf("midpoint = %v, want grey near 128", got)
	}
	if tw.Done {
		t.Error("tween done at its midpoint")
	}
}

func TestColorTweenStopsUpdating(t *testing.T) {
	tw := TweenColor(Black, testBlue, 0.1, ease.Linear)
	tw.Update(1)
	if !tw.Done {
		t.Fatal("tween not done")
	}
	if got := tw.Update(1); got != testBlue {
		t.Errorf("Update after done = %v, want %v", got, testBlue)
	}
}

func TestClampChannel(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{-3, 0},
		{0, 0},
		{127.4, 127},
		{127.6, 128},
		{300, 255},
	}
	for _, tt := range tests {
		if got := clampChannel(tt.in); got != tt.want {
			t.Errorf("clampChannel(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAnimateSkipsFreedWidgets(t *testing.T) {
	c := NewContext(Size{W: 20, H: 20})
	c.BeginFrame()
	id := add(c, RootWidget, 1, Props{Flags: FlagCanHover, Size: SizeFixed(10, 10)})
	endFrame(c)

	var m Mouse
	m.Update(1, 1, false, false, false)
	c.React(m)

	// Drop the widget while its tween is running.
	c.BeginFrame()
	endFrame(c)
	c.Animate(1)

	if w := c.widget(id); w.hoverAmount != 0 || w.hoverTween != nil {
		t.Errorf("freed widget animated: amount=%v tween=%v", w.hoverAmount, w.hoverTween)
	}
}
