package snaek

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// HoverFadeDuration is how long a widget's hover amount takes to reach its
// target, in seconds.
var HoverFadeDuration float32 = 0.12

// startHoverTween eases the hover amount from its current value to target.
func (w *Widget) startHoverTween(target float32) {
	w.hoverTween = gween.New(w.hoverAmount, target, HoverFadeDuration, ease.OutQuad)
}

// Animate advances every running hover tween by dt seconds. Call it once per
// frame after React.
func (c *Context) Animate(dt float32) {
	for i := range c.widgets {
		w := &c.widgets[i]
		if w.state != widgetLive || w.hoverTween == nil {
			continue
		}
		val, finished := w.hoverTween.Update(dt)
		w.hoverAmount = val
		if finished {
			w.hoverTween = nil
		}
	}
}

// ColorTween animates the four channels of a color. Create one with
// TweenColor and call Update(dt) each frame.
//
// There is no global animation manager; callers own their tweens.
type ColorTween struct {
	tweens [4]*gween.Tween
	value  Color
	Done   bool
}

// TweenColor creates a ColorTween from one color to another over duration
// seconds using the easing function.
func TweenColor(from, to Color, duration float32, fn ease.TweenFunc) *ColorTween {
	g := &ColorTween{value: from}
	g.tweens[0] = gween.New(float32(from.A), float32(to.A), duration, fn)
	g.tweens[1] = gween.New(float32(from.R), float32(to.R), duration, fn)
	g.tweens[2] = gween.New(float32(from.G), float32(to.G), duration, fn)
	g.tweens[3] = gween.New(float32(from.B), float32(to.B), duration, fn)
	return g
}

// Update advances the tween by dt seconds and returns the current color.
func (g *ColorTween) Update(dt float32) Color {
	if g.Done {
		return g.value
	}
	var ch [4]uint8
	allDone := true
	for i, tw := range g.tweens {
		val, finished := tw.Update(dt)
		ch[i] = clampChannel(val)
		if !finished {
			allDone = false
		}
	}
	g.value = Color{A: ch[0], R: ch[1], G: ch[2], B: ch[3]}
	g.Done = allDone
	return g.value
}

// Value returns the color as of the last Update.
func (g *ColorTween) Value() Color { return g.value }

func clampChannel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
