package snaek

import (
	"errors"
	"fmt"
	"time"
)

// debugStats holds per-frame timing and arena metrics.
// Only populated when the Context is in debug mode.
type debugStats struct {
	buildTime    time.Duration
	layoutTime   time.Duration
	drawTime     time.Duration
	reactTime    time.Duration
	commandCount int
	widgets      WidgetStats
}

// debugLog writes timing and arena stats at debug level.
func (c *Context) debugLog(stats debugStats) {
	if !c.debug {
		return
	}
	total := stats.buildTime + stats.layoutTime + stats.drawTime + stats.reactTime
	Logger().Debug("frame",
		"frame", c.frame,
		"build", stats.buildTime,
		"layout", stats.layoutTime,
		"draw", stats.drawTime,
		"react", stats.reactTime,
		"total", total,
		"commands", stats.commandCount,
		"live", stats.widgets.Live,
		"freed", stats.widgets.Freed,
	)
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(c *Context, id WidgetID) {
	depth := 0
	for p := id; p != 0 && depth <= len(c.widgets); p = c.widget(p).links.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warn("tree depth exceeds threshold", "widget", id, "depth", depth, "threshold", debugMaxTreeDepth)
	}
}

// debugCheckChildCount warns if a widget has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(w *Widget) {
	if int(w.links.childCount) > debugMaxChildCount {
		Logger().Warn("widget has too many children", "widget", w.id, "children", w.links.childCount,
			"threshold", debugMaxChildCount)
	}
}

// Validate checks the arena invariants: every widget reachable from the root
// is live and visited once, sibling lists are symmetric, child counts and
// parent links match, the free list holds only freed slots, and the key map
// points at live widgets carrying that key.
func (c *Context) Validate() error {
	visited := make([]bool, len(c.widgets)+1)
	if err := c.validateSubtree(RootWidget, visited); err != nil {
		return err
	}

	n := 0
	for id := c.firstFree; id != 0; id = c.widget(id).nextFree {
		if int(id) > len(c.widgets) {
			return fmt.Errorf("snaek: free list points past arena: %d", id)
		}
		if c.widget(id).state != widgetFreed {
			return fmt.Errorf("snaek: live widget %d on free list", id)
		}
		n++
		if n > len(c.widgets) {
			return errors.New("snaek: free list has a cycle")
		}
	}
	if n != c.freed {
		return fmt.Errorf("snaek: free list has %d entries, counted %d", n, c.freed)
	}

	for key, id := range c.keys {
		w := c.liveWidget(id)
		if w == nil {
			return fmt.Errorf("snaek: key %#x maps to freed widget %d", key, id)
		}
		if w.key != key {
			return fmt.Errorf("snaek: key %#x maps to widget %d with key %#x", key, id, w.key)
		}
	}
	return nil
}

func (c *Context) validateSubtree(id WidgetID, visited []bool) error {
	if int(id) >= len(visited) {
		return fmt.Errorf("snaek: widget %d out of arena", id)
	}
	if visited[id] {
		return fmt.Errorf("snaek: widget %d reached twice (cycle or shared child)", id)
	}
	visited[id] = true

	w := c.widget(id)
	if w.state != widgetLive {
		return fmt.Errorf("snaek: freed widget %d reachable from root", id)
	}

	var prev WidgetID
	count := 0
	for child := w.links.firstChild; child != 0; {
		if int(child) > len(c.widgets) {
			return fmt.Errorf("snaek: widget %d has child %d out of arena", id, child)
		}
		cw := c.widget(child)
		if cw.links.parent != id {
			return fmt.Errorf("snaek: widget %d has parent %d, listed under %d", child, cw.links.parent, id)
		}
		if cw.links.prev != prev {
			return fmt.Errorf("snaek: widget %d prev is %d, want %d", child, cw.links.prev, prev)
		}
		if err := c.validateSubtree(child, visited); err != nil {
			return err
		}
		prev = child
		count++
		child = cw.links.next
	}
	if w.links.lastChild != prev {
		return fmt.Errorf("snaek: widget %d last child is %d, want %d", id, w.links.lastChild, prev)
	}
	if int(w.links.childCount) != count {
		return fmt.Errorf("snaek: widget %d child count is %d, want %d", id, w.links.childCount, count)
	}
	return nil
}
