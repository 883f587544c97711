package snaek

import (
	"fmt"
	"time"
)

// Context owns the widget arena, the key map and the draw-command list of a
// retained UI. It is not safe for concurrent use; the whole frame runs on one
// goroutine.
type Context struct {
	widgets   []Widget
	keys      map[WidgetKey]WidgetID
	firstFree WidgetID
	freed     int

	frame    uint64
	viewport Size
	font     *BitmapFont

	cmds []DrawCommand

	debug bool
	store EntityStore
	stats debugStats
}

// NewContext creates a context for a viewport of the given logical size. The
// root widget is created immediately as a filling, stacked container.
func NewContext(viewport Size) *Context {
	c := &Context{
		keys:     make(map[WidgetKey]WidgetID),
		viewport: viewport,
		font:     DefaultASCIIFont(),
	}
	c.widgets = append(c.widgets, Widget{id: RootWidget})
	c.resetRoot()
	return c
}

func rootProps() Props {
	return Props{Size: SizeFill(), Layout: Stacked()}
}

func (c *Context) resetRoot() {
	root := &c.widgets[0]
	root.state = widgetLive
	root.links = treeLinks{}
	root.props = rootProps()
	root.lastFrameTouched = c.frame
}

// SetDebugMode enables or disables debug mode. When enabled, tree mutations
// that would corrupt the arena panic, duplicate keys are logged, and
// per-frame stats are logged at debug level.
func (c *Context) SetDebugMode(enabled bool) { c.debug = enabled }

// DebugMode reports whether debug mode is on.
func (c *Context) DebugMode() bool { return c.debug }

// SetEntityStore sets the optional ECS bridge that receives interaction
// events. Pass nil to detach it.
func (c *Context) SetEntityStore(store EntityStore) { c.store = store }

// Viewport returns the logical size the root widget fills.
func (c *Context) Viewport() Size { return c.viewport }

// SetViewport changes the logical size used by the next SolveLayout.
func (c *Context) SetViewport(s Size) { c.viewport = s }

// Font returns the font used to measure text.
func (c *Context) Font() *BitmapFont { return c.font }

// SetFont replaces the font used to measure text. A nil font restores the
// built-in one.
func (c *Context) SetFont(f *BitmapFont) {
	if f == nil {
		f = DefaultASCIIFont()
	}
	c.font = f
}

// Text measures s with the context's font.
func (c *Context) Text(s string) Text { return c.font.Text(s) }

// FrameCount returns the current frame counter.
func (c *Context) FrameCount() uint64 { return c.frame }

// BeginFrame starts a frame: the draw-command list is emptied and the root
// widget is re-stamped with no children.
func (c *Context) BeginFrame() {
	c.cmds = c.cmds[:0]
	c.resetRoot()
}

// widget returns the arena slot for id. id must be valid.
func (c *Context) widget(id WidgetID) *Widget {
	return &c.widgets[id-1]
}

// liveWidget returns the slot for id, or nil when id is unknown or freed.
func (c *Context) liveWidget(id WidgetID) *Widget {
	if id == 0 || int(id) > len(c.widgets) {
		return nil
	}
	w := &c.widgets[id-1]
	if w.state != widgetLive {
		return nil
	}
	return w
}

// Widget returns a copy of the live widget id. Freed or unknown ids report
// ok=false.
func (c *Context) Widget(id WidgetID) (Widget, bool) {
	w := c.liveWidget(id)
	if w == nil {
		return Widget{}, false
	}
	return *w, true
}

// Lookup returns the live widget currently bound to key.
func (c *Context) Lookup(key WidgetKey) (WidgetID, bool) {
	id, ok := c.keys[key]
	return id, ok
}

// Children returns the ids of id's children in paint order.
func (c *Context) Children(id WidgetID) []WidgetID {
	w := c.liveWidget(id)
	if w == nil {
		return nil
	}
	out := make([]WidgetID, 0, w.links.childCount)
	for child := w.links.firstChild; child != 0; child = c.widget(child).links.next {
		out = append(out, child)
	}
	return out
}

// BuildWidget declares a widget for the current frame and returns the
// interaction state it had at the end of the previous frame.
//
// A key seen before reuses its widget: the tree links are reset, props are
// replaced and the widget is stamped with the current frame. A new key takes
// a slot from the free list, or grows the arena. A key built twice in one
// frame keeps its id and its links; the second props win. A zero key is
// anonymous and always gets a fresh slot.
func (c *Context) BuildWidget(props Props) Reaction {
	if props.Key != 0 {
		if id, ok := c.keys[props.Key]; ok {
			w := c.widget(id)
			if w.lastFrameTouched == c.frame {
				if c.debug {
					Logger().Debug("duplicate widget key in frame", "widget", id, "key", props.Key)
				}
				w.props = props
				return w.reaction()
			}
			if !w.reacted {
				// Built but never added last frame: the react pass skipped it.
				w.resetInteraction()
			}
			w.reacted = false
			w.links = treeLinks{}
			w.props = props
			w.lastFrameTouched = c.frame
			return w.reaction()
		}
	}

	id := c.alloc()
	w := c.widget(id)
	*w = Widget{
		id:               id,
		state:            widgetLive,
		key:              props.Key,
		props:            props,
		lastFrameTouched: c.frame,
	}
	if props.Key != 0 {
		c.keys[props.Key] = id
	}
	return w.reaction()
}

// alloc pops the free list or appends a new slot.
func (c *Context) alloc() WidgetID {
	if id := c.firstFree; id != 0 {
		c.firstFree = c.widget(id).nextFree
		c.freed--
		return id
	}
	c.widgets = append(c.widgets, Widget{})
	return WidgetID(len(c.widgets))
}

// AddChild appends child to parent's children. Call order is paint order,
// and the last child added is the topmost for hit-testing.
func (c *Context) AddChild(parent, child WidgetID) {
	if parent == child {
		panic("snaek: cannot add a widget as its own child")
	}
	p, ch := c.liveWidget(parent), c.liveWidget(child)
	if p == nil || ch == nil {
		panic(fmt.Sprintf("snaek: add child %d to %d: unknown or freed widget", child, parent))
	}
	if ch.links.parent != 0 {
		panic(fmt.Sprintf("snaek: widget %d already has parent %d", child, ch.links.parent))
	}
	if c.debug && (child == RootWidget || c.isAncestor(child, parent)) {
		panic("snaek: adding child would create a cycle")
	}

	ch.links.parent = parent
	ch.links.prev = p.links.lastChild
	ch.links.next = 0
	if p.links.lastChild != 0 {
		c.widget(p.links.lastChild).links.next = child
	} else {
		p.links.firstChild = child
	}
	p.links.lastChild = child
	p.links.childCount++

	if c.debug {
		debugCheckChildCount(p)
		debugCheckTreeDepth(c, child)
	}
}

// isAncestor reports whether candidate is id or one of its ancestors. The
// walk is bounded by the arena size so a corrupted tree cannot loop forever.
func (c *Context) isAncestor(candidate, id WidgetID) bool {
	for steps := 0; id != 0 && steps <= len(c.widgets); steps++ {
		if id == candidate {
			return true
		}
		id = c.widget(id).links.parent
	}
	return false
}

// FreeUntouchedWidgets moves every live widget that was not built this frame
// to the free list, then advances the frame counter. A freed widget loses its
// key binding and interaction state, so rebuilding its key later behaves like
// building it for the first time.
func (c *Context) FreeUntouchedWidgets() {
	for i := range c.widgets {
		w := &c.widgets[i]
		if w.state != widgetLive || w.id == RootWidget || w.lastFrameTouched == c.frame {
			continue
		}
		c.free(w)
	}
	c.frame++
}

func (c *Context) free(w *Widget) {
	if w.key != 0 && c.keys[w.key] == w.id {
		delete(c.keys, w.key)
	}
	w.state = widgetFreed
	w.links = treeLinks{}
	w.props = Props{}
	w.key = 0
	w.resetInteraction()
	w.nextFree = c.firstFree
	c.firstFree = w.id
	c.freed++
}

// PushDraw appends a command to this frame's draw list. Commands pushed after
// DrawWidgets paint over the widget tree.
func (c *Context) PushDraw(cmds ...DrawCommand) {
	c.cmds = append(c.cmds, cmds...)
}

// DrawCommands returns this frame's draw list. The slice is reused by the
// next BeginFrame.
func (c *Context) DrawCommands() []DrawCommand { return c.cmds }

// WidgetStats counts arena slots.
type WidgetStats struct {
	Live  int
	Freed int
	Arena int
	Keys  int
}

// Stats returns arena occupancy.
func (c *Context) Stats() WidgetStats {
	return WidgetStats{
		Live:  len(c.widgets) - c.freed,
		Freed: c.freed,
		Arena: len(c.widgets),
		Keys:  len(c.keys),
	}
}

// Frame runs the UI half of a frame: begin, build, layout, draw emission,
// overlay commands, free pass and react pass. It returns the draw list to
// hand to a [Renderer]. overlay may be nil.
func (c *Context) Frame(mouse Mouse, build, overlay func(c *Context)) []DrawCommand {
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}

	c.BeginFrame()
	build(c)
	t1 := c.lap(t0, &c.stats.buildTime)

	c.SolveLayout()
	t2 := c.lap(t1, &c.stats.layoutTime)

	c.DrawWidgets()
	if overlay != nil {
		overlay(c)
	}
	t3 := c.lap(t2, &c.stats.drawTime)

	c.FreeUntouchedWidgets()
	c.React(mouse)
	c.lap(t3, &c.stats.reactTime)

	if c.debug {
		c.stats.commandCount = len(c.cmds)
		c.stats.widgets = c.Stats()
		c.debugLog(c.stats)
	}
	return c.cmds
}

// lap records the time since start into d when debug mode is on.
func (c *Context) lap(start time.Time, d *time.Duration) time.Time {
	if !c.debug {
		return start
	}
	now := time.Now()
	*d = now.Sub(start)
	return now
}
