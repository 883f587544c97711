package snaek

// React hit-tests the tree against mouse and stores hover, press and click
// state on every reachable widget for the next frame's BuildWidget calls.
//
// Children are tested before their parent and the last-added sibling first,
// so the topmost widget under the pointer is the only one hovered. Only
// widgets flagged FlagCanHover or FlagCanClick are candidates. A
// FlagDisabled widget and everything below it read as untouched.
func (c *Context) React(mouse Mouse) {
	c.react(RootWidget, &mouse, false)
}

// react updates id's subtree and reports whether any widget in it is hovered.
// blocked forces the subtree to not-hovered.
func (c *Context) react(id WidgetID, m *Mouse, blocked bool) bool {
	w := c.widget(id)
	w.reacted = true
	flags := w.props.Flags
	if flags.Has(FlagDisabled) {
		blocked = true
	}

	childHit := false
	for child := w.links.lastChild; child != 0; child = c.widget(child).links.prev {
		if c.react(child, m, blocked || childHit) {
			childHit = true
		}
	}

	candidate := flags&(FlagCanHover|FlagCanClick) != 0
	hovered := !blocked && !childHit && candidate && w.solvedRect.Contains(m.X, m.Y)
	c.setInteraction(w, hovered, m)
	return hovered || childHit
}

// setInteraction applies one frame of the press state machine to w and
// reports the transitions.
func (c *Context) setInteraction(w *Widget, hovered bool, m *Mouse) {
	wasHovered, wasPressed := w.hovered, w.pressed

	left := m.Left
	var pressed, clicked bool
	if w.props.Flags.Has(FlagCanClick) {
		pressed = hovered && (left.JustPressed() || (left.Down && wasPressed))
		clicked = wasPressed && hovered && left.JustReleased()
	}

	w.hovered, w.pressed, w.clicked = hovered, pressed, clicked

	if hovered != wasHovered {
		target := float32(0)
		if hovered {
			target = 1
		}
		w.startHoverTween(target)
	}

	if c.store == nil {
		return
	}
	switch {
	case hovered && !wasHovered:
		c.emit(EventPointerEnter, w, m)
	case !hovered && wasHovered:
		c.emit(EventPointerLeave, w, m)
	}
	switch {
	case pressed && !wasPressed:
		c.emit(EventPointerDown, w, m)
	case !pressed && wasPressed:
		c.emit(EventPointerUp, w, m)
	}
	if clicked {
		c.emit(EventClick, w, m)
	}
}

func (c *Context) emit(t EventType, w *Widget, m *Mouse) {
	c.store.EmitEvent(InteractionEvent{
		Type:   t,
		Widget: w.id,
		Key:    w.key,
		X:      m.X,
		Y:      m.Y,
		Button: MouseButtonLeft,
	})
}
