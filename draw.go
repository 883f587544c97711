package snaek

// DrawWidgets appends the draw commands for every widget reachable from the
// root, parents before children and siblings in the order they were added.
// It must run after SolveLayout.
func (c *Context) DrawWidgets() {
	c.drawWidget(RootWidget)
}

func (c *Context) drawWidget(id WidgetID) {
	w := c.widget(id)
	props := w.props
	flags := props.Flags

	rect := w.solvedRect.Offset(props.Offset)
	inner := props.Padding.inset(rect)
	comp := props.Comp.Or(CompOver)

	composite := flags.Has(FlagComposite)
	if composite {
		c.cmds = append(c.cmds, BeginComposite())
	}

	if flags.Has(FlagDrawBackground) {
		c.cmds = append(c.cmds, FillRect(rect, props.Color, comp))
	}
	if flags.Has(FlagDrawBorder) && props.BorderWidth > 0 {
		c.cmds = append(c.cmds, StrokeRect(rect, props.BorderColor, props.BorderWidth, comp))
	}

	paintsContent := (flags.Has(FlagDrawSprite) && props.Sprite.Kind != SpriteNone) || flags.Has(FlagDrawText)
	tinted := paintsContent && props.Tint != Transparent
	if tinted {
		c.cmds = append(c.cmds, MaskAnd(props.Tint))
	}

	if flags.Has(FlagDrawSprite) {
		s := props.Sprite
		switch s.Kind {
		case SpriteSimple:
			c.cmds = append(c.cmds, DrawSprite(s.Sheet, s.Sprite, inner.Pos(), props.Rotation, comp))
		case SpriteNineSlice:
			c.cmds = append(c.cmds, DrawNineSlice(s.Sheet, s.NineSlice, rect, comp))
		}
	}
	if flags.Has(FlagDrawText) && props.Text.Str != "" {
		c.cmds = append(c.cmds, DrawText(props.Text, inner.Pos(), comp))
	}

	if tinted {
		c.cmds = append(c.cmds, MaskAnd(White))
	}

	for child := w.links.firstChild; child != 0; child = c.widget(child).links.next {
		c.drawWidget(child)
	}

	if composite {
		c.cmds = append(c.cmds, EndComposite(props.CompositeComp.Or(CompOver)))
	}
}
