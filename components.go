package snaek

// UpdateProps edits the props of a widget built this frame. Components use it
// to restyle a widget from the reaction its build returned. Unknown or freed
// ids are ignored.
func (c *Context) UpdateProps(id WidgetID, fn func(p *Props)) {
	if w := c.liveWidget(id); w != nil {
		fn(&w.props)
	}
}

// Label builds a widget that hugs and draws t.
func (c *Context) Label(key WidgetKey, t Text, anchor, origin Anchor) Reaction {
	return c.BuildWidget(Props{
		Key:    key,
		Flags:  FlagDrawText,
		Text:   t,
		Anchor: anchor,
		Origin: origin,
		Size:   SizeHug(),
	})
}

// Image builds a widget that hugs and draws a sprite of sheet. comp may be
// CompDefault.
func (c *Context) Image(key WidgetKey, sheet SheetID, s Sprite, anchor, origin Anchor, comp CompMode) Reaction {
	return c.BuildWidget(Props{
		Key:    key,
		Flags:  FlagDrawSprite,
		Sprite: SimpleSprite(sheet, s),
		Comp:   comp,
		Anchor: anchor,
		Origin: origin,
		Size:   SizeHug(),
	})
}

// Spacer builds an invisible widget that only takes up room.
func (c *Context) Spacer(key WidgetKey, size WidgetSize) Reaction {
	return c.BuildWidget(Props{Key: key, Size: size})
}

// BtnIconOptions configures [Context.BtnIcon].
type BtnIconOptions struct {
	Sheet      SheetID
	Icon       Sprite
	Size       WidgetSize
	Anchor     Anchor
	Origin     Anchor
	HoverColor Color
}

// BtnIcon builds a clickable square whose background fades to HoverColor while
// hovered. The icon is centered and xor-composed so it stays visible on any
// background.
func (c *Context) BtnIcon(key WidgetKey, o BtnIconOptions) Reaction {
	button := c.BuildWidget(Props{
		Key:    key,
		Flags:  FlagCanFocus | FlagCanHover | FlagCanClick | FlagDrawBackground,
		Color:  o.HoverColor.WithAlpha(0),
		Anchor: o.Anchor,
		Origin: o.Origin,
		Size:   o.Size,
	})

	icon := c.Image(KeyOf(key), o.Sheet, o.Icon, AnchorCenter, AnchorCenter, CompXor)
	c.AddChild(button.ID, icon.ID)

	if amount := button.HoverAmount(); amount > 0 {
		c.UpdateProps(button.ID, func(p *Props) {
			p.Color = o.HoverColor.WithAlpha(amount)
		})
	}
	return button
}

// BtnBoxOptions configures [Context.BtnBox].
type BtnBoxOptions struct {
	Size    WidgetSize
	Padding Padding
	Normal  WidgetSprite
	Pressed WidgetSprite
	Anchor  Anchor
	Origin  Anchor
}

// BtnBox builds a clickable box around child. While the button is held down
// over it, the box switches to the Pressed sprite and both box and child are
// drawn one pixel down and to the right.
func (c *Context) BtnBox(key WidgetKey, o BtnBoxOptions, child WidgetID) Reaction {
	button := c.BuildWidget(Props{
		Key:     key,
		Flags:   FlagCanFocus | FlagCanHover | FlagCanClick | FlagDrawSprite,
		Sprite:  o.Normal,
		Anchor:  o.Anchor,
		Origin:  o.Origin,
		Padding: o.Padding,
		Size:    o.Size,
	})
	c.AddChild(button.ID, child)

	if button.Pressed() && button.Hovered() {
		down := Pos{X: 1, Y: 1}
		c.UpdateProps(button.ID, func(p *Props) {
			p.Sprite = o.Pressed
			p.Offset = down
		})
		c.UpdateProps(child, func(p *Props) {
			p.Offset = down
		})
	}
	return button
}

// TextButton is a BtnBox around a centered label.
func (c *Context) TextButton(key WidgetKey, label string, o BtnBoxOptions) Reaction {
	text := c.Label(KeyOf(key), c.Text(label), AnchorCenter, AnchorCenter)
	return c.BtnBox(key, o, text.ID)
}

// DigitSprites holds everything a [Context.Big3DigitsDisplay] draws.
type DigitSprites struct {
	Sheet       SheetID
	Box         NineSlicingSprite
	Placeholder Sprite
	Digits      [10]Sprite
}

// Big3DigitsDisplay builds a boxed three-digit counter showing n modulo 1000.
// Every slot shows the placeholder sprite; leading zeros show nothing on top
// of it, and the units digit is always drawn.
func (c *Context) Big3DigitsDisplay(key WidgetKey, n int, d DigitSprites) Reaction {
	display := c.BuildWidget(Props{
		Key:     key,
		Flags:   FlagDrawSprite,
		Sprite:  NineSliceSprite(d.Sheet, d.Box),
		Size:    SizeHug(),
		Layout:  FlexH(2),
		Padding: PadHV(3, 2),
	})

	if n < 0 {
		n = 0
	}
	digits := [3]int{(n / 100) % 10, (n / 10) % 10, n % 10}

	shown := false
	for i, digit := range digits {
		holder := c.BuildWidget(Props{
			Key:    KeyOf(key, uint64(i)),
			Flags:  FlagDrawSprite,
			Sprite: SimpleSprite(d.Sheet, d.Placeholder),
			Size:   SizeHug(),
		})

		if shown || digit > 0 || i == len(digits)-1 {
			shown = true
			sprite := c.BuildWidget(Props{
				Key:    KeyOf(key, uint64(i), 1),
				Flags:  FlagDrawSprite,
				Sprite: SimpleSprite(d.Sheet, d.Digits[digit]),
				Size:   SizeHug(),
			})
			c.AddChild(holder.ID, sprite.ID)
		}

		c.AddChild(display.ID, holder.ID)
	}
	return display
}
