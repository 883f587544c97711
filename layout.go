package snaek

// DimKind selects how a widget is sized along one axis.
type DimKind uint8

const (
	DimFill  DimKind = iota // take the space the parent offers
	DimHug                  // shrink to content
	DimFixed                // exactly N pixels, padding included
)

// Dim sizes one axis of a widget. The zero value fills.
type Dim struct {
	Kind DimKind
	N    uint16
}

// Fixed returns a dimension of exactly n pixels.
func Fixed(n uint16) Dim { return Dim{Kind: DimFixed, N: n} }

// Hug returns a dimension that shrinks to the widget's content.
func Hug() Dim { return Dim{Kind: DimHug} }

// Fill returns a dimension that takes the space the parent offers.
func Fill() Dim { return Dim{Kind: DimFill} }

// WidgetSize sizes both axes of a widget.
type WidgetSize struct {
	W, H Dim
}

// SizeFixed returns a w by h fixed size.
func SizeFixed(w, h uint16) WidgetSize { return WidgetSize{W: Fixed(w), H: Fixed(h)} }

// SizeHug returns a size hugging content on both axes.
func SizeHug() WidgetSize { return WidgetSize{W: Hug(), H: Hug()} }

// SizeFill returns a size filling the parent on both axes.
func SizeFill() WidgetSize { return WidgetSize{} }

// Padding insets a widget's content from its border, in pixels.
type Padding struct {
	T, R, B, L int16
}

// PadAll pads every side by n.
func PadAll(n int16) Padding { return Padding{T: n, R: n, B: n, L: n} }

// PadHV pads left and right by h, top and bottom by v.
func PadHV(h, v int16) Padding { return Padding{T: v, R: h, B: v, L: h} }

func (p Padding) horizontal() int { return int(p.L) + int(p.R) }
func (p Padding) vertical() int   { return int(p.T) + int(p.B) }

// inset shrinks r by p, saturating the size at zero.
func (p Padding) inset(r Rect) Rect {
	return Rect{
		X: satI16(int(r.X) + int(p.L)),
		Y: satI16(int(r.Y) + int(p.T)),
		W: satU16(int(r.W) - p.horizontal()),
		H: satU16(int(r.H) - p.vertical()),
	}
}

// LayoutMode selects how children share a widget's inner rect.
type LayoutMode uint8

const (
	LayoutStacked LayoutMode = iota // every child gets the whole inner rect
	LayoutFlex                      // children are placed one after another
)

// Direction is the main axis of a flex layout.
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

// Layout describes how a widget arranges its children.
type Layout struct {
	Mode      LayoutMode
	Direction Direction
	Gap       int16
}

// Stacked returns a layout that overlaps all children.
func Stacked() Layout { return Layout{Mode: LayoutStacked} }

// FlexH returns a left-to-right flex layout.
func FlexH(gap int16) Layout { return Layout{Mode: LayoutFlex, Direction: Horizontal, Gap: gap} }

// FlexV returns a top-to-bottom flex layout.
func FlexV(gap int16) Layout { return Layout{Mode: LayoutFlex, Direction: Vertical, Gap: gap} }

// SolveLayout computes every live widget's minimum size bottom-up, then its
// rectangle top-down from the viewport. It must run after the tree for the
// frame is fully built.
func (c *Context) SolveLayout() {
	c.solveMinSize(RootWidget)
	c.solveRect(RootWidget, Rect{W: c.viewport.W, H: c.viewport.H}, pinNone)
}

// solveMinSize fills solvedMinSize for id and its subtree.
func (c *Context) solveMinSize(id WidgetID) Size {
	w := c.widget(id)
	props := &w.props

	var content Size
	n := 0
	for child := w.links.firstChild; child != 0; child = c.widget(child).links.next {
		cs := c.solveMinSize(child)
		n++
		switch {
		case props.Layout.Mode == LayoutFlex && props.Layout.Direction == Horizontal:
			content.W = satU16(int(content.W) + int(cs.W))
			content.H = max(content.H, cs.H)
		case props.Layout.Mode == LayoutFlex:
			content.W = max(content.W, cs.W)
			content.H = satU16(int(content.H) + int(cs.H))
		default:
			content.W = max(content.W, cs.W)
			content.H = max(content.H, cs.H)
		}
	}
	if props.Layout.Mode == LayoutFlex && n > 1 {
		gaps := int(props.Layout.Gap) * (n - 1)
		if props.Layout.Direction == Horizontal {
			content.W = satU16(int(content.W) + gaps)
		} else {
			content.H = satU16(int(content.H) + gaps)
		}
	}

	intrinsic := w.intrinsicSize()
	content.W = max(content.W, intrinsic.W)
	content.H = max(content.H, intrinsic.H)

	ms := Size{
		W: minDim(props.Size.W, content.W, props.Padding.horizontal()),
		H: minDim(props.Size.H, content.H, props.Padding.vertical()),
	}
	w.solvedMinSize = ms
	return ms
}

// minDim is the minimum extent of one axis, padding included. Fill
// contributes nothing but its padding.
func minDim(d Dim, content uint16, padding int) uint16 {
	switch d.Kind {
	case DimFixed:
		return satU16(int(d.N) + padding)
	case DimHug:
		return satU16(int(content) + padding)
	default:
		return satU16(padding)
	}
}

// intrinsicSize is the content a widget draws itself.
func (w *Widget) intrinsicSize() Size {
	var s Size
	if w.props.Flags.Has(FlagDrawSprite) {
		s = w.props.Sprite.intrinsicSize()
		if w.props.Sprite.Kind == SpriteSimple {
			s = w.props.Rotation.rotatedSize(s)
		}
	}
	if w.props.Flags.Has(FlagDrawText) {
		s.W = max(s.W, w.props.Text.Size.W)
		s.H = max(s.H, w.props.Text.Size.H)
	}
	return s
}

// pin keeps a widget's position on one axis at the start of the slot it was
// given. Flex layouts pin their main axis.
type pin uint8

const (
	pinNone pin = iota
	pinX
	pinY
)

// resolvedDim is the extent of one axis once the offered space is known.
func resolvedDim(d Dim, minimum, offered uint16) uint16 {
	switch d.Kind {
	case DimFixed:
		return d.N
	case DimHug:
		return minimum
	default:
		return offered
	}
}

// solveRect places id inside slot and recurses into its children.
func (c *Context) solveRect(id WidgetID, slot Rect, p pin) {
	w := c.widget(id)
	props := w.props

	size := Size{
		W: resolvedDim(props.Size.W, w.solvedMinSize.W, slot.W),
		H: resolvedDim(props.Size.H, w.solvedMinSize.H, slot.H),
	}
	rect := props.Origin.Place(props.Anchor.Point(slot), size)
	switch p {
	case pinX:
		rect.X = slot.X
	case pinY:
		rect.Y = slot.Y
	}
	w.solvedRect = rect

	inner := props.Padding.inset(rect)
	first := w.links.firstChild

	if props.Layout.Mode == LayoutStacked {
		for child := first; child != 0; child = c.widget(child).links.next {
			c.solveRect(child, inner, pinNone)
		}
		return
	}

	horizontal := props.Layout.Direction == Horizontal
	gap := int(props.Layout.Gap)

	// Space left for Fill children on the main axis, using this frame's
	// resolved sizes of everything else.
	fills, used, n := 0, 0, 0
	for child := first; child != 0; {
		cw := c.widget(child)
		d, ms := cw.props.Size.W, cw.solvedMinSize.W
		if !horizontal {
			d, ms = cw.props.Size.H, cw.solvedMinSize.H
		}
		if d.Kind == DimFill {
			fills++
		} else {
			used += int(resolvedDim(d, ms, 0))
		}
		n++
		child = cw.links.next
	}
	if n > 1 {
		used += gap * (n - 1)
	}

	mainAvail := int(inner.W)
	if !horizontal {
		mainAvail = int(inner.H)
	}
	share := 0
	if fills > 0 {
		share = max(mainAvail-used, 0) / fills
	}

	cursor := int(inner.X)
	if !horizontal {
		cursor = int(inner.Y)
	}
	for child := first; child != 0; child = c.widget(child).links.next {
		cw := c.widget(child)
		if horizontal {
			width := resolvedDim(cw.props.Size.W, cw.solvedMinSize.W, satU16(share))
			c.solveRect(child, Rect{X: satI16(cursor), Y: inner.Y, W: width, H: inner.H}, pinX)
			cursor += int(width) + gap
		} else {
			height := resolvedDim(cw.props.Size.H, cw.solvedMinSize.H, satU16(share))
			c.solveRect(child, Rect{X: inner.X, Y: satI16(cursor), W: inner.W, H: height}, pinY)
			cursor += int(height) + gap
		}
	}
}
