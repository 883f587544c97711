package snaek

// SheetID identifies a sprite sheet registered with a [Renderer].
type SheetID uint16

// Sprite references a rectangle inside a sprite sheet.
type Sprite struct {
	Rect Rect
}

// NewSprite returns the sprite at (x, y, w, h) of its sheet.
func NewSprite(x, y int16, w, h uint16) Sprite {
	return Sprite{Rect: Rect{X: x, Y: y, W: w, H: h}}
}

// Size returns the sprite's extent.
func (s Sprite) Size() Size { return s.Rect.Size() }

// NineSlicePart names one of the nine regions of a [NineSlicingSprite].
type NineSlicePart uint8

const (
	SliceTopLeft NineSlicePart = iota
	SliceTopCenter
	SliceTopRight
	SliceCenterLeft
	SliceCenter
	SliceCenterRight
	SliceBottomLeft
	SliceBottomCenter
	SliceBottomRight
)

// NineSlicingSprite is a sprite partitioned by two vertical guides (VL, VR)
// and two horizontal guides (HT, HB), all relative to the sprite's top-left
// corner. Corners keep their size; edges and center tile to fill.
type NineSlicingSprite struct {
	Sprite Sprite
	VL, VR uint16
	HT, HB uint16
}

// NewNineSlice returns a nine-slicing sprite over (x, y, w, h).
func NewNineSlice(x, y int16, w, h uint16, vl, vr, ht, hb uint16) NineSlicingSprite {
	return NineSlicingSprite{Sprite: NewSprite(x, y, w, h), VL: vl, VR: vr, HT: ht, HB: hb}
}

// columns returns the left, center and right widths. Guides outside the
// sprite collapse the affected columns to zero.
func (n NineSlicingSprite) columns() (l, c, r uint16) {
	w := n.Sprite.Rect.W
	l = min(n.VL, w)
	vr := min(max(n.VR, l), w)
	return l, vr - l, w - vr
}

// rows returns the top, center and bottom heights.
func (n NineSlicingSprite) rows() (t, c, b uint16) {
	h := n.Sprite.Rect.H
	t = min(n.HT, h)
	hb := min(max(n.HB, t), h)
	return t, hb - t, h - hb
}

// BorderSize returns the size of the fixed corners: the smallest box the
// sprite can be drawn into without clipping a corner.
func (n NineSlicingSprite) BorderSize() Size {
	l, _, r := n.columns()
	t, _, b := n.rows()
	return Size{W: l + r, H: t + b}
}

// Slice returns the sub-sprite for part.
func (n NineSlicingSprite) Slice(part NineSlicePart) Sprite {
	l, c, r := n.columns()
	t, m, b := n.rows()
	x0, y0 := n.Sprite.Rect.X, n.Sprite.Rect.Y

	xs := [3]int16{x0, satI16(int(x0) + int(l)), satI16(int(x0) + int(l) + int(c))}
	ws := [3]uint16{l, c, r}
	ys := [3]int16{y0, satI16(int(y0) + int(t)), satI16(int(y0) + int(t) + int(m))}
	hs := [3]uint16{t, m, b}

	col, row := int(part)%3, int(part)/3
	return Sprite{Rect: Rect{X: xs[col], Y: ys[row], W: ws[col], H: hs[row]}}
}

// SpriteKind tells which variant a [WidgetSprite] holds.
type SpriteKind uint8

const (
	SpriteNone SpriteKind = iota
	SpriteSimple
	SpriteNineSlice
)

// WidgetSprite is the sprite a widget draws: nothing, a simple sprite, or a
// nine-slicing sprite, always tied to a sheet.
type WidgetSprite struct {
	Kind      SpriteKind
	Sheet     SheetID
	Sprite    Sprite
	NineSlice NineSlicingSprite
}

// SimpleSprite wraps a sprite of sheet for use in widget props.
func SimpleSprite(sheet SheetID, s Sprite) WidgetSprite {
	return WidgetSprite{Kind: SpriteSimple, Sheet: sheet, Sprite: s}
}

// NineSliceSprite wraps a nine-slicing sprite of sheet for use in widget props.
func NineSliceSprite(sheet SheetID, n NineSlicingSprite) WidgetSprite {
	return WidgetSprite{Kind: SpriteNineSlice, Sheet: sheet, NineSlice: n}
}

// intrinsicSize is the size the sprite wants when its widget hugs content.
func (s WidgetSprite) intrinsicSize() Size {
	switch s.Kind {
	case SpriteSimple:
		return s.Sprite.Size()
	case SpriteNineSlice:
		return s.NineSlice.BorderSize()
	default:
		return Size{}
	}
}

// Rotation is a clockwise rotation in quarter turns.
type Rotation uint8

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

// rotatedSize returns s as it appears after rotation r.
func (r Rotation) rotatedSize(s Size) Size {
	if r%2 == 1 {
		return Size{W: s.H, H: s.W}
	}
	return s
}
