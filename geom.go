package snaek

// Pos is a position in pixels. The origin is the top-left corner of the
// viewport, with Y increasing downward.
type Pos struct {
	X, Y int16
}

// Add returns p offset by o, saturating at the int16 range.
func (p Pos) Add(o Pos) Pos {
	return Pos{X: satI16(int(p.X) + int(o.X)), Y: satI16(int(p.Y) + int(o.Y))}
}

// Size is the extent of a rectangle in pixels.
type Size struct {
	W, H uint16
}

// Area returns the number of pixels covered by s.
func (s Size) Area() int {
	return int(s.W) * int(s.H)
}

// Rect is an axis-aligned rectangle with a signed position and unsigned size.
type Rect struct {
	X, Y int16
	W, H uint16
}

// RectFromPosSize builds a Rect from a position and a size.
func RectFromPosSize(p Pos, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, W: s.W, H: s.H}
}

// Pos returns the top-left corner of r.
func (r Rect) Pos() Pos { return Pos{X: r.X, Y: r.Y} }

// Size returns the extent of r.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool { return r.W == 0 || r.H == 0 }

// Contains reports whether the point (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive, matching pixel coverage.
func (r Rect) Contains(x, y int16) bool {
	return int(x) >= int(r.X) && int(x) < int(r.X)+int(r.W) &&
		int(y) >= int(r.Y) && int(y) < int(r.Y)+int(r.H)
}

// Intersects reports whether r and other share at least one pixel.
func (r Rect) Intersects(other Rect) bool {
	return int(r.X) < int(other.X)+int(other.W) &&
		int(r.X)+int(r.W) > int(other.X) &&
		int(r.Y) < int(other.Y)+int(other.H) &&
		int(r.Y)+int(r.H) > int(other.Y)
}

// Offset returns r moved by p, saturating at the int16 range.
func (r Rect) Offset(p Pos) Rect {
	r.X = satI16(int(r.X) + int(p.X))
	r.Y = satI16(int(r.Y) + int(p.Y))
	return r
}

// Anchor is a fractional point inside a rectangle, (0,0) being the top-left
// corner and (1,1) the bottom-right one.
type Anchor struct {
	X, Y float32
}

var (
	AnchorTopLeft      = Anchor{0, 0}
	AnchorTopCenter    = Anchor{0.5, 0}
	AnchorTopRight     = Anchor{1, 0}
	AnchorCenterLeft   = Anchor{0, 0.5}
	AnchorCenter       = Anchor{0.5, 0.5}
	AnchorCenterRight  = Anchor{1, 0.5}
	AnchorBottomLeft   = Anchor{0, 1}
	AnchorBottomCenter = Anchor{0.5, 1}
	AnchorBottomRight  = Anchor{1, 1}
)

// Point returns the position of the anchor inside r.
func (a Anchor) Point(r Rect) Pos {
	return Pos{
		X: satI16(int(r.X) + int(float32(r.W)*a.X)),
		Y: satI16(int(r.Y) + int(float32(r.H)*a.Y)),
	}
}

// Place returns the rectangle of size s whose origin point lands on p.
func (a Anchor) Place(p Pos, s Size) Rect {
	return Rect{
		X: satI16(int(float32(p.X) - float32(s.W)*a.X)),
		Y: satI16(int(float32(p.Y) - float32(s.H)*a.Y)),
		W: s.W,
		H: s.H,
	}
}

// --- saturating helpers ---

// satU16 clamps v into the uint16 range.
func satU16(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > 0xFFFF {
		return 0xFFFF
	}
	return uint16(v)
}

// satI16 clamps v into the int16 range.
func satI16(v int) int16 {
	if v < -0x8000 {
		return -0x8000
	}
	if v > 0x7FFF {
		return 0x7FFF
	}
	return int16(v)
}
