package snaek

// Color is a straight-alpha ARGB color with 8-bit channels.
type Color struct {
	A, R, G, B uint8
}

var (
	Transparent = Color{}
	White       = Color{A: 0xFF, R: 0xFF, G: 0xFF, B: 0xFF}
	Black       = Color{A: 0xFF}
)

// ColorFromHex unpacks a 0xAARRGGBB value.
func ColorFromHex(hex uint32) Color {
	return Color{
		A: uint8(hex >> 24),
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
	}
}

// Hex packs c as 0xAARRGGBB, the pixel format of [Bitmap].
func (c Color) Hex() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// And returns the channel-wise bitwise AND of c and m.
func (c Color) And(m Color) Color {
	return Color{A: c.A & m.A, R: c.R & m.R, G: c.G & m.G, B: c.B & m.B}
}

// Or returns the channel-wise bitwise OR of c and m.
func (c Color) Or(m Color) Color {
	return Color{A: c.A | m.A, R: c.R | m.R, G: c.G | m.G, B: c.B | m.B}
}

// WithAlpha returns c with its alpha channel scaled by f in [0, 1].
func (c Color) WithAlpha(f float32) Color {
	if f <= 0 {
		c.A = 0
		return c
	}
	if f < 1 {
		c.A = uint8(float32(c.A) * f)
	}
	return c
}

// CompFunc is an alpha composition function. It combines a source pixel
// with the destination pixel already in the buffer.
type CompFunc func(src, dst Color) Color

// Over computes src over dst with straight alpha.
func Over(src, dst Color) Color {
	f := float32(src.A) / 255
	g := 1 - f
	return Color{
		A: uint8(float32(src.A)*f) + uint8(float32(dst.A)*g),
		R: uint8(float32(src.R)*f) + uint8(float32(dst.R)*g),
		G: uint8(float32(src.G)*f) + uint8(float32(dst.G)*g),
		B: uint8(float32(src.B)*f) + uint8(float32(dst.B)*g),
	}
}

// Add computes the saturating per-channel sum of src and dst.
func Add(src, dst Color) Color {
	return Color{
		A: addSat(src.A, dst.A),
		R: addSat(src.R, dst.R),
		G: addSat(src.G, dst.G),
		B: addSat(src.B, dst.B),
	}
}

// Xor computes the per-channel bitwise xor of src and dst.
func Xor(src, dst Color) Color {
	return Color{A: src.A ^ dst.A, R: src.R ^ dst.R, G: src.G ^ dst.G, B: src.B ^ dst.B}
}

// Src returns src, overwriting the destination regardless of alpha.
func Src(src, _ Color) Color { return src }

// Dst returns dst, leaving the destination untouched.
func Dst(_, dst Color) Color { return dst }

func addSat(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 0xFF {
		return 0xFF
	}
	return uint8(s)
}

// CompMode selects an alpha composition function in props and draw commands.
// The zero value defers to the default (Over).
type CompMode uint8

const (
	CompDefault CompMode = iota // unset; resolves to Over
	CompOver                    // straight-alpha source-over
	CompAdd                     // saturating additive
	CompXor                     // bitwise xor, for toggle and inversion effects
	CompSrc                     // force overwrite, including alpha
	CompDst                     // keep destination
)

// Func returns the composition function for m.
func (m CompMode) Func() CompFunc {
	switch m {
	case CompAdd:
		return Add
	case CompXor:
		return Xor
	case CompSrc:
		return Src
	case CompDst:
		return Dst
	default:
		return Over
	}
}

// Or returns m, or fallback when m is CompDefault.
func (m CompMode) Or(fallback CompMode) CompMode {
	if m == CompDefault {
		return fallback
	}
	return m
}

func (m CompMode) String() string {
	switch m {
	case CompDefault:
		return "default"
	case CompOver:
		return "over"
	case CompAdd:
		return "add"
	case CompXor:
		return "xor"
	case CompSrc:
		return "src"
	case CompDst:
		return "dst"
	default:
		return "unknown"
	}
}
