package snaek

// Bitmap is a fixed-size buffer of packed ARGB pixels, row-major.
type Bitmap struct {
	pix  []uint32
	size Size
}

// NewBitmap allocates a transparent bitmap of the given size.
func NewBitmap(size Size) *Bitmap {
	return &Bitmap{pix: make([]uint32, size.Area()), size: size}
}

// BitmapFromPixels wraps an existing pixel buffer. The buffer length must be
// size.W*size.H; a mismatched buffer is truncated or zero-padded.
func BitmapFromPixels(pix []uint32, size Size) *Bitmap {
	n := size.Area()
	switch {
	case len(pix) > n:
		pix = pix[:n]
	case len(pix) < n:
		grown := make([]uint32, n)
		copy(grown, pix)
		pix = grown
	}
	return &Bitmap{pix: pix, size: size}
}

// Resize reallocates the bitmap at the new size. All pixels are reset.
func (b *Bitmap) Resize(size Size) {
	b.pix = make([]uint32, size.Area())
	b.size = size
}

// Pixels returns the underlying pixel buffer. The slice MUST NOT be resized.
func (b *Bitmap) Pixels() []uint32 { return b.pix }

// Size returns the bitmap dimensions.
func (b *Bitmap) Size() Size { return b.size }

// At returns the pixel at (x, y), or Transparent when out of bounds.
func (b *Bitmap) At(x, y int) Color {
	if x < 0 || y < 0 || x >= int(b.size.W) || y >= int(b.size.H) {
		return Transparent
	}
	return ColorFromHex(b.pix[y*int(b.size.W)+x])
}

// Set overwrites the pixel at (x, y). Out-of-bounds writes are ignored.
func (b *Bitmap) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= int(b.size.W) || y >= int(b.size.H) {
		return
	}
	b.pix[y*int(b.size.W)+x] = c.Hex()
}

// line returns the pixels of row y from x, at most width long, clipped to the
// bitmap's right edge. x and y must be inside the bitmap.
func (b *Bitmap) line(x, y int, width int) []uint32 {
	end := min(x+width, int(b.size.W))
	start := y*int(b.size.W) + x
	return b.pix[start : start+end-x]
}

// Fill applies acf(color, existing) to every pixel.
func (b *Bitmap) Fill(color Color, acf CompFunc) {
	for i, px := range b.pix {
		b.pix[i] = acf(color, ColorFromHex(px)).Hex()
	}
}

// FillArea applies acf(color, existing) to every pixel of rect, cropped to the
// bitmap bounds. A rect that crops to nothing is a no-op.
func (b *Bitmap) FillArea(color Color, rect Rect, acf CompFunc) {
	rect = b.cropRect(rect)
	if rect.Empty() {
		return
	}
	for y := 0; y < int(rect.H); y++ {
		row := b.line(int(rect.X), int(rect.Y)+y, int(rect.W))
		for i, px := range row {
			row[i] = acf(color, ColorFromHex(px)).Hex()
		}
	}
}

// CopyBitmap blends the whole of src into b pixel by pixel. Both bitmaps are
// expected to share a size; extra pixels on either side are ignored.
func (b *Bitmap) CopyBitmap(src *Bitmap, acf CompFunc) {
	n := min(len(b.pix), len(src.pix))
	for i := 0; i < n; i++ {
		b.pix[i] = acf(ColorFromHex(src.pix[i]), ColorFromHex(b.pix[i])).Hex()
	}
}

// CopyBitmapArea blends a size-sized region of src at srcPos onto b at dstPos.
// Each source pixel is recolored as (px & maskAnd) | maskOr before composing.
// Both regions are clipped against their own bitmap; whatever does not fit is
// skipped.
func (b *Bitmap) CopyBitmapArea(src *Bitmap, dstPos, srcPos Pos, size Size, acf CompFunc, maskAnd, maskOr Color) {
	dx, dy := int(dstPos.X), int(dstPos.Y)
	sx, sy := int(srcPos.X), int(srcPos.Y)
	w, h := int(size.W), int(size.H)

	// Clip the left/top edges of both rectangles, shifting the other one along.
	if dx < 0 {
		w += dx
		sx -= dx
		dx = 0
	}
	if dy < 0 {
		h += dy
		sy -= dy
		dy = 0
	}
	if sx < 0 {
		w += sx
		dx -= sx
		sx = 0
	}
	if sy < 0 {
		h += sy
		dy -= sy
		sy = 0
	}

	// Clip the right/bottom edges.
	w = min(w, int(b.size.W)-dx, int(src.size.W)-sx)
	h = min(h, int(b.size.H)-dy, int(src.size.H)-sy)
	if w <= 0 || h <= 0 {
		return
	}

	for y := 0; y < h; y++ {
		dstRow := b.line(dx, dy+y, w)
		srcRow := src.line(sx, sy+y, w)
		for i, px := range srcRow {
			c := ColorFromHex(px).And(maskAnd).Or(maskOr)
			dstRow[i] = acf(c, ColorFromHex(dstRow[i])).Hex()
		}
	}
}

// cropRect clamps rect to the bitmap bounds. Negative positions shrink the
// rect and overflow past the right/bottom edges is cut off, saturating at 0.
func (b *Bitmap) cropRect(rect Rect) Rect {
	x, y := int(rect.X), int(rect.Y)
	w, h := int(rect.W), int(rect.H)
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if over := x + w - int(b.size.W); over > 0 {
		w -= over
	}
	if over := y + h - int(b.size.H); over > 0 {
		h -= over
	}
	if w <= 0 || h <= 0 {
		return Rect{}
	}
	return Rect{X: int16(x), Y: int16(y), W: uint16(w), H: uint16(h)}
}
