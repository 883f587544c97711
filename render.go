package snaek

// CommandType identifies the kind of draw command.
type CommandType uint8

const (
	CommandClear          CommandType = iota // force-zero the active layer
	CommandFill                              // fill a rectangle
	CommandStroke                            // outline a rectangle
	CommandSprite                            // blit a sprite, optionally rotated
	CommandNineSlice                         // draw a nine-slicing sprite into a rectangle
	CommandText                              // blit a measured string
	CommandMaskAnd                           // set the AND mask for sprite and text blits
	CommandMaskOr                            // set the OR mask for sprite and text blits
	CommandBeginComposite                    // push a scratch layer
	CommandEndComposite                      // blend the scratch layer down and pop it
)

var commandNames = [...]string{
	CommandClear:          "clear",
	CommandFill:           "fill",
	CommandStroke:         "stroke",
	CommandSprite:         "sprite",
	CommandNineSlice:      "nine-slice",
	CommandText:           "text",
	CommandMaskAnd:        "mask-and",
	CommandMaskOr:         "mask-or",
	CommandBeginComposite: "begin-composite",
	CommandEndComposite:   "end-composite",
}

func (t CommandType) String() string {
	if int(t) < len(commandNames) {
		return commandNames[t]
	}
	return "unknown"
}

// DrawCommand is a single instruction of the per-frame draw stream. Only the
// fields relevant to Type are meaningful.
type DrawCommand struct {
	Type CommandType

	Rect  Rect  // Fill, Stroke, NineSlice
	Pos   Pos   // Sprite, Text
	Color Color // Fill, Stroke, MaskAnd, MaskOr
	Width uint16
	Comp  CompMode

	Sheet     SheetID
	Sprite    Sprite
	NineSlice NineSlicingSprite
	Rotation  Rotation
	Text      Text
}

// Clear returns a command that force-zeroes the active layer.
func Clear() DrawCommand { return DrawCommand{Type: CommandClear} }

// FillRect returns a command filling rect with color.
func FillRect(rect Rect, color Color, comp CompMode) DrawCommand {
	return DrawCommand{Type: CommandFill, Rect: rect, Color: color, Comp: comp}
}

// StrokeRect returns a command drawing a width-pixel outline inside rect.
func StrokeRect(rect Rect, color Color, width uint16, comp CompMode) DrawCommand {
	return DrawCommand{Type: CommandStroke, Rect: rect, Color: color, Width: width, Comp: comp}
}

// DrawSprite returns a command blitting a sprite of sheet at pos.
func DrawSprite(sheet SheetID, s Sprite, pos Pos, rot Rotation, comp CompMode) DrawCommand {
	return DrawCommand{Type: CommandSprite, Sheet: sheet, Sprite: s, Pos: pos, Rotation: rot, Comp: comp}
}

// DrawNineSlice returns a command drawing a nine-slicing sprite into rect.
func DrawNineSlice(sheet SheetID, n NineSlicingSprite, rect Rect, comp CompMode) DrawCommand {
	return DrawCommand{Type: CommandNineSlice, Sheet: sheet, NineSlice: n, Rect: rect, Comp: comp}
}

// DrawText returns a command blitting text with its top-left corner at pos.
func DrawText(t Text, pos Pos, comp CompMode) DrawCommand {
	return DrawCommand{Type: CommandText, Text: t, Pos: pos, Comp: comp}
}

// MaskAnd returns a command setting the AND mask. MaskAnd(White) resets it.
func MaskAnd(c Color) DrawCommand { return DrawCommand{Type: CommandMaskAnd, Color: c} }

// MaskOr returns a command setting the OR mask. MaskOr(Transparent) resets it.
func MaskOr(c Color) DrawCommand { return DrawCommand{Type: CommandMaskOr, Color: c} }

// BeginComposite returns a command that redirects drawing to a fresh layer.
func BeginComposite() DrawCommand { return DrawCommand{Type: CommandBeginComposite} }

// EndComposite returns a command that blends the current layer into the one
// beneath it with comp.
func EndComposite(comp CompMode) DrawCommand {
	return DrawCommand{Type: CommandEndComposite, Comp: comp}
}

// Renderer interprets draw commands against a stack of equally sized layers.
// Layer 0 is the framebuffer handed to the presentation layer.
type Renderer struct {
	layers layerStack
	sheets []*Bitmap

	font      *BitmapFont
	fontSheet *Bitmap

	masks maskState
	saved []maskState
}

// NewRenderer creates a renderer drawing into framebuffer, with text glyphs
// taken from fontSheet according to font.
func NewRenderer(framebuffer *Bitmap, font *BitmapFont, fontSheet *Bitmap) *Renderer {
	if font == nil {
		font = DefaultASCIIFont()
	}
	return &Renderer{
		layers:    newLayerStack(framebuffer),
		font:      font,
		fontSheet: fontSheet,
		masks:     defaultMasks,
	}
}

// RegisterSheet stores a sprite sheet and returns its id.
func (r *Renderer) RegisterSheet(b *Bitmap) SheetID {
	r.sheets = append(r.sheets, b)
	return SheetID(len(r.sheets) - 1)
}

// Sheet returns the bitmap registered under id, or nil.
func (r *Renderer) Sheet(id SheetID) *Bitmap {
	if int(id) >= len(r.sheets) {
		return nil
	}
	return r.sheets[id]
}

// Font returns the font used for text commands.
func (r *Renderer) Font() *BitmapFont { return r.font }

// Text measures s with the renderer's font.
func (r *Renderer) Text(s string) Text { return r.font.Text(s) }

// Framebuffer returns layer 0, the finished frame.
func (r *Renderer) Framebuffer() *Bitmap { return r.layers.base() }

// Depth returns the current composite nesting depth.
func (r *Renderer) Depth() int { return r.layers.depth }

// Draw interprets cmds in order. Mask state starts from its defaults on every
// call. A stream that leaves composites open is closed implicitly with Over
// so the framebuffer always holds the result.
func (r *Renderer) Draw(cmds []DrawCommand) {
	r.masks = defaultMasks
	r.saved = r.saved[:0]
	r.layers.depth = 0

	for i := range cmds {
		r.exec(&cmds[i])
	}

	if r.layers.depth > 0 {
		Logger().Debug("unbalanced composite at end of draw stream", "depth", r.layers.depth)
		for r.layers.depth > 0 {
			r.endComposite(CompOver)
		}
	}
}

func (r *Renderer) exec(cmd *DrawCommand) {
	dst := r.layers.active()

	switch cmd.Type {
	case CommandClear:
		dst.Fill(Transparent, Src)

	case CommandFill:
		dst.FillArea(cmd.Color, cmd.Rect, cmd.Comp.Func())

	case CommandStroke:
		strokeRect(dst, cmd.Rect, cmd.Color, cmd.Width, cmd.Comp.Func())

	case CommandSprite:
		sheet := r.Sheet(cmd.Sheet)
		if sheet == nil {
			return
		}
		blitRotated(dst, sheet, cmd.Pos, cmd.Sprite.Rect, cmd.Rotation, cmd.Comp.Func(), r.masks)

	case CommandNineSlice:
		sheet := r.Sheet(cmd.Sheet)
		if sheet == nil {
			return
		}
		drawNineSlice(dst, sheet, cmd.NineSlice, cmd.Rect, cmd.Comp.Func(), r.masks)

	case CommandText:
		r.drawText(dst, cmd.Text, cmd.Pos, cmd.Comp.Func())

	case CommandMaskAnd:
		r.masks.and = cmd.Color

	case CommandMaskOr:
		r.masks.or = cmd.Color

	case CommandBeginComposite:
		r.saved = append(r.saved, r.masks)
		r.layers.push()

	case CommandEndComposite:
		r.endComposite(cmd.Comp)
	}
}

func (r *Renderer) endComposite(comp CompMode) {
	if r.layers.depth == 0 {
		Logger().Debug("end composite without matching begin")
		return
	}
	r.layers.pop(comp.Func())
	if n := len(r.saved); n > 0 {
		r.masks = r.saved[n-1]
		r.saved = r.saved[:n-1]
	}
}

// drawText blits t glyph by glyph, left to right, with fixed spacing.
func (r *Renderer) drawText(dst *Bitmap, t Text, pos Pos, acf CompFunc) {
	if r.fontSheet == nil {
		return
	}
	x := int(pos.X)
	for _, ch := range t.Str {
		g, ok := r.font.glyph(ch)
		if !ok {
			continue
		}
		dst.CopyBitmapArea(r.fontSheet, Pos{X: satI16(x), Y: pos.Y}, g.Rect.Pos(), g.Rect.Size(),
			acf, r.masks.and, r.masks.or)
		x += int(g.Rect.W) + glyphSpacing
	}
}

// strokeRect fills the four width-pixel edges just inside rect.
func strokeRect(dst *Bitmap, rect Rect, c Color, width uint16, acf CompFunc) {
	if width == 0 || rect.Empty() {
		return
	}
	if 2*int(width) >= int(rect.W) || 2*int(width) >= int(rect.H) {
		dst.FillArea(c, rect, acf)
		return
	}
	w := int(width)
	inner := rect.H - 2*width
	top := satI16(int(rect.Y) + w)
	dst.FillArea(c, Rect{X: rect.X, Y: rect.Y, W: rect.W, H: width}, acf)
	dst.FillArea(c, Rect{X: rect.X, Y: satI16(int(rect.Y) + int(rect.H) - w), W: rect.W, H: width}, acf)
	dst.FillArea(c, Rect{X: rect.X, Y: top, W: width, H: inner}, acf)
	dst.FillArea(c, Rect{X: satI16(int(rect.X) + int(rect.W) - w), Y: top, W: width, H: inner}, acf)
}

// blitRotated copies src rect onto dst at pos, rotated clockwise by rot.
func blitRotated(dst, src *Bitmap, pos Pos, rect Rect, rot Rotation, acf CompFunc, m maskState) {
	if rect.Empty() {
		return
	}
	if rot%4 == Rotate0 {
		dst.CopyBitmapArea(src, pos, rect.Pos(), rect.Size(), acf, m.and, m.or)
		return
	}

	out := rot.rotatedSize(rect.Size())
	w, h := int(rect.W), int(rect.H)
	for oy := 0; oy < int(out.H); oy++ {
		for ox := 0; ox < int(out.W); ox++ {
			var sx, sy int
			switch rot % 4 {
			case Rotate90:
				sx, sy = oy, h-1-ox
			case Rotate180:
				sx, sy = w-1-ox, h-1-oy
			case Rotate270:
				sx, sy = w-1-oy, ox
			}
			sx += int(rect.X)
			sy += int(rect.Y)
			if sx < 0 || sy < 0 || sx >= int(src.size.W) || sy >= int(src.size.H) {
				continue
			}
			dx, dy := int(pos.X)+ox, int(pos.Y)+oy
			if dx < 0 || dy < 0 || dx >= int(dst.size.W) || dy >= int(dst.size.H) {
				continue
			}
			c := src.At(sx, sy).And(m.and).Or(m.or)
			dst.Set(dx, dy, acf(c, dst.At(dx, dy)))
		}
	}
}

// drawNineSlice draws corners at their native size and tiles the edges and
// center to cover rect. The last tile of each run is clipped to rect.
func drawNineSlice(dst, src *Bitmap, n NineSlicingSprite, rect Rect, acf CompFunc, m maskState) {
	if rect.Empty() {
		return
	}
	l, _, r := n.columns()
	t, _, b := n.rows()

	// Corners and edges shrink when the destination is smaller than the border.
	lw := min(int(l), int(rect.W))
	rw := min(int(r), int(rect.W)-lw)
	th := min(int(t), int(rect.H))
	bh := min(int(b), int(rect.H)-th)

	x0, y0 := int(rect.X), int(rect.Y)
	xs := [3]int{x0, x0 + lw, x0 + int(rect.W) - rw}
	ws := [3]int{lw, int(rect.W) - lw - rw, rw}
	ys := [3]int{y0, y0 + th, y0 + int(rect.H) - bh}
	hs := [3]int{th, int(rect.H) - th - bh, bh}

	for part := SliceTopLeft; part <= SliceBottomRight; part++ {
		col, row := int(part)%3, int(part)/3
		area := Rect{X: satI16(xs[col]), Y: satI16(ys[row]), W: satU16(ws[col]), H: satU16(hs[row])}
		tileArea(dst, src, n.Slice(part).Rect, area, acf, m)
	}
}

// tileArea repeats the src rect over area, clipping the final row and column.
func tileArea(dst, src *Bitmap, tile Rect, area Rect, acf CompFunc, m maskState) {
	if tile.Empty() || area.Empty() {
		return
	}
	right := int(area.X) + int(area.W)
	bottom := int(area.Y) + int(area.H)
	for y := int(area.Y); y < bottom; y += int(tile.H) {
		th := min(int(tile.H), bottom-y)
		for x := int(area.X); x < right; x += int(tile.W) {
			tw := min(int(tile.W), right-x)
			dst.CopyBitmapArea(src, Pos{X: satI16(x), Y: satI16(y)}, tile.Pos(),
				Size{W: uint16(tw), H: uint16(th)}, acf, m.and, m.or)
		}
	}
}
