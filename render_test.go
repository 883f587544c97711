package snaek

import "testing"

// newTestRenderer returns a renderer over a w by h framebuffer with sheet
// registered as sheet 0.
func newTestRenderer(w, h uint16, sheet *Bitmap) *Renderer {
	r := NewRenderer(NewBitmap(Size{W: w, H: h}), nil, nil)
	if sheet != nil {
		r.RegisterSheet(sheet)
	}
	return r
}

func row(b *Bitmap, y int) []Color {
	out := make([]Color, b.Size().W)
	for x := range out {
		out[x] = b.At(x, y)
	}
	return out
}

func TestClearForcesTransparent(t *testing.T) {
	r := newTestRenderer(3, 3, nil)
	r.Framebuffer().Fill(White, Src)

	r.Draw([]DrawCommand{Clear()})

	for i, px := range r.Framebuffer().Pixels() {
		if px != 0 {
			t.Fatalf("pixel %d = %#x after Clear, want 0", i, px)
		}
	}
}

func TestFillDefaultsToOver(t *testing.T) {
	r := newTestRenderer(2, 1, nil)
	r.Framebuffer().Fill(testRed, Src)

	r.Draw([]DrawCommand{FillRect(Rect{W: 1, H: 1}, Color{A: 0, B: 255}, CompDefault)})

	if got := r.Framebuffer().At(0, 0); got != testRed {
		t.Errorf("transparent fill over red = %v, want red", got)
	}
}

func TestStrokeDrawsInsideRect(t *testing.T) {
	r := newTestRenderer(5, 5, nil)
	r.Draw([]DrawCommand{StrokeRect(Rect{W: 5, H: 5}, White, 1, CompOver)})

	fb := r.Framebuffer()
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			edge := x == 0 || y == 0 || x == 4 || y == 4
			want := Transparent
			if edge {
				want = White
			}
			if got := fb.At(x, y); got != want {
				t.Errorf("At(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestSpriteRotation(t *testing.T) {
	sheet := NewBitmap(Size{W: 2, H: 1})
	sheet.Set(0, 0, testRed)
	sheet.Set(1, 0, testBlue)
	s := NewSprite(0, 0, 2, 1)

	tests := []struct {
		name string
		rot  Rotation
		want map[[2]int]Color
	}{
		{"0", Rotate0, map[[2]int]Color{{0, 0}: testRed, {1, 0}: testBlue, {0, 1}: Transparent}},
		{"90", Rotate90, map[[2]int]Color{{0, 0}: testRed, {0, 1}: testBlue, {1, 0}: Transparent}},
		{"180", Rotate180, map[[2]int]Color{{0, 0}: testBlue, {1, 0}: testRed}},
		{"270", Rotate270, map[[2]int]Color{{0, 0}: testBlue, {0, 1}: testRed, {1, 0}: Transparent}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRenderer(2, 2, sheet)
			r.Draw([]DrawCommand{DrawSprite(0, s, Pos{}, tt.rot, CompOver)})
			for p, want := range tt.want {
				if got := r.Framebuffer().At(p[0], p[1]); got != want {
					t.Errorf("At(%d, %d) = %v, want %v", p[0], p[1], got, want)
				}
			}
		})
	}
}

func TestSpriteUnknownSheetDrawsNothing(t *testing.T) {
	r := newTestRenderer(2, 2, nil)
	r.Draw([]DrawCommand{DrawSprite(7, NewSprite(0, 0, 1, 1), Pos{}, Rotate0, CompOver)})
	for i, px := range r.Framebuffer().Pixels() {
		if px != 0 {
			t.Fatalf("pixel %d = %#x, want 0", i, px)
		}
	}
}

func TestNineSliceTilesCenter(t *testing.T) {
	// 5x3 source: the center column is green, everything else red.
	sheet := NewBitmap(Size{W: 5, H: 3})
	sheet.Fill(testRed, Src)
	for y := 0; y < 3; y++ {
		sheet.Set(2, y, testGreen)
	}
	n := NewNineSlice(0, 0, 5, 3, 2, 3, 1, 2)

	r := newTestRenderer(60, 3, sheet)
	r.Draw([]DrawCommand{DrawNineSlice(0, n, Rect{W: 50, H: 3}, CompOver)})

	for y := 0; y < 3; y++ {
		for x, got := range row(r.Framebuffer(), y) {
			var want Color
			switch {
			case x >= 50:
				want = Transparent
			case x < 2 || x >= 48:
				want = testRed
			default:
				want = testGreen
			}
			if got != want {
				t.Errorf("At(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestNineSliceClipsLastTile(t *testing.T) {
	sheet := NewBitmap(Size{W: 4, H: 1})
	sheet.Set(0, 0, testRed)
	sheet.Set(1, 0, testGreen)
	sheet.Set(2, 0, testBlue)
	sheet.Set(3, 0, White)
	n := NewNineSlice(0, 0, 4, 1, 1, 3, 0, 1)

	r := newTestRenderer(10, 1, sheet)
	r.Draw([]DrawCommand{DrawNineSlice(0, n, Rect{W: 7, H: 1}, CompOver)})

	want := []Color{testRed, testGreen, testBlue, testGreen, testBlue, testGreen, White,
		Transparent, Transparent, Transparent}
	got := row(r.Framebuffer(), 0)
	for x := range want {
		if got[x] != want[x] {
			t.Errorf("At(%d, 0) = %v, want %v", x, got[x], want[x])
		}
	}
}

func TestNineSliceBadGuidesDoNotPanic(t *testing.T) {
	sheet := NewBitmap(Size{W: 4, H: 4})
	sheet.Fill(White, Src)
	n := NewNineSlice(0, 0, 4, 4, 10, 2, 9, 1)

	r := newTestRenderer(8, 8, sheet)
	r.Draw([]DrawCommand{DrawNineSlice(0, n, Rect{W: 8, H: 8}, CompOver)})
}

func TestTextUsesFallbackGlyph(t *testing.T) {
	f := &BitmapFont{}
	f.setGlyph('a', NewSprite(0, 0, 1, 1))
	f.setGlyph('?', NewSprite(1, 0, 1, 1))
	sheet := NewBitmap(Size{W: 2, H: 1})
	sheet.Set(0, 0, testRed)
	sheet.Set(1, 0, testBlue)

	r := NewRenderer(NewBitmap(Size{W: 6, H: 1}), f, sheet)
	txt := r.Text("a~a")
	if txt.Size != (Size{W: 5, H: 1}) {
		t.Fatalf("Text size = %v, want 5x1", txt.Size)
	}
	r.Draw([]DrawCommand{DrawText(txt, Pos{}, CompOver)})

	want := []Color{testRed, Transparent, testBlue, Transparent, testRed, Transparent}
	got := row(r.Framebuffer(), 0)
	for x := range want {
		if got[x] != want[x] {
			t.Errorf("At(%d, 0) = %v, want %v", x, got[x], want[x])
		}
	}
}

func TestCompositeBlendsLayerDown(t *testing.T) {
	r := newTestRenderer(2, 1, nil)
	r.Framebuffer().Fill(testBlue, Src)

	r.Draw([]DrawCommand{
		BeginComposite(),
		FillRect(Rect{W: 1, H: 1}, testRed, CompOver),
		EndComposite(CompOver),
	})

	if got := r.Framebuffer().At(0, 0); got != testRed {
		t.Errorf("At(0, 0) = %v, want red", got)
	}
	if got := r.Framebuffer().At(1, 0); got != testBlue {
		t.Errorf("At(1, 0) = %v, want blue (transparent layer pixels keep dst)", got)
	}
	if r.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", r.Depth())
	}
}

func TestCompositeXorGroup(t *testing.T) {
	r := newTestRenderer(1, 1, nil)
	r.Framebuffer().Fill(White, Src)

	r.Draw([]DrawCommand{
		BeginComposite(),
		FillRect(Rect{W: 1, H: 1}, White, CompOver),
		EndComposite(CompXor),
	})

	if got := r.Framebuffer().At(0, 0); got != Transparent {
		t.Errorf("white xor white = %v, want transparent", got)
	}
}

func TestEndCompositeAtDepthZeroIsNoOp(t *testing.T) {
	r := newTestRenderer(1, 1, nil)
	r.Draw([]DrawCommand{
		EndComposite(CompXor),
		FillRect(Rect{W: 1, H: 1}, testRed, CompOver),
		EndComposite(CompXor),
	})
	if got := r.Framebuffer().At(0, 0); got != testRed {
		t.Errorf("At(0, 0) = %v, want red", got)
	}
}

func TestUnbalancedBeginIsClosed(t *testing.T) {
	r := newTestRenderer(1, 1, nil)
	r.Draw([]DrawCommand{
		BeginComposite(),
		FillRect(Rect{W: 1, H: 1}, testRed, CompOver),
	})
	if got := r.Framebuffer().At(0, 0); got != testRed {
		t.Errorf("At(0, 0) = %v, want red", got)
	}
	if r.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", r.Depth())
	}
}

func TestMaskPersistsUntilReset(t *testing.T) {
	sheet := NewBitmap(Size{W: 1, H: 1})
	sheet.Fill(White, Src)
	s := NewSprite(0, 0, 1, 1)

	r := newTestRenderer(3, 1, sheet)
	r.Draw([]DrawCommand{
		MaskAnd(testRed),
		DrawSprite(0, s, Pos{X: 0}, Rotate0, CompOver),
		DrawSprite(0, s, Pos{X: 1}, Rotate0, CompOver),
		MaskAnd(White),
		DrawSprite(0, s, Pos{X: 2}, Rotate0, CompOver),
	})

	want := []Color{testRed, testRed, White}
	got := row(r.Framebuffer(), 0)
	for x := range want {
		if got[x] != want[x] {
			t.Errorf("At(%d, 0) = %v, want %v", x, got[x], want[x])
		}
	}
}

func TestMaskResetsBetweenDraws(t *testing.T) {
	sheet := NewBitmap(Size{W: 1, H: 1})
	sheet.Fill(White, Src)

	r := newTestRenderer(1, 1, sheet)
	r.Draw([]DrawCommand{MaskAnd(testRed)})
	r.Draw([]DrawCommand{DrawSprite(0, NewSprite(0, 0, 1, 1), Pos{}, Rotate0, CompOver)})

	if got := r.Framebuffer().At(0, 0); got != White {
		t.Errorf("At(0, 0) = %v, want white", got)
	}
}
