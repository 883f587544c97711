package snaek

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestBitmapImageRoundTrip(t *testing.T) {
	b := NewBitmap(Size{W: 3, H: 2})
	b.Set(0, 0, testRed)
	b.Set(2, 1, Color{A: 0x80, R: 10, G: 20, B: 30})

	back := BitmapFromImage(BitmapToNRGBA(b))
	for i, px := range b.Pixels() {
		if back.Pixels()[i] != px {
			t.Errorf("pixel %d = %#x, want %#x", i, back.Pixels()[i], px)
		}
	}
}

func TestBitmapFromImageOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 7, 6))
	img.Set(6, 5, color.RGBA{R: 0xFF, A: 0xFF})

	b := BitmapFromImage(img)
	if b.Size() != (Size{W: 2, H: 1}) {
		t.Fatalf("size = %v, want 2x1", b.Size())
	}
	if got := b.At(1, 0); got != testRed {
		t.Errorf("At(1, 0) = %v, want red", got)
	}
}

func TestDecodeBitmap(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{G: 0xFF, A: 0xFF})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	b, err := DecodeBitmap(&buf)
	if err != nil {
		t.Fatalf("DecodeBitmap: %v", err)
	}
	if got := b.At(0, 0); got != testGreen {
		t.Errorf("At(0, 0) = %v, want green", got)
	}

	if _, err := DecodeBitmap(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("expected error for garbage input")
	}
}
