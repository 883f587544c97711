package snaek

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // register the PNG decoder
	"io"
	"os"

	"golang.org/x/image/draw"
)

// DecodeBitmap decodes an image (PNG is registered) into a straight-alpha
// ARGB bitmap.
func DecodeBitmap(r io.Reader) (*Bitmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("snaek: decode bitmap: %w", err)
	}
	return BitmapFromImage(img), nil
}

// LoadBitmap decodes the image file at path.
func LoadBitmap(path string) (*Bitmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snaek: load bitmap: %w", err)
	}
	return DecodeBitmap(bytes.NewReader(data))
}

// BitmapFromImage converts any image to a bitmap of the same size.
func BitmapFromImage(img image.Image) *Bitmap {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Copy(nrgba, image.Point{}, img, b, draw.Src, nil)
	}

	size := Size{W: satU16(b.Dx()), H: satU16(b.Dy())}
	out := NewBitmap(size)
	for y := 0; y < int(size.H); y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < int(size.W); x++ {
			p := row[x*4 : x*4+4]
			out.pix[y*int(size.W)+x] = Color{A: p[3], R: p[0], G: p[1], B: p[2]}.Hex()
		}
	}
	return out
}

// BitmapToNRGBA converts a bitmap to a straight-alpha image.
func BitmapToNRGBA(b *Bitmap) *image.NRGBA {
	w, h := int(b.size.W), int(b.size.H)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, px := range b.pix {
		c := ColorFromHex(px)
		img.Pix[i*4+0] = c.R
		img.Pix[i*4+1] = c.G
		img.Pix[i*4+2] = c.B
		img.Pix[i*4+3] = c.A
	}
	return img
}
