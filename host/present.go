package host

// argbToRGBA converts straight-alpha ARGB pixels to the premultiplied RGBA
// bytes ebiten.Image.WritePixels expects. dst must hold 4*len(src) bytes.
func argbToRGBA(dst []byte, src []uint32) {
	for i, px := range src {
		a := px >> 24
		r := (px >> 16) & 0xFF
		g := (px >> 8) & 0xFF
		b := px & 0xFF
		o := dst[i*4 : i*4+4 : i*4+4]
		o[0] = byte(r * a / 255)
		o[1] = byte(g * a / 255)
		o[2] = byte(b * a / 255)
		o[3] = byte(a)
	}
}
