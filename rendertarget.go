package snaek

// --- Composite layer stack ---

// layerStack holds the framebuffer at index 0 and scratch layers above it.
// Scratch layers are allocated the first time a nesting depth is reached and
// kept for reuse; every push clears the layer it hands out.
type layerStack struct {
	layers []*Bitmap
	depth  int
}

func newLayerStack(framebuffer *Bitmap) layerStack {
	return layerStack{layers: []*Bitmap{framebuffer}}
}

// base returns the framebuffer.
func (s *layerStack) base() *Bitmap { return s.layers[0] }

// active returns the layer drawing currently targets.
func (s *layerStack) active() *Bitmap { return s.layers[s.depth] }

// push makes a cleared layer the active one, allocating it if this depth has
// never been reached. A layer whose size differs from the framebuffer is
// reallocated.
func (s *layerStack) push() {
	s.depth++
	size := s.base().Size()
	if s.depth == len(s.layers) {
		s.layers = append(s.layers, NewBitmap(size))
		return
	}
	l := s.layers[s.depth]
	if l.Size() != size {
		l.Resize(size)
		return
	}
	clear(l.pix)
}

// pop blends the active layer into the one beneath it and makes that one
// active. It must not be called at depth 0.
func (s *layerStack) pop(acf CompFunc) {
	top := s.layers[s.depth]
	s.depth--
	s.layers[s.depth].CopyBitmap(top, acf)
}

// allocated reports how many scratch layers exist.
func (s *layerStack) allocated() int { return len(s.layers) - 1 }
