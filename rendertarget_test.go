package snaek

import "testing"

func TestLayersAllocatedLazily(t *testing.T) {
	r := newTestRenderer(4, 4, nil)
	if got := r.layers.allocated(); got != 0 {
		t.Fatalf("allocated before any composite = %d, want 0", got)
	}

	nested := []DrawCommand{
		BeginComposite(), BeginComposite(),
		EndComposite(CompOver), EndComposite(CompOver),
	}
	r.Draw(nested)
	r.Draw(nested)

	if got := r.layers.allocated(); got != 2 {
		t.Errorf("allocated after two frames of depth 2 = %d, want 2", got)
	}
}

func TestLayerZeroedOnBegin(t *testing.T) {
	r := newTestRenderer(1, 1, nil)
	r.Framebuffer().Fill(testBlue, Src)

	// Leave red on the scratch layer without blending it down.
	r.Draw([]DrawCommand{
		BeginComposite(),
		FillRect(Rect{W: 1, H: 1}, testRed, CompOver),
		EndComposite(CompDst),
	})
	r.Draw([]DrawCommand{BeginComposite(), EndComposite(CompOver)})

	if got := r.Framebuffer().At(0, 0); got != testBlue {
		t.Errorf("At(0, 0) = %v, want blue (stale layer must not blend)", got)
	}
}

func TestLayerFollowsFramebufferSize(t *testing.T) {
	r := newTestRenderer(2, 2, nil)
	r.Draw([]DrawCommand{BeginComposite(), EndComposite(CompOver)})

	r.Framebuffer().Resize(Size{W: 3, H: 3})
	r.Draw([]DrawCommand{
		BeginComposite(),
		FillRect(Rect{X: 2, Y: 2, W: 1, H: 1}, testRed, CompOver),
		EndComposite(CompOver),
	})

	if got := r.Framebuffer().At(2, 2); got != testRed {
		t.Errorf("At(2, 2) = %v, want red", got)
	}
}
