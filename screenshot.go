package snaek

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/draw"
)

// Screenshotter captures labeled PNG snapshots of a framebuffer. Labels are
// queued during a frame and written by Flush once the frame is painted.
type Screenshotter struct {
	Dir   string // output directory, created on demand
	Scale int    // integer upscale factor; values below 1 mean 1

	queue []string
	now   func() time.Time
}

// Queue schedules a screenshot for the next Flush.
func (s *Screenshotter) Queue(label string) {
	s.queue = append(s.queue, label)
}

// Pending returns the number of queued screenshots.
func (s *Screenshotter) Pending() int { return len(s.queue) }

// Flush writes fb once per queued label and returns the written paths. The
// queue is emptied even when writing fails.
func (s *Screenshotter) Flush(fb *Bitmap) ([]string, error) {
	if len(s.queue) == 0 {
		return nil, nil
	}
	defer func() { s.queue = s.queue[:0] }()

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("snaek: screenshot: mkdir %s: %w", s.Dir, err)
	}

	img := ScaleNearest(BitmapToNRGBA(fb), s.Scale)

	now := time.Now
	if s.now != nil {
		now = s.now
	}
	stamp := now().Format("20060102_150405")

	var paths []string
	for _, label := range s.queue {
		path := filepath.Join(s.Dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			return paths, fmt.Errorf("snaek: screenshot: %w", err)
		}
		Logger().Info("screenshot written", "path", path)
		paths = append(paths, path)
	}
	return paths, nil
}

// ScaleNearest returns img enlarged by an integer factor with
// nearest-neighbour sampling. A factor of 1 or less returns img unchanged.
func ScaleNearest(img *image.NRGBA, factor int) *image.NRGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(out, out.Bounds(), img, b, draw.Src, nil)
	return out
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
