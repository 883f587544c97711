// Package host runs a snaek application in an Ebitengine window. Each tick it
// polls input, runs the application's update and UI frame, renders the draw
// list in software and presents the framebuffer scaled by an integer factor.
package host

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/snaek"
	"github.com/phanxgames/snaek/config"
)

// ErrQuit ends the game loop without an error. Return it from App.Update.
var ErrQuit = fmt.Errorf("host: quit: %w", ebiten.Termination)

// App is a game driven by the host.
type App interface {
	// Update runs once per tick before the UI frame is built.
	Update(f *Frame) error
	// Build declares the widget tree.
	Build(c *snaek.Context)
	// Overlay appends draw commands after the widgets.
	Overlay(c *snaek.Context)
}

// Frame is the input of one tick, in logical viewport coordinates.
type Frame struct {
	DT    float32 // seconds since the last tick
	Mouse snaek.Mouse
	Keys  []ebiten.Key // keys that went down this tick
	Count uint64
}

// JustPressed reports whether k went down this tick.
func (f *Frame) JustPressed(k ebiten.Key) bool {
	return slices.Contains(f.Keys, k)
}

// NewRenderer creates a renderer for viewport with the font assets named in
// cfg. Without a font sheet text is measured but not drawn.
func NewRenderer(cfg config.Config, viewport snaek.Size) (*snaek.Renderer, error) {
	font := snaek.DefaultASCIIFont()
	if cfg.Assets.Font != "" {
		data, err := os.ReadFile(cfg.Assets.Font)
		if err != nil {
			return nil, fmt.Errorf("host: font: %w", err)
		}
		if font, err = snaek.LoadBitmapFont(data); err != nil {
			return nil, fmt.Errorf("host: font: %w", err)
		}
	}

	var sheet *snaek.Bitmap
	if cfg.Assets.FontSheet != "" {
		var err error
		if sheet, err = snaek.LoadBitmap(cfg.Assets.FontSheet); err != nil {
			return nil, fmt.Errorf("host: font sheet: %w", err)
		}
	} else {
		snaek.Logger().Warn("no font sheet configured, text will not be drawn")
	}
	return snaek.NewRenderer(snaek.NewBitmap(viewport), font, sheet), nil
}

// Run opens the window and drives g until the app quits or the window is
// closed. ErrQuit is not reported as an error.
func Run(g *Game) error {
	w := g.cfg.Window
	size := g.renderer.Framebuffer().Size()
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowSize(int(size.W)*w.Scale, int(size.H)*w.Scale)
	ebiten.SetWindowDecorated(!w.Undecorated)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(w.TPS)
	if g.HideCursor {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	err := ebiten.RunGame(g)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("host: %w", err)
	}
	return nil
}

// EnableDebugLogging routes toolkit logs to stderr at debug level.
func EnableDebugLogging() {
	snaek.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}
