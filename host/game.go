package host

import (
	"fmt"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/snaek"
	"github.com/phanxgames/snaek/config"
)

// Game adapts an App to ebiten.Game.
type Game struct {
	// HideCursor hides the system cursor for apps that draw their own.
	HideCursor bool

	cfg      config.Config
	app      App
	ctx      *snaek.Context
	renderer *snaek.Renderer

	mouse    snaek.Mouse
	keys     []ebiten.Key
	injector snaek.Injector
	runner   *snaek.TestRunner
	shots    snaek.Screenshotter
	fps      fpsMeter

	img  *ebiten.Image
	rgba []byte
}

// NewGame prepares app to run with r. When cfg names a test script it is
// loaded and played from the first tick.
func NewGame(cfg config.Config, r *snaek.Renderer, app App) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	size := r.Framebuffer().Size()
	g := &Game{
		cfg:      cfg,
		app:      app,
		ctx:      snaek.NewContext(size),
		renderer: r,
		shots: snaek.Screenshotter{
			Dir:   cfg.Debug.ScreenshotDir,
			Scale: cfg.Debug.ScreenshotScale,
		},
		rgba: make([]byte, 4*size.Area()),
	}
	g.ctx.SetFont(r.Font())

	if cfg.Debug.Enabled {
		EnableDebugLogging()
		g.ctx.SetDebugMode(true)
	}
	if cfg.Debug.Script != "" {
		data, err := os.ReadFile(cfg.Debug.Script)
		if err != nil {
			return nil, fmt.Errorf("host: test script: %w", err)
		}
		if g.runner, err = snaek.LoadTestScript(data); err != nil {
			return nil, fmt.Errorf("host: %w", err)
		}
	}
	return g, nil
}

// Context returns the UI context the app is built into.
func (g *Game) Context() *snaek.Context { return g.ctx }

// Injector returns the synthetic input queue. Queued samples replace real
// mouse input until drained.
func (g *Game) Injector() *snaek.Injector { return &g.injector }

// Screenshot queues a capture of the next rendered frame.
func (g *Game) Screenshot(label string) { g.shots.Queue(label) }

// rawInput is what one tick reads from the window.
type rawInput struct {
	x, y                int
	left, right, middle bool
	keys                []ebiten.Key
	fps, tps            float64
}

func (g *Game) poll() rawInput {
	in := rawInput{
		left:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		right:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		middle: ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		keys:   inpututil.AppendJustPressedKeys(g.keys[:0]),
		fps:    ebiten.ActualFPS(),
		tps:    ebiten.ActualTPS(),
	}
	in.x, in.y = ebiten.CursorPosition()
	return in
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	return g.tick(g.poll())
}

// tick runs one frame of the contract: input, app update, UI frame, hover
// animation, rendering and screenshots.
func (g *Game) tick(in rawInput) error {
	g.keys = in.keys
	dt := 1 / float32(g.cfg.Window.TPS)
	g.fps.tick(dt, in.fps, in.tps)

	for _, k := range in.keys {
		if k == ebiten.KeyEscape {
			return ErrQuit
		}
	}

	if g.runner != nil {
		g.runner.Step(&g.injector, g.shots.Queue)
	}
	if !g.injector.Next(&g.mouse) {
		x, y := toLogical(in.x, in.y, g.cfg.Window.Scale)
		g.mouse.Update(x, y, in.left, in.right, in.middle)
	}

	frame := &Frame{DT: dt, Mouse: g.mouse, Keys: in.keys, Count: g.ctx.FrameCount()}
	if err := g.app.Update(frame); err != nil {
		return err
	}

	cmds := g.ctx.Frame(g.mouse, g.app.Build, g.app.Overlay)
	g.ctx.Animate(dt)
	g.renderer.Draw(cmds)

	if _, err := g.shots.Flush(g.renderer.Framebuffer()); err != nil {
		snaek.Logger().Error("screenshot failed", "err", err)
	}
	if g.runner != nil && g.runner.Done() && g.shots.Pending() == 0 && g.injector.Pending() == 0 {
		snaek.Logger().Info("test script finished")
		return ErrQuit
	}
	return nil
}

// Draw implements ebiten.Game. It uploads framebuffer 0 and scales it to the
// window with nearest-neighbour sampling.
func (g *Game) Draw(screen *ebiten.Image) {
	fb := g.renderer.Framebuffer()
	size := fb.Size()
	if g.img == nil {
		g.img = ebiten.NewImage(int(size.W), int(size.H))
	}
	argbToRGBA(g.rgba, fb.Pixels())
	g.img.WritePixels(g.rgba)

	scale := float64(g.cfg.Window.Scale)
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(scale, scale)
	screen.DrawImage(g.img, op)

	if g.cfg.Debug.ShowFPS {
		ebitenutil.DebugPrintAt(screen, g.fps.text, 2, screen.Bounds().Dy()-16)
	}
}

// Layout implements ebiten.Game. The screen is the viewport times the window
// scale so presentation controls the filter.
func (g *Game) Layout(_, _ int) (int, int) {
	size := g.renderer.Framebuffer().Size()
	return int(size.W) * g.cfg.Window.Scale, int(size.H) * g.cfg.Window.Scale
}

// toLogical maps a screen position to viewport coordinates.
func toLogical(x, y, scale int) (int16, int16) {
	scale = max(scale, 1)
	return clampI16(floorDiv(x, scale)), clampI16(floorDiv(y, scale))
}

func clampI16(v int) int16 {
	return int16(min(max(v, math.MinInt16), math.MaxInt16))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
