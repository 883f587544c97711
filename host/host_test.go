package host

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/snaek"
	"github.com/phanxgames/snaek/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApp struct {
	frames []Frame
	color  snaek.Color
	err    error
}

func (a *fakeApp) Update(f *Frame) error {
	a.frames = append(a.frames, *f)
	return a.err
}

func (a *fakeApp) Build(c *snaek.Context) {
	w := c.BuildWidget(snaek.Props{
		Key:   1,
		Flags: snaek.FlagDrawBackground | snaek.FlagCanClick,
		Color: a.color,
		Size:  snaek.SizeFill(),
	})
	c.AddChild(snaek.RootWidget, w.ID)
}

func (a *fakeApp) Overlay(c *snaek.Context) {
	c.PushDraw(snaek.FillRect(snaek.Rect{W: 1, H: 1}, snaek.White, snaek.CompSrc))
}

func newTestGame(t *testing.T, cfg config.Config, app App) *Game {
	t.Helper()
	r := snaek.NewRenderer(snaek.NewBitmap(snaek.Size{W: 8, H: 8}), nil, nil)
	g, err := NewGame(cfg, r, app)
	require.NoError(t, err)
	return g
}

func testConfig(t *testing.T) config.Config {
	cfg := config.Default()
	cfg.Debug.ScreenshotDir = t.TempDir()
	return cfg
}

func TestArgbToRGBA(t *testing.T) {
	src := []uint32{0xffff0000, 0x80ff0000, 0x00ffffff, 0xff102030}
	dst := make([]byte, 4*len(src))
	argbToRGBA(dst, src)

	assert.Equal(t, []byte{
		0xff, 0, 0, 0xff,
		0x80, 0, 0, 0x80,
		0, 0, 0, 0,
		0x10, 0x20, 0x30, 0xff,
	}, dst)
}

func TestToLogical(t *testing.T) {
	tests := []struct {
		x, y, scale int
		wx, wy      int16
	}{
		{9, 5, 4, 2, 1},
		{0, 0, 4, 0, 0},
		{-1, 3, 4, -1, 0},
		{7, 7, 0, 7, 7},
	}
	for _, tt := range tests {
		x, y := toLogical(tt.x, tt.y, tt.scale)
		assert.Equal(t, tt.wx, x, "x of (%d,%d)/%d", tt.x, tt.y, tt.scale)
		assert.Equal(t, tt.wy, y, "y of (%d,%d)/%d", tt.x, tt.y, tt.scale)
	}
}

func TestFrameJustPressed(t *testing.T) {
	f := &Frame{Keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeySpace}}
	assert.True(t, f.JustPressed(ebiten.KeySpace))
	assert.False(t, f.JustPressed(ebiten.KeyArrowDown))
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Scale = 0
	_, err := NewGame(cfg, snaek.NewRenderer(snaek.NewBitmap(snaek.Size{W: 1, H: 1}), nil, nil), &fakeApp{})
	assert.Error(t, err)
}

func TestTickRunsFrame(t *testing.T) {
	cfg := testConfig(t)
	green := snaek.ColorFromHex(0xff00ff00)
	app := &fakeApp{color: green}
	g := newTestGame(t, cfg, app)

	require.NoError(t, g.tick(rawInput{x: 20, y: 12, left: true}))

	require.Len(t, app.frames, 1)
	f := app.frames[0]
	assert.InDelta(t, 1.0/60, f.DT, 1e-6)
	assert.Equal(t, snaek.Pos{X: 5, Y: 3}, f.Mouse.Pos())
	assert.True(t, f.Mouse.Left.Down)

	fb := g.renderer.Framebuffer()
	assert.Equal(t, snaek.White, fb.At(0, 0), "overlay drawn after widgets")
	assert.Equal(t, green, fb.At(4, 4))

	id, ok := g.Context().Lookup(1)
	require.True(t, ok)
	w, _ := g.Context().Widget(id)
	assert.True(t, w.Pressed(), "react pass saw the press")
}

func TestTickEscapeQuits(t *testing.T) {
	app := &fakeApp{}
	g := newTestGame(t, testConfig(t), app)

	err := g.tick(rawInput{keys: []ebiten.Key{ebiten.KeyEscape}})
	assert.ErrorIs(t, err, ErrQuit)
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Empty(t, app.frames)
}

func TestTickPropagatesAppError(t *testing.T) {
	app := &fakeApp{err: os.ErrClosed}
	g := newTestGame(t, testConfig(t), app)
	assert.ErrorIs(t, g.tick(rawInput{}), os.ErrClosed)
}

func TestTickInjectedInputWins(t *testing.T) {
	app := &fakeApp{}
	g := newTestGame(t, testConfig(t), app)
	g.Injector().InjectPress(3, 2)

	require.NoError(t, g.tick(rawInput{x: 28, y: 28}))
	assert.Equal(t, snaek.Pos{X: 3, Y: 2}, app.frames[0].Mouse.Pos())
	assert.True(t, app.frames[0].Mouse.Left.Down)

	require.NoError(t, g.tick(rawInput{x: 28, y: 28}))
	assert.Equal(t, snaek.Pos{X: 7, Y: 7}, app.frames[1].Mouse.Pos(), "real input once drained")
}

func TestTickScriptScreenshotsAndQuits(t *testing.T) {
	cfg := testConfig(t)
	script := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(script, []byte(`steps:
  - {action: click, x: 2, y: 2}
  - {action: screenshot, label: done}
`), 0o644))
	cfg.Debug.Script = script

	g := newTestGame(t, cfg, &fakeApp{color: snaek.Black})

	var err error
	for i := 0; i < 10 && err == nil; i++ {
		err = g.tick(rawInput{})
	}
	require.ErrorIs(t, err, ErrQuit)

	shots, globErr := filepath.Glob(filepath.Join(cfg.Debug.ScreenshotDir, "*_done.png"))
	require.NoError(t, globErr)
	assert.Len(t, shots, 1)
}

func TestNewGameMissingScript(t *testing.T) {
	cfg := testConfig(t)
	cfg.Debug.Script = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := NewGame(cfg, snaek.NewRenderer(snaek.NewBitmap(snaek.Size{W: 1, H: 1}), nil, nil), &fakeApp{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFPSMeter(t *testing.T) {
	var m fpsMeter
	m.tick(0.1, 59.9, 60)
	assert.Equal(t, "FPS: 59.9\nTPS: 60.0", m.text)

	m.tick(0.1, 30, 30)
	assert.Equal(t, "FPS: 59.9\nTPS: 60.0", m.text, "held until half a second passes")

	m.tick(0.5, 30, 30)
	assert.Equal(t, "FPS: 30.0\nTPS: 30.0", m.text)
}
