package snake

import (
	"math"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/snaek"
)

// Viewport is the logical size of the game window.
var Viewport = snaek.Size{W: 97, H: 124}

const (
	// CellSize is the size of one grid cell in pixels.
	CellSize = 7

	// GridCols and GridRows are the playfield size in cells.
	GridCols = 11
	GridRows = 11

	// DefaultStepInterval is the time between two snake steps, in seconds.
	DefaultStepInterval float32 = 0.15

	// EndFadeDuration is how long the playfield takes to dim once the game
	// is over, in seconds.
	EndFadeDuration float32 = 0.4
)

var (
	colorPaper = snaek.ColorFromHex(0xffc0cbdc)
	colorInk   = snaek.ColorFromHex(0xff181425)
	colorClose = snaek.ColorFromHex(0xffe43b44)
	colorShade = snaek.ColorFromHex(0x40181425)
	colorDim   = snaek.ColorFromHex(0x90181425)
)

// sparksConfig is the burst thrown out of an eaten banana.
var sparksConfig = snaek.EmitterConfig{
	MaxParticles: 48,
	Lifetime:     snaek.Range{Min: 0.25, Max: 0.5},
	Speed:        snaek.Range{Min: 15, Max: 35},
	Angle:        snaek.Range{Min: 0, Max: 2 * math.Pi},
	Gravity:      60,
	StartColor:   snaek.ColorFromHex(0xfffee761),
	EndColor:     snaek.ColorFromHex(0x00feae34),
}

// Screen is the whole game window: a navbar with the close and minimize
// buttons, the score, a play timer, restart and pause buttons, and the
// playfield. It steps its Game on a fixed interval.
type Screen struct {
	StepInterval float32

	game  *Game
	sheet *Sheet

	paused  bool
	acc     float32
	elapsed float32
	cursor  snaek.Pos

	sparks *snaek.Emitter
	dim    *snaek.ColorTween // nil until the game is over
	field  snaek.Rect        // playfield content area as of the last layout

	quit     bool
	minimize bool
}

// NewScreen returns a screen playing game with the sprites of sheet.
func NewScreen(game *Game, sheet *Sheet) *Screen {
	return &Screen{
		StepInterval: DefaultStepInterval,
		game:         game,
		sheet:        sheet,
		sparks:       snaek.NewEmitter(sparksConfig, nil),
	}
}

func (s *Screen) Game() *Game       { return s.game }
func (s *Screen) Paused() bool      { return s.paused }
func (s *Screen) Elapsed() float32  { return s.elapsed }
func (s *Screen) Cursor() snaek.Pos { return s.cursor }

// Sparks returns the emitter that bursts when a banana is eaten.
func (s *Screen) Sparks() *snaek.Emitter { return s.sparks }

// QuitRequested reports whether the close button was clicked.
func (s *Screen) QuitRequested() bool { return s.quit }

// MinimizeRequested reports whether the minimize button was clicked since the
// last call.
func (s *Screen) MinimizeRequested() bool {
	m := s.minimize
	s.minimize = false
	return m
}

// Update advances the game clock by dt seconds and records the cursor
// position for the overlay. Nothing moves while paused or after the game is
// over.
func (s *Screen) Update(dt float32, cursor snaek.Pos) {
	s.cursor = cursor
	s.sparks.Update(dt)
	if s.game.Over() {
		if s.dim == nil {
			s.dim = snaek.TweenColor(colorDim.WithAlpha(0), colorDim, EndFadeDuration, ease.OutQuad)
		}
		s.dim.Update(dt)
	}
	if s.paused || s.game.Over() || s.StepInterval <= 0 {
		return
	}
	s.elapsed += dt
	s.acc += dt
	for s.acc >= s.StepInterval && !s.game.Over() {
		s.acc -= s.StepInterval
		banana, eaten := s.game.Banana(), s.game.BananasEaten()
		s.game.Step()
		if s.game.BananasEaten() > eaten {
			s.burst(banana)
		}
	}
}

// burst throws sparks out of the center of grid cell p.
func (s *Screen) burst(p snaek.Pos) {
	at := snaek.Pos{
		X: s.field.X + p.X*CellSize + CellSize/2,
		Y: s.field.Y + p.Y*CellSize + CellSize/2,
	}
	s.sparks.Burst(16, at)
}

// Steer forwards d to the game unless it is paused or over.
func (s *Screen) Steer(d Direction) {
	if s.paused || s.game.Over() {
		return
	}
	s.game.ChangeDirection(d)
}

// TogglePause pauses or resumes a running game.
func (s *Screen) TogglePause() {
	if s.game.Over() {
		return
	}
	s.paused = !s.paused
}

// Restart starts a new game and resets the clock.
func (s *Screen) Restart() {
	s.game.Restart()
	s.sparks.Reset()
	s.dim = nil
	s.paused = false
	s.acc, s.elapsed = 0, 0
}

// Build declares the widget tree for this frame. Clicks seen by the last
// react pass are applied while building.
func (s *Screen) Build(c *snaek.Context) {
	frame := c.BuildWidget(snaek.Props{
		Key:         snaek.Key(),
		Flags:       snaek.FlagDrawBackground | snaek.FlagDrawBorder,
		Color:       colorPaper,
		BorderColor: colorInk,
		BorderWidth: 1,
		Comp:        snaek.CompSrc,
		Size:        snaek.SizeFill(),
		Padding:     snaek.PadAll(1),
		Layout:      snaek.FlexV(0),
	})
	c.AddChild(snaek.RootWidget, frame.ID)

	c.AddChild(frame.ID, s.buildNavbar(c))

	game := c.BuildWidget(snaek.Props{
		Key:     snaek.Key(),
		Flags:   snaek.FlagDrawSprite,
		Sprite:  s.sheet.Box(s.sheet.BoxEmbossed),
		Comp:    snaek.CompSrc,
		Anchor:  snaek.AnchorCenter,
		Origin:  snaek.AnchorCenter,
		Size:    snaek.SizeFill(),
		Padding: snaek.PadAll(3),
		Layout:  snaek.FlexV(2),
	})
	c.AddChild(game.ID, s.buildTopBar(c))
	c.AddChild(game.ID, s.buildPlayfield(c))
	c.AddChild(frame.ID, game.ID)
}

// Overlay draws the banana sparks and the mouse cursor on top of the widgets.
func (s *Screen) Overlay(c *snaek.Context) {
	s.sparks.Draw(c)
	c.PushDraw(snaek.DrawSprite(s.sheet.ID, s.sheet.Cursor, s.cursor, snaek.Rotate0, snaek.CompOver))
}

func (s *Screen) buildNavbar(c *snaek.Context) snaek.WidgetID {
	navbar := c.BuildWidget(snaek.Props{
		Key:    snaek.Key(),
		Size:   snaek.WidgetSize{W: snaek.Fill(), H: snaek.Fixed(8)},
		Layout: snaek.FlexH(0),
	})

	icon := c.BuildWidget(snaek.Props{
		Key:    snaek.Key(),
		Flags:  snaek.FlagDrawSprite,
		Sprite: snaek.SimpleSprite(s.sheet.ID, s.sheet.Icon),
		Size:   snaek.SizeFixed(8, 8),
		Offset: snaek.Pos{X: 1, Y: 1},
	})
	c.AddChild(navbar.ID, icon.ID)

	menu := c.Spacer(snaek.Key(), snaek.SizeFill())
	title := c.Label(snaek.Key(), c.Text("Snaek"), snaek.AnchorCenterLeft, snaek.AnchorCenterLeft)
	c.AddChild(menu.ID, title.ID)
	c.AddChild(navbar.ID, menu.ID)

	minimize := c.BtnIcon(snaek.Key(), snaek.BtnIconOptions{
		Sheet:      s.sheet.ID,
		Icon:       s.sheet.IconMinimize,
		Size:       snaek.SizeFixed(7, 7),
		HoverColor: colorShade,
	})
	c.AddChild(navbar.ID, minimize.ID)

	closeBtn := c.BtnIcon(snaek.Key(), snaek.BtnIconOptions{
		Sheet:      s.sheet.ID,
		Icon:       s.sheet.IconClose,
		Size:       snaek.SizeFixed(7, 7),
		HoverColor: colorClose,
	})
	c.AddChild(navbar.ID, closeBtn.ID)

	if minimize.Clicked() {
		s.minimize = true
	}
	if closeBtn.Clicked() {
		s.quit = true
	}
	return navbar.ID
}

func (s *Screen) buildTopBar(c *snaek.Context) snaek.WidgetID {
	bar := c.BuildWidget(snaek.Props{
		Key:    snaek.Key(),
		Size:   snaek.WidgetSize{W: snaek.Fill(), H: snaek.Hug()},
		Layout: snaek.FlexH(2),
	})

	score := c.Big3DigitsDisplay(snaek.Key(), s.game.BananasEaten(), s.sheet.BigDigits())
	c.AddChild(bar.ID, score.ID)
	c.AddChild(bar.ID, c.Spacer(snaek.Key(), snaek.SizeFill()).ID)
	c.AddChild(bar.ID, s.buildTimer(c))

	restart := s.iconButton(c, snaek.Key(), s.sheet.IconRestart)
	c.AddChild(bar.ID, restart.ID)

	pauseIcon := s.sheet.IconPause
	if s.paused {
		pauseIcon = s.sheet.IconPlay
	}
	pause := s.iconButton(c, snaek.Key(), pauseIcon)
	c.AddChild(bar.ID, pause.ID)

	if restart.Clicked() {
		s.Restart()
	}
	if pause.Clicked() {
		s.TogglePause()
	}
	return bar.ID
}

// buildTimer shows the play time as M:SS. From ten minutes on the minutes
// digit turns into a bang.
func (s *Screen) buildTimer(c *snaek.Context) snaek.WidgetID {
	box := c.BuildWidget(snaek.Props{
		Key:     snaek.Key(),
		Flags:   snaek.FlagDrawSprite,
		Sprite:  s.sheet.Box(s.sheet.BoxNumDisplay),
		Anchor:  snaek.AnchorCenterLeft,
		Origin:  snaek.AnchorCenterLeft,
		Size:    snaek.SizeHug(),
		Padding: snaek.PadAll(2),
		Layout:  snaek.FlexH(1),
	})

	secs := int(s.elapsed)
	minutes := s.sheet.NumBang
	if secs < 600 {
		minutes = s.sheet.Nums[secs/60]
	}
	glyphs := [...]snaek.Sprite{
		minutes,
		s.sheet.NumColon,
		s.sheet.Nums[secs%60/10],
		s.sheet.Nums[secs%10],
	}
	for i, g := range glyphs {
		digit := c.Image(snaek.Key(uint64(i)), s.sheet.ID, g, snaek.AnchorTopLeft, snaek.AnchorTopLeft, snaek.CompDefault)
		c.AddChild(box.ID, digit.ID)
	}
	return box.ID
}

func (s *Screen) iconButton(c *snaek.Context, key snaek.WidgetKey, icon snaek.Sprite) snaek.Reaction {
	img := c.Image(snaek.KeyOf(key), s.sheet.ID, icon, snaek.AnchorCenter, snaek.AnchorCenter, snaek.CompDefault)
	return c.BtnBox(key, snaek.BtnBoxOptions{
		Size:    snaek.SizeFixed(12, 12),
		Normal:  s.sheet.Box(s.sheet.BoxEmbossed),
		Pressed: s.sheet.Box(s.sheet.BoxCarved),
		Anchor:  snaek.AnchorCenterLeft,
		Origin:  snaek.AnchorCenterLeft,
	}, img.ID)
}

func (s *Screen) buildPlayfield(c *snaek.Context) snaek.WidgetID {
	cols, rows := s.game.Size()
	border := s.sheet.BoxPlayfield.BorderSize()
	field := c.BuildWidget(snaek.Props{
		Key:    snaek.Key(),
		Flags:  snaek.FlagDrawSprite,
		Sprite: s.sheet.Box(s.sheet.BoxPlayfield),
		Anchor: snaek.AnchorTopCenter,
		Origin: snaek.AnchorTopCenter,
		Size: snaek.SizeFixed(
			uint16(cols*CellSize)+border.W,
			uint16(rows*CellSize)+border.H,
		),
		Padding: boxPadding(s.sheet.BoxPlayfield),
	})
	if w, ok := c.Widget(field.ID); ok && !w.SolvedRect().Empty() {
		r, pad := w.SolvedRect(), boxPadding(s.sheet.BoxPlayfield)
		s.field = snaek.Rect{
			X: r.X + pad.L,
			Y: r.Y + pad.T,
			W: r.W - uint16(pad.L+pad.R),
			H: r.H - uint16(pad.T+pad.B),
		}
		s.sparks.Config().Clip = s.field
	}

	banana := s.game.Banana()
	s.cell(c, field.ID, snaek.Key(), s.sheet.Banana(s.game.BananasEaten()+1), snaek.Rotate0, banana)

	body := s.game.body
	for i, p := range body {
		sprite, rot := s.segment(i)
		s.cell(c, field.ID, snaek.Key(uint64(i)), sprite, rot, p)
	}
	if tongue, at, ok := s.tongue(); ok {
		w := c.BuildWidget(snaek.Props{
			Key:      snaek.Key(),
			Flags:    snaek.FlagDrawSprite,
			Sprite:   snaek.SimpleSprite(s.sheet.ID, s.sheet.SnakeTongue),
			Rotation: tongue,
			Size:     snaek.SizeHug(),
			Offset:   at,
		})
		c.AddChild(field.ID, w.ID)
	}

	if s.dim != nil {
		dim := c.BuildWidget(snaek.Props{
			Key:   snaek.Key(),
			Flags: snaek.FlagDrawBackground,
			Color: s.dim.Value(),
			Size:  snaek.SizeFill(),
		})
		c.AddChild(field.ID, dim.ID)
	}

	switch {
	case s.game.Dead():
		c.AddChild(field.ID, s.buildEndPanel(c, "GAME OVER", s.sheet.BoxRed))
	case s.game.Won():
		c.AddChild(field.ID, s.buildEndPanel(c, "YOU WIN", s.sheet.BoxGreen))
	case s.paused:
		paused := c.Label(snaek.Key(), c.Text("PAUSED"), snaek.AnchorCenter, snaek.AnchorCenter)
		c.AddChild(field.ID, paused.ID)
	}
	return field.ID
}

// cell places sprite over grid cell p of the playfield.
func (s *Screen) cell(c *snaek.Context, field snaek.WidgetID, key snaek.WidgetKey, sprite snaek.Sprite, rot snaek.Rotation, p snaek.Pos) {
	w := c.BuildWidget(snaek.Props{
		Key:      key,
		Flags:    snaek.FlagDrawSprite,
		Sprite:   snaek.SimpleSprite(s.sheet.ID, sprite),
		Rotation: rot,
		Size:     snaek.SizeFixed(CellSize, CellSize),
		Offset:   snaek.Pos{X: p.X * CellSize, Y: p.Y * CellSize},
	})
	c.AddChild(field, w.ID)
}

// segment picks the sprite and rotation of body cell i from its neighbours.
func (s *Screen) segment(i int) (snaek.Sprite, snaek.Rotation) {
	g := s.game
	body := g.body
	last := len(body) - 1
	switch {
	case last == 0:
		return s.sheet.SnakeHead, rotationOf(g.moved)
	case i == 0:
		d, _ := g.Toward(body[1], body[0])
		return s.sheet.SnakeHead, rotationOf(d)
	case i == last:
		d, _ := g.Toward(body[i], body[i-1])
		return s.sheet.SnakeEnd, rotationOf(d)
	}

	front, _ := g.Toward(body[i], body[i-1])
	back, _ := g.Toward(body[i], body[i+1])
	if front == back.Opposite() {
		if front == Left || front == Right {
			return s.sheet.SnakeStraight, snaek.Rotate0
		}
		return s.sheet.SnakeStraight, snaek.Rotate90
	}
	// The turn sprite joins Left and Down; each quarter turn moves both
	// openings one direction clockwise.
	for r := range Direction(4) {
		a, b := (Left+r)%4, (Down+r)%4
		if (a == front && b == back) || (a == back && b == front) {
			return s.sheet.SnakeTurn, snaek.Rotation(r)
		}
	}
	return s.sheet.SnakeStraight, snaek.Rotate0
}

// tongue flicks out of the head every few steps while the snake is alive.
// It is hidden when the cell ahead wraps around the playfield.
func (s *Screen) tongue() (snaek.Rotation, snaek.Pos, bool) {
	g := s.game
	if g.Over() || g.steps/3%2 == 1 {
		return 0, snaek.Pos{}, false
	}
	d := g.moved
	head := g.body[0]
	ahead := head.Add(d.delta())
	if ahead != g.wrap(ahead) {
		return 0, snaek.Pos{}, false
	}

	at := snaek.Pos{X: ahead.X * CellSize, Y: ahead.Y * CellSize}
	switch d {
	case Right:
		at = at.Add(snaek.Pos{Y: 2})
	case Left:
		at = at.Add(snaek.Pos{X: 4, Y: 2})
	case Down:
		at = at.Add(snaek.Pos{X: 2})
	case Up:
		at = at.Add(snaek.Pos{X: 2, Y: 4})
	}
	return rotationOf(d), at, true
}

func (s *Screen) buildEndPanel(c *snaek.Context, title string, box snaek.NineSlicingSprite) snaek.WidgetID {
	panel := c.BuildWidget(snaek.Props{
		Key:     snaek.Key(),
		Flags:   snaek.FlagDrawSprite,
		Sprite:  s.sheet.Box(box),
		Anchor:  snaek.AnchorCenter,
		Origin:  snaek.AnchorCenter,
		Size:    snaek.SizeHug(),
		Padding: snaek.PadAll(4),
		Layout:  snaek.FlexV(3),
	})

	label := c.Label(snaek.Key(), c.Text(title), snaek.AnchorTopCenter, snaek.AnchorTopCenter)
	c.AddChild(panel.ID, label.ID)

	retry := c.TextButton(snaek.Key(), "Retry", snaek.BtnBoxOptions{
		Size:    snaek.SizeHug(),
		Padding: snaek.PadHV(3, 2),
		Normal:  s.sheet.Box(s.sheet.BoxEmbossed),
		Pressed: s.sheet.Box(s.sheet.BoxCarved),
		Anchor:  snaek.AnchorTopCenter,
		Origin:  snaek.AnchorTopCenter,
	})
	c.AddChild(panel.ID, retry.ID)

	if retry.Clicked() {
		s.Restart()
	}
	return panel.ID
}

// boxPadding insets content to the center part of n.
func boxPadding(n snaek.NineSlicingSprite) snaek.Padding {
	return snaek.Padding{
		T: int16(n.HT),
		R: int16(n.Sprite.Rect.W - n.VR),
		B: int16(n.Sprite.Rect.H - n.HB),
		L: int16(n.VL),
	}
}

// rotationOf turns a right-facing sprite to face d.
func rotationOf(d Direction) snaek.Rotation {
	return snaek.Rotation((d + 3) % 4)
}
