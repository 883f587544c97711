package snaek

// ButtonState is a mouse button sampled on this frame and the previous one.
type ButtonState struct {
	Down    bool
	WasDown bool
}

// JustPressed reports an up-to-down transition on this frame.
func (b ButtonState) JustPressed() bool { return b.Down && !b.WasDown }

// JustReleased reports a down-to-up transition on this frame.
func (b ButtonState) JustReleased() bool { return !b.Down && b.WasDown }

// update shifts the current sample into the previous one.
func (b *ButtonState) update(down bool) {
	b.WasDown = b.Down
	b.Down = down
}

// Mouse is the pointer as the react pass sees it, in logical viewport
// coordinates.
type Mouse struct {
	X, Y int16

	Left   ButtonState
	Right  ButtonState
	Middle ButtonState
}

// Update records a new sample. Each button's previous state becomes the
// state from the last Update.
func (m *Mouse) Update(x, y int16, left, right, middle bool) {
	m.X, m.Y = x, y
	m.Left.update(left)
	m.Right.update(right)
	m.Middle.update(middle)
}

// Button returns the state of btn.
func (m *Mouse) Button(btn MouseButton) ButtonState {
	switch btn {
	case MouseButtonRight:
		return m.Right
	case MouseButtonMiddle:
		return m.Middle
	default:
		return m.Left
	}
}

// Pos returns the pointer position.
func (m *Mouse) Pos() Pos { return Pos{X: m.X, Y: m.Y} }
