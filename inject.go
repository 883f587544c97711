package snaek

// syntheticPointerEvent is a single injected pointer sample in logical
// viewport coordinates, the same space screenshots are taken in.
type syntheticPointerEvent struct {
	x, y    int16
	pressed bool
	button  MouseButton
}

// Injector queues synthetic pointer samples. Each queued sample replaces the
// polled mouse for exactly one frame.
type Injector struct {
	queue []syntheticPointerEvent
}

// InjectPress queues a left-button press at (x, y).
func (in *Injector) InjectPress(x, y int16) {
	in.queue = append(in.queue, syntheticPointerEvent{x: x, y: y, pressed: true, button: MouseButtonLeft})
}

// InjectMove queues a pointer move to (x, y) with the left button held down.
// Use it between InjectPress and InjectRelease to simulate a drag.
func (in *Injector) InjectMove(x, y int16) {
	in.queue = append(in.queue, syntheticPointerEvent{x: x, y: y, pressed: true, button: MouseButtonLeft})
}

// InjectHover queues a pointer move to (x, y) with no button held.
func (in *Injector) InjectHover(x, y int16) {
	in.queue = append(in.queue, syntheticPointerEvent{x: x, y: y, button: MouseButtonLeft})
}

// InjectRelease queues a left-button release at (x, y).
func (in *Injector) InjectRelease(x, y int16) {
	in.queue = append(in.queue, syntheticPointerEvent{x: x, y: y, pressed: false, button: MouseButtonLeft})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (in *Injector) InjectClick(x, y int16) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The total sequence consumes frames frames, at least 2.
func (in *Injector) InjectDrag(fromX, fromY, toX, toY int16, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float32(i) / float32(steps+1)
		x := float32(fromX) + float32(int(toX)-int(fromX))*t
		y := float32(fromY) + float32(int(toY)-int(fromY))*t
		in.InjectMove(satI16(int(x)), satI16(int(y)))
	}
	in.InjectRelease(toX, toY)
}

// Pending returns the number of queued samples.
func (in *Injector) Pending() int { return len(in.queue) }

// Next pops one queued sample into m and reports whether there was one. When
// it returns false the caller should feed m from real input instead.
func (in *Injector) Next(m *Mouse) bool {
	if len(in.queue) == 0 {
		return false
	}
	evt := in.queue[0]
	copy(in.queue, in.queue[1:])
	in.queue = in.queue[:len(in.queue)-1]

	var left, right, middle bool
	switch evt.button {
	case MouseButtonRight:
		right = evt.pressed
	case MouseButtonMiddle:
		middle = evt.pressed
	default:
		left = evt.pressed
	}
	m.Update(evt.x, evt.y, left, right, middle)
	return true
}
