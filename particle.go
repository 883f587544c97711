package snaek

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

// particle holds per-particle simulation state. Unexported; managed by Emitter.
type particle struct {
	x, y    float32
	vx, vy  float32
	life    float32 // remaining lifetime in seconds
	maxLife float32
}

// Range is an inclusive interval sampled uniformly.
type Range struct {
	Min, Max float32
}

func (r Range) sample(rng *rand.Rand) float32 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float32()*(r.Max-r.Min)
}

// EmitterConfig controls how particles are spawned and behave.
type EmitterConfig struct {
	// MaxParticles is the pool size. Bursts past it are silently dropped.
	MaxParticles int
	// Lifetime is the range of particle lifetimes in seconds.
	Lifetime Range
	// Speed is the range of initial speeds in pixels per second.
	Speed Range
	// Angle is the range of emission angles in radians. Zero points right
	// and angles grow clockwise, matching screen coordinates.
	Angle Range
	// Gravity is the downward acceleration in pixels per second squared.
	Gravity float32
	// StartColor is the color at birth, interpolated to EndColor over the
	// particle's lifetime.
	StartColor Color
	EndColor   Color
	Comp       CompMode
	// Clip kills particles that leave it. The zero rect does not clip.
	Clip Rect
}

// Emitter is a pool of one-pixel particles simulated on the CPU and drawn as
// fill commands.
type Emitter struct {
	config    EmitterConfig
	particles []particle
	alive     int
	rng       *rand.Rand
}

// NewEmitter creates an Emitter with a preallocated pool. rng drives the
// spawn ranges; nil seeds a fresh generator.
func NewEmitter(cfg EmitterConfig, rng *rand.Rand) *Emitter {
	n := cfg.MaxParticles
	if n <= 0 {
		n = 64
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Emitter{
		config:    cfg,
		particles: make([]particle, n),
		rng:       rng,
	}
}

// Config returns a pointer to the emitter's config for live tuning.
func (e *Emitter) Config() *EmitterConfig { return &e.config }

// AliveCount returns the number of live particles.
func (e *Emitter) AliveCount() int { return e.alive }

// Reset kills every live particle.
func (e *Emitter) Reset() { e.alive = 0 }

// Burst spawns up to n particles at the center of the pixel at.
func (e *Emitter) Burst(n int, at Pos) {
	for ; n > 0 && e.alive < len(e.particles); n-- {
		p := &e.particles[e.alive]
		angle := e.config.Angle.sample(e.rng)
		speed := e.config.Speed.sample(e.rng)
		p.x = float32(at.X) + 0.5
		p.y = float32(at.Y) + 0.5
		p.vx = math32.Cos(angle) * speed
		p.vy = math32.Sin(angle) * speed
		p.life = e.config.Lifetime.sample(e.rng)
		if p.life <= 0 {
			p.life = 1
		}
		p.maxLife = p.life
		e.alive++
	}
}

// Update advances the simulation by dt seconds.
func (e *Emitter) Update(dt float32) {
	gy := e.config.Gravity * dt
	clip := e.config.Clip

	// Swap-remove dead particles.
	i := 0
	for i < e.alive {
		p := &e.particles[i]
		p.life -= dt
		p.vy += gy
		p.x += p.vx * dt
		p.y += p.vy * dt
		if p.life <= 0 || (!clip.Empty() && !clip.Contains(p.pixel())) {
			e.alive--
			e.particles[i] = e.particles[e.alive]
			continue
		}
		i++
	}
}

// Draw pushes one 1x1 fill per live particle onto c's command list.
func (e *Emitter) Draw(c *Context) {
	comp := e.config.Comp.Or(CompOver)
	for i := range e.alive {
		p := &e.particles[i]
		x, y := p.pixel()
		t := 1 - p.life/p.maxLife
		c.PushDraw(FillRect(Rect{X: x, Y: y, W: 1, H: 1}, lerpColor(e.config.StartColor, e.config.EndColor, t), comp))
	}
}

func (p *particle) pixel() (int16, int16) {
	return satI16(int(math32.Floor(p.x))), satI16(int(math32.Floor(p.y)))
}

// lerpColor interpolates each channel of a toward b by t in [0, 1].
func lerpColor(a, b Color, t float32) Color {
	ch := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t + 0.5)
	}
	return Color{A: ch(a.A, b.A), R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B)}
}
