package fx

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/adubois/neuraforge/internal/theme"
	"github.com/adubois/neuraforge/internal/util"
)

const (
	maxParticles = 160
	spawnPerStep = 8
	initialSpawn = 42
	particleSeed = 1337
)

// Particle is a single drifting dot. Pure state; rendering lives in Draw.
type Particle struct {
	X, Y   float64
	VX, VY float64
	R      float64
	Alpha  float64
	HueIdx int
}

// ParticleField keeps a bounded pool of moving, fading dots for the
// "signal" feel of the dashboard canvas. All randomness comes from a
// generator seeded at construction, so a fixed sequence of Step calls
// is reproducible.
type ParticleField struct {
	palette []color.RGBA
	rng     *rand.Rand

	particles []Particle
	pending   int
	w, h      float64
}

// NewParticleField creates a field over a w×h surface and seeds it with
// an initial burst of particles.
func NewParticleField(w, h float64, palette []color.RGBA) *ParticleField {
	f := &ParticleField{
		palette: palette,
		rng:     rand.New(rand.NewSource(particleSeed)),
		w:       w,
		h:       h,
	}
	f.spawn(initialSpawn)
	return f
}

// Boost queues amt extra spawns, drained a few per step to smooth bursts.
func (f *ParticleField) Boost(amt int) {
	if amt > 0 {
		f.pending += amt
	}
}

// Count reports the live pool size.
func (f *ParticleField) Count() int {
	return len(f.particles)
}

func (f *ParticleField) spawn(n int) {
	for i := 0; i < n; i++ {
		f.particles = append(f.particles, Particle{
			X:      f.rng.Float64() * f.w,
			Y:      f.rng.Float64() * f.h,
			VX:     (f.rng.Float64() - 0.5) * 0.9,
			VY:     (f.rng.Float64() - 0.5) * 0.6,
			R:      1.2 + f.rng.Float64()*2.6,
			Alpha:  0.25 + f.rng.Float64()*0.75,
			HueIdx: f.rng.Intn(len(f.palette)),
		})
	}
}

// Step advances every particle by one frame: drain pending spawns,
// integrate positions, jitter and clamp velocity, bounce off the walls
// with damping, drift alpha, occasionally cycle the palette on bright
// particles, and evict the oldest entries beyond the pool cap.
func (f *ParticleField) Step(w, h float64) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	f.w, f.h = w, h

	if f.pending > 0 {
		add := f.pending
		if add > spawnPerStep {
			add = spawnPerStep
		}
		f.pending -= add
		f.spawn(add)
	}

	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX
		p.Y += p.VY
		p.VX = util.Clamp(p.VX+(f.rng.Float64()-0.5)*0.02, -1.2, 1.2)
		p.VY = util.Clamp(p.VY+(f.rng.Float64()-0.5)*0.02, -0.9, 0.9)

		if p.X < 0 || p.X > w {
			p.VX *= -0.9
			p.X = util.Clamp(p.X, 0, w)
		}
		if p.Y < 0 || p.Y > h {
			p.VY *= -0.9
			p.Y = util.Clamp(p.Y, 0, h)
		}

		p.Alpha = util.Clamp(p.Alpha+(f.rng.Float64()-0.45)*0.03, 0.18, 1.0)

		if p.Alpha > 0.9 && f.rng.Float64() < 0.05 {
			p.HueIdx = (p.HueIdx + 1) % len(f.palette)
		}
	}

	// Oldest first when over cap.
	if n := len(f.particles) - maxParticles; n > 0 {
		f.particles = append(f.particles[:0], f.particles[n:]...)
	}
}

// Draw renders every particle as a filled circle faded by its alpha.
func (f *ParticleField) Draw(dst *ebiten.Image) {
	for i := range f.particles {
		p := &f.particles[i]
		c := theme.Fade(f.palette[p.HueIdx%len(f.palette)], p.Alpha)
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(p.R), c, true)
	}
}
