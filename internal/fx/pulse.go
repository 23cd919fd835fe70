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
	maxPulses = 8
	pulseSeed = 2024

	// Energy feeds spawn probability; it decays whenever a ring fires.
	kickSpawnChance    = 0.20
	kickDecay          = 0.85
	ambientSpawnChance = 0.01
	ambientStrength    = 0.22
)

// Pulse is one expanding ring.
type Pulse struct {
	CX, CY float64
	R, VR  float64
	Life   float64
}

// GlowPulse keeps a bounded pool of expanding, fading rings. A Kick
// raises the pending energy, which then drains into spawned rings over
// the following steps rather than all at once.
type GlowPulse struct {
	palette []color.RGBA
	rng     *rand.Rand

	pulses []Pulse
	energy float64
}

// NewGlowPulse creates the ring pool with a small opening kick.
func NewGlowPulse(palette []color.RGBA) *GlowPulse {
	g := &GlowPulse{
		palette: palette,
		rng:     rand.New(rand.NewSource(pulseSeed)),
	}
	g.Kick(0.35)
	return g
}

// Kick raises the pending energy to at least strength. It never lowers it.
func (g *GlowPulse) Kick(strength float64) {
	if strength > g.energy {
		g.energy = strength
	}
}

// Count reports the live ring count.
func (g *GlowPulse) Count() int {
	return len(g.pulses)
}

// Step probabilistically spawns a ring from pending energy (or an
// ambient one), grows all rings, retires the dead, and caps the pool.
func (g *GlowPulse) Step(w, h float64) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	if g.energy > 0 && g.rng.Float64() < kickSpawnChance {
		g.spawn(w, h, g.energy)
		g.energy *= kickDecay
	} else if g.rng.Float64() < ambientSpawnChance {
		g.spawn(w, h, ambientStrength)
	}

	alive := g.pulses[:0]
	for _, p := range g.pulses {
		p.R += p.VR
		p.Life -= 0.02
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	g.pulses = alive

	// Oldest dropped first when over cap.
	if n := len(g.pulses) - maxPulses; n > 0 {
		g.pulses = append(g.pulses[:0], g.pulses[n:]...)
	}
}

func (g *GlowPulse) spawn(w, h, strength float64) {
	g.pulses = append(g.pulses, Pulse{
		CX:   w * (0.22 + g.rng.Float64()*0.56),
		CY:   h * (0.28 + g.rng.Float64()*0.44),
		R:    6 + g.rng.Float64()*22,
		VR:   1.6 + strength*3.2,
		Life: 0.65 + strength*0.8,
	})
}

// Draw strokes each ring, cycling the palette by draw order and fading
// the outline with remaining life.
func (g *GlowPulse) Draw(dst *ebiten.Image) {
	for i := range g.pulses {
		p := &g.pulses[i]
		c := theme.Fade(g.palette[i%len(g.palette)], util.Clamp(p.Life, 0, 1))
		vector.StrokeCircle(dst, float32(p.CX), float32(p.CY), float32(p.R), 2, c, true)
	}
}
