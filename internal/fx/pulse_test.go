package fx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adubois/neuraforge/internal/theme"
)

func TestGlowPulseKickNeverLowersEnergy(t *testing.T) {
	g := NewGlowPulse(theme.PulsePalette)
	assert.Equal(t, 0.35, g.energy) // opening kick

	g.Kick(0.2)
	assert.Equal(t, 0.35, g.energy)

	g.Kick(0.9)
	assert.Equal(t, 0.9, g.energy)
}

func TestGlowPulsePoolNeverExceedsCap(t *testing.T) {
	g := NewGlowPulse(theme.PulsePalette)
	for i := 0; i < 500; i++ {
		if i%20 == 0 {
			g.Kick(1.0)
		}
		g.Step(320, 200)
		require.LessOrEqual(t, g.Count(), maxPulses)
	}
}

func TestGlowPulseRingsStayAlivePositive(t *testing.T) {
	g := NewGlowPulse(theme.PulsePalette)
	g.Kick(1.0)
	for i := 0; i < 200; i++ {
		g.Step(320, 200)
		for _, p := range g.pulses {
			assert.Greater(t, p.Life, 0.0)
		}
	}
}

func TestGlowPulseSpawnParameters(t *testing.T) {
	g := NewGlowPulse(theme.PulsePalette)
	g.spawn(100, 100, 0.5)

	p := g.pulses[len(g.pulses)-1]
	assert.GreaterOrEqual(t, p.CX, 22.0)
	assert.LessOrEqual(t, p.CX, 78.0)
	assert.GreaterOrEqual(t, p.CY, 28.0)
	assert.LessOrEqual(t, p.CY, 72.0)
	assert.GreaterOrEqual(t, p.R, 6.0)
	assert.LessOrEqual(t, p.R, 28.0)
	assert.InDelta(t, 3.2, p.VR, 1e-9)   // 1.6 + 0.5*3.2
	assert.InDelta(t, 1.05, p.Life, 1e-9) // 0.65 + 0.5*0.8
}

func TestGlowPulseRingsGrowEachStep(t *testing.T) {
	g := NewGlowPulse(theme.PulsePalette)
	g.spawn(320, 200, 0.5)
	r0 := g.pulses[0].R

	// The ring keeps its slot: Step preserves order and only appends.
	g.Step(320, 200)
	require.NotEmpty(t, g.pulses)
	assert.Greater(t, g.pulses[0].R, r0)
}
