package fx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adubois/neuraforge/internal/theme"
)

const (
	testW = 400.0
	testH = 190.0
)

func TestParticleFieldInitialSpawn(t *testing.T) {
	f := NewParticleField(testW, testH, theme.ParticlePalette)
	assert.Equal(t, initialSpawn, f.Count())
}

func TestParticleFieldBoostDrainsGradually(t *testing.T) {
	f := NewParticleField(testW, testH, theme.ParticlePalette)
	base := f.Count()

	f.Boost(24)
	want := []int{base + 8, base + 16, base + 24, base + 24}
	for i, w := range want {
		f.Step(testW, testH)
		assert.Equalf(t, w, f.Count(), "after step %d", i+1)
	}
}

func TestParticleFieldNegativeBoostIgnored(t *testing.T) {
	f := NewParticleField(testW, testH, theme.ParticlePalette)
	base := f.Count()
	f.Boost(-10)
	f.Step(testW, testH)
	assert.Equal(t, base, f.Count())
}

func TestParticleFieldPoolNeverExceedsCap(t *testing.T) {
	f := NewParticleField(testW, testH, theme.ParticlePalette)
	for i := 0; i < 300; i++ {
		if i%10 == 0 {
			f.Boost(100)
		}
		f.Step(testW, testH)
		require.LessOrEqual(t, f.Count(), maxParticles)
	}
	// The sustained boosts must have filled the pool to its cap.
	assert.Equal(t, maxParticles, f.Count())
}

func TestParticleFieldBoundsHoldAfterManySteps(t *testing.T) {
	f := NewParticleField(testW, testH, theme.ParticlePalette)
	f.Boost(200)
	for i := 0; i < 500; i++ {
		f.Step(testW, testH)
	}
	for i := range f.particles {
		p := &f.particles[i]
		assert.GreaterOrEqual(t, p.Alpha, 0.18)
		assert.LessOrEqual(t, p.Alpha, 1.0)
		assert.LessOrEqual(t, p.VX, 1.2)
		assert.GreaterOrEqual(t, p.VX, -1.2)
		assert.LessOrEqual(t, p.VY, 0.9)
		assert.GreaterOrEqual(t, p.VY, -0.9)
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, testW)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.LessOrEqual(t, p.Y, testH)
	}
}

func TestParticleFieldDeterministicForFixedSeed(t *testing.T) {
	a := NewParticleField(testW, testH, theme.ParticlePalette)
	b := NewParticleField(testW, testH, theme.ParticlePalette)
	for i := 0; i < 50; i++ {
		a.Step(testW, testH)
		b.Step(testW, testH)
	}
	assert.Equal(t, a.particles, b.particles)
}
