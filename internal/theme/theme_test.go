package theme

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMixEndpoints(t *testing.T) {
	assert.Equal(t, Bg, Mix(Bg, Muted, 0))
	assert.Equal(t, Muted, Mix(Bg, Muted, 1))

	// t is clamped.
	assert.Equal(t, Bg, Mix(Bg, Muted, -5))
	assert.Equal(t, Muted, Mix(Bg, Muted, 5))
}

func TestMixIsBetweenEndpoints(t *testing.T) {
	m := Mix(Bg, Muted, 0.5)
	assert.GreaterOrEqual(t, m.R, Bg.R)
	assert.LessOrEqual(t, m.R, Muted.R)
}

func TestFade(t *testing.T) {
	assert.Equal(t, Accent, Fade(Accent, 1))
	assert.Equal(t, color.RGBA{}, Fade(Accent, 0))

	half := Fade(color.RGBA{R: 200, G: 100, B: 50, A: 255}, 0.5)
	assert.Equal(t, uint8(100), half.R)
	assert.Equal(t, uint8(50), half.G)
	assert.Equal(t, uint8(127), half.A)
}
