package theme

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Dark neon palette shared by the dashboard and the credits overlay.
var (
	Bg     = color.RGBA{R: 0x0b, G: 0x0f, B: 0x17, A: 0xff}
	Bg2    = color.RGBA{R: 0x0e, G: 0x14, B: 0x20, A: 0xff}
	BgCard = color.RGBA{R: 0x12, G: 0x1a, B: 0x2a, A: 0xff}
	Border = color.RGBA{R: 0x1f, G: 0x2a, B: 0x3f, A: 0xff}
	Text   = color.RGBA{R: 0xe7, G: 0xed, B: 0xf7, A: 0xff}
	Muted  = color.RGBA{R: 0x9f, G: 0xb0, B: 0xc6, A: 0xff}
	Accent = color.RGBA{R: 0x6e, G: 0xe7, B: 0xff, A: 0xff}
	Accent2 = color.RGBA{R: 0xa7, G: 0x8b, B: 0xfa, A: 0xff}
	Danger = color.RGBA{R: 0xff, G: 0x6b, B: 0x8b, A: 0xff}
	OK     = color.RGBA{R: 0x6c, G: 0xff, B: 0xb5, A: 0xff}
	Gold   = color.RGBA{R: 0xff, G: 0xd1, B: 0x66, A: 0xff}
)

var (
	ParticlePalette = []color.RGBA{Accent, Accent2, OK, Gold}
	PulsePalette    = []color.RGBA{Accent, Accent2, Gold}
)

// Mix linearly blends a toward b by t in RGB space. t is clamped to [0, 1].
func Mix(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 0xff}
}

// Fade scales c by alpha, premultiplied so it composes correctly on screen.
func Fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(255 * alpha),
	}
}
