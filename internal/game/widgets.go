package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/adubois/neuraforge/internal/theme"
)

// Button is a flat action button with hover and pressed states. Primary
// buttons get the neon accent fill, secondary ones the card style.
type Button struct {
	Rect    image.Rectangle
	Label   string
	Primary bool
	OnClick func()

	hovered bool
	pressed bool
}

// Update tracks hover and press against the cursor and fires OnClick on
// release inside the button.
func (b *Button) Update(mx, my int) {
	b.hovered = image.Pt(mx, my).In(b.Rect)

	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		clicked := b.pressed && b.hovered
		b.pressed = false
		if clicked && b.OnClick != nil {
			b.OnClick()
		}
	}
}

func (b *Button) Draw(dst *ebiten.Image) {
	x := float32(b.Rect.Min.X)
	y := float32(b.Rect.Min.Y)
	w := float32(b.Rect.Dx())
	h := float32(b.Rect.Dy())

	if b.Primary {
		fill := theme.Accent
		if b.pressed {
			fill = theme.Border
		} else if b.hovered {
			fill = theme.Accent2
		}
		vector.DrawFilledRect(dst, x, y, w, h, fill, false)
		drawCenteredText(dst, b.Label, theme.FaceBold(13), b.Rect, theme.Bg)
		return
	}

	fill := theme.Bg2
	if b.pressed || b.hovered {
		fill = theme.Border
	}
	vector.DrawFilledRect(dst, x, y, w, h, fill, false)
	vector.StrokeRect(dst, x, y, w, h, 1, theme.Border, false)
	drawCenteredText(dst, b.Label, theme.FaceSans(13), b.Rect, theme.Text)
}

// StatCard shows one headline metric with a title above and a hint below.
type StatCard struct {
	Rect  image.Rectangle
	Title string
	Value string
	Hint  string
}

func (s *StatCard) Draw(dst *ebiten.Image) {
	drawCard(dst, s.Rect)

	x := float64(s.Rect.Min.X) + 14
	y := float64(s.Rect.Min.Y) + 12
	drawText(dst, s.Title, theme.FaceSans(11), x, y, theme.Muted)
	drawText(dst, s.Value, theme.FaceBold(20), x, y+18, theme.Text)
	drawText(dst, s.Hint, theme.FaceSans(11), x, y+50, theme.Muted)
}

// drawCard paints the shared card chrome: fill plus hairline border.
func drawCard(dst *ebiten.Image, r image.Rectangle) {
	x := float32(r.Min.X)
	y := float32(r.Min.Y)
	w := float32(r.Dx())
	h := float32(r.Dy())
	vector.DrawFilledRect(dst, x, y, w, h, theme.BgCard, false)
	vector.StrokeRect(dst, x, y, w, h, 1, theme.Border, false)
}

// drawText draws left-aligned text with its top at y.
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// drawCenteredText centers text inside r on both axes.
func drawCenteredText(dst *ebiten.Image, s string, face text.Face, r image.Rectangle, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.Min.X+r.Max.X)/2, float64(r.Min.Y+r.Max.Y)/2)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}
