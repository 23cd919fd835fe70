package credits

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/adubois/neuraforge/internal/theme"
	"github.com/adubois/neuraforge/internal/util"
)

// Config carries the fixed parameters of one credits session.
type Config struct {
	CompanyName string
	AuthorFirst string
	AuthorLast  string
	RevealDelay time.Duration
}

type state int

const (
	stateHidden state = iota
	stateShown
	stateClosed
)

const (
	scrollSpeed = 46.0 // px/s
	lineSpacing = 30.0
	bandCount   = 14

	redactedLine = "Author: [REDACTED]"
)

// Overlay runs the fullscreen animated credits sequence: banded
// background, breathing title, scrolling lines, and a timed reveal of
// the author name. While shown it is modal; the shell routes every
// click and Escape press here until Dismiss fires.
//
// The scene is a pure function of elapsed session time, so Update only
// carries the reveal-once state.
type Overlay struct {
	cfg     Config
	onClose func()
	now     func() time.Time

	st       state
	start    time.Time
	lines    []string
	revealed bool
}

// New builds an overlay in the Hidden state. onClose fires exactly once,
// when the overlay is dismissed.
func New(cfg Config, onClose func()) *Overlay {
	return &Overlay{
		cfg:     cfg,
		onClose: onClose,
		now:     time.Now,
	}
}

// Show starts the session: records the start time and builds the scene.
func (o *Overlay) Show() {
	if o.st != stateHidden {
		return
	}
	o.st = stateShown
	o.start = o.now()
	o.lines = creditLines(o.cfg.CompanyName)
	o.revealed = false
}

// Shown reports whether the overlay is currently running (and modal).
func (o *Overlay) Shown() bool {
	return o.st == stateShown
}

func (o *Overlay) elapsed() time.Duration {
	return o.now().Sub(o.start)
}

// Update advances the reveal state machine by one frame. Once the
// configured delay has elapsed, the redacted author line is replaced in
// place, at most once per session.
func (o *Overlay) Update() {
	if o.st != stateShown || o.revealed {
		return
	}
	if o.elapsed() < o.cfg.RevealDelay {
		return
	}
	for i, ln := range o.lines {
		if strings.TrimSpace(ln) == redactedLine {
			o.lines[i] = fmt.Sprintf("Author: %s %s", o.cfg.AuthorFirst, o.cfg.AuthorLast)
			break
		}
	}
	o.revealed = true
}

// Dismiss closes the overlay and invokes the close callback. Calling it
// when the overlay is not shown is a no-op, so a double dismissal (click
// plus Escape on the same frame) stays harmless.
func (o *Overlay) Dismiss() {
	if o.st != stateShown {
		return
	}
	o.st = stateClosed
	o.lines = nil
	if o.onClose != nil {
		o.onClose()
	}
}

// Draw paints the whole scene from elapsed time. No-op unless shown.
func (o *Overlay) Draw(dst *ebiten.Image) {
	if o.st != stateShown {
		return
	}
	t := o.elapsed().Seconds()
	w := float64(dst.Bounds().Dx())
	h := float64(dst.Bounds().Dy())

	o.drawBackground(dst, w, h, t)
	o.drawTitle(dst, w, h, t)
	o.drawLines(dst, w, h, t)
}

// drawBackground paints horizontal bands whose brightness breathes with
// a sine of elapsed time and band index.
func (o *Overlay) drawBackground(dst *ebiten.Image, w, h, t float64) {
	for i := 0; i < bandCount; i++ {
		y0 := float64(i) * h / bandCount
		y1 := float64(i+1) * h / bandCount
		k := 0.08 + 0.06*(1+math.Sin(t*0.9+float64(i)*0.6))/2
		c := theme.Mix(theme.Bg, theme.Bg2, k)
		vector.DrawFilledRect(dst, 0, float32(y0), float32(w), float32(y1-y0)+1, c, false)
	}
}

func (o *Overlay) drawTitle(dst *ebiten.Image, w, h, t float64) {
	y := h*0.18 + math.Sin(t*1.2)*6

	op := &text.DrawOptions{}
	op.GeoM.Translate(w/2, y)
	op.ColorScale.ScaleWithColor(theme.Text)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, o.cfg.CompanyName, theme.FaceBold(42), op)

	sub := &text.DrawOptions{}
	sub.GeoM.Translate(w/2, y+54)
	sub.ColorScale.ScaleWithColor(theme.Muted)
	sub.PrimaryAlign = text.AlignCenter
	sub.SecondaryAlign = text.AlignCenter
	text.Draw(dst, "credits sequence • click or press ESC to close", theme.FaceSans(12), sub)
}

// drawLines scrolls the credit block upward and fades lines toward the
// background color as they approach the top edge.
func (o *Overlay) drawLines(dst *ebiten.Image, w, h, t float64) {
	face := theme.FaceSans(14)
	base := h + 120 - t*scrollSpeed
	for i, ln := range o.lines {
		if ln == "" {
			continue
		}
		y := base + float64(i)*lineSpacing
		if y < -lineSpacing || y > h+lineSpacing {
			continue
		}
		k := util.Clamp((y-40)/220, 0, 1)
		c := theme.Mix(theme.Bg, theme.Muted, k)

		op := &text.DrawOptions{}
		op.GeoM.Translate(w/2, y)
		op.ColorScale.ScaleWithColor(c)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(dst, ln, face, op)
	}
}

func creditLines(company string) []string {
	return []string{
		company + " — internal demo build",
		"",
		"Design: neon console",
		"UI: ebiten canvas + vector",
		"Effects: particles + glow pulses",
		"Challenge: OSINT pivot",
		"",
		"Special thanks:",
		"• public corporate website",
		"• naming conventions",
		"• curious investigators",
		"",
		redactedLine,
		"",
		"— end —",
	}
}
