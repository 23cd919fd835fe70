package game

import (
	"fmt"
	"image"
	"runtime"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"github.com/adubois/neuraforge/internal/audio"
	"github.com/adubois/neuraforge/internal/config"
	"github.com/adubois/neuraforge/internal/credits"
	"github.com/adubois/neuraforge/internal/fx"
	"github.com/adubois/neuraforge/internal/monitor"
	"github.com/adubois/neuraforge/internal/theme"
	"github.com/adubois/neuraforge/internal/util"
)

// Fixed layout, derived from the 1120×680 window.
var (
	heroRect    = image.Rect(258, 82, 1102, 168)
	statsRect   = image.Rect(258, 182, 1102, 274)
	fieldRect   = image.Rect(258, 288, 1102, 518)
	consoleRect = image.Rect(258, 532, 1102, 662)

	canvasRect = image.Rect(fieldRect.Min.X+12, fieldRect.Min.Y+38, fieldRect.Max.X-12, fieldRect.Min.Y+38+config.SignalFieldHeight)
)

// App is the application shell: it owns the window layout, routes user
// actions to state updates, and drives the per-frame effects step plus
// the 4 Hz stats refresh from ebiten's single-threaded game loop.
type App struct {
	state   *AppState
	console *Console
	field   *fx.ParticleField
	pulses  *fx.GlowPulse
	overlay *credits.Overlay
	mon     *monitor.Monitor
	sounds  *audio.Engine

	canvas *ebiten.Image

	heroTitle string
	heroSub   string

	buttons   []*Button
	statCards [4]*StatCard

	ticks   int
	cpuLine string
}

// NewApp wires the whole shell together and logs the startup banner.
func NewApp() *App {
	a := &App{
		state:   &AppState{StartTime: time.Now(), LastAction: "idle"},
		console: NewConsole(),
		mon:     monitor.Start(),
		canvas:  ebiten.NewImage(canvasRect.Dx(), canvasRect.Dy()),
	}
	AttachConsole(a.console)

	a.field = fx.NewParticleField(float64(canvasRect.Dx()), float64(canvasRect.Dy()), theme.ParticlePalette)
	a.pulses = fx.NewGlowPulse(theme.PulsePalette)
	a.sounds = audio.NewEngine()

	a.setHero("dashboard")
	a.buildWidgets()
	a.syncStats()

	logrus.Infof("%s v%s • go %s • %s", config.AppName, config.AppVersion, runtime.Version(), runtime.GOOS)
	logrus.Infof("Environment → %s", monitor.Platform())
	logrus.Info("Ready. Use 'Run Demo' or 'Run Credits'.")
	return a
}

func (a *App) buildWidgets() {
	sideX := 14
	sideW := config.SidebarWidth - 2*sideX
	navY := 140
	for i, nav := range []struct{ label, key string }{
		{"Dashboard", "dashboard"},
		{"Telemetry", "telemetry"},
		{"About", "about"},
	} {
		key := nav.key
		a.buttons = append(a.buttons, &Button{
			Rect:    image.Rect(sideX, navY+i*40, sideX+sideW, navY+i*40+32),
			Label:   nav.label,
			OnClick: func() { a.onNav(key) },
		})
	}
	a.buttons = append(a.buttons,
		&Button{
			Rect:    image.Rect(sideX, 310, sideX+sideW, 342),
			Label:   "Run Demo",
			OnClick: a.onRunDemo,
		},
		&Button{
			Rect:    image.Rect(sideX, 352, sideX+sideW, 384),
			Label:   "Run Credits",
			OnClick: a.onShowCredits,
		},
		&Button{
			Rect:    image.Rect(heroRect.Max.X-264, heroRect.Min.Y+25, heroRect.Max.X-150, heroRect.Min.Y+61),
			Label:   "Run Demo",
			Primary: true,
			OnClick: a.onRunDemo,
		},
		&Button{
			Rect:    image.Rect(heroRect.Max.X-138, heroRect.Min.Y+25, heroRect.Max.X-16, heroRect.Min.Y+61),
			Label:   "Run Credits",
			Primary: true,
			OnClick: a.onShowCredits,
		},
	)

	cardW := (statsRect.Dx() - 3*12) / 4
	titles := [4]struct{ title, hint string }{
		{"Uptime", "Session runtime"},
		{"Runs", "Demo executions"},
		{"Particles", "Field intensity"},
		{"Processed", "Fake workload"},
	}
	for i := range a.statCards {
		x := statsRect.Min.X + i*(cardW+12)
		a.statCards[i] = &StatCard{
			Rect:  image.Rect(x, statsRect.Min.Y, x+cardW, statsRect.Max.Y),
			Title: titles[i].title,
			Hint:  titles[i].hint,
		}
	}
}

// Update runs once per tick (60 TPS): input routing, one effects step,
// and the stats refresh every 15th tick.
func (a *App) Update() error {
	if a.overlay != nil && a.overlay.Shown() {
		// Modal: the overlay consumes every click and the Escape key.
		a.overlay.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			a.overlay.Dismiss()
		}
	} else {
		mx, my := ebiten.CursorPosition()
		for _, b := range a.buttons {
			b.Update(mx, my)
		}
	}

	a.field.Step(float64(canvasRect.Dx()), float64(canvasRect.Dy()))
	a.pulses.Step(float64(canvasRect.Dx()), float64(canvasRect.Dy()))

	a.ticks++
	if a.ticks%config.StatsTickFrames == 0 {
		a.syncStats()
	}
	return nil
}

func (a *App) onNav(key string) {
	a.state.LastAction = "nav:" + key
	logrus.Infof("Navigation → %s", key)
	a.sounds.Play(audio.SoundTick)
	a.setHero(key)
}

func (a *App) setHero(key string) {
	switch key {
	case "telemetry":
		a.heroTitle = "telemetry"
		a.heroSub = "Fake metrics, pulses and particles. Nothing sensitive is exposed here."
	case "about":
		a.heroTitle = "about " + config.AppName
		a.heroSub = "A fictional company UI demo. The credits reveal the author's name by design."
	default:
		a.heroTitle = config.AppName + " console"
		a.heroSub = "A small interactive UI demo with animated credits for your OSINT challenge."
	}
}

func (a *App) onRunDemo() {
	logrus.Info("Run Demo → starting synthetic workload…")
	processed, sum := a.state.RunDemo(time.Now())

	a.field.Boost(24 + (a.state.Runs%8)*4)
	a.pulses.Kick(0.6 + float64(a.state.Runs%3)*0.12)
	a.sounds.Play(audio.SoundBlip)

	logrus.Infof("Workload done → checksum=0x%08x, processed=%d bytes", sum, processed)
	a.syncStats()
}

func (a *App) onShowCredits() {
	a.state.LastAction = "credits"
	logrus.Info("Run Credits → launching overlay…")
	a.sounds.Play(audio.SoundChime)

	// A fresh overlay per session; any previous one is simply dropped.
	a.overlay = credits.New(credits.Config{
		CompanyName: config.AppName,
		AuthorFirst: config.AuthorFirst,
		AuthorLast:  config.AuthorLast,
		RevealDelay: config.CreditsRevealDelayMS * time.Millisecond,
	}, a.onCreditsClose)
	a.overlay.Show()
}

func (a *App) onCreditsClose() {
	logrus.Info("Credits closed.")
	a.state.LastAction = "idle"
}

func (a *App) syncStats() {
	up := time.Since(a.state.StartTime).Seconds()
	a.statCards[0].Value = util.FmtUptime(up)
	a.statCards[1].Value = strconv.Itoa(a.state.Runs)
	a.statCards[2].Value = strconv.Itoa(a.field.Count())
	a.statCards[3].Value = util.FmtBytes(a.state.BytesProcessed)

	s := a.mon.Snapshot()
	a.cpuLine = fmt.Sprintf("cpu %.0f%% • mem %.0f%%", s.CPUPercent, s.MemPercent)
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(theme.Bg)

	a.drawTopbar(screen)
	a.drawSidebar(screen)
	a.drawHero(screen)
	for _, c := range a.statCards {
		c.Draw(screen)
	}
	a.drawSignalField(screen)
	a.drawConsole(screen)

	for _, b := range a.buttons {
		b.Draw(screen)
	}

	if a.overlay != nil {
		a.overlay.Draw(screen)
	}
}

func (a *App) drawTopbar(screen *ebiten.Image) {
	drawText(screen, config.AppName, theme.FaceBold(16), 16, 10, theme.Text)
	drawText(screen, config.AppTagline, theme.FaceSans(11), 16, 36, theme.Muted)

	drawText(screen, "v"+config.AppVersion, theme.FaceSans(11), float64(config.WindowWidth)-60, 10, theme.Muted)
	drawText(screen, a.cpuLine, theme.FaceSans(11), float64(config.WindowWidth)-170, 36, theme.Muted)

	vector.StrokeLine(screen, 0, config.TopbarHeight, config.WindowWidth, config.TopbarHeight, 1, theme.Border, false)
}

func (a *App) drawSidebar(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, config.TopbarHeight, config.SidebarWidth, config.WindowHeight-config.TopbarHeight, theme.BgCard, false)

	drawText(screen, "menu", theme.FaceBold(12), 14, 80, theme.Text)
	drawText(screen, "Navigate", theme.FaceSans(11), 14, 114, theme.Muted)

	vector.StrokeLine(screen, 14, 276, config.SidebarWidth-14, 276, 1, theme.Border, false)
	drawText(screen, "Actions", theme.FaceSans(11), 14, 286, theme.Muted)

	vector.StrokeLine(screen, 14, 404, config.SidebarWidth-14, 404, 1, theme.Border, false)
	drawText(screen, "Hint", theme.FaceSans(11), 14, 416, theme.Muted)
	for i, ln := range []string{
		"In real OSINT, identities are often",
		"pivoted from public profiles to",
		"company websites and naming patterns.",
	} {
		drawText(screen, ln, theme.FaceSans(11), 14, 438+float64(i)*16, theme.Muted)
	}
}

func (a *App) drawHero(screen *ebiten.Image) {
	drawCard(screen, heroRect)
	drawText(screen, a.heroTitle, theme.FaceBold(18), float64(heroRect.Min.X)+18, float64(heroRect.Min.Y)+16, theme.Text)
	drawText(screen, a.heroSub, theme.FaceSans(11), float64(heroRect.Min.X)+18, float64(heroRect.Min.Y)+46, theme.Muted)
}

// drawSignalField steps nothing: it only blits the current pool state
// onto the offscreen canvas and composes it into the card.
func (a *App) drawSignalField(screen *ebiten.Image) {
	drawCard(screen, fieldRect)
	drawText(screen, "signal field", theme.FaceBold(12), float64(fieldRect.Min.X)+14, float64(fieldRect.Min.Y)+12, theme.Text)

	a.canvas.Fill(theme.BgCard)
	a.field.Draw(a.canvas)
	a.pulses.Draw(a.canvas)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(canvasRect.Min.X), float64(canvasRect.Min.Y))
	screen.DrawImage(a.canvas, op)
}

func (a *App) drawConsole(screen *ebiten.Image) {
	drawCard(screen, consoleRect)
	drawText(screen, "activity log", theme.FaceBold(12), float64(consoleRect.Min.X)+14, float64(consoleRect.Min.Y)+12, theme.Text)

	const lineHeight = 16
	maxLines := (consoleRect.Dy() - 44) / lineHeight
	face := theme.FaceMono(11)
	for i, ln := range a.console.Tail(maxLines) {
		drawText(screen, ln, face, float64(consoleRect.Min.X)+14, float64(consoleRect.Min.Y)+38+float64(i*lineHeight), theme.Muted)
	}
}

// Layout fixes the logical screen size regardless of the OS window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Shutdown tears the background pieces down. Every step proceeds even if
// an earlier one already failed or ran; shutdown always completes.
func (a *App) Shutdown() {
	logrus.Info("Shutting down…")
	if a.overlay != nil {
		a.overlay.Dismiss()
	}
	if a.mon != nil {
		a.mon.Stop()
	}
}
