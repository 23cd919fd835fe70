package config

const (
	AppName    = "neuraforge"
	AppTagline = "signal • synth • secure"
	AppVersion = "1.0.0"

	// The credits overlay reveals the author on purpose (OSINT challenge).
	AuthorFirst = "Alex"
	AuthorLast  = "Dubois"

	CreditsRevealDelayMS = 50

	WindowWidth  = 1120
	WindowHeight = 680

	TPS = 60

	// Stats refresh every 250ms (15 ticks at 60 TPS).
	StatsTickFrames = 15

	// Layout
	TopbarHeight = 64
	SidebarWidth = 240
	MainPad      = 18

	SignalFieldHeight = 190
)
