package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/sirupsen/logrus"

	"github.com/adubois/neuraforge/internal/config"
	"github.com/adubois/neuraforge/internal/game"
)

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.AppName + " • desktop")
	ebiten.SetTPS(config.TPS)

	app := game.NewApp()

	err := ebiten.RunGame(app)
	app.Shutdown()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		logrus.WithError(err).Error("game loop failed")
		_ = zenity.Error(err.Error(), zenity.Title(config.AppName))
		os.Exit(1)
	}
}
