//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"lifeboard/internal/app"
)

func runWindow() error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctrl, loop, err := newSession(cfg, app.PanelWidth, logger)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	game := app.New(ctrl, loop, cfg.Scale, cfg.Seed, logger)
	if cfg.Autoplay {
		ctrl.Play()
	}

	tps := cfg.FPS
	if tps < ebiten.DefaultTPS {
		tps = ebiten.DefaultTPS
	}
	ebiten.SetWindowTitle("lifeboard - " + ctrl.Sim().Name())
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
