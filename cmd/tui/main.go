package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"github.com/Garsondee/Reversi-Board/internal/audio"
	"github.com/Garsondee/Reversi-Board/internal/config"
	"github.com/Garsondee/Reversi-Board/internal/term"
	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg, err := config.Load("tui", os.Args[1:], ".env")
	if err != nil {
		log.Fatal(err)
	}
	// The terminal is the display; send logs to a file unless one was chosen.
	if cfg.LogFile == "" {
		cfg.LogFile = "reversi-tui.log"
	}
	logger, closeLog, err := cfg.Logger()
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	defer screen.Fini()

	var sounds audio.Player = audio.Silent{}
	if !cfg.Mute {
		sm := audio.NewSoundManager(cfg.Volume)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the board works without sound.
			logger.WithError(err).Warn("audio unavailable")
		} else {
			sounds = sm
			defer sm.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := term.NewApp(screen, cfg, logger, sounds)
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.WithError(err).Error("terminal session ended")
	}
	logger.WithField("moves", app.Board().Moves()).Info("session finished")
}
