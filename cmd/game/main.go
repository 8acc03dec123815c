package main

import (
	"log"
	"os"

	"github.com/Garsondee/Reversi-Board/internal/assets"
	"github.com/Garsondee/Reversi-Board/internal/audio"
	"github.com/Garsondee/Reversi-Board/internal/board"
	"github.com/Garsondee/Reversi-Board/internal/config"
	"github.com/Garsondee/Reversi-Board/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Load("game", os.Args[1:], ".env")
	if err != nil {
		log.Fatal(err)
	}
	logger, closeLog, err := cfg.Logger()
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	faces := assets.NewCatalog(cfg.AssetDir, assets.DefaultFaceSize, logger)
	faces.Preload(map[board.Color][]board.FaceID{
		board.White: board.DefaultFaces(board.White),
		board.Black: board.DefaultFaces(board.Black),
	})

	var sounds audio.Player = audio.Silent{}
	sm := audio.NewSoundManager(cfg.Volume)
	if err := sm.Initialize(); err != nil {
		logger.WithError(err).Warn("audio unavailable, continuing without sound")
	} else {
		sounds = sm
		defer sm.Close()
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game.New(cfg, logger, faces, sounds)); err != nil {
		logger.WithError(err).Error("game exited")
		os.Exit(1)
	}
}
