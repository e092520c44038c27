package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"wordbow/internal/audio"
	"wordbow/internal/config"
	"wordbow/internal/dataset"
	"wordbow/internal/desktop"
	"wordbow/internal/event"
	"wordbow/internal/eventlog"
	"wordbow/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	ctx := context.Background()
	src, closeSource, err := dataset.FromConfig(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open dataset", zap.Error(err))
	}
	defer closeSource()
	records := dataset.LoadOrEmpty(ctx, src, logger)

	bus := event.NewBus()
	eventlog.Attach(bus, logger)

	cues := audio.NewCues()
	if err := cues.Initialize(); err != nil {
		logger.Warn("Audio initialization failed", zap.Error(err))
	}
	defer cues.Close()
	cues.Attach(bus)

	tuning := cfg.Tuning()
	field := cfg.Field()
	session := game.NewSession(tuning, field, game.WithBus(bus), game.WithDataset(records))

	ebiten.SetWindowSize(int(field.Width), int(field.Height)+desktop.HUDHeight)
	ebiten.SetWindowTitle("Wordbow")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tuning.TicksPerSecond())

	logger.Info("Starting desktop client", zap.Int("words", len(records)))
	if err := ebiten.RunGame(desktop.New(session, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("Game stopped", zap.Error(err))
	}
}
