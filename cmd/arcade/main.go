package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wordbow/internal/audio"
	"wordbow/internal/config"
	"wordbow/internal/dataset"
	"wordbow/internal/event"
	"wordbow/internal/eventlog"
	"wordbow/internal/game"
	"wordbow/internal/terminal"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"
	"go.uber.org/zap"
)

const logFile = "wordbow-arcade.log"

func main() {
	// the screen owns stdout, so the log goes to a file
	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{logFile}
	logger, err := zapCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Error("Arcade stopped", zap.Error(err))
		fmt.Fprintf(os.Stderr, "wordbow: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, closeSource, err := dataset.FromConfig(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open dataset: %w", err)
	}
	defer closeSource()
	records := dataset.LoadOrEmpty(ctx, src, logger)

	bus := event.NewBus()
	eventlog.Attach(bus, logger)

	cues := audio.NewCues()
	if err := cues.Initialize(); err != nil {
		// the game runs silent
		logger.Warn("Audio initialization failed", zap.Error(err))
	}
	defer cues.Close()
	cues.Attach(bus)

	tuning := cfg.Tuning()
	session := game.NewSession(tuning, cfg.Field(), game.WithBus(bus), game.WithDataset(records))

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	logger.Info("Starting arcade", zap.Int("words", len(records)))
	err = terminal.New(screen, session, tuning.TickInterval, logger).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
