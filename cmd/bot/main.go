package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordbow/internal/config"
	"wordbow/internal/handler"
	"wordbow/internal/middleware"
	"wordbow/internal/repository/postgres"
	"wordbow/internal/service"
	"wordbow/internal/storage"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting wordbow curation bot")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	if err := cfg.ValidateBot(); err != nil {
		logger.Fatal("Invalid bot config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.Open(ctx, cfg.DSN(), cfg.Database.Migrations, logger)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database ready")

	userRepo := postgres.NewUserRepo(db)
	wordRepo := postgres.NewWordRepo(db)

	authService := service.NewAuthService(userRepo, cfg.Bot.Password)
	wordService := service.NewWordService(wordRepo)
	statsService := service.NewStatsService(wordRepo, logger)

	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.Bot.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("Bot handler failed", zap.Error(err))
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	bot.Use(middleware.AuthMiddleware(authService, logger))

	h := handler.NewHandler(bot, authService, wordService, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	go runPurgeJob(ctx, statsService, logger)

	go func() {
		logger.Info("Bot started")
		bot.Start()
	}()

	<-ctx.Done()

	logger.Info("Shutdown signal received, stopping bot...")
	bot.Stop()
	logger.Info("Bot stopped gracefully")
}

// runPurgeJob deletes old retired entries at startup and then daily
func runPurgeJob(ctx context.Context, statsService *service.StatsService, logger *zap.Logger) {
	if err := statsService.PurgeRetired(); err != nil {
		logger.Error("Failed to run initial purge", zap.Error(err))
	}

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Purge job stopped")
			return
		case <-ticker.C:
			if err := statsService.PurgeRetired(); err != nil {
				logger.Error("Failed to run scheduled purge", zap.Error(err))
			}
		}
	}
}
