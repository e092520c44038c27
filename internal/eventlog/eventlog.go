package eventlog

import (
	"wordbow/internal/event"
	"wordbow/internal/game"

	"go.uber.org/zap"
)

// Attach logs round lifecycle events published on bus
func Attach(bus *event.Bus, logger *zap.Logger) {
	event.Subscribe(bus, func(e game.RoundStarted) {
		logger.Info("Round started",
			zap.String("meaning", e.Meaning),
			zap.Int("seconds", e.Seconds),
		)
	})

	event.Subscribe(bus, func(e game.RoundEnded) {
		logger.Info("Round ended",
			zap.Int("correct_hits", e.CorrectHits),
			zap.Int("total_hits", e.TotalHits),
			zap.Bool("timed_out", e.TimedOut),
		)
	})

	event.Subscribe(bus, func(e game.WordHit) {
		logger.Debug("Word hit",
			zap.String("word", e.Word.Word),
			zap.Bool("correct", e.Correct),
			zap.String("target", e.Target),
			zap.String("next_meaning", e.NextMeaning),
		)
	})
}
