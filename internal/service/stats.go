package service

import (
	"wordbow/internal/repository"

	"go.uber.org/zap"
)

// RetentionDays is how long a retired entry is kept before it is deleted
const RetentionDays = 60

// StatsService runs vocabulary housekeeping
type StatsService struct {
	wordRepo repository.WordRepository
	logger   *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(wordRepo repository.WordRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		wordRepo: wordRepo,
		logger:   logger,
	}
}

// PurgeRetired deletes retired entries older than RetentionDays
func (s *StatsService) PurgeRetired() error {
	s.logger.Info("Starting purge of retired words", zap.Int("retention_days", RetentionDays))

	n, err := s.wordRepo.PurgeRetiredWords(RetentionDays)
	if err != nil {
		s.logger.Error("Failed to purge retired words", zap.Error(err))
		return err
	}

	s.logger.Info("Purge completed", zap.Int64("deleted", n))
	return nil
}
