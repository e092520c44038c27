package testutil

import (
	"time"

	"wordbow/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test entry
func NewTestWord(id int, userID int64, word, pronunciation, meaning string) *domain.Word {
	return &domain.Word{
		ID:            id,
		UserID:        userID,
		Word:          word,
		Pronunciation: pronunciation,
		Meaning:       meaning,
		CreatedAt:     time.Now(),
	}
}

// NewTestDay creates a test day
func NewTestDay(date time.Time, wordCount int) domain.Day {
	return domain.Day{
		Date:      date,
		WordCount: wordCount,
	}
}
