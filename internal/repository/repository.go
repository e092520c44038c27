package repository

import (
	"context"
	"time"

	"wordbow/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	RevokeUser(userID int64) error
	EnsureUserExists(userID int64) error
}

// WordRepository defines vocabulary data operations
type WordRepository interface {
	SaveWord(userID int64, word, pronunciation, meaning string) error
	GetRandomWord(userID int64) (*domain.Word, error)
	GetDaysWithWords(userID int64, limit, offset int) ([]domain.Day, error)
	GetWordsByDate(userID int64, date time.Time) ([]domain.Word, error)
	GetTotalDaysCount(userID int64) (int, error)
	HideWordFor7Days(userID int64, wordID int) error
	HideWordForever(userID int64, wordID int) error
	PurgeRetiredWords(days int) (int64, error)
}

// DatasetRepository feeds the game with every playable entry
type DatasetRepository interface {
	ListActiveWords(ctx context.Context) ([]domain.Word, error)
}
