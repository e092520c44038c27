package service

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"wordbow/internal/domain"
	"wordbow/internal/repository"
)

// Entry limits. Longer words do not fit a word hit-box on screen and longer
// meanings do not fit the HUD.
const (
	MaxWordLength          = 32
	MaxPronunciationLength = 48
	MaxMeaningLength       = 120

	daysPageSize = 7
)

var (
	ErrEmptyEntry   = errors.New("word and meaning cannot be empty")
	ErrEntryTooLong = errors.New("entry is too long")
)

// WordService handles vocabulary curation
type WordService struct {
	wordRepo repository.WordRepository
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository) *WordService {
	return &WordService{wordRepo: wordRepo}
}

// NormalizeEntry trims the fields of an entry and checks them. Pronunciation is optional.
func NormalizeEntry(word, pronunciation, meaning string) (string, string, string, error) {
	word = strings.TrimSpace(word)
	pronunciation = strings.Trim(strings.TrimSpace(pronunciation), "/[]")
	meaning = strings.TrimSpace(meaning)

	if word == "" || meaning == "" {
		return "", "", "", ErrEmptyEntry
	}
	if utf8.RuneCountInString(word) > MaxWordLength ||
		utf8.RuneCountInString(pronunciation) > MaxPronunciationLength ||
		utf8.RuneCountInString(meaning) > MaxMeaningLength {
		return "", "", "", ErrEntryTooLong
	}
	return word, pronunciation, meaning, nil
}

// SaveEntry validates and stores an entry for the game dataset
func (s *WordService) SaveEntry(userID int64, word, pronunciation, meaning string) error {
	word, pronunciation, meaning, err := NormalizeEntry(word, pronunciation, meaning)
	if err != nil {
		return err
	}
	if err := s.wordRepo.SaveWord(userID, word, pronunciation, meaning); err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}
	return nil
}

// GetRandomCard returns a random active entry, or nil when there is none
func (s *WordService) GetRandomCard(userID int64) (*domain.Word, error) {
	return s.wordRepo.GetRandomWord(userID)
}

// GetDaysList returns paginated list of days with word counts
func (s *WordService) GetDaysList(userID int64, page int) ([]domain.Day, int, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * daysPageSize
	days, err := s.wordRepo.GetDaysWithWords(userID, daysPageSize, offset)
	if err != nil {
		return nil, 0, err
	}

	totalDays, err := s.wordRepo.GetTotalDaysCount(userID)
	if err != nil {
		return nil, 0, err
	}

	totalPages := max((totalDays+daysPageSize-1)/daysPageSize, 1)
	return days, totalPages, nil
}

// GetWordsByDate returns all words for a YYYYMMDD date
func (s *WordService) GetWordsByDate(userID int64, dateStr string) ([]domain.Word, error) {
	date, err := time.Parse("20060102", dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}

	return s.wordRepo.GetWordsByDate(userID, date)
}

// Snooze keeps an entry out of the game for a week
func (s *WordService) Snooze(userID int64, wordID int) error {
	return s.wordRepo.HideWordFor7Days(userID, wordID)
}

// Retire removes an entry from the game for good. It is purged later.
func (s *WordService) Retire(userID int64, wordID int) error {
	return s.wordRepo.HideWordForever(userID, wordID)
}
