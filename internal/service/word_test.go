package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"wordbow/internal/domain"
	"wordbow/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNormalizeEntry(t *testing.T) {
	tests := []struct {
		name          string
		word          string
		pronunciation string
		meaning       string
		expected      [3]string
		expectedError error
	}{
		{
			name:          "trims fields",
			word:          "  cat ",
			pronunciation: " kæt ",
			meaning:       "a small domesticated feline\n",
			expected:      [3]string{"cat", "kæt", "a small domesticated feline"},
		},
		{
			name:          "strips transcription brackets",
			word:          "dog",
			pronunciation: "/dɒg/",
			meaning:       "a canine",
			expected:      [3]string{"dog", "dɒg", "a canine"},
		},
		{
			name:     "pronunciation optional",
			word:     "owl",
			meaning:  "a night bird",
			expected: [3]string{"owl", "", "a night bird"},
		},
		{
			name:          "empty word",
			meaning:       "a canine",
			expectedError: ErrEmptyEntry,
		},
		{
			name:          "blank meaning",
			word:          "dog",
			meaning:       "   ",
			expectedError: ErrEmptyEntry,
		},
		{
			name:          "word too long",
			word:          strings.Repeat("a", MaxWordLength+1),
			meaning:       "letters",
			expectedError: ErrEntryTooLong,
		},
		{
			name:          "meaning too long",
			word:          "cat",
			meaning:       strings.Repeat("ж", MaxMeaningLength+1),
			expectedError: ErrEntryTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, p, m, err := NormalizeEntry(tt.word, tt.pronunciation, tt.meaning)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, [3]string{w, p, m})
		})
	}
}

func TestWordService_SaveEntry(t *testing.T) {
	t.Run("valid entry is normalized and saved", func(t *testing.T) {
		mockRepo := new(testutil.MockWordRepository)
		mockRepo.On("SaveWord", int64(123), "cat", "kæt", "a feline").Return(nil)

		err := NewWordService(mockRepo).SaveEntry(123, " cat", "[kæt]", "a feline ")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid entry never reaches the repository", func(t *testing.T) {
		mockRepo := new(testutil.MockWordRepository)

		err := NewWordService(mockRepo).SaveEntry(123, "", "", "a feline")

		assert.ErrorIs(t, err, ErrEmptyEntry)
		mockRepo.AssertNotCalled(t, "SaveWord", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		mockRepo := new(testutil.MockWordRepository)
		dbErr := fmt.Errorf("db error")
		mockRepo.On("SaveWord", int64(123), "cat", "", "a feline").Return(dbErr)

		err := NewWordService(mockRepo).SaveEntry(123, "cat", "", "a feline")

		assert.ErrorIs(t, err, dbErr)
		assert.ErrorContains(t, err, "failed to save entry")
	})
}

func TestWordService_GetRandomCard(t *testing.T) {
	testWord := testutil.NewTestWord(1, 123, "cat", "kæt", "a feline")

	tests := []struct {
		name          string
		userID        int64
		mockReturn    *domain.Word
		mockError     error
		expectedWord  *domain.Word
		expectedError bool
	}{
		{
			name:         "word found",
			userID:       123,
			mockReturn:   testWord,
			expectedWord: testWord,
		},
		{
			name:   "no words",
			userID: 456,
		},
		{
			name:          "database error",
			userID:        789,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			if tt.mockReturn == nil {
				mockRepo.On("GetRandomWord", tt.userID).Return(nil, tt.mockError)
			} else {
				mockRepo.On("GetRandomWord", tt.userID).Return(tt.mockReturn, tt.mockError)
			}

			word, err := NewWordService(mockRepo).GetRandomCard(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedWord, word)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_GetDaysList(t *testing.T) {
	tests := []struct {
		name               string
		page               int
		mockDays           []domain.Day
		mockTotalDays      int
		mockError          error
		mockTotalDaysError error
		expectedOffset     int
		expectedPages      int
		expectedDaysCount  int
		expectedError      bool
	}{
		{
			name:              "first page of two",
			page:              1,
			mockDays:          []domain.Day{testutil.NewTestDay(time.Now(), 5), testutil.NewTestDay(time.Now().AddDate(0, 0, -1), 3)},
			mockTotalDays:     14,
			expectedPages:     2,
			expectedDaysCount: 2,
		},
		{
			name:              "second page",
			page:              2,
			mockDays:          []domain.Day{testutil.NewTestDay(time.Now().AddDate(0, 0, -9), 1)},
			mockTotalDays:     8,
			expectedOffset:    7,
			expectedPages:     2,
			expectedDaysCount: 1,
		},
		{
			name:          "negative page defaults to 1",
			page:          -1,
			mockDays:      []domain.Day{},
			mockTotalDays: 7,
			expectedPages: 1,
		},
		{
			name:          "zero total days still has one page",
			page:          1,
			mockDays:      []domain.Day{},
			expectedPages: 1,
		},
		{
			name:          "database error on days",
			page:          1,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
		{
			name:               "database error on total count",
			page:               1,
			mockDays:           []domain.Day{testutil.NewTestDay(time.Now(), 5)},
			mockTotalDaysError: fmt.Errorf("db error"),
			expectedError:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			mockRepo.On("GetDaysWithWords", int64(123), 7, tt.expectedOffset).Return(tt.mockDays, tt.mockError)
			if tt.mockError == nil {
				mockRepo.On("GetTotalDaysCount", int64(123)).Return(tt.mockTotalDays, tt.mockTotalDaysError)
			}

			days, totalPages, err := NewWordService(mockRepo).GetDaysList(123, tt.page)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedPages, totalPages)
				assert.Len(t, days, tt.expectedDaysCount)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_GetWordsByDate(t *testing.T) {
	tests := []struct {
		name          string
		dateStr       string
		mockWords     []domain.Word
		expectedError bool
	}{
		{
			name:    "valid date",
			dateStr: "20241212",
			mockWords: []domain.Word{
				*testutil.NewTestWord(1, 123, "cat", "kæt", "a feline"),
			},
		},
		{
			name:          "invalid date format",
			dateStr:       "2024-12-12",
			expectedError: true,
		},
		{
			name:          "empty date",
			dateStr:       "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)

			if !tt.expectedError {
				mockRepo.On("GetWordsByDate", int64(123), mock.MatchedBy(func(d time.Time) bool {
					return d.Format("20060102") == tt.dateStr
				})).Return(tt.mockWords, nil)
			}

			words, err := NewWordService(mockRepo).GetWordsByDate(123, tt.dateStr)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.mockWords, words)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_SnoozeAndRetire(t *testing.T) {
	tests := []struct {
		name      string
		repoCall  string
		call      func(s *WordService) error
		mockError error
	}{
		{
			name:     "snooze",
			repoCall: "HideWordFor7Days",
			call:     func(s *WordService) error { return s.Snooze(123, 1) },
		},
		{
			name:      "snooze database error",
			repoCall:  "HideWordFor7Days",
			call:      func(s *WordService) error { return s.Snooze(123, 1) },
			mockError: fmt.Errorf("database error"),
		},
		{
			name:     "retire",
			repoCall: "HideWordForever",
			call:     func(s *WordService) error { return s.Retire(123, 1) },
		},
		{
			name:      "retire database error",
			repoCall:  "HideWordForever",
			call:      func(s *WordService) error { return s.Retire(123, 1) },
			mockError: fmt.Errorf("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			mockRepo.On(tt.repoCall, int64(123), 1).Return(tt.mockError)

			err := tt.call(NewWordService(mockRepo))

			assert.Equal(t, tt.mockError, err)
			mockRepo.AssertExpectations(t)
		})
	}
}
