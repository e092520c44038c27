package dataset

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"wordbow/internal/config"
	"wordbow/internal/game"
	"wordbow/internal/repository"
	"wordbow/internal/repository/postgres"
	"wordbow/internal/service"
	"wordbow/internal/storage"

	"go.uber.org/zap"
)

// Source provides the word list a session plays with
type Source interface {
	Load(ctx context.Context) ([]game.WordRecord, error)
}

// entry is one element of the data.json array
type entry struct {
	Word          string `json:"word"`
	Pronunciation string `json:"pronunciation"`
	Meaning       string `json:"meaning"`
}

// FileSource reads a JSON array of {word, pronunciation, meaning} objects
type FileSource struct {
	Path string
}

// Load reads and validates the file. Entries without a word or meaning are skipped.
func (s FileSource) Load(ctx context.Context) ([]game.WordRecord, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var entries []entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", s.Path, err)
	}

	records := make([]game.WordRecord, 0, len(entries))
	for _, e := range entries {
		if rec, ok := toRecord(e.Word, e.Pronunciation, e.Meaning); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

// RepoSource reads the active entries curated through the bot
type RepoSource struct {
	Repo repository.DatasetRepository
}

// Load lists active entries
func (s RepoSource) Load(ctx context.Context) ([]game.WordRecord, error) {
	words, err := s.Repo.ListActiveWords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}

	records := make([]game.WordRecord, 0, len(words))
	for _, w := range words {
		if rec, ok := toRecord(w.Word, w.Pronunciation, w.Meaning); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

func toRecord(word, pronunciation, meaning string) (game.WordRecord, bool) {
	word, pronunciation, meaning, err := service.NormalizeEntry(word, pronunciation, meaning)
	if err != nil {
		return game.WordRecord{}, false
	}
	return game.WordRecord{Word: word, Pronunciation: pronunciation, Meaning: meaning}, true
}

// LoadOrEmpty loads src and logs a failure instead of returning it. A session
// given the empty result refuses to start with game.ErrNoDataset.
func LoadOrEmpty(ctx context.Context, src Source, logger *zap.Logger) []game.WordRecord {
	records, err := src.Load(ctx)
	if err != nil {
		logger.Error("Failed to load dataset", zap.Error(err))
		return nil
	}
	if len(records) == 0 {
		logger.Warn("Dataset is empty")
	} else {
		logger.Info("Dataset loaded", zap.Int("words", len(records)))
	}
	return records
}

// FromConfig builds the source cfg selects. For Postgres it connects and
// migrates first; the returned close func releases the pool and is never nil.
func FromConfig(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Source, func(), error) {
	if !cfg.UsesDatabase() {
		return FileSource{Path: cfg.Dataset.File}, func() {}, nil
	}

	if err := cfg.ValidateDatabase(); err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, cfg.DSN(), cfg.Database.Migrations, logger)
	if err != nil {
		return nil, nil, err
	}
	return RepoSource{Repo: postgres.NewWordRepo(db)}, closer(db, logger), nil
}

func closer(db *sql.DB, logger *zap.Logger) func() {
	return func() {
		if err := db.Close(); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}
}
