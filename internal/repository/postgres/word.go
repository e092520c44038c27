package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"wordbow/internal/domain"
)

// WordRepo implements repository.WordRepository and repository.DatasetRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

const wordColumns = `id, user_id, word, pronunciation, meaning, created_at, hidden_until, hidden_forever`

// activeFilter excludes retired entries and entries hidden until a future date
const activeFilter = `(hidden_forever = FALSE OR hidden_forever IS NULL)
			AND (hidden_until IS NULL OR hidden_until <= NOW())`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWord(row rowScanner) (domain.Word, error) {
	var w domain.Word
	var hiddenUntil sql.NullTime
	if err := row.Scan(&w.ID, &w.UserID, &w.Word, &w.Pronunciation, &w.Meaning, &w.CreatedAt, &hiddenUntil, &w.HiddenForever); err != nil {
		return domain.Word{}, err
	}
	if hiddenUntil.Valid {
		w.HiddenUntil = &hiddenUntil.Time
	}
	return w, nil
}

// SaveWord stores a new entry
func (r *WordRepo) SaveWord(userID int64, word, pronunciation, meaning string) error {
	query := `
		INSERT INTO words (user_id, word, pronunciation, meaning)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(query, userID, word, pronunciation, meaning)
	return err
}

// GetRandomWord returns a random active entry of the user
func (r *WordRepo) GetRandomWord(userID int64) (*domain.Word, error) {
	query := `
		SELECT ` + wordColumns + `
		FROM words
		WHERE user_id = $1
			AND ` + activeFilter + `
		ORDER BY RANDOM()
		LIMIT 1
	`
	w, err := scanWord(r.db.QueryRow(query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// ListActiveWords returns every playable entry across all contributors
func (r *WordRepo) ListActiveWords(ctx context.Context) ([]domain.Word, error) {
	query := `
		SELECT ` + wordColumns + `
		FROM words
		WHERE ` + activeFilter + `
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// GetDaysWithWords returns days that have words with counts
// Uses Moscow timezone for day calculation (day changes at 00:00 MSK)
func (r *WordRepo) GetDaysWithWords(userID int64, limit, offset int) ([]domain.Day, error) {
	query := `
		SELECT DATE(created_at AT TIME ZONE 'Europe/Moscow') AS day, COUNT(*) AS count
		FROM words
		WHERE user_id = $1
			AND created_at >= NOW() - INTERVAL '60 days'
		GROUP BY DATE(created_at AT TIME ZONE 'Europe/Moscow')
		ORDER BY day DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []domain.Day
	for rows.Next() {
		var d domain.Day
		if err := rows.Scan(&d.Date, &d.WordCount); err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	return days, rows.Err()
}

// GetTotalDaysCount returns total number of days with words
func (r *WordRepo) GetTotalDaysCount(userID int64) (int, error) {
	query := `
		SELECT COUNT(DISTINCT DATE(created_at AT TIME ZONE 'Europe/Moscow'))
		FROM words
		WHERE user_id = $1
			AND created_at >= NOW() - INTERVAL '60 days'
	`

	var count int
	err := r.db.QueryRow(query, userID).Scan(&count)
	return count, err
}

// GetWordsByDate returns all words for a calendar date in Moscow time
func (r *WordRepo) GetWordsByDate(userID int64, date time.Time) ([]domain.Word, error) {
	query := `
		SELECT ` + wordColumns + `
		FROM words
		WHERE user_id = $1
			AND DATE(created_at AT TIME ZONE 'Europe/Moscow') = $2::date
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID, date.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// HideWordFor7Days takes an entry out of the game and the random card for a week
func (r *WordRepo) HideWordFor7Days(userID int64, wordID int) error {
	query := `
		UPDATE words
		SET hidden_until = NOW() + INTERVAL '7 days'
		WHERE id = $1 AND user_id = $2
	`
	_, err := r.db.Exec(query, wordID, userID)
	return err
}

// HideWordForever retires an entry
func (r *WordRepo) HideWordForever(userID int64, wordID int) error {
	query := `
		UPDATE words
		SET hidden_forever = TRUE
		WHERE id = $1 AND user_id = $2
	`
	_, err := r.db.Exec(query, wordID, userID)
	return err
}

// PurgeRetiredWords deletes retired entries older than days and returns how many went
func (r *WordRepo) PurgeRetiredWords(days int) (int64, error) {
	query := `
		DELETE FROM words
		WHERE hidden_forever = TRUE
			AND created_at < NOW() - INTERVAL '1 day' * $1
	`
	res, err := r.db.Exec(query, days)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
