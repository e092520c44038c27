package postgres

import (
	"database/sql"
	"errors"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// IsAuthorized reports whether the contributor has entered the bot password.
// Unknown users are not authorized.
func (r *UserRepo) IsAuthorized(userID int64) (bool, error) {
	var authorized bool
	err := r.db.QueryRow(`SELECT authorized FROM users WHERE user_id = $1`, userID).Scan(&authorized)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return authorized, err
}

// AuthorizeUser grants access, creating the row if needed
func (r *UserRepo) AuthorizeUser(userID int64) error {
	return r.setAuthorized(userID, true)
}

// RevokeUser signs the contributor out
func (r *UserRepo) RevokeUser(userID int64) error {
	return r.setAuthorized(userID, false)
}

func (r *UserRepo) setAuthorized(userID int64, authorized bool) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET authorized = EXCLUDED.authorized
	`
	_, err := r.db.Exec(query, userID, authorized)
	return err
}

// EnsureUserExists creates an unauthorized user if there is none
func (r *UserRepo) EnsureUserExists(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, FALSE)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}
