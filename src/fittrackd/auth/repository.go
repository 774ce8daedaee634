package auth

import (
	"database/sql"
	"strings"

	"github.com/da-maltsev/fit-track/src/common/errors"
	"github.com/da-maltsev/fit-track/src/fittrackd/db"
)

// UserRepository handles user account database operations
type UserRepository struct {
	db *db.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(database *db.Database) *UserRepository {
	return &UserRepository{db: database}
}

// Create registers a new user account. Email and username uniqueness are
// checked inside the insert transaction.
func (r *UserRepository) Create(email, username, password string) (*User, error) {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)

	hash, err := HashPassword(password)
	if err != nil {
		return nil, errors.ErrInternal.WithCause(err)
	}

	tx, err := r.db.DB().Begin()
	if err != nil {
		return nil, errors.ErrDatabaseTransaction.WithCause(err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?", email).Scan(&count); err != nil {
		return nil, errors.ErrDatabaseQuery.WithCause(err)
	}
	if count > 0 {
		return nil, errors.ErrEmailExists
	}

	if err := tx.QueryRow("SELECT COUNT(*) FROM users WHERE username = ?", username).Scan(&count); err != nil {
		return nil, errors.ErrDatabaseQuery.WithCause(err)
	}
	if count > 0 {
		return nil, errors.ErrUsernameExists
	}

	res, err := tx.Exec(`
		INSERT INTO users (email, username, password_hash)
		VALUES (?, ?, ?)
	`, email, username, hash)
	if err != nil {
		return nil, errors.ErrDatabaseQuery.WithCause(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.ErrDatabaseQuery.WithCause(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.ErrDatabaseTransaction.WithCause(err)
	}

	return r.GetByID(id)
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(id int64) (*User, error) {
	return r.scanUser(r.db.DB().QueryRow(`
		SELECT id, email, username, password_hash, created_at, updated_at
		FROM users WHERE id = ?
	`, id))
}

// GetByUsernameOrEmail retrieves a user by username or email. Login accepts
// either in the same field.
func (r *UserRepository) GetByUsernameOrEmail(identity string) (*User, error) {
	return r.scanUser(r.db.DB().QueryRow(`
		SELECT id, email, username, password_hash, created_at, updated_at
		FROM users WHERE username = ? OR email = ?
	`, identity, identity))
}

// Authenticate verifies the identity/password pair and returns the matching
// user. Unknown identity and wrong password both return
// errors.ErrInvalidCredentials, so the two cases cannot be told apart.
func (r *UserRepository) Authenticate(identity, password string) (*User, error) {
	user, err := r.GetByUsernameOrEmail(identity)
	if err != nil {
		if errors.Is(err, errors.ErrUserNotFound) {
			return nil, errors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, errors.ErrInvalidCredentials
	}

	return user, nil
}

// scanUser scans a user row, mapping sql.ErrNoRows to ErrUserNotFound
func (r *UserRepository) scanUser(row *sql.Row) (*User, error) {
	u := &User{}
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.ErrDatabaseQuery.WithCause(err)
	}
	return u, nil
}
