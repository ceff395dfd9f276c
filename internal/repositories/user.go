package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/ucrconnect/dashboard-api/internal/logger"
	"github.com/ucrconnect/dashboard-api/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByAuthID returns the user row matching an identity-provider id, or
// nil when no row exists.
func (r *UserReadRepository) GetByAuthID(ctx context.Context, authID string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, full_name, email, auth_id, password_hash, created_at, updated_at
		FROM users
		WHERE auth_id = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, authID)

	logger.Log.Infow("user lookup by auth id",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{authID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ExistsByEmail reports whether a user row with the given email exists.
func (r *UserReadRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)

	logger.Log.Infow("user existence check by email",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", exists,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return exists, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user row. Reapplying the same email updates the
// existing row instead of failing, so registration retries stay safe.
func (r *UserWriteRepository) Save(ctx context.Context, fullName, email, authID, passwordHash string) error {
	query := `
		INSERT INTO users (full_name, email, auth_id, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (email) DO UPDATE
		SET full_name = EXCLUDED.full_name,
		    auth_id = EXCLUDED.auth_id,
		    password_hash = EXCLUDED.password_hash,
		    updated_at = NOW()
	`
	args := []any{fullName, email, authID, passwordHash}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{fullName, email, authID, "<password_hash>"},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
