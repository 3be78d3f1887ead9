package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/nailstudio-booking/internal/apperr"
	"github.com/sbilibin2017/nailstudio-booking/internal/logger"
	"github.com/sbilibin2017/nailstudio-booking/internal/models"
)

// pgUniqueViolation is the SQLSTATE raised when a UNIQUE constraint rejects a row.
const pgUniqueViolation = "23505"

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// FindByUsername returns the id of the account owning username, or nil.
func (r *UserReadRepository) FindByUsername(ctx context.Context, username string) (*int64, error) {
	const query = `SELECT id FROM users WHERE username = $1 LIMIT 1`
	return r.findID(ctx, query, username)
}

// FindByPhone returns the id of the account registered with phone, or nil.
func (r *UserReadRepository) FindByPhone(ctx context.Context, phone string) (*int64, error) {
	const query = `SELECT id FROM users WHERE phone = $1 LIMIT 1`
	return r.findID(ctx, query, phone)
}

func (r *UserReadRepository) findID(ctx context.Context, query, arg string) (*int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, query, arg)

	logger.Log.Infow(
		"query",
		"sql", singleLine(query),
		"args", []any{arg},
		"result", id,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &apperr.StorageError{Err: err}
	}
	return &id, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts an active account and returns its id. A UNIQUE violation is
// reported as *apperr.ConflictError naming the clashing field.
func (r *UserWriteRepository) Save(ctx context.Context, u *models.UserAccount) (int64, error) {
	const query = `
		INSERT INTO users (first_name, last_name, phone, username, password_hash, registered_at, active)
		VALUES ($1, $2, $3, $4, $5, NOW(), TRUE)
		RETURNING id
	`
	args := []any{u.FirstName, u.LastName, u.Phone, u.Username, u.PasswordHash}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)

	logger.Log.Infow(
		"query",
		"sql", singleLine(query),
		"args", []any{u.FirstName, u.LastName, u.Phone, u.Username, "[REDACTED]"},
		"result", id,
		"error", err,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, conflictFor(pgErr.ConstraintName)
		}
		return 0, &apperr.StorageError{Err: err}
	}
	return id, nil
}

func conflictFor(constraint string) *apperr.ConflictError {
	switch {
	case strings.Contains(constraint, "username"):
		return &apperr.ConflictError{Message: apperr.MsgUsernameExists}
	case strings.Contains(constraint, "phone"):
		return &apperr.ConflictError{Message: apperr.MsgPhoneRegistered}
	default:
		return &apperr.ConflictError{Message: apperr.MsgAccountDuplicate}
	}
}
