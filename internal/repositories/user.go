package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/naturedex/naturedex-server/internal/logger"
	"github.com/naturedex/naturedex-server/internal/models"
)

// ErrEmailExists is returned by Save when the email unique constraint fires.
var ErrEmailExists = errors.New("email already exists")

// uniqueViolation is the PostgreSQL error code for a unique constraint violation.
const uniqueViolation = "23505"

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil if none exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, role, api_usage_count, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
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

// GetUsageCount returns the api_usage_count for a user id.
func (r *UserReadRepository) GetUsageCount(ctx context.Context, userID int64) (int64, error) {
	const query = `
		SELECT api_usage_count
		FROM users
		WHERE id = $1
	`

	var count int64
	err := r.db.GetContext(ctx, &count, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", count,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return count, nil
}

// List returns all user records ordered by id.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, role, api_usage_count, created_at, updated_at
		FROM users
		ORDER BY id
	`

	var users []models.UserDB
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new user with the default role and a zero usage counter,
// returning the created row. A concurrent insert with the same email loses
// on the unique constraint and comes back as ErrEmailExists.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, role, api_usage_count, created_at, updated_at)
		VALUES ($1, $2, $3, 'user', 0, NOW(), NOW())
		RETURNING id, username, email, password_hash, role, api_usage_count, created_at, updated_at
	`
	args := []any{username, email, passwordHash}

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return nil, ErrEmailExists
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// IncrementUsage adds one to a user's api_usage_count, returning the number
// of affected rows (zero when no user has that email).
func (r *UserWriteRepository) IncrementUsage(ctx context.Context, email string) (int64, error) {
	const query = `
		UPDATE users
		SET api_usage_count = api_usage_count + 1, updated_at = NOW()
		WHERE email = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, email)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return rowsAffected, nil
}
