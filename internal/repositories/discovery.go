package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/naturedex/naturedex-server/internal/logger"
)

// DiscoveryWriteRepository records nature labels.
type DiscoveryWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewDiscoveryWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *DiscoveryWriteRepository {
	return &DiscoveryWriteRepository{db: db, txGetter: txGetter}
}

// SaveLabel inserts a label for a user and category. The composite primary
// key makes the insert idempotent; the returned bool is false when the label
// was already recorded.
func (r *DiscoveryWriteRepository) SaveLabel(ctx context.Context, userID int64, category, label string) (bool, error) {
	const query = `
		INSERT INTO nature_discoveries (user_id, category, label, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, category, label) DO NOTHING
	`
	args := []any{userID, category, label}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// DiscoveryReadRepository reads per-user discovery counts.
type DiscoveryReadRepository struct {
	db *sqlx.DB
}

func NewDiscoveryReadRepository(db *sqlx.DB) *DiscoveryReadRepository {
	return &DiscoveryReadRepository{db: db}
}

// CountByUserID returns label counts per category for one user. Categories
// with no labels are absent from the map.
func (r *DiscoveryReadRepository) CountByUserID(ctx context.Context, userID int64) (map[string]int64, error) {
	const query = `
		SELECT category, COUNT(*) AS labels
		FROM nature_discoveries
		WHERE user_id = $1
		GROUP BY category
	`

	rows := []struct {
		Category string `db:"category"`
		Labels   int64  `db:"labels"`
	}{}
	err := r.db.SelectContext(ctx, &rows, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Labels
	}

	return counts, nil
}
