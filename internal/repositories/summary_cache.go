package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/naturedex/naturedex-server/internal/logger"
	"github.com/naturedex/naturedex-server/internal/models"
)

// SummaryCacheRepository caches naturedex summaries in Redis.
type SummaryCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached summaries
}

// NewSummaryCacheRepository creates a new repository instance with the given TTL.
func NewSummaryCacheRepository(client *redis.Client, expiration time.Duration) *SummaryCacheRepository {
	return &SummaryCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func summaryKey(userID int64) string {
	return fmt.Sprintf("nature_summary:%d", userID)
}

// GetSummary fetches a cached summary for a user. A cache miss is an error;
// callers fall back to the database.
func (r *SummaryCacheRepository) GetSummary(ctx context.Context, userID int64) (*models.NatureSummary, error) {
	key := summaryKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("summary not found in cache for user %d", userID)
		}
		return nil, err
	}

	var summary models.NatureSummary
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", summary,
		"error", nil,
	)

	return &summary, nil
}

// SetSummary caches a summary for a user with the repository TTL.
func (r *SummaryCacheRepository) SetSummary(ctx context.Context, userID int64, summary *models.NatureSummary) error {
	key := summaryKey(userID)

	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate removes a user's cached summary, forcing the next read to hit
// the database.
func (r *SummaryCacheRepository) Invalidate(ctx context.Context, userID int64) error {
	key := summaryKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
