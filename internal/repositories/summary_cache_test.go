package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/naturedex/naturedex-server/internal/models"
)

func TestSummaryCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewSummaryCacheRepository(rdb, 2*time.Second)

	summary := &models.NatureSummary{
		Counts:       models.CategoryCounts{Flower: 10, Tree: 3, Rock: 1},
		Achievements: models.CategoryAchievements{Flower: true},
	}

	t.Run("Set and Get summary", func(t *testing.T) {
		err := repo.SetSummary(ctx, 1, summary)
		assert.NoError(t, err)

		got, err := repo.GetSummary(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, summary, got)
	})

	t.Run("Get missing key returns error", func(t *testing.T) {
		_, err := repo.GetSummary(ctx, 404)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "summary not found")
	})

	t.Run("Invalidate removes the entry", func(t *testing.T) {
		err := repo.SetSummary(ctx, 2, summary)
		assert.NoError(t, err)

		err = repo.Invalidate(ctx, 2)
		assert.NoError(t, err)

		_, err = repo.GetSummary(ctx, 2)
		assert.Error(t, err)
	})

	t.Run("Cached summary expires", func(t *testing.T) {
		err := repo.SetSummary(ctx, 3, summary)
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err = repo.GetSummary(ctx, 3)
		assert.Error(t, err)
	})
}
