package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naturedex/naturedex-server/internal/models"
)

func TestDiscoveryService_AddLabel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("InvalidCategory", func(t *testing.T) {
		svc := NewDiscoveryService(nil, nil, nil, nil)
		result, err := svc.AddLabel(ctx, 1, "mushrooms", "fly agaric")

		assert.ErrorIs(t, err, ErrInvalidCategory)
		assert.Nil(t, result)
	})

	t.Run("NewLabel", func(t *testing.T) {
		writer := NewMockDiscoveryWriter(ctrl)
		cache := NewMockSummaryCache(ctrl)
		kafkaWriter := NewMockKafkaWriter(ctrl)

		writer.EXPECT().SaveLabel(ctx, int64(1), models.CategoryFlowers, "daisy").Return(true, nil)
		cache.EXPECT().Invalidate(ctx, int64(1)).Return(nil)
		kafkaWriter.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

		svc := NewDiscoveryService(writer, nil, cache, kafkaWriter)
		result, err := svc.AddLabel(ctx, 1, models.CategoryFlowers, "daisy")

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.Success)
		assert.Equal(t, models.CategoryFlowers, result.Category)
		assert.Equal(t, "daisy", result.Label)
		assert.False(t, result.AlreadyExists)
	})

	t.Run("DuplicateLabel", func(t *testing.T) {
		writer := NewMockDiscoveryWriter(ctrl)

		// No invalidation and no event for a label already on record.
		writer.EXPECT().SaveLabel(ctx, int64(1), models.CategoryTrees, "oak").Return(false, nil)

		svc := NewDiscoveryService(writer, nil, NewMockSummaryCache(ctrl), NewMockKafkaWriter(ctrl))
		result, err := svc.AddLabel(ctx, 1, models.CategoryTrees, "oak")

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.True(t, result.AlreadyExists)
	})

	t.Run("NilCacheAndKafka", func(t *testing.T) {
		writer := NewMockDiscoveryWriter(ctrl)
		writer.EXPECT().SaveLabel(ctx, int64(1), models.CategoryRocks, "granite").Return(true, nil)

		svc := NewDiscoveryService(writer, nil, nil, nil)
		result, err := svc.AddLabel(ctx, 1, models.CategoryRocks, "granite")

		require.NoError(t, err)
		assert.False(t, result.AlreadyExists)
	})

	t.Run("CacheInvalidateErrorIgnored", func(t *testing.T) {
		writer := NewMockDiscoveryWriter(ctrl)
		cache := NewMockSummaryCache(ctrl)

		writer.EXPECT().SaveLabel(ctx, int64(1), models.CategoryFlowers, "rose").Return(true, nil)
		cache.EXPECT().Invalidate(ctx, int64(1)).Return(errors.New("redis down"))

		svc := NewDiscoveryService(writer, nil, cache, nil)
		result, err := svc.AddLabel(ctx, 1, models.CategoryFlowers, "rose")

		require.NoError(t, err)
		assert.False(t, result.AlreadyExists)
	})

	t.Run("WriterError", func(t *testing.T) {
		errInternal := errors.New("db down")
		writer := NewMockDiscoveryWriter(ctrl)
		writer.EXPECT().SaveLabel(ctx, int64(1), models.CategoryFlowers, "daisy").Return(false, errInternal)

		svc := NewDiscoveryService(writer, nil, nil, nil)
		result, err := svc.AddLabel(ctx, 1, models.CategoryFlowers, "daisy")

		assert.ErrorIs(t, err, errInternal)
		assert.Nil(t, result)
	})
}

func TestDiscoveryService_GetSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("CacheHit", func(t *testing.T) {
		cached := &models.NatureSummary{
			Counts: models.CategoryCounts{Flower: 4, Tree: 1},
		}
		cache := NewMockSummaryCache(ctrl)
		cache.EXPECT().GetSummary(ctx, int64(1)).Return(cached, nil)

		svc := NewDiscoveryService(nil, nil, cache, nil)
		summary, err := svc.GetSummary(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, cached, summary)
	})

	t.Run("CacheMiss", func(t *testing.T) {
		reader := NewMockDiscoveryReader(ctrl)
		cache := NewMockSummaryCache(ctrl)

		cache.EXPECT().GetSummary(ctx, int64(1)).Return(nil, errors.New("cache miss"))
		reader.EXPECT().CountByUserID(ctx, int64(1)).Return(map[string]int64{
			models.CategoryFlowers: 10,
			models.CategoryTrees:   9,
		}, nil)
		cache.EXPECT().SetSummary(ctx, int64(1), gomock.Any()).Return(nil)

		svc := NewDiscoveryService(nil, reader, cache, nil)
		summary, err := svc.GetSummary(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(10), summary.Counts.Flower)
		assert.Equal(t, int64(9), summary.Counts.Tree)
		assert.Equal(t, int64(0), summary.Counts.Rock)
		// Achievement unlocks at ten labels, not before.
		assert.True(t, summary.Achievements.Flower)
		assert.False(t, summary.Achievements.Tree)
		assert.False(t, summary.Achievements.Rock)
	})

	t.Run("NilCache", func(t *testing.T) {
		reader := NewMockDiscoveryReader(ctrl)
		reader.EXPECT().CountByUserID(ctx, int64(2)).Return(map[string]int64{}, nil)

		svc := NewDiscoveryService(nil, reader, nil, nil)
		summary, err := svc.GetSummary(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, int64(0), summary.Counts.Flower)
		assert.False(t, summary.Achievements.Flower)
	})

	t.Run("ReaderError", func(t *testing.T) {
		errInternal := errors.New("db down")
		reader := NewMockDiscoveryReader(ctrl)
		reader.EXPECT().CountByUserID(ctx, int64(1)).Return(nil, errInternal)

		svc := NewDiscoveryService(nil, reader, nil, nil)
		summary, err := svc.GetSummary(ctx, 1)

		assert.ErrorIs(t, err, errInternal)
		assert.Nil(t, summary)
	})
}
