package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	errInternal := errors.New("db down")

	t.Run("Success", func(t *testing.T) {
		writer := NewMockUsageWriter(ctrl)
		kafkaWriter := NewMockKafkaWriter(ctrl)

		writer.EXPECT().IncrementUsage(ctx, "al@x.com").Return(int64(1), nil)
		kafkaWriter.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

		svc := NewUsageService(nil, writer, kafkaWriter)
		err := svc.Add(ctx, "al@x.com")

		assert.NoError(t, err)
	})

	t.Run("SuccessWithoutKafka", func(t *testing.T) {
		writer := NewMockUsageWriter(ctrl)
		writer.EXPECT().IncrementUsage(ctx, "al@x.com").Return(int64(1), nil)

		// A nil Kafka writer means publishing is skipped, not an error.
		svc := NewUsageService(nil, writer, nil)
		err := svc.Add(ctx, "al@x.com")

		assert.NoError(t, err)
	})

	t.Run("KafkaErrorIgnored", func(t *testing.T) {
		writer := NewMockUsageWriter(ctrl)
		kafkaWriter := NewMockKafkaWriter(ctrl)

		writer.EXPECT().IncrementUsage(ctx, "al@x.com").Return(int64(1), nil)
		kafkaWriter.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("broker down"))

		svc := NewUsageService(nil, writer, kafkaWriter)
		err := svc.Add(ctx, "al@x.com")

		assert.NoError(t, err)
	})

	t.Run("UserNotFound", func(t *testing.T) {
		writer := NewMockUsageWriter(ctrl)
		writer.EXPECT().IncrementUsage(ctx, "ghost@x.com").Return(int64(0), nil)

		svc := NewUsageService(nil, writer, nil)
		err := svc.Add(ctx, "ghost@x.com")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("WriterError", func(t *testing.T) {
		writer := NewMockUsageWriter(ctrl)
		writer.EXPECT().IncrementUsage(ctx, "al@x.com").Return(int64(0), errInternal)

		svc := NewUsageService(nil, writer, nil)
		err := svc.Add(ctx, "al@x.com")

		assert.ErrorIs(t, err, errInternal)
	})
}

func TestUsageService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		reader := NewMockUsageReader(ctrl)
		reader.EXPECT().GetUsageCount(ctx, int64(1)).Return(int64(7), nil)

		svc := NewUsageService(reader, nil, nil)
		count, err := svc.Get(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(7), count)
	})

	t.Run("UserNotFound", func(t *testing.T) {
		reader := NewMockUsageReader(ctrl)
		reader.EXPECT().GetUsageCount(ctx, int64(99)).Return(int64(0), sql.ErrNoRows)

		svc := NewUsageService(reader, nil, nil)
		count, err := svc.Get(ctx, 99)

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Equal(t, int64(0), count)
	})

	t.Run("ReaderError", func(t *testing.T) {
		errInternal := errors.New("db down")
		reader := NewMockUsageReader(ctrl)
		reader.EXPECT().GetUsageCount(ctx, int64(1)).Return(int64(0), errInternal)

		svc := NewUsageService(reader, nil, nil)
		count, err := svc.Get(ctx, 1)

		assert.ErrorIs(t, err, errInternal)
		assert.Equal(t, int64(0), count)
	})
}
