package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/naturedex/naturedex-server/internal/logger"
	"github.com/naturedex/naturedex-server/internal/models"
)

// ErrUserNotFound is returned when a usage operation targets a missing user.
var ErrUserNotFound = errors.New("user not found")

// UsageReader reads api_usage_count values.
type UsageReader interface {
	GetUsageCount(ctx context.Context, userID int64) (int64, error)
}

// UsageWriter increments api_usage_count values.
type UsageWriter interface {
	IncrementUsage(ctx context.Context, email string) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// UsageService tracks per-user AI-service call counts and publishes usage
// events to Kafka.
type UsageService struct {
	reader      UsageReader
	writer      UsageWriter
	kafkaWriter KafkaWriter
}

// NewUsageService creates a new UsageService.
func NewUsageService(reader UsageReader, writer UsageWriter, kafkaWriter KafkaWriter) *UsageService {
	return &UsageService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishUsageEvent publishes a usage event to Kafka.
func (s *UsageService) publishUsageEvent(ctx context.Context, event models.UsageEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "email", event.Email)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal usage event", "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.Email),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish usage event", "error", err)
		return
	}

	logger.Log.Infow("usage event published", "email", event.Email)
}

// Add increments the usage counter for the user with the given email.
func (s *UsageService) Add(ctx context.Context, email string) error {
	rowsAffected, err := s.writer.IncrementUsage(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to increment usage", "err", err)
		return err
	}
	if rowsAffected == 0 {
		logger.Log.Errorw("no user with email", "email", email)
		return ErrUserNotFound
	}

	s.publishUsageEvent(ctx, models.UsageEvent{
		Email:     email,
		Timestamp: time.Now(),
	})

	return nil
}

// Get returns the usage counter for the user with the given id.
func (s *UsageService) Get(ctx context.Context, userID int64) (int64, error) {
	count, err := s.reader.GetUsageCount(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		logger.Log.Errorw("no user with id", "user_id", userID)
		return 0, ErrUserNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get usage count", "err", err, "user_id", userID)
		return 0, err
	}
	return count, nil
}
