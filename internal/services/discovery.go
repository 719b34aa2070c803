package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/naturedex/naturedex-server/internal/logger"
	"github.com/naturedex/naturedex-server/internal/models"
)

// ErrInvalidCategory is returned when a label targets an unknown category.
var ErrInvalidCategory = errors.New("invalid category")

// achievementThreshold is the label count at which a category achievement
// unlocks.
const achievementThreshold = 10

// DiscoveryWriter records nature labels.
type DiscoveryWriter interface {
	SaveLabel(ctx context.Context, userID int64, category, label string) (bool, error)
}

// DiscoveryReader reads per-user discovery counts.
type DiscoveryReader interface {
	CountByUserID(ctx context.Context, userID int64) (map[string]int64, error)
}

// SummaryCache caches naturedex summaries.
type SummaryCache interface {
	GetSummary(ctx context.Context, userID int64) (*models.NatureSummary, error)
	SetSummary(ctx context.Context, userID int64, summary *models.NatureSummary) error
	Invalidate(ctx context.Context, userID int64) error
}

// DiscoveryService records nature discoveries and builds naturedex summaries.
type DiscoveryService struct {
	writer      DiscoveryWriter
	reader      DiscoveryReader
	cache       SummaryCache
	kafkaWriter KafkaWriter
}

// NewDiscoveryService creates a new DiscoveryService. cache and kafkaWriter
// may be nil; both are optional collaborators.
func NewDiscoveryService(writer DiscoveryWriter, reader DiscoveryReader, cache SummaryCache, kafkaWriter KafkaWriter) *DiscoveryService {
	return &DiscoveryService{
		writer:      writer,
		reader:      reader,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// publishDiscoveryEvent publishes a discovery event to Kafka.
func (s *DiscoveryService) publishDiscoveryEvent(ctx context.Context, event models.DiscoveryEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "user_id", event.UserID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal discovery event", "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.Category),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish discovery event", "error", err)
		return
	}

	logger.Log.Infow("discovery event published", "user_id", event.UserID, "category", event.Category)
}

// AddLabel records a label for a user. Recording the same label twice is not
// an error; the result reports it as already existing.
func (s *DiscoveryService) AddLabel(ctx context.Context, userID int64, category, label string) (*models.DiscoveryResult, error) {
	if !models.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	inserted, err := s.writer.SaveLabel(ctx, userID, category, label)
	if err != nil {
		logger.Log.Errorw("failed to save label", "err", err)
		return nil, err
	}

	if inserted {
		if s.cache != nil {
			if err := s.cache.Invalidate(ctx, userID); err != nil {
				logger.Log.Warnw("failed to invalidate summary cache", "err", err, "user_id", userID)
			}
		}
		s.publishDiscoveryEvent(ctx, models.DiscoveryEvent{
			UserID:    userID,
			Category:  category,
			Label:     label,
			Timestamp: time.Now(),
		})
	}

	return &models.DiscoveryResult{
		Success:       true,
		Category:      category,
		Label:         label,
		AlreadyExists: !inserted,
	}, nil
}

// GetSummary returns discovery counts and achievements for a user, served
// from the cache when possible.
func (s *DiscoveryService) GetSummary(ctx context.Context, userID int64) (*models.NatureSummary, error) {
	if s.cache != nil {
		if summary, err := s.cache.GetSummary(ctx, userID); err == nil {
			return summary, nil
		}
	}

	counts, err := s.reader.CountByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count discoveries", "err", err, "user_id", userID)
		return nil, err
	}

	summary := &models.NatureSummary{
		Counts: models.CategoryCounts{
			Flower: counts[models.CategoryFlowers],
			Tree:   counts[models.CategoryTrees],
			Rock:   counts[models.CategoryRocks],
		},
		Achievements: models.CategoryAchievements{
			Flower: counts[models.CategoryFlowers] >= achievementThreshold,
			Tree:   counts[models.CategoryTrees] >= achievementThreshold,
			Rock:   counts[models.CategoryRocks] >= achievementThreshold,
		},
	}

	if s.cache != nil {
		if err := s.cache.SetSummary(ctx, userID, summary); err != nil {
			logger.Log.Warnw("failed to cache summary", "err", err, "user_id", userID)
		}
	}

	return summary, nil
}
