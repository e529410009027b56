package service

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"diet-coach-be/internal/pkg/logger"
	"diet-coach-be/pkg/events"
)

type IPublisherService interface {
	PublishXpAwarded(ctx context.Context, userId uuid.UUID, amount int, reason string)
}

type publisherService struct {
	publisher message.Publisher
	log       logger.ILogger
}

func NewPublisherService(publisher message.Publisher, log logger.ILogger) IPublisherService {
	return &publisherService{
		publisher: publisher,
		log:       log,
	}
}

// PublishXpAwarded is fire and forget; losing an XP event must never fail the
// action that earned it.
func (s *publisherService) PublishXpAwarded(ctx context.Context, userId uuid.UUID, amount int, reason string) {
	evt := events.XpAwardedEvent{
		UserId:     userId,
		Amount:     amount,
		Reason:     reason,
		OccurredAt: time.Now(),
	}
	if err := events.Publish(ctx, s.publisher, events.TopicXpAwarded, evt); err != nil {
		s.log.Warn("publisher", "failed to publish xp event", map[string]interface{}{
			"user_id": userId.String(),
			"reason":  reason,
			"error":   err.Error(),
		})
	}
}
