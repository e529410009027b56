package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"

	"diet-coach-be/internal/pkg/logger"
	"diet-coach-be/internal/repository/unitofwork"
	"diet-coach-be/pkg/events"
)

type IConsumerService interface {
	Start(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewConsumerService(subscriber message.Subscriber, uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		uowFactory: uowFactory,
		log:        log,
	}
}

// Start consumes XP events until ctx is cancelled. Runs in its own goroutine
// from bootstrap.
func (s *consumerService) Start(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, events.TopicXpAwarded)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.handleXpAwarded(ctx, msg)
			msg.Ack()
		}
	}()

	return nil
}

func (s *consumerService) handleXpAwarded(ctx context.Context, msg *message.Message) {
	var evt events.XpAwardedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		s.log.Warn("consumer", "malformed xp event dropped", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}
	if evt.Amount <= 0 {
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().AddXp(ctx, evt.UserId, evt.Amount); err != nil {
		s.log.Error("consumer", "failed to apply xp award", map[string]interface{}{
			"user_id": evt.UserId.String(),
			"amount":  evt.Amount,
			"error":   err.Error(),
		})
		return
	}

	s.log.Info("consumer", "xp awarded", map[string]interface{}{
		"user_id": evt.UserId.String(),
		"amount":  evt.Amount,
		"reason":  evt.Reason,
	})
}
