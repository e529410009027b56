package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"diet-coach-be/internal/repository/specification"
	"diet-coach-be/internal/repository/unitofwork"
	"diet-coach-be/pkg/entitlement"
)

// gateStore adapts the user repository to the entitlement gate's port.
type gateStore struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewGateStore(uowFactory unitofwork.RepositoryFactory) entitlement.UserStore {
	return &gateStore{uowFactory: uowFactory}
}

func (s *gateStore) GetAccount(ctx context.Context, userID string) (*entitlement.Account, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	var lastMessage time.Time
	if user.LastMessageDate != nil {
		lastMessage = *user.LastMessageDate
	}

	return &entitlement.Account{
		SubscriptionTier:      string(user.MembershipTier),
		SubscriptionExpiresAt: user.MembershipExpiry,
		MessageCount:          user.MessageCount,
		LastMessageDate:       lastMessage,
	}, nil
}

func (s *gateStore) ResetMessageCount(ctx context.Context, userID string, at time.Time) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().ResetMessageCount(ctx, id, at)
}

func (s *gateStore) IncrementMessageCount(ctx context.Context, userID string, at time.Time) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().IncrementMessageCount(ctx, id, at)
}
