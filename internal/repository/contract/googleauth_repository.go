package contract

import (
	"context"

	"github.com/google/uuid"

	"diet-coach-be/internal/entity"
)

type GoogleAuthRepository interface {
	// Upsert creates or replaces the grant for the owning user.
	Upsert(ctx context.Context, auth *entity.GoogleAuth) error
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.GoogleAuth, error)
	DeleteByUserId(ctx context.Context, userId uuid.UUID) error
}
