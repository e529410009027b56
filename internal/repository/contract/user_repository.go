package contract

import (
	"context"
	"time"

	"github.com/google/uuid"

	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Quota bookkeeping
	IncrementMessageCount(ctx context.Context, id uuid.UUID, at time.Time) error
	ResetMessageCount(ctx context.Context, id uuid.UUID, at time.Time) error

	// Gamification
	AddXp(ctx context.Context, id uuid.UUID, amount int) error

	// Membership
	UpgradeToPremium(ctx context.Context, id uuid.UUID, expiry time.Time) error
	SetBuddy(ctx context.Context, id uuid.UUID, buddyId *uuid.UUID) error
}
