package contract

import (
	"context"

	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/repository/specification"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.DietProfile) error
	Update(ctx context.Context, profile *entity.DietProfile) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DietProfile, error)
}
