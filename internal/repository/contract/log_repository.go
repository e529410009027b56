package contract

import (
	"context"

	"github.com/google/uuid"

	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/repository/specification"
)

type FoodLogRepository interface {
	Create(ctx context.Context, log *entity.FoodLog) error
	Update(ctx context.Context, log *entity.FoodLog) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FoodLog, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FoodLog, error)
}

type ExerciseLogRepository interface {
	Create(ctx context.Context, log *entity.ExerciseLog) error
	Update(ctx context.Context, log *entity.ExerciseLog) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ExerciseLog, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExerciseLog, error)
}

type WaterLogRepository interface {
	Create(ctx context.Context, log *entity.WaterLog) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WaterLog, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WaterLog, error)
}
