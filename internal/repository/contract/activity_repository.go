package contract

import (
	"context"

	"github.com/google/uuid"

	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/repository/specification"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	Update(ctx context.Context, activity *entity.Activity) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Activity, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Activity, error)

	// MarkSynced records the Google mirror without touching other columns.
	MarkSynced(ctx context.Context, id uuid.UUID, googleEventId string) error
}
