package contract

import (
	"context"

	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/repository/specification"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, msg *entity.ChatMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
