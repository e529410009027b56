package implementation

import (
	"context"

	"gorm.io/gorm"

	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/mapper"
	"diet-coach-be/internal/model"
	"diet-coach-be/internal/repository/contract"
	"diet-coach-be/internal/repository/specification"
)

type ChatMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	return &ChatMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatMessageRepositoryImpl) Create(ctx context.Context, msg *entity.ChatMessage) error {
	m := r.mapper.ToModel(msg)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*msg = *r.mapper.ToEntity(m)
	return nil
}

func (r *ChatMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var models []*model.ChatMessage
	if err := applySpecs(r.db.WithContext(ctx), specs).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ChatMessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	if err := applySpecs(r.db.WithContext(ctx).Model(&model.ChatMessage{}), specs).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
