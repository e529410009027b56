package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ToEntity(c *model.ChatMessage) *entity.ChatMessage {
	if c == nil {
		return nil
	}
	var quest json.RawMessage
	if len(c.Quest) > 0 {
		quest = json.RawMessage(c.Quest)
	}
	return &entity.ChatMessage{
		Id:        c.Id,
		UserId:    c.UserId,
		Role:      entity.ChatRole(c.Role),
		Content:   c.Content,
		Quest:     quest,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ChatMapper) ToModel(c *entity.ChatMessage) *model.ChatMessage {
	if c == nil {
		return nil
	}
	var quest datatypes.JSON
	if len(c.Quest) > 0 {
		quest = datatypes.JSON(c.Quest)
	}
	return &model.ChatMessage{
		Id:        c.Id,
		UserId:    c.UserId,
		Role:      string(c.Role),
		Content:   c.Content,
		Quest:     quest,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ChatMapper) ToEntities(msgs []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(msgs))
	for i, c := range msgs {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
