package mapper

import (
	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/model"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(a *model.Activity) *entity.Activity {
	if a == nil {
		return nil
	}
	return &entity.Activity{
		Id:            a.Id,
		UserId:        a.UserId,
		Title:         a.Title,
		Description:   a.Description,
		Category:      entity.ActivityCategory(a.Category),
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
		GoogleEventId: a.GoogleEventId,
		Synced:        a.Synced,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (m *ActivityMapper) ToModel(a *entity.Activity) *model.Activity {
	if a == nil {
		return nil
	}
	return &model.Activity{
		Id:            a.Id,
		UserId:        a.UserId,
		Title:         a.Title,
		Description:   a.Description,
		Category:      string(a.Category),
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
		GoogleEventId: a.GoogleEventId,
		Synced:        a.Synced,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (m *ActivityMapper) ToEntities(activities []*model.Activity) []*entity.Activity {
	entities := make([]*entity.Activity, len(activities))
	for i, a := range activities {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
