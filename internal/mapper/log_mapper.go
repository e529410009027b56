package mapper

import (
	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/model"
)

type LogMapper struct{}

func NewLogMapper() *LogMapper {
	return &LogMapper{}
}

func (m *LogMapper) FoodToEntity(f *model.FoodLog) *entity.FoodLog {
	if f == nil {
		return nil
	}
	return &entity.FoodLog{
		Id:        f.Id,
		UserId:    f.UserId,
		Name:      f.Name,
		Portion:   f.Portion,
		MealType:  f.MealType,
		Notes:     f.Notes,
		Calories:  f.Calories,
		Protein:   f.Protein,
		Carbs:     f.Carbs,
		Fat:       f.Fat,
		LoggedAt:  f.LoggedAt,
		CreatedAt: f.CreatedAt,
	}
}

func (m *LogMapper) FoodToModel(f *entity.FoodLog) *model.FoodLog {
	if f == nil {
		return nil
	}
	return &model.FoodLog{
		Id:        f.Id,
		UserId:    f.UserId,
		Name:      f.Name,
		Portion:   f.Portion,
		MealType:  f.MealType,
		Notes:     f.Notes,
		Calories:  f.Calories,
		Protein:   f.Protein,
		Carbs:     f.Carbs,
		Fat:       f.Fat,
		LoggedAt:  f.LoggedAt,
		CreatedAt: f.CreatedAt,
	}
}

func (m *LogMapper) FoodToEntities(logs []*model.FoodLog) []*entity.FoodLog {
	entities := make([]*entity.FoodLog, len(logs))
	for i, f := range logs {
		entities[i] = m.FoodToEntity(f)
	}
	return entities
}

func (m *LogMapper) ExerciseToEntity(e *model.ExerciseLog) *entity.ExerciseLog {
	if e == nil {
		return nil
	}
	return &entity.ExerciseLog{
		Id:              e.Id,
		UserId:          e.UserId,
		Name:            e.Name,
		Notes:           e.Notes,
		DurationMinutes: e.DurationMinutes,
		CaloriesBurned:  e.CaloriesBurned,
		LoggedAt:        e.LoggedAt,
		CreatedAt:       e.CreatedAt,
	}
}

func (m *LogMapper) ExerciseToModel(e *entity.ExerciseLog) *model.ExerciseLog {
	if e == nil {
		return nil
	}
	return &model.ExerciseLog{
		Id:              e.Id,
		UserId:          e.UserId,
		Name:            e.Name,
		Notes:           e.Notes,
		DurationMinutes: e.DurationMinutes,
		CaloriesBurned:  e.CaloriesBurned,
		LoggedAt:        e.LoggedAt,
		CreatedAt:       e.CreatedAt,
	}
}

func (m *LogMapper) ExerciseToEntities(logs []*model.ExerciseLog) []*entity.ExerciseLog {
	entities := make([]*entity.ExerciseLog, len(logs))
	for i, e := range logs {
		entities[i] = m.ExerciseToEntity(e)
	}
	return entities
}

func (m *LogMapper) WaterToEntity(w *model.WaterLog) *entity.WaterLog {
	if w == nil {
		return nil
	}
	return &entity.WaterLog{
		Id:        w.Id,
		UserId:    w.UserId,
		Glasses:   w.Glasses,
		LoggedAt:  w.LoggedAt,
		CreatedAt: w.CreatedAt,
	}
}

func (m *LogMapper) WaterToModel(w *entity.WaterLog) *model.WaterLog {
	if w == nil {
		return nil
	}
	return &model.WaterLog{
		Id:        w.Id,
		UserId:    w.UserId,
		Glasses:   w.Glasses,
		LoggedAt:  w.LoggedAt,
		CreatedAt: w.CreatedAt,
	}
}

func (m *LogMapper) WaterToEntities(logs []*model.WaterLog) []*entity.WaterLog {
	entities := make([]*entity.WaterLog, len(logs))
	for i, w := range logs {
		entities[i] = m.WaterToEntity(w)
	}
	return entities
}
