package mapper

import (
	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/model"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.DietProfile) *entity.DietProfile {
	if p == nil {
		return nil
	}
	return &entity.DietProfile{
		Id:                    p.Id,
		UserId:                p.UserId,
		Gender:                p.Gender,
		Age:                   p.Age,
		HeightCm:              p.HeightCm,
		WeightKg:              p.WeightKg,
		ActivityLevel:         p.ActivityLevel,
		Goal:                  p.Goal,
		TargetWeightKg:        p.TargetWeightKg,
		Bmr:                   p.Bmr,
		Tdee:                  p.Tdee,
		DailyCalorieTarget:    p.DailyCalorieTarget,
		WaterTargetGlasses:    p.WaterTargetGlasses,
		WaterReminderEnabled:  p.WaterReminderEnabled,
		WaterReminderInterval: p.WaterReminderInterval,
		CalendarPopupMinutes:  p.CalendarPopupMinutes,
		CalendarEmailMinutes:  p.CalendarEmailMinutes,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.DietProfile) *model.DietProfile {
	if p == nil {
		return nil
	}
	return &model.DietProfile{
		Id:                    p.Id,
		UserId:                p.UserId,
		Gender:                p.Gender,
		Age:                   p.Age,
		HeightCm:              p.HeightCm,
		WeightKg:              p.WeightKg,
		ActivityLevel:         p.ActivityLevel,
		Goal:                  p.Goal,
		TargetWeightKg:        p.TargetWeightKg,
		Bmr:                   p.Bmr,
		Tdee:                  p.Tdee,
		DailyCalorieTarget:    p.DailyCalorieTarget,
		WaterTargetGlasses:    p.WaterTargetGlasses,
		WaterReminderEnabled:  p.WaterReminderEnabled,
		WaterReminderInterval: p.WaterReminderInterval,
		CalendarPopupMinutes:  p.CalendarPopupMinutes,
		CalendarEmailMinutes:  p.CalendarEmailMinutes,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}
