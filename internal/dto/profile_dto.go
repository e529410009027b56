package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpsertProfileRequest struct {
	Gender             string  `json:"gender" validate:"required,oneof=male female"`
	Age                int     `json:"age" validate:"required,gt=0,lte=120"`
	HeightCm           float64 `json:"height_cm" validate:"required,gt=0"`
	WeightKg           float64 `json:"weight_kg" validate:"required,gt=0"`
	ActivityLevel      string  `json:"activity_level" validate:"required"`
	Goal               string  `json:"goal" validate:"required,oneof=lose_weight gain_muscle maintain"`
	TargetWeightKg     float64 `json:"target_weight_kg" validate:"omitempty,gt=0"`
	WaterTargetGlasses int     `json:"water_target_glasses" validate:"omitempty,gt=0"`

	WaterReminderEnabled  bool `json:"water_reminder_enabled"`
	WaterReminderInterval int  `json:"water_reminder_interval" validate:"omitempty,gt=0"`
	CalendarPopupMinutes  int  `json:"calendar_popup_minutes" validate:"omitempty,gt=0"`
	CalendarEmailMinutes  int  `json:"calendar_email_minutes" validate:"omitempty,gt=0"`

	// Optional precomputed values. Anything missing is derived server side.
	Bmr                *float64 `json:"bmr" validate:"omitempty,gt=0"`
	Tdee               *float64 `json:"tdee" validate:"omitempty,gt=0"`
	DailyCalorieTarget *int     `json:"daily_calorie_target" validate:"omitempty,gt=0"`
}

type ProfileResponse struct {
	Id                 uuid.UUID `json:"id"`
	UserId             uuid.UUID `json:"user_id"`
	Gender             string    `json:"gender"`
	Age                int       `json:"age"`
	HeightCm           float64   `json:"height_cm"`
	WeightKg           float64   `json:"weight_kg"`
	ActivityLevel      string  `json:"activity_level"`
	Goal               string  `json:"goal"`
	TargetWeightKg     float64 `json:"target_weight_kg"`
	Bmr                float64 `json:"bmr"`
	Tdee               float64 `json:"tdee"`
	DailyCalorieTarget int     `json:"daily_calorie_target"`
	WaterTargetGlasses int     `json:"water_target_glasses"`

	WaterReminderEnabled  bool `json:"water_reminder_enabled"`
	WaterReminderInterval int  `json:"water_reminder_interval"`
	CalendarPopupMinutes  int  `json:"calendar_popup_minutes"`
	CalendarEmailMinutes  int  `json:"calendar_email_minutes"`
	GoogleConnected       bool `json:"google_connected"`

	UpdatedAt time.Time `json:"updated_at"`
}
