package entity

import (
	"time"

	"github.com/google/uuid"
)

type DietProfile struct {
	Id                 uuid.UUID
	UserId             uuid.UUID
	Gender             string
	Age                int
	HeightCm           float64
	WeightKg           float64
	ActivityLevel      string
	Goal               string
	TargetWeightKg     float64
	Bmr                float64
	Tdee               float64
	DailyCalorieTarget int
	WaterTargetGlasses int

	WaterReminderEnabled  bool
	WaterReminderInterval int
	CalendarPopupMinutes  int
	CalendarEmailMinutes  int

	CreatedAt time.Time
	UpdatedAt time.Time
}
