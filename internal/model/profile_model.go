package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DietProfile struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId             uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Gender             string    `gorm:"type:varchar(10);not null"`
	Age                int       `gorm:"not null"`
	HeightCm           float64   `gorm:"not null"`
	WeightKg           float64   `gorm:"not null"`
	ActivityLevel      string    `gorm:"type:varchar(20);not null"`
	Goal               string  `gorm:"type:varchar(30);not null"`
	TargetWeightKg     float64 `gorm:"not null"`
	Bmr                float64
	Tdee               float64
	DailyCalorieTarget int
	WaterTargetGlasses int `gorm:"default:8"`

	WaterReminderEnabled  bool `gorm:"default:false"`
	WaterReminderInterval int  `gorm:"default:60"`
	CalendarPopupMinutes  int  `gorm:"default:10"`
	CalendarEmailMinutes  int  `gorm:"default:30"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (DietProfile) TableName() string {
	return "diet_profiles"
}

func (p *DietProfile) BeforeCreate(tx *gorm.DB) error {
	if p.Id == uuid.Nil {
		p.Id = uuid.New()
	}
	return nil
}
