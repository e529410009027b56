package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Name, Portion and Notes hold ciphertext envelopes; decryption happens
// above the repository layer.
type FoodLog struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:text;not null"`
	Portion   string    `gorm:"type:text"`
	MealType  string    `gorm:"type:varchar(20);not null;default:snack"`
	Notes     string    `gorm:"type:text"`
	Calories  float64   `gorm:"not null"`
	Protein   float64   `gorm:"default:0"`
	Carbs     float64   `gorm:"default:0"`
	Fat       float64   `gorm:"default:0"`
	LoggedAt  time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (FoodLog) TableName() string {
	return "food_logs"
}

func (f *FoodLog) BeforeCreate(tx *gorm.DB) error {
	if f.Id == uuid.Nil {
		f.Id = uuid.New()
	}
	return nil
}

type ExerciseLog struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId          uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:text;not null"`
	Notes           string    `gorm:"type:text"`
	DurationMinutes int       `gorm:"not null"`
	CaloriesBurned  float64   `gorm:"not null"`
	LoggedAt        time.Time `gorm:"not null;index"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (ExerciseLog) TableName() string {
	return "exercise_logs"
}

func (e *ExerciseLog) BeforeCreate(tx *gorm.DB) error {
	if e.Id == uuid.Nil {
		e.Id = uuid.New()
	}
	return nil
}

type WaterLog struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Glasses   int       `gorm:"not null"`
	LoggedAt  time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (WaterLog) TableName() string {
	return "water_logs"
}

func (w *WaterLog) BeforeCreate(tx *gorm.DB) error {
	if w.Id == uuid.Nil {
		w.Id = uuid.New()
	}
	return nil
}
