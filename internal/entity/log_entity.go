package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// FoodLog name, portion and notes are stored encrypted at rest; the entity
// always carries plaintext.
type FoodLog struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Name      string
	Portion   string
	MealType  string
	Notes     string
	Calories  float64
	Protein   float64
	Carbs     float64
	Fat       float64
	LoggedAt  time.Time
	CreatedAt time.Time
}

type ExerciseLog struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	Name            string
	Notes           string
	DurationMinutes int
	CaloriesBurned  float64
	LoggedAt        time.Time
	CreatedAt       time.Time
}

type WaterLog struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Glasses   int
	LoggedAt  time.Time
	CreatedAt time.Time
}
