package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFoodLogRequest struct {
	Name     string  `json:"name" validate:"required"`
	Portion  string  `json:"portion,omitempty"`
	MealType string  `json:"meal_type,omitempty" validate:"omitempty,oneof=breakfast lunch dinner snack"`
	Notes    string  `json:"notes,omitempty"`
	Calories float64 `json:"calories" validate:"required,gte=0"`
	Protein  float64 `json:"protein" validate:"gte=0"`
	Carbs    float64 `json:"carbs" validate:"gte=0"`
	Fat      float64 `json:"fat" validate:"gte=0"`
	LoggedAt *time.Time `json:"logged_at,omitempty"`
}

type UpdateFoodLogRequest struct {
	Name     *string  `json:"name,omitempty"`
	Portion  *string  `json:"portion,omitempty"`
	MealType *string  `json:"meal_type,omitempty" validate:"omitempty,oneof=breakfast lunch dinner snack"`
	Notes    *string  `json:"notes,omitempty"`
	Calories *float64 `json:"calories,omitempty" validate:"omitempty,gte=0"`
	Protein  *float64 `json:"protein,omitempty" validate:"omitempty,gte=0"`
	Carbs    *float64 `json:"carbs,omitempty" validate:"omitempty,gte=0"`
	Fat      *float64 `json:"fat,omitempty" validate:"omitempty,gte=0"`
}

type FoodLogResponse struct {
	Id       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Portion  string    `json:"portion,omitempty"`
	MealType string    `json:"meal_type"`
	Notes    string    `json:"notes,omitempty"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	LoggedAt time.Time `json:"logged_at"`
}

type CreateExerciseLogRequest struct {
	Name            string   `json:"name" validate:"required"`
	Notes           string   `json:"notes,omitempty"`
	DurationMinutes int      `json:"duration_minutes" validate:"omitempty,gt=0"`
	Duration        string   `json:"duration,omitempty"`
	CaloriesBurned  *float64 `json:"calories_burned,omitempty" validate:"omitempty,gte=0"`
	LoggedAt        *time.Time `json:"logged_at,omitempty"`
}

type ExerciseLogResponse struct {
	Id              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Notes           string    `json:"notes,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	CaloriesBurned  float64   `json:"calories_burned"`
	LoggedAt        time.Time `json:"logged_at"`
}

// LogWaterRequest carries a signed glass delta. A negative delta removes the
// most recent log of the day.
type LogWaterRequest struct {
	Glasses int `json:"glasses" validate:"required,ne=0"`
}

type WaterStatsResponse struct {
	Date          string `json:"date"`
	Glasses       int    `json:"glasses"`
	TargetGlasses int    `json:"target_glasses"`
	Achieved      bool   `json:"achieved"`
}

type WaterDayStat struct {
	Date         string `json:"date"`
	TotalGlasses int    `json:"total_glasses"`
}

type WaterHistoryResponse struct {
	From string         `json:"from"`
	To   string         `json:"to"`
	Days []WaterDayStat `json:"days"`
}

type DailySummaryResponse struct {
	Date              string  `json:"date"`
	CaloriesConsumed  float64 `json:"calories_consumed"`
	CaloriesBurned    float64 `json:"calories_burned"`
	TargetCalories    int     `json:"target_calories"`
	RemainingCalories float64 `json:"remaining_calories"`
	Protein           float64 `json:"protein"`
	Carbs             float64 `json:"carbs"`
	Fat               float64 `json:"fat"`
	WaterGlasses      int     `json:"water_glasses"`
}

type WeeklySummaryResponse struct {
	From string                 `json:"from"`
	To   string                 `json:"to"`
	Days []DailySummaryResponse `json:"days"`
}
