// Package nutrition holds the pure energy-accounting formulas: BMR, TDEE,
// goal-adjusted daily targets and remaining-budget arithmetic. Everything
// here is deterministic and store-free.
package nutrition

import "math"

// activityMultipliers maps activity level strings to their TDEE multiplier.
// This is the single source of truth for valid activity levels.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
	"extra":       1.9, // legacy alias
}

const defaultMultiplier = 1.2

// Goal values accepted by DailyCalorieTarget.
const (
	GoalLoseWeight = "lose_weight"
	GoalGainMuscle = "gain_muscle"
	GoalMaintain   = "maintain"
)

// BMR computes basal metabolic rate via Mifflin-St Jeor. Gender is a closed
// two-valued input: anything other than "male" takes the female branch.
func BMR(gender string, weightKg, heightCm float64, age int) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		return bmr + 5
	}
	return bmr - 161
}

// TDEE scales BMR by the activity multiplier. Unknown levels fall back to
// sedentary rather than erroring; profile input is validated upstream.
func TDEE(bmr float64, activityLevel string) float64 {
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = defaultMultiplier
	}
	return bmr * mult
}

// ValidActivityLevel reports whether level has a defined multiplier.
func ValidActivityLevel(level string) bool {
	_, ok := activityMultipliers[level]
	return ok
}

// DailyCalorieTarget derives the daily calorie budget from TDEE and goal.
// Weight loss is the default policy for unknown goals.
func DailyCalorieTarget(tdee float64, goal string) int {
	rounded := int(math.Round(tdee))
	switch goal {
	case GoalLoseWeight:
		return rounded - 500
	case GoalGainMuscle:
		return rounded + 300
	case GoalMaintain:
		return rounded
	default:
		return rounded - 500
	}
}

// RemainingBudget is target - consumed + burned. Negative is a meaningful
// "over budget" state, never clamped.
func RemainingBudget(targetCalories, caloriesConsumed, caloriesBurned int) int {
	return targetCalories - caloriesConsumed + caloriesBurned
}
