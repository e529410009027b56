package nutrition

import (
	"math"
	"testing"
)

func TestBMR(t *testing.T) {
	tests := []struct {
		name     string
		gender   string
		weight   float64
		height   float64
		age      int
		expected float64
	}{
		{"male reference profile", "male", 70, 175, 30, 1648.75},
		{"female reference profile", "female", 60, 165, 25, 1345.25},
		{"unknown gender takes female branch", "other", 60, 165, 25, 1345.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BMR(tt.gender, tt.weight, tt.height, tt.age)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("BMR = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTDEE(t *testing.T) {
	tests := []struct {
		level    string
		expected float64
	}{
		{"sedentary", 1200},
		{"light", 1375},
		{"moderate", 1550},
		{"active", 1725},
		{"very_active", 1900},
		{"extra", 1900},
		{"nonsense", 1200}, // unknown defaults to sedentary
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := TDEE(1000, tt.level); got != tt.expected {
				t.Errorf("TDEE(1000, %q) = %v, want %v", tt.level, got, tt.expected)
			}
		})
	}
}

func TestDailyCalorieTarget(t *testing.T) {
	tests := []struct {
		goal     string
		tdee     float64
		expected int
	}{
		{GoalLoseWeight, 2000, 1500},
		{GoalMaintain, 2000, 2000},
		{GoalGainMuscle, 2000, 2300},
		{"", 2000, 1500},        // unspecified defaults to weight loss
		{"get_fit", 2000, 1500}, // unknown defaults to weight loss
		{GoalMaintain, 2595.8625, 2596},
	}

	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			if got := DailyCalorieTarget(tt.tdee, tt.goal); got != tt.expected {
				t.Errorf("DailyCalorieTarget(%v, %q) = %d, want %d", tt.tdee, tt.goal, got, tt.expected)
			}
		})
	}
}

func TestRemainingBudgetCanGoNegative(t *testing.T) {
	if got := RemainingBudget(2000, 2500, 0); got != -500 {
		t.Errorf("RemainingBudget = %d, want -500", got)
	}
	if got := RemainingBudget(2000, 1800, 300); got != 500 {
		t.Errorf("RemainingBudget = %d, want 500", got)
	}
}

// End-to-end profile derivation: male, 30y, 175cm, 70kg, moderate, lose_weight.
func TestProfileDerivationEndToEnd(t *testing.T) {
	bmr := BMR("male", 70, 175, 30)
	if bmr != 1648.75 {
		t.Fatalf("BMR = %v, want 1648.75", bmr)
	}
	tdee := TDEE(bmr, "moderate")
	if math.Abs(tdee-2555.5625) > 1e-9 {
		t.Fatalf("TDEE = %v, want 2555.5625", tdee)
	}
	if got := DailyCalorieTarget(tdee, GoalLoseWeight); got != 2056 {
		t.Fatalf("DailyCalorieTarget = %d, want 2056", got)
	}
	if got := DailyCalorieTarget(tdee, GoalGainMuscle); got != 2856 {
		t.Fatalf("DailyCalorieTarget = %d, want 2856", got)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{"I ran for 45 minutes", 45},
		{"45 mins of jogging", 45},
		{"2 hours at the gym", 120},
		{"1 hr swim", 60},
		{"went for a walk", 30}, // default
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := ParseDuration(tt.text); got != tt.expected {
				t.Errorf("ParseDuration(%q) = %d, want %d", tt.text, got, tt.expected)
			}
		})
	}
}

func TestEstimateBurn(t *testing.T) {
	tests := []struct {
		text         string
		wantCalories int
		wantDuration int
	}{
		{"I went for a run for 30 minutes", 300, 30},
		{"walked 60 minutes", 240, 60},
		{"cycling for 20 minutes", 120, 20},
		{"gym session 1 hour", 300, 60},
		{"swim 15 minutes", 120, 15},
		{"did some yoga", 150, 30}, // default rate, default duration
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			calories, duration := EstimateBurn(tt.text)
			if calories != tt.wantCalories || duration != tt.wantDuration {
				t.Errorf("EstimateBurn(%q) = (%d, %d), want (%d, %d)",
					tt.text, calories, duration, tt.wantCalories, tt.wantDuration)
			}
		})
	}
}
