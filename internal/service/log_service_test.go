package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diet-coach-be/internal/dto"
	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/repository/specification"
)

func TestFoodLogRoundTrip(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	recorder := &xpRecorder{}
	svc := NewLogService(factory, newTestCodec(t), recorder)

	created, err := svc.CreateFoodLog(ctx, user.Id, &dto.CreateFoodLogRequest{
		Name:     "Nasi goreng",
		Portion:  "1 plate",
		Calories: 650,
		Protein:  20,
		Carbs:    80,
		Fat:      25,
	})
	require.NoError(t, err)
	assert.Equal(t, "Nasi goreng", created.Name, "response carries plaintext")
	assert.Equal(t, "1 plate", created.Portion)

	logs, err := svc.ListFoodLogs(ctx, user.Id, time.Now())
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Nasi goreng", logs[0].Name)

	require.Len(t, recorder.awards, 1)
	assert.Equal(t, 10, recorder.awards[0].amount)
	assert.Equal(t, "food_logged", recorder.awards[0].reason)
}

func TestFoodLogMealTypeDefaultsToSnack(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	svc := NewLogService(factory, newTestCodec(t), &xpRecorder{})

	created, err := svc.CreateFoodLog(ctx, user.Id, &dto.CreateFoodLogRequest{Name: "Apel", Calories: 95})
	require.NoError(t, err)
	assert.Equal(t, entity.MealSnack, created.MealType)

	breakfast, err := svc.CreateFoodLog(ctx, user.Id, &dto.CreateFoodLogRequest{
		Name: "Bubur ayam", Calories: 400, MealType: entity.MealBreakfast,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MealBreakfast, breakfast.MealType)

	lunch := entity.MealLunch
	updated, err := svc.UpdateFoodLog(ctx, user.Id, created.Id, &dto.UpdateFoodLogRequest{MealType: &lunch})
	require.NoError(t, err)
	assert.Equal(t, entity.MealLunch, updated.MealType)
}

func TestLogNotesEncryptedAtRest(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	svc := NewLogService(factory, newTestCodec(t), &xpRecorder{})

	food, err := svc.CreateFoodLog(ctx, user.Id, &dto.CreateFoodLogRequest{
		Name: "Gado gado", Calories: 500, Notes: "extra peanut sauce",
	})
	require.NoError(t, err)
	assert.Equal(t, "extra peanut sauce", food.Notes)

	burn := 180.0
	exercise, err := svc.CreateExerciseLog(ctx, user.Id, &dto.CreateExerciseLogRequest{
		Name: "Cycling", DurationMinutes: 30, CaloriesBurned: &burn, Notes: "knee felt sore",
	})
	require.NoError(t, err)
	assert.Equal(t, "knee felt sore", exercise.Notes)

	uow := factory.NewUnitOfWork(ctx)
	rawFood, err := uow.FoodLogRepository().FindOne(ctx, specification.ByID{ID: food.Id})
	require.NoError(t, err)
	assert.NotEqual(t, "extra peanut sauce", rawFood.Notes)
	assert.Equal(t, 2, strings.Count(rawFood.Notes, ":"))

	rawExercise, err := uow.ExerciseLogRepository().FindOne(ctx, specification.ByID{ID: exercise.Id})
	require.NoError(t, err)
	assert.NotEqual(t, "knee felt sore", rawExercise.Notes)
	assert.Equal(t, 2, strings.Count(rawExercise.Notes, ":"))
}

func TestFoodLogUpdateOwnershipEnforced(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	owner := seedUser(t, factory)
	intruder := seedUser(t, factory)
	svc := NewLogService(factory, newTestCodec(t), &xpRecorder{})

	created, err := svc.CreateFoodLog(ctx, owner.Id, &dto.CreateFoodLogRequest{Name: "Salad", Calories: 200})
	require.NoError(t, err)

	newName := "Stolen salad"
	_, err = svc.UpdateFoodLog(ctx, intruder.Id, created.Id, &dto.UpdateFoodLogRequest{Name: &newName})
	require.True(t, errors.Is(err, ErrNotFound))

	require.True(t, errors.Is(svc.DeleteFoodLog(ctx, intruder.Id, created.Id), ErrNotFound))
	require.NoError(t, svc.DeleteFoodLog(ctx, owner.Id, created.Id))
}

func TestExerciseLogEstimatesBurn(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	recorder := &xpRecorder{}
	svc := NewLogService(factory, newTestCodec(t), recorder)

	created, err := svc.CreateExerciseLog(ctx, user.Id, &dto.CreateExerciseLogRequest{
		Name:     "Morning run",
		Duration: "45 minutes",
	})
	require.NoError(t, err)
	assert.Equal(t, 45, created.DurationMinutes)
	assert.Equal(t, 450.0, created.CaloriesBurned, "run burns 10 kcal/min")

	require.Len(t, recorder.awards, 1)
	assert.Equal(t, 15, recorder.awards[0].amount)
}

func TestExerciseLogExplicitDurationOverridesText(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	svc := NewLogService(factory, newTestCodec(t), &xpRecorder{})

	created, err := svc.CreateExerciseLog(ctx, user.Id, &dto.CreateExerciseLogRequest{
		Name:            "run",
		DurationMinutes: 20,
		Duration:        "45 minutes",
	})
	require.NoError(t, err)
	assert.Equal(t, 20, created.DurationMinutes)
	assert.Equal(t, 200.0, created.CaloriesBurned, "estimate scales with the explicit duration")
}

func TestExerciseLogZeroMinuteText(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	svc := NewLogService(factory, newTestCodec(t), &xpRecorder{})

	created, err := svc.CreateExerciseLog(ctx, user.Id, &dto.CreateExerciseLogRequest{
		Name:     "plank",
		Duration: "0 minutes",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, created.DurationMinutes)
	assert.Equal(t, 0.0, created.CaloriesBurned)
}

func TestExerciseLogHonorsExplicitCalories(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	svc := NewLogService(factory, newTestCodec(t), &xpRecorder{})

	burned := 321.0
	created, err := svc.CreateExerciseLog(ctx, user.Id, &dto.CreateExerciseLogRequest{
		Name:            "Padel",
		DurationMinutes: 60,
		CaloriesBurned:  &burned,
	})
	require.NoError(t, err)
	assert.Equal(t, 321.0, created.CaloriesBurned)
	assert.Equal(t, 60, created.DurationMinutes)
}

func TestLogWaterSignedDelta(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	svc := NewLogService(factory, newTestCodec(t), &xpRecorder{})

	stats, err := svc.LogWater(ctx, user.Id, &dto.LogWaterRequest{Glasses: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Glasses)

	stats, err = svc.LogWater(ctx, user.Id, &dto.LogWaterRequest{Glasses: 3})
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Glasses)

	// A negative delta removes the most recent log regardless of magnitude.
	stats, err = svc.LogWater(ctx, user.Id, &dto.LogWaterRequest{Glasses: -1})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Glasses)

	stats, err = svc.LogWater(ctx, user.Id, &dto.LogWaterRequest{Glasses: -5})
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Glasses)

	_, err = svc.LogWater(ctx, user.Id, &dto.LogWaterRequest{Glasses: -1})
	require.True(t, errors.Is(err, ErrNoWaterLogs))
}

func TestLogWaterAwardsXpOnTargetCrossing(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	recorder := &xpRecorder{}
	svc := NewLogService(factory, newTestCodec(t), recorder)

	// Default target is 8 glasses. 7 then +2 crosses it once.
	_, err := svc.LogWater(ctx, user.Id, &dto.LogWaterRequest{Glasses: 7})
	require.NoError(t, err)
	assert.Empty(t, recorder.awards)

	stats, err := svc.LogWater(ctx, user.Id, &dto.LogWaterRequest{Glasses: 2})
	require.NoError(t, err)
	assert.True(t, stats.Achieved)
	require.Len(t, recorder.awards, 1)
	assert.Equal(t, 20, recorder.awards[0].amount)
	assert.Equal(t, "water_target_hit", recorder.awards[0].reason)

	// Already past the target: no second award.
	_, err = svc.LogWater(ctx, user.Id, &dto.LogWaterRequest{Glasses: 1})
	require.NoError(t, err)
	assert.Len(t, recorder.awards, 1)
}

func TestDailySummaryAggregates(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	svc := NewLogService(factory, newTestCodec(t), &xpRecorder{})

	_, err := svc.CreateFoodLog(ctx, user.Id, &dto.CreateFoodLogRequest{Name: "Breakfast", Calories: 400, Protein: 15})
	require.NoError(t, err)
	_, err = svc.CreateFoodLog(ctx, user.Id, &dto.CreateFoodLogRequest{Name: "Lunch", Calories: 700, Protein: 30})
	require.NoError(t, err)
	burned := 300.0
	_, err = svc.CreateExerciseLog(ctx, user.Id, &dto.CreateExerciseLogRequest{Name: "Run", DurationMinutes: 30, CaloriesBurned: &burned})
	require.NoError(t, err)
	_, err = svc.LogWater(ctx, user.Id, &dto.LogWaterRequest{Glasses: 4})
	require.NoError(t, err)

	summary, err := svc.DailySummary(ctx, user.Id, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1100.0, summary.CaloriesConsumed)
	assert.Equal(t, 45.0, summary.Protein)
	assert.Equal(t, 300.0, summary.CaloriesBurned)
	assert.Equal(t, 4, summary.WaterGlasses)
	assert.Equal(t, 2000, summary.TargetCalories, "pre-onboarding fallback target")
	assert.Equal(t, 2000.0-1100+300, summary.RemainingCalories)
}

func TestWaterHistoryZeroFillsTrailingDays(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	svc := NewLogService(factory, newTestCodec(t), &xpRecorder{})

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.WaterLogRepository().Create(ctx, &entity.WaterLog{
		Id: uuid.New(), UserId: user.Id, Glasses: 4, LoggedAt: time.Now().AddDate(0, 0, -2),
	}))
	_, err := svc.LogWater(ctx, user.Id, &dto.LogWaterRequest{Glasses: 3})
	require.NoError(t, err)

	history, err := svc.WaterHistory(ctx, user.Id, 7)
	require.NoError(t, err)
	require.Len(t, history.Days, 7)
	assert.Equal(t, history.From, history.Days[0].Date)
	assert.Equal(t, history.To, history.Days[6].Date)

	assert.Equal(t, 4, history.Days[4].TotalGlasses)
	assert.Equal(t, 3, history.Days[6].TotalGlasses)
	for i, day := range history.Days {
		if i == 4 || i == 6 {
			continue
		}
		assert.Zerof(t, day.TotalGlasses, "day %d should be a zero row", i)
	}
}

func TestWaterHistoryDefaultsToSevenDays(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	svc := NewLogService(factory, newTestCodec(t), &xpRecorder{})

	history, err := svc.WaterHistory(ctx, user.Id, 0)
	require.NoError(t, err)
	assert.Len(t, history.Days, 7)
}

func TestWeeklySummaryZeroFillsEmptyDays(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	svc := NewLogService(factory, newTestCodec(t), &xpRecorder{})

	twoDaysAgo := time.Now().AddDate(0, 0, -2)
	_, err := svc.CreateFoodLog(ctx, user.Id, &dto.CreateFoodLogRequest{Name: "Old meal", Calories: 500, LoggedAt: &twoDaysAgo})
	require.NoError(t, err)

	weekly, err := svc.WeeklySummary(ctx, user.Id, time.Now())
	require.NoError(t, err)
	require.Len(t, weekly.Days, 7)
	assert.Equal(t, weekly.From, weekly.Days[0].Date)
	assert.Equal(t, weekly.To, weekly.Days[6].Date)

	assert.Equal(t, 500.0, weekly.Days[4].CaloriesConsumed)
	for i, day := range weekly.Days {
		if i == 4 {
			continue
		}
		assert.Zerof(t, day.CaloriesConsumed, "day %d should be a zero row", i)
	}
}
