package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"diet-coach-be/internal/dto"
	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/pkg/crypto"
	"diet-coach-be/internal/pkg/timeutil"
	"diet-coach-be/internal/repository/specification"
	"diet-coach-be/internal/repository/unitofwork"
	"diet-coach-be/pkg/nutrition"
)

// XP awards per logged action.
const (
	xpFoodLogged     = 10
	xpExerciseLogged = 15
	xpWaterTargetHit = 20
)

type ILogService interface {
	CreateFoodLog(ctx context.Context, userId uuid.UUID, req *dto.CreateFoodLogRequest) (*dto.FoodLogResponse, error)
	UpdateFoodLog(ctx context.Context, userId, id uuid.UUID, req *dto.UpdateFoodLogRequest) (*dto.FoodLogResponse, error)
	DeleteFoodLog(ctx context.Context, userId, id uuid.UUID) error
	ListFoodLogs(ctx context.Context, userId uuid.UUID, day time.Time) ([]*dto.FoodLogResponse, error)

	CreateExerciseLog(ctx context.Context, userId uuid.UUID, req *dto.CreateExerciseLogRequest) (*dto.ExerciseLogResponse, error)
	DeleteExerciseLog(ctx context.Context, userId, id uuid.UUID) error
	ListExerciseLogs(ctx context.Context, userId uuid.UUID, day time.Time) ([]*dto.ExerciseLogResponse, error)

	LogWater(ctx context.Context, userId uuid.UUID, req *dto.LogWaterRequest) (*dto.WaterStatsResponse, error)
	WaterStats(ctx context.Context, userId uuid.UUID, day time.Time) (*dto.WaterStatsResponse, error)
	WaterHistory(ctx context.Context, userId uuid.UUID, days int) (*dto.WaterHistoryResponse, error)

	DailySummary(ctx context.Context, userId uuid.UUID, day time.Time) (*dto.DailySummaryResponse, error)
	WeeklySummary(ctx context.Context, userId uuid.UUID, weekEnd time.Time) (*dto.WeeklySummaryResponse, error)
}

type logService struct {
	uowFactory unitofwork.RepositoryFactory
	codec      *crypto.FieldCodec
	publisher  IPublisherService
}

func NewLogService(uowFactory unitofwork.RepositoryFactory, codec *crypto.FieldCodec, publisher IPublisherService) ILogService {
	return &logService{
		uowFactory: uowFactory,
		codec:      codec,
		publisher:  publisher,
	}
}

func (s *logService) foodResponse(f *entity.FoodLog) *dto.FoodLogResponse {
	return &dto.FoodLogResponse{
		Id:       f.Id,
		Name:     s.codec.Decrypt(f.Name),
		Portion:  s.codec.Decrypt(f.Portion),
		MealType: f.MealType,
		Notes:    s.codec.Decrypt(f.Notes),
		Calories: f.Calories,
		Protein:  f.Protein,
		Carbs:    f.Carbs,
		Fat:      f.Fat,
		LoggedAt: f.LoggedAt,
	}
}

func (s *logService) CreateFoodLog(ctx context.Context, userId uuid.UUID, req *dto.CreateFoodLogRequest) (*dto.FoodLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	loggedAt := time.Now()
	if req.LoggedAt != nil {
		loggedAt = *req.LoggedAt
	}

	mealType := req.MealType
	if mealType == "" {
		mealType = entity.MealSnack
	}

	log := &entity.FoodLog{
		Id:       uuid.New(),
		UserId:   userId,
		Name:     s.codec.Encrypt(req.Name),
		Portion:  s.codec.Encrypt(req.Portion),
		MealType: mealType,
		Notes:    s.codec.Encrypt(req.Notes),
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		LoggedAt: loggedAt,
	}
	if err := uow.FoodLogRepository().Create(ctx, log); err != nil {
		return nil, err
	}

	s.publisher.PublishXpAwarded(ctx, userId, xpFoodLogged, "food_logged")

	return s.foodResponse(log), nil
}

func (s *logService) UpdateFoodLog(ctx context.Context, userId, id uuid.UUID, req *dto.UpdateFoodLogRequest) (*dto.FoodLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	log, err := uow.FoodLogRepository().FindOne(ctx, specification.ByID{ID: id}, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		log.Name = s.codec.Encrypt(*req.Name)
	}
	if req.Portion != nil {
		log.Portion = s.codec.Encrypt(*req.Portion)
	}
	if req.MealType != nil {
		log.MealType = *req.MealType
	}
	if req.Notes != nil {
		log.Notes = s.codec.Encrypt(*req.Notes)
	}
	if req.Calories != nil {
		log.Calories = *req.Calories
	}
	if req.Protein != nil {
		log.Protein = *req.Protein
	}
	if req.Carbs != nil {
		log.Carbs = *req.Carbs
	}
	if req.Fat != nil {
		log.Fat = *req.Fat
	}

	if err := uow.FoodLogRepository().Update(ctx, log); err != nil {
		return nil, err
	}
	return s.foodResponse(log), nil
}

func (s *logService) DeleteFoodLog(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	log, err := uow.FoodLogRepository().FindOne(ctx, specification.ByID{ID: id}, specification.OwnedBy{UserID: userId})
	if err != nil {
		return err
	}
	if log == nil {
		return ErrNotFound
	}
	return uow.FoodLogRepository().Delete(ctx, id)
}

func (s *logService) ListFoodLogs(ctx context.Context, userId uuid.UUID, day time.Time) ([]*dto.FoodLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	logs, err := uow.FoodLogRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.LoggedBetween{From: timeutil.StartOfDay(day), To: timeutil.StartOfDay(day).AddDate(0, 0, 1)},
		specification.OrderBy{Field: "logged_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.FoodLogResponse, len(logs))
	for i, f := range logs {
		result[i] = s.foodResponse(f)
	}
	return result, nil
}

func (s *logService) CreateExerciseLog(ctx context.Context, userId uuid.UUID, req *dto.CreateExerciseLogRequest) (*dto.ExerciseLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	loggedAt := time.Now()
	if req.LoggedAt != nil {
		loggedAt = *req.LoggedAt
	}

	duration := req.DurationMinutes
	var burned float64

	if req.CaloriesBurned != nil {
		burned = *req.CaloriesBurned
		if duration == 0 {
			duration = nutrition.ParseDuration(req.Duration)
		}
	} else {
		// Estimate from the activity description. An explicit duration
		// overrides whatever the free text says.
		text := req.Name
		if duration > 0 {
			text = fmt.Sprintf("%s %d minutes", req.Name, duration)
		} else if req.Duration != "" {
			text = req.Name + " " + req.Duration
		}
		cal, dur := nutrition.EstimateBurn(text)
		if duration == 0 {
			duration = dur
		}
		burned = float64(cal)
	}

	log := &entity.ExerciseLog{
		Id:              uuid.New(),
		UserId:          userId,
		Name:            req.Name,
		Notes:           s.codec.Encrypt(req.Notes),
		DurationMinutes: duration,
		CaloriesBurned:  burned,
		LoggedAt:        loggedAt,
	}
	if err := uow.ExerciseLogRepository().Create(ctx, log); err != nil {
		return nil, err
	}

	s.publisher.PublishXpAwarded(ctx, userId, xpExerciseLogged, "exercise_logged")

	return s.exerciseResponse(log), nil
}

func (s *logService) exerciseResponse(e *entity.ExerciseLog) *dto.ExerciseLogResponse {
	return &dto.ExerciseLogResponse{
		Id:              e.Id,
		Name:            e.Name,
		Notes:           s.codec.Decrypt(e.Notes),
		DurationMinutes: e.DurationMinutes,
		CaloriesBurned:  e.CaloriesBurned,
		LoggedAt:        e.LoggedAt,
	}
}

func (s *logService) DeleteExerciseLog(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	log, err := uow.ExerciseLogRepository().FindOne(ctx, specification.ByID{ID: id}, specification.OwnedBy{UserID: userId})
	if err != nil {
		return err
	}
	if log == nil {
		return ErrNotFound
	}
	return uow.ExerciseLogRepository().Delete(ctx, id)
}

func (s *logService) ListExerciseLogs(ctx context.Context, userId uuid.UUID, day time.Time) ([]*dto.ExerciseLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	logs, err := uow.ExerciseLogRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.LoggedBetween{From: timeutil.StartOfDay(day), To: timeutil.StartOfDay(day).AddDate(0, 0, 1)},
		specification.OrderBy{Field: "logged_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ExerciseLogResponse, len(logs))
	for i, e := range logs {
		result[i] = s.exerciseResponse(e)
	}
	return result, nil
}

// LogWater applies a signed glass delta. Positive appends a log; negative
// removes the most recent log of the current day, one at a time regardless of
// magnitude.
func (s *logService) LogWater(ctx context.Context, userId uuid.UUID, req *dto.LogWaterRequest) (*dto.WaterStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	if req.Glasses > 0 {
		log := &entity.WaterLog{
			Id:       uuid.New(),
			UserId:   userId,
			Glasses:  req.Glasses,
			LoggedAt: now,
		}
		if err := uow.WaterLogRepository().Create(ctx, log); err != nil {
			return nil, err
		}
	} else {
		latest, err := uow.WaterLogRepository().FindOne(ctx,
			specification.OwnedBy{UserID: userId},
			specification.LoggedBetween{From: timeutil.StartOfDay(now), To: timeutil.StartOfDay(now).AddDate(0, 0, 1)},
			specification.OrderBy{Field: "logged_at", Desc: true},
		)
		if err != nil {
			return nil, err
		}
		if latest == nil {
			return nil, ErrNoWaterLogs
		}
		if err := uow.WaterLogRepository().Delete(ctx, latest.Id); err != nil {
			return nil, err
		}
	}

	stats, err := s.WaterStats(ctx, userId, now)
	if err != nil {
		return nil, err
	}

	if req.Glasses > 0 && stats.Achieved && stats.Glasses-req.Glasses < stats.TargetGlasses {
		// Crossing the target awards XP once per crossing.
		s.publisher.PublishXpAwarded(ctx, userId, xpWaterTargetHit, "water_target_hit")
	}

	return stats, nil
}

func (s *logService) WaterStats(ctx context.Context, userId uuid.UUID, day time.Time) (*dto.WaterStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	logs, err := uow.WaterLogRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.LoggedBetween{From: timeutil.StartOfDay(day), To: timeutil.StartOfDay(day).AddDate(0, 0, 1)},
	)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, l := range logs {
		total += l.Glasses
	}

	target := 8
	profile, err := uow.ProfileRepository().FindOne(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if profile != nil && profile.WaterTargetGlasses > 0 {
		target = profile.WaterTargetGlasses
	}

	return &dto.WaterStatsResponse{
		Date:          timeutil.DayKey(day),
		Glasses:       total,
		TargetGlasses: target,
		Achieved:      total >= target,
	}, nil
}

// WaterHistory returns one bucket per day for the trailing window ending
// today, oldest first. Days without logs appear as zero rows.
func (s *logService) WaterHistory(ctx context.Context, userId uuid.UUID, days int) (*dto.WaterHistoryResponse, error) {
	if days <= 0 {
		days = 7
	}
	if days > 90 {
		days = 90
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	today := timeutil.StartOfDay(time.Now())
	from := today.AddDate(0, 0, -(days - 1))

	logs, err := uow.WaterLogRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.LoggedBetween{From: from, To: today.AddDate(0, 0, 1)},
	)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int, days)
	for _, l := range logs {
		totals[timeutil.DayKey(l.LoggedAt)] += l.Glasses
	}

	rows := make([]dto.WaterDayStat, 0, days)
	for i := 0; i < days; i++ {
		key := timeutil.DayKey(from.AddDate(0, 0, i))
		rows = append(rows, dto.WaterDayStat{Date: key, TotalGlasses: totals[key]})
	}

	return &dto.WaterHistoryResponse{
		From: rows[0].Date,
		To:   rows[len(rows)-1].Date,
		Days: rows,
	}, nil
}

func (s *logService) summarizeDay(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, day time.Time, target int) (*dto.DailySummaryResponse, error) {
	from := timeutil.StartOfDay(day)
	to := from.AddDate(0, 0, 1)

	foods, err := uow.FoodLogRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.LoggedBetween{From: from, To: to},
	)
	if err != nil {
		return nil, err
	}

	exercises, err := uow.ExerciseLogRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.LoggedBetween{From: from, To: to},
	)
	if err != nil {
		return nil, err
	}

	waters, err := uow.WaterLogRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.LoggedBetween{From: from, To: to},
	)
	if err != nil {
		return nil, err
	}

	summary := &dto.DailySummaryResponse{
		Date:           timeutil.DayKey(day),
		TargetCalories: target,
	}
	for _, f := range foods {
		summary.CaloriesConsumed += f.Calories
		summary.Protein += f.Protein
		summary.Carbs += f.Carbs
		summary.Fat += f.Fat
	}
	for _, e := range exercises {
		summary.CaloriesBurned += e.CaloriesBurned
	}
	for _, w := range waters {
		summary.WaterGlasses += w.Glasses
	}
	summary.RemainingCalories = float64(target) - summary.CaloriesConsumed + summary.CaloriesBurned

	return summary, nil
}

func (s *logService) targetFor(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (int, error) {
	profile, err := uow.ProfileRepository().FindOne(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return 0, err
	}
	if profile == nil {
		return 2000, nil // fallback target pre-onboarding
	}
	return profile.DailyCalorieTarget, nil
}

func (s *logService) DailySummary(ctx context.Context, userId uuid.UUID, day time.Time) (*dto.DailySummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	target, err := s.targetFor(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	return s.summarizeDay(ctx, uow, userId, day, target)
}

// WeeklySummary returns seven day buckets ending at weekEnd, oldest first.
// Days without logs appear as zero rows rather than being skipped.
func (s *logService) WeeklySummary(ctx context.Context, userId uuid.UUID, weekEnd time.Time) (*dto.WeeklySummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	target, err := s.targetFor(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	days := make([]dto.DailySummaryResponse, 0, 7)
	for i := 6; i >= 0; i-- {
		day := timeutil.StartOfDay(weekEnd).AddDate(0, 0, -i)
		summary, err := s.summarizeDay(ctx, uow, userId, day, target)
		if err != nil {
			return nil, err
		}
		days = append(days, *summary)
	}

	return &dto.WeeklySummaryResponse{
		From: days[0].Date,
		To:   days[len(days)-1].Date,
		Days: days,
	}, nil
}
