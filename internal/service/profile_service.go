package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"diet-coach-be/internal/dto"
	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/repository/specification"
	"diet-coach-be/internal/repository/unitofwork"
	"diet-coach-be/pkg/nutrition"
)

type IProfileService interface {
	Upsert(ctx context.Context, userId uuid.UUID, req *dto.UpsertProfileRequest) (*dto.ProfileResponse, error)
	Get(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
}

type profileService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory) IProfileService {
	return &profileService{
		uowFactory: uowFactory,
	}
}

func toProfileResponse(p *entity.DietProfile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		Id:                    p.Id,
		UserId:                p.UserId,
		Gender:                p.Gender,
		Age:                   p.Age,
		HeightCm:              p.HeightCm,
		WeightKg:              p.WeightKg,
		ActivityLevel:         p.ActivityLevel,
		Goal:                  p.Goal,
		TargetWeightKg:        p.TargetWeightKg,
		Bmr:                   p.Bmr,
		Tdee:                  p.Tdee,
		DailyCalorieTarget:    p.DailyCalorieTarget,
		WaterTargetGlasses:    p.WaterTargetGlasses,
		WaterReminderEnabled:  p.WaterReminderEnabled,
		WaterReminderInterval: p.WaterReminderInterval,
		CalendarPopupMinutes:  p.CalendarPopupMinutes,
		CalendarEmailMinutes:  p.CalendarEmailMinutes,
		UpdatedAt:             p.UpdatedAt,
	}
}

// Upsert saves the diet profile. Client-supplied BMR/TDEE/target values are
// trusted when present; only missing ones are derived from the biometrics.
func (s *profileService) Upsert(ctx context.Context, userId uuid.UUID, req *dto.UpsertProfileRequest) (*dto.ProfileResponse, error) {
	if !nutrition.ValidActivityLevel(req.ActivityLevel) {
		return nil, errors.New("invalid activity level")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	bmr := nutrition.BMR(req.Gender, req.WeightKg, req.HeightCm, req.Age)
	if req.Bmr != nil {
		bmr = *req.Bmr
	}
	tdee := nutrition.TDEE(bmr, req.ActivityLevel)
	if req.Tdee != nil {
		tdee = *req.Tdee
	}
	target := nutrition.DailyCalorieTarget(tdee, req.Goal)
	if req.DailyCalorieTarget != nil {
		target = *req.DailyCalorieTarget
	}

	waterTarget := req.WaterTargetGlasses
	if waterTarget <= 0 {
		waterTarget = 8
	}

	// Omitted target weight means the user is holding their current weight.
	targetWeight := req.TargetWeightKg
	if targetWeight <= 0 {
		targetWeight = req.WeightKg
	}

	reminderInterval := req.WaterReminderInterval
	if reminderInterval <= 0 {
		reminderInterval = 60
	}
	popupMinutes := req.CalendarPopupMinutes
	if popupMinutes <= 0 {
		popupMinutes = 10
	}
	emailMinutes := req.CalendarEmailMinutes
	if emailMinutes <= 0 {
		emailMinutes = 30
	}

	existing, err := uow.ProfileRepository().FindOne(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	if existing == nil {
		profile := &entity.DietProfile{
			Id:                    uuid.New(),
			UserId:                userId,
			Gender:                req.Gender,
			Age:                   req.Age,
			HeightCm:              req.HeightCm,
			WeightKg:              req.WeightKg,
			ActivityLevel:         req.ActivityLevel,
			Goal:                  req.Goal,
			TargetWeightKg:        targetWeight,
			Bmr:                   bmr,
			Tdee:                  tdee,
			DailyCalorieTarget:    target,
			WaterTargetGlasses:    waterTarget,
			WaterReminderEnabled:  req.WaterReminderEnabled,
			WaterReminderInterval: reminderInterval,
			CalendarPopupMinutes:  popupMinutes,
			CalendarEmailMinutes:  emailMinutes,
		}
		if err := uow.ProfileRepository().Create(ctx, profile); err != nil {
			return nil, err
		}
		return toProfileResponse(profile), nil
	}

	existing.Gender = req.Gender
	existing.Age = req.Age
	existing.HeightCm = req.HeightCm
	existing.WeightKg = req.WeightKg
	existing.ActivityLevel = req.ActivityLevel
	existing.Goal = req.Goal
	existing.TargetWeightKg = targetWeight
	existing.Bmr = bmr
	existing.Tdee = tdee
	existing.DailyCalorieTarget = target
	existing.WaterTargetGlasses = waterTarget
	existing.WaterReminderEnabled = req.WaterReminderEnabled
	existing.WaterReminderInterval = reminderInterval
	existing.CalendarPopupMinutes = popupMinutes
	existing.CalendarEmailMinutes = emailMinutes

	if err := uow.ProfileRepository().Update(ctx, existing); err != nil {
		return nil, err
	}
	return toProfileResponse(existing), nil
}

func (s *profileService) Get(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	resp := toProfileResponse(profile)
	auth, err := uow.GoogleAuthRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	resp.GoogleConnected = auth != nil
	return resp, nil
}
