package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"diet-coach-be/internal/dto"
	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/pkg/crypto"
	"diet-coach-be/internal/pkg/logger"
	"diet-coach-be/internal/pkg/timeutil"
	"diet-coach-be/internal/repository/specification"
	"diet-coach-be/internal/repository/unitofwork"
	"diet-coach-be/pkg/calendar"
	"diet-coach-be/pkg/entitlement"
)

type IActivityService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error)
	Update(ctx context.Context, userId, id uuid.UUID, req *dto.UpdateActivityRequest) (*dto.ActivityResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
	List(ctx context.Context, userId uuid.UUID, from, to time.Time) ([]*dto.ActivityResponse, error)
	SyncNow(ctx context.Context, userId uuid.UUID) (*dto.SyncResultResponse, error)
}

type activityService struct {
	uowFactory unitofwork.RepositoryFactory
	gate       *entitlement.Gate
	googleAuth IGoogleAuthService
	calendar   *calendar.Client
	codec      *crypto.FieldCodec
	log        logger.ILogger
}

func NewActivityService(
	uowFactory unitofwork.RepositoryFactory,
	gate *entitlement.Gate,
	googleAuth IGoogleAuthService,
	calendarClient *calendar.Client,
	codec *crypto.FieldCodec,
	log logger.ILogger,
) IActivityService {
	return &activityService{
		uowFactory: uowFactory,
		gate:       gate,
		googleAuth: googleAuth,
		calendar:   calendarClient,
		codec:      codec,
		log:        log,
	}
}

func (s *activityService) toResponse(a *entity.Activity) *dto.ActivityResponse {
	return &dto.ActivityResponse{
		Id:            a.Id,
		Title:         a.Title,
		Description:   s.codec.Decrypt(a.Description),
		Category:      string(a.Category),
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
		Synced:        a.Synced,
		GoogleEventId: a.GoogleEventId,
	}
}

// reminderPrefs reads the user's calendar reminder settings, falling back to
// a 10 minute popup and a 30 minute email for users without a profile.
func (s *activityService) reminderPrefs(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (popup, email int) {
	profile, err := uow.ProfileRepository().FindOne(ctx, specification.OwnedBy{UserID: userId})
	if err != nil || profile == nil {
		return 10, 30
	}
	return profile.CalendarPopupMinutes, profile.CalendarEmailMinutes
}

func (s *activityService) toEvent(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, activity *entity.Activity) calendar.Event {
	popup, email := s.reminderPrefs(ctx, uow, userId)
	return calendar.NewEvent(activity.Title, s.codec.Decrypt(activity.Description),
		string(activity.Category), activity.StartTime, activity.EndTime, popup, email)
}

// tryMirror pushes the activity to Google Calendar best effort. The local
// write has already been committed; sync failure is logged, never surfaced.
func (s *activityService) tryMirror(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, activity *entity.Activity) {
	ts, err := s.googleAuth.TokenSource(ctx, userId)
	if err != nil {
		return
	}

	ev := s.toEvent(ctx, uow, userId, activity)

	if activity.GoogleEventId != nil {
		if err := s.calendar.Update(ctx, ts, *activity.GoogleEventId, ev); err != nil {
			s.log.Warn("activity", "calendar update failed", map[string]interface{}{
				"activity_id": activity.Id.String(),
				"error":       err.Error(),
			})
		}
		return
	}

	eventId, err := s.calendar.Insert(ctx, ts, ev)
	if err != nil {
		s.log.Warn("activity", "calendar insert failed", map[string]interface{}{
			"activity_id": activity.Id.String(),
			"error":       err.Error(),
		})
		return
	}

	if err := uow.ActivityRepository().MarkSynced(ctx, activity.Id, eventId); err != nil {
		s.log.Warn("activity", "failed to record calendar event id", map[string]interface{}{
			"activity_id": activity.Id.String(),
			"error":       err.Error(),
		})
		return
	}
	activity.GoogleEventId = &eventId
	activity.Synced = true
}

func (s *activityService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	// Omitted end time defaults to a one hour slot.
	end := req.EndTime
	if end.IsZero() {
		end = req.StartTime.Add(time.Hour)
	}
	if !end.After(req.StartTime) {
		return nil, errors.New("end_time must be after start_time")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	activity := &entity.Activity{
		Id:          uuid.New(),
		UserId:      userId,
		Title:       req.Title,
		Description: s.codec.Encrypt(req.Description),
		Category:    entity.ActivityCategory(req.Category),
		StartTime:   req.StartTime,
		EndTime:     end,
	}
	if err := uow.ActivityRepository().Create(ctx, activity); err != nil {
		return nil, err
	}

	s.tryMirror(ctx, uow, userId, activity)

	return s.toResponse(activity), nil
}

func (s *activityService) Update(ctx context.Context, userId, id uuid.UUID, req *dto.UpdateActivityRequest) (*dto.ActivityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activity, err := uow.ActivityRepository().FindOne(ctx, specification.ByID{ID: id}, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrNotFound
	}

	if req.Title != nil {
		activity.Title = *req.Title
	}
	if req.Description != nil {
		activity.Description = s.codec.Encrypt(*req.Description)
	}
	if req.Category != nil {
		activity.Category = entity.ActivityCategory(*req.Category)
	}
	if req.StartTime != nil {
		activity.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		activity.EndTime = *req.EndTime
	}
	if !activity.EndTime.After(activity.StartTime) {
		return nil, errors.New("end_time must be after start_time")
	}

	if err := uow.ActivityRepository().Update(ctx, activity); err != nil {
		return nil, err
	}

	s.tryMirror(ctx, uow, userId, activity)

	return s.toResponse(activity), nil
}

func (s *activityService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activity, err := uow.ActivityRepository().FindOne(ctx, specification.ByID{ID: id}, specification.OwnedBy{UserID: userId})
	if err != nil {
		return err
	}
	if activity == nil {
		return ErrNotFound
	}

	if err := uow.ActivityRepository().Delete(ctx, id); err != nil {
		return err
	}

	// Remove the mirror best effort.
	if activity.GoogleEventId != nil {
		if ts, err := s.googleAuth.TokenSource(ctx, userId); err == nil {
			if err := s.calendar.Delete(ctx, ts, *activity.GoogleEventId); err != nil {
				s.log.Warn("activity", "calendar delete failed", map[string]interface{}{
					"activity_id": activity.Id.String(),
					"error":       err.Error(),
				})
			}
		}
	}

	return nil
}

func (s *activityService) List(ctx context.Context, userId uuid.UUID, from, to time.Time) ([]*dto.ActivityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "start_time", Desc: false},
	}
	if !from.IsZero() && !to.IsZero() {
		specs = append(specs, specification.StartsBetween{From: from, To: to})
	}

	activities, err := uow.ActivityRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ActivityResponse, len(activities))
	for i, a := range activities {
		result[i] = s.toResponse(a)
	}
	return result, nil
}

// SyncNow bulk-pushes every unsynced activity. Premium only. Individual
// failures are skipped; the response reports how many made it.
func (s *activityService) SyncNow(ctx context.Context, userId uuid.UUID) (*dto.SyncResultResponse, error) {
	if err := s.gate.RequirePremium(ctx, userId.String()); err != nil {
		return nil, err
	}

	ts, err := s.googleAuth.TokenSource(ctx, userId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Only today-forward activities are worth mirroring; past ones stay local.
	pending, err := uow.ActivityRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.Unsynced{},
		specification.StartsAfter{From: timeutil.StartOfDay(time.Now())},
	)
	if err != nil {
		return nil, err
	}

	synced := 0
	for _, activity := range pending {
		ev := s.toEvent(ctx, uow, userId, activity)
		eventId, err := s.calendar.Insert(ctx, ts, ev)
		if err != nil {
			if errors.Is(err, calendar.ErrAuthExpired) {
				return nil, ErrCalendarAuthExpired
			}
			s.log.Warn("activity", "sync skipped one activity", map[string]interface{}{
				"activity_id": activity.Id.String(),
				"error":       err.Error(),
			})
			continue
		}
		if err := uow.ActivityRepository().MarkSynced(ctx, activity.Id, eventId); err != nil {
			s.log.Warn("activity", "failed to record sync result", map[string]interface{}{
				"activity_id": activity.Id.String(),
				"error":       err.Error(),
			})
			continue
		}
		synced++
	}

	return &dto.SyncResultResponse{
		SyncedCount: synced,
		TotalCount:  len(pending),
	}, nil
}
