package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"diet-coach-be/internal/dto"
	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/pkg/crypto"
	"diet-coach-be/internal/pkg/logger"
	"diet-coach-be/internal/repository/specification"
	"diet-coach-be/internal/repository/unitofwork"
	"diet-coach-be/pkg/coach"
	"diet-coach-be/pkg/entitlement"
	"diet-coach-be/pkg/llm"
)

// historyWindow is how many prior turns are replayed to the model.
const historyWindow = 10

type IChatService interface {
	Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error)
	History(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.ChatHistoryItem, error)
	Quota(ctx context.Context, userId uuid.UUID) (*dto.QuotaResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	gate       *entitlement.Gate
	provider   llm.Provider
	codec      *crypto.FieldCodec
	log        logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	gate *entitlement.Gate,
	provider llm.Provider,
	codec *crypto.FieldCodec,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		gate:       gate,
		provider:   provider,
		codec:      codec,
		log:        log,
	}
}

func (s *chatService) buildStatus(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, userName string) coach.DailyStatus {
	status := coach.DailyStatus{
		Name:           userName,
		TargetCalories: 2000,
		WaterTarget:    8,
	}

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.OwnedBy{UserID: userId})
	if err != nil || profile == nil {
		return status
	}
	status.Goal = profile.Goal
	status.WeightKg = profile.WeightKg
	status.HeightCm = profile.HeightCm
	status.ActivityLevel = profile.ActivityLevel
	status.TargetCalories = profile.DailyCalorieTarget
	if profile.WaterTargetGlasses > 0 {
		status.WaterTarget = profile.WaterTargetGlasses
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)

	if foods, err := uow.FoodLogRepository().FindAll(ctx, specification.OwnedBy{UserID: userId}, specification.LoggedBetween{From: from, To: to}); err == nil {
		for _, f := range foods {
			status.CaloriesConsumed += int(f.Calories)
		}
	}
	if exercises, err := uow.ExerciseLogRepository().FindAll(ctx, specification.OwnedBy{UserID: userId}, specification.LoggedBetween{From: from, To: to}); err == nil {
		for _, e := range exercises {
			status.CaloriesBurned += int(e.CaloriesBurned)
		}
	}
	if waters, err := uow.WaterLogRepository().FindAll(ctx, specification.OwnedBy{UserID: userId}, specification.LoggedBetween{From: from, To: to}); err == nil {
		for _, w := range waters {
			status.WaterGlasses += w.Glasses
		}
	}
	status.RemainingCalories = status.TargetCalories - status.CaloriesConsumed + status.CaloriesBurned

	return status
}

func (s *chatService) Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	limit, err := s.gate.CheckMessageLimit(ctx, userId.String())
	if err != nil {
		return nil, err
	}
	if !limit.Allowed {
		if limit.Reason == entitlement.ErrUserNotFound.Error() {
			return nil, ErrUserNotFound
		}
		return nil, entitlement.ErrDailyLimitReached
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// Replay recent history so the coach keeps conversational context.
	recent, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: historyWindow, Offset: 0},
	)
	if err != nil {
		return nil, err
	}

	messages := []llm.Message{
		{Role: "system", Content: coach.BuildSystemPrompt(s.buildStatus(ctx, uow, userId, user.Name))},
	}
	for i := len(recent) - 1; i >= 0; i-- {
		messages = append(messages, llm.Message{
			Role:    string(recent[i].Role),
			Content: s.codec.Decrypt(recent[i].Content),
		})
	}
	messages = append(messages, llm.Message{Role: "user", Content: req.Message})

	raw, err := s.provider.Chat(ctx, messages, llm.WithJSONMode(), llm.WithTemperature(0.7))
	if err != nil {
		return nil, err
	}

	reply, err := coach.ParseReply(raw)
	if err != nil {
		s.log.Warn("chat", "model returned malformed reply", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return nil, err
	}

	var questRaw json.RawMessage
	if reply.Quest != nil {
		questRaw, _ = json.Marshal(reply.Quest)
	}

	userMsg := &entity.ChatMessage{
		Id:      uuid.New(),
		UserId:  userId,
		Role:    entity.ChatRoleUser,
		Content: s.codec.Encrypt(req.Message),
	}
	assistantMsg := &entity.ChatMessage{
		Id:      uuid.New(),
		UserId:  userId,
		Role:    entity.ChatRoleAssistant,
		Content: s.codec.Encrypt(reply.Reply),
		Quest:   questRaw,
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMsg); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, assistantMsg); err != nil {
		return nil, err
	}

	remaining := limit.Remaining
	if !limit.IsPremium {
		// Quota is consumed only after the turn succeeded end to end.
		if err := s.gate.IncrementMessageCount(ctx, userId.String()); err != nil {
			return nil, err
		}
		remaining = limit.Remaining - 1
	}

	return &dto.ChatResponse{
		Reply:     reply.Reply,
		Quest:     questRaw,
		Remaining: remaining,
		IsPremium: limit.IsPremium,
	}, nil
}

func (s *chatService) History(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.ChatHistoryItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	msgs, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: 0},
	)
	if err != nil {
		return nil, err
	}

	// Oldest first for rendering.
	result := make([]*dto.ChatHistoryItem, len(msgs))
	for i, m := range msgs {
		result[len(msgs)-1-i] = &dto.ChatHistoryItem{
			Id:        m.Id,
			Role:      string(m.Role),
			Content:   s.codec.Decrypt(m.Content),
			Quest:     m.Quest,
			CreatedAt: m.CreatedAt,
		}
	}
	return result, nil
}

func (s *chatService) Quota(ctx context.Context, userId uuid.UUID) (*dto.QuotaResponse, error) {
	limit, err := s.gate.CheckMessageLimit(ctx, userId.String())
	if err != nil {
		return nil, err
	}
	if limit.Reason == entitlement.ErrUserNotFound.Error() {
		return nil, ErrUserNotFound
	}

	remaining := limit.Remaining
	if limit.IsPremium {
		remaining = entitlement.FreeMessageLimit
	}
	return &dto.QuotaResponse{
		IsPremium: limit.IsPremium,
		Remaining: remaining,
		Limit:     entitlement.FreeMessageLimit,
	}, nil
}
