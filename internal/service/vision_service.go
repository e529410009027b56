package service

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/google/uuid"

	"diet-coach-be/internal/dto"
	"diet-coach-be/internal/pkg/logger"
	"diet-coach-be/pkg/coach"
	"diet-coach-be/pkg/entitlement"
	"diet-coach-be/pkg/llm"
)

type IVisionService interface {
	AnalyzeFood(ctx context.Context, userId uuid.UUID, req *dto.AnalyzeFoodRequest) (*dto.AnalyzeFoodResponse, error)
}

type visionService struct {
	gate     *entitlement.Gate
	provider llm.VisionProvider
	log      logger.ILogger
}

func NewVisionService(gate *entitlement.Gate, provider llm.VisionProvider, log logger.ILogger) IVisionService {
	return &visionService{
		gate:     gate,
		provider: provider,
		log:      log,
	}
}

// decodeImage accepts plain base64 or a data URL and returns raw bytes plus
// the mime type.
func decodeImage(input, fallbackMime string) ([]byte, string, error) {
	mime := fallbackMime
	if mime == "" {
		mime = "image/jpeg"
	}

	payload := input
	if strings.HasPrefix(input, "data:") {
		if idx := strings.Index(input, ";base64,"); idx > 0 {
			mime = strings.TrimPrefix(input[:idx], "data:")
			payload = input[idx+len(";base64,"):]
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", err
	}
	return data, mime, nil
}

// AnalyzeFood is a premium feature. Model answers that fail to parse are not
// errors; they degrade to a low-confidence result carrying the raw text.
func (s *visionService) AnalyzeFood(ctx context.Context, userId uuid.UUID, req *dto.AnalyzeFoodRequest) (*dto.AnalyzeFoodResponse, error) {
	if err := s.gate.RequirePremium(ctx, userId.String()); err != nil {
		return nil, err
	}

	data, mime, err := decodeImage(req.Image, req.MimeType)
	if err != nil {
		return nil, err
	}

	raw, err := s.provider.AnalyzeImage(ctx, coach.FoodImagePrompt, data, mime)
	if err != nil {
		return nil, err
	}

	analysis := coach.ParseFoodAnalysis(raw)
	if analysis.Confidence == "low" && analysis.RawResponse != "" {
		s.log.Info("vision", "analysis degraded to low confidence", map[string]interface{}{
			"user_id": userId.String(),
		})
	}

	foods := make([]dto.AnalyzedFood, len(analysis.Foods))
	for i, f := range analysis.Foods {
		foods[i] = dto.AnalyzedFood{Name: f.Name, Portion: f.Portion, Calories: f.Calories}
	}

	return &dto.AnalyzeFoodResponse{
		Foods:         foods,
		TotalCalories: analysis.TotalCalories,
		Confidence:    analysis.Confidence,
		RawResponse:   analysis.RawResponse,
	}, nil
}
