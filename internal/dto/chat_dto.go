package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Reply     string          `json:"reply"`
	Quest     json.RawMessage `json:"quest,omitempty"`
	Remaining int             `json:"remaining_messages"`
	IsPremium bool            `json:"is_premium"`
}

type ChatHistoryItem struct {
	Id        uuid.UUID       `json:"id"`
	Role      string          `json:"role"`
	Content   string          `json:"content"`
	Quest     json.RawMessage `json:"quest,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type AnalyzeFoodRequest struct {
	// Base64 encoded image, with or without a data URL prefix.
	Image    string `json:"image" validate:"required"`
	MimeType string `json:"mime_type,omitempty"`
}

type AnalyzeFoodResponse struct {
	Foods         []AnalyzedFood `json:"foods"`
	TotalCalories float64        `json:"totalCalories"`
	Confidence    string         `json:"confidence"`
	RawResponse   string         `json:"rawResponse,omitempty"`
}

type AnalyzedFood struct {
	Name     string  `json:"name"`
	Portion  string  `json:"portion"`
	Calories float64 `json:"calories"`
}

type QuotaResponse struct {
	IsPremium bool `json:"is_premium"`
	Remaining int  `json:"remaining_messages"`
	Limit     int  `json:"limit"`
}
