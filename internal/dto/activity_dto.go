package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateActivityRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category" validate:"required,oneof=workout meal water other"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"omitempty,gtfield=StartTime"`
}

type UpdateActivityRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Category    *string    `json:"category,omitempty" validate:"omitempty,oneof=workout meal water other"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
}

type ActivityResponse struct {
	Id            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Synced        bool      `json:"synced"`
	GoogleEventId *string   `json:"google_event_id,omitempty"`
}

type SyncResultResponse struct {
	SyncedCount int `json:"synced_count"`
	TotalCount  int `json:"total_count"`
}
