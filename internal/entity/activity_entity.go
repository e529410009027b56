package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityCategory string

const (
	CategoryWorkout ActivityCategory = "workout"
	CategoryMeal    ActivityCategory = "meal"
	CategoryWater   ActivityCategory = "water"
	CategoryOther   ActivityCategory = "other"
)

// Activity is a scheduled plan item. The local record is authoritative;
// GoogleEventId and Synced only describe the mirror on Google Calendar.
type Activity struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	Title         string
	Description   string
	Category      ActivityCategory
	StartTime     time.Time
	EndTime       time.Time
	GoogleEventId *string
	Synced        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
