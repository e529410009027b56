// Package events defines the in-process event bus topics and payloads.
package events

import (
	"time"

	"github.com/google/uuid"
)

const TopicXpAwarded = "gamification.xp_awarded"

// XpAwardedEvent is emitted after a user completes something worth XP
// (logging meals, finishing quests, hitting the water target).
type XpAwardedEvent struct {
	UserId     uuid.UUID `json:"user_id"`
	Amount     int       `json:"amount"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}
