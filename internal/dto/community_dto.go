package dto

import (
	"time"

	"github.com/google/uuid"
)

type BuddyResponse struct {
	Id    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Xp    int       `json:"xp"`
	Level string    `json:"level"`
}

type GroupResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category"`
	MembersCount int64     `json:"members_count"`
	IsJoined     bool      `json:"is_joined"`
}

type ChallengeResponse struct {
	Id                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description,omitempty"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	TargetType        string    `json:"target_type"`
	TargetValue       int       `json:"target_value"`
	ParticipantsCount int64     `json:"participants_count"`
	IsJoined          bool      `json:"is_joined"`
}

type GamificationResponse struct {
	Xp          int     `json:"xp"`
	Level       string  `json:"level"`
	NextLevelXp int     `json:"next_level_xp"`
	Progress    float64 `json:"progress"`
}
