package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoogleAuth holds the Calendar OAuth grant for a user. Both tokens are
// stored encrypted at rest; the entity carries plaintext.
type GoogleAuth struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	AccessToken  string
	RefreshToken string
	TokenExpiry  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
