package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Token columns hold ciphertext envelopes.
type GoogleAuth struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	AccessToken  string    `gorm:"type:text;not null"`
	RefreshToken string    `gorm:"type:text;not null"`
	TokenExpiry  time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (GoogleAuth) TableName() string {
	return "google_auths"
}

func (g *GoogleAuth) BeforeCreate(tx *gorm.DB) error {
	if g.Id == uuid.Nil {
		g.Id = uuid.New()
	}
	return nil
}
