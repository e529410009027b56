package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Transaction struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderId     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	GrossAmount int64     `gorm:"not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	PaymentType string    `gorm:"type:varchar(50)"`
	SnapToken   string    `gorm:"type:text"`
	RedirectURL string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.Id == uuid.Nil {
		t.Id = uuid.New()
	}
	return nil
}
