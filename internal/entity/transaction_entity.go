package entity

import (
	"time"

	"github.com/google/uuid"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionSuccess   TransactionStatus = "SUCCESS"
	TransactionFailed    TransactionStatus = "FAILED"
	TransactionChallenge TransactionStatus = "CHALLENGE"
)

type Transaction struct {
	Id          uuid.UUID
	OrderId     string
	UserId      uuid.UUID
	GrossAmount int64
	Status      TransactionStatus
	PaymentType string
	SnapToken   string
	RedirectURL string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
