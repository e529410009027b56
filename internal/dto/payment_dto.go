package dto

import "time"

type CreateChargeResponse struct {
	OrderId     string `json:"order_id"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
	GrossAmount int64  `json:"gross_amount"`
}

// MidtransNotification is the webhook payload subset this app reads.
type MidtransNotification struct {
	OrderId           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
}

type TransactionResponse struct {
	OrderId     string    `json:"order_id"`
	Status      string    `json:"status"`
	GrossAmount int64     `json:"gross_amount"`
	PaymentType string    `json:"payment_type,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
