package service

import (
	"context"
	"crypto/sha512"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diet-coach-be/internal/config"
	"diet-coach-be/internal/dto"
	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/repository/specification"
)

func TestMapTransactionStatus(t *testing.T) {
	tests := []struct {
		transactionStatus string
		fraudStatus       string
		expected          entity.TransactionStatus
	}{
		{"capture", "accept", entity.TransactionSuccess},
		{"capture", "challenge", entity.TransactionChallenge},
		{"settlement", "", entity.TransactionSuccess},
		{"cancel", "", entity.TransactionFailed},
		{"deny", "", entity.TransactionFailed},
		{"expire", "", entity.TransactionFailed},
		{"pending", "", entity.TransactionPending},
		{"refund", "", entity.TransactionPending},
	}

	for _, tt := range tests {
		t.Run(tt.transactionStatus+"/"+tt.fraudStatus, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapTransactionStatus(tt.transactionStatus, tt.fraudStatus))
		})
	}
}

func TestCreateChargeMockMode(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	svc := NewPaymentService(factory, config.MidtransConfig{}, nopLogger{})

	resp, err := svc.CreateCharge(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, "mock-snap-token", resp.SnapToken)
	assert.Equal(t, PremiumPriceIDR, resp.GrossAmount)
	assert.Contains(t, resp.OrderId, "PREMIUM-")

	txs, err := svc.GetTransactions(ctx, user.Id)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, string(entity.TransactionPending), txs[0].Status)
}

func TestHandleNotificationActivatesPremium(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	svc := NewPaymentService(factory, config.MidtransConfig{}, nopLogger{})

	charge, err := svc.CreateCharge(ctx, user.Id)
	require.NoError(t, err)

	err = svc.HandleNotification(ctx, &dto.MidtransNotification{
		OrderId:           charge.OrderId,
		TransactionStatus: "settlement",
		PaymentType:       "gopay",
	})
	require.NoError(t, err)

	uow := factory.NewUnitOfWork(ctx)
	got, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: user.Id})
	require.NoError(t, err)
	assert.Equal(t, entity.TierPremium, got.MembershipTier)
	require.NotNil(t, got.MembershipExpiry)
	assert.WithinDuration(t, time.Now().AddDate(0, 1, 0), *got.MembershipExpiry, time.Minute)

	txs, err := svc.GetTransactions(ctx, user.Id)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, string(entity.TransactionSuccess), txs[0].Status)
	assert.Equal(t, "gopay", txs[0].PaymentType)
}

func TestHandleNotificationRenewalRestartsWindow(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	future := time.Now().AddDate(0, 0, 10)
	user := seedUser(t, factory, asPremium(future))
	svc := NewPaymentService(factory, config.MidtransConfig{}, nopLogger{})

	charge, err := svc.CreateCharge(ctx, user.Id)
	require.NoError(t, err)

	require.NoError(t, svc.HandleNotification(ctx, &dto.MidtransNotification{
		OrderId:           charge.OrderId,
		TransactionStatus: "settlement",
	}))

	uow := factory.NewUnitOfWork(ctx)
	got, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: user.Id})
	require.NoError(t, err)
	require.NotNil(t, got.MembershipExpiry)
	// An early renewal runs one month from settlement, not from the old expiry.
	assert.WithinDuration(t, time.Now().AddDate(0, 1, 0), *got.MembershipExpiry, time.Minute)
}

func TestHandleNotificationReplayIsIdempotent(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	svc := NewPaymentService(factory, config.MidtransConfig{}, nopLogger{})

	charge, err := svc.CreateCharge(ctx, user.Id)
	require.NoError(t, err)

	note := &dto.MidtransNotification{OrderId: charge.OrderId, TransactionStatus: "settlement"}
	require.NoError(t, svc.HandleNotification(ctx, note))

	uow := factory.NewUnitOfWork(ctx)
	first, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: user.Id})
	require.NoError(t, err)

	// The gateway retries webhooks; a replay must not extend again.
	require.NoError(t, svc.HandleNotification(ctx, note))
	second, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: user.Id})
	require.NoError(t, err)
	assert.Equal(t, first.MembershipExpiry.Unix(), second.MembershipExpiry.Unix())
}

func TestHandleNotificationSignature(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	cfg := config.MidtransConfig{ServerKey: "SB-server-key"}
	svc := NewPaymentService(factory, cfg, nopLogger{})

	// Seed the pending transaction directly; CreateCharge would call the
	// real gateway once a server key is configured.
	uow := factory.NewUnitOfWork(ctx)
	tx := &entity.Transaction{
		OrderId:     "PREMIUM-test-1",
		UserId:      user.Id,
		GrossAmount: PremiumPriceIDR,
		Status:      entity.TransactionPending,
	}
	require.NoError(t, uow.TransactionRepository().Create(ctx, tx))

	note := &dto.MidtransNotification{
		OrderId:           "PREMIUM-test-1",
		TransactionStatus: "settlement",
		StatusCode:        "200",
		GrossAmount:       "29900.00",
		SignatureKey:      "bogus",
	}
	err := svc.HandleNotification(ctx, note)
	require.True(t, errors.Is(err, ErrInvalidSignature))

	signatureInput := note.OrderId + note.StatusCode + note.GrossAmount + cfg.ServerKey
	note.SignatureKey = fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	require.NoError(t, svc.HandleNotification(ctx, note))
}

func TestHandleNotificationUnknownOrder(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	svc := NewPaymentService(factory, config.MidtransConfig{}, nopLogger{})

	err := svc.HandleNotification(ctx, &dto.MidtransNotification{
		OrderId:           "PREMIUM-missing",
		TransactionStatus: "settlement",
	})
	require.True(t, errors.Is(err, ErrTransactionMissing))
}

func TestHandleNotificationFailureDoesNotUpgrade(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	svc := NewPaymentService(factory, config.MidtransConfig{}, nopLogger{})

	charge, err := svc.CreateCharge(ctx, user.Id)
	require.NoError(t, err)

	require.NoError(t, svc.HandleNotification(ctx, &dto.MidtransNotification{
		OrderId:           charge.OrderId,
		TransactionStatus: "expire",
	}))

	uow := factory.NewUnitOfWork(ctx)
	got, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: user.Id})
	require.NoError(t, err)
	assert.Equal(t, entity.TierFree, got.MembershipTier)

	txs, err := svc.GetTransactions(ctx, user.Id)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, string(entity.TransactionFailed), txs[0].Status)
}
