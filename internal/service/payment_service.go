package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"diet-coach-be/internal/config"
	"diet-coach-be/internal/dto"
	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/pkg/logger"
	"diet-coach-be/internal/repository/specification"
	"diet-coach-be/internal/repository/unitofwork"
)

// PremiumPriceIDR is the monthly premium price in rupiah.
const PremiumPriceIDR int64 = 29900

type IPaymentService interface {
	CreateCharge(ctx context.Context, userId uuid.UUID) (*dto.CreateChargeResponse, error)
	HandleNotification(ctx context.Context, req *dto.MidtransNotification) error
	GetTransactions(ctx context.Context, userId uuid.UUID) ([]*dto.TransactionResponse, error)
}

type paymentService struct {
	uowFactory unitofwork.RepositoryFactory
	cfg        config.MidtransConfig
	log        logger.ILogger
}

func NewPaymentService(uowFactory unitofwork.RepositoryFactory, cfg config.MidtransConfig, log logger.ILogger) IPaymentService {
	return &paymentService{
		uowFactory: uowFactory,
		cfg:        cfg,
		log:        log,
	}
}

func (s *paymentService) CreateCharge(ctx context.Context, userId uuid.UUID) (*dto.CreateChargeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	orderId := fmt.Sprintf("PREMIUM-%s-%d", userId.String()[:8], time.Now().Unix())

	tx := &entity.Transaction{
		Id:          uuid.New(),
		OrderId:     orderId,
		UserId:      userId,
		GrossAmount: PremiumPriceIDR,
		Status:      entity.TransactionPending,
	}

	if s.cfg.ServerKey == "" {
		// No gateway configured: mock mode for local development. The
		// webhook endpoint still drives the status transitions.
		tx.SnapToken = "mock-snap-token"
		tx.RedirectURL = "https://app.sandbox.midtrans.com/snap/v2/vtweb/mock"
		if err := uow.TransactionRepository().Create(ctx, tx); err != nil {
			return nil, err
		}
		return &dto.CreateChargeResponse{
			OrderId:     orderId,
			SnapToken:   tx.SnapToken,
			RedirectURL: tx.RedirectURL,
			GrossAmount: PremiumPriceIDR,
		}, nil
	}

	var sClient snap.Client
	env := midtrans.Sandbox
	if s.cfg.IsProduction {
		env = midtrans.Production
	}
	sClient.New(s.cfg.ServerKey, env)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderId,
			GrossAmt: PremiumPriceIDR,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.Name,
			Email: user.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    "premium-monthly",
				Price: PremiumPriceIDR,
				Qty:   1,
				Name:  "Diet Coach Premium (1 Month)",
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	tx.SnapToken = snapResp.Token
	tx.RedirectURL = snapResp.RedirectURL
	if err := uow.TransactionRepository().Create(ctx, tx); err != nil {
		return nil, err
	}

	return &dto.CreateChargeResponse{
		OrderId:     orderId,
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
		GrossAmount: PremiumPriceIDR,
	}, nil
}

// mapTransactionStatus folds Midtrans transaction_status plus fraud_status
// into the local status.
func mapTransactionStatus(transactionStatus, fraudStatus string) entity.TransactionStatus {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "challenge" {
			return entity.TransactionChallenge
		}
		return entity.TransactionSuccess
	case "settlement":
		return entity.TransactionSuccess
	case "cancel", "deny", "expire":
		return entity.TransactionFailed
	default:
		return entity.TransactionPending
	}
}

func (s *paymentService) HandleNotification(ctx context.Context, req *dto.MidtransNotification) error {
	// Midtrans signature = SHA512(order_id + status_code + gross_amount + server_key)
	if s.cfg.ServerKey != "" {
		signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + s.cfg.ServerKey
		expected := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
		if req.SignatureKey != expected {
			s.log.Warn("payment", "webhook signature mismatch", map[string]interface{}{
				"order_id": req.OrderId,
			})
			return ErrInvalidSignature
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	tx, err := uow.TransactionRepository().FindOne(ctx, specification.ByOrderID{OrderID: req.OrderId})
	if err != nil {
		return err
	}
	if tx == nil {
		return ErrTransactionMissing
	}

	newStatus := mapTransactionStatus(req.TransactionStatus, req.FraudStatus)

	if tx.Status == entity.TransactionSuccess && newStatus == entity.TransactionSuccess {
		// Replayed notification; the upgrade already happened.
		return uow.Commit()
	}

	tx.Status = newStatus
	tx.PaymentType = req.PaymentType
	if err := uow.TransactionRepository().Update(ctx, tx); err != nil {
		return err
	}

	if newStatus == entity.TransactionSuccess {
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: tx.UserId})
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		// One month from settlement. Early renewals restart the window
		// rather than stacking on the previous expiry.
		expiry := time.Now().AddDate(0, 1, 0)

		if err := uow.UserRepository().UpgradeToPremium(ctx, tx.UserId, expiry); err != nil {
			return err
		}
		s.log.Info("payment", "premium activated", map[string]interface{}{
			"user_id":  tx.UserId.String(),
			"order_id": tx.OrderId,
			"expiry":   expiry.Format(time.RFC3339),
		})
	}

	return uow.Commit()
}

func (s *paymentService) GetTransactions(ctx context.Context, userId uuid.UUID) ([]*dto.TransactionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	txs, err := uow.TransactionRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TransactionResponse, len(txs))
	for i, tx := range txs {
		result[i] = &dto.TransactionResponse{
			OrderId:     tx.OrderId,
			Status:      string(tx.Status),
			GrossAmount: tx.GrossAmount,
			PaymentType: tx.PaymentType,
			CreatedAt:   tx.CreatedAt,
		}
	}
	return result, nil
}
