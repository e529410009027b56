package mapper

import (
	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/model"
)

type TransactionMapper struct{}

func NewTransactionMapper() *TransactionMapper {
	return &TransactionMapper{}
}

func (m *TransactionMapper) ToEntity(t *model.Transaction) *entity.Transaction {
	if t == nil {
		return nil
	}
	return &entity.Transaction{
		Id:          t.Id,
		OrderId:     t.OrderId,
		UserId:      t.UserId,
		GrossAmount: t.GrossAmount,
		Status:      entity.TransactionStatus(t.Status),
		PaymentType: t.PaymentType,
		SnapToken:   t.SnapToken,
		RedirectURL: t.RedirectURL,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (m *TransactionMapper) ToModel(t *entity.Transaction) *model.Transaction {
	if t == nil {
		return nil
	}
	return &model.Transaction{
		Id:          t.Id,
		OrderId:     t.OrderId,
		UserId:      t.UserId,
		GrossAmount: t.GrossAmount,
		Status:      string(t.Status),
		PaymentType: t.PaymentType,
		SnapToken:   t.SnapToken,
		RedirectURL: t.RedirectURL,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (m *TransactionMapper) ToEntities(txs []*model.Transaction) []*entity.Transaction {
	entities := make([]*entity.Transaction, len(txs))
	for i, t := range txs {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
