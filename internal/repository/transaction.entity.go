package repository

import (
	"github.com/mkarimi/customer-ledger/internal/model"
)

type TransactionEntity struct {
	ID         int64   `db:"id"          gorm:"primaryKey;autoIncrement;column:id"`
	CustomerID int64   `db:"customer_id" gorm:"column:customer_id;not null;index"`
	Amount     float64 `db:"amount"      gorm:"column:amount;not null"`
	Type       string  `db:"type"        gorm:"column:type;not null"`
	Note       *string `db:"note"        gorm:"column:note"`
	CreatedAt  string  `db:"created_at"  gorm:"column:created_at;not null"`
}

func (TransactionEntity) TableName() string {
	return "transactions"
}

func toTransactionEntity(m *model.Transaction) *TransactionEntity {
	if m == nil {
		return nil
	}
	return &TransactionEntity{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		Amount:     m.Amount,
		Type:       string(m.Type),
		Note:       m.Note,
		CreatedAt:  m.CreatedAt,
	}
}

func toTransactionModel(e *TransactionEntity) *model.Transaction {
	if e == nil {
		return nil
	}
	return &model.Transaction{
		ID:         e.ID,
		CustomerID: e.CustomerID,
		Amount:     e.Amount,
		Type:       model.TransactionType(e.Type),
		Note:       e.Note,
		CreatedAt:  e.CreatedAt,
	}
}

func toTransactionModels(entities []*TransactionEntity) []*model.Transaction {
	if entities == nil {
		return nil
	}
	models := make([]*model.Transaction, len(entities))
	for i, e := range entities {
		models[i] = toTransactionModel(e)
	}
	return models
}
