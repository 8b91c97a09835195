package repository

import (
	"context"
	"math"

	"github.com/mkarimi/customer-ledger/internal/model"
	"github.com/mkarimi/customer-ledger/pkg/db"
	"github.com/shopspring/decimal"
)

type TransactionRepository struct {
	*db.DB
}

func NewTransactionRepository(db *db.DB) *TransactionRepository {
	return &TransactionRepository{
		db,
	}
}

// Create appends a ledger entry. The amount is stored as its absolute
// value, unknown types are coerced to debit and a missing timestamp
// defaults to now; the customer reference is not checked.
func (r *TransactionRepository) Create(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	entity := toTransactionEntity(txn)
	entity.Amount = math.Abs(entity.Amount)
	entity.Type = string(model.ParseTransactionType(entity.Type))
	if entity.CreatedAt == "" {
		entity.CreatedAt = model.NowUTC()
	}

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toTransactionModel(entity), nil
}

// List returns transactions newest first, optionally scoped to a customer.
// created_at is a fixed-width UTC string, so the lexicographic DESC order
// is chronological.
func (r *TransactionRepository) List(ctx context.Context, customerID *int64) ([]*model.Transaction, error) {
	q := r.Read(ctx).Model(&TransactionEntity{})

	if customerID != nil {
		q = q.Where("customer_id = ?", *customerID)
	}

	var entities []*TransactionEntity
	if err := q.Order("created_at DESC").Find(&entities).Error; err != nil {
		return nil, err
	}

	return toTransactionModels(entities), nil
}

// Balance derives the customer's balance from its transaction log:
// debits add, credits subtract. A customer with no transactions has
// balance 0. Summation runs through decimal to keep cents exact.
func (r *TransactionRepository) Balance(ctx context.Context, customerID int64) (float64, error) {
	var rows []struct {
		Amount float64
		Type   string
	}
	err := r.Read(ctx).
		Model(&TransactionEntity{}).
		Select("amount", "type").
		Where("customer_id = ?", customerID).
		Find(&rows).
		Error
	if err != nil {
		return 0, err
	}

	total := decimal.Zero
	for _, row := range rows {
		amt := decimal.NewFromFloat(row.Amount)
		if model.TransactionType(row.Type) == model.TransactionDebit {
			total = total.Add(amt)
		} else {
			total = total.Sub(amt)
		}
	}

	f, _ := total.Float64()
	return f, nil
}
