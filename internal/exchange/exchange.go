package exchange

import (
	"context"

	"github.com/mkarimi/customer-ledger/internal/model"
)

type CustomerStore interface {
	Create(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	List(ctx context.Context, query string) ([]*model.Customer, error)
}

type TransactionStore interface {
	Create(ctx context.Context, txn *model.Transaction) (*model.Transaction, error)
	List(ctx context.Context, customerID *int64) ([]*model.Transaction, error)
	Balance(ctx context.Context, customerID int64) (float64, error)
}

type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Exchange serializes ledger entities to CSV and ingests CSV rows back
// into the store.
type Exchange struct {
	customers    CustomerStore
	transactions TransactionStore
	runner       TxRunner
}

func NewExchange(customers CustomerStore, transactions TransactionStore, runner TxRunner) *Exchange {
	return &Exchange{
		customers:    customers,
		transactions: transactions,
		runner:       runner,
	}
}
