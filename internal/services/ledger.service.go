package services

import (
	"context"

	"github.com/mkarimi/customer-ledger/internal/model"
	"github.com/mkarimi/customer-ledger/internal/repository"
	"github.com/mkarimi/customer-ledger/pkg/prom"
)

var (
	ErrAuthRequired = model.ErrAuthRequired
	ErrNameRequired = model.ErrNameRequired
	ErrNotFound     = repository.ErrCustomerNotFound
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, query string) ([]*model.Customer, error)
	Get(ctx context.Context, id int64) (*model.Customer, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, txn *model.Transaction) (*model.Transaction, error)
	List(ctx context.Context, customerID *int64) ([]*model.Transaction, error)
	Balance(ctx context.Context, customerID int64) (float64, error)
}

// LedgerService owns validation and the admin gate. Reads are open;
// every mutation requires an authenticated capability before any write.
type LedgerService struct {
	customerRepo    CustomerRepository
	transactionRepo TransactionRepository
}

func NewLedgerService(customerRepo CustomerRepository, transactionRepo TransactionRepository) *LedgerService {
	return &LedgerService{
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
	}
}

func (s *LedgerService) CreateCustomer(ctx context.Context, auth model.Auth, p model.CustomerCreateRequest) (*model.Customer, error) {
	if !auth.Authenticated() {
		return nil, ErrAuthRequired
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	name, phone := p.Normalized()
	created, err := s.customerRepo.Create(ctx, &model.Customer{Name: name, Phone: phone})
	if err != nil {
		return nil, err
	}

	prom.IncCounter(prom.SystemLedger, prom.MetricCustomersCreated)
	return created, nil
}

func (s *LedgerService) DeleteCustomer(ctx context.Context, auth model.Auth, id int64) error {
	if !auth.Authenticated() {
		return ErrAuthRequired
	}
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}
	prom.IncCounter(prom.SystemLedger, prom.MetricCustomersDeleted)
	return nil
}

// ListCustomers returns customers newest first with balances derived from
// the transaction log.
func (s *LedgerService) ListCustomers(ctx context.Context, query string) ([]*model.Customer, error) {
	customers, err := s.customerRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		balance, err := s.transactionRepo.Balance(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		c.Balance = balance
	}
	return customers, nil
}

// GetCustomer returns the customer with its derived balance and its
// transaction history, newest first.
func (s *LedgerService) GetCustomer(ctx context.Context, id int64) (*model.Customer, []*model.Transaction, error) {
	customer, err := s.customerRepo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	balance, err := s.transactionRepo.Balance(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	customer.Balance = balance

	txns, err := s.transactionRepo.List(ctx, &id)
	if err != nil {
		return nil, nil, err
	}
	return customer, txns, nil
}

func (s *LedgerService) AppendTransaction(ctx context.Context, auth model.Auth, p model.TransactionCreateRequest) (*model.Transaction, error) {
	if !auth.Authenticated() {
		return nil, ErrAuthRequired
	}

	created, err := s.transactionRepo.Create(ctx, p.Normalized())
	if err != nil {
		return nil, err
	}

	prom.IncCounter(prom.SystemLedger, prom.MetricTransactionsCreated)
	return created, nil
}

func (s *LedgerService) Balance(ctx context.Context, customerID int64) (float64, error) {
	return s.transactionRepo.Balance(ctx, customerID)
}
