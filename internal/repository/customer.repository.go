package repository

import (
	"context"
	"errors"

	"github.com/mkarimi/customer-ledger/internal/model"
	"github.com/mkarimi/customer-ledger/pkg/db"
	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
)

type CustomerRepository struct {
	*db.DB
}

func NewCustomerRepository(db *db.DB) *CustomerRepository {
	return &CustomerRepository{
		db,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	entity := toCustomerEntity(customer)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toCustomerModel(entity), nil
}

// Delete removes the customer and every transaction referencing it inside
// one storage transaction. Deleting an unknown id is a no-op.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	return r.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := r.Write(ctx).
			Where("customer_id = ?", id).
			Delete(&TransactionEntity{}).
			Error; err != nil {
			return err
		}
		return r.Write(ctx).
			Where("id = ?", id).
			Delete(&CustomerEntity{}).
			Error
	})
}

// List returns customers newest first, optionally filtered to those whose
// name or phone contains the query substring. Balances are not filled here;
// they are derived from the transaction log by the caller.
func (r *CustomerRepository) List(ctx context.Context, query string) ([]*model.Customer, error) {
	q := r.Read(ctx).Model(&CustomerEntity{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("name LIKE ? OR phone LIKE ?", like, like)
	}

	var entities []*CustomerEntity
	if err := q.Order("id DESC").Find(&entities).Error; err != nil {
		return nil, err
	}

	return toCustomerModels(entities), nil
}

func (r *CustomerRepository) Get(ctx context.Context, id int64) (*model.Customer, error) {
	var entity CustomerEntity
	err := r.Read(ctx).
		Where("id = ?", id).
		First(&entity).
		Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	return toCustomerModel(&entity), nil
}
