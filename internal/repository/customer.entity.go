package repository

import (
	"github.com/mkarimi/customer-ledger/internal/model"
)

// CustomerEntity mirrors the current customers schema. A legacy deployment
// may still carry an ignored amount column; it is never mapped here.
type CustomerEntity struct {
	ID    int64   `db:"id"    gorm:"primaryKey;autoIncrement;column:id"`
	Name  string  `db:"name"  gorm:"column:name;not null"`
	Phone *string `db:"phone" gorm:"column:phone"`
}

func (CustomerEntity) TableName() string {
	return "customers"
}

func toCustomerEntity(m *model.Customer) *CustomerEntity {
	if m == nil {
		return nil
	}
	return &CustomerEntity{
		ID:    m.ID,
		Name:  m.Name,
		Phone: m.Phone,
	}
}

func toCustomerModel(e *CustomerEntity) *model.Customer {
	if e == nil {
		return nil
	}
	return &model.Customer{
		ID:    e.ID,
		Name:  e.Name,
		Phone: e.Phone,
	}
}

func toCustomerModels(entities []*CustomerEntity) []*model.Customer {
	if entities == nil {
		return nil
	}
	models := make([]*model.Customer, len(entities))
	for i, e := range entities {
		models[i] = toCustomerModel(e)
	}
	return models
}
