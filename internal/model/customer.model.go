package model

import (
	"errors"
	"strings"
)

var ErrNameRequired = errors.New("name is required")

type Customer struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	// Balance is derived from the transaction log on read. There is no
	// stored balance column; the log is the single source of truth.
	Balance float64 `json:"balance"`
}

func (Customer) TableName() string { return "customers" }

// CustomerCreateRequest is the input for creating a customer.
type CustomerCreateRequest struct {
	Name  string
	Phone string
}

func (p CustomerCreateRequest) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

// Normalized returns the trimmed name and the phone as nil when empty.
func (p CustomerCreateRequest) Normalized() (string, *string) {
	name := strings.TrimSpace(p.Name)
	phone := strings.TrimSpace(p.Phone)
	if phone == "" {
		return name, nil
	}
	return name, &phone
}
