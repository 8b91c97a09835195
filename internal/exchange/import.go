package exchange

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/mkarimi/customer-ledger/internal/model"
	"github.com/mkarimi/customer-ledger/pkg/prom"
)

type rowKind int

const (
	kindNone rowKind = iota
	kindCustomer
	kindTransaction
)

// Import ingests an uploaded CSV file. The row shape is decided once from
// the header: a "name" field means customer rows, otherwise
// "customer_id"+"amount" means transaction rows, otherwise nothing is
// imported. Rows that fail to parse are dropped silently; the surviving
// rows are committed in a single storage transaction and their count
// returned.
func (e *Exchange) Import(ctx context.Context, auth model.Auth, r io.Reader) (int, error) {
	if !auth.Authenticated() {
		return 0, model.ErrAuthRequired
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, err
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[strings.TrimSpace(name)] = i
	}

	kind := kindNone
	if _, ok := columns["name"]; ok {
		kind = kindCustomer
	} else if _, ok := columns["customer_id"]; ok {
		if _, ok := columns["amount"]; ok {
			kind = kindTransaction
		}
	}
	if kind == kindNone {
		return 0, nil
	}

	var customers []*model.Customer
	var txns []*model.Transaction

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// malformed row, keep going
			continue
		}

		switch kind {
		case kindCustomer:
			if c := parseCustomerRow(columns, record); c != nil {
				customers = append(customers, c)
			}
		case kindTransaction:
			if t := parseTransactionRow(columns, record); t != nil {
				txns = append(txns, t)
			}
		}
	}

	count := 0
	err = e.runner.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, c := range customers {
			if _, err := e.customers.Create(ctx, c); err != nil {
				return err
			}
			count++
		}
		for _, t := range txns {
			if _, err := e.transactions.Create(ctx, t); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	prom.AddCounter(prom.SystemLedger, prom.MetricImportedRows, float64(count))
	return count, nil
}

func parseCustomerRow(columns map[string]int, record []string) *model.Customer {
	name := strings.TrimSpace(field(columns, record, "name"))
	if name == "" {
		return nil
	}
	var phone *string
	if p := strings.TrimSpace(field(columns, record, "phone")); p != "" {
		phone = &p
	}
	return &model.Customer{Name: name, Phone: phone}
}

func parseTransactionRow(columns map[string]int, record []string) *model.Transaction {
	customerID, err := strconv.ParseInt(strings.TrimSpace(field(columns, record, "customer_id")), 10, 64)
	if err != nil {
		return nil
	}

	amount := 0.0
	if raw := strings.TrimSpace(field(columns, record, "amount")); raw != "" {
		amount, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil
		}
	}

	return model.TransactionCreateRequest{
		CustomerID: customerID,
		Amount:     amount,
		Type:       field(columns, record, "type"),
		Note:       field(columns, record, "note"),
		CreatedAt:  strings.TrimSpace(field(columns, record, "created_at")),
	}.Normalized()
}

func field(columns map[string]int, record []string, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
