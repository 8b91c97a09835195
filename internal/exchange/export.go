package exchange

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"

	"github.com/shopspring/decimal"
)

// ExportCustomers renders all customers as CSV, newest first, with the
// derived balance formatted to two decimal digits. An absent phone is
// emitted as the empty string.
func (e *Exchange) ExportCustomers(ctx context.Context) ([]byte, error) {
	customers, err := e.customers.List(ctx, "")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "name", "phone", "balance"}); err != nil {
		return nil, err
	}

	for _, c := range customers {
		balance, err := e.transactions.Balance(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		phone := ""
		if c.Phone != nil {
			phone = *c.Phone
		}
		record := []string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			phone,
			money(balance),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportTransactions renders the transaction log as CSV, newest first,
// optionally scoped to one customer.
func (e *Exchange) ExportTransactions(ctx context.Context, customerID *int64) ([]byte, error) {
	txns, err := e.transactions.List(ctx, customerID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "customer_id", "amount", "type", "note", "created_at"}); err != nil {
		return nil, err
	}

	for _, txn := range txns {
		note := ""
		if txn.Note != nil {
			note = *txn.Note
		}
		record := []string{
			strconv.FormatInt(txn.ID, 10),
			strconv.FormatInt(txn.CustomerID, 10),
			money(txn.Amount),
			string(txn.Type),
			note,
			txn.CreatedAt,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
