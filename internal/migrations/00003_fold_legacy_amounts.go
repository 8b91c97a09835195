package migrations

import (
	"context"
	"database/sql"
	"math"

	"github.com/mkarimi/customer-ledger/internal/model"
	"github.com/mkarimi/customer-ledger/pkg/db"
	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upFoldLegacyAmounts, downFoldLegacyAmounts)
}

// The legacy schema stored a single mutable amount per customer instead of
// a transaction log. Fold each non-null non-zero value into one synthetic
// transaction (debit if positive, credit if negative, note "migrated").
// The column itself stays in place and is never read again.
func upFoldLegacyAmounts(ctx context.Context, tx *sql.Tx) error {
	exists, err := columnExists(ctx, tx, "customers", "amount")
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	rows, err := tx.QueryContext(ctx, `SELECT id, amount FROM customers WHERE amount IS NOT NULL AND amount != 0`)
	if err != nil {
		return err
	}
	defer rows.Close()

	type legacyRow struct {
		id     int64
		amount float64
	}
	var legacy []legacyRow
	for rows.Next() {
		var r legacyRow
		if err := rows.Scan(&r.id, &r.amount); err != nil {
			return err
		}
		legacy = append(legacy, r)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	insert := `INSERT INTO transactions (customer_id, amount, type, note, created_at) VALUES (?, ?, ?, ?, ?)`
	if driver == db.DriverPostgres {
		insert = `INSERT INTO transactions (customer_id, amount, type, note, created_at) VALUES ($1, $2, $3, $4, $5)`
	}

	for _, r := range legacy {
		ttype := model.TransactionDebit
		if r.amount < 0 {
			ttype = model.TransactionCredit
		}
		_, err := tx.ExecContext(ctx, insert,
			r.id, math.Abs(r.amount), string(ttype), "migrated", model.NowUTC())
		if err != nil {
			return err
		}
	}
	return nil
}

func downFoldLegacyAmounts(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE note = 'migrated'`)
	return err
}
