package migrations

import (
	"context"
	"database/sql"

	"github.com/mkarimi/customer-ledger/pkg/db"
	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateTables, downCreateTables)
}

func upCreateTables(ctx context.Context, tx *sql.Tx) error {
	var stmts []string
	switch driver {
	case db.DriverPostgres:
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS customers (
				id BIGSERIAL PRIMARY KEY,
				name TEXT NOT NULL,
				phone TEXT
			)`,
			`CREATE TABLE IF NOT EXISTS transactions (
				id BIGSERIAL PRIMARY KEY,
				customer_id BIGINT NOT NULL,
				amount DOUBLE PRECISION NOT NULL,
				type TEXT NOT NULL,
				note TEXT,
				created_at TEXT NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_transactions_customer_id ON transactions (customer_id)`,
		}
	default:
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS customers (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				phone TEXT
			)`,
			`CREATE TABLE IF NOT EXISTS transactions (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				customer_id INTEGER NOT NULL,
				amount REAL NOT NULL,
				type TEXT NOT NULL,
				note TEXT,
				created_at TEXT NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_transactions_customer_id ON transactions (customer_id)`,
		}
	}

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func downCreateTables(ctx context.Context, tx *sql.Tx) error {
	for _, stmt := range []string{
		`DROP TABLE IF EXISTS transactions`,
		`DROP TABLE IF EXISTS customers`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
