package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upAddCustomerPhone, downAddCustomerPhone)
}

// A customers table from before the phone field existed lacks the column;
// add it so the current code can rely on its presence.
func upAddCustomerPhone(ctx context.Context, tx *sql.Tx) error {
	exists, err := columnExists(ctx, tx, "customers", "phone")
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = tx.ExecContext(ctx, `ALTER TABLE customers ADD COLUMN phone TEXT`)
	return err
}

func downAddCustomerPhone(ctx context.Context, tx *sql.Tx) error {
	// dropping a column is not portable across sqlite versions; leave it
	return nil
}
