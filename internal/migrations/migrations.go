package migrations

import (
	"context"
	"database/sql"

	"github.com/mkarimi/customer-ledger/pkg/db"
)

// driver selects the dialect-specific statements inside the Go
// migrations. goose itself only knows placeholders, not DDL differences.
var driver = db.DriverSQLite

// Run executes the startup migrations for the configured database. It must
// complete before the application serves traffic; a failure means the
// schema shape is unrecognized and is treated as fatal by the caller.
func Run(cfg db.Config) error {
	if cfg.Driver != "" {
		driver = cfg.Driver
	}
	return db.Migrate(cfg)
}

func columnExists(ctx context.Context, tx *sql.Tx, table, column string) (bool, error) {
	var query string
	switch driver {
	case db.DriverPostgres:
		query = `SELECT COUNT(*) FROM information_schema.columns WHERE table_name = $1 AND column_name = $2`
	default:
		query = `SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`
	}

	var n int
	if err := tx.QueryRowContext(ctx, query, table, column).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}
