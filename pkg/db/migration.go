package db

import (
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

// Migrate runs all registered goose Go migrations against the configured
// database. A migration failure is fatal: the caller must not serve traffic
// against an unrecognized schema shape.
func Migrate(cfg Config) error {
	dialect := "sqlite3"
	if cfg.Driver == DriverPostgres {
		dialect = "postgres"
	}
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	conn, err := newSqlConnection(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	return goose.Up(conn, ".")
}
