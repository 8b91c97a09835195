package repository

import (
	"context"
	"testing"

	"github.com/mkarimi/customer-ledger/pkg/db"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	cfg := db.Config{Driver: db.DriverSQLite, Path: ":memory:"}
	d, err := db.CreateReadWrite(cfg, cfg, false)
	require.NoError(t, err)

	err = d.Write(context.Background()).AutoMigrate(&CustomerEntity{}, &TransactionEntity{})
	require.NoError(t, err)

	return d
}
