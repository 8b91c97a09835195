package repository

import (
	"context"
	"testing"

	"github.com/mkarimi/customer-ledger/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	t.Run("normalizes negative amounts", func(t *testing.T) {
		created, err := repo.Create(ctx, &model.Transaction{
			CustomerID: 1,
			Amount:     -50,
			Type:       model.TransactionCredit,
		})
		require.NoError(t, err)
		assert.Equal(t, 50.0, created.Amount)
		assert.Equal(t, model.TransactionCredit, created.Type)
	})

	t.Run("coerces unknown type to debit", func(t *testing.T) {
		created, err := repo.Create(ctx, &model.Transaction{
			CustomerID: 1,
			Amount:     10,
			Type:       "refund",
		})
		require.NoError(t, err)
		assert.Equal(t, model.TransactionDebit, created.Type)
	})

	t.Run("defaults created_at", func(t *testing.T) {
		created, err := repo.Create(ctx, &model.Transaction{
			CustomerID: 1,
			Amount:     10,
			Type:       model.TransactionDebit,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.CreatedAt)
	})

	t.Run("preserves supplied created_at", func(t *testing.T) {
		created, err := repo.Create(ctx, &model.Transaction{
			CustomerID: 1,
			Amount:     10,
			Type:       model.TransactionDebit,
			CreatedAt:  "2024-01-01T00:00:00.000000Z",
		})
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01T00:00:00.000000Z", created.CreatedAt)
	})
}

func TestTransactionRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	mk := func(customerID int64, amount float64, createdAt string) {
		t.Helper()
		_, err := repo.Create(ctx, &model.Transaction{
			CustomerID: customerID,
			Amount:     amount,
			Type:       model.TransactionDebit,
			CreatedAt:  createdAt,
		})
		require.NoError(t, err)
	}

	mk(1, 10, "2024-01-02T00:00:00.000000Z")
	mk(1, 20, "2024-01-03T00:00:00.000000Z")
	mk(1, 30, "2024-01-01T00:00:00.000000Z")
	mk(2, 40, "2024-01-04T00:00:00.000000Z")

	t.Run("newest first", func(t *testing.T) {
		txns, err := repo.List(ctx, nil)
		require.NoError(t, err)
		require.Len(t, txns, 4)
		assert.Equal(t, 40.0, txns[0].Amount)
		assert.Equal(t, 20.0, txns[1].Amount)
		assert.Equal(t, 10.0, txns[2].Amount)
		assert.Equal(t, 30.0, txns[3].Amount)
	})

	t.Run("scoped to one customer", func(t *testing.T) {
		one := int64(1)
		txns, err := repo.List(ctx, &one)
		require.NoError(t, err)
		require.Len(t, txns, 3)
		for _, txn := range txns {
			assert.Equal(t, int64(1), txn.CustomerID)
		}
	})
}

func TestTransactionRepository_Balance(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	t.Run("zero for no transactions", func(t *testing.T) {
		balance, err := repo.Balance(ctx, 12345)
		require.NoError(t, err)
		assert.Equal(t, 0.0, balance)
	})

	t.Run("debits add, credits subtract", func(t *testing.T) {
		_, err := repo.Create(ctx, &model.Transaction{CustomerID: 1, Amount: 100, Type: model.TransactionDebit})
		require.NoError(t, err)
		_, err = repo.Create(ctx, &model.Transaction{CustomerID: 1, Amount: 30, Type: model.TransactionCredit})
		require.NoError(t, err)

		balance, err := repo.Balance(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 70.0, balance)
	})

	t.Run("independent of insertion order", func(t *testing.T) {
		amounts := []struct {
			amount float64
			typ    model.TransactionType
		}{
			{5, model.TransactionCredit},
			{50, model.TransactionDebit},
			{20, model.TransactionCredit},
			{10, model.TransactionDebit},
		}
		for _, a := range amounts {
			_, err := repo.Create(ctx, &model.Transaction{CustomerID: 2, Amount: a.amount, Type: a.typ})
			require.NoError(t, err)
		}

		balance, err := repo.Balance(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 35.0, balance)
	})

	t.Run("cents stay exact", func(t *testing.T) {
		_, err := repo.Create(ctx, &model.Transaction{CustomerID: 3, Amount: 0.1, Type: model.TransactionDebit})
		require.NoError(t, err)
		_, err = repo.Create(ctx, &model.Transaction{CustomerID: 3, Amount: 0.2, Type: model.TransactionDebit})
		require.NoError(t, err)

		balance, err := repo.Balance(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, 0.3, balance)
	})

	t.Run("negative balance when credits exceed debits", func(t *testing.T) {
		_, err := repo.Create(ctx, &model.Transaction{CustomerID: 4, Amount: 80, Type: model.TransactionCredit})
		require.NoError(t, err)

		balance, err := repo.Balance(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, -80.0, balance)
	})
}
