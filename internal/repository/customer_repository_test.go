package repository

import (
	"context"
	"testing"

	"github.com/mkarimi/customer-ledger/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestCustomerRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("assigns an id", func(t *testing.T) {
		created, err := repo.Create(ctx, &model.Customer{Name: "Asha"})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Asha", created.Name)
		assert.Nil(t, created.Phone)
	})

	t.Run("stores optional phone", func(t *testing.T) {
		created, err := repo.Create(ctx, &model.Customer{Name: "Bob", Phone: strptr("555-1234")})
		require.NoError(t, err)

		got, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Phone)
		assert.Equal(t, "555-1234", *got.Phone)
	})
}

func TestCustomerRepository_Get(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		_, err := repo.Get(ctx, 999)
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})
}

func TestCustomerRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	first, err := repo.Create(ctx, &model.Customer{Name: "Asha"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, &model.Customer{Name: "Bob", Phone: strptr("555-1234")})
	require.NoError(t, err)
	third, err := repo.Create(ctx, &model.Customer{Name: "Carla", Phone: strptr("777-0000")})
	require.NoError(t, err)

	t.Run("orders newest first", func(t *testing.T) {
		customers, err := repo.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, customers, 3)
		assert.Equal(t, third.ID, customers[0].ID)
		assert.Equal(t, second.ID, customers[1].ID)
		assert.Equal(t, first.ID, customers[2].ID)
	})

	t.Run("filters by name substring", func(t *testing.T) {
		customers, err := repo.List(ctx, "sha")
		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, "Asha", customers[0].Name)
	})

	t.Run("filters by phone substring", func(t *testing.T) {
		customers, err := repo.List(ctx, "555")
		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, "Bob", customers[0].Name)
	})

	t.Run("no match", func(t *testing.T) {
		customers, err := repo.List(ctx, "zzz")
		require.NoError(t, err)
		assert.Empty(t, customers)
	})
}

func TestCustomerRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)
	txnRepo := NewTransactionRepository(db)
	ctx := context.Background()

	t.Run("cascades to transactions", func(t *testing.T) {
		customer, err := repo.Create(ctx, &model.Customer{Name: "Asha"})
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			_, err = txnRepo.Create(ctx, &model.Transaction{
				CustomerID: customer.ID,
				Amount:     10,
				Type:       model.TransactionDebit,
			})
			require.NoError(t, err)
		}

		err = repo.Delete(ctx, customer.ID)
		require.NoError(t, err)

		_, err = repo.Get(ctx, customer.ID)
		assert.ErrorIs(t, err, ErrCustomerNotFound)

		txns, err := txnRepo.List(ctx, &customer.ID)
		require.NoError(t, err)
		assert.Empty(t, txns)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		err := repo.Delete(ctx, 424242)
		assert.NoError(t, err)
	})
}
