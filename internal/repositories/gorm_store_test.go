package repositories_test

import (
	"testing"
	"time"

	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGormStore(t *testing.T) *repositories.GormStore {
	t.Helper()
	db, err := database.Open("sqlite", ":memory:")
	require.NoError(t, err)
	return repositories.NewGormStore(db)
}

func TestGormStore_InventoryRoundTripPreservesOrder(t *testing.T) {
	store := newGormStore(t)

	require.NoError(t, store.Inventory.ReplaceAll(sampleInventory()))

	items, err := store.Inventory.GetAll()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, "p2", items[1].ID)
	assert.Equal(t, "p3", items[2].ID)
	assert.Equal(t, "nut.png", items[1].Image)
}

func TestGormStore_ReplaceOverwritesWholesale(t *testing.T) {
	store := newGormStore(t)

	require.NoError(t, store.Inventory.ReplaceAll(sampleInventory()))
	require.NoError(t, store.Inventory.ReplaceAll([]models.InventoryItem{
		{ID: "p9", Product: "Screw", UnitCost: 3, StockLeft: 7},
	}))

	items, err := store.Inventory.GetAll()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p9", items[0].ID)
}

func TestGormStore_DeleteByID(t *testing.T) {
	store := newGormStore(t)
	require.NoError(t, store.Inventory.ReplaceAll(sampleInventory()))

	removed, remaining, err := store.Inventory.DeleteByID("p2")
	require.NoError(t, err)
	assert.Equal(t, "Nut", removed.Product)
	assert.Equal(t, 2, remaining)

	_, _, err = store.Inventory.DeleteByID("p2")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGormStore_TransactionRoundTrip(t *testing.T) {
	store := newGormStore(t)

	trx := &models.Transaction{
		ID:            "TXN-1",
		Customer:      "Ada",
		PaymentMethod: "Cash",
		Total:         60,
		CreatedAt:     time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Status:        models.TransactionStatusCompleted,
		Items:         []models.TransactionItem{{ID: "p1", Name: "Bolt", Price: 20, Quantity: 3, Total: 60}},
	}
	require.NoError(t, store.Transactions.Append(trx))

	transactions, err := store.Transactions.GetAll()
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "TXN-1", transactions[0].ID)
	// Line items survive the serialized column.
	require.Len(t, transactions[0].Items, 1)
	assert.Equal(t, "Bolt", transactions[0].Items[0].Name)
	assert.Equal(t, 60.0, transactions[0].Items[0].Total)
}

func TestGormStore_CommitSaleIsAtomic(t *testing.T) {
	store := newGormStore(t)
	require.NoError(t, store.Inventory.ReplaceAll(sampleInventory()))

	// Occupy the transaction id so the insert inside CommitSale violates
	// the primary key and the whole commit rolls back.
	require.NoError(t, store.Transactions.Append(&models.Transaction{ID: "TXN-DUP", Customer: "Grace"}))

	updated := sampleInventory()
	updated[0].StockLeft = 2
	err := store.CommitSale(updated, &models.Transaction{ID: "TXN-DUP", Customer: "Ada"})
	assert.Error(t, err)

	// Unlike the file backend, the inventory write is rolled back too.
	items, err := store.Inventory.GetAll()
	require.NoError(t, err)
	assert.Equal(t, 5, items[0].StockLeft)

	transactions, err := store.Transactions.GetAll()
	require.NoError(t, err)
	assert.Len(t, transactions, 1)
}

func TestGormStore_CommitSaleSuccess(t *testing.T) {
	store := newGormStore(t)
	require.NoError(t, store.Inventory.ReplaceAll(sampleInventory()))

	updated := sampleInventory()
	updated[0].StockLeft = 2
	require.NoError(t, store.CommitSale(updated, &models.Transaction{ID: "TXN-1", Customer: "Ada", Total: 60}))

	items, err := store.Inventory.GetAll()
	require.NoError(t, err)
	assert.Equal(t, 2, items[0].StockLeft)

	transactions, err := store.Transactions.GetAll()
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "TXN-1", transactions[0].ID)
}
