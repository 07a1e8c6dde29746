package repositories

import (
	"gudang/internal/models"
)

// TransactionRepository defines the interface for the append-only
// transaction log.
type TransactionRepository interface {
	GetAll() ([]models.Transaction, error)
	Append(trx *models.Transaction) error
}

// SaleCommitter persists the post-sale inventory snapshot together with the
// transaction produced by a reconciled sale. Whether the two writes are
// atomic with respect to each other depends on the backend.
type SaleCommitter interface {
	CommitSale(inventory []models.InventoryItem, trx *models.Transaction) error
}
