package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gudang/internal/models"
)

// GormStore is the relational implementation of the two stores. Unlike the
// file backend, CommitSale applies the inventory snapshot and the
// transaction record in a single database transaction, so a partial sale is
// never persisted.
type GormStore struct {
	Inventory    *GORMInventoryRepository
	Transactions *GORMTransactionRepository

	db *gorm.DB
}

// NewGormStore wires the per-entity repositories around one database handle.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		Inventory:    &GORMInventoryRepository{db: db},
		Transactions: &GORMTransactionRepository{db: db},
		db:           db,
	}
}

// CommitSale replaces the inventory snapshot and records the transaction
// atomically.
func (s *GormStore) CommitSale(inventory []models.InventoryItem, trx *models.Transaction) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := replaceInventory(tx, inventory); err != nil {
			return err
		}
		if err := tx.Create(trx).Error; err != nil {
			return fmt.Errorf("failed to record transaction: %w", err)
		}
		return nil
	})
}

// replaceInventory swaps the whole inventory table for the given snapshot,
// stamping each entry with its snapshot position so listings preserve order.
func replaceInventory(tx *gorm.DB, items []models.InventoryItem) error {
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.InventoryItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear inventory: %w", err)
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].Position = i
	}
	if err := tx.Create(&items).Error; err != nil {
		return fmt.Errorf("failed to write inventory: %w", err)
	}
	return nil
}

// GORMInventoryRepository is a GORM implementation of InventoryRepository.
type GORMInventoryRepository struct {
	db *gorm.DB
}

// GetAll returns the inventory snapshot in the order it was written.
func (r *GORMInventoryRepository) GetAll() ([]models.InventoryItem, error) {
	items := []models.InventoryItem{}
	if err := r.db.Order("position").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	return items, nil
}

// ReplaceAll overwrites the entire inventory table with the given list.
func (r *GORMInventoryRepository) ReplaceAll(items []models.InventoryItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return replaceInventory(tx, items)
	})
}

// DeleteByID removes the entry with the given id.
func (r *GORMInventoryRepository) DeleteByID(id string) (*models.InventoryItem, int, error) {
	var removed models.InventoryItem
	var remaining int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&removed, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to look up product %s: %w", id, err)
		}
		if err := tx.Delete(&models.InventoryItem{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete product %s: %w", id, err)
		}
		if err := tx.Model(&models.InventoryItem{}).Count(&remaining).Error; err != nil {
			return fmt.Errorf("failed to count inventory: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return &removed, int(remaining), nil
}

// GORMTransactionRepository is a GORM implementation of
// TransactionRepository.
type GORMTransactionRepository struct {
	db *gorm.DB
}

// GetAll returns all recorded transactions in creation order.
func (r *GORMTransactionRepository) GetAll() ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	if err := r.db.Order("created_at").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// Append records one transaction.
func (r *GORMTransactionRepository) Append(trx *models.Transaction) error {
	if err := r.db.Create(trx).Error; err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}
	return nil
}
