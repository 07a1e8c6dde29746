package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gudang/internal/models"
)

// FileStore keeps the inventory and the transaction log as two independent
// JSON documents under a data directory. Every read loads a document in full
// and every write replaces it in full; each document has one writer at a
// time, guarded by its repository's mutex.
type FileStore struct {
	Inventory    *FileInventoryRepository
	Transactions *FileTransactionRepository
}

// NewFileStore creates the data directory if needed and wires a repository
// for each document. A document that does not exist yet reads as an empty
// list.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &FileStore{
		Inventory:    &FileInventoryRepository{path: filepath.Join(dir, "inventory.json")},
		Transactions: &FileTransactionRepository{path: filepath.Join(dir, "transactions.json")},
	}, nil
}

// CommitSale writes the updated inventory snapshot first and then appends
// the transaction. The two writes are not mutually transactional: if the
// transaction append fails, the inventory write is not rolled back and the
// error reports the partially applied state.
func (s *FileStore) CommitSale(inventory []models.InventoryItem, trx *models.Transaction) error {
	if err := s.Inventory.ReplaceAll(inventory); err != nil {
		return fmt.Errorf("failed to save inventory: %w", err)
	}
	if err := s.Transactions.Append(trx); err != nil {
		return fmt.Errorf("inventory saved but failed to record transaction: %w", err)
	}
	return nil
}

// FileInventoryRepository is a flat-JSON-file implementation of
// InventoryRepository.
type FileInventoryRepository struct {
	path string
	mu   sync.Mutex
}

// GetAll returns the inventory snapshot in document order.
func (r *FileInventoryRepository) GetAll() ([]models.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// ReplaceAll overwrites the entire inventory document with the given list.
func (r *FileInventoryRepository) ReplaceAll(items []models.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(items)
}

// DeleteByID removes the first entry whose id matches and persists the
// shortened list.
func (r *FileInventoryRepository) DeleteByID(id string) (*models.InventoryItem, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return nil, 0, err
	}
	for i := range items {
		if items[i].ID == id {
			removed := items[i]
			items = append(items[:i], items[i+1:]...)
			if err := r.save(items); err != nil {
				return nil, 0, err
			}
			return &removed, len(items), nil
		}
	}
	return nil, 0, ErrNotFound
}

func (r *FileInventoryRepository) load() ([]models.InventoryItem, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.InventoryItem{}, nil
		}
		return nil, fmt.Errorf("failed to read inventory document: %w", err)
	}
	items := []models.InventoryItem{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse inventory document: %w", err)
	}
	return items, nil
}

func (r *FileInventoryRepository) save(items []models.InventoryItem) error {
	if items == nil {
		items = []models.InventoryItem{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode inventory document: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write inventory document: %w", err)
	}
	return nil
}

// FileTransactionRepository is a flat-JSON-file implementation of
// TransactionRepository.
type FileTransactionRepository struct {
	path string
	mu   sync.Mutex
}

// GetAll returns all recorded transactions in append order.
func (r *FileTransactionRepository) GetAll() ([]models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Append adds one transaction to the end of the log and rewrites the
// document.
func (r *FileTransactionRepository) Append(trx *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	transactions, err := r.load()
	if err != nil {
		return err
	}
	transactions = append(transactions, *trx)

	data, err := json.MarshalIndent(transactions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode transaction document: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write transaction document: %w", err)
	}
	return nil
}

func (r *FileTransactionRepository) load() ([]models.Transaction, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Transaction{}, nil
		}
		return nil, fmt.Errorf("failed to read transaction document: %w", err)
	}
	transactions := []models.Transaction{}
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, fmt.Errorf("failed to parse transaction document: %w", err)
	}
	return transactions, nil
}
