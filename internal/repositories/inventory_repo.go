package repositories

import (
	"errors"

	"gudang/internal/models"
)

// ErrNotFound is returned when a lookup by id matches nothing.
var ErrNotFound = errors.New("not found")

// InventoryRepository defines the interface for inventory data access.
// The inventory is read and replaced as a whole snapshot; implementations
// must preserve entry order across a round trip.
type InventoryRepository interface {
	GetAll() ([]models.InventoryItem, error)
	ReplaceAll(items []models.InventoryItem) error
	// DeleteByID removes the first entry with the given id and returns it
	// along with the number of entries left. Returns ErrNotFound when no
	// entry matches.
	DeleteByID(id string) (*models.InventoryItem, int, error)
}
