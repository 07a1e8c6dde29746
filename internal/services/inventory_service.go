package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"gudang/internal/models"
	"gudang/internal/repositories"
)

// InventoryService handles business logic for the inventory snapshot.
type InventoryService struct {
	repo     repositories.InventoryRepository
	validate *validator.Validate
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(repo repositories.InventoryRepository) *InventoryService {
	return &InventoryService{
		repo:     repo,
		validate: validator.New(),
	}
}

// GetAllItems returns the current inventory snapshot.
func (s *InventoryService) GetAllItems() ([]models.InventoryItem, error) {
	return s.repo.GetAll()
}

// ReplaceAll overwrites the entire inventory with the given list. The batch
// is validated entry by entry and rejected as a whole when anything is
// invalid; nothing is written in that case.
func (s *InventoryService) ReplaceAll(items []models.InventoryItem) error {
	var details []string
	for i := range items {
		if err := s.validate.Struct(items[i]); err != nil {
			for _, d := range validationDetails(err) {
				details = append(details, fmt.Sprintf("item %d: %s", i, d))
			}
		}
	}
	if len(details) > 0 {
		return &ValidationError{Details: details}
	}

	if err := s.repo.ReplaceAll(items); err != nil {
		return fmt.Errorf("failed to save inventory: %w", err)
	}
	log.Info().Int("item_count", len(items)).Msg("inventory replaced")
	return nil
}

// DeleteItem removes one product by id and returns its display name and the
// number of entries left. Returns repositories.ErrNotFound when the id does
// not exist.
func (s *InventoryService) DeleteItem(id string) (string, int, error) {
	removed, remaining, err := s.repo.DeleteByID(id)
	if err != nil {
		return "", 0, err
	}
	log.Info().Str("product_id", id).Str("product", removed.Product).Msg("product deleted")
	return removed.Product, remaining, nil
}
