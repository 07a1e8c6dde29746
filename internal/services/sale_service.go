package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"gudang/internal/models"
	"gudang/internal/repositories"
)

// DefaultPaymentMethod is applied when a sale request does not name one.
const DefaultPaymentMethod = "Cash"

// SaleService reconciles sale requests against the inventory snapshot and
// records the resulting transactions.
type SaleService struct {
	inventoryRepo   repositories.InventoryRepository
	transactionRepo repositories.TransactionRepository
	committer       repositories.SaleCommitter
	validate        *validator.Validate

	// mu serializes the load-compute-commit cycle; without it two
	// concurrent sales can both pass the stock check against the same
	// snapshot and the later write loses the earlier decrement.
	mu sync.Mutex
}

// NewSaleService creates a new SaleService.
func NewSaleService(inventoryRepo repositories.InventoryRepository, transactionRepo repositories.TransactionRepository, committer repositories.SaleCommitter) *SaleService {
	return &SaleService{
		inventoryRepo:   inventoryRepo,
		transactionRepo: transactionRepo,
		committer:       committer,
		validate:        validator.New(),
	}
}

// GetAllTransactions returns the recorded transaction log.
func (s *SaleService) GetAllTransactions() ([]models.Transaction, error) {
	return s.transactionRepo.GetAll()
}

// Reconcile validates a sale request against current stock, decrements the
// matched inventory entries and appends a transaction record. Every line is
// checked before anything is committed: a request where any line cannot be
// fulfilled is rejected in full and the stores are untouched.
func (s *SaleService) Reconcile(req models.SaleRequest) (*models.Transaction, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &ValidationError{Details: validationDetails(err)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inventory, err := s.inventoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	// Decrements are applied to a working copy so an inventory item matched
	// by two different sale lines accumulates both, and a rejected request
	// leaves the snapshot untouched.
	working := make([]models.InventoryItem, len(inventory))
	copy(working, inventory)

	var shortages []string
	matched := make([]int, len(req.Items))
	for i, line := range req.Items {
		idx := resolveLine(working, line)
		if idx < 0 {
			shortages = append(shortages, fmt.Sprintf("%s is not in the inventory", lineLabel(line)))
			matched[i] = -1
			continue
		}
		if working[idx].StockLeft < line.Quantity {
			shortages = append(shortages, fmt.Sprintf("Insufficient stock for %s: requested %d, available %d", working[idx].Product, line.Quantity, working[idx].StockLeft))
			matched[i] = -1
			continue
		}
		working[idx].StockLeft -= line.Quantity
		matched[i] = idx
	}
	if len(shortages) > 0 {
		return nil, &StockError{Details: shortages}
	}

	processed := make([]models.TransactionItem, 0, len(req.Items))
	var total float64
	for i, line := range req.Items {
		entry := working[matched[i]]
		// The caller's price wins over the stored cost basis, allowing
		// re-pricing at sale time.
		lineTotal := line.Price * float64(line.Quantity)
		name := line.Name
		if name == "" {
			name = entry.Product
		}
		image := line.Image
		if image == "" {
			image = entry.Image
		}
		processed = append(processed, models.TransactionItem{
			ID:       entry.ID,
			Name:     name,
			Image:    image,
			Price:    line.Price,
			Quantity: line.Quantity,
			Total:    lineTotal,
		})
		total += lineTotal
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	trx := &models.Transaction{
		ID:            newTransactionID(),
		Items:         processed,
		Customer:      req.Customer,
		PaymentMethod: paymentMethod,
		Total:         total,
		CreatedAt:     time.Now().UTC(),
		Status:        models.TransactionStatusCompleted,
	}

	if err := s.committer.CommitSale(working, trx); err != nil {
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	log.Info().
		Str("transaction_id", trx.ID).
		Str("customer", trx.Customer).
		Float64("total", trx.Total).
		Int("line_count", len(trx.Items)).
		Msg("sale reconciled")
	return trx, nil
}

// resolveLine finds the first inventory entry whose display name or id
// matches the requested line. When display names collide the earlier entry
// wins; there is no tie-break beyond first encountered.
func resolveLine(inventory []models.InventoryItem, line models.SaleLine) int {
	for i := range inventory {
		if (line.Name != "" && inventory[i].Product == line.Name) ||
			(line.ID != "" && inventory[i].ID == line.ID) {
			return i
		}
	}
	return -1
}

func lineLabel(line models.SaleLine) string {
	if line.Name != "" {
		return line.Name
	}
	if line.ID != "" {
		return line.ID
	}
	return "unnamed item"
}

// newTransactionID builds a unix-millisecond timestamp id with a random
// suffix so ids generated within the same millisecond stay distinct.
func newTransactionID() string {
	return fmt.Sprintf("TXN-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
