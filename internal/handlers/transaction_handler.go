package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"gudang/internal/models"
	"gudang/internal/services"
)

// TransactionHandler handles HTTP requests for the transaction log and the
// sale reconciliation operation.
type TransactionHandler struct {
	service *services.SaleService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(service *services.SaleService) *TransactionHandler {
	return &TransactionHandler{
		service: service,
	}
}

// RegisterRoutes registers the transaction routes with the Fiber app.
func (h *TransactionHandler) RegisterRoutes(router fiber.Router) {
	transactionRoutes := router.Group("/transactions")
	transactionRoutes.Get("/", h.HandleList)
	transactionRoutes.Post("/", h.HandleCreate)
}

// HandleList returns the recorded transaction log.
func (h *TransactionHandler) HandleList(c *fiber.Ctx) error {
	transactions, err := h.service.GetAllTransactions()
	if err != nil {
		log.Error().Err(err).Msg("failed to list transactions")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load transactions",
		})
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"data":      transactions,
		"count":     len(transactions),
		"timestamp": timestamp(),
	})
}

// HandleCreate reconciles a sale request: all line items are applied against
// current stock, or none are.
func (h *TransactionHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.SaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid sale format",
		})
	}

	trx, err := h.service.Reconcile(req)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid sale format",
				"details": verr.Details,
			})
		}
		var serr *services.StockError
		if errors.As(err, &serr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Insufficient stock",
				"details": serr.Details,
			})
		}
		log.Error().Err(err).Str("customer", req.Customer).Msg("failed to reconcile sale")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save sale",
		})
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"message":          "Sale recorded successfully",
		"transaction":      trx,
		"inventoryUpdated": true,
		"timestamp":        timestamp(),
	})
}
