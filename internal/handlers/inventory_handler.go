package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"
)

// timestamp is the RFC 3339 UTC value stamped on every success envelope.
func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// InventoryHandler handles HTTP requests for the inventory snapshot.
type InventoryHandler struct {
	service *services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		service: service,
	}
}

// RegisterRoutes registers the inventory routes with the Fiber app.
func (h *InventoryHandler) RegisterRoutes(router fiber.Router) {
	inventoryRoutes := router.Group("/inventory")
	inventoryRoutes.Get("/", h.HandleList)
	inventoryRoutes.Post("/", h.HandleReplace)
	inventoryRoutes.Put("/", h.HandleReplace)
	inventoryRoutes.Delete("/", h.HandleDelete)
	inventoryRoutes.Delete("/:id", h.HandleDelete)
}

// HandleList returns the full inventory snapshot.
func (h *InventoryHandler) HandleList(c *fiber.Ctx) error {
	items, err := h.service.GetAllItems()
	if err != nil {
		log.Error().Err(err).Msg("failed to list inventory")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load inventory",
		})
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"data":      items,
		"itemCount": len(items),
		"timestamp": timestamp(),
	})
}

// HandleReplace overwrites the whole inventory with the posted list. There
// are no per-item patch semantics; the body is the new snapshot.
func (h *InventoryHandler) HandleReplace(c *fiber.Ctx) error {
	var items []models.InventoryItem
	if err := c.BodyParser(&items); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid inventory format",
		})
	}

	if err := h.service.ReplaceAll(items); err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid inventory format",
				"details": verr.Details,
			})
		}
		log.Error().Err(err).Msg("failed to replace inventory")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save inventory",
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Inventory updated successfully",
		"itemCount": len(items),
		"timestamp": timestamp(),
	})
}

// HandleDelete removes one product by id, taken from the path or the query
// string.
func (h *InventoryHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		id = c.Query("id")
	}
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Product id is required",
		})
	}

	name, remaining, err := h.service.DeleteItem(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Product not found",
			})
		}
		log.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save inventory",
		})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"message":        fmt.Sprintf("%s removed from inventory", name),
		"deletedProduct": name,
		"itemCount":      remaining,
		"timestamp":      timestamp(),
	})
}
