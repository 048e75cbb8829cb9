package handlers

import (
	"errors"
	"fmt"
	"log"

	"ecoshop/internal/models"
	"ecoshop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for order processing.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/process-order", h.HandleProcessOrder)
}

// HandleProcessOrder applies a whole order against the inventory. The
// caller always gets a definitive outcome for the order as a unit; there
// is no partially-applied response shape.
func (h *OrderHandler) HandleProcessOrder(c *fiber.Ctx) error {
	var req models.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing process-order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body.",
		})
	}

	if err := h.service.ProcessOrder(req.OrderItems); err != nil {
		log.Printf("Error processing order: %v", err)

		var rejected *services.StockRejectedError
		if errors.As(err, &rejected) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": fmt.Sprintf("Stock check failed for item ID %d. Not enough stock available.", rejected.ProductID),
			})
		}

		var storage *services.StorageError
		if errors.As(err, &storage) {
			message := "Database error updating stock: " + storage.Err.Error()
			if storage.Op == "commit" {
				message = "Commit error: " + storage.Err.Error()
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": message,
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Database error.",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order processed and stock updated successfully.",
	})
}
