package handlers

import (
	"errors"
	"log"

	"ecoshop/internal/models"
	"ecoshop/internal/repositories"
	"ecoshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
// Listing is public; mutations go through the auth middleware.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/products", h.HandleGetProducts)
	router.Post("/add-product", auth, h.HandleAddProduct)
	router.Post("/edit-product", auth, h.HandleEditProduct)
	router.Delete("/remove-product/:id", auth, h.HandleRemoveProduct)
}

// HandleGetProducts returns the whole catalog, ordered by name.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Database error.",
		})
	}
	return c.JSON(products)
}

// HandleAddProduct inserts a new catalog record and returns its ID.
func (h *ProductHandler) HandleAddProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing add-product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body.",
		})
	}

	if err := h.validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Missing required fields.",
		})
	}

	id, err := h.service.CreateProduct(&product)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Database error: " + err.Error(),
		})
	}

	log.Printf("Product %d added by %v (%v)", id, c.Locals("username"), c.Locals("role"))
	return c.JSON(fiber.Map{
		"success": true,
		"id":      id,
	})
}

// HandleEditProduct overwrites an existing catalog record in full.
func (h *ProductHandler) HandleEditProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing edit-product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body.",
		})
	}

	if product.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Missing required fields.",
		})
	}
	if err := h.validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Missing required fields.",
		})
	}

	if err := h.service.UpdateProduct(&product); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Product not found.",
			})
		}
		log.Printf("Error updating product %d: %v", product.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Database error: " + err.Error(),
		})
	}

	log.Printf("Product %d edited by %v (%v)", product.ID, c.Locals("username"), c.Locals("role"))
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product updated successfully!",
	})
}

// HandleRemoveProduct deletes a catalog record. Removing a missing id is
// not an error; the response carries how many rows changed.
func (h *ProductHandler) HandleRemoveProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid product id.",
		})
	}

	changes, err := h.service.DeleteProduct(uint(id))
	if err != nil {
		log.Printf("Error deleting product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Database error.",
		})
	}

	log.Printf("Product %d removed by %v (%v), %d row(s) changed", id, c.Locals("username"), c.Locals("role"), changes)
	return c.JSON(fiber.Map{
		"success": true,
		"changes": changes,
	})
}
