package repositories

import (
	"errors"

	"ecoshop/internal/models"
)

// ErrProductNotFound is returned when a product id does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	// Delete reports how many rows were removed; deleting a missing
	// id is not an error.
	Delete(id uint) (int64, error)
}
