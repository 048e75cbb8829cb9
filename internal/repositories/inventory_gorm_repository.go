package repositories

import (
	"errors"
	"fmt"

	"ecoshop/internal/models"

	"gorm.io/gorm"
)

// GORMInventoryRepository is a GORM implementation of InventoryRepository.
// The conditional decrement is a single UPDATE whose WHERE clause carries
// the stock check, so check-and-decrement is atomic with respect to
// concurrent writers on the same row.
type GORMInventoryRepository struct {
	db *gorm.DB
}

// NewGORMInventoryRepository creates a new instance of GORMInventoryRepository.
func NewGORMInventoryRepository(db *gorm.DB) *GORMInventoryRepository {
	return &GORMInventoryRepository{
		db: db,
	}
}

// TryDecrement reduces stock_quantity by quantity only if the row exists
// and holds at least quantity. Zero affected rows means the condition
// failed; missing product and insufficient stock are indistinguishable.
func (r *GORMInventoryRepository) TryDecrement(productID uint, quantity int) error {
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND stock_quantity >= ?", productID, quantity).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if res.Error != nil {
		return fmt.Errorf("failed to decrement stock for product %d: %w", productID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", productID, ErrStockRejected)
	}
	return nil
}

// GetStock reads the current stock_quantity for a product.
func (r *GORMInventoryRepository) GetStock(productID uint) (int, error) {
	var product models.Product
	if err := r.db.Select("stock_quantity").First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("product with ID %d: %w", productID, ErrProductNotFound)
		}
		return 0, fmt.Errorf("failed to get stock for product %d: %w", productID, err)
	}
	return product.StockQuantity, nil
}

// InTransaction runs fn inside a database transaction. GORM rolls the
// transaction back when fn returns an error and commits it otherwise, so
// all decrements made through the repository passed to fn land or vanish
// as one unit.
func (r *GORMInventoryRepository) InTransaction(fn func(InventoryRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GORMInventoryRepository{db: tx})
	})
}
