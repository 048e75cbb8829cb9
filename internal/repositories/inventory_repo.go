package repositories

import (
	"errors"
)

// ErrStockRejected is returned by TryDecrement when the conditional
// decrement matched no row. A missing product and insufficient stock
// both surface this way; the store does not tell them apart.
var ErrStockRejected = errors.New("stock check failed")

// InventoryRepository defines the interface for stock data access. It is
// the authority for stock movements: catalog writes go through
// ProductRepository, order processing only ever moves stock through
// TryDecrement.
type InventoryRepository interface {
	// TryDecrement atomically reduces the product's stock by quantity,
	// but only if the product exists and holds at least that much stock.
	// Returns ErrStockRejected (wrapped) when the condition fails.
	TryDecrement(productID uint, quantity int) error

	// GetStock reads the current stock for a product.
	GetStock(productID uint) (int, error)

	// InTransaction runs fn inside one unit of work. Every decrement fn
	// performs is committed together when fn returns nil, and discarded
	// together when fn returns an error.
	InTransaction(fn func(InventoryRepository) error) error
}
