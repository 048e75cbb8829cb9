package repositories

import (
	"fmt"
	"sync"
)

// MockInventoryRepository is an in-memory implementation of
// InventoryRepository. A single mutex is held for the whole of
// InTransaction, so units of work are fully serialized; decrements made
// inside one are staged in an overlay and only merged into the shared
// stock map when the unit commits.
type MockInventoryRepository struct {
	stock map[uint]int
	mu    sync.Mutex
}

// NewMockInventoryRepository creates a new instance of MockInventoryRepository.
func NewMockInventoryRepository() *MockInventoryRepository {
	return &MockInventoryRepository{
		stock: make(map[uint]int),
	}
}

// SetStock sets the stock level for a product, creating it if needed.
func (r *MockInventoryRepository) SetStock(productID uint, quantity int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stock[productID] = quantity
}

// TryDecrement applies a single conditional decrement outside any
// surrounding unit of work.
func (r *MockInventoryRepository) TryDecrement(productID uint, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.stock[productID]
	if !ok || current < quantity {
		return fmt.Errorf("product %d: %w", productID, ErrStockRejected)
	}
	r.stock[productID] = current - quantity
	return nil
}

// GetStock reads the current stock for a product.
func (r *MockInventoryRepository) GetStock(productID uint) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.stock[productID]
	if !ok {
		return 0, fmt.Errorf("product with ID %d: %w", productID, ErrProductNotFound)
	}
	return current, nil
}

// InTransaction serializes the whole unit of work behind the mutex. If fn
// returns an error the staged decrements are discarded, leaving the
// shared stock map untouched.
func (r *MockInventoryRepository) InTransaction(fn func(InventoryRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx := &mockInventoryTx{parent: r, pending: make(map[uint]int)}
	if err := fn(tx); err != nil {
		return err
	}
	for id, qty := range tx.pending {
		r.stock[id] = qty
	}
	return nil
}

// mockInventoryTx is the transactional view handed to InTransaction
// callbacks. Reads see staged writes first, then the shared map.
type mockInventoryTx struct {
	parent  *MockInventoryRepository
	pending map[uint]int
}

func (t *mockInventoryTx) current(productID uint) (int, bool) {
	if qty, ok := t.pending[productID]; ok {
		return qty, true
	}
	qty, ok := t.parent.stock[productID]
	return qty, ok
}

func (t *mockInventoryTx) TryDecrement(productID uint, quantity int) error {
	current, ok := t.current(productID)
	if !ok || current < quantity {
		return fmt.Errorf("product %d: %w", productID, ErrStockRejected)
	}
	t.pending[productID] = current - quantity
	return nil
}

func (t *mockInventoryTx) GetStock(productID uint) (int, error) {
	current, ok := t.current(productID)
	if !ok {
		return 0, fmt.Errorf("product with ID %d: %w", productID, ErrProductNotFound)
	}
	return current, nil
}

// InTransaction on an open transaction joins the existing scope.
func (t *mockInventoryTx) InTransaction(fn func(InventoryRepository) error) error {
	return fn(t)
}
