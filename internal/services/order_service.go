package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"ecoshop/internal/models"
	"ecoshop/internal/repositories"

	"github.com/google/uuid"
)

// StockRejectedError reports the first line item whose conditional
// decrement was rejected. Line items after it were never evaluated.
type StockRejectedError struct {
	ProductID uint
}

func (e *StockRejectedError) Error() string {
	return fmt.Sprintf("stock check failed for item ID %d", e.ProductID)
}

// StorageError reports a persistence failure while applying or
// committing an order. Op is "update" or "commit".
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// EventPublisher publishes order lifecycle events to the message broker.
type EventPublisher interface {
	PublishOrderProcessed(event models.OrderProcessedEvent) error
}

// OrderService applies whole orders against the inventory store.
type OrderService struct {
	inventoryRepo repositories.InventoryRepository
	publisher     EventPublisher
}

// NewOrderService creates a new OrderService. publisher may be nil, in
// which case processed orders are not announced.
func NewOrderService(inventoryRepo repositories.InventoryRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		inventoryRepo: inventoryRepo,
		publisher:     publisher,
	}
}

// ProcessOrder applies every line item's decrement as one atomic unit.
// Either all line items succeed and the order commits, or the first
// rejected or failed item aborts the whole unit and stock is left
// exactly as it was before the call. Items after the first failure are
// not evaluated.
//
// Duplicate product ids are applied cumulatively against the same stock.
// An empty order succeeds without touching the store.
func (s *OrderService) ProcessOrder(items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	err := s.inventoryRepo.InTransaction(func(inv repositories.InventoryRepository) error {
		for _, item := range items {
			// A non-positive quantity would turn the decrement into an
			// increment, so it is rejected like a failed stock check.
			if item.Quantity <= 0 {
				return &StockRejectedError{ProductID: item.ProductID}
			}
			if err := inv.TryDecrement(item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, repositories.ErrStockRejected) {
					return &StockRejectedError{ProductID: item.ProductID}
				}
				return &StorageError{Op: "update", Err: err}
			}
		}
		return nil
	})
	if err != nil {
		var rejected *StockRejectedError
		var storage *StorageError
		if errors.As(err, &rejected) || errors.As(err, &storage) {
			return err
		}
		// The callback returned nil, so the failure came from the
		// transaction itself (begin or commit).
		return &StorageError{Op: "commit", Err: err}
	}

	s.publishOrderProcessed(items)
	return nil
}

// publishOrderProcessed announces a committed order. Publication is best
// effort; a broker failure never fails an already committed order.
func (s *OrderService) publishOrderProcessed(items []models.OrderItem) {
	if s.publisher == nil {
		log.Println("Event publisher is not initialized. Skipping order event publication.")
		return
	}

	event := models.OrderProcessedEvent{
		EventID:     uuid.New().String(),
		Items:       items,
		ProcessedAt: time.Now(),
	}
	if err := s.publisher.PublishOrderProcessed(event); err != nil {
		log.Printf("Warning: Failed to publish order processed event %s: %v", event.EventID, err)
	} else {
		log.Printf("Successfully published order processed event %s", event.EventID)
	}
}
