package models

import "time"

// OrderItem represents a single line item within an order request.
type OrderItem struct {
	ProductID uint `json:"id"`
	Quantity  int  `json:"quantity"`
}

// OrderRequest is the body of a process-order call. Orders are not
// persisted; the sequence of line items is the whole order.
type OrderRequest struct {
	OrderItems []OrderItem `json:"orderItems"`
}

// OrderProcessedEvent is published to the message broker after an order
// has been applied against the inventory.
type OrderProcessedEvent struct {
	EventID     string      `json:"event_id"`
	Items       []OrderItem `json:"items"`
	ProcessedAt time.Time   `json:"processed_at"`
}
