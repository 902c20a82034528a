package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfillment state of an order. Like
// ProductStatus it is a free-form enum with no transition table.
type OrderStatus string

const (
	// OrderPending indicates the order has been received but not picked up yet.
	OrderPending OrderStatus = "PENDING"
	// OrderProcessing indicates the order is being prepared.
	OrderProcessing OrderStatus = "PROCESSING"
	// OrderCompleted indicates the order has been fulfilled.
	OrderCompleted OrderStatus = "COMPLETED"
	// OrderCancelled indicates the order was cancelled.
	OrderCancelled OrderStatus = "CANCELLED"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderCompleted, OrderCancelled:
		return true
	default:
		return false
	}
}

// Order is a customer order. An order and its items are always written
// together in a single transaction.
type Order struct {
	ID        uuid.UUID       // The unique identifier for the order.
	UserID    uuid.UUID       // The user who placed the order.
	Status    OrderStatus     // Current fulfillment status.
	Total     decimal.Decimal // Sum of item subtotals at the time of ordering.
	Items     []*OrderItem    // The line items belonging to this order.
	CreatedAt time.Time       // Timestamp of when the order was placed.
	UpdatedAt time.Time       // Timestamp of the last modification.
}

// OrderItem is a single line of an order. Price is the unit price captured
// at order time and is deliberately decoupled from the current product price.
type OrderItem struct {
	ID        uuid.UUID       // The unique identifier for the line item.
	OrderID   uuid.UUID       // Foreign key to the owning order.
	ProductID uuid.UUID       // The ordered product.
	Quantity  int             // Ordered quantity, always > 0.
	Price     decimal.Decimal // Unit price at the time of ordering, always >= 0.
}
