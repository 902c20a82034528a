package repository

import (
	"context"
	"errors"

	"saletafood/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// An order and its line items are always written together; partial writes
// must never be observable.
type OrderRepository interface {
	// Create persists a new order together with all of its line items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order with its line items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByUser retrieves all orders placed by the given user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus sets the fulfillment status of an order.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// CountByUser returns the number of orders owned by the given user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
