package usecase

import (
	"context"

	"saletafood/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OrderItemInput is a single requested line of a new order.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput defines the data required to place a new order.
type CreateOrderInput struct {
	UserID uuid.UUID
	Items  []OrderItemInput
}

// OrderUsecase defines the interface for order-related business operations.
type OrderUsecase interface {
	// CreateOrder writes the order and all of its line items atomically,
	// capturing each product's current price on the line item.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	// GetOrderByID returns the order with its line items.
	GetOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListOrdersByUser returns all orders placed by the user, newest first.
	ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// UpdateOrderStatus sets the fulfillment status. Any valid status may
	// be set from any other status.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error)
}

// UserUsecase defines the small set of user operations the back office needs.
// Authentication lives with the external identity provider.
type UserUsecase interface {
	// GetUserByID returns a single user.
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// DeleteUser removes a user account. It fails with a conflict while
	// the user still owns orders.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
