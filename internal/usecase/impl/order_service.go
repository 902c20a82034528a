package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"saletafood/internal/domain/entity"
	domainerrors "saletafood/internal/domain/errors"
	"saletafood/internal/domain/repository"
	"saletafood/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// CreateOrder writes the order and all of its line items atomically. Each
// line captures the product's price at order time, so later price changes
// never rewrite order history.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if err := validateOrderInput(input); err != nil {
		return nil, err
	}

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		productRepo := repoFactory.ProductRepo()
		orderRepo := repoFactory.OrderRepo()

		if _, err := userRepo.FindByID(ctx, input.UserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		now := time.Now()
		orderID := uuid.New()
		total := decimal.Zero
		items := make([]*entity.OrderItem, 0, len(input.Items))

		for _, itemInput := range input.Items {
			product, err := productRepo.FindByID(ctx, itemInput.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound.
						WithDetails(fmt.Sprintf("product %s does not exist", itemInput.ProductID))
				}

				return errors.Wrap(err, "failed to find ordered product")
			}
			if product.Status == entity.StatusOutOfStock {
				return domainerrors.ErrConflict.
					WithDetails(fmt.Sprintf("product %s is out of stock", product.Slug))
			}

			items = append(items, &entity.OrderItem{
				ID:        uuid.New(),
				OrderID:   orderID,
				ProductID: product.ID,
				Quantity:  itemInput.Quantity,
				Price:     product.Price,
			})
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(itemInput.Quantity))))
		}

		newOrder := &entity.Order{
			ID:        orderID,
			UserID:    input.UserID,
			Status:    entity.OrderPending,
			Total:     total,
			Items:     items,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := orderRepo.Create(ctx, newOrder); err != nil {
			return errors.Wrap(err, "failed to create order")
		}
		order = newOrder

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Order created",
		"orderID", order.ID, "userID", order.UserID, "items", len(order.Items), "total", order.Total)

	return order, nil
}

// GetOrderByID returns the order with its line items.
func (srv *orderService) GetOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// ListOrdersByUser returns all orders placed by the user, newest first.
func (srv *orderService) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// UpdateOrderStatus sets the fulfillment status. There is no transition
// table; any valid status may follow any other.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error) {
	orderStatus := entity.OrderStatus(status)
	if !orderStatus.IsValid() {
		return nil, domainerrors.NewFieldError("status",
			"status must be one of PENDING, PROCESSING, COMPLETED, CANCELLED")
	}

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		found, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}

		if err := orderRepo.UpdateStatus(ctx, id, orderStatus); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		found.Status = orderStatus
		found.UpdatedAt = time.Now()
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Order status updated", "orderID", id, "status", orderStatus)

	return order, nil
}

// validateOrderInput checks a create-order payload before any store call.
func validateOrderInput(input *usecase.CreateOrderInput) error {
	fieldErrors := map[string]string{}

	if input.UserID == uuid.Nil {
		fieldErrors["userId"] = "userId is required"
	}
	if len(input.Items) == 0 {
		fieldErrors["items"] = "at least one item is required"
	}
	for i, item := range input.Items {
		if item.ProductID == uuid.Nil {
			fieldErrors[fmt.Sprintf("items[%d].productId", i)] = "productId is required"
		}
		if item.Quantity <= 0 {
			fieldErrors[fmt.Sprintf("items[%d].quantity", i)] = "quantity must be positive"
		}
	}

	if len(fieldErrors) > 0 {
		return domainerrors.NewValidationError(fieldErrors)
	}

	return nil
}
