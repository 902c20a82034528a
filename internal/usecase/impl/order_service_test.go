package impl

import (
	"context"
	"testing"

	"saletafood/internal/domain/entity"
	domainerrors "saletafood/internal/domain/errors"
	"saletafood/internal/domain/repository"
	mockRepo "saletafood/internal/mocks/repository"
	"saletafood/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
	txManager *mockRepo.MockTransactionManager
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewOrderService(orderRepo, txManager, newDiscardLogger())

	return orderServiceFixtures{
		service:   service,
		orderRepo: orderRepo,
		txManager: txManager,
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	burgerID := uuid.New()
	drinkID := uuid.New()

	burger := &entity.Product{ID: burgerID, Slug: "burger", Price: decimal.NewFromInt(45000), Status: entity.StatusAvailable}
	drink := &entity.Product{ID: drinkID, Slug: "iced-tea", Price: decimal.NewFromInt(8000), Status: entity.StatusAvailable}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		productRepo.EXPECT().FindByID(ctx, burgerID).Return(burger, nil)
		productRepo.EXPECT().FindByID(ctx, drinkID).Return(drink, nil)
		orderRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Order")).
			Return(nil)
	})

	order, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		UserID: userID,
		Items: []usecase.OrderItemInput{
			{ProductID: burgerID, Quantity: 2},
			{ProductID: drinkID, Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.Status)
	require.Len(t, order.Items, 2)
	assert.True(t, order.Items[0].Price.Equal(decimal.NewFromInt(45000)))
	// 2 * 45000 + 1 * 8000
	assert.True(t, order.Total.Equal(decimal.NewFromInt(98000)))
}

func TestOrderService_CreateOrder_EmptyItems(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	order, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		UserID: uuid.New(),
	})

	assert.Nil(t, order)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.FieldErrors(), "items")
}

func TestOrderService_CreateOrder_NonPositiveQuantity(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	_, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		UserID: uuid.New(),
		Items:  []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 0}},
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.FieldErrors(), "items[0].quantity")
}

func TestOrderService_CreateOrder_OutOfStockProduct(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		productRepo.EXPECT().FindByID(ctx, productID).
			Return(&entity.Product{ID: productID, Slug: "burger", Status: entity.StatusOutOfStock}, nil)
	})

	_, err := fx.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		UserID: userID,
		Items:  []usecase.OrderItemInput{{ProductID: productID, Quantity: 1}},
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.ErrorCode())
}

func TestOrderService_GetOrderByID_NotFound(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.GetOrderByID(ctx, orderID)

	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	_, err := fx.service.UpdateOrderStatus(ctx, uuid.New(), "SHIPPED")

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.FieldErrors(), "status")
}

func TestOrderService_UpdateOrderStatus_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(orderRepo)

		orderRepo.EXPECT().FindByID(ctx, orderID).
			Return(&entity.Order{ID: orderID, Status: entity.OrderPending}, nil)
		orderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderCompleted).Return(nil)
	})

	order, err := fx.service.UpdateOrderStatus(ctx, orderID, "COMPLETED")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, order.Status)
}
