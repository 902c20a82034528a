package impl

import (
	"context"
	"testing"

	"saletafood/internal/domain/entity"
	domainerrors "saletafood/internal/domain/errors"
	"saletafood/internal/domain/repository"
	mockRepo "saletafood/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetUserByID_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewUserService(userRepo, txManager, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	expected := &entity.User{ID: userID, Email: "admin@example.com", Role: entity.RoleAdmin}

	userRepo.EXPECT().FindByID(ctx, userID).Return(expected, nil)

	user, err := service.GetUserByID(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestUserService_DeleteUser_StillOwnsOrders(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewUserService(userRepo, txManager, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()

	expectExecute(t, txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().UserRepo().Return(txUserRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)

		txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		orderRepo.EXPECT().CountByUser(ctx, userID).Return(int64(2), nil)
	})

	err := service.DeleteUser(ctx, userID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "USER_HAS_ORDERS", appErr.ErrorCode())
}

func TestUserService_DeleteUser_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewUserService(userRepo, txManager, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()

	expectExecute(t, txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().UserRepo().Return(txUserRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)

		txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		orderRepo.EXPECT().CountByUser(ctx, userID).Return(int64(0), nil)
		txUserRepo.EXPECT().Delete(ctx, userID).Return(nil)
	})

	err := service.DeleteUser(ctx, userID)

	require.NoError(t, err)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewUserService(userRepo, txManager, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()

	expectExecute(t, txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(txUserRepo)

		txUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	err := service.DeleteUser(ctx, userID)

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
