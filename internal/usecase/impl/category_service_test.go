package impl

import (
	"context"
	"testing"

	"saletafood/internal/domain/entity"
	domainerrors "saletafood/internal/domain/errors"
	"saletafood/internal/domain/repository"
	mockRepo "saletafood/internal/mocks/repository"
	mockSvc "saletafood/internal/mocks/service"
	"saletafood/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// categoryServiceFixtures holds all test dependencies for category service tests.
type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	categoryRepo *mockRepo.MockCategoryRepository
	txManager    *mockRepo.MockTransactionManager
	publisher    *mockSvc.MockEventPublisher
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := NewCategoryService(categoryRepo, txManager, publisher, newDiscardLogger())

	return categoryServiceFixtures{
		service:      service,
		categoryRepo: categoryRepo,
		txManager:    txManager,
		publisher:    publisher,
	}
}

func TestCategoryService_ListCategories(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	expected := []*entity.Category{
		{ID: uuid.New(), Name: "Burgers", Slug: "burgers"},
		{ID: uuid.New(), Name: "Drinks", Slug: "drinks"},
	}
	fx.categoryRepo.EXPECT().List(ctx).Return(expected, nil)

	categories, err := fx.service.ListCategories(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, categories)
}

func TestCategoryService_GetCategoryBySlug_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().FindBySlug(ctx, "no-such").Return(nil, repository.ErrCategoryNotFound)

	category, err := fx.service.GetCategoryBySlug(ctx, "no-such")

	require.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	assert.Nil(t, category)
}

func TestCategoryService_CreateCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.AnythingOfType("*service.CatalogEvent")).
		Return(nil)

	category, err := fx.service.CreateCategory(ctx, &usecase.CreateCategoryInput{
		Name: "Burgers",
		Slug: "burgers",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, category.ID)
	assert.Equal(t, "Burgers", category.Name)
	assert.Equal(t, "burgers", category.Slug)
	assert.False(t, category.CreatedAt.IsZero())
}

func TestCategoryService_CreateCategory_DerivesSlugFromName(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.AnythingOfType("*service.CatalogEvent")).
		Return(nil)

	category, err := fx.service.CreateCategory(ctx, &usecase.CreateCategoryInput{
		Name: "Wings & Fries",
	})

	require.NoError(t, err)
	assert.Equal(t, "wings-fries", category.Slug)
}

func TestCategoryService_CreateCategory_InvalidSlug(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	category, err := fx.service.CreateCategory(ctx, &usecase.CreateCategoryInput{
		Name: "Burgers",
		Slug: "Not A Slug",
	})

	assert.Nil(t, category)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.FieldErrors(), "slug")
}

func TestCategoryService_CreateCategory_MissingName(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	_, err := fx.service.CreateCategory(ctx, &usecase.CreateCategoryInput{
		Slug: "burgers",
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.FieldErrors(), "name")
}

func TestCategoryService_UpdateCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	existing := &entity.Category{ID: categoryID, Name: "Burgers", Slug: "burgers"}
	newName := "Smash Burgers"

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().CategoryRepo().Return(categoryRepo)

		categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(existing, nil)
		categoryRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Category")).
			Return(nil)
	})
	fx.publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.AnythingOfType("*service.CatalogEvent")).
		Return(nil)

	category, err := fx.service.UpdateCategory(ctx, categoryID, &usecase.UpdateCategoryInput{
		Name: &newName,
	})

	require.NoError(t, err)
	assert.Equal(t, "Smash Burgers", category.Name)
	assert.Equal(t, "burgers", category.Slug)
}

func TestCategoryService_UpdateCategory_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().CategoryRepo().Return(categoryRepo)

		categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)
	})

	newName := "Smash Burgers"
	_, err := fx.service.UpdateCategory(ctx, categoryID, &usecase.UpdateCategoryInput{Name: &newName})

	require.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_DeleteCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().CategoryRepo().Return(categoryRepo)

		categoryRepo.EXPECT().FindByID(ctx, categoryID).
			Return(&entity.Category{ID: categoryID, Slug: "burgers"}, nil)
		categoryRepo.EXPECT().CountProducts(ctx, categoryID).Return(int64(0), nil)
		categoryRepo.EXPECT().Delete(ctx, categoryID).Return(nil)
	})
	fx.publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.AnythingOfType("*service.CatalogEvent")).
		Return(nil)

	err := fx.service.DeleteCategory(ctx, categoryID)

	require.NoError(t, err)
}

func TestCategoryService_DeleteCategory_StillHasProducts(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().CategoryRepo().Return(categoryRepo)

		categoryRepo.EXPECT().FindByID(ctx, categoryID).
			Return(&entity.Category{ID: categoryID, Slug: "burgers"}, nil)
		categoryRepo.EXPECT().CountProducts(ctx, categoryID).Return(int64(3), nil)
	})

	err := fx.service.DeleteCategory(ctx, categoryID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CATEGORY_HAS_PRODUCTS", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "3 products")
}

func TestCategoryService_DeleteCategory_AlreadyGone(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().CategoryRepo().Return(categoryRepo)

		categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)
	})

	err := fx.service.DeleteCategory(ctx, categoryID)

	require.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}
