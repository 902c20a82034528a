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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service      usecase.ProductUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	txManager    *mockRepo.MockTransactionManager
	publisher    *mockSvc.MockEventPublisher
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := NewProductService(productRepo, categoryRepo, txManager, publisher, newDiscardLogger())

	return productServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		txManager:    txManager,
		publisher:    publisher,
	}
}

func validCreateProductInput(categoryID uuid.UUID) *usecase.CreateProductInput {
	return &usecase.CreateProductInput{
		Name:        "Spicy Chicken Burger",
		Description: "Crispy chicken thigh with house chili jam",
		Price:       decimal.NewFromInt(45000),
		Images:      []string{"https://cdn.example.com/burger.jpg"},
		Status:      "AVAILABLE",
		CategoryID:  categoryID.String(),
		Slug:        "spicy-chicken-burger",
	}
}

func TestProductService_ListProducts(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	expected := []*entity.Product{{ID: uuid.New(), Slug: "spicy-chicken-burger"}}
	fx.productRepo.EXPECT().
		List(ctx, repository.ProductQuery{Limit: 10, Search: "chicken"}).
		Return(expected, nil)

	products, err := fx.service.ListProducts(ctx, usecase.ListProductsInput{Limit: 10, Search: "chicken"})

	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestProductService_ListFeaturedProducts_DefaultLimit(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		List(ctx, repository.ProductQuery{Limit: usecase.DefaultFeaturedLimit, FeaturedOnly: true}).
		Return([]*entity.Product{}, nil)

	products, err := fx.service.ListFeaturedProducts(ctx, 0)

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductService_ListProductsByCategory(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().
		FindBySlug(ctx, "burgers").
		Return(&entity.Category{ID: categoryID, Slug: "burgers"}, nil)
	fx.productRepo.EXPECT().
		List(ctx, repository.ProductQuery{Limit: 5, CategoryID: &categoryID}).
		Return([]*entity.Product{{ID: uuid.New()}}, nil)

	products, err := fx.service.ListProductsByCategory(ctx, "burgers", 5)

	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductService_GetProductByID_MalformedID(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product, err := fx.service.GetProductByID(ctx, "not-a-uuid")

	assert.Nil(t, product)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.FieldErrors(), "id")
}

func TestProductService_GetProductByID_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProductByID(ctx, productID.String())

	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	categoryID := uuid.New()
	input := validCreateProductInput(categoryID)

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)

		productRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Product")).
			RunAndReturn(func(ctx context.Context, product *entity.Product) error {
				assert.Equal(t, categoryID, product.CategoryID)
				assert.Equal(t, entity.StatusAvailable, product.Status)
				return nil
			})
		productRepo.EXPECT().
			FindByID(ctx, mock.AnythingOfType("uuid.UUID")).
			RunAndReturn(func(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
				return &entity.Product{
					ID:         id,
					Name:       input.Name,
					Slug:       input.Slug,
					CategoryID: categoryID,
					Category:   &entity.Category{ID: categoryID, Slug: "burgers"},
				}, nil
			})
	})
	fx.publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.AnythingOfType("*service.CatalogEvent")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "spicy-chicken-burger", product.Slug)
	assert.NotNil(t, product.Category)
}

func TestProductService_CreateProduct_DerivesSlugFromName(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	categoryID := uuid.New()
	input := validCreateProductInput(categoryID)
	input.Slug = ""

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)

		productRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Product")).
			RunAndReturn(func(ctx context.Context, product *entity.Product) error {
				assert.Equal(t, "spicy-chicken-burger", product.Slug)
				return nil
			})
		productRepo.EXPECT().
			FindByID(ctx, mock.AnythingOfType("uuid.UUID")).
			RunAndReturn(func(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
				return &entity.Product{ID: id, Name: input.Name, Slug: "spicy-chicken-burger", CategoryID: categoryID}, nil
			})
	})
	fx.publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.AnythingOfType("*service.CatalogEvent")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "spicy-chicken-burger", product.Slug)
}

func TestProductService_CreateProduct_ValidationFailures(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	tests := []struct {
		name   string
		mutate func(input *usecase.CreateProductInput)
		field  string
	}{
		{"missing name", func(in *usecase.CreateProductInput) { in.Name = "" }, "name"},
		{"missing description", func(in *usecase.CreateProductInput) { in.Description = "" }, "description"},
		{"negative price", func(in *usecase.CreateProductInput) { in.Price = decimal.NewFromInt(-1) }, "price"},
		{"no images", func(in *usecase.CreateProductInput) { in.Images = nil }, "images"},
		{"bad status", func(in *usecase.CreateProductInput) { in.Status = "SOLD_OUT" }, "status"},
		{"missing category", func(in *usecase.CreateProductInput) { in.CategoryID = "" }, "categoryId"},
		{"malformed category", func(in *usecase.CreateProductInput) { in.CategoryID = "nope" }, "categoryId"},
		{"bad slug", func(in *usecase.CreateProductInput) { in.Slug = "Bad Slug" }, "slug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCreateProductInput(categoryID)
			tt.mutate(input)

			product, err := fx.service.CreateProduct(ctx, input)

			assert.Nil(t, product)

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.FieldErrors(), tt.field)
		})
	}
}

func TestProductService_UpdateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	productID := uuid.New()

	existing := &entity.Product{
		ID:     productID,
		Name:   "Spicy Chicken Burger",
		Price:  decimal.NewFromInt(45000),
		Images: []string{"https://cdn.example.com/burger.jpg"},
		Status: entity.StatusAvailable,
		Slug:   "spicy-chicken-burger",
	}
	newPrice := decimal.NewFromInt(50000)

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)

		productRepo.EXPECT().FindByID(ctx, productID).Return(existing, nil).Once()
		productRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Product")).
			RunAndReturn(func(ctx context.Context, product *entity.Product) error {
				assert.True(t, product.Price.Equal(newPrice))
				return nil
			})
		productRepo.EXPECT().FindByID(ctx, productID).Return(existing, nil).Once()
	})
	fx.publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.AnythingOfType("*service.CatalogEvent")).
		Return(nil)

	product, err := fx.service.UpdateProduct(ctx, productID, &usecase.UpdateProductInput{
		Price: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, productID, product.ID)
}

func TestProductService_DeleteProduct_HasOrders(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	productID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)

		productRepo.EXPECT().FindByID(ctx, productID).
			Return(&entity.Product{ID: productID, Slug: "spicy-chicken-burger"}, nil)
		productRepo.EXPECT().CountOrderItems(ctx, productID).Return(int64(2), nil)
	})

	err := fx.service.DeleteProduct(ctx, productID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_HAS_ORDERS", appErr.ErrorCode())
}

func TestProductService_DeleteProduct_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	productID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		productRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().ProductRepo().Return(productRepo)

		productRepo.EXPECT().FindByID(ctx, productID).
			Return(&entity.Product{ID: productID, Slug: "spicy-chicken-burger"}, nil)
		productRepo.EXPECT().CountOrderItems(ctx, productID).Return(int64(0), nil)
		productRepo.EXPECT().Delete(ctx, productID).Return(nil)
	})
	fx.publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.AnythingOfType("*service.CatalogEvent")).
		Return(nil)

	err := fx.service.DeleteProduct(ctx, productID)

	require.NoError(t, err)
}
