package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "saletafood/internal/delivery/context"
	"saletafood/internal/domain/entity"
	domainerrors "saletafood/internal/domain/errors"
	"saletafood/internal/domain/repository"
	"saletafood/internal/domain/service"
	"saletafood/internal/usecase"
	"saletafood/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	txManager    repository.TransactionManager
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		txManager:    txManager,
		publisher:    publisher,
		logger:       logger,
	}
}

// ListProducts returns products newest first.
func (srv *productService) ListProducts(ctx context.Context, input usecase.ListProductsInput) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, repository.ProductQuery{
		Limit:  input.Limit,
		Search: input.Search,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ListProductsByCategory returns the products of the category with the given
// slug, newest first.
func (srv *productService) ListProductsByCategory(ctx context.Context, categorySlug string, limit int) ([]*entity.Product, error) {
	category, err := srv.categoryRepo.FindBySlug(ctx, categorySlug)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by slug")
	}

	products, err := srv.productRepo.List(ctx, repository.ProductQuery{
		Limit:      limit,
		CategoryID: &category.ID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list category products")
	}

	return products, nil
}

// ListFeaturedProducts returns featured products, at most limit of them.
func (srv *productService) ListFeaturedProducts(ctx context.Context, limit int) ([]*entity.Product, error) {
	if limit <= 0 {
		limit = usecase.DefaultFeaturedLimit
	}

	products, err := srv.productRepo.List(ctx, repository.ProductQuery{
		Limit:        limit,
		FeaturedOnly: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list featured products")
	}

	return products, nil
}

// GetProductBySlug returns the product with its category.
func (srv *productService) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := srv.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	return product, nil
}

// GetProductByID returns the product with its category. A malformed id is a
// validation error, not a not-found.
func (srv *productService) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return nil, domainerrors.NewFieldError("id", "id must be a valid UUID")
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return product, nil
}

// CreateProduct validates the input and persists a new product. An omitted
// slug is derived from the name. The product row and its images are written
// in a single statement, so a failed write leaves nothing behind.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input.Slug == "" {
		input.Slug = util.Slugify(input.Name)
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	status := entity.ProductStatus(input.Status)
	if input.Status == "" {
		status = entity.StatusAvailable
	}
	categoryID, err := uuid.Parse(input.CategoryID)
	if err != nil {
		return nil, domainerrors.NewFieldError("categoryId", "categoryId must be a valid UUID")
	}

	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New(),
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		Images:         input.Images,
		Status:         status,
		CategoryID:     categoryID,
		FurtherDetails: input.FurtherDetails,
		Tags:           input.Tags,
		Featured:       input.Featured,
		Slug:           input.Slug,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var created *entity.Product

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		if err := productRepo.Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		// Re-read so the response carries the category preloaded.
		stored, err := productRepo.FindByID(ctx, product.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload created product")
		}
		created = stored

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Product created", "productID", created.ID, "slug", created.Slug)
	srv.publishEvent(ctx, service.CatalogActionCreated, created.Slug)

	return created, nil
}

// UpdateProduct applies a partial update and returns the re-read product.
// The read, patch and write happen inside one transaction so concurrent
// updates never interleave half-applied field sets.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if err := validateProductUpdate(input); err != nil {
		return nil, err
	}

	var updated *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Images != nil {
			product.Images = input.Images
		}
		if input.Status != nil {
			product.Status = entity.ProductStatus(*input.Status)
		}
		if input.CategoryID != nil {
			categoryID, err := uuid.Parse(*input.CategoryID)
			if err != nil {
				return domainerrors.NewFieldError("categoryId", "categoryId must be a valid UUID")
			}
			product.CategoryID = categoryID
		}
		if input.FurtherDetails != nil {
			product.FurtherDetails = input.FurtherDetails
		}
		if input.Tags != nil {
			product.Tags = input.Tags
		}
		if input.Featured != nil {
			product.Featured = *input.Featured
		}
		if input.Slug != nil {
			product.Slug = *input.Slug
		}
		product.UpdatedAt = time.Now()

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}

		stored, err := productRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to reload updated product")
		}
		updated = stored

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Product updated", "productID", id, "slug", updated.Slug)
	srv.publishEvent(ctx, service.CatalogActionUpdated, updated.Slug)

	return updated, nil
}

// DeleteProduct removes a product once no order references it. Deleting a
// product with existing order items is a conflict.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	var slug string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}
		slug = product.Slug

		count, err := productRepo.CountOrderItems(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count product order items")
		}
		if count > 0 {
			return domainerrors.ErrProductHasOrders.
				WithDetails(fmt.Sprintf("product is referenced by %d order items", count))
		}

		if err := productRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete product")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.logger.Info("Product deleted", "productID", id, "slug", slug)
	srv.publishEvent(ctx, service.CatalogActionDeleted, slug)

	return nil
}

// publishEvent notifies downstream caches about a product change. Failures
// are logged and never surface to the caller.
func (srv *productService) publishEvent(ctx context.Context, action, slug string) {
	event := &service.CatalogEvent{
		Entity:    "product",
		Action:    action,
		Slug:      slug,
		Paths:     []string{"/", "/product/" + slug},
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
	}
	if err := srv.publisher.PublishCatalogEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish catalog event",
			"entity", "product", "action", action, "slug", slug, "error", err)
	}
}
