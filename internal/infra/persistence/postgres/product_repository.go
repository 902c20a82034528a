package postgres

import (
	"context"
	"encoding/json"
	"log/slog"

	"saletafood/internal/domain/entity"
	domainerrors "saletafood/internal/domain/errors"
	"saletafood/internal/domain/repository"
	"saletafood/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// List retrieves products newest first, narrowed by the query.
func (repo *productRepository) List(ctx context.Context, query repository.ProductQuery) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	tx := repo.db.WithContext(ctx).
		Preload("Category").
		Order("created_at DESC")

	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if query.CategoryID != nil {
		tx = tx.Where("category_id = ?", *query.CategoryID)
	}
	if query.FeaturedOnly {
		tx = tx.Where("featured = TRUE")
	}
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}

	if err := tx.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindByID retrieves a single product by its unique ID, including its category.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindBySlug retrieves a single product by its slug, including its category.
func (repo *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("slug = ?", slug).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	return toProductDomain(&productM), nil
}

// CountOrderItems returns the number of order line items referencing the product.
func (repo *productRepository) CountOrderItems(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Where("product_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count product order items")
	}

	return count, nil
}

// Create persists a new product entity, images included, in one statement.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM, err := fromProductDomain(product)
	if err != nil {
		return errors.Wrap(err, "failed to map product for persistence")
	}

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSlugAlreadyExists.WrapMessage("product slug already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("product references an unknown category")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Update the entity with the generated ID and timestamps
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product entity in the database. Images are
// written as part of the same statement; the historical second write for
// the images column is gone.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM, err := fromProductDomain(product)
	if err != nil {
		return errors.Wrap(err, "failed to map product for persistence")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":            productM.Name,
			"description":     productM.Description,
			"price":           productM.Price,
			"images":          productM.Images,
			"status":          productM.Status,
			"category_id":     productM.CategoryID,
			"further_details": productM.FurtherDetails,
			"tags":            productM.Tags,
			"featured":        productM.Featured,
			"slug":            productM.Slug,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrSlugAlreadyExists.WrapMessage("product slug already exists")
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("product references an unknown category")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product row. The referencing-order-items invariant is
// enforced by the use case before reaching this point.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrProductHasOrders
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity,
// normalizing the legacy images column into the canonical list shape.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	images := model.NormalizeImages([]byte(data.Images))
	if len(images) == 0 && !model.EmptyImagesValue(data.Images) {
		// Unparseable non-URL, non-JSON value: pre-existing corrupt data.
		// Surfaced instead of silently discarded.
		slog.Warn("product images column holds unparseable data",
			slog.String("productID", data.ID.String()),
			slog.String("raw", string(data.Images)),
		)
	}

	var details []entity.DetailBlock
	if len(data.FurtherDetails) > 0 {
		// Older rows may hold malformed blocks; treat those as absent.
		_ = json.Unmarshal(data.FurtherDetails, &details)
	}

	return &entity.Product{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		Price:          data.Price,
		Images:         images,
		Status:         entity.ProductStatus(data.Status),
		CategoryID:     data.CategoryID,
		Category:       toCategoryDomain(data.Category),
		FurtherDetails: details,
		Tags:           data.Tags,
		Featured:       data.Featured,
		Slug:           data.Slug,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel,
// always persisting images in the canonical JSON array form.
func fromProductDomain(data *entity.Product) (*model.ProductModel, error) {
	if data == nil {
		return nil, nil
	}

	images, err := model.MarshalImages(data.Images)
	if err != nil {
		return nil, err
	}

	details, err := json.Marshal(data.FurtherDetails)
	if err != nil {
		return nil, err
	}

	return &model.ProductModel{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		Price:          data.Price,
		Images:         images,
		Status:         data.Status.String(),
		CategoryID:     data.CategoryID,
		FurtherDetails: details,
		Tags:           data.Tags,
		Featured:       data.Featured,
		Slug:           data.Slug,
	}, nil
}
