package usecase

import (
	"context"

	"saletafood/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultFeaturedLimit caps the featured product listing when the caller
// does not ask for a specific amount.
const DefaultFeaturedLimit = 4

// --- Input DTOs ---

// CreateProductInput defines the data required to create a new product.
type CreateProductInput struct {
	Name           string
	Description    string
	Price          decimal.Decimal
	Images         []string
	Status         string
	CategoryID     string
	FurtherDetails []entity.DetailBlock
	Tags           []string
	Featured       bool
	Slug           string
}

// UpdateProductInput defines the patchable fields of a product. Nil
// pointers leave the stored value untouched.
type UpdateProductInput struct {
	Name           *string
	Description    *string
	Price          *decimal.Decimal
	Images         []string
	Status         *string
	CategoryID     *string
	FurtherDetails []entity.DetailBlock
	Tags           []string
	Featured       *bool
	Slug           *string
}

// ListProductsInput narrows the public product listing.
type ListProductsInput struct {
	// Limit caps the number of results when > 0.
	Limit int
	// Search filters by case-insensitive substring match on name and
	// description when non-empty.
	Search string
}

// ProductUsecase defines the interface for product-related business operations.
type ProductUsecase interface {
	// ListProducts returns products newest first.
	ListProducts(ctx context.Context, input ListProductsInput) ([]*entity.Product, error)

	// ListProductsByCategory returns the products of the category with the
	// given slug, newest first.
	ListProductsByCategory(ctx context.Context, categorySlug string, limit int) ([]*entity.Product, error)

	// ListFeaturedProducts returns featured products, at most limit of them
	// (DefaultFeaturedLimit when limit <= 0).
	ListFeaturedProducts(ctx context.Context, limit int) ([]*entity.Product, error)

	// GetProductBySlug returns the product with its category.
	GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// GetProductByID returns the product with its category. A malformed id
	// yields a validation error rather than a not-found.
	GetProductByID(ctx context.Context, id string) (*entity.Product, error)

	// CreateProduct validates the input and persists a new product.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct applies a partial update and returns the re-read,
	// fully consistent product.
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product. It fails with a conflict while any
	// order line item references the product.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
