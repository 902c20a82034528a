package repository

import (
	"context"
	"errors"

	"saletafood/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductQuery narrows product listings. The zero value lists everything,
// newest first.
type ProductQuery struct {
	// Limit caps the number of returned rows when > 0.
	Limit int
	// Search filters by case-insensitive substring match on name and
	// description when non-empty.
	Search string
	// CategoryID restricts results to a single category when non-nil.
	CategoryID *uuid.UUID
	// FeaturedOnly restricts results to featured products.
	FeaturedOnly bool
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// List retrieves products newest first, narrowed by the query.
	List(ctx context.Context, query ProductQuery) ([]*entity.Product, error)

	// FindByID retrieves a single product by its unique ID, including its category.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindBySlug retrieves a single product by its slug, including its category.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// CountOrderItems returns the number of order line items referencing the product.
	CountOrderItems(ctx context.Context, id uuid.UUID) (int64, error)

	// Create persists a new product entity to the storage.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product entity in the storage.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product. Callers must ensure no order items reference it.
	Delete(ctx context.Context, id uuid.UUID) error
}
