// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"saletafood/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is a domain-specific error returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the standard operations for category persistence.
// The application layer will depend on this interface, not the concrete implementation.
type CategoryRepository interface {
	// List retrieves all categories ordered by name ascending.
	List(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves a single category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindBySlug retrieves a single category by its slug, including its products.
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// CountProducts returns the number of products referencing the category.
	CountProducts(ctx context.Context, id uuid.UUID) (int64, error)

	// Create persists a new category entity to the storage.
	Create(ctx context.Context, category *entity.Category) error

	// Update modifies an existing category entity in the storage.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category. Callers must ensure no products reference it.
	Delete(ctx context.Context, id uuid.UUID) error
}
