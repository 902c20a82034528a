// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"saletafood/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateCategoryInput defines the data required to create a new category.
type CreateCategoryInput struct {
	Name        string
	Description string
	Slug        string
	Image       string
	IconName    string
}

// UpdateCategoryInput defines the patchable fields of a category. Nil
// pointers leave the stored value untouched.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
	Slug        *string
	Image       *string
	IconName    *string
}

// CategoryUsecase defines the interface for category-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CategoryUsecase interface {
	// ListCategories returns all categories ordered by name ascending.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// GetCategoryBySlug returns the category with its products.
	GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// CreateCategory validates the input and persists a new category.
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)

	// UpdateCategory applies a partial update to an existing category.
	UpdateCategory(ctx context.Context, id uuid.UUID, input *UpdateCategoryInput) (*entity.Category, error)

	// DeleteCategory removes a category. It fails with a conflict while
	// products still reference the category.
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
