// Package impl contains the application-specific business rules implementations.
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

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	txManager    repository.TransactionManager
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: categoryRepo,
		txManager:    txManager,
		publisher:    publisher,
		logger:       logger,
	}
}

// ListCategories returns all categories ordered by name ascending.
func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// GetCategoryBySlug returns the category with its products.
func (srv *categoryService) GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by slug")
	}

	return category, nil
}

// CreateCategory validates the input and persists a new category. An omitted
// slug is derived from the name.
func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	if input.Slug == "" {
		input.Slug = util.Slugify(input.Name)
	}
	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Slug:        input.Slug,
		Image:       input.Image,
		IconName:    input.IconName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.logger.Info("Category created", "categoryID", category.ID, "slug", category.Slug)
	srv.publishEvent(ctx, service.CatalogActionCreated, category.Slug)

	return category, nil
}

// UpdateCategory applies a partial update to an existing category.
func (srv *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	if err := validateCategoryUpdate(input); err != nil {
		return nil, err
	}

	var updated *entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		category, err := categoryRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound
			}

			return errors.Wrap(err, "failed to find category")
		}

		if input.Name != nil {
			category.Name = *input.Name
		}
		if input.Description != nil {
			category.Description = *input.Description
		}
		if input.Slug != nil {
			category.Slug = *input.Slug
		}
		if input.Image != nil {
			category.Image = *input.Image
		}
		if input.IconName != nil {
			category.IconName = *input.IconName
		}
		category.UpdatedAt = time.Now()

		if err := categoryRepo.Update(ctx, category); err != nil {
			return errors.Wrap(err, "failed to update category")
		}
		updated = category

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Category updated", "categoryID", id, "slug", updated.Slug)
	srv.publishEvent(ctx, service.CatalogActionUpdated, updated.Slug)

	return updated, nil
}

// DeleteCategory removes a category once nothing references it. Deleting a
// category that still has products is a conflict, never a cascade.
func (srv *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	var slug string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		category, err := categoryRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound
			}

			return errors.Wrap(err, "failed to find category")
		}
		slug = category.Slug

		count, err := categoryRepo.CountProducts(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count category products")
		}
		if count > 0 {
			return domainerrors.ErrCategoryHasProducts.
				WithDetails(fmt.Sprintf("category has %d products", count))
		}

		if err := categoryRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete category")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.logger.Info("Category deleted", "categoryID", id, "slug", slug)
	srv.publishEvent(ctx, service.CatalogActionDeleted, slug)

	return nil
}

// publishEvent notifies downstream caches about a category change. Failures
// are logged and never surface to the caller.
func (srv *categoryService) publishEvent(ctx context.Context, action, slug string) {
	event := &service.CatalogEvent{
		Entity:    "category",
		Action:    action,
		Slug:      slug,
		Paths:     []string{"/", "/category/" + slug},
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
	}
	if err := srv.publisher.PublishCatalogEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish catalog event",
			"entity", "category", "action", action, "slug", slug, "error", err)
	}
}
