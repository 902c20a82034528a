package impl

import (
	"strings"

	"saletafood/internal/domain/entity"
	domainerrors "saletafood/internal/domain/errors"
	"saletafood/internal/usecase"
	"saletafood/internal/util"

	"github.com/google/uuid"
)

// validateCategoryInput checks a create-category payload before any store
// call is made. All field problems are reported at once.
func validateCategoryInput(input *usecase.CreateCategoryInput) error {
	fieldErrors := map[string]string{}

	if strings.TrimSpace(input.Name) == "" {
		fieldErrors["name"] = "name is required"
	}
	if input.Slug == "" {
		fieldErrors["slug"] = "slug is required"
	} else if !util.IsValidSlug(input.Slug) {
		fieldErrors["slug"] = "slug must be lowercase letters, digits and single hyphens"
	}

	if len(fieldErrors) > 0 {
		return domainerrors.NewValidationError(fieldErrors)
	}

	return nil
}

// validateCategoryUpdate checks the provided fields of a partial update.
func validateCategoryUpdate(input *usecase.UpdateCategoryInput) error {
	fieldErrors := map[string]string{}

	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		fieldErrors["name"] = "name must not be empty"
	}
	if input.Slug != nil && !util.IsValidSlug(*input.Slug) {
		fieldErrors["slug"] = "slug must be lowercase letters, digits and single hyphens"
	}

	if len(fieldErrors) > 0 {
		return domainerrors.NewValidationError(fieldErrors)
	}

	return nil
}

// validateProductInput checks a create-product payload before any store
// call is made.
func validateProductInput(input *usecase.CreateProductInput) error {
	fieldErrors := map[string]string{}

	if strings.TrimSpace(input.Name) == "" {
		fieldErrors["name"] = "name is required"
	}
	if strings.TrimSpace(input.Description) == "" {
		fieldErrors["description"] = "description is required"
	}
	if !input.Price.IsPositive() {
		fieldErrors["price"] = "price must be greater than zero"
	}
	if len(input.Images) == 0 {
		fieldErrors["images"] = "at least one image is required"
	}
	if input.Status != "" && !entity.ProductStatus(input.Status).IsValid() {
		fieldErrors["status"] = "status must be one of AVAILABLE, LOW_STOCK, OUT_OF_STOCK"
	}
	if input.CategoryID == "" {
		fieldErrors["categoryId"] = "categoryId is required"
	} else if _, err := uuid.Parse(input.CategoryID); err != nil {
		fieldErrors["categoryId"] = "categoryId must be a valid UUID"
	}
	if input.Slug == "" {
		fieldErrors["slug"] = "slug is required"
	} else if !util.IsValidSlug(input.Slug) {
		fieldErrors["slug"] = "slug must be lowercase letters, digits and single hyphens"
	}

	if len(fieldErrors) > 0 {
		return domainerrors.NewValidationError(fieldErrors)
	}

	return nil
}

// validateProductUpdate checks the provided fields of a partial update.
func validateProductUpdate(input *usecase.UpdateProductInput) error {
	fieldErrors := map[string]string{}

	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		fieldErrors["name"] = "name must not be empty"
	}
	if input.Description != nil && strings.TrimSpace(*input.Description) == "" {
		fieldErrors["description"] = "description must not be empty"
	}
	if input.Price != nil && !input.Price.IsPositive() {
		fieldErrors["price"] = "price must be greater than zero"
	}
	if input.Status != nil && !entity.ProductStatus(*input.Status).IsValid() {
		fieldErrors["status"] = "status must be one of AVAILABLE, LOW_STOCK, OUT_OF_STOCK"
	}
	if input.CategoryID != nil {
		if _, err := uuid.Parse(*input.CategoryID); err != nil {
			fieldErrors["categoryId"] = "categoryId must be a valid UUID"
		}
	}
	if input.Slug != nil && !util.IsValidSlug(*input.Slug) {
		fieldErrors["slug"] = "slug must be lowercase letters, digits and single hyphens"
	}

	if len(fieldErrors) > 0 {
		return domainerrors.NewValidationError(fieldErrors)
	}

	return nil
}
