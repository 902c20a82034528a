// Package view shapes domain entities into the JSON payloads the
// storefront consumes.
package view

import (
	"time"

	"saletafood/internal/domain/entity"
)

// CategoryView is the wire representation of a category.
type CategoryView struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Slug        string        `json:"slug"`
	Image       string        `json:"image,omitempty"`
	IconName    string        `json:"iconName,omitempty"`
	Products    []ProductView `json:"products,omitempty"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt"`
}

// ProductView is the wire representation of a product. Price is rendered
// as a JSON number; the decimal string round-trips exactly for the two
// fraction digits the store uses.
type ProductView struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Description    string               `json:"description,omitempty"`
	Price          float64              `json:"price"`
	Images         []string             `json:"images"`
	Status         string               `json:"status"`
	CategoryID     string               `json:"categoryId"`
	Category       *CategoryView        `json:"category,omitempty"`
	FurtherDetails []entity.DetailBlock `json:"furtherDetails,omitempty"`
	Tags           []string             `json:"tags,omitempty"`
	Featured       bool                 `json:"featured"`
	Slug           string               `json:"slug"`
	CreatedAt      string               `json:"createdAt"`
	UpdatedAt      string               `json:"updatedAt"`
}

// NewCategoryView maps a category without its products.
func NewCategoryView(category *entity.Category) CategoryView {
	return CategoryView{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
		Slug:        category.Slug,
		Image:       category.Image,
		IconName:    category.IconName,
		CreatedAt:   formatTime(category.CreatedAt),
		UpdatedAt:   formatTime(category.UpdatedAt),
	}
}

// NewCategoryViewWithProducts maps a category together with its products.
func NewCategoryViewWithProducts(category *entity.Category) CategoryView {
	view := NewCategoryView(category)
	view.Products = NewProductViews(category.Products)

	return view
}

// NewCategoryViews maps a list of categories, keeping order.
func NewCategoryViews(categories []*entity.Category) []CategoryView {
	views := make([]CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, NewCategoryView(category))
	}

	return views
}

// NewProductView maps a single product.
func NewProductView(product *entity.Product) ProductView {
	images := product.Images
	if images == nil {
		images = []string{}
	}

	view := ProductView{
		ID:             product.ID.String(),
		Name:           product.Name,
		Description:    product.Description,
		Price:          decimalToFloat(product.Price),
		Images:         images,
		Status:         product.Status.String(),
		CategoryID:     product.CategoryID.String(),
		FurtherDetails: product.FurtherDetails,
		Tags:           product.Tags,
		Featured:       product.Featured,
		Slug:           product.Slug,
		CreatedAt:      formatTime(product.CreatedAt),
		UpdatedAt:      formatTime(product.UpdatedAt),
	}

	if product.Category != nil {
		category := NewCategoryView(product.Category)
		view.Category = &category
	}

	return view
}

// NewProductViews maps a list of products, keeping order.
func NewProductViews(products []*entity.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, NewProductView(product))
	}

	return views
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
