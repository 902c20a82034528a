package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a single item in the food catalog. Prices are decimals to avoid
// binary floating-point drift on money values; Images is the canonical
// ordered list of image URLs where the first element is the display image.
type Product struct {
	ID             uuid.UUID       // The unique identifier for the product.
	Name           string          // Product name shown on the storefront.
	Description    string          // Product description.
	Price          decimal.Decimal // Unit price, always >= 0.
	Images         []string        // Ordered image URLs; order is display order.
	Status         ProductStatus   // Availability status set by an administrator.
	CategoryID     uuid.UUID       // Foreign key to the owning category.
	Category       *Category       // The owning category. Populated only when explicitly loaded.
	FurtherDetails []DetailBlock   // Additional rich-text blocks shown on the detail page.
	Tags           []string        // Free-form tags used for filtering and search.
	Featured       bool            // Whether the product appears in the featured section.
	Slug           string          // URL-safe unique identifier, e.g. "burger-ayam-pedas".
	CreatedAt      time.Time       // Timestamp of when this product was created.
	UpdatedAt      time.Time       // Timestamp of the last modification.
}

// DetailBlock is a titled rich-text section on the product detail page.
type DetailBlock struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
