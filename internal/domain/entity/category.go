// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products on the storefront. Its slug is the public-facing
// key used in URLs and must be unique and URL-safe.
type Category struct {
	ID          uuid.UUID  // The unique identifier for the category.
	Name        string     // Human-readable category name shown on the storefront.
	Description string     // Optional longer description of the category.
	Slug        string     // URL-safe unique identifier, e.g. "burger".
	Image       string     // Optional URL of the category image.
	IconName    string     // Optional name of the icon rendered next to the category.
	Products    []*Product // Products belonging to this category. Populated only when explicitly loaded.
	CreatedAt   time.Time  // Timestamp of when this category was created.
	UpdatedAt   time.Time  // Timestamp of the last modification.
}
