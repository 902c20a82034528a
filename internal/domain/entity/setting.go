package entity

import "time"

// WebsiteSetting is a single key/value row backing small content-managed
// blocks on the storefront (hero section, CTA section). Keys are unique;
// absent keys fall back to hard-coded defaults in the content layer.
type WebsiteSetting struct {
	Key       string    // Unique setting key, e.g. "hero.title".
	Value     string    // The stored value.
	UpdatedAt time.Time // Timestamp of the last modification.
}
