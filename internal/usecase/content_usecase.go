package usecase

import "context"

// HeroContent is the content-managed hero block on the homepage.
type HeroContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// CTAContent is the content-managed call-to-action block on the homepage.
type CTAContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ButtonText  string `json:"buttonText"`
	ButtonURL   string `json:"buttonUrl"`
}

// ContentUsecase covers the homepage content blocks and the visitor counter.
type ContentUsecase interface {
	// GetVisitorCount returns the current visitor count, 0 on an empty store.
	GetVisitorCount(ctx context.Context) (int64, error)

	// RecordVisit increments the visitor counter and returns the new count.
	RecordVisit(ctx context.Context) (int64, error)

	// GetHeroContent returns the hero block, falling back to defaults for
	// any key that has never been saved.
	GetHeroContent(ctx context.Context) (*HeroContent, error)

	// UpdateHeroContent saves the hero block.
	UpdateHeroContent(ctx context.Context, content *HeroContent) error

	// GetCTAContent returns the CTA block, falling back to defaults for
	// any key that has never been saved.
	GetCTAContent(ctx context.Context) (*CTAContent, error)

	// UpdateCTAContent saves the CTA block.
	UpdateCTAContent(ctx context.Context, content *CTAContent) error

	// GetNamedSettings reads all requested keys in one query, substituting
	// the provided default for any missing key.
	GetNamedSettings(ctx context.Context, keys []string, defaults map[string]string) (map[string]string, error)

	// UpsertSetting inserts or updates a single setting.
	UpsertSetting(ctx context.Context, key, value string) error
}
