package repository

import (
	"context"

	"saletafood/internal/domain/entity"
)

// SettingRepository backs the key/value website settings table.
type SettingRepository interface {
	// FindByKeys retrieves all settings whose key is in the given set in a
	// single query. Absent keys are simply missing from the result.
	FindByKeys(ctx context.Context, keys []string) ([]*entity.WebsiteSetting, error)

	// Upsert inserts the setting or updates its value when the key exists.
	Upsert(ctx context.Context, setting *entity.WebsiteSetting) error
}
