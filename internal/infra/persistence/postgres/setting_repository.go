package postgres

import (
	"context"

	"saletafood/internal/domain/entity"
	domainerrors "saletafood/internal/domain/errors"
	"saletafood/internal/domain/repository"
	"saletafood/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingRepository implements the repository.SettingRepository interface using GORM.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository is the constructor for settingRepository.
func NewSettingRepository(db *gorm.DB) repository.SettingRepository {
	return &settingRepository{db: db}
}

// FindByKeys retrieves all settings whose key is in the given set in one query.
func (repo *settingRepository) FindByKeys(ctx context.Context, keys []string) ([]*entity.WebsiteSetting, error) {
	if len(keys) == 0 {
		return []*entity.WebsiteSetting{}, nil
	}

	var settingModels []*model.WebsiteSettingModel

	if err := repo.db.WithContext(ctx).
		Where("key IN ?", keys).
		Find(&settingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find settings by keys")
	}

	settings := make([]*entity.WebsiteSetting, 0, len(settingModels))
	for _, settingM := range settingModels {
		settings = append(settings, toSettingDomain(settingM))
	}

	return settings, nil
}

// Upsert inserts the setting or updates its value when the key exists.
func (repo *settingRepository) Upsert(ctx context.Context, setting *entity.WebsiteSetting) error {
	settingM := &model.WebsiteSettingModel{
		Key:   setting.Key,
		Value: setting.Value,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(settingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert setting")
	}

	setting.UpdatedAt = settingM.UpdatedAt

	return nil
}

// toSettingDomain converts a GORM WebsiteSettingModel to a domain WebsiteSetting entity.
func toSettingDomain(data *model.WebsiteSettingModel) *entity.WebsiteSetting {
	if data == nil {
		return nil
	}

	return &entity.WebsiteSetting{
		Key:       data.Key,
		Value:     data.Value,
		UpdatedAt: data.UpdatedAt,
	}
}
