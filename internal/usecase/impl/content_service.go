package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "saletafood/internal/delivery/context"
	"saletafood/internal/domain/entity"
	"saletafood/internal/domain/repository"
	"saletafood/internal/domain/service"
	"saletafood/internal/usecase"

	"github.com/pkg/errors"
)

// Setting keys backing the homepage content blocks.
const (
	keyHeroTitle       = "hero.title"
	keyHeroDescription = "hero.description"
	keyHeroImageURL    = "hero.imageUrl"

	keyCTATitle       = "cta.title"
	keyCTADescription = "cta.description"
	keyCTAButtonText  = "cta.buttonText"
	keyCTAButtonURL   = "cta.buttonUrl"
)

// Defaults served for keys that have never been saved.
var heroDefaults = map[string]string{
	keyHeroTitle:       "Sale Ta Food",
	keyHeroDescription: "Fresh, homemade dishes prepared daily.",
	keyHeroImageURL:    "",
}

var ctaDefaults = map[string]string{
	keyCTATitle:       "Hungry yet?",
	keyCTADescription: "Browse the menu and place your order in minutes.",
	keyCTAButtonText:  "See the menu",
	keyCTAButtonURL:   "/menu",
}

// contentService implements the ContentUsecase interface.
type contentService struct {
	visitorRepo repository.VisitorRepository
	settingRepo repository.SettingRepository
	txManager   repository.TransactionManager
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(
	visitorRepo repository.VisitorRepository,
	settingRepo repository.SettingRepository,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ContentUsecase {
	return &contentService{
		visitorRepo: visitorRepo,
		settingRepo: settingRepo,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

// GetVisitorCount returns the current visitor count, 0 on an empty store.
func (srv *contentService) GetVisitorCount(ctx context.Context) (int64, error) {
	count, err := srv.visitorRepo.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read visitor count")
	}

	return count, nil
}

// RecordVisit increments the visitor counter and returns the new count.
// The increment happens in the store, so concurrent visits never lose one.
func (srv *contentService) RecordVisit(ctx context.Context) (int64, error) {
	count, err := srv.visitorRepo.Increment(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to increment visitor count")
	}

	return count, nil
}

// GetHeroContent returns the hero block, falling back to defaults for any
// key that has never been saved.
func (srv *contentService) GetHeroContent(ctx context.Context) (*usecase.HeroContent, error) {
	values, err := srv.GetNamedSettings(ctx,
		[]string{keyHeroTitle, keyHeroDescription, keyHeroImageURL}, heroDefaults)
	if err != nil {
		return nil, err
	}

	return &usecase.HeroContent{
		Title:       values[keyHeroTitle],
		Description: values[keyHeroDescription],
		ImageURL:    values[keyHeroImageURL],
	}, nil
}

// UpdateHeroContent saves the hero block. All three keys are written in one
// transaction so readers never observe a half-updated block.
func (srv *contentService) UpdateHeroContent(ctx context.Context, content *usecase.HeroContent) error {
	err := srv.upsertAll(ctx, map[string]string{
		keyHeroTitle:       content.Title,
		keyHeroDescription: content.Description,
		keyHeroImageURL:    content.ImageURL,
	})
	if err != nil {
		return err
	}

	srv.logger.Info("Hero content updated")
	srv.publishEvent(ctx)

	return nil
}

// GetCTAContent returns the CTA block, falling back to defaults for any key
// that has never been saved.
func (srv *contentService) GetCTAContent(ctx context.Context) (*usecase.CTAContent, error) {
	values, err := srv.GetNamedSettings(ctx,
		[]string{keyCTATitle, keyCTADescription, keyCTAButtonText, keyCTAButtonURL}, ctaDefaults)
	if err != nil {
		return nil, err
	}

	return &usecase.CTAContent{
		Title:       values[keyCTATitle],
		Description: values[keyCTADescription],
		ButtonText:  values[keyCTAButtonText],
		ButtonURL:   values[keyCTAButtonURL],
	}, nil
}

// UpdateCTAContent saves the CTA block.
func (srv *contentService) UpdateCTAContent(ctx context.Context, content *usecase.CTAContent) error {
	err := srv.upsertAll(ctx, map[string]string{
		keyCTATitle:       content.Title,
		keyCTADescription: content.Description,
		keyCTAButtonText:  content.ButtonText,
		keyCTAButtonURL:   content.ButtonURL,
	})
	if err != nil {
		return err
	}

	srv.logger.Info("CTA content updated")
	srv.publishEvent(ctx)

	return nil
}

// GetNamedSettings reads all requested keys in one query, substituting the
// provided default for any missing key.
func (srv *contentService) GetNamedSettings(ctx context.Context, keys []string, defaults map[string]string) (map[string]string, error) {
	settings, err := srv.settingRepo.FindByKeys(ctx, keys)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read settings")
	}

	stored := make(map[string]string, len(settings))
	for _, setting := range settings {
		stored[setting.Key] = setting.Value
	}

	values := make(map[string]string, len(keys))
	for _, key := range keys {
		if value, ok := stored[key]; ok {
			values[key] = value
		} else {
			values[key] = defaults[key]
		}
	}

	return values, nil
}

// UpsertSetting inserts or updates a single setting.
func (srv *contentService) UpsertSetting(ctx context.Context, key, value string) error {
	setting := &entity.WebsiteSetting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	if err := srv.settingRepo.Upsert(ctx, setting); err != nil {
		return errors.Wrap(err, "failed to upsert setting")
	}

	return nil
}

// upsertAll writes a set of settings inside one transaction.
func (srv *contentService) upsertAll(ctx context.Context, values map[string]string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		settingRepo := repoFactory.SettingRepo()
		now := time.Now()

		for key, value := range values {
			setting := &entity.WebsiteSetting{Key: key, Value: value, UpdatedAt: now}
			if err := settingRepo.Upsert(ctx, setting); err != nil {
				return errors.Wrap(err, "failed to upsert setting "+key)
			}
		}

		return nil
	})
}

// publishEvent notifies downstream caches that homepage content changed.
func (srv *contentService) publishEvent(ctx context.Context) {
	event := &service.CatalogEvent{
		Entity:    "content",
		Action:    service.CatalogActionUpdated,
		Paths:     []string{"/"},
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
	}
	if err := srv.publisher.PublishCatalogEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish catalog event",
			"entity", "content", "action", service.CatalogActionUpdated, "error", err)
	}
}
