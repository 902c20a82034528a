package impl

import (
	"context"
	"testing"

	"saletafood/internal/domain/entity"
	mockRepo "saletafood/internal/mocks/repository"
	mockSvc "saletafood/internal/mocks/service"
	"saletafood/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// contentServiceFixtures holds all test dependencies for content service tests.
type contentServiceFixtures struct {
	service     usecase.ContentUsecase
	visitorRepo *mockRepo.MockVisitorRepository
	settingRepo *mockRepo.MockSettingRepository
	txManager   *mockRepo.MockTransactionManager
	publisher   *mockSvc.MockEventPublisher
}

func createTestContentService(t *testing.T) contentServiceFixtures {
	visitorRepo := mockRepo.NewMockVisitorRepository(t)
	settingRepo := mockRepo.NewMockSettingRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := NewContentService(visitorRepo, settingRepo, txManager, publisher, newDiscardLogger())

	return contentServiceFixtures{
		service:     service,
		visitorRepo: visitorRepo,
		settingRepo: settingRepo,
		txManager:   txManager,
		publisher:   publisher,
	}
}

func TestContentService_GetVisitorCount_EmptyStore(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()

	fx.visitorRepo.EXPECT().Count(ctx).Return(int64(0), nil)

	count, err := fx.service.GetVisitorCount(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestContentService_RecordVisit_CountsUpward(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()

	fx.visitorRepo.EXPECT().Increment(ctx).Return(int64(1), nil).Once()
	fx.visitorRepo.EXPECT().Increment(ctx).Return(int64(2), nil).Once()

	first, err := fx.service.RecordVisit(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := fx.service.RecordVisit(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second)
}

func TestContentService_GetHeroContent_Defaults(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()

	fx.settingRepo.EXPECT().
		FindByKeys(ctx, []string{keyHeroTitle, keyHeroDescription, keyHeroImageURL}).
		Return(nil, nil)

	hero, err := fx.service.GetHeroContent(ctx)

	require.NoError(t, err)
	assert.Equal(t, heroDefaults[keyHeroTitle], hero.Title)
	assert.Equal(t, heroDefaults[keyHeroDescription], hero.Description)
}

func TestContentService_GetHeroContent_StoredValuesWin(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()

	fx.settingRepo.EXPECT().
		FindByKeys(ctx, []string{keyHeroTitle, keyHeroDescription, keyHeroImageURL}).
		Return([]*entity.WebsiteSetting{
			{Key: keyHeroTitle, Value: "Warung Makan Sedap"},
		}, nil)

	hero, err := fx.service.GetHeroContent(ctx)

	require.NoError(t, err)
	assert.Equal(t, "Warung Makan Sedap", hero.Title)
	// Unsaved keys still fall back.
	assert.Equal(t, heroDefaults[keyHeroDescription], hero.Description)
}

func TestContentService_UpdateHeroContent(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()

	saved := map[string]string{}
	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		settingRepo := mockRepo.NewMockSettingRepository(t)
		factory.EXPECT().SettingRepo().Return(settingRepo)

		settingRepo.EXPECT().
			Upsert(ctx, mock.AnythingOfType("*entity.WebsiteSetting")).
			RunAndReturn(func(ctx context.Context, setting *entity.WebsiteSetting) error {
				saved[setting.Key] = setting.Value
				return nil
			})
	})
	fx.publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.AnythingOfType("*service.CatalogEvent")).
		Return(nil)

	err := fx.service.UpdateHeroContent(ctx, &usecase.HeroContent{
		Title:       "Warung Makan Sedap",
		Description: "Open every day",
		ImageURL:    "https://cdn.example.com/hero.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		keyHeroTitle:       "Warung Makan Sedap",
		keyHeroDescription: "Open every day",
		keyHeroImageURL:    "https://cdn.example.com/hero.jpg",
	}, saved)
}

func TestContentService_GetCTAContent_Defaults(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()

	fx.settingRepo.EXPECT().
		FindByKeys(ctx, []string{keyCTATitle, keyCTADescription, keyCTAButtonText, keyCTAButtonURL}).
		Return([]*entity.WebsiteSetting{}, nil)

	cta, err := fx.service.GetCTAContent(ctx)

	require.NoError(t, err)
	assert.Equal(t, ctaDefaults[keyCTAButtonText], cta.ButtonText)
	assert.Equal(t, ctaDefaults[keyCTAButtonURL], cta.ButtonURL)
}

func TestContentService_GetNamedSettings_MixedStoredAndDefaults(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()

	fx.settingRepo.EXPECT().
		FindByKeys(ctx, []string{"a", "b"}).
		Return([]*entity.WebsiteSetting{{Key: "a", Value: "stored"}}, nil)

	values, err := fx.service.GetNamedSettings(ctx, []string{"a", "b"}, map[string]string{"b": "fallback"})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "stored", "b": "fallback"}, values)
}

func TestContentService_UpsertSetting(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()

	fx.settingRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.WebsiteSetting")).
		RunAndReturn(func(ctx context.Context, setting *entity.WebsiteSetting) error {
			assert.Equal(t, "footer.note", setting.Key)
			assert.Equal(t, "Closed on Mondays", setting.Value)
			return nil
		})

	err := fx.service.UpsertSetting(ctx, "footer.note", "Closed on Mondays")

	require.NoError(t, err)
}
