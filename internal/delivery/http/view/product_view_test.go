package view

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saletafood/internal/domain/entity"
)

func TestNewProductView_PriceIsNumeric(t *testing.T) {
	product := &entity.Product{
		ID:         uuid.New(),
		Name:       "Burger Ayam Pedas",
		Price:      decimal.RequireFromString("45000.00"),
		Images:     []string{"https://cdn.example.com/burger.jpg"},
		Status:     entity.StatusAvailable,
		CategoryID: uuid.New(),
		Slug:       "burger-ayam-pedas",
	}

	view := NewProductView(product)

	assert.InDelta(t, 45000.0, view.Price, 0.0001)

	payload, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"price":45000`)
}

func TestNewProductView_ImagesNeverNil(t *testing.T) {
	product := &entity.Product{
		ID:         uuid.New(),
		Name:       "Es Teh",
		Price:      decimal.NewFromInt(8000),
		Status:     entity.StatusAvailable,
		CategoryID: uuid.New(),
		Slug:       "es-teh",
	}

	view := NewProductView(product)

	require.NotNil(t, view.Images)
	assert.Empty(t, view.Images)

	payload, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"images":[]`)
}

func TestNewProductView_TimestampsAreRFC3339(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

	product := &entity.Product{
		ID:         uuid.New(),
		Name:       "Nasi Goreng",
		Price:      decimal.NewFromInt(30000),
		Images:     []string{"a.jpg"},
		Status:     entity.StatusLowStock,
		CategoryID: uuid.New(),
		Slug:       "nasi-goreng",
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt.Add(2 * time.Hour),
	}

	view := NewProductView(product)

	parsed, err := time.Parse(time.RFC3339, view.CreatedAt)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(createdAt))

	parsedUpdated, err := time.Parse(time.RFC3339, view.UpdatedAt)
	require.NoError(t, err)
	assert.True(t, parsedUpdated.Equal(createdAt.Add(2*time.Hour)))
}

func TestNewProductView_EmbedsCategory(t *testing.T) {
	category := &entity.Category{
		ID:   uuid.New(),
		Name: "Minuman",
		Slug: "minuman",
	}
	product := &entity.Product{
		ID:         uuid.New(),
		Name:       "Es Jeruk",
		Price:      decimal.NewFromInt(10000),
		Images:     []string{"b.jpg"},
		Status:     entity.StatusAvailable,
		CategoryID: category.ID,
		Category:   category,
		Slug:       "es-jeruk",
	}

	view := NewProductView(product)

	require.NotNil(t, view.Category)
	assert.Equal(t, "minuman", view.Category.Slug)
	assert.Equal(t, category.ID.String(), view.Category.ID)
}

func TestNewProductViews_PreservesOrder(t *testing.T) {
	products := []*entity.Product{
		{ID: uuid.New(), Name: "A", Price: decimal.NewFromInt(1), Slug: "a", Status: entity.StatusAvailable, CategoryID: uuid.New()},
		{ID: uuid.New(), Name: "B", Price: decimal.NewFromInt(2), Slug: "b", Status: entity.StatusAvailable, CategoryID: uuid.New()},
		{ID: uuid.New(), Name: "C", Price: decimal.NewFromInt(3), Slug: "c", Status: entity.StatusAvailable, CategoryID: uuid.New()},
	}

	views := NewProductViews(products)

	require.Len(t, views, 3)
	assert.Equal(t, "a", views[0].Slug)
	assert.Equal(t, "b", views[1].Slug)
	assert.Equal(t, "c", views[2].Slug)
}

func TestNewCategoryViewWithProducts(t *testing.T) {
	category := &entity.Category{
		ID:   uuid.New(),
		Name: "Makanan",
		Slug: "makanan",
		Products: []*entity.Product{
			{ID: uuid.New(), Name: "Sate", Price: decimal.NewFromInt(25000), Slug: "sate", Status: entity.StatusAvailable},
		},
	}

	view := NewCategoryViewWithProducts(category)

	require.Len(t, view.Products, 1)
	assert.Equal(t, "sate", view.Products[0].Slug)
}
