package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createItemPayload struct {
	Name     string   `json:"name" validate:"required"`
	Slug     string   `json:"slug" validate:"required,slug"`
	Price    float64  `json:"price" validate:"gt=0"`
	Pictures []string `json:"pictures" validate:"min=1"`
}

func TestValidate_AcceptsValidPayload(t *testing.T) {
	cv := New()

	err := cv.Validate(&createItemPayload{
		Name:     "Burger",
		Slug:     "burger",
		Price:    45000,
		Pictures: []string{"http://x/a.jpg"},
	})

	assert.NoError(t, err)
}

func TestFieldErrors_KeyedByJSONName(t *testing.T) {
	cv := New()

	err := cv.Validate(&createItemPayload{Slug: "Invalid Slug!"})
	require.Error(t, err)

	fieldErrors := FieldErrors(err)

	assert.Equal(t, "name is required", fieldErrors["name"])
	assert.Equal(t, "slug must be lowercase letters, digits and single hyphens", fieldErrors["slug"])
	assert.Equal(t, "price must be greater than 0", fieldErrors["price"])
	assert.Equal(t, "pictures must have at least 1 items", fieldErrors["pictures"])

	// No Go identifiers in any message.
	for field, message := range fieldErrors {
		assert.NotContains(t, message, "createItemPayload", field)
	}
}

func TestFieldErrors_NonValidatorError(t *testing.T) {
	fieldErrors := FieldErrors(errors.New("boom"))

	assert.Equal(t, map[string]string{"request": "invalid request payload"}, fieldErrors)
	assert.NotContains(t, fieldErrors["request"], "boom")
}
