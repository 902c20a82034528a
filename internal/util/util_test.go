package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSlug(t *testing.T) {
	valid := []string{"a", "pizza", "spicy-chicken-wings", "combo-2"}
	for _, s := range valid {
		assert.True(t, IsValidSlug(s), s)
	}

	invalid := []string{"", "-pizza", "pizza-", "Pizza", "spicy chicken", "double--dash", "café"}
	for _, s := range invalid {
		assert.False(t, IsValidSlug(s), s)
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "spicy-chicken-wings", Slugify("  Spicy Chicken Wings "))
	assert.Equal(t, "combo-2", Slugify("Combo #2!"))
	assert.Equal(t, "", Slugify("!!!"))
	assert.True(t, IsValidSlug(Slugify("Hello, World")))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.0 KB", FormatBytes(1024))
	assert.Equal(t, "2.5 MB", FormatBytes(2621440))
}
