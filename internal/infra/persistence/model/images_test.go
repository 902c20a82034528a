package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeImages_Nil(t *testing.T) {
	got := NormalizeImages(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNormalizeImages_ListPassesThrough(t *testing.T) {
	in := []string{"http://x/b.jpg", "http://x/a.jpg", "http://x/a.jpg"}

	got := NormalizeImages(in)

	// Same order, no dedup.
	assert.Equal(t, in, got)

	// Shallow copy: mutating the result must not touch the input.
	got[0] = "mutated"
	assert.Equal(t, "http://x/b.jpg", in[0])
}

func TestNormalizeImages_AnyList(t *testing.T) {
	got := NormalizeImages([]any{"http://x/a.jpg", "http://x/b.jpg"})
	assert.Equal(t, []string{"http://x/a.jpg", "http://x/b.jpg"}, got)
}

func TestNormalizeImages_JSONArrayString(t *testing.T) {
	got := NormalizeImages(`["a","b"]`)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestNormalizeImages_JSONArrayBytes(t *testing.T) {
	got := NormalizeImages([]byte(`["http://x/1.jpg","http://x/2.jpg"]`))
	assert.Equal(t, []string{"http://x/1.jpg", "http://x/2.jpg"}, got)
}

func TestNormalizeImages_BareURL(t *testing.T) {
	got := NormalizeImages("http://x/y.jpg")
	assert.Equal(t, []string{"http://x/y.jpg"}, got)
}

func TestNormalizeImages_JSONStringURL(t *testing.T) {
	// A jsonb column stores a legacy single-URL row as a quoted string.
	got := NormalizeImages([]byte(`"http://x/y.jpg"`))
	assert.Equal(t, []string{"http://x/y.jpg"}, got)
}

func TestNormalizeImages_JSONStringNonURL(t *testing.T) {
	got := NormalizeImages([]byte(`"not a url"`))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNormalizeImages_Garbage(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{name: "non-json non-url", raw: "not json"},
		{name: "empty string", raw: ""},
		{name: "whitespace", raw: "   "},
		{name: "json null", raw: "null"},
		{name: "json object", raw: `{"url":"http://x"}`},
		{name: "unexpected type", raw: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeImages(tt.raw)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestEmptyImagesValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{name: "blank", raw: "", want: true},
		{name: "whitespace", raw: "  ", want: true},
		{name: "json null", raw: "null", want: true},
		{name: "empty array", raw: "[]", want: true},
		{name: "populated array", raw: `["http://x/a.jpg"]`, want: false},
		{name: "quoted url", raw: `"http://x/y.jpg"`, want: false},
		{name: "garbage", raw: "not json", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EmptyImagesValue([]byte(tt.raw)))
		})
	}
}

func TestMarshalImages_CanonicalArray(t *testing.T) {
	out, err := MarshalImages([]string{"http://x/a.jpg"})
	assert.NoError(t, err)
	assert.JSONEq(t, `["http://x/a.jpg"]`, string(out))

	out, err = MarshalImages(nil)
	assert.NoError(t, err)
	assert.JSONEq(t, `[]`, string(out))
}

func TestMarshalImages_RoundTripsThroughNormalize(t *testing.T) {
	in := []string{"http://x/1.jpg", "http://x/2.jpg"}

	out, err := MarshalImages(in)
	assert.NoError(t, err)
	assert.Equal(t, in, NormalizeImages(out))
}
