package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"

	"saletafood/internal/domain/service"
)

func TestBuildKey(t *testing.T) {
	key := buildKey("photo.JPG")

	assert.True(t, strings.HasPrefix(key, "uploads/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	// Two uploads of the same filename must never collide.
	assert.NotEqual(t, key, buildKey("photo.JPG"))
}

func TestBlobStorage_UploadAndDelete(t *testing.T) {
	ctx := context.Background()

	bucket, err := fileblob.OpenBucket(t.TempDir(), nil)
	require.NoError(t, err)
	defer bucket.Close()

	storage := &blobStorage{
		bucket:        bucket,
		publicBaseURL: "https://cdn.saletafood.com",
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	url, err := storage.Upload(ctx, service.UploadInput{
		Filename:    "burger.png",
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("data"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.saletafood.com/uploads/"))

	key := strings.TrimPrefix(url, "https://cdn.saletafood.com/")

	stored, err := bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "data", string(stored))

	require.NoError(t, storage.Delete(ctx, key))

	_, err = bucket.ReadAll(ctx, key)
	assert.Error(t, err)
}
