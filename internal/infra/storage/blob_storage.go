// Package storage stores uploaded images in object storage behind the
// portable gocloud blob API.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"saletafood/config"
	"saletafood/internal/domain/service"
	"saletafood/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register the bucket drivers used across environments.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// StorageParams holds dependencies for FileStorage, injected by Fx.
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens the configured bucket and returns a FileStorage
// backed by it.
func NewBlobStorage(params StorageParams) (service.FileStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing blob storage bucket")

			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Upload stores the blob under a collision-resistant, timestamp-prefixed
// key and returns the public URL.
func (s *blobStorage) Upload(ctx context.Context, input service.UploadInput) (string, error) {
	key := buildKey(input.Filename)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: input.ContentType,
	})
	if err != nil {
		return "", errors.WithStack(err)
	}

	if _, err := writer.ReadFrom(input.Body); err != nil {
		writer.Close()

		return "", errors.WithStack(err)
	}

	if err := writer.Close(); err != nil {
		return "", errors.WithStack(err)
	}

	s.logger.Info("Stored uploaded image",
		slog.String("key", key),
		slog.String("content_type", input.ContentType),
		slog.String("size", util.FormatBytes(input.Size)),
	)

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes a previously stored blob by its key.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	return errors.WithStack(s.bucket.Delete(ctx, key))
}

// buildKey produces "uploads/<unix-nano>-<uuid><ext>" so repeated uploads
// of the same filename never collide.
func buildKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))

	return fmt.Sprintf("uploads/%d-%s%s", time.Now().UnixNano(), uuid.NewString(), ext)
}
