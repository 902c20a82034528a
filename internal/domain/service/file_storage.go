// Package service defines interfaces for infrastructure services consumed
// by the application layer.
package service

import (
	"context"
	"io"
)

// UploadInput describes a single file to store.
type UploadInput struct {
	Filename    string    // Original filename supplied by the client.
	ContentType string    // MIME type of the payload, e.g. "image/jpeg".
	Size        int64     // Payload size in bytes.
	Body        io.Reader // The file content.
}

// FileStorage stores binary blobs (product and category images) in object
// storage and hands back a publicly reachable URL.
type FileStorage interface {
	// Upload stores the blob under a collision-resistant, timestamp-prefixed
	// key and returns the public URL.
	Upload(ctx context.Context, input UploadInput) (string, error)

	// Delete removes a previously stored blob by its key.
	Delete(ctx context.Context, key string) error
}
