// Package storage routes file I/O to an S3-compatible object store.
// The R2 implementation works with any S3-compatible provider (Cloudflare R2,
// MinIO, AWS S3); swap implementations by changing the concrete type injected
// at startup.
package storage

import (
	"context"
	"io"
)

// Storage is the interface for saving and retrieving objects.
type Storage interface {
	// Save streams data to the store under the given key.
	Save(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// Open returns a reader for the object content. The caller must close it.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes an object identified by key.
	Delete(ctx context.Context, key string) error
	// URL constructs the browser-accessible URL for a given key.
	URL(key string) string
}
