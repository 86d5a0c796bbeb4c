// Package storage abstracts where listing photos are kept. The local
// filesystem implementation can be swapped for S3 / Cloudflare R2 without
// touching the handlers.
package storage

import (
	"context"
	"io"
)

// Storage persists uploaded files under a unique key and serves them by URL.
type Storage interface {
	// Save stores the file and returns its public URL.
	// key is a unique path within the store, e.g. "listings/<id>/<uuid>.jpg".
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the file stored under key. Deleting a missing key is
	// not an error.
	Delete(ctx context.Context, key string) error
}
