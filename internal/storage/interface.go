package storage

import (
	"context"
	"io"
)

// Storage is the interface for license image storage backends. Keys are
// opaque paths chosen by the caller.
type Storage interface {
	// Upload stores the object under key and returns the stored path.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)

	// Download opens the object for reading.
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
}
