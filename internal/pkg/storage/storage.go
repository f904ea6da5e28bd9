package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where uploaded files land.
type FileStorage interface {
	// Upload stores the file under path and returns the stored path.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a stored file.
	Delete(ctx context.Context, path string) error

	// URL returns the public URL for a stored path.
	URL(path string) string
}
