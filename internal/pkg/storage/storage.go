package storage

import (
	"context"
	"errors"
	"io"
)

var ErrFileNotFound = errors.New("file not found")

// FileStorage stores uploaded documents such as leave attachments. Keys are
// relative slash-separated paths chosen by the caller.
type FileStorage interface {
	// Save writes the content under the key and returns the cleaned key.
	Save(ctx context.Context, key string, content io.Reader) (string, error)

	// Open retrieves the stored content. Returns ErrFileNotFound when the key
	// does not exist.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Remove deletes the stored content. Removing a missing key is a no-op.
	Remove(ctx context.Context, key string) error

	// URL returns the public URL the stored content is served from.
	URL(key string) string
}
