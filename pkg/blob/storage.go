package blob

import (
	"context"
	"io"
)

// Storage stores uploaded files under opaque keys.
type Storage interface {
	// Upload stores the content read from r under key. The key must not
	// already exist; ErrKeyExists is returned instead of overwriting.
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error

	// PublicURL returns the publicly servable URL for key.
	PublicURL(key string) string

	// Delete removes the object under key.
	Delete(ctx context.Context, key string) error

	// Exists reports whether an object is stored under key.
	Exists(ctx context.Context, key string) bool
}
