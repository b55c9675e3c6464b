package storage

import (
	"context"
	"io"
)

// Storage is the file storage backend used for guest documents and
// gallery photos. Implementations: S3-compatible object storage for
// production, local filesystem for development.
type Storage interface {
	// Put stores a file under the given key.
	Put(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get retrieves a file by key. Caller closes the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a file by key.
	Delete(ctx context.Context, key string) error

	// GetURL returns the public URL for a key.
	GetURL(key string) string
}

// Config holds backend settings for NewStorage.
type Config struct {
	Driver      string // "s3" or "local"
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string
	LocalDir    string
	LocalURL    string
}

// NewStorage creates the backend selected by cfg.Driver.
func NewStorage(cfg Config) (Storage, error) {
	if cfg.Driver == "s3" {
		return NewS3Storage(cfg)
	}
	return NewLocalStorage(cfg.LocalDir, cfg.LocalURL)
}
