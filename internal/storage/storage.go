// Package storage persists uploaded company logos.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/jobboard-admin/internal/config"
)

const (
	// TypeLocal writes objects under a directory served by the API itself.
	TypeLocal = "local"
	// TypeS3 writes objects to Amazon S3 or a compatible endpoint.
	TypeS3 = "s3"
)

// ErrEmptyPayload is returned when Save receives no bytes.
var ErrEmptyPayload = errors.New("storage: empty payload")

// SaveOptions controls how an object is named.
// Category groups objects (e.g. "logos") and Extension has no leading dot.
type SaveOptions struct {
	Category    string
	Extension   string
	ContentType string
}

// Storage persists binary objects and returns a backend-specific key.
type Storage interface {
	Save(ctx context.Context, data []byte, opts SaveOptions) (string, error)
	// Delete removes the object; a missing object is not an error.
	Delete(ctx context.Context, key string) error
	// URL returns the public address of a stored key.
	URL(key string) string
}

// LocalBaseDirProvider is implemented by drivers whose objects can be served from disk.
type LocalBaseDirProvider interface {
	LocalBaseDir() string
}

// New instantiates the configured backend.
func New(cfg config.StorageConfig) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Type)) {
	case "", TypeLocal:
		return NewLocalStorage(cfg.LocalDir, cfg.PublicBaseURL)
	case TypeS3:
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

func objectKey(category, ext string) string {
	category = sanitizePathSegment(category)
	if category == "" {
		category = "misc"
	}
	ext = sanitizePathSegment(strings.TrimPrefix(ext, "."))
	if ext == "" {
		ext = "bin"
	}
	return path.Join(category, uuid.NewString()+"."+ext)
}

func joinURL(base, key string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	return base + "/" + strings.TrimLeft(key, "/")
}

func trimPrefix(prefix string) string {
	return strings.Trim(strings.TrimSpace(prefix), "/")
}

func sanitizePathSegment(value string) string {
	value = strings.TrimSpace(value)
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		ch := value[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9', ch == '-', ch == '_':
			b.WriteByte(ch)
		case ch >= 'A' && ch <= 'Z':
			b.WriteByte(ch + 32)
		}
	}
	return b.String()
}
