package repository

import (
	"context"
	"time"
)

// CacheRepository defines the key-value store holding per-visitor state
// (favorites, language preference).
type CacheRepository interface {
	// Get returns the value for a key, or nil on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value; a zero TTL means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Exists checks key presence.
	Exists(ctx context.Context, key string) (bool, error)
}
