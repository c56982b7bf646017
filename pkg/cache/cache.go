// Package cache provides small byte-oriented caches used across the
// project: an in-memory store backing the commutation verdict memo, and a
// file-based store the CLI uses to cache rendered artifacts between runs.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends. Keys are opaque
// strings; values are raw bytes. A zero ttl means the entry never expires.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}
