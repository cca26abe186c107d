// Package cache stores extraction results between runs.
//
// A [Cache] is a byte-oriented key/value store with per-entry expiry. The
// pipeline serializes extraction results to JSON and keys them with a
// [Keyer], which hashes the edition, the title, the page body and the
// capture options: editing a page or changing the options yields a new key,
// so stale results are never served.
//
// Implementations:
//   - [FileCache]: one JSON file per entry under a directory (CLI use)
//   - [RedisCache]: entries in Redis with native expiry (server use)
//   - [NullCache]: stores nothing (caching disabled)
package cache

import (
	"context"
	"time"
)

// Cache is a key/value store for serialized results.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is reported
	// as hit == false with a nil error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// TTLExtraction is the default lifetime of a cached extraction result.
// Keys include the page body hash, so the TTL only bounds storage growth.
const TTLExtraction = 7 * 24 * time.Hour
