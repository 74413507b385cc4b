// Package cache stores rendered artifacts so repeated renders of the same
// input with the same options skip layout and serialization.
//
// Three backends implement [Cache]:
//
//   - [NullCache]: stores nothing; used with --no-cache and in tests
//   - [FileCache]: one JSON envelope per key under a local directory (CLI)
//   - [RedisCache]: a shared Redis instance (HTTP service, several replicas)
//
// Keys come from a [Keyer], which hashes the normalized input and every
// option that changes the output. [Open] picks a backend from [Options].
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
// A miss is reported as hit == false with a nil error.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Clear removes every entry owned by this cache.
	Clear(ctx context.Context) error
	Close() error
}

// DefaultTTL is how long rendered artifacts stay cached.
const DefaultTTL = 7 * 24 * time.Hour
