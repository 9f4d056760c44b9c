package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer. The user repository uses
// it cache-aside for user-by-id lookups, which the auth middleware performs
// on every protected request.
type Cache interface {
	// Get fetches key into dest.
	// Returns (found, error); on a miss dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping checks the connection.
	Ping(ctx context.Context) error
}
