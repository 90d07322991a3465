package cache

import (
	"context"
	"time"
)

// Store is a key-value cache with expiration. The analytics dashboard uses
// it to avoid recomputing aggregations on every request.
type Store interface {
	// Get retrieves a value by key. The second return is false when the key
	// is missing or expired.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a key-value pair with expiration
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Delete removes a key
	Delete(ctx context.Context, key string) error
}
