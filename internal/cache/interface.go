package cache

import (
	"context"
	"time"
)

// Cache is the small read-through surface used for derived data that is
// expensive to recompute but cheap to throw away (the category list).
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
