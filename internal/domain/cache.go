package domain

import (
	"context"
	"time"
)

// Cache abstracts the key-value cache used for derived counters.
// Implementations translate their native miss error to ErrCacheMiss.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
