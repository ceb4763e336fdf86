package cache

import (
	"context"
	"time"
)

// Nop is a Cache that stores nothing. Used when Redis is disabled or
// unreachable at startup so callers never need a nil check.
type Nop struct{}

func (Nop) Get(ctx context.Context, key string, dest interface{}) (bool, error) { return false, nil }

func (Nop) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (Nop) Delete(ctx context.Context, keys ...string) error { return nil }

func (Nop) DeletePattern(ctx context.Context, pattern string) error { return nil }

func (Nop) Generation(ctx context.Context, genKey string) (int64, error) { return 0, nil }

func (Nop) Bump(ctx context.Context, genKey string) error { return nil }

func (Nop) SetIfGeneration(ctx context.Context, key string, value interface{}, ttl time.Duration, genKey string, gen int64) (bool, error) {
	return false, nil
}

func (Nop) Ping(ctx context.Context) error { return nil }
