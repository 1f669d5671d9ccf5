package cache

import (
	"context"
	"time"
)

// Client is the contract any cache backend must satisfy.
type Client interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}
