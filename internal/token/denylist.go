package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Denylist records revoked tokens until their natural expiry.
type Denylist interface {
	Add(ctx context.Context, fingerprint string, ttl time.Duration) error
	Contains(ctx context.Context, fingerprint string) (bool, error)
}

const denylistKeyPrefix = "auth:revoked:"

// RedisDenylist stores revoked token fingerprints as expiring Redis keys.
type RedisDenylist struct {
	client redis.UniversalClient
}

func NewRedisDenylist(client redis.UniversalClient) *RedisDenylist {
	return &RedisDenylist{client: client}
}

func (d *RedisDenylist) Add(ctx context.Context, fingerprint string, ttl time.Duration) error {
	if err := d.client.Set(ctx, denylistKeyPrefix+fingerprint, 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (d *RedisDenylist) Contains(ctx context.Context, fingerprint string) (bool, error) {
	err := d.client.Get(ctx, denylistKeyPrefix+fingerprint).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	default:
		return false, fmt.Errorf("failed to check token: %w", err)
	}
}
