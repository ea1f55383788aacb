package sessions

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/caatpension/pension-api/internal/domain"
)

// RedisRegistry implements Registry on Redis. Entries live under
// key: "active:access:<token>" with TTL = token lifetime, so stale entries
// for expired tokens are evicted by Redis instead of accumulating.
type RedisRegistry struct {
	client *redis.Client
	prefix string
}

// NewRedisRegistry creates a Redis-backed token registry. Prefix may be empty.
func NewRedisRegistry(client *redis.Client, prefix string) *RedisRegistry {
	if prefix == "" {
		prefix = "active:access:"
	}
	return &RedisRegistry{client: client, prefix: prefix}
}

func (r *RedisRegistry) key(token string) string {
	return r.prefix + token
}

func (r *RedisRegistry) Activate(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// ensure a minimal TTL so Redis won't store already-expired tokens
		ttl = time.Second
	}
	return r.client.Set(ctx, r.key(token), "1", ttl).Err()
}

func (r *RedisRegistry) Deactivate(ctx context.Context, token string) error {
	n, err := r.client.Del(ctx, r.key(token)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotActive
	}
	return nil
}

func (r *RedisRegistry) IsActive(ctx context.Context, token string) (bool, error) {
	exists, err := r.client.Exists(ctx, r.key(token)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (r *RedisRegistry) Discard(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.key(token)).Err()
}
