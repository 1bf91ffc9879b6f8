// Package cache wraps the redis client used to memoize generated reports.
// Cached entries are short-lived snapshots; the authoritative numbers are
// always recomputed from raw attendance rows on a miss.
package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/klinikmedika/absensi-backend-go/internal/config"
)

type Cache struct {
	client *redis.Client
	prefix string
}

func New(cfg config.RedisConfig) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		MinIdleConns: 5,
		MaxRetries:   3,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Cache{client: client, prefix: cfg.KeyPrefix}, nil
}

// Key builds a namespaced cache key from its parts.
func (c *Cache) Key(parts ...string) string {
	var sb strings.Builder
	sb.WriteString(c.prefix)
	for _, part := range parts {
		if part != "" {
			sb.WriteString(":")
			sb.WriteString(part)
		}
	}
	return sb.String()
}

// Get returns the cached payload for key, or ok=false on a miss. Transport
// errors are treated as misses so the caller falls through to recompute.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores payload under key with the given TTL. Failures are returned so
// the caller can log them; a failed Set never fails the request.
func (c *Cache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, payload, ttl).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}
