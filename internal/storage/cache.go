package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

const cachePrefix = "jobtracker:photo:"

// RedisCache keeps upload keys in Redis so every API instance sees them.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(url string, ttl time.Duration) (*RedisCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &RedisCache{client: redis.NewClient(opt), ttl: ttl}, nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	v, err := c.client.Get(ctx, cachePrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	return v, err
}

func (c *RedisCache) Set(ctx context.Context, key, url string) error {
	return c.client.Set(ctx, cachePrefix+key, url, c.ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, cachePrefix+key).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// MemoryCache is the single-process fallback when Redis is not configured.
type MemoryCache struct {
	mu   sync.RWMutex
	urls map[string]string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{urls: make(map[string]string)}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.urls[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (c *MemoryCache) Set(_ context.Context, key, url string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.urls[key] = url
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.urls, key)
	return nil
}
