package pokeapi

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const detailKeyPrefix = "pokeapi:pokemon:"

// Cache stores raw upstream payloads. Get reports a miss with ok=false.
type Cache interface {
	Get(ctx context.Context, key string) (val []byte, ok bool, err error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

// RedisCache is a Cache backed by go-redis.
type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

// NewRedisClient creates and pings a Redis client.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, val, ttl).Err()
}

// Fetcher is the subset of Client the proxy service depends on.
type Fetcher interface {
	ListPokemon(ctx context.Context, limit, offset string) ([]byte, error)
	GetPokemon(ctx context.Context, nameOrID string) ([]byte, error)
}

var _ Fetcher = (*Client)(nil)

// CachedClient serves detail lookups from Cache when possible. Lists are
// never cached and 404s are never stored. Cache failures only get reported
// through onCacheErr and the request falls through to the upstream.
type CachedClient struct {
	next       Fetcher
	cache      Cache
	ttl        time.Duration
	onCacheErr func(op string, err error)
}

func NewCachedClient(next Fetcher, cache Cache, ttl time.Duration, onCacheErr func(op string, err error)) *CachedClient {
	if onCacheErr == nil {
		onCacheErr = func(string, error) {}
	}
	return &CachedClient{next: next, cache: cache, ttl: ttl, onCacheErr: onCacheErr}
}

var _ Fetcher = (*CachedClient)(nil)

func (c *CachedClient) ListPokemon(ctx context.Context, limit, offset string) ([]byte, error) {
	return c.next.ListPokemon(ctx, limit, offset)
}

func (c *CachedClient) GetPokemon(ctx context.Context, nameOrID string) ([]byte, error) {
	key := detailKeyPrefix + nameOrID

	val, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.onCacheErr("get", err)
	} else if ok {
		return val, nil
	}

	body, err := c.next.GetPokemon(ctx, nameOrID)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Set(ctx, key, body, c.ttl); err != nil {
		c.onCacheErr("set", err)
	}
	return body, nil
}
