package geo

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a location is not cached.
var ErrCacheMiss = errors.New("geo cache: key not found")

// Coordinates is a cached geocoding result.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Cache stores resolved coordinates keyed by the raw location string.
// Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, location string) (Coordinates, error)
	Set(ctx context.Context, location string, c Coordinates, ttl time.Duration) error
}

// memoryItem holds one in-process cache entry with its expiry.
type memoryItem struct {
	coords   Coordinates
	expireAt time.Time
}

// MemoryCache is the in-process Cache used when no Redis address is
// configured. Expired entries are swept by a background ticker.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]memoryItem
}

// NewMemoryCache creates an in-memory cache and starts its sweeper.
func NewMemoryCache(cleanupInterval time.Duration) *MemoryCache {
	mc := &MemoryCache{data: make(map[string]memoryItem)}
	go mc.sweep(cleanupInterval)
	return mc
}

func (mc *MemoryCache) Get(_ context.Context, location string) (Coordinates, error) {
	mc.mu.RLock()
	item, ok := mc.data[location]
	mc.mu.RUnlock()
	if !ok || time.Now().After(item.expireAt) {
		return Coordinates{}, ErrCacheMiss
	}
	return item.coords, nil
}

func (mc *MemoryCache) Set(_ context.Context, location string, c Coordinates, ttl time.Duration) error {
	mc.mu.Lock()
	mc.data[location] = memoryItem{coords: c, expireAt: time.Now().Add(ttl)}
	mc.mu.Unlock()
	return nil
}

func (mc *MemoryCache) sweep(interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	for range time.Tick(interval) {
		now := time.Now()
		mc.mu.Lock()
		for k, v := range mc.data {
			if now.After(v.expireAt) {
				delete(mc.data, k)
			}
		}
		mc.mu.Unlock()
	}
}

// RedisCache is the Redis-backed Cache used in multi-instance deployments,
// so all replicas share one geocode cache.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache wraps an existing Redis client. The prefix namespaces keys
// so the cache can share a database with other consumers.
func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	if prefix == "" {
		prefix = "geo"
	}
	return &RedisCache{client: client, prefix: prefix}
}

func (rc *RedisCache) Get(ctx context.Context, location string) (Coordinates, error) {
	raw, err := rc.client.Get(ctx, rc.prefix+":"+location).Result()
	if errors.Is(err, redis.Nil) {
		return Coordinates{}, ErrCacheMiss
	}
	if err != nil {
		return Coordinates{}, err
	}
	var c Coordinates
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return Coordinates{}, err
	}
	return c, nil
}

func (rc *RedisCache) Set(ctx context.Context, location string, c Coordinates, ttl time.Duration) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return rc.client.Set(ctx, rc.prefix+":"+location, raw, ttl).Err()
}
