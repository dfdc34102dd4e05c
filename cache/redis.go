package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"tubeseo/config"
	"tubeseo/types"
)

// Cache is a Redis-backed read-through cache for extracted video metadata.
// It only ever holds serialized copies; request handling stays stateless.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFromEnv creates a Cache when REDIS_ADDR is set and reachable. A missing
// REDIS_ADDR returns (nil, nil): caching is simply disabled.
func NewFromEnv() (*Cache, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return &Cache{client: client, ttl: config.CacheTTL}, nil
}

func metadataKey(videoID string) string {
	return "tubeseo:meta:" + videoID
}

// GetMetadata returns a cached VideoMetadata if present and decodable.
func (c *Cache) GetMetadata(ctx context.Context, videoID string) (*types.VideoMetadata, bool) {
	raw, err := c.client.Get(ctx, metadataKey(videoID)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("cache: get %s failed: %v", videoID, err)
		return nil, false
	}

	var meta types.VideoMetadata
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		log.Printf("cache: corrupt entry for %s: %v", videoID, err)
		return nil, false
	}
	return &meta, true
}

// SetMetadata stores metadata with the configured TTL. Failures are logged and
// swallowed; the cache is an optimization, never a dependency.
func (c *Cache) SetMetadata(ctx context.Context, meta *types.VideoMetadata) {
	b, err := json.Marshal(meta)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, metadataKey(meta.ID), b, c.ttl).Err(); err != nil {
		log.Printf("cache: set %s failed: %v", meta.ID, err)
	}
}

// Close releases the underlying Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}
