// Package objcache caches rendered mesh exports in Redis so repeated
// downloads of the same maze do not re-run mesh extraction, and so a
// fill happens once per key across service instances.
package objcache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	// default prefix for redis keys
	defaultPrefix string = "mazemesh"

	// default time-to-live for cached payloads
	defaultTTL = time.Hour
)

// Options configures the cache.
type Options struct {
	// Prefix for every redis key owned by this cache
	Prefix string

	// TTL for cached payloads
	TTL time.Duration

	// Cache Logger
	Logger *log.Logger
}

// RedisCache stores rendered payloads in Redis and serializes cache
// fills with a per-key distributed lock.
type RedisCache struct {
	// Redis client
	client *redis.Client

	// Redis lock to serialize fills for the same key
	locker *redsync.Redsync

	// Cache options
	opts *Options
}

// New creates a RedisCache with the provided Redis client and options.
func New(client *redis.Client, opts *Options) (*RedisCache, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}

	if opts == nil {
		opts = &Options{}
	}
	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr, fmt.Sprintf("%s: ", opts.Prefix), log.LstdFlags|log.Lshortfile)
	}

	cache := &RedisCache{
		client: client,
		opts:   opts,
	}
	pool := goredis.NewPool(cache.client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Fetch returns the cached payload for key, invoking fill under a
// per-key lock on a miss. The lock is re-checked after acquisition so
// concurrent callers observe the winner's fill instead of repeating it.
func (c *RedisCache) Fetch(ctx context.Context, key string, fill func() ([]byte, error)) ([]byte, error) {
	fullKey := fmt.Sprintf("%s:%s", c.opts.Prefix, key)

	if data, err := c.client.Get(ctx, fullKey).Bytes(); err == nil {
		return data, nil
	} else if !errors.Is(err, redis.Nil) {
		return nil, err
	}

	mutex := c.locker.NewMutex(fullKey + ":lock")
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	defer func() {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			c.opts.Logger.Printf("releasing lock for %s: %v", fullKey, err)
		}
	}()

	// Someone else may have filled the key while we waited for the lock.
	if data, err := c.client.Get(ctx, fullKey).Bytes(); err == nil {
		return data, nil
	} else if !errors.Is(err, redis.Nil) {
		return nil, err
	}

	data, err := fill()
	if err != nil {
		return nil, err
	}

	if err := c.client.Set(ctx, fullKey, data, c.opts.TTL).Err(); err != nil {
		return nil, err
	}

	return data, nil
}
