package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Key names for cached collection listings.
const (
	EnquiryListKey  = "records:enquiries:all"
	CustomerListKey = "records:customers:all"
)

// ListCache stores a whole collection listing as one JSON value. It fails safe:
// redis errors behave like a miss and never reach the caller. A nil client
// disables the cache.
//
// A generation counter stored next to the listing guards against caching a
// listing read before a concurrent invalidation: callers take the generation
// before reading the store and Set only writes if it is unchanged.
type ListCache[T any] struct {
	client *redis.Client
	key    string
	genKey string
	ttl    time.Duration
	logger *zap.Logger
}

// NoGeneration is returned when the generation cannot be read. Set ignores it.
const NoGeneration int64 = -1

var errStaleListing = errors.New("listing invalidated while being read")

// NewListCache builds a cache for the listing stored under key.
func NewListCache[T any](client *redis.Client, key string, ttl time.Duration, logger *zap.Logger) *ListCache[T] {
	return &ListCache[T]{client: client, key: key, genKey: key + ":gen", ttl: ttl, logger: logger}
}

// Get returns the cached listing and whether it was present.
func (c *ListCache[T]) Get(ctx context.Context) ([]T, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.Debug("list cache read failed", zap.String("key", c.key), zap.Error(err))
		return nil, false
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		c.logger.Warn("list cache entry corrupt", zap.String("key", c.key), zap.Error(err))
		return nil, false
	}
	return items, true
}

// Generation returns the current invalidation count for the listing.
func (c *ListCache[T]) Generation(ctx context.Context) int64 {
	if c == nil || c.client == nil {
		return NoGeneration
	}
	gen, err := c.client.Get(ctx, c.genKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0
	}
	if err != nil {
		c.logger.Debug("list cache generation read failed", zap.String("key", c.genKey), zap.Error(err))
		return NoGeneration
	}
	return gen
}

// Set stores a non-empty listing read at generation gen. Nothing is written
// when the listing was invalidated since then. Empty listings are never cached.
func (c *ListCache[T]) Set(ctx context.Context, gen int64, items []T) {
	if c == nil || c.client == nil || gen == NoGeneration || len(items) == 0 {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		c.logger.Warn("list cache encode failed", zap.String("key", c.key), zap.Error(err))
		return
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, c.genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != gen {
			return errStaleListing
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, c.key, raw, c.ttl)
			return nil
		})
		return err
	}, c.genKey)
	if err != nil {
		c.logger.Debug("list cache write skipped", zap.String("key", c.key), zap.Error(err))
	}
}

// Invalidate drops the cached listing and advances its generation.
func (c *ListCache[T]) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, c.genKey)
		pipe.Del(ctx, c.key)
		return nil
	})
	if err != nil {
		c.logger.Debug("list cache invalidate failed", zap.String("key", c.key), zap.Error(err))
	}
	return nil
}
