// Package cache keeps recommendation lists in redis between writes.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/outlierSlug/dubhacks2025/internal/config"
	"github.com/outlierSlug/dubhacks2025/internal/interfaces"
	"github.com/outlierSlug/dubhacks2025/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	generationKey = "tennis:recommendations:gen"
	entryPrefix   = "tennis:recommendations"
)

// RedisCache stores lists under a generation number; Invalidate bumps the generation
// so older entries are never read again and expire on their own.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

var _ interfaces.RecommendationCache = (*RedisCache)(nil)

// NewRedisClient connects to cfg.Addr and pings it.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return client, nil
}

func NewRedisCache(client *redis.Client, ttl time.Duration, log *logrus.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, log: log}
}

func (c *RedisCache) Load(ctx context.Context, playerID int64) ([]*model.Event, string, bool) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.log.WithError(err).Warn("read recommendation cache generation")
		return nil, "", false
	}
	key := fmt.Sprintf("%s:%d:%d", entryPrefix, gen, playerID)

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, key, false
	}
	if err != nil {
		c.log.WithError(err).WithField("key", key).Warn("read recommendation cache")
		return nil, key, false
	}

	var events []*model.Event
	if err := json.Unmarshal(data, &events); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("decode cached recommendations")
		return nil, key, false
	}
	return events, key, true
}

func (c *RedisCache) Store(ctx context.Context, key string, events []*model.Event) {
	if key == "" {
		return
	}
	data, err := json.Marshal(events)
	if err != nil {
		c.log.WithError(err).Warn("encode recommendations")
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("write recommendation cache")
	}
}

func (c *RedisCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		c.log.WithError(err).Warn("invalidate recommendation cache")
	}
}

// Nop is used when no redis address is configured.
type Nop struct{}

var _ interfaces.RecommendationCache = Nop{}

func (Nop) Load(context.Context, int64) ([]*model.Event, string, bool) { return nil, "", false }
func (Nop) Store(context.Context, string, []*model.Event)             {}
func (Nop) Invalidate(context.Context)                                 {}
