package cache

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/outlierSlug/dubhacks2025/internal/config"
	"github.com/outlierSlug/dubhacks2025/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := NewRedisClient(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewRedisCache(client, time.Minute, log), mr
}

func TestRedisCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	if _, _, ok := c.Load(ctx, 1); ok {
		t.Fatal("expected miss on empty cache")
	}
	_, key, _ := c.Load(ctx, 1)
	e := model.NewEvent(3, time.Date(2025, 10, 18, 9, 0, 0, 0, time.UTC), 4, model.GenderCoed, 1, "doubles")
	e.Players = append(e.Players, &model.Player{ID: 9, FirstName: "A", LastName: "B", Rating: 100})
	c.Store(ctx, key, []*model.Event{e})

	got, _, ok := c.Load(ctx, 1)
	if !ok {
		t.Fatal("expected hit")
	}
	if len(got) != 1 || got[0].ID != 3 || len(got[0].Players) != 1 || got[0].Players[0].ID != 9 {
		t.Fatalf("unexpected cached value %+v", got)
	}
	if _, _, ok := c.Load(ctx, 2); ok {
		t.Fatal("expected miss for another player")
	}
}

func TestRedisCacheInvalidate(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	_, key, _ := c.Load(ctx, 1)
	c.Store(ctx, key, []*model.Event{})
	if _, _, ok := c.Load(ctx, 1); !ok {
		t.Fatal("expected hit before invalidation")
	}
	c.Invalidate(ctx)
	if _, _, ok := c.Load(ctx, 1); ok {
		t.Fatal("expected miss after invalidation")
	}

	// a store computed before the invalidation must not become visible
	_, staleKey, _ := c.Load(ctx, 2)
	c.Invalidate(ctx)
	c.Store(ctx, staleKey, []*model.Event{})
	if _, _, ok := c.Load(ctx, 2); ok {
		t.Fatal("expected stale store to be ignored")
	}
}

func TestRedisCacheEntriesExpire(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	_, key, _ := c.Load(ctx, 1)
	c.Store(ctx, key, []*model.Event{})
	mr.FastForward(2 * time.Minute)
	if _, _, ok := c.Load(ctx, 1); ok {
		t.Fatal("expected entry to expire")
	}
}

func TestRedisCacheDownBehavesEmpty(t *testing.T) {
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	log := logrus.New()
	log.SetOutput(io.Discard)
	c := NewRedisCache(client, time.Minute, log)
	if _, _, ok := c.Load(ctx, 1); ok {
		t.Fatal("expected miss with redis down")
	}
	c.Store(ctx, "k", nil)
	c.Invalidate(ctx)
}

func TestNewRedisClientUnreachable(t *testing.T) {
	if _, err := NewRedisClient(context.Background(), config.RedisConfig{Addr: "127.0.0.1:1"}); err == nil {
		t.Fatal("expected ping error")
	}
}

func TestNop(t *testing.T) {
	var c Nop
	ctx := context.Background()
	c.Store(ctx, "k", nil)
	c.Invalidate(ctx)
	if _, key, ok := c.Load(ctx, 1); ok || key != "" {
		t.Fatal("expected nop miss")
	}
}
