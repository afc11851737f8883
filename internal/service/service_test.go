package service

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/outlierSlug/dubhacks2025/internal/config"
	"github.com/outlierSlug/dubhacks2025/internal/database"
	"github.com/outlierSlug/dubhacks2025/internal/model"
	"github.com/outlierSlug/dubhacks2025/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// memoryCache counts calls so tests can see hits and invalidations.
type memoryCache struct {
	mu            sync.Mutex
	gen           int
	entries       map[int64][]*model.Event
	entryGen      map[int64]int
	hits          int
	invalidations int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[int64][]*model.Event{}, entryGen: map[int64]int{}}
}

func (c *memoryCache) Load(_ context.Context, playerID int64) ([]*model.Event, string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := fmt.Sprintf("%d:%d", c.gen, playerID)
	if ev, ok := c.entries[playerID]; ok && c.entryGen[playerID] == c.gen {
		c.hits++
		return ev, key, true
	}
	return nil, key, false
}

func (c *memoryCache) Store(_ context.Context, key string, events []*model.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var (
		gen      int
		playerID int64
	)
	if _, err := fmt.Sscanf(key, "%d:%d", &gen, &playerID); err != nil {
		return
	}
	c.entries[playerID] = events
	c.entryGen[playerID] = gen
}

func (c *memoryCache) Invalidate(context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.invalidations++
}

type fixture struct {
	db          *gorm.DB
	players     repository.PlayerRepository
	events      repository.EventRepository
	accounts    repository.AccountRepository
	cache       *memoryCache
	playerSvc   *PlayerService
	eventSvc    *EventService
	enrollSvc   *EnrollmentService
	recommender *RecommendationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	db, err := database.Open(config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:", LogLevel: "silent"}, log)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	f := &fixture{
		db:       db,
		players:  repository.NewPlayerRepository(db),
		events:   repository.NewEventRepository(db),
		accounts: repository.NewAccountRepository(db),
		cache:    newMemoryCache(),
	}
	f.playerSvc = NewPlayerService(f.players, f.accounts, f.cache, log)
	f.eventSvc = NewEventService(f.events, f.cache, log)
	f.enrollSvc = NewEnrollmentService(f.players, f.events, f.cache, log)
	f.recommender = NewRecommendationService(f.players, f.events, f.cache, DefaultRatingWindow, log)
	return f
}

func (f *fixture) addPlayer(t *testing.T, id int64, g model.Gender, rating int) {
	t.Helper()
	if err := f.players.Create(context.Background(), player(id, g, rating)); err != nil {
		t.Fatalf("create player %d: %v", id, err)
	}
}

func (f *fixture) addEvent(t *testing.T, id int64, maxPlayers int, g model.Gender) {
	t.Helper()
	if err := f.events.Create(context.Background(), model.NewEvent(id, start, maxPlayers, g, 1, "")); err != nil {
		t.Fatalf("create event %d: %v", id, err)
	}
}
