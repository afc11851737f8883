package service

import (
	"context"
	"time"

	"github.com/outlierSlug/dubhacks2025/internal/interfaces"
	"github.com/outlierSlug/dubhacks2025/internal/model"
	"github.com/outlierSlug/dubhacks2025/internal/repository"
	"github.com/sirupsen/logrus"
)

// DefaultRatingWindow is how far outside a roster's rating band a player may still be recommended it.
const DefaultRatingWindow = 5

// Recommend filters events down to the ones p could join and would fit in, keeping input order.
// An event is skipped when it is full, already holds p, or is restricted to the other gender.
// Empty events are always kept; otherwise p's rating must lie within
// [lowest-window, highest+window] of the roster.
func Recommend(p *model.Player, events []*model.Event, window int) []*model.Event {
	out := make([]*model.Event, 0, len(events))
	for _, e := range events {
		if e.Full() || e.Contains(p.ID) || !e.Gender.Admits(p.Gender) {
			continue
		}
		lo, hi, ok := e.RatingBand()
		if !ok || (p.Rating >= lo-window && p.Rating <= hi+window) {
			out = append(out, e)
		}
	}
	return out
}

// RecommendationService serves Recommend over the stored events, through an optional cache.
type RecommendationService struct {
	players repository.PlayerRepository
	events  repository.EventRepository
	cache   interfaces.RecommendationCache
	window  int
	logger  *logrus.Logger
	now     func() time.Time
}

func NewRecommendationService(players repository.PlayerRepository, events repository.EventRepository,
	cache interfaces.RecommendationCache, window int, logger *logrus.Logger) *RecommendationService {
	return &RecommendationService{
		players: players,
		events:  events,
		cache:   cache,
		window:  window,
		logger:  logger,
		now:     time.Now,
	}
}

// ForPlayer returns the events recommended to playerID. Unknown players are NOT_FOUND.
func (s *RecommendationService) ForPlayer(ctx context.Context, playerID int64) ([]EventView, error) {
	p, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	cached, key, ok := s.cache.Load(ctx, playerID)
	if ok {
		return newEventViews(cached, s.now()), nil
	}

	all, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}
	picked := Recommend(p, all, s.window)
	s.cache.Store(ctx, key, picked)
	s.logger.WithFields(logrus.Fields{
		"player_id": playerID,
		"events":    len(all),
		"picked":    len(picked),
	}).Debug("computed recommendations")
	return newEventViews(picked, s.now()), nil
}
