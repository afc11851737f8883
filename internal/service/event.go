package service

import (
	"context"
	"time"

	"github.com/outlierSlug/dubhacks2025/internal/apperrors"
	"github.com/outlierSlug/dubhacks2025/internal/interfaces"
	"github.com/outlierSlug/dubhacks2025/internal/model"
	"github.com/outlierSlug/dubhacks2025/internal/repository"
	"github.com/sirupsen/logrus"
)

// CreateEventRequest describes a new event. ID may be 0 to let the store pick one.
// MaxPlayers is a pointer so that an explicit 0 is accepted.
type CreateEventRequest struct {
	ID          int64  `json:"id"`
	StartTime   string `json:"start_time" binding:"required"`
	MaxPlayers  *int   `json:"max_players" binding:"required,gte=0"`
	Gender      int    `json:"gender" binding:"required,oneof=1 2 3"`
	Court       int    `json:"court"`
	Description string `json:"description"`
}

// EventService manages the event lifecycle outside of enrollment.
type EventService struct {
	events repository.EventRepository
	cache  interfaces.RecommendationCache
	logger *logrus.Logger
	now    func() time.Time
}

func NewEventService(events repository.EventRepository, cache interfaces.RecommendationCache, logger *logrus.Logger) *EventService {
	return &EventService{
		events: events,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// Create validates and stores an empty event.
func (s *EventService) Create(ctx context.Context, req *CreateEventRequest) (*EventView, error) {
	if req == nil {
		return nil, apperrors.InvalidArgument("empty request")
	}
	gender := model.Gender(req.Gender)
	if !gender.Valid() {
		return nil, apperrors.InvalidArgument("gender must be 1, 2 or 3, got %d", req.Gender)
	}
	if req.MaxPlayers == nil || *req.MaxPlayers < 0 {
		return nil, apperrors.InvalidArgument("max_players must be a non-negative integer")
	}
	start, err := parseTimestamp("start_time", req.StartTime)
	if err != nil {
		return nil, err
	}

	e := model.NewEvent(req.ID, start, *req.MaxPlayers, gender, req.Court, req.Description)
	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	s.logger.WithFields(logrus.Fields{"event_id": e.ID, "court": e.Court}).Info("event created")
	v := NewEventView(e, s.now())
	return &v, nil
}

func (s *EventService) Get(ctx context.Context, id int64) (*EventView, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v := NewEventView(e, s.now())
	return &v, nil
}

func (s *EventService) List(ctx context.Context) ([]EventView, error) {
	list, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}
	return newEventViews(list, s.now()), nil
}

// Delete removes the event and all of its enrollments.
func (s *EventService) Delete(ctx context.Context, id int64) error {
	if err := s.events.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	s.logger.WithField("event_id", id).Info("event deleted")
	return nil
}
