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

// EnrollmentRequest is the body of add_player / remove_player.
type EnrollmentRequest struct {
	PlayerID int64 `json:"player_id" binding:"required"`
}

// EnrollmentService moves players in and out of event rosters. Every change is a single
// relation-row write made while holding both the per-event mutex and the event's row lock.
type EnrollmentService struct {
	players repository.PlayerRepository
	events  repository.EventRepository
	cache   interfaces.RecommendationCache
	locks   *keyedMutex
	logger  *logrus.Logger
	now     func() time.Time
}

func NewEnrollmentService(players repository.PlayerRepository, events repository.EventRepository,
	cache interfaces.RecommendationCache, logger *logrus.Logger) *EnrollmentService {
	return &EnrollmentService{
		players: players,
		events:  events,
		cache:   cache,
		locks:   newKeyedMutex(),
		logger:  logger,
		now:     time.Now,
	}
}

// AddPlayer admits playerID into eventID and returns the updated event.
// Fails with NOT_FOUND, CAPACITY_EXCEEDED, GENDER_MISMATCH or CONFLICT; on failure nothing is written.
func (s *EnrollmentService) AddPlayer(ctx context.Context, eventID, playerID int64) (*EventView, error) {
	unlock := s.locks.Lock(eventID)
	defer unlock()

	var updated *model.Event
	err := s.events.Transaction(ctx, func(tx repository.EventRepository) error {
		// the player's gender is read under its row lock; UpdateProfile takes the same lock
		p, err := tx.LockPlayer(ctx, playerID)
		if err != nil {
			return err
		}
		e, err := tx.LockByID(ctx, eventID)
		if err != nil {
			return err
		}
		if err := e.Admit(p); err != nil {
			return err
		}
		if err := tx.AddEnrollment(ctx, e.ID, p.ID); err != nil {
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"event_id":  eventID,
			"player_id": playerID,
		}).Info("admission rejected")
		return nil, err
	}

	s.cache.Invalidate(ctx)
	s.logger.WithFields(logrus.Fields{
		"event_id":  eventID,
		"player_id": playerID,
		"roster":    len(updated.Players),
	}).Info("player joined event")
	v := NewEventView(updated, s.now())
	return &v, nil
}

// RemovePlayer dismisses playerID from eventID. When that drains the roster the event is
// deleted in the same transaction and the result reports EventDeleted.
func (s *EnrollmentService) RemovePlayer(ctx context.Context, eventID, playerID int64) (*RemovalResult, error) {
	p, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(eventID)
	defer unlock()

	res := &RemovalResult{}
	err = s.events.Transaction(ctx, func(tx repository.EventRepository) error {
		e, err := tx.LockByID(ctx, eventID)
		if err != nil {
			return err
		}
		if !e.Dismiss(p) {
			return apperrors.NotFound("Player %d not found in event %d", playerID, eventID)
		}
		removed, err := tx.RemoveEnrollment(ctx, e.ID, p.ID)
		if err != nil {
			return err
		}
		if !removed {
			return apperrors.New(apperrors.CodeStateInconsistency,
				"roster of event %d lists player %d without a relation row", eventID, playerID)
		}
		if len(e.Players) == 0 {
			res.EventDeleted = true
			return tx.Delete(ctx, e.ID)
		}
		v := NewEventView(e, s.now())
		res.Event = &v
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	s.logger.WithFields(logrus.Fields{
		"event_id":      eventID,
		"player_id":     playerID,
		"event_deleted": res.EventDeleted,
	}).Info("player left event")
	return res, nil
}
