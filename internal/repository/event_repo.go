package repository

import (
	"context"
	"time"

	"github.com/outlierSlug/dubhacks2025/internal/apperrors"
	"github.com/outlierSlug/dubhacks2025/internal/model"
	"gorm.io/gorm"
)

// EventRepository persists events and their enrollment rows.
// Every event it returns has its roster loaded in join order.
type EventRepository interface {
	Create(ctx context.Context, e *model.Event) error
	GetByID(ctx context.Context, id int64) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	// Delete removes the event together with all of its relation rows.
	Delete(ctx context.Context, id int64) error

	// Transaction runs fn against a repository bound to one database transaction.
	Transaction(ctx context.Context, fn func(tx EventRepository) error) error
	// LockByID is GetByID holding a row lock until the surrounding transaction ends.
	LockByID(ctx context.Context, id int64) (*model.Event, error)
	// LockPlayer reads a player holding its row lock, so a profile edit waits for the admission.
	LockPlayer(ctx context.Context, id int64) (*model.Player, error)
	// AddEnrollment inserts one (event, player) row.
	AddEnrollment(ctx context.Context, eventID, playerID int64) error
	// RemoveEnrollment deletes one (event, player) row and reports whether it existed.
	RemoveEnrollment(ctx context.Context, eventID, playerID int64) (bool, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, e *model.Event) error {
	db := r.db.WithContext(ctx)
	explicit := e.ID != 0
	if explicit {
		var n int64
		if err := db.Model(&model.Event{}).Where("id = ?", e.ID).Count(&n).Error; err != nil {
			return translate(err, "check event id", nil, nil)
		}
		if n > 0 {
			return apperrors.Conflict("Event with id %d already exists.", e.ID)
		}
	}
	if err := db.Create(e).Error; err != nil {
		return translate(err, "create event", nil, idConflict("Event", e.ID))
	}
	if explicit {
		if err := syncSequence(db, model.Event{}.TableName()); err != nil {
			return err
		}
	}
	if e.Players == nil {
		e.Players = []*model.Player{}
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

func (r *eventRepository) LockByID(ctx context.Context, id int64) (*model.Event, error) {
	return r.get(ctx, forUpdate(r.db.WithContext(ctx)), id)
}

func (r *eventRepository) LockPlayer(ctx context.Context, id int64) (*model.Player, error) {
	return getPlayer(forUpdate(r.db.WithContext(ctx)), id)
}

func (r *eventRepository) get(ctx context.Context, db *gorm.DB, id int64) (*model.Event, error) {
	var e model.Event
	if err := db.First(&e, id).Error; err != nil {
		return nil, translate(err, "get event", apperrors.NotFound("Event with id %d not found", id), nil)
	}
	if err := loadRosters(ctx, r.db, []*model.Event{&e}); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*model.Event, error) {
	var list []*model.Event
	if err := r.db.WithContext(ctx).Order("id").Find(&list).Error; err != nil {
		return nil, translate(err, "list events", nil, nil)
	}
	if err := loadRosters(ctx, r.db, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&model.EventPlayer{}).Error; err != nil {
			return translate(err, "delete event enrollments", nil, nil)
		}
		res := tx.Delete(&model.Event{}, id)
		if res.Error != nil {
			return translate(res.Error, "delete event", nil, nil)
		}
		if res.RowsAffected == 0 {
			return apperrors.NotFound("Event with id %d not found", id)
		}
		return nil
	})
}

func (r *eventRepository) Transaction(ctx context.Context, fn func(tx EventRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&eventRepository{db: tx})
	})
}

func (r *eventRepository) AddEnrollment(ctx context.Context, eventID, playerID int64) error {
	row := &model.EventPlayer{EventID: eventID, PlayerID: playerID, JoinedAt: time.Now()}
	err := r.db.WithContext(ctx).Create(row).Error
	return translate(err, "add enrollment", nil,
		apperrors.Conflict("Player with id %d is already signed up for event %d", playerID, eventID))
}

func (r *eventRepository) RemoveEnrollment(ctx context.Context, eventID, playerID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("event_id = ? AND player_id = ?", eventID, playerID).
		Delete(&model.EventPlayer{})
	if res.Error != nil {
		return false, translate(res.Error, "remove enrollment", nil, nil)
	}
	return res.RowsAffected > 0, nil
}

// loadRosters fills Players for each event from event_players, ordered by join.
func loadRosters(ctx context.Context, db *gorm.DB, events []*model.Event) error {
	if len(events) == 0 {
		return nil
	}
	byEvent := make(map[int64]*model.Event, len(events))
	eventIDs := make([]int64, 0, len(events))
	for _, e := range events {
		e.Players = []*model.Player{}
		byEvent[e.ID] = e
		eventIDs = append(eventIDs, e.ID)
	}

	var rows []model.EventPlayer
	if err := db.WithContext(ctx).Where("event_id IN ?", eventIDs).Order("id").Find(&rows).Error; err != nil {
		return translate(err, "load enrollments", nil, nil)
	}
	if len(rows) == 0 {
		return nil
	}

	playerIDs := make([]int64, 0, len(rows))
	seen := make(map[int64]struct{}, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.PlayerID]; !ok {
			seen[row.PlayerID] = struct{}{}
			playerIDs = append(playerIDs, row.PlayerID)
		}
	}
	var players []*model.Player
	if err := db.WithContext(ctx).Where("id IN ?", playerIDs).Find(&players).Error; err != nil {
		return translate(err, "load roster players", nil, nil)
	}
	byID := make(map[int64]*model.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	for _, row := range rows {
		if p, ok := byID[row.PlayerID]; ok {
			e := byEvent[row.EventID]
			e.Players = append(e.Players, p)
		}
	}
	return nil
}
