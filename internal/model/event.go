package model

import (
	"time"

	"github.com/outlierSlug/dubhacks2025/internal/apperrors"
	"gorm.io/gorm"
)

// EventDuration is the fixed length of every court session.
const EventDuration = time.Hour

// Event is a court session with a capacity- and gender-limited roster.
// Players is the roster in join order; it is loaded from event_players and never persisted as a column.
type Event struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	StartTime   time.Time `gorm:"column:start_time;not null"`
	EndTime     time.Time `gorm:"column:end_time;not null"`
	MaxPlayers  int       `gorm:"column:max_players;type:int;not null"`
	Gender      Gender    `gorm:"column:gender;type:int;not null"`
	Court       int       `gorm:"column:court;type:int;not null"`
	Description string    `gorm:"column:description;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`

	Players []*Player `gorm:"-"`
}

func (Event) TableName() string { return "events" }

// NewEvent builds an empty event; the end time is derived from start.
func NewEvent(id int64, start time.Time, maxPlayers int, gender Gender, court int, description string) *Event {
	return &Event{
		ID:          id,
		StartTime:   start,
		EndTime:     start.Add(EventDuration),
		MaxPlayers:  maxPlayers,
		Gender:      gender,
		Court:       court,
		Description: description,
		Players:     []*Player{},
	}
}

// BeforeSave keeps end_time = start_time + EventDuration on every write.
func (e *Event) BeforeSave(*gorm.DB) error {
	e.EndTime = e.StartTime.Add(EventDuration)
	return nil
}

// Full reports whether no more players can join.
func (e *Event) Full() bool {
	return len(e.Players) >= e.MaxPlayers
}

// Contains reports whether a player with id is on the roster.
func (e *Event) Contains(id int64) bool {
	return e.indexOf(id) >= 0
}

func (e *Event) indexOf(id int64) int {
	for i, p := range e.Players {
		if p != nil && p.ID == id {
			return i
		}
	}
	return -1
}

// Admit applies the admission rule and appends p to the roster.
// Checks run in order: capacity, gender restriction, duplicate membership.
// Nothing is written to storage.
func (e *Event) Admit(p *Player) error {
	if len(e.Players) >= e.MaxPlayers {
		return apperrors.New(apperrors.CodeCapacityExceeded, "This event is locked - no more sign-ups allowed")
	}
	if !e.Gender.Admits(p.Gender) {
		return apperrors.New(apperrors.CodeGenderMismatch, "This event is restricted to %s players", e.Gender).
			WithMetadata("restriction", e.Gender.String())
	}
	if e.Contains(p.ID) {
		return apperrors.Conflict("Player with id %d is already signed up for event %d", p.ID, e.ID)
	}
	e.Players = append(e.Players, p)
	return nil
}

// Dismiss removes p from the roster by identity. It reports false, leaving the roster
// untouched, when p was not on it.
func (e *Event) Dismiss(p *Player) bool {
	i := e.indexOf(p.ID)
	if i < 0 {
		return false
	}
	e.Players = append(e.Players[:i], e.Players[i+1:]...)
	return true
}

// RatingBand returns the lowest and highest rating on the roster; ok is false for an empty roster.
func (e *Event) RatingBand() (lo, hi int, ok bool) {
	for i, p := range e.Players {
		if i == 0 {
			lo, hi = p.Rating, p.Rating
			continue
		}
		lo = min(lo, p.Rating)
		hi = max(hi, p.Rating)
	}
	return lo, hi, len(e.Players) > 0
}
