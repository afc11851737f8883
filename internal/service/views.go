package service

import (
	"time"

	"github.com/outlierSlug/dubhacks2025/internal/model"
)

// DateLayout is the wire format of birthdays.
const DateLayout = "2006-01-02"

// PlayerView is the JSON shape of a player.
type PlayerView struct {
	ID       int64  `json:"id"`
	FName    string `json:"fname"`
	LName    string `json:"lname"`
	Rating   int    `json:"rating"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Bday     string `json:"bday"`
	Gender   int    `json:"gender"`
	Age      int    `json:"age"`
	Category string `json:"category"`
}

// PlayerSummary is a player as listed to anyone: no contact details or birthday.
type PlayerSummary struct {
	ID       int64  `json:"id"`
	FName    string `json:"fname"`
	LName    string `json:"lname"`
	Rating   int    `json:"rating"`
	Gender   int    `json:"gender"`
	Category string `json:"category"`
}

// EventView is the JSON shape of an event; end_time is always start_time + 1h.
type EventView struct {
	ID          int64        `json:"id"`
	StartTime   time.Time    `json:"start_time"`
	EndTime     time.Time    `json:"end_time"`
	MaxPlayers  int          `json:"max_players"`
	Gender      int          `json:"gender"`
	Category    string       `json:"category"`
	Court       int          `json:"court"`
	Description string       `json:"description"`
	Players     []PlayerView `json:"players"`
	Full        bool         `json:"full"`
}

// RemovalResult is returned by RemovePlayer. Event is nil once the drained event was deleted.
type RemovalResult struct {
	Event        *EventView `json:"event,omitempty"`
	EventDeleted bool       `json:"event_deleted"`
}

func NewPlayerView(p *model.Player, now time.Time) PlayerView {
	v := PlayerView{
		ID:       p.ID,
		FName:    p.FirstName,
		LName:    p.LastName,
		Rating:   p.Rating,
		Email:    p.Email,
		Phone:    p.Phone,
		Gender:   int(p.Gender),
		Age:      p.Age(now),
		Category: p.Gender.String(),
	}
	if b := p.BirthdayTime(); !b.IsZero() {
		v.Bday = b.Format(DateLayout)
	}
	return v
}

func NewPlayerSummary(p *model.Player) PlayerSummary {
	return PlayerSummary{
		ID:       p.ID,
		FName:    p.FirstName,
		LName:    p.LastName,
		Rating:   p.Rating,
		Gender:   int(p.Gender),
		Category: p.Gender.String(),
	}
}

func NewEventView(e *model.Event, now time.Time) EventView {
	v := EventView{
		ID:          e.ID,
		StartTime:   e.StartTime,
		EndTime:     e.StartTime.Add(model.EventDuration),
		MaxPlayers:  e.MaxPlayers,
		Gender:      int(e.Gender),
		Category:    e.Gender.String(),
		Court:       e.Court,
		Description: e.Description,
		Players:     make([]PlayerView, 0, len(e.Players)),
		Full:        e.Full(),
	}
	for _, p := range e.Players {
		v.Players = append(v.Players, NewPlayerView(p, now))
	}
	return v
}

func newEventViews(events []*model.Event, now time.Time) []EventView {
	out := make([]EventView, 0, len(events))
	for _, e := range events {
		out = append(out, NewEventView(e, now))
	}
	return out
}
