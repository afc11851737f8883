package model

import "time"

// EventPlayer is one enrollment: a single (event, player) relation row.
// ID orders the roster by join time.
type EventPlayer struct {
	ID       uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	EventID  int64     `gorm:"column:event_id;not null;uniqueIndex:uk_event_player"`
	PlayerID int64     `gorm:"column:player_id;not null;uniqueIndex:uk_event_player;index"`
	Event    *Event    `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	Player   *Player   `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
	JoinedAt time.Time `gorm:"column:joined_at"`
}

func (EventPlayer) TableName() string { return "event_players" }

// Tables lists the models in migration order.
func Tables() []any {
	return []any{
		&Player{},
		&Event{},
		&Account{},
		&EventPlayer{},
	}
}
