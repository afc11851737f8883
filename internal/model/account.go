package model

import "time"

// Account maps a login to exactly one player. PasswordHash is a bcrypt hash.
type Account struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Username     string    `gorm:"column:username;type:varchar(128);uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password;type:varchar(128);not null"`
	PlayerID     int64     `gorm:"column:player_id;not null;uniqueIndex"`
	Player       *Player   `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (Account) TableName() string { return "users" }
