package model

import (
	"time"

	"gorm.io/datatypes"
)

// Player is a club member, stored in the players table.
type Player struct {
	ID        int64          `gorm:"column:id;primaryKey"`
	FirstName string         `gorm:"column:fname;type:varchar(128);not null"`
	LastName  string         `gorm:"column:lname;type:varchar(128);not null"`
	Rating    int            `gorm:"column:rating;type:int;default:0"`
	Email     string         `gorm:"column:email;type:varchar(256)"`
	Phone     string         `gorm:"column:phone;type:varchar(64)"`
	Birthday  datatypes.Date `gorm:"column:bday"`
	Gender    Gender         `gorm:"column:gender;type:int;not null"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (Player) TableName() string { return "players" }

// SameAs compares players by identity only.
func (p *Player) SameAs(other *Player) bool {
	if p == nil || other == nil {
		return false
	}
	return p.ID == other.ID
}

// ChangeName sets first and last name together.
func (p *Player) ChangeName(first, last string) {
	p.FirstName = first
	p.LastName = last
}

func (p *Player) ChangeBirthday(bday time.Time) {
	p.Birthday = datatypes.Date(bday)
}

func (p *Player) ChangeEmail(email string) {
	p.Email = email
}

func (p *Player) ChangePhone(phone string) {
	p.Phone = phone
}

func (p *Player) ChangeGender(g Gender) {
	p.Gender = g
}

// UpdateRating accepts any value, negative ratings included.
func (p *Player) UpdateRating(rating int) {
	p.Rating = rating
}

// BirthdayTime returns the birthday as a time.Time at midnight.
func (p *Player) BirthdayTime() time.Time {
	return time.Time(p.Birthday)
}

// Age is the number of whole years between the birthday and now.
// A zero birthday yields 0.
func (p *Player) Age(now time.Time) int {
	bday := p.BirthdayTime()
	if bday.IsZero() {
		return 0
	}
	age := now.Year() - bday.Year()
	if now.Month() < bday.Month() || (now.Month() == bday.Month() && now.Day() < bday.Day()) {
		age--
	}
	return age
}
