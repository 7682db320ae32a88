package models

import "time"

// Player is a roster profile. UserID is nil for unregistered placeholders
// created directly by a coach; once an approved player account claims the
// profile the reference is set and never cleared again.
type Player struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(120);not null;index" json:"name"`
	Position  string    `gorm:"type:varchar(50)" json:"position"`
	Age       int       `json:"age"`
	TeamID    *uint     `gorm:"index" json:"team_id,omitempty"`
	UserID    *uint     `gorm:"uniqueIndex" json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Team *Team `gorm:"foreignKey:TeamID" json:"-"`
	User *User `gorm:"foreignKey:UserID" json:"-"`
}