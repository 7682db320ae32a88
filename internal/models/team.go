package models

import "time"

type Team struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(120);not null;index" json:"name"`
	Season    string    `gorm:"type:varchar(20)" json:"season,omitempty"`
	CoachID   uint      `gorm:"not null;index" json:"coach_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Coach User `gorm:"foreignKey:CoachID" json:"-"`
}
