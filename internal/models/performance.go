package models

import "time"

// Performance is an immutable per-match stat line. There is no update or
// delete path; rows only go away when the owning player is deleted.
type Performance struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PlayerID        uint      `gorm:"not null;index" json:"player_id"`
	Date            time.Time `gorm:"not null;index" json:"date"`
	Goals           int       `gorm:"default:0" json:"goals"`
	Assists         int       `gorm:"default:0" json:"assists"`
	PassesCompleted int       `gorm:"default:0" json:"passes_completed"`
	PassesAttempted int       `gorm:"default:0" json:"passes_attempted"`
	PassAccuracy    float64   `gorm:"default:0" json:"pass_accuracy"`
	Tackles         int       `gorm:"default:0" json:"tackles"`
	Rating          float64   `gorm:"default:0" json:"rating"`
	CreatedAt       time.Time `json:"created_at"`

	Player Player `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE" json:"-"`
}
