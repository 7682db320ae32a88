package models

import "time"

// Training is a scheduled session for one team. Past-dated trainings are
// purged lazily when the coach loads their training list.
type Training struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TeamID    uint      `gorm:"not null;index" json:"team_id"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	Focus     string    `gorm:"type:text" json:"focus"`
	Duration  int       `json:"duration"` // minutes
	CreatedAt time.Time `json:"created_at"`

	Team      Team                 `gorm:"foreignKey:TeamID" json:"-"`
	Attendees []TrainingAttendance `gorm:"foreignKey:TrainingID" json:"attendees,omitempty"`
}

// TrainingAttendance links a training to a player expected to attend.
type TrainingAttendance struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	TrainingID uint `gorm:"not null;index:idx_training_player,unique" json:"training_id"`
	PlayerID   uint `gorm:"not null;index:idx_training_player,unique" json:"player_id"`

	Player Player `gorm:"foreignKey:PlayerID" json:"-"`
}
