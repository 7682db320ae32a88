package models

import "time"

// MaxMessageLength caps chat message content.
const MaxMessageLength = 500

// Message is a directed chat message between two accounts. Messages are
// immutable and are only removed in bulk when either participant account is
// deleted.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint      `gorm:"not null;index" json:"receiver_id"`
	Content    string    `gorm:"type:varchar(500);not null" json:"content"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`

	Sender   User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}
