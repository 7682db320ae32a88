package repository

import (
	"github.com/Baaaki/sportclub/internal/models"
	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) WithTx(tx *gorm.DB) *MessageRepository {
	return &MessageRepository{db: tx}
}

func (r *MessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// Conversation returns all messages between the two accounts in both
// directions, oldest first. Insertion order breaks timestamp ties.
func (r *MessageRepository) Conversation(userA, userB uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	return messages, err
}

// DeleteByParticipant removes every message sent or received by the account.
// Used by the account deletion cascade.
func (r *MessageRepository) DeleteByParticipant(userID uint) error {
	return r.db.Where("sender_id = ? OR receiver_id = ?", userID, userID).Delete(&models.Message{}).Error
}
