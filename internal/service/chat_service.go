package service

import (
	"strings"

	"github.com/Baaaki/sportclub/internal/models"
	"github.com/Baaaki/sportclub/internal/repository"
	"github.com/Baaaki/sportclub/pkg/logger"
	"go.uber.org/zap"
)

// ChatService is the polled coach/player messaging. Messages are immutable
// once stored and only disappear with a participant's account.
type ChatService struct {
	users    *repository.UserRepository
	teams    *repository.TeamRepository
	players  *repository.PlayerRepository
	messages *repository.MessageRepository
}

func NewChatService(
	users *repository.UserRepository,
	teams *repository.TeamRepository,
	players *repository.PlayerRepository,
	messages *repository.MessageRepository,
) *ChatService {
	return &ChatService{
		users:    users,
		teams:    teams,
		players:  players,
		messages: messages,
	}
}

// Send stores a message from the caller to the receiver.
func (s *ChatService) Send(caller Caller, receiverID uint, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}
	if len(content) > models.MaxMessageLength {
		return nil, ErrMessageTooLong
	}

	receiver, err := s.users.GetByID(receiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, ErrReceiverNotFound
	}

	msg := &models.Message{
		SenderID:   caller.ID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := s.messages.Create(msg); err != nil {
		return nil, err
	}

	logger.Log.Debug("Message sent",
		zap.Uint("sender_id", caller.ID),
		zap.Uint("receiver_id", receiverID),
	)
	return msg, nil
}

// Conversation returns the full exchange between the caller and the other
// account, oldest first.
func (s *ChatService) Conversation(caller Caller, otherID uint) ([]models.Message, error) {
	other, err := s.users.GetByID(otherID)
	if err != nil {
		return nil, err
	}
	if other == nil {
		return nil, ErrUserNotFound
	}
	return s.messages.Conversation(caller.ID, otherID)
}

// ChatPartner is one entry in the caller's chat list.
type ChatPartner struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

// Partners lists who the caller can chat with: a coach sees the registered
// players on their teams, a player sees their team's coach.
func (s *ChatService) Partners(caller Caller) ([]ChatPartner, error) {
	switch caller.Role {
	case models.RoleCoach:
		players, err := s.players.ListRegisteredByCoach(caller.ID)
		if err != nil {
			return nil, err
		}
		partners := make([]ChatPartner, 0, len(players))
		for _, p := range players {
			partners = append(partners, ChatPartner{UserID: *p.UserID, Name: p.Name})
		}
		return partners, nil

	case models.RolePlayer:
		profile, err := s.players.GetByUserID(caller.ID)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, ErrProfileNotFound
		}
		if profile.TeamID == nil {
			return []ChatPartner{}, nil
		}
		team, err := s.teams.GetByID(*profile.TeamID)
		if err != nil {
			return nil, err
		}
		if team == nil {
			return []ChatPartner{}, nil
		}
		coach, err := s.users.GetByID(team.CoachID)
		if err != nil {
			return nil, err
		}
		if coach == nil {
			return []ChatPartner{}, nil
		}
		return []ChatPartner{{UserID: coach.ID, Name: coach.Username}}, nil

	default:
		return nil, ErrForbidden
	}
}
