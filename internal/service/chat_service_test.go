package service_test

import (
	"strings"
	"testing"

	"github.com/Baaaki/sportclub/internal/models"
	"github.com/Baaaki/sportclub/internal/repository"
	"github.com/Baaaki/sportclub/internal/service"
	"github.com/Baaaki/sportclub/internal/testutil"
	"github.com/Baaaki/sportclub/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ChatServiceTestSuite struct {
	suite.Suite
	testDB *testutil.TestDatabase
	svc    *service.ChatService
	coach  *models.User
	player *models.User
	team   *models.Team
}

func (s *ChatServiceTestSuite) SetupSuite() {
	logger.Init(false)
	s.testDB = testutil.SetupTestDatabase(s.T())
}

func (s *ChatServiceTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *ChatServiceTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)

	db := s.testDB.DB
	s.svc = service.NewChatService(
		repository.NewUserRepository(db),
		repository.NewTeamRepository(db),
		repository.NewPlayerRepository(db),
		repository.NewMessageRepository(db),
	)

	s.coach = testutil.CreateUser(s.T(), db, "coach1", models.RoleCoach, true)
	s.team = testutil.CreateTeam(s.T(), db, "Eagles", s.coach.ID)
	s.player = testutil.CreateUser(s.T(), db, "robin", models.RolePlayer, true)
	testutil.CreateLinkedPlayer(s.T(), db, "robin", &s.team.ID, s.player.ID)
}

func (s *ChatServiceTestSuite) coachCaller() service.Caller {
	return service.Caller{ID: s.coach.ID, Role: models.RoleCoach}
}

func (s *ChatServiceTestSuite) playerCaller() service.Caller {
	return service.Caller{ID: s.player.ID, Role: models.RolePlayer}
}

func (s *ChatServiceTestSuite) TestSendAndReadBack() {
	msg, err := s.svc.Send(s.coachCaller(), s.player.ID, "  Good session today  ")
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "Good session today", msg.Content)
	assert.Equal(s.T(), s.coach.ID, msg.SenderID)
}

func (s *ChatServiceTestSuite) TestSendEmptyMessage() {
	_, err := s.svc.Send(s.coachCaller(), s.player.ID, "   ")
	assert.ErrorIs(s.T(), err, service.ErrValidation)
}

func (s *ChatServiceTestSuite) TestSendMessageTooLong() {
	_, err := s.svc.Send(s.coachCaller(), s.player.ID, strings.Repeat("a", models.MaxMessageLength+1))
	assert.ErrorIs(s.T(), err, service.ErrMessageTooLong)

	// Exactly at the limit is fine.
	_, err = s.svc.Send(s.coachCaller(), s.player.ID, strings.Repeat("a", models.MaxMessageLength))
	assert.NoError(s.T(), err)
}

func (s *ChatServiceTestSuite) TestSendToUnknownReceiver() {
	_, err := s.svc.Send(s.coachCaller(), 9999, "hello")
	assert.ErrorIs(s.T(), err, service.ErrNotFound)
}

func (s *ChatServiceTestSuite) TestConversationBothDirectionsOldestFirst() {
	db := s.testDB.DB
	testutil.CreateMessage(s.T(), db, s.coach.ID, s.player.ID, "first")
	testutil.CreateMessage(s.T(), db, s.player.ID, s.coach.ID, "second")
	testutil.CreateMessage(s.T(), db, s.coach.ID, s.player.ID, "third")

	// Traffic with a third party stays out of this conversation.
	other := testutil.CreateUser(s.T(), db, "someone", models.RolePlayer, true)
	testutil.CreateMessage(s.T(), db, s.coach.ID, other.ID, "elsewhere")

	messages, err := s.svc.Conversation(s.coachCaller(), s.player.ID)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), messages, 3)
	assert.Equal(s.T(), "first", messages[0].Content)
	assert.Equal(s.T(), "second", messages[1].Content)
	assert.Equal(s.T(), "third", messages[2].Content)
}

func (s *ChatServiceTestSuite) TestCoachPartnersAreRegisteredPlayers() {
	db := s.testDB.DB
	// Placeholders have no account to chat from.
	testutil.CreatePlaceholder(s.T(), db, "ghost", &s.team.ID)

	partners, err := s.svc.Partners(s.coachCaller())
	assert.NoError(s.T(), err)
	assert.Len(s.T(), partners, 1)
	assert.Equal(s.T(), s.player.ID, partners[0].UserID)
	assert.Equal(s.T(), "robin", partners[0].Name)
}

func (s *ChatServiceTestSuite) TestPlayerPartnerIsCoach() {
	partners, err := s.svc.Partners(s.playerCaller())
	assert.NoError(s.T(), err)
	assert.Len(s.T(), partners, 1)
	assert.Equal(s.T(), s.coach.ID, partners[0].UserID)
	assert.Equal(s.T(), "coach1", partners[0].Name)
}

func (s *ChatServiceTestSuite) TestPlayerWithoutTeamHasNoPartners() {
	db := s.testDB.DB
	loner := testutil.CreateUser(s.T(), db, "loner", models.RolePlayer, true)
	testutil.CreateLinkedPlayer(s.T(), db, "loner", nil, loner.ID)

	partners, err := s.svc.Partners(service.Caller{ID: loner.ID, Role: models.RolePlayer})
	assert.NoError(s.T(), err)
	assert.Empty(s.T(), partners)
}

func TestChatServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChatServiceTestSuite))
}
