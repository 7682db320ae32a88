package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/Baaaki/sportclub/internal/models"
	"github.com/Baaaki/sportclub/internal/utils"
	"gorm.io/gorm"
)

// CreateUser inserts an account with a real Argon2 hash.
func CreateUser(t *testing.T, db *gorm.DB, username string, role models.Role, approved bool) *models.User {
	hash, err := utils.HashPassword("Test123456")
	if err != nil {
		t.Fatalf("Failed to hash fixture password: %v", err)
	}

	user := &models.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: hash,
		Role:         role,
		Approved:     approved,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create fixture user %s: %v", username, err)
	}
	return user
}

// CreateAdmin inserts the approved seed administrator.
func CreateAdmin(t *testing.T, db *gorm.DB) *models.User {
	return CreateUser(t, db, models.AdminUsername, models.RoleAdmin, true)
}

// CreateTeam inserts a team owned by the coach.
func CreateTeam(t *testing.T, db *gorm.DB, name string, coachID uint) *models.Team {
	team := &models.Team{
		Name:    name,
		Season:  "2026/27",
		CoachID: coachID,
	}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("Failed to create fixture team %s: %v", name, err)
	}
	return team
}

// CreatePlaceholder inserts an unregistered player profile on a team.
func CreatePlaceholder(t *testing.T, db *gorm.DB, name string, teamID *uint) *models.Player {
	player := &models.Player{
		Name:     name,
		Position: "Midfielder",
		Age:      20,
		TeamID:   teamID,
	}
	if err := db.Create(player).Error; err != nil {
		t.Fatalf("Failed to create fixture player %s: %v", name, err)
	}
	return player
}

// CreateLinkedPlayer inserts a profile claimed by an account.
func CreateLinkedPlayer(t *testing.T, db *gorm.DB, name string, teamID *uint, userID uint) *models.Player {
	player := &models.Player{
		Name:     name,
		Position: "Forward",
		Age:      22,
		TeamID:   teamID,
		UserID:   &userID,
	}
	if err := db.Create(player).Error; err != nil {
		t.Fatalf("Failed to create fixture player %s: %v", name, err)
	}
	return player
}

// CreatePerformance inserts a stat line dated on the given day.
func CreatePerformance(t *testing.T, db *gorm.DB, playerID uint, date string, rating float64) *models.Performance {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("Invalid fixture date %s: %v", date, err)
	}

	perf := &models.Performance{
		PlayerID: playerID,
		Date:     day,
		Goals:    1,
		Assists:  1,
		Tackles:  2,
		Rating:   rating,
	}
	if err := db.Create(perf).Error; err != nil {
		t.Fatalf("Failed to create fixture performance: %v", err)
	}
	return perf
}

// CreateTraining inserts a training session for a team.
func CreateTraining(t *testing.T, db *gorm.DB, teamID uint, date string) *models.Training {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("Invalid fixture date %s: %v", date, err)
	}

	training := &models.Training{
		TeamID:   teamID,
		Date:     day,
		Focus:    "Passing drills",
		Duration: 90,
	}
	if err := db.Create(training).Error; err != nil {
		t.Fatalf("Failed to create fixture training: %v", err)
	}
	return training
}

// CreateMessage inserts a chat message.
func CreateMessage(t *testing.T, db *gorm.DB, senderID, receiverID uint, content string) *models.Message {
	msg := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := db.Create(msg).Error; err != nil {
		t.Fatalf("Failed to create fixture message: %v", err)
	}
	return msg
}
