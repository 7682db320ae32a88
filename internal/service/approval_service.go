package service

import (
	"github.com/Baaaki/sportclub/internal/audit"
	"github.com/Baaaki/sportclub/internal/models"
	"github.com/Baaaki/sportclub/internal/repository"
	"github.com/Baaaki/sportclub/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ApprovalService owns the account lifecycle: approval (with player profile
// linking), rejection and full cascading deletion. Every multi-record
// mutation runs inside a single transaction so the one-profile-per-account
// and no-dangling-message invariants hold at every observable point.
type ApprovalService struct {
	db       *gorm.DB
	users    *repository.UserRepository
	teams    *repository.TeamRepository
	players  *repository.PlayerRepository
	perfs    *repository.PerformanceRepository
	training *repository.TrainingRepository
	messages *repository.MessageRepository
	auditLog *audit.Log
}

func NewApprovalService(
	db *gorm.DB,
	users *repository.UserRepository,
	teams *repository.TeamRepository,
	players *repository.PlayerRepository,
	perfs *repository.PerformanceRepository,
	training *repository.TrainingRepository,
	messages *repository.MessageRepository,
	auditLog *audit.Log,
) *ApprovalService {
	return &ApprovalService{
		db:       db,
		users:    users,
		teams:    teams,
		players:  players,
		perfs:    perfs,
		training: training,
		messages: messages,
		auditLog: auditLog,
	}
}

// Approve marks the account approved and, for player accounts, binds it to a
// player profile: a profile already referencing the account wins outright,
// then the lowest-ID unregistered placeholder with a matching display name,
// and only then a fresh default profile. Re-approving is therefore a linking
// no-op and an account never ends up with more than one profile.
func (s *ApprovalService) Approve(caller Caller, accountID uint) error {
	if !caller.IsAdmin() {
		return ErrAdminOnly
	}

	user, err := s.users.GetByID(accountID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.users.WithTx(tx).SetApproved(user.ID); err != nil {
			return err
		}
		if user.Role != models.RolePlayer {
			return nil
		}
		return s.linkPlayerProfile(tx, user)
	})
	if err != nil {
		logger.Log.Error("Approval failed",
			zap.Uint("user_id", accountID),
			zap.Error(err),
		)
		return err
	}

	s.recordAudit(caller.ID, audit.ActionApprove, accountID, user.Username)

	logger.Log.Info("Account approved",
		zap.Uint("admin_id", caller.ID),
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	return nil
}

func (s *ApprovalService) linkPlayerProfile(tx *gorm.DB, user *models.User) error {
	players := s.players.WithTx(tx)

	linked, err := players.GetByUserID(user.ID)
	if err != nil {
		return err
	}
	if linked != nil {
		// Already bound, nothing to do.
		return nil
	}

	placeholder, err := players.FindPlaceholderByName(user.Username)
	if err != nil {
		return err
	}
	if placeholder != nil {
		// Claim the placeholder; team, age and position stay as the coach
		// set them.
		if err := players.SetUser(placeholder.ID, user.ID); err != nil {
			return err
		}
		logger.Log.Info("Linked account to existing placeholder",
			zap.Uint("user_id", user.ID),
			zap.Uint("player_id", placeholder.ID),
		)
		return nil
	}

	profile := &models.Player{
		Name:     user.Username,
		Age:      0,
		Position: "Unknown",
		TeamID:   nil,
		UserID:   &user.ID,
	}
	if err := players.Create(profile); err != nil {
		return err
	}

	logger.Log.Info("Created fresh player profile",
		zap.Uint("user_id", user.ID),
		zap.Uint("player_id", profile.ID),
	)
	return nil
}

// Reject permanently deletes an unwanted registration. Only the account row
// is touched.
func (s *ApprovalService) Reject(caller Caller, accountID uint) error {
	if !caller.IsAdmin() {
		return ErrAdminOnly
	}

	user, err := s.users.GetByID(accountID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.users.Delete(user.ID); err != nil {
		return err
	}

	s.recordAudit(caller.ID, audit.ActionReject, accountID, user.Username)

	logger.Log.Info("Account rejected and deleted",
		zap.Uint("admin_id", caller.ID),
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return nil
}

// DeleteAccount removes the account and everything that exists only in
// reference to it, in one transaction:
//   - coach: every owned team with its players, trainings and attendance
//   - player: the linked profile with its performance and attendance records
//   - always: every message the account sent or received
//
// The seed administrator is protected.
func (s *ApprovalService) DeleteAccount(caller Caller, accountID uint) error {
	if !caller.IsAdmin() {
		return ErrAdminOnly
	}

	user, err := s.users.GetByID(accountID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.Username == models.AdminUsername {
		return ErrProtectedAccount
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		teams := s.teams.WithTx(tx)
		players := s.players.WithTx(tx)
		perfs := s.perfs.WithTx(tx)
		training := s.training.WithTx(tx)
		messages := s.messages.WithTx(tx)

		switch user.Role {
		case models.RoleCoach:
			owned, err := teams.ListByCoach(user.ID)
			if err != nil {
				return err
			}
			for _, team := range owned {
				if err := perfs.DeleteByTeamPlayers(team.ID); err != nil {
					return err
				}
				if err := players.DeleteByTeam(team.ID); err != nil {
					return err
				}
				if err := training.DeleteByTeam(team.ID); err != nil {
					return err
				}
				if err := teams.Delete(team.ID); err != nil {
					return err
				}
			}
		case models.RolePlayer:
			profile, err := players.GetByUserID(user.ID)
			if err != nil {
				return err
			}
			if profile != nil {
				if err := perfs.DeleteByPlayer(profile.ID); err != nil {
					return err
				}
				if err := training.DeleteAttendanceByPlayer(profile.ID); err != nil {
					return err
				}
			}
			if err := players.DeleteByUser(user.ID); err != nil {
				return err
			}
		}

		if err := messages.DeleteByParticipant(user.ID); err != nil {
			return err
		}

		return s.users.WithTx(tx).Delete(user.ID)
	})
	if err != nil {
		logger.Log.Error("Account deletion failed",
			zap.Uint("user_id", accountID),
			zap.Error(err),
		)
		return err
	}

	s.recordAudit(caller.ID, audit.ActionDeleteAccount, accountID, user.Username)

	logger.Log.Info("Account deleted with cascade",
		zap.Uint("admin_id", caller.ID),
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	return nil
}

// PendingUsers lists accounts waiting for approval.
func (s *ApprovalService) PendingUsers(caller Caller) ([]models.User, error) {
	if !caller.IsAdmin() {
		return nil, ErrAdminOnly
	}
	return s.users.ListPending()
}

// ListUsers lists every account except the seed administrator.
func (s *ApprovalService) ListUsers(caller Caller) ([]models.User, error) {
	if !caller.IsAdmin() {
		return nil, ErrAdminOnly
	}
	return s.users.ListAll()
}

// Overview returns the club-wide totals shown on the admin dashboard.
func (s *ApprovalService) Overview(caller Caller) (teamCount, playerCount int64, err error) {
	if !caller.IsAdmin() {
		return 0, 0, ErrAdminOnly
	}
	teamCount, err = s.teams.Count()
	if err != nil {
		return 0, 0, err
	}
	playerCount, err = s.players.Count()
	if err != nil {
		return 0, 0, err
	}
	return teamCount, playerCount, nil
}

// recordAudit is best effort: a failed audit write is logged but does not
// undo the admin mutation it describes.
func (s *ApprovalService) recordAudit(actorID uint, action string, targetID uint, detail string) {
	if s.auditLog == nil {
		return
	}
	if err := s.auditLog.Record(actorID, action, targetID, detail); err != nil {
		logger.Log.Warn("Failed to record audit entry",
			zap.String("action", action),
			zap.Uint("target_id", targetID),
			zap.Error(err),
		)
	}
}
