package service

import (
	"fmt"
	"regexp"
	"time"

	"github.com/Baaaki/sportclub/internal/models"
	"github.com/Baaaki/sportclub/internal/repository"
	"github.com/Baaaki/sportclub/internal/utils"
	"github.com/Baaaki/sportclub/pkg/logger"
	"go.uber.org/zap"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(userRepo *repository.UserRepository, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

// Register creates an unapproved account. Only coach and player roles can
// self-register; the account stays locked out until an admin approves it, so
// no token is issued here.
func (s *AuthService) Register(username, email, password string, role models.Role) (*models.User, error) {
	logger.Log.Debug("Processing registration",
		zap.String("username", username),
		zap.String("role", string(role)),
	)

	if err := s.validateRegisterInput(username, email, password, role); err != nil {
		logger.Log.Warn("Registration validation failed",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, err
	}

	existing, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logger.Log.Warn("Username already exists", zap.String("username", username))
		return nil, ErrUsernameTaken
	}

	existing, err = s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logger.Log.Warn("Email already exists", zap.String("email", email))
		return nil, ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		logger.Log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		Approved:     false,
	}

	if err := s.userRepo.Create(user); err != nil {
		logger.Log.Error("Failed to create user",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("User registered, pending approval",
		zap.Uint("user_id", user.ID),
		zap.String("username", username),
		zap.String("role", string(role)),
	)

	return user, nil
}

// Login verifies credentials and returns a signed token. Unapproved accounts
// cannot log in.
func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		logger.Log.Error("Failed to look up user",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Warn("Login failed: user not found", zap.String("username", username))
		return nil, "", ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		logger.Log.Error("Failed to verify password",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, "", err
	}
	if !valid {
		logger.Log.Warn("Login failed: invalid password",
			zap.String("username", username),
			zap.Uint("user_id", user.ID),
		)
		return nil, "", ErrInvalidCredentials
	}

	if !user.Approved {
		logger.Log.Warn("Login rejected: account pending approval",
			zap.Uint("user_id", user.ID),
			zap.String("username", username),
		)
		return nil, "", ErrNotApproved
	}

	token, err := utils.GenerateToken(user, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		logger.Log.Error("Failed to generate token",
			zap.Uint("user_id", user.ID),
			zap.Error(err),
		)
		return nil, "", err
	}

	logger.Log.Info("User logged in",
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	return user, token, nil
}

func (s *AuthService) validateRegisterInput(username, email, password string, role models.Role) error {
	if len(username) < 3 {
		return fmt.Errorf("%w: username must be at least 3 characters", ErrValidation)
	}
	if len(username) > 80 {
		return fmt.Errorf("%w: username must be at most 80 characters", ErrValidation)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if len(email) > 120 {
		return fmt.Errorf("%w: email too long", ErrValidation)
	}
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}
	if len(password) > 128 {
		return fmt.Errorf("%w: password too long", ErrValidation)
	}
	if role != models.RoleCoach && role != models.RolePlayer {
		return fmt.Errorf("%w: role must be coach or player", ErrValidation)
	}
	return nil
}
