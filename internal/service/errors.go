package service

import (
	"errors"
	"fmt"
)

// Error taxonomy. Handlers map these onto HTTP status codes with errors.Is;
// specific errors wrap one of the four categories.
var (
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotApproved        = errors.New("account is pending approval")

	ErrUsernameTaken = fmt.Errorf("%w: username already exists", ErrConflict)
	ErrEmailTaken    = fmt.Errorf("%w: email already exists", ErrConflict)
	ErrTeamNameTaken = fmt.Errorf("%w: team name already exists", ErrConflict)
	ErrPlayerExists  = fmt.Errorf("%w: player with this name already exists", ErrConflict)

	ErrUserNotFound     = fmt.Errorf("%w: user", ErrNotFound)
	ErrTeamNotFound     = fmt.Errorf("%w: team", ErrNotFound)
	ErrPlayerNotFound   = fmt.Errorf("%w: player", ErrNotFound)
	ErrProfileNotFound  = fmt.Errorf("%w: player profile", ErrNotFound)
	ErrReceiverNotFound = fmt.Errorf("%w: message receiver", ErrNotFound)

	ErrNotTeamOwner      = fmt.Errorf("%w: team belongs to another coach", ErrForbidden)
	ErrAdminOnly         = fmt.Errorf("%w: admin privilege required", ErrForbidden)
	ErrCoachOnly         = fmt.Errorf("%w: coach privilege required", ErrForbidden)
	ErrPlayerOnly        = fmt.Errorf("%w: player privilege required", ErrForbidden)
	ErrProtectedAccount  = fmt.Errorf("%w: the seed administrator cannot be deleted", ErrForbidden)
	ErrRatingOutOfRange  = fmt.Errorf("%w: rating must be between 0 and 10", ErrValidation)
	ErrEmptyMessage      = fmt.Errorf("%w: message content is required", ErrValidation)
	ErrMessageTooLong    = fmt.Errorf("%w: message exceeds 500 characters", ErrValidation)
	ErrAttendeeNotInTeam = fmt.Errorf("%w: attendee is not a player of this team", ErrValidation)
)
