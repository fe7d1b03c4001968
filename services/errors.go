package services

import (
	"errors"

	"github.com/justplay-app/league-manager/schedule"
)

// Shared errors surfaced by the service layer and mapped to HTTP statuses in
// the handlers package.
var (
	// Not-found
	ErrLeagueNotFound  = errors.New("league not found")
	ErrTeamNotFound    = errors.New("team not found")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrMatchNotFound   = errors.New("match not found")
	ErrInvalidJoinCode = errors.New("invalid join code")

	// Validation and business rules
	ErrLeagueNameRequired    = errors.New("league name is required")
	ErrOrganizerNameRequired = errors.New("organizer name is required")
	ErrMemberNameRequired    = errors.New("member name is required")
	ErrTeamNameRequired      = errors.New("team name is required")
	ErrPlayerNameRequired    = errors.New("player name is required")
	ErrNotEnoughTeams        = schedule.ErrNotEnoughTeams
	ErrInvalidRounds         = errors.New("rounds must be at least 1")
	ErrInvalidPairing        = errors.New("unknown pairing mode")
	ErrInvalidScore          = errors.New("both scores must be present and non-negative")
	ErrJoinNotAllowed        = errors.New("league does not allow free joining")
	ErrLeagueFull            = errors.New("league already has its configured number of teams")

	// Avatar uploads
	ErrUploaderUnavailable    = errors.New("file storage is not configured")
	ErrUnsupportedAvatarType  = errors.New("unsupported avatar content type")
	ErrAvatarUploadFailed     = errors.New("failed to upload avatar")
	ErrAvatarUpdateSaveFailed = errors.New("failed to save avatar reference")
)
