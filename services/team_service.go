package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/justplay-app/league-manager/models"
	"github.com/justplay-app/league-manager/repositories"
	"github.com/justplay-app/league-manager/storage"
	"github.com/justplay-app/league-manager/utils"
)

type CreateTeamInput struct {
	Name string `json:"name"`
}

type AddPlayerInput struct {
	TeamID   string  `json:"team_id"`
	Name     string  `json:"name"`
	Position *string `json:"position"`
}

type TeamService interface {
	AddTeam(ctx context.Context, leagueID string, input CreateTeamInput) (*models.League, error)
	RemoveTeam(ctx context.Context, leagueID, teamID string) (*models.League, error)
	AddPlayer(ctx context.Context, leagueID string, input AddPlayerInput) (*models.League, error)
	RemovePlayer(ctx context.Context, leagueID, teamID, playerID string) (*models.League, error)
	UploadTeamAvatar(ctx context.Context, leagueID, teamID string, contentType string, file io.Reader) (*models.League, error)
}

type teamService struct {
	leagueRepo    repositories.LeagueRepository
	teamRepo      repositories.TeamRepository
	playerRepo    repositories.PlayerRepository
	leagueService LeagueService
	uploader      storage.FileUploader
}

func NewTeamService(
	leagueRepo repositories.LeagueRepository,
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	leagueService LeagueService,
	uploader storage.FileUploader,
) TeamService {
	return &teamService{
		leagueRepo:    leagueRepo,
		teamRepo:      teamRepo,
		playerRepo:    playerRepo,
		leagueService: leagueService,
		uploader:      uploader,
	}
}

func (s *teamService) AddTeam(ctx context.Context, leagueID string, input CreateTeamInput) (*models.League, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrTeamNameRequired
	}

	league, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, mapLeagueRepoError(err)
	}

	if league.NumberOfTeams != nil {
		teams, listErr := s.teamRepo.ListByLeague(ctx, league.ID)
		if listErr != nil {
			return nil, fmt.Errorf("failed to count teams for league %s: %w", league.ID, listErr)
		}
		if len(teams) >= *league.NumberOfTeams {
			return nil, ErrLeagueFull
		}
	}

	team := &models.Team{
		ID:       utils.NewID("team"),
		LeagueID: league.ID,
		Name:     input.Name,
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.leagueService.GetLeague(ctx, league.ID)
}

func (s *teamService) RemoveTeam(ctx context.Context, leagueID, teamID string) (*models.League, error) {
	team, err := s.getLeagueTeam(ctx, leagueID, teamID)
	if err != nil {
		return nil, err
	}

	if err := s.teamRepo.Delete(ctx, team.ID); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	return s.leagueService.GetLeague(ctx, leagueID)
}

func (s *teamService) AddPlayer(ctx context.Context, leagueID string, input AddPlayerInput) (*models.League, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrPlayerNameRequired
	}

	team, err := s.getLeagueTeam(ctx, leagueID, input.TeamID)
	if err != nil {
		return nil, err
	}

	player := &models.Player{
		ID:       utils.NewID("player"),
		TeamID:   team.ID,
		Name:     input.Name,
		Position: input.Position,
	}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to add player to team %s: %w", team.ID, err)
	}

	return s.leagueService.GetLeague(ctx, leagueID)
}

func (s *teamService) RemovePlayer(ctx context.Context, leagueID, teamID, playerID string) (*models.League, error) {
	team, err := s.getLeagueTeam(ctx, leagueID, teamID)
	if err != nil {
		return nil, err
	}

	players, err := s.playerRepo.ListByTeam(ctx, team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load players for team %s: %w", team.ID, err)
	}
	found := false
	for _, p := range players {
		if p.ID == playerID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrPlayerNotFound
	}

	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	return s.leagueService.GetLeague(ctx, leagueID)
}

func (s *teamService) UploadTeamAvatar(ctx context.Context, leagueID, teamID string, contentType string, file io.Reader) (*models.League, error) {
	if s.uploader == nil {
		return nil, ErrUploaderUnavailable
	}
	ext, ok := avatarExtensions[contentType]
	if !ok {
		return nil, ErrUnsupportedAvatarType
	}

	team, err := s.getLeagueTeam(ctx, leagueID, teamID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("teams/%s/avatar.%s", team.ID, ext)
	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAvatarUploadFailed, err)
	}

	oldKey := team.AvatarKey
	if err := s.teamRepo.UpdateAvatarKey(ctx, team.ID, &key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAvatarUpdateSaveFailed, err)
	}
	if oldKey != nil && *oldKey != key {
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	return s.leagueService.GetLeague(ctx, leagueID)
}

// getLeagueTeam resolves the team and verifies it belongs to the league. A
// team from another league is reported as not found, never acted on.
func (s *teamService) getLeagueTeam(ctx context.Context, leagueID, teamID string) (*models.Team, error) {
	if _, err := s.leagueRepo.GetByID(ctx, leagueID); err != nil {
		return nil, mapLeagueRepoError(err)
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	if team.LeagueID != leagueID {
		return nil, ErrTeamNotFound
	}
	return team, nil
}
