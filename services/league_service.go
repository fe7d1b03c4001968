package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/justplay-app/league-manager/models"
	"github.com/justplay-app/league-manager/repositories"
	"github.com/justplay-app/league-manager/storage"
	"github.com/justplay-app/league-manager/utils"
	"golang.org/x/sync/errgroup"
)

type CreateLeagueInput struct {
	Name          string           `json:"name"`
	Description   *string          `json:"description"`
	Sport         models.SportType `json:"sport"`
	Location      *string          `json:"location"`
	StartDate     *time.Time       `json:"start_date"`
	NumberOfTeams *int             `json:"number_of_teams"`
	AllowFreeJoin *bool            `json:"allow_free_join"`
	OrganizerName string           `json:"organizer_name"`
}

type UpdateLeagueDetailsInput struct {
	Name          *string    `json:"name"`
	Description   *string    `json:"description"`
	Location      *string    `json:"location"`
	StartDate     *time.Time `json:"start_date"`
	AllowFreeJoin *bool      `json:"allow_free_join"`
	NumberOfTeams *int       `json:"number_of_teams"`
}

type LeagueService interface {
	CreateLeague(ctx context.Context, input CreateLeagueInput) (*models.League, error)
	GetLeague(ctx context.Context, leagueID string) (*models.League, error)
	ListLeagues(ctx context.Context) ([]*models.League, error)
	UpdateLeagueDetails(ctx context.Context, leagueID string, input UpdateLeagueDetailsInput) (*models.League, error)
	UploadLeagueAvatar(ctx context.Context, leagueID string, contentType string, file io.Reader) (*models.League, error)
}

type leagueService struct {
	leagueRepo repositories.LeagueRepository
	teamRepo   repositories.TeamRepository
	playerRepo repositories.PlayerRepository
	memberRepo repositories.MemberRepository
	uploader   storage.FileUploader
}

func NewLeagueService(
	leagueRepo repositories.LeagueRepository,
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	memberRepo repositories.MemberRepository,
	uploader storage.FileUploader,
) LeagueService {
	return &leagueService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		memberRepo: memberRepo,
		uploader:   uploader,
	}
}

func (s *leagueService) CreateLeague(ctx context.Context, input CreateLeagueInput) (*models.League, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrLeagueNameRequired
	}
	if strings.TrimSpace(input.OrganizerName) == "" {
		return nil, ErrOrganizerNameRequired
	}

	sport := input.Sport
	if sport == "" {
		sport = models.SportBasketball
	}
	allowFreeJoin := true
	if input.AllowFreeJoin != nil {
		allowFreeJoin = *input.AllowFreeJoin
	}

	organizer := &models.Member{
		ID:       utils.NewID("user"),
		Name:     input.OrganizerName,
		Role:     models.RoleOrganizer,
		JoinedAt: time.Now().UTC(),
	}

	league := &models.League{
		ID:            utils.NewID("league"),
		Code:          utils.NewJoinCode(),
		Name:          input.Name,
		Description:   input.Description,
		Sport:         sport,
		Location:      input.Location,
		StartDate:     input.StartDate,
		AllowFreeJoin: allowFreeJoin,
		NumberOfTeams: input.NumberOfTeams,
		OrganizerID:   organizer.ID,
	}
	organizer.LeagueID = league.ID

	if err := s.leagueRepo.Create(ctx, league); err != nil {
		return nil, fmt.Errorf("failed to create league: %w", err)
	}
	if err := s.memberRepo.Create(ctx, organizer); err != nil {
		return nil, fmt.Errorf("failed to create organizer member: %w", err)
	}

	league.Organizer = organizer
	league.Teams = []models.Team{}
	league.Members = []models.Member{*organizer}
	return league, nil
}

func (s *leagueService) GetLeague(ctx context.Context, leagueID string) (*models.League, error) {
	league, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, mapLeagueRepoError(err)
	}
	if err := s.populateLeague(ctx, league); err != nil {
		return nil, err
	}
	return league, nil
}

func (s *leagueService) ListLeagues(ctx context.Context) ([]*models.League, error) {
	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, league := range leagues {
		league := league
		g.Go(func() error {
			return s.populateLeague(gCtx, league)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return leagues, nil
}

func (s *leagueService) UpdateLeagueDetails(ctx context.Context, leagueID string, input UpdateLeagueDetailsInput) (*models.League, error) {
	league, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, mapLeagueRepoError(err)
	}

	// Build the updated copy first; the record is only written once all
	// fields are validated, so a failed update leaves it untouched.
	updated := *league
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrLeagueNameRequired
		}
		updated.Name = *input.Name
	}
	if input.Description != nil {
		updated.Description = input.Description
	}
	if input.Location != nil {
		updated.Location = input.Location
	}
	if input.StartDate != nil {
		updated.StartDate = input.StartDate
	}
	if input.AllowFreeJoin != nil {
		updated.AllowFreeJoin = *input.AllowFreeJoin
	}
	if input.NumberOfTeams != nil {
		updated.NumberOfTeams = input.NumberOfTeams
	}

	if err := s.leagueRepo.Update(ctx, &updated); err != nil {
		return nil, mapLeagueRepoError(err)
	}
	if err := s.populateLeague(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *leagueService) UploadLeagueAvatar(ctx context.Context, leagueID string, contentType string, file io.Reader) (*models.League, error) {
	if s.uploader == nil {
		return nil, ErrUploaderUnavailable
	}
	ext, ok := avatarExtensions[contentType]
	if !ok {
		return nil, ErrUnsupportedAvatarType
	}

	league, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, mapLeagueRepoError(err)
	}

	key := fmt.Sprintf("leagues/%s/avatar.%s", league.ID, ext)
	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAvatarUploadFailed, err)
	}

	oldKey := league.AvatarKey
	if err := s.leagueRepo.UpdateAvatarKey(ctx, league.ID, &key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAvatarUpdateSaveFailed, err)
	}
	if oldKey != nil && *oldKey != key {
		// Best effort; a stale object is not worth failing the request.
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	league.AvatarKey = &key
	if err := s.populateLeague(ctx, league); err != nil {
		return nil, err
	}
	return league, nil
}

// populateLeague loads teams (with players) and members in parallel and
// attaches them, along with derived avatar URLs.
func (s *leagueService) populateLeague(ctx context.Context, league *models.League) error {
	g, gCtx := errgroup.WithContext(ctx)

	var teams []*models.Team
	g.Go(func() error {
		var err error
		teams, err = s.teamRepo.ListByLeague(gCtx, league.ID)
		if err != nil {
			return fmt.Errorf("failed to load teams for league %s: %w", league.ID, err)
		}
		return nil
	})

	var members []*models.Member
	g.Go(func() error {
		var err error
		members, err = s.memberRepo.ListByLeague(gCtx, league.ID)
		if err != nil {
			return fmt.Errorf("failed to load members for league %s: %w", league.ID, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	league.Teams = make([]models.Team, 0, len(teams))
	for _, team := range teams {
		players, err := s.playerRepo.ListByTeam(ctx, team.ID)
		if err != nil {
			return fmt.Errorf("failed to load players for team %s: %w", team.ID, err)
		}
		team.Players = playersToValues(players, s.uploader)
		populateTeamAvatarURL(team, s.uploader)
		league.Teams = append(league.Teams, *team)
	}

	league.Members = membersToValues(members)
	for i := range league.Members {
		if league.Members[i].ID == league.OrganizerID {
			league.Organizer = &league.Members[i]
			break
		}
	}

	populateLeagueAvatarURL(league, s.uploader)
	return nil
}

func mapLeagueRepoError(err error) error {
	if errors.Is(err, repositories.ErrLeagueNotFound) {
		return ErrLeagueNotFound
	}
	return err
}
