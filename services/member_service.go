package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/justplay-app/league-manager/models"
	"github.com/justplay-app/league-manager/repositories"
	"github.com/justplay-app/league-manager/utils"
)

type JoinLeagueInput struct {
	Name string `json:"name"`
}

type MemberService interface {
	// JoinLeague adds a member to the league by id. Rejected when the
	// league has free joining disabled; those leagues are join-by-code only.
	JoinLeague(ctx context.Context, leagueID string, input JoinLeagueInput) (*models.League, error)
	// JoinLeagueByCode resolves the short join code to a league and adds
	// the member.
	JoinLeagueByCode(ctx context.Context, code string, input JoinLeagueInput) (*models.League, error)
}

type memberService struct {
	leagueRepo    repositories.LeagueRepository
	memberRepo    repositories.MemberRepository
	leagueService LeagueService
}

func NewMemberService(
	leagueRepo repositories.LeagueRepository,
	memberRepo repositories.MemberRepository,
	leagueService LeagueService,
) MemberService {
	return &memberService{
		leagueRepo:    leagueRepo,
		memberRepo:    memberRepo,
		leagueService: leagueService,
	}
}

func (s *memberService) JoinLeague(ctx context.Context, leagueID string, input JoinLeagueInput) (*models.League, error) {
	league, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, mapLeagueRepoError(err)
	}
	if !league.AllowFreeJoin {
		return nil, ErrJoinNotAllowed
	}
	return s.addMember(ctx, league, input)
}

func (s *memberService) JoinLeagueByCode(ctx context.Context, code string, input JoinLeagueInput) (*models.League, error) {
	league, err := s.leagueRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, repositories.ErrLeagueNotFound) {
			return nil, ErrInvalidJoinCode
		}
		return nil, err
	}
	return s.addMember(ctx, league, input)
}

func (s *memberService) addMember(ctx context.Context, league *models.League, input JoinLeagueInput) (*models.League, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrMemberNameRequired
	}

	member := &models.Member{
		ID:       utils.NewID("user"),
		LeagueID: league.ID,
		Name:     input.Name,
		Role:     models.RoleMember,
		JoinedAt: time.Now().UTC(),
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to add member to league %s: %w", league.ID, err)
	}

	return s.leagueService.GetLeague(ctx, league.ID)
}
