package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/justplay-app/league-manager/models"
	"github.com/justplay-app/league-manager/repositories"
	"github.com/justplay-app/league-manager/schedule"
	"golang.org/x/sync/errgroup"
)

type StandingsService interface {
	// GetStandings recomputes the ranked table from the current match list.
	GetStandings(ctx context.Context, leagueID string) ([]models.Standing, error)
}

type standingsService struct {
	leagueRepo repositories.LeagueRepository
	teamRepo   repositories.TeamRepository
	matchRepo  repositories.MatchRepository
	logger     *slog.Logger
}

func NewStandingsService(
	leagueRepo repositories.LeagueRepository,
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
	logger *slog.Logger,
) StandingsService {
	return &standingsService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		logger:     logger,
	}
}

func (s *standingsService) GetStandings(ctx context.Context, leagueID string) ([]models.Standing, error) {
	if _, err := s.leagueRepo.GetByID(ctx, leagueID); err != nil {
		return nil, mapLeagueRepoError(err)
	}

	g, gCtx := errgroup.WithContext(ctx)

	var teams []*models.Team
	g.Go(func() error {
		var err error
		teams, err = s.teamRepo.ListByLeague(gCtx, leagueID)
		if err != nil {
			return fmt.Errorf("failed to load roster for league %s: %w", leagueID, err)
		}
		return nil
	})

	var matches []*models.Match
	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.ListByLeague(gCtx, leagueID)
		if err != nil {
			return fmt.Errorf("failed to load matches for league %s: %w", leagueID, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	roster := make([]models.Team, 0, len(teams))
	for _, t := range teams {
		roster = append(roster, *t)
	}

	table, skipped := schedule.ComputeStandings(roster, matches)
	for _, matchID := range skipped {
		// A played match pointing at a team no longer on the roster. The
		// table stays consistent without it; flag the data problem.
		s.logger.Warn("standings skipped match with unknown team",
			slog.String("league_id", leagueID),
			slog.String("match_id", matchID),
		)
	}
	return table, nil
}
