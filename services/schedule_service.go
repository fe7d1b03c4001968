package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/justplay-app/league-manager/models"
	"github.com/justplay-app/league-manager/repositories"
	"github.com/justplay-app/league-manager/schedule"
)

// Pairing modes accepted by GenerateSchedule. FixedPairing repeats the same
// roster pairings every round; RoundRobin rotates opponents per round.
const (
	PairingFixed      = "fixed"
	PairingRoundRobin = "round_robin"
)

type GenerateScheduleInput struct {
	Rounds      int        `json:"rounds"`
	StartAt     *time.Time `json:"start_at"`
	DaysBetween int        `json:"days_between"`
	Pairing     string     `json:"pairing"`
}

type RecordResultInput struct {
	MatchID   string `json:"match_id"`
	HomeScore *int   `json:"home_score"`
	AwayScore *int   `json:"away_score"`
}

type ScheduleService interface {
	// GenerateSchedule builds a fresh fixture list for the league and fully
	// replaces any prior schedule. The previous schedule is untouched when
	// generation fails.
	GenerateSchedule(ctx context.Context, leagueID string, input GenerateScheduleInput) ([]*models.Match, error)
	GetSchedule(ctx context.Context, leagueID string) ([]*models.Match, error)
	// RecordResult stores both scores of a match and returns the updated
	// fixture list.
	RecordResult(ctx context.Context, leagueID string, input RecordResultInput) ([]*models.Match, error)
}

type scheduleService struct {
	leagueRepo repositories.LeagueRepository
	teamRepo   repositories.TeamRepository
	matchRepo  repositories.MatchRepository
	hub        *schedule.Hub
	locker     *leagueLocker
	logger     *slog.Logger
}

func NewScheduleService(
	leagueRepo repositories.LeagueRepository,
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
	hub *schedule.Hub,
	logger *slog.Logger,
) ScheduleService {
	return &scheduleService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		hub:        hub,
		locker:     newLeagueLocker(),
		logger:     logger,
	}
}

func (s *scheduleService) GenerateSchedule(ctx context.Context, leagueID string, input GenerateScheduleInput) ([]*models.Match, error) {
	if input.Rounds < 0 {
		return nil, ErrInvalidRounds
	}

	var generator schedule.FixtureGenerator
	switch input.Pairing {
	case "", PairingFixed:
		generator = schedule.NewFixedPairingGenerator()
	case PairingRoundRobin:
		generator = schedule.NewRoundRobinGenerator()
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPairing, input.Pairing)
	}

	// Generation is a read-modify-write over the league's match list;
	// serialize it against concurrent writers for the same league.
	unlock := s.locker.lock(leagueID)
	defer unlock()

	league, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, mapLeagueRepoError(err)
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster for league %s: %w", leagueID, err)
	}
	if len(teams) < 2 {
		return nil, ErrNotEnoughTeams
	}

	rounds := input.Rounds
	if rounds == 0 {
		rounds = schedule.DefaultRounds
	}
	startAt := time.Now().UTC().Add(24 * time.Hour)
	if input.StartAt != nil {
		startAt = *input.StartAt
	}
	interval := schedule.DefaultInterval
	if input.DaysBetween > 0 {
		interval = time.Duration(input.DaysBetween) * 24 * time.Hour
	}

	roster := make([]models.Team, 0, len(teams))
	for _, t := range teams {
		roster = append(roster, *t)
	}

	matches, err := generator.GenerateFixtures(ctx, schedule.GenerateFixturesParams{
		League:   league,
		Teams:    roster,
		Rounds:   rounds,
		StartAt:  startAt,
		Interval: interval,
	})
	if err != nil {
		return nil, err
	}

	if err := s.matchRepo.ReplaceForLeague(ctx, leagueID, matches); err != nil {
		return nil, fmt.Errorf("failed to store schedule for league %s: %w", leagueID, err)
	}

	s.logger.Info("schedule generated",
		slog.String("league_id", leagueID),
		slog.String("generator", generator.GetName()),
		slog.Int("rounds", rounds),
		slog.Int("matches", len(matches)),
	)

	if s.hub != nil {
		s.hub.BroadcastToLeague(leagueID, schedule.Event{
			Type:     schedule.EventScheduleReplaced,
			LeagueID: leagueID,
			Payload:  matches,
		})
	}

	return matches, nil
}

func (s *scheduleService) GetSchedule(ctx context.Context, leagueID string) ([]*models.Match, error) {
	if _, err := s.leagueRepo.GetByID(ctx, leagueID); err != nil {
		return nil, mapLeagueRepoError(err)
	}

	matches, err := s.matchRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for league %s: %w", leagueID, err)
	}
	return matches, nil
}

func (s *scheduleService) RecordResult(ctx context.Context, leagueID string, input RecordResultInput) ([]*models.Match, error) {
	// Validate before touching anything: a rejected result leaves the match
	// list unmodified.
	if input.HomeScore == nil || input.AwayScore == nil || *input.HomeScore < 0 || *input.AwayScore < 0 {
		return nil, ErrInvalidScore
	}

	unlock := s.locker.lock(leagueID)
	defer unlock()

	if _, err := s.leagueRepo.GetByID(ctx, leagueID); err != nil {
		return nil, mapLeagueRepoError(err)
	}

	match, err := s.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	if match.LeagueID != leagueID {
		return nil, ErrMatchNotFound
	}

	if err := s.matchRepo.UpdateScore(ctx, match.ID, *input.HomeScore, *input.AwayScore); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	matches, err := s.matchRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for league %s: %w", leagueID, err)
	}

	s.logger.Info("result recorded",
		slog.String("league_id", leagueID),
		slog.String("match_id", match.ID),
		slog.Int("home_score", *input.HomeScore),
		slog.Int("away_score", *input.AwayScore),
	)

	if s.hub != nil {
		payload := map[string]interface{}{
			"match_id":   match.ID,
			"home_score": *input.HomeScore,
			"away_score": *input.AwayScore,
		}
		// Push the refreshed table along with the result so clients do not
		// have to follow up with a standings request.
		if teams, teamsErr := s.teamRepo.ListByLeague(ctx, leagueID); teamsErr == nil {
			roster := make([]models.Team, 0, len(teams))
			for _, t := range teams {
				roster = append(roster, *t)
			}
			standings, _ := schedule.ComputeStandings(roster, matches)
			payload["standings"] = standings
		}
		s.hub.BroadcastToLeague(leagueID, schedule.Event{
			Type:     schedule.EventResultRecorded,
			LeagueID: leagueID,
			Payload:  payload,
		})
	}

	return matches, nil
}
