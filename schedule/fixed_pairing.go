package schedule

import (
	"context"
	"fmt"

	"github.com/justplay-app/league-manager/models"
	"github.com/justplay-app/league-manager/utils"
)

type FixedPairingGenerator struct{}

func NewFixedPairingGenerator() FixtureGenerator {
	return &FixedPairingGenerator{}
}

func (g *FixedPairingGenerator) GetName() string {
	return "FixedPairing"
}

// GenerateFixtures pairs consecutive roster teams ((0,1), (2,3), ...) once
// per round. The pairings are identical in every round; an odd roster leaves
// the last team with a bye. The k-th match overall is scheduled at
// StartAt + k*Interval, counting across rounds.
func (g *FixedPairingGenerator) GenerateFixtures(ctx context.Context, params GenerateFixturesParams) ([]*models.Match, error) {
	teams := params.Teams
	if len(teams) < 2 {
		return nil, fmt.Errorf("FixedPairingGenerator: %w (found %d)", ErrNotEnoughTeams, len(teams))
	}

	rounds := params.Rounds
	if rounds < 1 {
		rounds = DefaultRounds
	}
	interval := params.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	matches := make([]*models.Match, 0, rounds*(len(teams)/2))
	when := params.StartAt
	for r := 1; r <= rounds; r++ {
		for i := 0; i+1 < len(teams); i += 2 {
			matches = append(matches, &models.Match{
				ID:          utils.NewID("match"),
				LeagueID:    params.League.ID,
				Round:       r,
				HomeTeamID:  teams[i].ID,
				AwayTeamID:  teams[i+1].ID,
				ScheduledAt: when,
			})
			when = when.Add(interval)
		}
	}

	return matches, nil
}
