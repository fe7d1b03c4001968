package schedule

import (
	"context"
	"fmt"

	"github.com/justplay-app/league-manager/models"
	"github.com/justplay-app/league-manager/utils"
)

// RoundRobinGenerator rotates pairings between rounds using the circle
// method, so every team meets a different opponent each round. It is the
// opt-in alternative to the fixed pairing policy.
type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() FixtureGenerator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) GetName() string {
	return "RoundRobin"
}

func (g *RoundRobinGenerator) GenerateFixtures(ctx context.Context, params GenerateFixturesParams) ([]*models.Match, error) {
	teams := params.Teams
	if len(teams) < 2 {
		return nil, fmt.Errorf("RoundRobinGenerator: %w (found %d)", ErrNotEnoughTeams, len(teams))
	}

	rounds := params.Rounds
	if rounds < 1 {
		rounds = DefaultRounds
	}
	interval := params.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	// Circle method: fix slot 0, rotate the rest one step per round. An odd
	// roster gets a phantom slot whose opponent sits the round out.
	slots := make([]*models.Team, 0, len(teams)+1)
	for i := range teams {
		slots = append(slots, &teams[i])
	}
	if len(slots)%2 != 0 {
		slots = append(slots, nil)
	}
	n := len(slots)

	matches := make([]*models.Match, 0, rounds*(len(teams)/2))
	when := params.StartAt
	for r := 1; r <= rounds; r++ {
		for i := 0; i < n/2; i++ {
			home := slots[i]
			away := slots[n-1-i]
			if home == nil || away == nil {
				continue // bye
			}
			matches = append(matches, &models.Match{
				ID:          utils.NewID("match"),
				LeagueID:    params.League.ID,
				Round:       r,
				HomeTeamID:  home.ID,
				AwayTeamID:  away.ID,
				ScheduledAt: when,
			})
			when = when.Add(interval)
		}

		rotated := make([]*models.Team, n)
		rotated[0] = slots[0]
		rotated[1] = slots[n-1]
		copy(rotated[2:], slots[1:n-1])
		slots = rotated
	}

	return matches, nil
}
