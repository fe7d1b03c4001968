package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/justplay-app/league-manager/models"
)

// ErrNotEnoughTeams is returned when a roster has fewer than two teams.
var ErrNotEnoughTeams = errors.New("need at least 2 teams to schedule matches")

const (
	DefaultRounds   = 1
	DefaultInterval = 7 * 24 * time.Hour
)

type GenerateFixturesParams struct {
	League *models.League
	// Teams in roster order. Pairing walks this order as-is.
	Teams    []models.Team
	Rounds   int
	StartAt  time.Time
	Interval time.Duration
}

// FixtureGenerator turns a roster into a full fixture list. Implementations
// are pure: same params, same pairings.
type FixtureGenerator interface {
	GenerateFixtures(ctx context.Context, params GenerateFixturesParams) ([]*models.Match, error)

	GetName() string
}
