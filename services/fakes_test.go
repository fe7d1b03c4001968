package services

import (
	"context"
	"sync"

	"github.com/justplay-app/league-manager/models"
	"github.com/justplay-app/league-manager/repositories"
)

// In-memory repository fakes shared by the service tests.

type fakeLeagueRepo struct {
	mu      sync.Mutex
	leagues []*models.League
}

func (r *fakeLeagueRepo) Create(ctx context.Context, league *models.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *league
	r.leagues = append(r.leagues, &copied)
	return nil
}

func (r *fakeLeagueRepo) GetByID(ctx context.Context, id string) (*models.League, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.leagues {
		if l.ID == id {
			copied := *l
			return &copied, nil
		}
	}
	return nil, repositories.ErrLeagueNotFound
}

func (r *fakeLeagueRepo) GetByCode(ctx context.Context, code string) (*models.League, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.leagues {
		if l.Code == code {
			copied := *l
			return &copied, nil
		}
	}
	return nil, repositories.ErrLeagueNotFound
}

func (r *fakeLeagueRepo) List(ctx context.Context) ([]*models.League, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.League, 0, len(r.leagues))
	for _, l := range r.leagues {
		copied := *l
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeLeagueRepo) Update(ctx context.Context, league *models.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, l := range r.leagues {
		if l.ID == league.ID {
			copied := *league
			copied.AvatarKey = l.AvatarKey
			r.leagues[i] = &copied
			return nil
		}
	}
	return repositories.ErrLeagueNotFound
}

func (r *fakeLeagueRepo) UpdateAvatarKey(ctx context.Context, id string, avatarKey *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.leagues {
		if l.ID == id {
			l.AvatarKey = avatarKey
			return nil
		}
	}
	return repositories.ErrLeagueNotFound
}

type fakeTeamRepo struct {
	mu    sync.Mutex
	teams []*models.Team
}

func (r *fakeTeamRepo) Create(ctx context.Context, team *models.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *team
	r.teams = append(r.teams, &copied)
	return nil
}

func (r *fakeTeamRepo) GetByID(ctx context.Context, id string) (*models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.teams {
		if t.ID == id {
			copied := *t
			return &copied, nil
		}
	}
	return nil, repositories.ErrTeamNotFound
}

func (r *fakeTeamRepo) ListByLeague(ctx context.Context, leagueID string) ([]*models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Team, 0)
	for _, t := range r.teams {
		if t.LeagueID == leagueID {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeTeamRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.teams {
		if t.ID == id {
			r.teams = append(r.teams[:i], r.teams[i+1:]...)
			return nil
		}
	}
	return repositories.ErrTeamNotFound
}

func (r *fakeTeamRepo) UpdateAvatarKey(ctx context.Context, id string, avatarKey *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.teams {
		if t.ID == id {
			t.AvatarKey = avatarKey
			return nil
		}
	}
	return repositories.ErrTeamNotFound
}

type fakePlayerRepo struct {
	mu      sync.Mutex
	players []*models.Player
}

func (r *fakePlayerRepo) Create(ctx context.Context, player *models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *player
	r.players = append(r.players, &copied)
	return nil
}

func (r *fakePlayerRepo) ListByTeam(ctx context.Context, teamID string) ([]*models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Player, 0)
	for _, p := range r.players {
		if p.TeamID == teamID {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakePlayerRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.players {
		if p.ID == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return nil
		}
	}
	return repositories.ErrPlayerNotFound
}

type fakeMemberRepo struct {
	mu      sync.Mutex
	members []*models.Member
}

func (r *fakeMemberRepo) Create(ctx context.Context, member *models.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *member
	r.members = append(r.members, &copied)
	return nil
}

func (r *fakeMemberRepo) ListByLeague(ctx context.Context, leagueID string) ([]*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Member, 0)
	for _, m := range r.members {
		if m.LeagueID == leagueID {
			copied := *m
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeMatchRepo struct {
	mu      sync.Mutex
	matches map[string][]*models.Match // league id -> matches
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{matches: make(map[string][]*models.Match)}
}

func (r *fakeMatchRepo) ReplaceForLeague(ctx context.Context, leagueID string, matches []*models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]*models.Match, 0, len(matches))
	for _, m := range matches {
		copied := *m
		stored = append(stored, &copied)
	}
	r.matches[leagueID] = stored
	return nil
}

func (r *fakeMatchRepo) ListByLeague(ctx context.Context, leagueID string) ([]*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Match, 0, len(r.matches[leagueID]))
	for _, m := range r.matches[leagueID] {
		copied := *m
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeMatchRepo) GetByID(ctx context.Context, id string) (*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, matches := range r.matches {
		for _, m := range matches {
			if m.ID == id {
				copied := *m
				return &copied, nil
			}
		}
	}
	return nil, repositories.ErrMatchNotFound
}

func (r *fakeMatchRepo) UpdateScore(ctx context.Context, id string, homeScore, awayScore int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, matches := range r.matches {
		for _, m := range matches {
			if m.ID == id {
				hs, as := homeScore, awayScore
				m.HomeScore = &hs
				m.AwayScore = &as
				return nil
			}
		}
	}
	return repositories.ErrMatchNotFound
}
