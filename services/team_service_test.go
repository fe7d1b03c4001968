package services

import (
	"context"
	"errors"
	"testing"

	"github.com/justplay-app/league-manager/models"
)

type teamFixture struct {
	leagueService LeagueService
	teamService   TeamService
	league        *models.League
}

func newTeamFixture(t *testing.T, numberOfTeams *int) *teamFixture {
	t.Helper()

	leagueRepo := &fakeLeagueRepo{}
	teamRepo := &fakeTeamRepo{}
	playerRepo := &fakePlayerRepo{}
	leagueService := NewLeagueService(leagueRepo, teamRepo, playerRepo, &fakeMemberRepo{}, nil)

	league, err := leagueService.CreateLeague(context.Background(), CreateLeagueInput{
		Name:          "Downtown Hoops",
		OrganizerName: "Alex",
		NumberOfTeams: numberOfTeams,
	})
	if err != nil {
		t.Fatalf("seed league: %v", err)
	}

	return &teamFixture{
		leagueService: leagueService,
		teamService:   NewTeamService(leagueRepo, teamRepo, playerRepo, leagueService, nil),
		league:        league,
	}
}

func (f *teamFixture) addTeam(t *testing.T, name string) models.Team {
	t.Helper()
	league, err := f.teamService.AddTeam(context.Background(), f.league.ID, CreateTeamInput{Name: name})
	if err != nil {
		t.Fatalf("add team %q: %v", name, err)
	}
	for _, team := range league.Teams {
		if team.Name == name {
			return team
		}
	}
	t.Fatalf("team %q missing after add", name)
	return models.Team{}
}

func TestAddTeam(t *testing.T) {
	f := newTeamFixture(t, nil)

	team := f.addTeam(t, "Hawks")
	if team.LeagueID != f.league.ID {
		t.Errorf("team bound to wrong league: %q", team.LeagueID)
	}

	if _, err := f.teamService.AddTeam(context.Background(), f.league.ID, CreateTeamInput{Name: "  "}); !errors.Is(err, ErrTeamNameRequired) {
		t.Errorf("blank name: expected ErrTeamNameRequired, got %v", err)
	}
	if _, err := f.teamService.AddTeam(context.Background(), "league_nope", CreateTeamInput{Name: "Bulls"}); !errors.Is(err, ErrLeagueNotFound) {
		t.Errorf("unknown league: expected ErrLeagueNotFound, got %v", err)
	}
}

func TestAddTeamRespectsCapacity(t *testing.T) {
	limit := 2
	f := newTeamFixture(t, &limit)

	f.addTeam(t, "Hawks")
	f.addTeam(t, "Bulls")

	if _, err := f.teamService.AddTeam(context.Background(), f.league.ID, CreateTeamInput{Name: "Kings"}); !errors.Is(err, ErrLeagueFull) {
		t.Fatalf("expected ErrLeagueFull, got %v", err)
	}
}

func TestRemoveTeam(t *testing.T) {
	f := newTeamFixture(t, nil)
	team := f.addTeam(t, "Hawks")

	league, err := f.teamService.RemoveTeam(context.Background(), f.league.ID, team.ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(league.Teams) != 0 {
		t.Errorf("expected empty roster, got %d teams", len(league.Teams))
	}

	if _, err := f.teamService.RemoveTeam(context.Background(), f.league.ID, team.ID); !errors.Is(err, ErrTeamNotFound) {
		t.Errorf("removing twice: expected ErrTeamNotFound, got %v", err)
	}
}

func TestRemoveTeamFromAnotherLeague(t *testing.T) {
	f := newTeamFixture(t, nil)
	other := newTeamFixture(t, nil)
	foreign := other.addTeam(t, "Outsiders")

	if _, err := f.teamService.RemoveTeam(context.Background(), f.league.ID, foreign.ID); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound for foreign team, got %v", err)
	}
}

func TestAddAndRemovePlayer(t *testing.T) {
	f := newTeamFixture(t, nil)
	team := f.addTeam(t, "Hawks")

	position := "guard"
	league, err := f.teamService.AddPlayer(context.Background(), f.league.ID, AddPlayerInput{
		TeamID:   team.ID,
		Name:     "Jordan",
		Position: &position,
	})
	if err != nil {
		t.Fatalf("add player: %v", err)
	}

	var player *models.Player
	for _, tm := range league.Teams {
		if tm.ID != team.ID {
			continue
		}
		for i := range tm.Players {
			if tm.Players[i].Name == "Jordan" {
				player = &tm.Players[i]
			}
		}
	}
	if player == nil {
		t.Fatal("player missing from roster")
	}
	if player.Position == nil || *player.Position != "guard" {
		t.Errorf("position not stored: %v", player.Position)
	}

	league, err = f.teamService.RemovePlayer(context.Background(), f.league.ID, team.ID, player.ID)
	if err != nil {
		t.Fatalf("remove player: %v", err)
	}
	for _, tm := range league.Teams {
		if tm.ID == team.ID && len(tm.Players) != 0 {
			t.Errorf("expected empty player list, got %d", len(tm.Players))
		}
	}
}

func TestRemovePlayerNotOnTeam(t *testing.T) {
	f := newTeamFixture(t, nil)
	team := f.addTeam(t, "Hawks")

	if _, err := f.teamService.RemovePlayer(context.Background(), f.league.ID, team.ID, "player_nope"); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}
