package services

import (
	"context"
	"errors"
	"testing"

	"github.com/justplay-app/league-manager/models"
)

func newMemberFixture(t *testing.T, allowFreeJoin bool) (MemberService, *models.League) {
	t.Helper()

	leagueRepo := &fakeLeagueRepo{}
	memberRepo := &fakeMemberRepo{}
	leagueService := NewLeagueService(leagueRepo, &fakeTeamRepo{}, &fakePlayerRepo{}, memberRepo, nil)

	league, err := leagueService.CreateLeague(context.Background(), CreateLeagueInput{
		Name:          "Downtown Hoops",
		OrganizerName: "Alex",
		AllowFreeJoin: &allowFreeJoin,
	})
	if err != nil {
		t.Fatalf("seed league: %v", err)
	}
	return NewMemberService(leagueRepo, memberRepo, leagueService), league
}

func TestJoinLeague(t *testing.T) {
	service, league := newMemberFixture(t, true)

	joined, err := service.JoinLeague(context.Background(), league.ID, JoinLeagueInput{Name: "Sam"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(joined.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(joined.Members))
	}
	var found *models.Member
	for i := range joined.Members {
		if joined.Members[i].Name == "Sam" {
			found = &joined.Members[i]
		}
	}
	if found == nil {
		t.Fatal("joined member missing from roster")
	}
	if found.Role != models.RoleMember {
		t.Errorf("expected member role, got %q", found.Role)
	}
	if found.LeagueID != league.ID {
		t.Errorf("member bound to wrong league: %q", found.LeagueID)
	}
}

func TestJoinLeagueDisallowed(t *testing.T) {
	service, league := newMemberFixture(t, false)

	if _, err := service.JoinLeague(context.Background(), league.ID, JoinLeagueInput{Name: "Sam"}); !errors.Is(err, ErrJoinNotAllowed) {
		t.Fatalf("expected ErrJoinNotAllowed, got %v", err)
	}
}

func TestJoinLeagueUnknown(t *testing.T) {
	service, _ := newMemberFixture(t, true)

	if _, err := service.JoinLeague(context.Background(), "league_nope", JoinLeagueInput{Name: "Sam"}); !errors.Is(err, ErrLeagueNotFound) {
		t.Fatalf("expected ErrLeagueNotFound, got %v", err)
	}
}

func TestJoinLeagueByCode(t *testing.T) {
	service, league := newMemberFixture(t, false)

	// Code joining works regardless of the free-join setting, and the code
	// is matched case insensitively.
	joined, err := service.JoinLeagueByCode(context.Background(), "  "+league.Code+" ", JoinLeagueInput{Name: "Sam"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if joined.ID != league.ID {
		t.Errorf("resolved wrong league: %q", joined.ID)
	}
	if len(joined.Members) != 2 {
		t.Errorf("expected 2 members, got %d", len(joined.Members))
	}
}

func TestJoinLeagueByCodeInvalid(t *testing.T) {
	service, _ := newMemberFixture(t, true)

	if _, err := service.JoinLeagueByCode(context.Background(), "ZZZZZZ", JoinLeagueInput{Name: "Sam"}); !errors.Is(err, ErrInvalidJoinCode) {
		t.Fatalf("expected ErrInvalidJoinCode, got %v", err)
	}
}

func TestJoinLeagueBlankName(t *testing.T) {
	service, league := newMemberFixture(t, true)

	if _, err := service.JoinLeague(context.Background(), league.ID, JoinLeagueInput{Name: " "}); !errors.Is(err, ErrMemberNameRequired) {
		t.Fatalf("expected ErrMemberNameRequired, got %v", err)
	}
}
