package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/justplay-app/league-manager/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type scheduleFixture struct {
	leagueRepo *fakeLeagueRepo
	teamRepo   *fakeTeamRepo
	matchRepo  *fakeMatchRepo
	service    ScheduleService
}

func newScheduleFixture(t *testing.T, teamCount int) *scheduleFixture {
	t.Helper()

	leagueRepo := &fakeLeagueRepo{}
	teamRepo := &fakeTeamRepo{}
	matchRepo := newFakeMatchRepo()

	league := &models.League{ID: "league_fix1", Code: "ABC123", Name: "Downtown Hoops"}
	if err := leagueRepo.Create(context.Background(), league); err != nil {
		t.Fatalf("seed league: %v", err)
	}
	names := []string{"Hawks", "Bulls", "Kings", "Suns", "Heat"}
	for i := 0; i < teamCount; i++ {
		team := &models.Team{
			ID:        "team_" + names[i],
			LeagueID:  league.ID,
			Name:      names[i],
			CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Minute),
		}
		if err := teamRepo.Create(context.Background(), team); err != nil {
			t.Fatalf("seed team: %v", err)
		}
	}

	return &scheduleFixture{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		service:    NewScheduleService(leagueRepo, teamRepo, matchRepo, nil, testLogger()),
	}
}

func TestGenerateSchedule(t *testing.T) {
	fix := newScheduleFixture(t, 4)
	start := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	matches, err := fix.service.GenerateSchedule(context.Background(), "league_fix1", GenerateScheduleInput{
		Rounds:      2,
		StartAt:     &start,
		DaysBetween: 7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 4 {
		t.Fatalf("expected 4 matches, got %d", len(matches))
	}

	stored, _ := fix.matchRepo.ListByLeague(context.Background(), "league_fix1")
	if len(stored) != 4 {
		t.Fatalf("expected 4 stored matches, got %d", len(stored))
	}
	for k, m := range stored {
		want := start.Add(time.Duration(k) * 7 * 24 * time.Hour)
		if !m.ScheduledAt.Equal(want) {
			t.Errorf("match %d scheduled at %v, want %v", k, m.ScheduledAt, want)
		}
	}
}

func TestGenerateScheduleReplacesPriorSchedule(t *testing.T) {
	fix := newScheduleFixture(t, 4)

	first, err := fix.service.GenerateSchedule(context.Background(), "league_fix1", GenerateScheduleInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := fix.service.GenerateSchedule(context.Background(), "league_fix1", GenerateScheduleInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := fix.matchRepo.ListByLeague(context.Background(), "league_fix1")
	if len(stored) != len(second) {
		t.Fatalf("expected %d stored matches, got %d", len(second), len(stored))
	}
	for i := range stored {
		if stored[i].ID == first[i].ID {
			t.Errorf("regeneration should replace match identities, found stale id %s", stored[i].ID)
		}
		if stored[i].ID != second[i].ID {
			t.Errorf("stored schedule should be the latest generation")
		}
	}
}

func TestGenerateScheduleNotEnoughTeamsLeavesScheduleIntact(t *testing.T) {
	fix := newScheduleFixture(t, 1)

	existing := []*models.Match{{
		ID:          "match_old1",
		LeagueID:    "league_fix1",
		Round:       1,
		HomeTeamID:  "team_Hawks",
		AwayTeamID:  "team_ghost",
		ScheduledAt: time.Now(),
	}}
	if err := fix.matchRepo.ReplaceForLeague(context.Background(), "league_fix1", existing); err != nil {
		t.Fatalf("seed matches: %v", err)
	}

	_, err := fix.service.GenerateSchedule(context.Background(), "league_fix1", GenerateScheduleInput{})
	if !errors.Is(err, ErrNotEnoughTeams) {
		t.Fatalf("expected ErrNotEnoughTeams, got %v", err)
	}

	stored, _ := fix.matchRepo.ListByLeague(context.Background(), "league_fix1")
	if len(stored) != 1 || stored[0].ID != "match_old1" {
		t.Fatalf("failed generation must leave the prior schedule untouched, got %v", stored)
	}
}

func TestGenerateScheduleUnknownLeague(t *testing.T) {
	fix := newScheduleFixture(t, 4)
	_, err := fix.service.GenerateSchedule(context.Background(), "league_nope", GenerateScheduleInput{})
	if !errors.Is(err, ErrLeagueNotFound) {
		t.Fatalf("expected ErrLeagueNotFound, got %v", err)
	}
}

func TestGenerateScheduleInvalidPairing(t *testing.T) {
	fix := newScheduleFixture(t, 4)
	_, err := fix.service.GenerateSchedule(context.Background(), "league_fix1", GenerateScheduleInput{Pairing: "swiss"})
	if !errors.Is(err, ErrInvalidPairing) {
		t.Fatalf("expected ErrInvalidPairing, got %v", err)
	}
}

func TestGenerateScheduleRoundRobinPairing(t *testing.T) {
	fix := newScheduleFixture(t, 4)
	matches, err := fix.service.GenerateSchedule(context.Background(), "league_fix1", GenerateScheduleInput{
		Rounds:  3,
		Pairing: PairingRoundRobin,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	type pair struct{ a, b string }
	met := make(map[pair]bool)
	for _, m := range matches {
		a, b := m.HomeTeamID, m.AwayTeamID
		if a > b {
			a, b = b, a
		}
		if met[pair{a, b}] {
			t.Errorf("round robin should not repeat pairing %s-%s within 3 rounds", a, b)
		}
		met[pair{a, b}] = true
	}
}

func TestRecordResult(t *testing.T) {
	fix := newScheduleFixture(t, 2)
	matches, err := fix.service.GenerateSchedule(context.Background(), "league_fix1", GenerateScheduleInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	home, away := 21, 15
	updated, err := fix.service.RecordResult(context.Background(), "league_fix1", RecordResultInput{
		MatchID:   matches[0].ID,
		HomeScore: &home,
		AwayScore: &away,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated) != 1 {
		t.Fatalf("expected full match list back, got %d entries", len(updated))
	}
	if updated[0].HomeScore == nil || *updated[0].HomeScore != 21 ||
		updated[0].AwayScore == nil || *updated[0].AwayScore != 15 {
		t.Errorf("scores not recorded: %+v", updated[0])
	}
}

func TestRecordResultUnknownMatchLeavesListUnmodified(t *testing.T) {
	fix := newScheduleFixture(t, 2)
	if _, err := fix.service.GenerateSchedule(context.Background(), "league_fix1", GenerateScheduleInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	home, away := 10, 8
	_, err := fix.service.RecordResult(context.Background(), "league_fix1", RecordResultInput{
		MatchID:   "match_nope",
		HomeScore: &home,
		AwayScore: &away,
	})
	if !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}

	stored, _ := fix.matchRepo.ListByLeague(context.Background(), "league_fix1")
	for _, m := range stored {
		if m.HomeScore != nil || m.AwayScore != nil {
			t.Errorf("failed result must not mutate stored matches: %+v", m)
		}
	}
}

func TestRecordResultRejectsPartialOrNegativeScores(t *testing.T) {
	fix := newScheduleFixture(t, 2)
	matches, err := fix.service.GenerateSchedule(context.Background(), "league_fix1", GenerateScheduleInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name string
		home *int
		away *int
	}{
		{"missing away", intPtr(10), nil},
		{"missing home", nil, intPtr(10)},
		{"negative home", intPtr(-1), intPtr(10)},
		{"negative away", intPtr(10), intPtr(-3)},
	}
	for _, tc := range cases {
		_, err := fix.service.RecordResult(context.Background(), "league_fix1", RecordResultInput{
			MatchID:   matches[0].ID,
			HomeScore: tc.home,
			AwayScore: tc.away,
		})
		if !errors.Is(err, ErrInvalidScore) {
			t.Errorf("%s: expected ErrInvalidScore, got %v", tc.name, err)
		}
	}
}

func TestRecordResultMatchFromAnotherLeague(t *testing.T) {
	fix := newScheduleFixture(t, 2)
	if err := fix.leagueRepo.Create(context.Background(), &models.League{ID: "league_other", Code: "ZZZ999", Name: "Other"}); err != nil {
		t.Fatalf("seed league: %v", err)
	}
	if err := fix.matchRepo.ReplaceForLeague(context.Background(), "league_other", []*models.Match{{
		ID:         "match_foreign",
		LeagueID:   "league_other",
		Round:      1,
		HomeTeamID: "team_x",
		AwayTeamID: "team_y",
	}}); err != nil {
		t.Fatalf("seed matches: %v", err)
	}

	home, away := 5, 4
	_, err := fix.service.RecordResult(context.Background(), "league_fix1", RecordResultInput{
		MatchID:   "match_foreign",
		HomeScore: &home,
		AwayScore: &away,
	})
	if !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound for foreign match, got %v", err)
	}
}

func intPtr(v int) *int { return &v }
