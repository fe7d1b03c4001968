package schedule

import (
	"sort"

	"github.com/justplay-app/league-manager/models"
)

// ComputeStandings aggregates recorded results into a ranked table. Every
// roster team gets a row, zeroed if it has not played. Matches without both
// scores are skipped. A played match referencing a team that is no longer on
// the roster contributes nothing; its id is returned in skipped so the caller
// can report the inconsistency.
//
// Ranking: wins descending, then point differential descending. The sort is
// stable, so teams level on both keep their roster order.
func ComputeStandings(teams []models.Team, matches []*models.Match) (table []models.Standing, skipped []string) {
	rows := make([]models.Standing, len(teams))
	index := make(map[string]*models.Standing, len(teams))
	for i, t := range teams {
		rows[i] = models.Standing{TeamID: t.ID, TeamName: t.Name}
		index[t.ID] = &rows[i]
	}

	for _, m := range matches {
		if !m.Played() {
			continue
		}
		home := index[m.HomeTeamID]
		away := index[m.AwayTeamID]
		if home == nil || away == nil {
			skipped = append(skipped, m.ID)
			continue
		}

		home.Played++
		away.Played++
		home.PointsFor += *m.HomeScore
		home.PointsAgainst += *m.AwayScore
		away.PointsFor += *m.AwayScore
		away.PointsAgainst += *m.HomeScore

		switch {
		case *m.HomeScore > *m.AwayScore:
			home.Wins++
			away.Losses++
		case *m.AwayScore > *m.HomeScore:
			away.Wins++
			home.Losses++
		}
		// A draw counts toward played and points only.
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Wins != rows[j].Wins {
			return rows[i].Wins > rows[j].Wins
		}
		return rows[i].PointDifference() > rows[j].PointDifference()
	})

	return rows, skipped
}
