package models

import "time"

// Match is a scheduled fixture between two teams of one league. Scores are
// either both nil (unplayed) or both set; partial scoring is never stored.
type Match struct {
	ID          string    `json:"id" db:"id"`
	LeagueID    string    `json:"league_id" db:"league_id"`
	Round       int       `json:"round" db:"round"`
	HomeTeamID  string    `json:"home_team_id" db:"home_team_id"`
	AwayTeamID  string    `json:"away_team_id" db:"away_team_id"`
	Court       *string   `json:"court,omitempty" db:"court"`
	ScheduledAt time.Time `json:"scheduled_at" db:"scheduled_at"`
	HomeScore   *int      `json:"home_score,omitempty" db:"home_score"`
	AwayScore   *int      `json:"away_score,omitempty" db:"away_score"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Played reports whether the match has a recorded result.
func (m *Match) Played() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}
