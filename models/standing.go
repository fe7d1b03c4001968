package models

// Standing is a derived per-team summary of results to date. It is recomputed
// from the match list on every query and never persisted.
type Standing struct {
	TeamID        string `json:"team_id"`
	TeamName      string `json:"team_name"`
	Played        int    `json:"played"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	PointsFor     int    `json:"points_for"`
	PointsAgainst int    `json:"points_against"`
}

// PointDifference is the standings tiebreaker after wins.
func (s Standing) PointDifference() int {
	return s.PointsFor - s.PointsAgainst
}
