package models

import "time"

// Team is registered to exactly one league. Teams within a league are kept in
// creation order; that order is the roster order fixture pairing walks.
type Team struct {
	ID        string    `json:"id" db:"id"`
	LeagueID  string    `json:"league_id" db:"league_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	AvatarKey *string `json:"-" db:"avatar_key"`
	AvatarURL *string `json:"avatar_url,omitempty" db:"-"`

	Players []Player `json:"players" db:"-"`
}
