package models

import "time"

type Player struct {
	ID        string    `json:"id" db:"id"`
	TeamID    string    `json:"team_id" db:"team_id"`
	Name      string    `json:"name" db:"name"`
	Position  *string   `json:"position,omitempty" db:"position"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	AvatarKey *string `json:"-" db:"avatar_key"`
	AvatarURL *string `json:"avatar_url,omitempty" db:"-"`
}
