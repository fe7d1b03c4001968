package models

import "time"

// SportType labels what a league plays. Free-form values are accepted from
// clients; the constants below cover the sports the app ships presets for.
type SportType string

const (
	SportBasketball SportType = "basketball"
	SportSoccer     SportType = "soccer"
	SportVolleyball SportType = "volleyball"
)

// League is the aggregate root. Teams, players and members all hang off a
// league, and the join code on it is the only way into invite-only leagues.
type League struct {
	ID            string     `json:"id" db:"id"`
	Code          string     `json:"code" db:"code"`
	Name          string     `json:"name" db:"name"`
	Description   *string    `json:"description,omitempty" db:"description"`
	Sport         SportType  `json:"sport" db:"sport"`
	Location      *string    `json:"location,omitempty" db:"location"`
	StartDate     *time.Time `json:"start_date,omitempty" db:"start_date"`
	AllowFreeJoin bool       `json:"allow_free_join" db:"allow_free_join"`
	NumberOfTeams *int       `json:"number_of_teams,omitempty" db:"number_of_teams"`
	OrganizerID   string     `json:"organizer_id" db:"organizer_id"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`

	AvatarKey *string `json:"-" db:"avatar_key"`
	AvatarURL *string `json:"avatar_url,omitempty" db:"-"`

	Organizer *Member  `json:"organizer,omitempty" db:"-"`
	Teams     []Team   `json:"teams" db:"-"`
	Members   []Member `json:"members" db:"-"`
}
