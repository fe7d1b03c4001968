package models

import "time"

// MemberRole distinguishes the league organizer from regular members.
type MemberRole string

const (
	RoleOrganizer MemberRole = "organizer"
	RoleMember    MemberRole = "member"
)

type Member struct {
	ID       string     `json:"id" db:"id"`
	LeagueID string     `json:"league_id" db:"league_id"`
	Name     string     `json:"name" db:"name"`
	Role     MemberRole `json:"role" db:"role"`
	JoinedAt time.Time  `json:"joined_at" db:"joined_at"`
}
