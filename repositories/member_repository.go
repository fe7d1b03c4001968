package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/justplay-app/league-manager/models"
	"github.com/lib/pq"
)

var (
	ErrMemberNotFound      = errors.New("member not found")
	ErrMemberLeagueInvalid = errors.New("member references an unknown league")
)

type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	ListByLeague(ctx context.Context, leagueID string) ([]*models.Member, error)
}

type postgresMemberRepository struct {
	db *sql.DB
}

func NewPostgresMemberRepository(db *sql.DB) MemberRepository {
	return &postgresMemberRepository{db: db}
}

func (r *postgresMemberRepository) Create(ctx context.Context, member *models.Member) error {
	query := `
		INSERT INTO members (id, league_id, name, role, joined_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		member.ID,
		member.LeagueID,
		member.Name,
		member.Role,
		member.JoinedAt,
	)

	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code == "23503" && pqErr.Constraint == "members_league_id_fkey" {
			return ErrMemberLeagueInvalid
		}
	}
	return err
}

func (r *postgresMemberRepository) ListByLeague(ctx context.Context, leagueID string) ([]*models.Member, error) {
	query := `
		SELECT id, league_id, name, role, joined_at
		FROM members
		WHERE league_id = $1
		ORDER BY joined_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*models.Member, 0)
	for rows.Next() {
		var member models.Member
		if scanErr := rows.Scan(
			&member.ID,
			&member.LeagueID,
			&member.Name,
			&member.Role,
			&member.JoinedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		members = append(members, &member)
	}
	return members, rows.Err()
}
