package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/justplay-app/league-manager/models"
	"github.com/lib/pq"
)

var (
	ErrPlayerNotFound    = errors.New("player not found")
	ErrPlayerTeamInvalid = errors.New("player references an unknown team")
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	ListByTeam(ctx context.Context, teamID string) ([]*models.Player, error)
	Delete(ctx context.Context, id string) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (id, team_id, name, position)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		player.ID,
		player.TeamID,
		player.Name,
		player.Position,
	).Scan(&player.CreatedAt)

	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code == "23503" && pqErr.Constraint == "players_team_id_fkey" {
			return ErrPlayerTeamInvalid
		}
	}
	return err
}

func (r *postgresPlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]*models.Player, error) {
	query := `
		SELECT id, team_id, name, position, avatar_key, created_at
		FROM players
		WHERE team_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]*models.Player, 0)
	for rows.Next() {
		var player models.Player
		if scanErr := rows.Scan(
			&player.ID,
			&player.TeamID,
			&player.Name,
			&player.Position,
			&player.AvatarKey,
			&player.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		players = append(players, &player)
	}
	return players, rows.Err()
}

func (r *postgresPlayerRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM players WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}
