package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/justplay-app/league-manager/models"
	"github.com/lib/pq"
)

var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamLeagueInvalid = errors.New("team references an unknown league")
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id string) (*models.Team, error)
	// ListByLeague returns teams in creation order, which is the roster
	// order fixture pairing depends on.
	ListByLeague(ctx context.Context, leagueID string) ([]*models.Team, error)
	Delete(ctx context.Context, id string) error
	UpdateAvatarKey(ctx context.Context, id string, avatarKey *string) error
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (id, league_id, name)
		VALUES ($1, $2, $3)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query, team.ID, team.LeagueID, team.Name).Scan(&team.CreatedAt)
	return r.handleTeamError(err)
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id string) (*models.Team, error) {
	query := `SELECT id, league_id, name, avatar_key, created_at FROM teams WHERE id = $1`

	team := &models.Team{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&team.ID,
		&team.LeagueID,
		&team.Name,
		&team.AvatarKey,
		&team.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

func (r *postgresTeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]*models.Team, error) {
	query := `
		SELECT id, league_id, name, avatar_key, created_at
		FROM teams
		WHERE league_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*models.Team, 0)
	for rows.Next() {
		var team models.Team
		if scanErr := rows.Scan(
			&team.ID,
			&team.LeagueID,
			&team.Name,
			&team.AvatarKey,
			&team.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		teams = append(teams, &team)
	}
	return teams, rows.Err()
}

func (r *postgresTeamRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM teams WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) UpdateAvatarKey(ctx context.Context, id string, avatarKey *string) error {
	query := `UPDATE teams SET avatar_key = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, avatarKey, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) handleTeamError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code == "23503" && pqErr.Constraint == "teams_league_id_fkey" { // foreign_key_violation
			return ErrTeamLeagueInvalid
		}
	}
	return err
}
